package analytics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// OTLPSink exports interaction events as OTLP spans.
type OTLPSink struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPSink builds a sink exporting to the given endpoint under the
// given service name. Returns (nil, nil) when endpoint is empty, which
// callers should treat as "analytics disabled".
func NewOTLPSink(ctx context.Context, endpoint, serviceName string) (*OTLPSink, error) {
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	if serviceName == "" {
		serviceName = "curbcall"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &OTLPSink{
		provider: provider,
		tracer:   provider.Tracer("curbcall/analytics"),
	}, nil
}

// Emit exports one event as a point-in-time span. The batcher takes it
// from here; nothing blocks the UI goroutine.
func (s *OTLPSink) Emit(ev Event) {
	if s == nil {
		return
	}
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	_, span := s.tracer.Start(
		context.Background(),
		ev.Name,
		oteltrace.WithTimestamp(at),
	)

	attrs := make([]attribute.KeyValue, 0, len(ev.Attrs))
	for k, v := range ev.Attrs {
		attrs = append(attrs, attribute.String("curbcall."+k, v))
	}
	span.SetAttributes(attrs...)
	span.End(oteltrace.WithTimestamp(at))
}

// Close flushes and shuts down the exporter.
func (s *OTLPSink) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.provider.Shutdown(ctx)
}
