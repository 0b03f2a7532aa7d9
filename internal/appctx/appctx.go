// Package appctx assembles the cross-cutting services (config, logger,
// analytics, booking store, scheduler, content) into one context struct
// built once in main and passed to the components that need it.
package appctx

import (
	"context"
	"errors"
	"fmt"

	"curbcall/internal/analytics"
	"curbcall/internal/booking"
	"curbcall/internal/config"
	"curbcall/internal/content"
	"curbcall/internal/logging"
	"curbcall/internal/sched"

	"go.uber.org/zap"
)

// App is the application context.
type App struct {
	Config    config.Config
	Log       *zap.Logger
	Analytics analytics.Sink
	Bookings  *booking.Store
	Scheduler sched.Scheduler
	Content   *content.Document
}

// New loads configuration and wires every service.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Debug, cfg.LogPath)
	if err != nil {
		return nil, err
	}

	doc := content.Default()
	if cfg.ContentPath != "" {
		doc, err = content.LoadFile(cfg.ContentPath)
		if err != nil {
			_ = log.Sync()
			return nil, err
		}
	}

	store, err := booking.Open(cfg.DBPath)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	var sink analytics.Sink = analytics.Nop{}
	otlp, err := analytics.NewOTLPSink(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		_ = store.Close()
		_ = log.Sync()
		return nil, fmt.Errorf("analytics exporter: %w", err)
	}
	if otlp != nil {
		sink = otlp
	}

	log.Info("app context ready",
		zap.String("service", cfg.ServiceName),
		zap.Bool("analytics", otlp != nil),
		zap.String("db", cfg.DBPath),
	)

	return &App{
		Config:    cfg,
		Log:       log,
		Analytics: sink,
		Bookings:  store,
		Scheduler: sched.NewTimerScheduler(),
		Content:   doc,
	}, nil
}

// Close releases every service. Safe to call once at shutdown.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if err := a.Analytics.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := a.Bookings.Close(); err != nil {
		errs = append(errs, err)
	}
	_ = a.Log.Sync() // best effort; stderr sync fails on some platforms
	return errors.Join(errs...)
}
