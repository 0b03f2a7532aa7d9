// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration.
type Config struct {
	// OTLPEndpoint enables analytics export when set (host:port).
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"curbcall"`

	// DBPath is the booking store location; empty means in-memory.
	DBPath string `env:"CURBCALL_DB"`
	// ContentPath overrides the embedded landing copy.
	ContentPath string `env:"CURBCALL_CONTENT"`

	// Debug enables the file logger.
	Debug   bool   `env:"CURBCALL_DEBUG"`
	LogPath string `env:"CURBCALL_LOG" envDefault:"curbcall.log"`

	// AutoplayPeriod is the carousel advancement interval.
	AutoplayPeriod time.Duration `env:"CURBCALL_AUTOPLAY" envDefault:"5s"`
	// ReducedMotion skips scroll-driven reveals and shows everything on
	// a short staggered schedule instead.
	ReducedMotion bool `env:"CURBCALL_REDUCED_MOTION"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
