package app

import (
	"log/slog"

	"github.com/thenoetrevino/taskboard/internal/config"
	"github.com/thenoetrevino/taskboard/internal/tracing"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger  *slog.Logger
	tracing *tracing.Provider
	config  *config.Config
}

// WithLogger sets the logger handed to the transaction layer
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithTracing sets the span provider. The App shuts it down on Close.
func WithTracing(p *tracing.Provider) Option {
	return func(cfg *appConfig) {
		cfg.tracing = p
	}
}

// WithConfig sets the loaded configuration
func WithConfig(c *config.Config) Option {
	return func(cfg *appConfig) {
		cfg.config = c
	}
}
