// Package tracing sets up OpenTelemetry spans for lifecycle transactions.
package tracing

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName names the tracer used by the transaction scope.
const TracerName = "github.com/thenoetrevino/taskboard"

// Provider owns the tracer provider and its shutdown.
type Provider struct {
	tp       trace.TracerProvider
	shutdown func(context.Context) error
}

// NewProvider returns a provider exporting spans as JSON to w when enabled,
// or a no-op provider otherwise.
func NewProvider(enabled bool, w io.Writer) (*Provider, error) {
	if !enabled {
		return Noop(), nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	return &Provider{tp: tp, shutdown: tp.Shutdown}, nil
}

// Noop returns a provider that records nothing.
func Noop() *Provider {
	return &Provider{
		tp:       noop.NewTracerProvider(),
		shutdown: func(context.Context) error { return nil },
	}
}

// Tracer returns the taskboard tracer.
func (p *Provider) Tracer() trace.Tracer {
	return p.tp.Tracer(TracerName)
}

// Shutdown flushes and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.shutdown(ctx)
}
