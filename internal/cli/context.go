package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/taskboard/internal/app"
)

type contextKey struct{}

// ErrNoApp is returned when a command runs without an application in its context
var ErrNoApp = errors.New("application not initialized")

// CLI represents the CLI application context
type CLI struct {
	App *app.App
}

// WithApp returns a context carrying the application used by every subcommand
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// GetCLIFromContext returns the CLI bound to the command context by the root
// command (or by a test harness).
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoApp
	}
	a, ok := ctx.Value(contextKey{}).(*app.App)
	if !ok || a == nil {
		return nil, ErrNoApp
	}
	return &CLI{App: a}, nil
}
