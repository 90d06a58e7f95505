package cli

import (
	"context"
	"errors"
)

type cliContextKey struct{}

// ErrNoCLI is returned when a command runs without an initialized CLI
var ErrNoCLI = errors.New("cli not initialized")

// WithCLI stores c in ctx for the commands run under it
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliContextKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliContextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
