package feature

import (
	"log/slog"

	"github.com/aretw0/riveting/pkg/mainloop"
)

type config struct {
	loop   *mainloop.Loop
	logger *slog.Logger
}

// Option configures a Feature.
type Option func(*config)

// WithLoop sets the UI-affine loop view states are published on.
// Defaults to mainloop.Main().
func WithLoop(loop *mainloop.Loop) Option {
	return func(c *config) {
		c.loop = loop
	}
}

// WithLogger sets a structured logger for internal events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
