package store

import (
	"log/slog"

	"github.com/aretw0/riveting/internal/logging"
	"github.com/aretw0/riveting/pkg/domain"
)

type config struct {
	name   string
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option configures a Store.
type Option func(*config)

// WithName labels the store in logs and lifecycle events.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets a structured logger for internal events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. Repeated options
// accumulate and run in the order given.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

func newConfig(opts []Option) config {
	c := config{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	if c.name != "" {
		c.logger = c.logger.With("store", c.name)
	}
	return c
}
