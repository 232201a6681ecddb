package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/riveting/internal/adapters/loam"
	"github.com/aretw0/riveting/internal/adapters/memory"
	"github.com/aretw0/riveting/internal/adapters/redis"
	"github.com/aretw0/riveting/internal/config"
	"github.com/aretw0/riveting/pkg/ports"
)

// NewCatalog builds the catalog backend named by cfg. The returned close
// function releases the backend and is never nil.
// An empty redis list is seeded with memory.DefaultNames.
func NewCatalog(ctx context.Context, cfg config.CatalogConfig) (ports.Catalog, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory, "":
		return memory.New(nil, memory.WithDelay(cfg.Delay)), noop, nil

	case config.BackendRedis:
		opts := []redis.Option{}
		if cfg.Redis.Key != "" {
			opts = append(opts, redis.WithKey(cfg.Redis.Key))
		}
		c := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		names, err := c.Names(ctx)
		if err != nil {
			_ = c.Close()
			return nil, noop, fmt.Errorf("redis catalog at %s: %w", cfg.Redis.Addr, err)
		}
		if len(names) == 0 {
			if err := c.Seed(ctx, memory.DefaultNames); err != nil {
				_ = c.Close()
				return nil, noop, fmt.Errorf("failed to seed redis catalog: %w", err)
			}
		}
		return c, c.Close, nil

	case config.BackendLoam:
		c, err := loam.Open(cfg.Loam.Dir)
		if err != nil {
			return nil, noop, err
		}
		return c, noop, nil

	default:
		return nil, noop, fmt.Errorf("%w: unknown catalog backend %q", config.ErrInvalid, cfg.Backend)
	}
}
