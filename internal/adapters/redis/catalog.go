package redis

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is the list holding the catalog.
const DefaultKey = "riveting:catalog"

// Catalog implements ports.Catalog over a Redis list.
type Catalog struct {
	client *backend.Client
	key    string
}

type Option func(*Catalog)

// WithKey sets the list key.
func WithKey(key string) Option {
	return func(c *Catalog) {
		c.key = key
	}
}

// New creates a new Redis catalog with options.
func New(address, password string, db int, opts ...Option) *Catalog {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis catalog from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Catalog {
	c := &Catalog{
		client: client,
		key:    DefaultKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Names returns the whole list in order. A missing key is an empty catalog.
func (c *Catalog) Names(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("redis catalog: %w", err)
	}
	names, err := c.client.LRange(ctx, c.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog from redis: %w", err)
	}
	return names, nil
}

// Seed replaces the list content with names.
func (c *Catalog) Seed(ctx context.Context, names []string) error {
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, c.key)
	if len(names) > 0 {
		values := make([]any, len(names))
		for i, n := range names {
			values[i] = n
		}
		pipe.RPush(ctx, c.key, values...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed catalog in redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (c *Catalog) Close() error {
	return c.client.Close()
}
