package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

// DefaultNames is the catalog served when none is given.
var DefaultNames = []string{
	"Captain America",
	"Iron Man",
	"Black Widow",
	"Hulk",
	"Thor",
	"Hawkeye",
}

// Catalog implements ports.Catalog over a slice, with optional simulated
// latency. It is safe for concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	names []string
	delay time.Duration
	err   error
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDelay makes every Names call wait d, as a network call would.
func WithDelay(d time.Duration) Option {
	return func(c *Catalog) {
		c.delay = d
	}
}

// WithError makes every Names call fail with err once the delay has passed.
func WithError(err error) Option {
	return func(c *Catalog) {
		c.err = err
	}
}

// New creates a catalog holding names. A nil slice means DefaultNames.
func New(names []string, opts ...Option) *Catalog {
	if names == nil {
		names = DefaultNames
	}
	c := &Catalog{names: slices.Clone(names)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Names returns a copy of the catalog.
func (c *Catalog) Names(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("memory catalog: %w", err)
	}

	c.mu.RLock()
	delay, failure := c.delay, c.err
	c.mu.RUnlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("memory catalog: %w", ctx.Err())
		}
	}
	if failure != nil {
		return nil, fmt.Errorf("memory catalog: %w", failure)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.names), nil
}

// Set replaces the catalog content.
func (c *Catalog) Set(names []string) {
	c.mu.Lock()
	c.names = slices.Clone(names)
	c.mu.Unlock()
}

// Fail makes later calls return err; nil restores normal operation.
func (c *Catalog) Fail(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}
