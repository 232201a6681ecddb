package testsupport

import "time"

// DefaultTimeout bounds a Collect run when no Timeout option is given.
const DefaultTimeout = time.Second

type config struct {
	includeFirst bool
	timeout      time.Duration
	onTimeout    func()
}

// Option configures Collect.
type Option func(*config)

// IncludeFirst counts the emission delivered at subscription time instead
// of discarding it.
func IncludeFirst() Option {
	return func(c *config) {
		c.includeFirst = true
	}
}

// Timeout bounds the whole run: seed discard, sending and collecting.
func Timeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// OnTimeout runs fn once when the timeout fires, before the deadline error
// is returned. It does not run when the caller's context ends first.
func OnTimeout(fn func()) Option {
	return func(c *config) {
		c.onTimeout = fn
	}
}

func newConfig(opts ...Option) *config {
	c := &config{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
