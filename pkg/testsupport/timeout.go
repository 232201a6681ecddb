package testsupport

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// WithTimeout races fn against a timer of length d. fn receives a context
// that is canceled when the timer fires, but WithTimeout returns as soon as
// it fires even if fn keeps running. Of opts only OnTimeout applies.
//
// A fired timer runs the OnTimeout callback, if any, and yields a
// *DeadlineError. Cancellation or expiry of the parent context is returned
// as-is.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	var zero T
	if d <= 0 {
		return zero, fmt.Errorf("%w: %v", ErrInvalidTimeout, d)
	}
	cfg := newConfig(opts...)

	parent := ctx
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn(ctx)
		done <- result{value: v, err: err}
	}()

	select {
	case r := <-done:
		if errors.Is(r.err, context.DeadlineExceeded) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, timedOut(parent, d, cfg)
		}
		return r.value, r.err
	case <-ctx.Done():
		return zero, timedOut(parent, d, cfg)
	}
}

// timedOut classifies the end of the timed context: the parent's own error
// wins over our timer.
func timedOut(parent context.Context, d time.Duration, cfg *config) error {
	if err := parent.Err(); err != nil {
		return err
	}
	if cfg.onTimeout != nil {
		cfg.onTimeout()
	}
	return &DeadlineError{Timeout: d}
}
