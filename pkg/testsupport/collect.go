package testsupport

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/riveting/pkg/domain"
	"github.com/aretw0/riveting/pkg/ports"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Collect subscribes to subject, plays steps against it and returns exactly
// the next count emissions.
//
// The subscription is taken before any step runs. Unless IncludeFirst is
// given, the seed emission is discarded before counting. Sending and
// collecting run concurrently; the sender stops once count emissions are
// in, and later emissions are ignored. Finishing the script early is not an
// error: collection goes on until count is reached, the stream ends
// (*UnfulfilledError) or the timeout fires (*DeadlineError).
func Collect[A, D any](ctx context.Context, subject ports.Subject[A, D], count int, steps []Step[A], opts ...Option) ([]D, error) {
	if count <= 0 {
		return nil, &InvalidCountError{Count: count}
	}
	cfg := newConfig(opts...)

	sub := subject.Subscribe()
	defer sub.Close()

	var progress atomic.Int64
	out, err := WithTimeout(ctx, cfg.timeout, func(ctx context.Context) ([]D, error) {
		if !cfg.includeFirst {
			if _, err := sub.Next(ctx); err != nil {
				return nil, streamError[D](err, nil, count)
			}
		}

		collected := make([]D, 0, count)
		g, gctx := errgroup.WithContext(ctx)
		sendCtx, stopSending := context.WithCancel(gctx)
		defer stopSending()

		g.Go(func() error {
			defer stopSending()
			for len(collected) < count {
				d, err := sub.Next(gctx)
				if err != nil {
					return streamError(err, collected, count)
				}
				collected = append(collected, d)
				progress.Add(1)
			}
			return nil
		})
		g.Go(func() error {
			play(sendCtx, subject, steps)
			return nil
		})

		if err := g.Wait(); err != nil {
			return nil, err
		}
		return collected, nil
	}, opts...)

	var deadline *DeadlineError
	if errors.As(err, &deadline) {
		deadline.Collected = int(progress.Load())
		deadline.Expected = count
	}
	return out, err
}

// RequireCollect is Collect with a background context that fails the test
// on error.
func RequireCollect[A, D any](t testing.TB, subject ports.Subject[A, D], count int, steps []Step[A], opts ...Option) []D {
	t.Helper()
	out, err := Collect(context.Background(), subject, count, steps, opts...)
	require.NoError(t, err, "collecting %d domains", count)
	return out
}

func play[A, D any](ctx context.Context, subject ports.Subject[A, D], steps []Step[A]) {
	for _, step := range steps {
		if ctx.Err() != nil {
			return
		}
		if !step.IsWait() {
			subject.Interact(step.Action())
			continue
		}
		timer := time.NewTimer(step.Duration())
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

func streamError[D any](err error, collected []D, count int) error {
	if !errors.Is(err, domain.ErrStreamEnded) {
		return err
	}
	partial := make([]any, len(collected))
	for i, d := range collected {
		partial[i] = d
	}
	return &UnfulfilledError{Collected: partial, Expected: count}
}
