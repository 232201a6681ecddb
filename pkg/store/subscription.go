package store

import (
	"context"
	"iter"
	"sync"

	"github.com/aretw0/riveting/pkg/domain"
)

// Subscription is one subscriber's view of a store's domain stream.
// It is meant for a single consuming goroutine.
type Subscription[D any] struct {
	id    uint64
	store *Store[D]

	mu     sync.Mutex
	queue  []D
	ended  bool
	notify chan struct{}
}

func newSubscription[D any](s *Store[D], id uint64) *Subscription[D] {
	return &Subscription[D]{
		id:     id,
		store:  s,
		notify: make(chan struct{}, 1),
	}
}

func (sub *Subscription[D]) push(d D) {
	sub.mu.Lock()
	if sub.ended {
		sub.mu.Unlock()
		return
	}
	sub.queue = append(sub.queue, d)
	sub.mu.Unlock()
	sub.wake()
}

// end marks the stream finished; already queued values are still delivered.
func (sub *Subscription[D]) end() {
	sub.mu.Lock()
	sub.ended = true
	sub.mu.Unlock()
	sub.wake()
}

func (sub *Subscription[D]) wake() {
	select {
	case sub.notify <- struct{}{}:
	default:
	}
}

// Next blocks until the next emission is available.
// It returns domain.ErrStreamEnded once the store is closed and the queue is
// drained, or ctx.Err() if ctx is done first.
func (sub *Subscription[D]) Next(ctx context.Context) (D, error) {
	var zero D
	for {
		sub.mu.Lock()
		if len(sub.queue) > 0 {
			d := sub.queue[0]
			sub.queue[0] = zero
			sub.queue = sub.queue[1:]
			sub.mu.Unlock()
			return d, nil
		}
		ended := sub.ended
		sub.mu.Unlock()

		if ended {
			return zero, domain.ErrStreamEnded
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-sub.notify:
		}
	}
}

// All returns an iterator over the stream. It stops when the stream ends or
// ctx is done.
func (sub *Subscription[D]) All(ctx context.Context) iter.Seq[D] {
	return func(yield func(D) bool) {
		for {
			d, err := sub.Next(ctx)
			if err != nil {
				return
			}
			if !yield(d) {
				return
			}
		}
	}
}

// Pending returns the number of queued, undelivered emissions.
func (sub *Subscription[D]) Pending() int {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	return len(sub.queue)
}

// Close detaches the subscription and drops anything still queued.
// Next returns domain.ErrStreamEnded afterwards.
func (sub *Subscription[D]) Close() {
	sub.store.detach(sub.id)
	sub.mu.Lock()
	sub.ended = true
	sub.queue = nil
	sub.mu.Unlock()
	sub.wake()
}
