package store

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/riveting/pkg/domain"
)

// Store owns a feature's domain state.
// Safe for concurrent use.
type Store[D any] struct {
	name   string
	logger *slog.Logger
	hooks  domain.LifecycleHooks

	// ctx is the parent of every task context; canceled by Close.
	ctx    context.Context
	cancel context.CancelFunc

	// current is written only while mu is held, so readers never block.
	current atomic.Pointer[D]

	mu       sync.Mutex
	version  uint64
	closed   bool
	subs     map[uint64]*Subscription[D]
	tasks    map[uint64]*Task
	nextSub  uint64
	nextTask uint64
}

// New creates a store holding initial.
func New[D any](initial D, opts ...Option) *Store[D] {
	cfg := newConfig(opts)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store[D]{
		name:   cfg.name,
		logger: cfg.logger,
		hooks:  cfg.hooks,
		ctx:    ctx,
		cancel: cancel,
		subs:   make(map[uint64]*Subscription[D]),
		tasks:  make(map[uint64]*Task),
	}
	s.current.Store(&initial)
	return s
}

// Current returns the latest committed snapshot.
func (s *Store[D]) Current() D {
	return *s.current.Load()
}

// Version returns the number of committed mutations.
func (s *Store[D]) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Closed reports whether Close has been called.
func (s *Store[D]) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Subscribers returns the number of attached subscriptions.
func (s *Store[D]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Subscribe attaches a new subscriber. Its first value is the current
// snapshot, followed by every later emission until the store is closed.
// Subscribing to a closed store yields the final snapshot and then ends.
func (s *Store[D]) Subscribe() *Subscription[D] {
	s.mu.Lock()
	s.nextSub++
	sub := newSubscription(s, s.nextSub)
	sub.queue = append(sub.queue, *s.current.Load())
	if s.closed {
		sub.ended = true
		s.mu.Unlock()
		return sub
	}
	s.subs[sub.id] = sub
	n := len(s.subs)
	s.mu.Unlock()

	s.raiseSubscription(true, n)
	return sub
}

func (s *Store[D]) detach(id uint64) {
	s.mu.Lock()
	if _, ok := s.subs[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.subs, id)
	n := len(s.subs)
	s.mu.Unlock()

	s.raiseSubscription(false, n)
}

// Update computes a new domain from the current one and broadcasts it.
// The closure runs while the store is locked: it must not call back into
// the store's mutating methods. A panicking closure leaves the domain
// unchanged and the store usable. Update on a closed store is a no-op.
func (s *Store[D]) Update(update func(D) D) {
	version, n, elapsed, ok := s.apply(update)
	if !ok {
		s.logger.Debug("update ignored", "err", domain.ErrStoreClosed)
		return
	}
	s.raiseCommit(domain.MutationSync, 0, version, n, elapsed)
}

// apply runs update under mu and commits its result.
func (s *Store[D]) apply(update func(D) D) (version uint64, n int, elapsed time.Duration, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, 0, 0, false
	}
	start := time.Now()
	next := update(*s.current.Load())
	elapsed = time.Since(start)
	version, n = s.commitLocked(next)
	return version, n, elapsed, true
}

// UpdateAsync starts update on its own goroutine with the snapshot current
// at call time. On completion the returned domain is committed and
// broadcast exactly like Update, unless the task was canceled or the store
// closed first; then nothing is emitted and the current domain is left
// untouched. Failures are the closure's business: it should encode them in
// the domain it returns.
//
// The committed value replaces the domain wholesale, so synchronous updates
// that landed while the task ran are overwritten. Use UpdateAsyncThen when
// the result must be merged into the domain current at commit time.
func (s *Store[D]) UpdateAsync(update func(ctx context.Context, d D) D) *Task {
	return s.UpdateAsyncThen(func(ctx context.Context, d D) func(D) D {
		next := update(ctx, d)
		return func(D) D { return next }
	})
}

// UpdateAsyncThen is UpdateAsync in two phases. fetch runs on its own
// goroutine with the snapshot current at call time and returns a merge
// function; merge runs under the store lock against the domain current at
// commit time, and its result is committed and broadcast. merge follows
// the same rules as an Update closure.
func (s *Store[D]) UpdateAsyncThen(fetch func(ctx context.Context, d D) func(D) D) *Task {
	s.mu.Lock()
	s.nextTask++
	ctx, cancel := context.WithCancel(s.ctx)
	t := newTask(s.nextTask, &s.mu, cancel)
	if s.closed {
		t.state = TaskCanceled
		t.reason = reasonClosed
		close(t.done)
		s.mu.Unlock()
		cancel()
		s.logger.Debug("async update ignored", "task_id", t.id, "err", domain.ErrStoreClosed)
		return t
	}
	snapshot := *s.current.Load()
	s.tasks[t.id] = t
	s.mu.Unlock()

	go s.run(ctx, t, snapshot, fetch)
	return t
}

func (s *Store[D]) run(ctx context.Context, t *Task, snapshot D, fetch func(context.Context, D) func(D) D) {
	defer close(t.done)
	defer t.cancel()

	start := time.Now()
	merge := fetch(ctx, snapshot)

	version, n, reason, committed := s.commitTask(t, merge)
	elapsed := time.Since(start)
	if !committed {
		s.logger.Debug("async update dropped", "task_id", t.id, "reason", reason)
		if s.hooks.OnTaskDropped != nil {
			s.hooks.OnTaskDropped(context.Background(), &domain.TaskEvent{
				EventBase: s.eventBase(),
				TaskID:    t.id,
				Reason:    reason,
			})
		}
		return
	}
	s.raiseCommit(domain.MutationAsync, t.id, version, n, elapsed)
}

// commitTask commits merge's result if t is still pending. The pending
// check and the commit share one critical section, so Cancel and commit
// never both win.
func (s *Store[D]) commitTask(t *Task, merge func(D) D) (version uint64, n int, reason string, committed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, t.id)
	if t.state != TaskPending {
		return 0, 0, t.reason, false
	}
	next := merge(*s.current.Load())
	t.state = TaskCommitted
	version, n = s.commitLocked(next)
	return version, n, "", true
}

// commitLocked stores next and queues it on every subscriber.
// Queuing under mu is what keeps emissions in commit order.
func (s *Store[D]) commitLocked(next D) (uint64, int) {
	s.current.Store(&next)
	s.version++
	for _, sub := range s.subs {
		sub.push(next)
	}
	return s.version, len(s.subs)
}

// Close ends the stream for every subscriber and cancels pending async
// updates. Later mutations are ignored. Close is idempotent.
func (s *Store[D]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for _, t := range s.tasks {
		t.state = TaskCanceled
		t.reason = reasonClosed
	}
	subs := s.subs
	s.subs = make(map[uint64]*Subscription[D])
	s.mu.Unlock()

	s.cancel()
	for _, sub := range subs {
		sub.end()
	}
	s.logger.Debug("store closed", "subscribers", len(subs))
}

func (s *Store[D]) eventBase() domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Store: s.name}
}

func (s *Store[D]) raiseCommit(kind domain.MutationKind, taskID, version uint64, subscribers int, elapsed time.Duration) {
	ctx := context.Background()
	if s.hooks.OnMutation != nil {
		s.hooks.OnMutation(ctx, &domain.MutationEvent{
			EventBase: s.eventBase(),
			Kind:      kind,
			TaskID:    taskID,
			Version:   version,
			Duration:  elapsed,
		})
	}
	if s.hooks.OnEmit != nil {
		s.hooks.OnEmit(ctx, &domain.EmitEvent{
			EventBase:   s.eventBase(),
			Version:     version,
			Subscribers: subscribers,
		})
	}
}

func (s *Store[D]) raiseSubscription(attached bool, subscribers int) {
	if s.hooks.OnSubscription == nil {
		return
	}
	s.hooks.OnSubscription(context.Background(), &domain.SubscriptionEvent{
		EventBase:   s.eventBase(),
		Attached:    attached,
		Subscribers: subscribers,
	})
}
