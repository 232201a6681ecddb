package feature

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aretw0/riveting/internal/logging"
	"github.com/aretw0/riveting/pkg/domain"
	"github.com/aretw0/riveting/pkg/mainloop"
	"github.com/aretw0/riveting/pkg/ports"
)

// Feature connects an Interactor to a Reducer and publishes view states.
type Feature[A, D, V any] struct {
	interactor ports.Interactor[A, D]
	reducer    ports.Reducer[D, V]
	loop       *mainloop.Loop
	logger     *slog.Logger

	mu        sync.RWMutex
	viewState V
	closed    bool
	observers map[uint64]func(V)
	nextObs   uint64

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a Feature. The initial view state is reduced from the
// interactor's current domain before New returns.
func New[A, D, V any](interactor ports.Interactor[A, D], reducer ports.Reducer[D, V], opts ...Option) *Feature[A, D, V] {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.loop == nil {
		cfg.loop = mainloop.Main()
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	f := &Feature[A, D, V]{
		interactor: interactor,
		reducer:    reducer,
		loop:       cfg.loop,
		logger:     cfg.logger,
		viewState:  reducer.Reduce(interactor.Current()),
		observers:  make(map[uint64]func(V)),
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	f.bind(ctx)
	return f
}

// bind subscribes before returning so no emission after New is missed.
func (f *Feature[A, D, V]) bind(ctx context.Context) {
	sub := f.interactor.Subscribe()
	go func() {
		defer close(f.done)
		defer sub.Close()

		for {
			d, err := sub.Next(ctx)
			if err != nil {
				if errors.Is(err, domain.ErrStreamEnded) {
					f.logger.Debug("domain stream ended")
				}
				return
			}
			vs := f.reducer.Reduce(d)
			if err := f.loop.Do(ctx, func() { f.publish(vs) }); err != nil {
				f.logger.Debug("view state not published", "err", err)
				return
			}
		}
	}()
}

// publish runs on the UI loop.
func (f *Feature[A, D, V]) publish(vs V) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.viewState = vs
	observers := make([]func(V), 0, len(f.observers))
	for _, fn := range f.observers {
		observers = append(observers, fn)
	}
	f.mu.Unlock()

	for _, fn := range observers {
		fn(vs)
	}
}

// ViewState returns the latest published view state.
func (f *Feature[A, D, V]) ViewState() V {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.viewState
}

// Observe registers fn to be called on the UI loop after every publish.
// The returned function unregisters it.
func (f *Feature[A, D, V]) Observe(fn func(V)) (cancel func()) {
	f.mu.Lock()
	f.nextObs++
	id := f.nextObs
	f.observers[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.observers, id)
		f.mu.Unlock()
	}
}

// Send forwards action unchanged to the interactor. It never touches the
// view state itself.
func (f *Feature[A, D, V]) Send(action A) {
	f.interactor.Interact(action)
}

// Interactor returns the interactor that handles this feature's actions.
func (f *Feature[A, D, V]) Interactor() ports.Interactor[A, D] {
	return f.interactor
}

// Reducer returns the reducer that maps domains to view states.
func (f *Feature[A, D, V]) Reducer() ports.Reducer[D, V] {
	return f.reducer
}

// Done is closed once the subscription goroutine has exited.
func (f *Feature[A, D, V]) Done() <-chan struct{} {
	return f.done
}

// Close stops the subscription goroutine and closes the interactor, which
// ends its domain stream and cancels in-flight async work.
func (f *Feature[A, D, V]) Close() {
	f.closeOnce.Do(func() {
		f.mu.Lock()
		f.closed = true
		f.observers = make(map[uint64]func(V))
		f.mu.Unlock()

		f.cancel()
		f.interactor.Close()
		<-f.done
	})
}
