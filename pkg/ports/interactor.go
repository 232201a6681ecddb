package ports

import "github.com/aretw0/riveting/pkg/store"

// Subject is what the test harness needs: an action entry point and the
// domain stream it feeds.
type Subject[A, D any] interface {
	// Interact processes a single action. Effects happen only through the
	// interactor's store.
	Interact(action A)

	// Subscribe attaches to the domain stream. The first value is the
	// current domain.
	Subscribe() *store.Subscription[D]
}

// Interactor reacts to actions by mutating the domain it owns and
// broadcasting every change. Embedding a *store.Store[D] provides everything
// but Interact.
type Interactor[A, D any] interface {
	Subject[A, D]

	// Current returns the latest domain snapshot without blocking.
	Current() D

	// Close ends the domain stream and cancels in-flight async work.
	Close()
}

// Reducer maps a domain to the view state a rendering surface needs.
// Implementations must be pure and safe for concurrent use.
type Reducer[D, V any] interface {
	Reduce(domain D) V
}

// ReducerFunc adapts a plain function to Reducer.
type ReducerFunc[D, V any] func(D) V

// Reduce calls f(domain).
func (f ReducerFunc[D, V]) Reduce(domain D) V {
	return f(domain)
}
