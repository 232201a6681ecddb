package search

import (
	"sync"

	"github.com/aretw0/riveting/pkg/ports"
)

// DetailEvent asks to show the detail screen of one result.
type DetailEvent struct {
	Item string
}

// DetailScreen shows a single catalog entry.
type DetailScreen struct {
	Item string
}

// Title implements ports.Screen.
func (s DetailScreen) Title() string { return s.Item }

// Router maps search navigation events onto a Navigator. The navigator is
// optional; events are dropped while none is attached.
type Router struct {
	mu        sync.Mutex
	navigator ports.Navigator
}

var _ ports.NavigationRouter[DetailEvent] = (*Router)(nil)

// NewRouter returns a router bound to nav, which may be nil.
func NewRouter(nav ports.Navigator) *Router {
	return &Router{navigator: nav}
}

// Attach replaces the navigator. Pass nil to detach.
func (r *Router) Attach(nav ports.Navigator) {
	r.mu.Lock()
	r.navigator = nav
	r.mu.Unlock()
}

// Navigate implements ports.NavigationRouter.
func (r *Router) Navigate(event DetailEvent) {
	r.mu.Lock()
	nav := r.navigator
	r.mu.Unlock()

	if nav == nil {
		return
	}
	nav.Push(DetailScreen{Item: event.Item}, true)
}
