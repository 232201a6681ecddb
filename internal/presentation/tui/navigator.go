package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/aretw0/riveting/pkg/ports"
)

// Navigator implements ports.Navigator on a terminal: pushed screens stack
// up, a presented screen sits on top of them, and each change is announced
// on the output.
type Navigator struct {
	mu        sync.Mutex
	out       io.Writer
	render    Render
	stack     []ports.Screen
	presented ports.Screen
}

var _ ports.Navigator = (*Navigator)(nil)

// NewNavigator writes to out, rendering screens with render.
func NewNavigator(out io.Writer, render Render) *Navigator {
	return &Navigator{out: out, render: render}
}

// Push implements ports.Navigator.
func (n *Navigator) Push(screen ports.Screen, animated bool) {
	n.mu.Lock()
	n.stack = append(n.stack, screen)
	n.mu.Unlock()
	n.show(screen)
}

// Present implements ports.Navigator.
func (n *Navigator) Present(screen ports.Screen, animated bool) {
	n.mu.Lock()
	n.presented = screen
	n.mu.Unlock()
	n.show(screen)
}

// Dismiss implements ports.Navigator.
func (n *Navigator) Dismiss(animated bool) {
	n.mu.Lock()
	n.presented = nil
	n.mu.Unlock()
}

// Pop implements ports.Navigator.
func (n *Navigator) Pop(animated bool) {
	n.mu.Lock()
	if len(n.stack) > 0 {
		n.stack = n.stack[:len(n.stack)-1]
	}
	n.mu.Unlock()
}

// Top returns the visible screen, or nil on the root screen.
func (n *Navigator) Top() ports.Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.presented != nil {
		return n.presented
	}
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of pushed screens.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}

func (n *Navigator) show(screen ports.Screen) {
	md := fmt.Sprintf("# %s\n\n_Type /back to return._\n", screen.Title())
	out, err := n.render(md)
	if err != nil {
		out = md
	}
	fmt.Fprint(n.out, out)
}
