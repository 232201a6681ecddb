package search_test

import (
	"testing"

	"github.com/aretw0/riveting/internal/search"
	"github.com/aretw0/riveting/pkg/ports"
	"github.com/stretchr/testify/assert"
)

type recordingNavigator struct {
	pushed []ports.Screen
}

func (n *recordingNavigator) Push(s ports.Screen, animated bool) { n.pushed = append(n.pushed, s) }
func (n *recordingNavigator) Present(ports.Screen, bool)         {}
func (n *recordingNavigator) Dismiss(bool)                       {}
func (n *recordingNavigator) Pop(bool)                           {}

func TestRouter_PushesDetail(t *testing.T) {
	nav := &recordingNavigator{}
	r := search.NewRouter(nav)

	r.Navigate(search.DetailEvent{Item: "Thor"})

	assert.Equal(t, []ports.Screen{search.DetailScreen{Item: "Thor"}}, nav.pushed)
	assert.Equal(t, "Thor", nav.pushed[0].Title())
}

func TestRouter_DetachedDropsEvents(t *testing.T) {
	nav := &recordingNavigator{}
	r := search.NewRouter(nil)

	r.Navigate(search.DetailEvent{Item: "lost"})
	r.Attach(nav)
	r.Navigate(search.DetailEvent{Item: "Hulk"})
	r.Attach(nil)
	r.Navigate(search.DetailEvent{Item: "lost again"})

	assert.Equal(t, []ports.Screen{search.DetailScreen{Item: "Hulk"}}, nav.pushed)
}
