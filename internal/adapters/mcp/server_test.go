package mcp_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/riveting/internal/adapters/mcp"
	"github.com/aretw0/riveting/internal/adapters/memory"
	"github.com/aretw0/riveting/internal/search"
	"github.com/aretw0/riveting/pkg/feature"
	"github.com/aretw0/riveting/pkg/mainloop"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newServer(t *testing.T, opts ...mcp.Option) (*mcp.Server, *search.Feature) {
	t.Helper()
	loop := mainloop.New()
	t.Cleanup(loop.Stop)

	it := search.NewInteractor(search.Loaded(search.Model{}), memory.New(nil, memory.WithDelay(10*time.Millisecond)))
	f := search.NewFeature(it, language.English, feature.WithLoop(loop))
	t.Cleanup(f.Close)
	return mcp.NewServer(f, opts...), f
}

func TestSendAction_ReturnsFirstViewState(t *testing.T) {
	s, _ := newServer(t)

	vs, err := s.HandleSendAction(context.Background(), mcplib.CallToolRequest{}, mcp.ActionArgs{
		Type: search.TypeUpdateSearchText,
		Text: "iron",
	})
	require.NoError(t, err)
	require.NotNil(t, vs.Display)
	assert.Equal(t, "iron", vs.Display.SearchText)

	vs, err = s.HandleSendAction(context.Background(), mcplib.CallToolRequest{}, mcp.ActionArgs{Type: search.TypeSubmitSearch})
	require.NoError(t, err)
	assert.True(t, vs.Display.Results.IsLoading(), "submit first emits the loading results")
}

func TestSendAction_IgnoredActionSettles(t *testing.T) {
	s, _ := newServer(t, mcp.WithSettle(20*time.Millisecond))

	// Unchanged text produces no emission.
	vs, err := s.HandleSendAction(context.Background(), mcplib.CallToolRequest{}, mcp.ActionArgs{
		Type: search.TypeUpdateSearchText,
	})
	require.NoError(t, err)
	assert.Equal(t, search.ViewLoaded, vs.Kind)
}

func TestSendAction_UnknownType(t *testing.T) {
	s, _ := newServer(t)

	_, err := s.HandleSendAction(context.Background(), mcplib.CallToolRequest{}, mcp.ActionArgs{Type: "explode"})
	assert.ErrorIs(t, err, search.ErrUnknownAction)
}

func TestGetViewState(t *testing.T) {
	s, f := newServer(t)

	f.Send(search.ToggleAlert{Alert: search.AlertSubmitSearch, Open: true})
	require.Eventually(t, func() bool {
		vs := f.ViewState()
		return vs.Display != nil && vs.Display.PresentedAlert == search.AlertSubmitSearch
	}, time.Second, 5*time.Millisecond)

	vs, err := s.HandleGetViewState(context.Background(), mcplib.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, search.AlertSubmitSearch, vs.Display.PresentedAlert)
	assert.NotNil(t, s.MCPServer())
}
