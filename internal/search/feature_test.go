package search_test

import (
	"testing"
	"time"

	"github.com/aretw0/riveting/internal/adapters/memory"
	"github.com/aretw0/riveting/internal/search"
	"github.com/aretw0/riveting/pkg/feature"
	"github.com/aretw0/riveting/pkg/mainloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFeature_LoadsAndSearches(t *testing.T) {
	loop := mainloop.New()
	defer loop.Stop()

	it := search.NewInteractor(search.Loading(), memory.New(heroes, memory.WithDelay(5*time.Millisecond)))
	f := search.NewFeature(it, language.English, feature.WithLoop(loop))
	defer f.Close()

	require.Eventually(t, func() bool {
		return f.ViewState().Kind == search.ViewLoaded
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, heroes, f.ViewState().Display.Results.Value)

	f.Send(search.UpdateSearchText{Text: "widow"})
	f.Send(search.SubmitSearch{})

	require.Eventually(t, func() bool {
		vs := f.ViewState()
		return vs.Display != nil && vs.Display.Results.IsLoaded() && len(vs.Display.Results.Value) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"Black Widow"}, f.ViewState().Display.Results.Value)
}

func TestFeature_SkipsLoadWhenAlreadyLoaded(t *testing.T) {
	loop := mainloop.New()
	defer loop.Stop()

	it := search.NewInteractor(search.Loaded(loadedModel()), memory.New(heroes))
	f := search.NewFeature(it, language.English, feature.WithLoop(loop))
	defer f.Close()

	assert.Equal(t, search.ViewLoaded, f.ViewState().Kind)
	assert.Equal(t, uint64(0), it.Version())
}
