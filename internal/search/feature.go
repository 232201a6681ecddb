package search

import (
	"github.com/aretw0/riveting/pkg/feature"
	"golang.org/x/text/language"
)

// Feature is the wired search screen.
type Feature = feature.Feature[Action, Domain, ViewState]

// NewFeature wires interactor to a reducer for lang. An interactor still
// in the loading state is sent Load.
func NewFeature(interactor *Interactor, lang language.Tag, opts ...feature.Option) *Feature {
	f := feature.New[Action, Domain, ViewState](interactor, NewReducer(lang), opts...)
	if interactor.Current().Kind == KindLoading {
		f.Send(Load{})
	}
	return f
}
