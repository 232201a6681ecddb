package search

import "github.com/aretw0/riveting/pkg/domain"

// Kind tags the variant held by a Domain.
type Kind string

const (
	KindLoading Kind = "loading"
	KindError   Kind = "error"
	KindLoaded  Kind = "loaded"
	KindAlert   Kind = "alert"
)

// Alert names an alert the screen can present.
type Alert string

const (
	AlertSubmitSearch Alert = "submit_search"
)

// Model is the state shared by the loaded and alert variants.
type Model struct {
	SearchText string                  `json:"search_text"`
	Results    domain.Status[[]string] `json:"results"`
}

// Domain is the search screen's business state. Model is meaningful only
// for KindLoaded and KindAlert; Alert only for KindAlert.
type Domain struct {
	Kind  Kind  `json:"kind"`
	Model Model `json:"model"`
	Alert Alert `json:"alert,omitempty"`
}

// Loading is the state before the first load.
func Loading() Domain { return Domain{Kind: KindLoading} }

// Failed is the state after the first load failed.
func Failed() Domain { return Domain{Kind: KindError} }

// Loaded shows m.
func Loaded(m Model) Domain { return Domain{Kind: KindLoaded, Model: m} }

// Alerting shows m with alert presented over it.
func Alerting(alert Alert, m Model) Domain {
	return Domain{Kind: KindAlert, Model: m, Alert: alert}
}

// CurrentModel returns the model of a loaded or alert domain.
func (d Domain) CurrentModel() (Model, bool) {
	switch d.Kind {
	case KindLoaded, KindAlert:
		return d.Model, true
	default:
		return Model{}, false
	}
}
