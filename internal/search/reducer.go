package search

import (
	"github.com/aretw0/riveting/pkg/domain"
	"github.com/aretw0/riveting/pkg/ports"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ViewKind tags the variant held by a ViewState.
type ViewKind string

const (
	ViewLoading ViewKind = "loading"
	ViewError   ViewKind = "error"
	ViewLoaded  ViewKind = "loaded"
)

// AlertViewState is the rendered copy of an alert. The Domain only knows
// which alert is open; the words live here.
type AlertViewState struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	PrimaryButton   string `json:"primary_button"`
	SecondaryButton string `json:"secondary_button"`
}

// Display is what the loaded screen shows.
type Display struct {
	SearchText     string                  `json:"search_text"`
	Results        domain.Status[[]string] `json:"results"`
	SearchAlert    AlertViewState          `json:"search_alert"`
	PresentedAlert Alert                   `json:"presented_alert,omitempty"` // Empty when no alert is open
}

// ViewState is the UI-ready projection of a Domain.
type ViewState struct {
	Kind    ViewKind `json:"kind"`
	Message string   `json:"message,omitempty"` // Only for ViewError
	Display *Display `json:"display,omitempty"` // Only for ViewLoaded
}

// Reducer projects search Domains into ViewStates. It holds only immutable
// configuration and is safe for concurrent use.
type Reducer struct {
	printer *message.Printer
}

var _ ports.Reducer[Domain, ViewState] = Reducer{}

// NewReducer returns a reducer producing copy for lang. Languages without
// translations fall back to English.
func NewReducer(lang language.Tag) Reducer {
	return Reducer{printer: message.NewPrinter(lang)}
}

// Reduce implements ports.Reducer.
func (r Reducer) Reduce(d Domain) ViewState {
	p := r.printer
	if p == nil {
		p = message.NewPrinter(language.English)
	}

	switch d.Kind {
	case KindError:
		return ViewState{Kind: ViewError, Message: p.Sprintf(keyErrorMessage)}
	case KindLoaded:
		return ViewState{Kind: ViewLoaded, Display: display(p, d.Model, "")}
	case KindAlert:
		return ViewState{Kind: ViewLoaded, Display: display(p, d.Model, d.Alert)}
	default:
		return ViewState{Kind: ViewLoading}
	}
}

func display(p *message.Printer, m Model, presented Alert) *Display {
	return &Display{
		SearchText: m.SearchText,
		Results:    m.Results,
		SearchAlert: AlertViewState{
			Title:           p.Sprintf(keyAlertTitle, m.SearchText),
			Subtitle:        p.Sprintf(keyAlertSubtitle),
			PrimaryButton:   p.Sprintf(keyAlertPrimary),
			SecondaryButton: p.Sprintf(keyAlertSecondary),
		},
		PresentedAlert: presented,
	}
}
