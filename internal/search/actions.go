package search

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownAction is returned when decoding an unrecognized action type.
var ErrUnknownAction = errors.New("unknown action")

// Action is one user intent on the search screen.
type Action interface {
	isAction()
}

// Load fetches the full catalog, leaving the loading state.
type Load struct{}

// UpdateSearchText replaces the query. Ignored before the first load and
// when the text is unchanged.
type UpdateSearchText struct {
	Text string
}

// ToggleAlert opens or closes an alert over the loaded screen.
type ToggleAlert struct {
	Alert Alert
	Open  bool
}

// SubmitSearch filters the catalog by the current query. A newer submit
// cancels the one in flight.
type SubmitSearch struct{}

// ClearSearch resets the query and shows the full catalog again.
type ClearSearch struct{}

func (Load) isAction()             {}
func (UpdateSearchText) isAction() {}
func (ToggleAlert) isAction()      {}
func (SubmitSearch) isAction()     {}
func (ClearSearch) isAction()      {}

// Wire names of the actions.
const (
	TypeLoad             = "load"
	TypeUpdateSearchText = "update_search_text"
	TypeToggleAlert      = "toggle_alert"
	TypeSubmitSearch     = "submit_search"
	TypeClearSearch      = "clear_search"
)

// ActionTypes lists the accepted wire names.
var ActionTypes = []string{TypeLoad, TypeUpdateSearchText, TypeToggleAlert, TypeSubmitSearch, TypeClearSearch}

// Envelope is the wire form of an Action.
type Envelope struct {
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Alert Alert  `json:"alert,omitempty"`
	Open  bool   `json:"open,omitempty"`
}

// Action converts the envelope into the Action it names.
func (e Envelope) Action() (Action, error) {
	switch e.Type {
	case TypeLoad:
		return Load{}, nil
	case TypeUpdateSearchText:
		text, err := SanitizeText(e.Text)
		if err != nil {
			return nil, err
		}
		return UpdateSearchText{Text: text}, nil
	case TypeToggleAlert:
		alert := e.Alert
		if alert == "" {
			alert = AlertSubmitSearch
		}
		return ToggleAlert{Alert: alert, Open: e.Open}, nil
	case TypeSubmitSearch:
		return SubmitSearch{}, nil
	case TypeClearSearch:
		return ClearSearch{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, e.Type)
	}
}

// DecodeAction parses a JSON envelope such as {"type":"update_search_text","text":"O"}.
func DecodeAction(data []byte) (Action, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode action: %w", err)
	}
	return env.Action()
}
