package search

import "fmt"

// Transition is one edge of the search screen's state machine: sending
// Action to a domain of kind From leads to a domain of kind To.
type Transition struct {
	From   Kind
	Action Envelope
	To     Kind
	// CatalogFails marks edges taken only when the catalog returns an error.
	CatalogFails bool
}

// Label names the edge for diagrams.
func (t Transition) Label() string {
	label := t.Action.Type
	if t.Action.Type == TypeToggleAlert {
		if t.Action.Open {
			label += " open"
		} else {
			label += " close"
		}
	}
	if t.CatalogFails {
		label = fmt.Sprintf("%s (catalog fails)", label)
	}
	return label
}

// Transitions lists the kind changes the interactor performs. Actions not
// listed for a kind leave the domain unchanged.
var Transitions = []Transition{
	{From: KindLoading, Action: Envelope{Type: TypeLoad}, To: KindLoaded},
	{From: KindLoading, Action: Envelope{Type: TypeLoad}, To: KindError, CatalogFails: true},
	{From: KindError, Action: Envelope{Type: TypeLoad}, To: KindLoaded},
	{From: KindLoaded, Action: Envelope{Type: TypeUpdateSearchText, Text: "Thor"}, To: KindLoaded},
	{From: KindLoaded, Action: Envelope{Type: TypeToggleAlert, Open: true}, To: KindAlert},
	{From: KindLoaded, Action: Envelope{Type: TypeSubmitSearch}, To: KindLoaded},
	{From: KindLoaded, Action: Envelope{Type: TypeClearSearch}, To: KindLoaded},
	{From: KindLoaded, Action: Envelope{Type: TypeClearSearch}, To: KindError, CatalogFails: true},
	{From: KindAlert, Action: Envelope{Type: TypeToggleAlert, Open: false}, To: KindLoaded},
	{From: KindAlert, Action: Envelope{Type: TypeUpdateSearchText, Text: "Thor"}, To: KindLoaded},
	{From: KindAlert, Action: Envelope{Type: TypeSubmitSearch}, To: KindLoaded},
}

// Kinds lists every domain kind, initial first.
var Kinds = []Kind{KindLoading, KindError, KindLoaded, KindAlert}
