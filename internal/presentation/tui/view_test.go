package tui_test

import (
	"testing"

	"github.com/aretw0/riveting/internal/presentation/tui"
	"github.com/aretw0/riveting/internal/search"
	"github.com/aretw0/riveting/pkg/domain"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMarkdown(t *testing.T) {
	r := search.NewReducer(language.English)

	tests := []struct {
		name     string
		domain   search.Domain
		contains []string
		excludes []string
	}{
		{
			name:     "loading",
			domain:   search.Loading(),
			contains: []string{"_Loading..._"},
		},
		{
			name:     "error",
			domain:   search.Failed(),
			contains: []string{"Something went wrong"},
		},
		{
			name: "results",
			domain: search.Loaded(search.Model{
				SearchText: "o",
				Results:    domain.Loaded([]string{"Iron Man", "Thor"}),
			}),
			contains: []string{"Search: `o`", "1. Iron Man", "2. Thor"},
			excludes: []string{"[y]"},
		},
		{
			name:     "searching",
			domain:   search.Loaded(search.Model{SearchText: "o", Results: domain.Loading[[]string]()}),
			contains: []string{"_Searching..._"},
		},
		{
			name:     "no results",
			domain:   search.Loaded(search.Model{Results: domain.Loaded([]string{})}),
			contains: []string{"_No results._"},
		},
		{
			name:     "failed results",
			domain:   search.Loaded(search.Model{Results: domain.Failed[[]string]("offline")}),
			contains: []string{"**offline**"},
		},
		{
			name:     "alert",
			domain:   search.Alerting(search.AlertSubmitSearch, search.Model{SearchText: "Thor"}),
			contains: []string{"Search for Thor?", "[y] Search  [n] Cancel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := tui.Markdown(r.Reduce(tt.domain))
			for _, s := range tt.contains {
				assert.Contains(t, md, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, md, s)
			}
		})
	}
}
