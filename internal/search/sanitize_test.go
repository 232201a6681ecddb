package search_test

import (
	"strings"
	"testing"

	"github.com/aretw0/riveting/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeText_SizeLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"Under Limit", search.MaxTextSize - 1, false},
		{"Exact Limit", search.MaxTextSize, false},
		{"Over Limit", search.MaxTextSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := search.SanitizeText(strings.Repeat("a", tt.size))
			if tt.wantErr {
				assert.ErrorIs(t, err, search.ErrTextTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeText_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "Iron Man", "Iron Man"},
		{"Newline", "Iron\nMan", "IronMan"},
		{"ANSI Code", "\x1b[31mThor\x1b[0m", "[31mThor[0m"},
		{"Null Byte", "Hu\x00lk", "Hulk"},
		{"Unicode", "Mulher-Maravilha ✨", "Mulher-Maravilha ✨"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := search.SanitizeText(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeText_InvalidUTF8(t *testing.T) {
	_, err := search.SanitizeText("bad \xff byte")
	assert.ErrorIs(t, err, search.ErrInvalidUTF8)
}

func TestEnvelope_SanitizesText(t *testing.T) {
	action, err := search.Envelope{Type: search.TypeUpdateSearchText, Text: "Th\x07or"}.Action()
	require.NoError(t, err)
	assert.Equal(t, search.UpdateSearchText{Text: "Thor"}, action)

	_, err = search.Envelope{Type: search.TypeUpdateSearchText, Text: strings.Repeat("x", search.MaxTextSize+1)}.Action()
	assert.ErrorIs(t, err, search.ErrTextTooLarge)
}
