package search

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTextSize is the largest search text accepted, in bytes.
const MaxTextSize = 256

var (
	ErrTextTooLarge = errors.New("search text exceeds maximum allowed size")
	ErrInvalidUTF8  = errors.New("search text contains invalid UTF-8 sequences")
)

// SanitizeText validates search text from an untrusted source and strips
// control characters, so it cannot corrupt a terminal or a log line.
// Oversized text is rejected rather than truncated.
func SanitizeText(text string) (string, error) {
	if len(text) > MaxTextSize {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrTextTooLarge, len(text), MaxTextSize)
	}
	if !utf8.ValidString(text) {
		return "", ErrInvalidUTF8
	}
	if strings.IndexFunc(text, unicode.IsControl) < 0 {
		return text, nil
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text), nil
}
