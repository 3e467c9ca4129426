// Package dateutil resolves the document date setting.
//
// A date value is either literal text, copied as-is, or "auto" optionally
// followed by a format: "auto", "auto:long", "auto:DD/MM/YYYY".
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength bounds a format string.
const MaxFormatLength = 50

// DefaultFormat is applied to a bare "auto".
const DefaultFormat = "YYYY-MM-DD"

const autoKeyword = "auto"

// layoutTokens maps format tokens to Go layout elements, longest first so
// "MMMM" is never read as two "MM".
var layoutTokens = [...]struct{ token, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets names common formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// Layout converts a format such as "DD/MM/YYYY" to a Go time layout.
// Text in brackets is literal: "[Day] D" keeps "Day". Other characters
// that are not tokens are kept as they are.
func Layout(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	case len(format) > MaxFormatLength:
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if literal, ok := strings.CutPrefix(rest, "["); ok {
			inner, after, closed := strings.Cut(literal, "]")
			if !closed {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(inner)
			rest = after
			continue
		}

		n := writeToken(&b, rest)
		if n == 0 {
			b.WriteByte(rest[0])
			n = 1
		}
		rest = rest[n:]
	}
	return b.String(), nil
}

// writeToken writes the layout of the token at the start of s and returns
// its length, or 0 when s does not start with a token.
func writeToken(b *strings.Builder, s string) int {
	for _, t := range layoutTokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.layout)
			return len(t.token)
		}
	}
	return 0
}

// Resolve expands an "auto" value against now; other values pass through.
// The keyword and preset names are case-insensitive, format tokens are not.
func Resolve(value string, now time.Time) (string, error) {
	if !strings.HasPrefix(strings.ToLower(value), autoKeyword) {
		return value, nil
	}

	format := DefaultFormat
	if suffix := value[len(autoKeyword):]; suffix != "" {
		custom, ok := strings.CutPrefix(suffix, ":")
		if !ok {
			return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		if custom == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		format = custom
		if preset, ok := Presets[strings.ToLower(custom)]; ok {
			format = preset
		}
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
