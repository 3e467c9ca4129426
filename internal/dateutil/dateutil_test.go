package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "iso", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "european", format: "DD/MM/YYYY", want: "02/01/2006"},
		{name: "long month", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "short month and year", format: "MMM YY", want: "Jan 06"},
		{name: "unpadded", format: "D.M", want: "2.1"},
		{name: "bare letters are tokens", format: "Date", want: "2ate"},
		{name: "bracket literal", format: "[Date:] YYYY", want: "Date: 2006"},
		{name: "bracket keeps tokens", format: "[YYYY]-MM", want: "YYYY-01"},
		{name: "empty brackets", format: "[]YYYY", want: "2006"},
		{name: "non-token text", format: "(YYYY)", want: "(2006)"},
		{name: "empty", format: "", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "YYYY [x", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: strings.Repeat("-", MaxFormatLength+1), wantErr: ErrInvalidDateFormat},
		{name: "at limit", format: strings.Repeat("-", MaxFormatLength), want: strings.Repeat("-", MaxFormatLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Layout(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Layout(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Layout(%q) error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("Layout(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "literal passthrough", value: "Spring 2026", want: "Spring 2026"},
		{name: "empty passthrough", value: "", want: ""},
		{name: "auto", value: "auto", want: "2026-03-07"},
		{name: "auto uppercase", value: "AUTO", want: "2026-03-07"},
		{name: "custom format", value: "auto:DD/MM/YYYY", want: "07/03/2026"},
		{name: "preset", value: "auto:long", want: "March 7, 2026"},
		{name: "preset any case", value: "auto:US", want: "03/07/2026"},
		{name: "empty format", value: "auto:", wantErr: ErrInvalidDateFormat},
		{name: "missing colon", value: "automatic", wantErr: ErrInvalidDateFormat},
		{name: "bad format", value: "auto:[YYYY", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.value, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve(%q) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
