package md2html

import "time"

// Input contains the per-conversion parameters for Converter.Convert.
type Input struct {
	Markdown string // Document text, may start with YAML front matter

	// SourceDir resolves relative image and link paths to file:// URLs.
	// Empty leaves paths as written.
	SourceDir string

	// Standalone wraps the fragment in a complete HTML5 document.
	Standalone bool
	Title      string // Standalone title; falls back to front matter, then the first header
	Lang       string // Standalone <html lang>, default "en"
	CSS        string // Extra CSS appended after the converter style
	Date       string // Standalone <meta name="date">; falls back to front matter "date"
}

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	HTML     []byte         // Fragment, or full document when Input.Standalone
	Meta     map[string]any // Decoded front matter, nil when absent
	Warnings []string       // Non-fatal findings such as unknown code languages
}

// converterConfig holds Converter options.
type converterConfig struct {
	timeout         time.Duration
	styleInput      string // style name, file path or CSS content, from WithStyle
	resolvedStyle   string
	strictLanguages bool
}

// Option configures a Converter.
type Option func(*Converter)

// defaultTimeout bounds a single conversion.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the conversion timeout. Zero or negative disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle sets the CSS embedded in standalone documents.
// The value is a built-in style name ("plain", "article"), a path to a CSS
// file, or CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithStrictLanguages makes unknown code languages fail the conversion with
// ErrUnknownLanguage instead of producing a warning.
func WithStrictLanguages(strict bool) Option {
	return func(c *Converter) {
		c.cfg.strictLanguages = strict
	}
}
