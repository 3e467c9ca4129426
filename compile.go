package md2html

import "github.com/alnah/go-md2html/internal/pipeline"

// Compile converts a Markdown document to an HTML fragment.
//
// Compile is pure and safe for concurrent use. Content is not escaped.
// On failure it returns one of ErrTokenize, ErrUnexpectedToken,
// ErrUnparsableInline or ErrUnknownNode (wrapped with context) and no HTML.
func Compile(markdown string) (string, error) {
	return pipeline.Compile(markdown)
}
