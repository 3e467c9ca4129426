package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile errors. Every one aborts the whole conversion; no partial HTML is
// returned.
var (
	// ErrTokenize reports an unrecognized character inside a list marker.
	ErrTokenize = pipeline.ErrTokenize

	// ErrUnexpectedToken reports a token of the wrong kind, or a missing token.
	ErrUnexpectedToken = pipeline.ErrUnexpectedToken

	// ErrUnparsableInline reports a token no parse rule accepts.
	ErrUnparsableInline = pipeline.ErrUnparsableInline

	// ErrUnknownNode reports a tree node without an HTML template.
	ErrUnknownNode = pipeline.ErrUnknownNode
)

// Sentinel errors for Converter operations.
var (
	ErrEmptyMarkdown   = errors.New("markdown content cannot be empty")
	ErrHTMLConversion  = errors.New("HTML conversion failed")
	ErrUnknownLanguage = errors.New("unknown code language")
	ErrInvalidStyle    = errors.New("invalid style")
)
