package pipeline

import "errors"

// Sentinel errors for the compile stages. Every failure aborts the whole
// conversion; callers match them with errors.Is.
var (
	// ErrTokenize indicates an unrecognized character inside a list marker.
	ErrTokenize = errors.New("tokenize failed")

	// ErrUnexpectedToken indicates the parser expected a different token kind,
	// or a token when the stream was exhausted.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnparsableInline indicates no parse rule matched the next token.
	ErrUnparsableInline = errors.New("unparsable token run")

	// ErrUnknownNode indicates the renderer met a node kind it has no template for.
	ErrUnknownNode = errors.New("unknown node")
)
