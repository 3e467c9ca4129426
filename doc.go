// Package md2html compiles a small Markdown dialect to HTML.
//
// # Quick Start
//
// Compile is a pure function from Markdown text to an HTML fragment:
//
//	html, err := md2html.Compile("# Hello\n\nSome *emphasis* and a [link](https://go.dev).")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// <h1>Hello</h1><p>Some <i>emphasis</i> and a <a href='https://go.dev'>link</a>.</p>
//
// Content is not escaped. Escape or sanitize the result before embedding it in
// a page that renders untrusted input.
//
// # Dialect
//
// Recognized block forms, one per line group:
//
//   - ATX headers (# to ######) and setext headers (=== / --- underline)
//   - fenced code blocks (```lang ... ```), kept verbatim
//   - block quotes (> , > > or >>> for nesting)
//   - horizontal rules (*** or ---)
//   - list items (*, - or a single digit followed by ".", two spaces per level)
//   - paragraphs, with consecutive lines joined by a space
//
// Inline forms: ***bold italic***, **bold**, *italic* (or the _ variants),
// ![alt](src), [text](href) and `code`lang.
//
// # Conversion Pipeline
//
// Converter wraps Compile with the stages a file-based workflow needs:
//
//  1. Preprocessing (line ending normalization, YAML front matter)
//  2. Compilation (tokenize, parse, render)
//  3. Code language checks against the chroma lexer registry
//  4. Relative path rewriting to file:// URLs (Input.SourceDir)
//  5. Standalone HTML5 document wrapping (Input.Standalone), with title,
//     lang, date meta and the configured style
//
// Example:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithTimeout(10 * time.Second),
//	    md2html.WithStyle("article"), // or a .css path, or CSS content
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown:   content,
//	    Standalone: true,
//	})
//
// # Errors
//
// Malformed input aborts the whole conversion. Use errors.Is with
// ErrTokenize, ErrUnexpectedToken, ErrUnparsableInline or ErrUnknownNode to
// classify compile failures.
package md2html
