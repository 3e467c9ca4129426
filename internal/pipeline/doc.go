// Package pipeline implements the Markdown-to-HTML compiler.
//
// The compiler runs in three stages:
//   - Tokenize classifies the document line by line into a flat token sequence
//   - Parse assembles the tokens into a tree of block and inline nodes
//   - Render walks the tree and emits an HTML fragment
//
// Compile chains the three stages. It is pure: no I/O, no shared state, and no
// escaping of user content. Any error aborts the whole conversion.
//
// The package also hosts the stages the root md2html Converter runs around the
// compiler: preprocessing (line endings, YAML front matter), code language
// checks, relative path rewriting, and standalone document wrapping.
package pipeline
