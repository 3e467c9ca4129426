// Package assets provides the built-in stylesheets for standalone documents.
//
// Styles are CSS files embedded at compile time and addressed by name
// without the .css extension, for example "plain" or "article".
//
// # Security
//
// Style names are validated before lookup so a name can never reach outside
// the embedded styles directory.
package assets
