package pipeline

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// UnknownLanguages returns the language tags of code blocks and inline code
// that no chroma lexer recognizes, deduplicated, in document order.
// Empty tags are ignored.
func UnknownLanguages(root *Root) []string {
	seen := make(map[string]bool)
	var unknown []string

	check := func(lang string) {
		if lang == "" || seen[lang] {
			return
		}
		seen[lang] = true
		if !IsKnownLanguage(lang) {
			unknown = append(unknown, lang)
		}
	}

	Walk(root, func(n Node) bool {
		switch n := n.(type) {
		case *CodeBlock:
			check(n.Lang)
		case *Code:
			check(n.Lang)
		}
		return true
	})

	return unknown
}

// IsKnownLanguage reports whether chroma has a lexer for the name, alias, or
// file extension.
func IsKnownLanguage(lang string) bool {
	return lexers.Get(strings.ToLower(lang)) != nil
}
