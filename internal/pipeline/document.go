package pipeline

import (
	"fmt"
	"html"
	"strings"
)

// DefaultTitle is used when a standalone document has no other title source.
const DefaultTitle = "Document"

// documentTemplate wraps a compiled fragment in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<title>%s</title>
%s%s</head>
<body>
%s
</body>
</html>`

// DocumentOptions controls standalone document wrapping.
type DocumentOptions struct {
	Title string // escaped; empty means DefaultTitle
	Lang  string // empty means "en"
	CSS   string // inlined in a <style> block
	Date  string // <meta name="date"> content, omitted when empty
}

// WrapDocument embeds an HTML fragment in a standalone HTML5 document.
// Only the title and CSS are sanitized; the fragment is inserted as-is.
func WrapDocument(fragment string, opts DocumentOptions) string {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	lang := opts.Lang
	if lang == "" {
		lang = "en"
	}

	var meta string
	if opts.Date != "" {
		meta = `<meta name="date" content="` + html.EscapeString(opts.Date) + "\">\n"
	}

	var style string
	if css := strings.TrimSpace(opts.CSS); css != "" {
		style = "<style>" + sanitizeCSS(css) + "</style>\n"
	}

	return fmt.Sprintf(documentTemplate, html.EscapeString(lang), html.EscapeString(title), meta, style, fragment)
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// FirstHeading returns the plain text of the first top-level header,
// or "" when the document has none.
func FirstHeading(root *Root) string {
	for _, child := range root.Children {
		h, ok := child.(*Header)
		if !ok {
			continue
		}
		var b strings.Builder
		for _, n := range h.Children {
			switch n := n.(type) {
			case *Text:
				b.WriteString(n.Text)
			case *Code:
				b.WriteString(n.Code)
			case *Link:
				b.WriteString(n.Text)
			}
		}
		return strings.TrimSpace(b.String())
	}
	return ""
}
