package pipeline

import (
	"errors"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// RewriteRelativePaths converts relative image and link paths in a compiled
// fragment to absolute file:// URLs. If sourceDir is empty, the fragment is
// returned unchanged.
//
// Only rewritten <img> and <a> tags are re-serialized, in the compiler's own
// single-quoted form with attribute values left unescaped; every other byte
// of the fragment passes through untouched, so unescaped code content survives.
//
// Left alone:
//   - URLs (http, https, file, data, mailto, protocol-relative)
//   - anchors and absolute paths
//   - paths escaping sourceDir
func RewriteRelativePaths(fragment, sourceDir string) (string, error) {
	if sourceDir == "" {
		return fragment, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		tt := z.Next()
		// Token() lowercases the tag name in place, so copy the raw bytes first.
		raw := string(z.Raw())

		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				b.WriteString(raw)
				return b.String(), nil
			}
			return "", z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if rewriteToken(&tok, absSourceDir) {
				writeTag(&b, tok)
				continue
			}
		}
		b.WriteString(raw)
	}
}

// rewriteToken rewrites img[src] and a[href]; it reports whether anything changed.
func rewriteToken(tok *html.Token, sourceDir string) bool {
	var attrName string
	switch tok.Data {
	case "img":
		attrName = "src"
	case "a":
		attrName = "href"
	default:
		return false
	}

	changed := false
	for i, attr := range tok.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}

		absPath := filepath.Join(sourceDir, attr.Val)
		if !isPathUnderDir(absPath, sourceDir) {
			continue
		}

		tok.Attr[i].Val = pathToFileURL(absPath)
		changed = true
	}
	return changed
}

// writeTag writes tok the way the compiler emits tags: key='val' attributes
// without escaping, and "/>" for self-closing tags.
func writeTag(b *strings.Builder, tok html.Token) {
	b.WriteString("<" + tok.Data)
	for _, attr := range tok.Attr {
		b.WriteString(" " + attr.Key + "='" + attr.Val + "'")
	}
	if tok.Type == html.SelfClosingTagToken {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
}

// isRelativePath returns true if the path should be rewritten.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}

	for _, prefix := range []string{"http://", "https://", "file://", "data:", "mailto:", "//", "#"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}

	return !filepath.IsAbs(path)
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
