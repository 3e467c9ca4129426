package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Precompiled line-form patterns, all anchored at the cursor.
var (
	atxHeader       = regexp.MustCompile(`\A(#{1,6}) `)
	codeFenceOpen   = regexp.MustCompile("\\A```([^\\n]*?) *(?:\\n|\\z)")
	codeFenceClose  = regexp.MustCompile("\\A``` *\\z")
	blockQuoteMark  = regexp.MustCompile(`\A(?:> ?)*> `)
	horizontalRule  = regexp.MustCompile(`\A(?:\*{3,}[* ]*|-{3,}[- ]*)(?:\n|\z)`)
	listItemMarker  = regexp.MustCompile(`\A[ \t]*(?:[0-9]\.|[*-]) `)
	setextUnderline = regexp.MustCompile(`\A(?:=+|-+) *\z`)
)

// Precompiled inline patterns.
var (
	imagePattern      = regexp.MustCompile(`\A!\[(.+?)\]\((.*?)\)`)
	linkPattern       = regexp.MustCompile(`\A\[(.+?)\]\((.*?)\)`)
	inlineCodePattern = regexp.MustCompile("\\A`(.+?)`([a-z]*)")
)

// emphasisRules are tried in order; the widest delimiter wins.
var emphasisRules = []struct {
	pattern *regexp.Regexp
	width   int
	bold    bool
	italic  bool
}{
	{regexp.MustCompile(`\A(?:\*{3}[^*]+?\*{3}|_{3}[^_]+?_{3})`), 3, true, true},
	{regexp.MustCompile(`\A(?:\*{2}[^*]+?\*{2}|_{2}[^_]+?_{2})`), 2, true, false},
	{regexp.MustCompile(`\A(?:\*[^*]+?\*|_[^_]+?_)`), 1, false, true},
}

// tokenizer walks an immutable document with a byte cursor.
type tokenizer struct {
	src    string
	pos    int
	line   int
	tokens []Token
}

// Tokenize splits a document into a flat, newline-terminated token sequence.
// Leading and trailing whitespace of the document is ignored.
// An empty or blank document yields no tokens.
func Tokenize(document string) ([]Token, error) {
	trimmed := strings.TrimLeftFunc(document, unicode.IsSpace)
	skipped := document[:len(document)-len(trimmed)]

	t := &tokenizer{
		src:  strings.TrimRightFunc(trimmed, unicode.IsSpace),
		line: 1 + strings.Count(skipped, "\n"),
	}

	for t.pos < len(t.src) {
		if err := t.step(); err != nil {
			return nil, err
		}
	}

	if n := len(t.tokens); n > 0 && t.tokens[n-1].Kind != TokenNewline {
		t.emit(Token{Kind: TokenNewline}, t.line)
	}
	return t.tokens, nil
}

// step matches exactly one line form at the cursor and consumes it.
func (t *tokenizer) step() error {
	rest := t.src[t.pos:]

	if m := atxHeader.FindStringSubmatch(rest); m != nil {
		t.emit(Token{Kind: TokenHeader, Size: len(m[1])}, t.line)
		t.advance(len(m[0]))
		t.tokenizeLine(t.cutLine())
		t.terminateHeader()
		return nil
	}

	if m := codeFenceOpen.FindStringSubmatch(rest); m != nil {
		t.codeBlock(m[1], len(m[0]))
		return nil
	}

	if m := blockQuoteMark.FindString(rest); m != "" {
		t.emit(Token{Kind: TokenBlockQuote, Indent: strings.Count(m, ">")}, t.line)
		t.advance(len(m))
		t.tokenizeLine(t.cutLine())
		return nil
	}

	if m := horizontalRule.FindString(rest); m != "" {
		line := t.line
		t.advance(len(m))
		t.emit(Token{Kind: TokenHR}, line)
		t.emit(Token{Kind: TokenNewline}, line)
		return nil
	}

	if listItemMarker.MatchString(rest) {
		return t.listItem(rest)
	}

	if size := setextSize(rest); size > 0 {
		text, line := t.cutLine()
		t.cutLine() // underline
		t.emit(Token{Kind: TokenHeader, Size: size}, line)
		t.tokenizeLine(text, line)
		t.terminateHeader()
		return nil
	}

	if rest[0] == '\n' {
		t.emit(Token{Kind: TokenNewline}, t.line)
		t.advance(1)
		return nil
	}

	t.tokenizeLine(t.cutLine())
	return nil
}

// terminateHeader emits the hr+newline pair that closes a header line.
func (t *tokenizer) terminateHeader() {
	t.emit(Token{Kind: TokenHR}, t.line)
	t.emit(Token{Kind: TokenNewline}, t.line)
}

// codeBlock captures lines verbatim up to a closing fence line.
// An unterminated fence runs to the end of the document.
func (t *tokenizer) codeBlock(lang string, openLen int) {
	line := t.line
	t.advance(openLen)

	var code strings.Builder
	for t.pos < len(t.src) {
		l, _ := t.cutLine()
		if codeFenceClose.MatchString(strings.TrimSuffix(l, "\n")) {
			break
		}
		code.WriteString(l)
	}

	t.emit(Token{Kind: TokenCodeBlock, Lang: lang, Code: code.String()}, line)
	t.emit(Token{Kind: TokenNewline}, t.line)
}

// listItem scans the marker indent; two spaces make one level.
func (t *tokenizer) listItem(rest string) error {
	tok := Token{Kind: TokenListItem}
	i := 0
scan:
	for {
		switch c := rest[i]; {
		case c == '*' || c == '-':
			tok.Indent = i / 2
			i++
			break scan
		case c >= '0' && c <= '9':
			tok.Indent = i / 2
			tok.Ordered = true
			tok.Digit = int(c - '0')
			i += 2 // digit and '.'
			break scan
		case c == ' ':
			i++
		default:
			return fmt.Errorf("%w: invalid character %q in list marker on line %d", ErrTokenize, c, t.line)
		}
	}

	t.emit(tok, t.line)
	t.advance(i + 1) // marker and the space after it
	t.tokenizeLine(t.cutLine())
	return nil
}

// setextSize reports the header size when rest starts with a text line
// underlined by '=' (1) or '-' (2), or 0 otherwise.
func setextSize(rest string) int {
	text, after, ok := strings.Cut(rest, "\n")
	if !ok || text == "" {
		return 0
	}
	underline, _, _ := strings.Cut(after, "\n")
	if !setextUnderline.MatchString(underline) {
		return 0
	}
	if underline[0] == '=' {
		return 1
	}
	return 2
}

// tokenizeLine scans one line of inline content. The line always ends
// with a line feed, which becomes a newline token.
func (t *tokenizer) tokenizeLine(s string, line int) {
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			t.emit(Token{Kind: TokenText, Text: run.String()}, line)
			run.Reset()
		}
	}

	for i := 0; i < len(s); {
		tok, n, ok := scanInline(s[i:])
		if !ok {
			run.WriteByte(s[i])
			i++
			continue
		}
		flush()
		t.emit(tok, line)
		if tok.Kind == TokenNewline {
			line++
		}
		i += n
	}
	flush()
}

// scanInline matches one inline construct at the start of s and
// returns the token with the number of bytes it spans.
func scanInline(s string) (Token, int, bool) {
	switch s[0] {
	case '*', '_':
		for _, rule := range emphasisRules {
			if m := rule.pattern.FindString(s); m != "" {
				return Token{
					Kind:   TokenText,
					Text:   m[rule.width : len(m)-rule.width],
					Bold:   rule.bold,
					Italic: rule.italic,
				}, len(m), true
			}
		}
	case '!':
		if m := imagePattern.FindStringSubmatch(s); m != nil {
			return Token{Kind: TokenImage, Alt: m[1], Src: m[2]}, len(m[0]), true
		}
	case '[':
		if m := linkPattern.FindStringSubmatch(s); m != nil {
			return Token{Kind: TokenLink, Text: m[1], Href: m[2]}, len(m[0]), true
		}
	case '`':
		if m := inlineCodePattern.FindStringSubmatch(s); m != nil {
			return Token{Kind: TokenCode, Code: m[1], Lang: m[2]}, len(m[0]), true
		}
	case '\n':
		return Token{Kind: TokenNewline}, 1, true
	}
	return Token{}, 0, false
}

// cutLine consumes the current line including its line feed and returns it
// with the line number it started on. A missing final line feed is added.
func (t *tokenizer) cutLine() (string, int) {
	line := t.line
	rest := t.src[t.pos:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		t.advance(i + 1)
		return rest[:i+1], line
	}
	t.advance(len(rest))
	return rest + "\n", line
}

func (t *tokenizer) advance(n int) {
	t.line += strings.Count(t.src[t.pos:t.pos+n], "\n")
	t.pos += n
}

func (t *tokenizer) emit(tok Token, line int) {
	tok.Line = line
	t.tokens = append(t.tokens, tok)
}
