package pipeline

import "fmt"

// TokenKind identifies the class of a Token.
type TokenKind uint8

const (
	TokenHeader TokenKind = iota + 1
	TokenHR
	TokenNewline
	TokenCodeBlock
	TokenBlockQuote
	TokenListItem
	TokenText
	TokenCode
	TokenLink
	TokenImage
)

var tokenKindNames = map[TokenKind]string{
	TokenHeader:     "header",
	TokenHR:         "hr",
	TokenNewline:    "newline",
	TokenCodeBlock:  "codeblock",
	TokenBlockQuote: "blockquote",
	TokenListItem:   "listItem",
	TokenText:       "text",
	TokenCode:       "code",
	TokenLink:       "link",
	TokenImage:      "image",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// Token is a single classified unit of input.
// Only the fields relevant to Kind are set.
type Token struct {
	Kind TokenKind
	Line int // 1-based source line, for diagnostics

	Size    int  // header level (1-6)
	Indent  int  // list indent level or block quote depth
	Ordered bool // list item
	Digit   int  // ordered list item number

	Text   string // text run or link text
	Bold   bool
	Italic bool

	Lang string // code block or inline code language
	Code string

	Href string
	Alt  string
	Src  string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenHeader:
		return fmt.Sprintf("header(%d)", t.Size)
	case TokenCodeBlock:
		return fmt.Sprintf("codeblock(%q, %q)", t.Lang, t.Code)
	case TokenBlockQuote:
		return fmt.Sprintf("blockquote(%d)", t.Indent)
	case TokenListItem:
		if t.Ordered {
			return fmt.Sprintf("listItem(%d, ordered, %d)", t.Indent, t.Digit)
		}
		return fmt.Sprintf("listItem(%d)", t.Indent)
	case TokenText:
		return fmt.Sprintf("text(%q, bold=%t, italic=%t)", t.Text, t.Bold, t.Italic)
	case TokenCode:
		return fmt.Sprintf("code(%q, %q)", t.Lang, t.Code)
	case TokenLink:
		return fmt.Sprintf("link(%q, %q)", t.Text, t.Href)
	case TokenImage:
		return fmt.Sprintf("image(%q, %q)", t.Alt, t.Src)
	default:
		return t.Kind.String()
	}
}
