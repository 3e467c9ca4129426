package pipeline

import "fmt"

// inlineKinds are the tokens that may continue an inline run.
var inlineKinds = []TokenKind{TokenText, TokenCode, TokenLink}

// parser consumes a token slice left to right. The caller's slice is never
// modified.
type parser struct {
	tokens []Token
	pos    int
}

// Parse builds the document tree from a newline-terminated token sequence.
func Parse(tokens []Token) (*Root, error) {
	p := &parser{tokens: tokens}
	root := &Root{}

	for p.pos < len(p.tokens) {
		var (
			node Node
			err  error
		)

		switch tok := p.tokens[p.pos]; tok.Kind {
		case TokenNewline:
			p.pos++
			continue
		case TokenHeader:
			node, err = p.parseHeader()
		case TokenCodeBlock:
			node, err = p.parseCodeBlock()
		case TokenBlockQuote:
			node, err = p.parseBlockQuote()
		case TokenHR:
			node, err = p.parseHR()
		case TokenListItem:
			node, err = p.parseList()
		case TokenImage:
			node, err = p.parseImage()
		case TokenText, TokenCode, TokenLink:
			node, err = p.parseParagraph()
		default:
			return nil, fmt.Errorf("%w: %s on line %d", ErrUnparsableInline, tok, tok.Line)
		}
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, node)
	}

	return root, nil
}

func (p *parser) parseHeader() (*Header, error) {
	tok, err := p.consume(TokenHeader)
	if err != nil {
		return nil, err
	}
	children, err := p.parseInline()
	if err != nil {
		return nil, err
	}
	// The hr+newline pair only terminates the header line.
	if _, err := p.consume(TokenHR); err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenNewline); err != nil {
		return nil, err
	}
	return &Header{Size: tok.Size, Children: children}, nil
}

func (p *parser) parseCodeBlock() (*CodeBlock, error) {
	tok, err := p.consume(TokenCodeBlock)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenNewline); err != nil {
		return nil, err
	}
	return &CodeBlock{Lang: tok.Lang, Code: tok.Code}, nil
}

// parseBlockQuote gathers a run of blockquote lines. Quotes are keyed by
// depth; a line at a new depth nests under depth-1, or under the first
// quote of the run when depth-1 was never seen.
func (p *parser) parseBlockQuote() (*BlockQuote, error) {
	first, err := p.consume(TokenBlockQuote)
	if err != nil {
		return nil, err
	}
	children, err := p.parseInline()
	if err != nil {
		return nil, err
	}

	root := &BlockQuote{Children: children}
	open := map[int]*BlockQuote{first.Indent: root}

	for p.peek(TokenBlockQuote) {
		tok, err := p.consume(TokenBlockQuote)
		if err != nil {
			return nil, err
		}
		children, err := p.parseInline()
		if err != nil {
			return nil, err
		}

		if quote, ok := open[tok.Indent]; ok {
			quote.Children = append(quote.Children, children...)
			continue
		}

		quote := &BlockQuote{Children: children}
		open[tok.Indent] = quote
		parent, ok := open[tok.Indent-1]
		if !ok {
			parent = root
		}
		parent.Children = append(parent.Children, quote)
	}

	return root, nil
}

// parseList gathers a run of list items. Each item may nest at most one
// level deeper than the item before it. Lists stay open for the whole run,
// so an item returning to a deeper level joins the list already open there.
func (p *parser) parseList() (*List, error) {
	open := make(map[int]*List)
	last := -1

	for p.peek(TokenListItem) {
		tok, err := p.consume(TokenListItem)
		if err != nil {
			return nil, err
		}

		indent := min(last+1, tok.Indent)

		list, ok := open[indent]
		if !ok {
			list = &List{Ordered: tok.Ordered}
			open[indent] = list
			if indent > 0 {
				parent := open[indent-1].lastItem()
				parent.Children = append(parent.Children, list)
			}
		}

		children, err := p.parseInline()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, &ListItem{Children: children})
		last = indent
	}

	return open[0], nil
}

func (p *parser) parseHR() (*HR, error) {
	if _, err := p.consume(TokenHR); err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenNewline); err != nil {
		return nil, err
	}
	return &HR{}, nil
}

func (p *parser) parseImage() (*Image, error) {
	tok, err := p.consume(TokenImage)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenNewline); err != nil {
		return nil, err
	}
	return &Image{Alt: tok.Alt, Src: tok.Src}, nil
}

func (p *parser) parseParagraph() (*Paragraph, error) {
	children, err := p.parseInline()
	if err != nil {
		return nil, err
	}
	return &Paragraph{Children: children}, nil
}

// parseInline collects an inline run. A newline followed by more inline
// content is a soft break and becomes a single space; any other newline ends
// the run and is consumed.
func (p *parser) parseInline() ([]Node, error) {
	var nodes []Node

	for p.peekAt(0, inlineKinds...) || (p.peek(TokenNewline) && p.peekAt(1, inlineKinds...)) {
		if p.peek(TokenNewline) {
			p.pos++
			nodes = append(nodes, NewText(" "))
		}

		tok := p.tokens[p.pos]
		p.pos++
		switch tok.Kind {
		case TokenText:
			nodes = append(nodes, &Text{Text: tok.Text, Bold: tok.Bold, Italic: tok.Italic})
		case TokenCode:
			nodes = append(nodes, &Code{Lang: tok.Lang, Code: tok.Code})
		case TokenLink:
			nodes = append(nodes, &Link{Text: tok.Text, Href: tok.Href})
		default:
			return nil, fmt.Errorf("%w: %s on line %d", ErrUnparsableInline, tok, tok.Line)
		}
	}

	if _, err := p.consume(TokenNewline); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (p *parser) peek(kind TokenKind) bool {
	return p.peekAt(0, kind)
}

// peekAt reports whether the token offset positions ahead has one of kinds.
func (p *parser) peekAt(offset int, kinds ...TokenKind) bool {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return false
	}
	for _, kind := range kinds {
		if p.tokens[i].Kind == kind {
			return true
		}
	}
	return false
}

// consume takes the next token, which must be of the given kind.
func (p *parser) consume(kind TokenKind) (Token, error) {
	if p.pos >= len(p.tokens) {
		return Token{}, fmt.Errorf("%w: expected %s but reached end of input", ErrUnexpectedToken, kind)
	}
	tok := p.tokens[p.pos]
	if tok.Kind != kind {
		return Token{}, fmt.Errorf("%w: expected %s but found %s on line %d", ErrUnexpectedToken, kind, tok, tok.Line)
	}
	p.pos++
	return tok, nil
}
