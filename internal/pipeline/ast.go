package pipeline

// Node is a node of the document tree. The set of implementations is closed:
// block nodes are Root, Header, CodeBlock, BlockQuote, Paragraph, List,
// ListItem and HR; inline nodes are Text, Code, Link and Image.
type Node interface {
	node()
}

// Root owns the whole document.
type Root struct {
	Children []Node
}

// Header is an ATX or setext heading.
type Header struct {
	Size     int // 1-6
	Children []Node
}

// CodeBlock is a fenced block kept verbatim.
type CodeBlock struct {
	Lang string
	Code string
}

// BlockQuote holds inline nodes and nested quotes.
type BlockQuote struct {
	Children []Node
}

// Paragraph holds a run of inline nodes.
type Paragraph struct {
	Children []Node
}

// List holds items only.
type List struct {
	Ordered bool
	Items   []*ListItem
}

// ListItem holds inline nodes and nested lists.
type ListItem struct {
	Children []Node
}

// HR is a horizontal rule.
type HR struct{}

// Text is a run of characters with optional emphasis.
type Text struct {
	Text   string
	Bold   bool
	Italic bool
}

// Code is an inline code span.
type Code struct {
	Lang string
	Code string
}

// Link is an inline hyperlink.
type Link struct {
	Text string
	Href string
}

// Image is an image reference.
type Image struct {
	Alt string
	Src string
}

func (*Root) node()       {}
func (*Header) node()     {}
func (*CodeBlock) node()  {}
func (*BlockQuote) node() {}
func (*Paragraph) node()  {}
func (*List) node()       {}
func (*ListItem) node()   {}
func (*HR) node()         {}
func (*Text) node()       {}
func (*Code) node()       {}
func (*Link) node()       {}
func (*Image) node()      {}

// NewText returns an unstyled text node.
func NewText(text string) *Text {
	return &Text{Text: text}
}

// lastItem returns the most recently appended item, or nil for an empty list.
func (l *List) lastItem() *ListItem {
	if len(l.Items) == 0 {
		return nil
	}
	return l.Items[len(l.Items)-1]
}
