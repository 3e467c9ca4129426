package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// Render walks the tree depth-first and returns the HTML fragment.
// Content and attribute values are written as-is, without escaping.
func Render(root *Root) (string, error) {
	var b strings.Builder
	for _, child := range root.Children {
		if err := renderBlock(&b, child); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func renderBlock(b *strings.Builder, n Node) error {
	switch n := n.(type) {
	case *Header:
		level := strconv.Itoa(n.Size)
		b.WriteString("<h" + level + ">")
		if err := renderInline(b, n.Children...); err != nil {
			return err
		}
		b.WriteString("</h" + level + ">")
	case *CodeBlock:
		b.WriteString("<pre><code class='" + n.Lang + "'>" + n.Code + "</code></pre>")
	case *BlockQuote:
		return renderBlockQuote(b, n)
	case *List:
		return renderList(b, n)
	case *HR:
		b.WriteString("<hr>")
	case *Paragraph:
		b.WriteString("<p>")
		if err := renderInline(b, n.Children...); err != nil {
			return err
		}
		b.WriteString("</p>")
	case *Image:
		renderImage(b, n)
	case *Link, *Code:
		return renderInline(b, n)
	default:
		return unknownNode(n)
	}
	return nil
}

// renderBlockQuote wraps every non-quote child in its own paragraph.
func renderBlockQuote(b *strings.Builder, q *BlockQuote) error {
	b.WriteString("<blockquote>")
	for _, child := range q.Children {
		if nested, ok := child.(*BlockQuote); ok {
			if err := renderBlockQuote(b, nested); err != nil {
				return err
			}
			continue
		}
		b.WriteString("<p>")
		if err := renderInline(b, child); err != nil {
			return err
		}
		b.WriteString("</p>")
	}
	b.WriteString("</blockquote>")
	return nil
}

func renderList(b *strings.Builder, l *List) error {
	tag := "ul"
	if l.Ordered {
		tag = "ol"
	}

	b.WriteString("<" + tag + ">")
	for _, item := range l.Items {
		b.WriteString("<li>")
		for _, child := range item.Children {
			var err error
			if nested, ok := child.(*List); ok {
				err = renderList(b, nested)
			} else {
				err = renderInline(b, child)
			}
			if err != nil {
				return err
			}
		}
		b.WriteString("</li>")
	}
	b.WriteString("</" + tag + ">")
	return nil
}

func renderInline(b *strings.Builder, nodes ...Node) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Text:
			renderText(b, n)
		case *Code:
			b.WriteString("<code class='" + n.Lang + "'>" + n.Code + "</code>")
		case *Link:
			b.WriteString("<a href='" + n.Href + "'>" + n.Text + "</a>")
		default:
			return unknownNode(n)
		}
	}
	return nil
}

// renderText nests italic inside bold.
func renderText(b *strings.Builder, t *Text) {
	if t.Bold {
		b.WriteString("<b>")
	}
	if t.Italic {
		b.WriteString("<i>")
	}
	b.WriteString(t.Text)
	if t.Italic {
		b.WriteString("</i>")
	}
	if t.Bold {
		b.WriteString("</b>")
	}
}

func renderImage(b *strings.Builder, img *Image) {
	b.WriteString("<img alt='" + img.Alt + "' src='" + img.Src + "'/>")
}

func unknownNode(n Node) error {
	return fmt.Errorf("%w: %T", ErrUnknownNode, n)
}
