package pipeline

// VisitFunc is called for every node; returning false skips the node's children.
type VisitFunc func(n Node) bool

// Walk traverses the tree depth-first in document order.
func Walk(n Node, visit VisitFunc) {
	if n == nil || !visit(n) {
		return
	}
	for _, child := range children(n) {
		Walk(child, visit)
	}
}

func children(n Node) []Node {
	switch n := n.(type) {
	case *Root:
		return n.Children
	case *Header:
		return n.Children
	case *BlockQuote:
		return n.Children
	case *Paragraph:
		return n.Children
	case *ListItem:
		return n.Children
	case *List:
		nodes := make([]Node, len(n.Items))
		for i, item := range n.Items {
			nodes[i] = item
		}
		return nodes
	default:
		return nil
	}
}
