// Package tree holds a line-oriented HTML document as a first-child/next-sibling
// tree and implements the structural edits applied to it.
package tree

// Node is either an element (FirstChild != nil) or a text leaf.
// There are no parent or previous-sibling links; edits that splice nodes
// work on the link that points at the node instead.
type Node struct {
	Label      string
	FirstChild *Node
	Sibling    *Node
}

func (n *Node) IsElement() bool {
	return n.FirstChild != nil
}

// last returns the final node of the sibling chain starting at n.
func (n *Node) last() *Node {
	for n.Sibling != nil {
		n = n.Sibling
	}
	return n
}

type Tree struct {
	Root *Node
}

func (t *Tree) empty() bool {
	return t == nil || t.Root == nil
}
