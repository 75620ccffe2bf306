package tree

import (
	"io"
	"strings"
)

// HTML renders the tree back into the line grammar it was built from.
func (t *Tree) HTML() string {
	var b strings.Builder
	if !t.empty() {
		render(&b, t.Root)
	}
	return b.String()
}

func (t *Tree) String() string {
	return t.HTML()
}

func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.HTML())
	return int64(n), err
}

func render(b *strings.Builder, n *Node) {
	for ; n != nil; n = n.Sibling {
		if n.FirstChild == nil {
			b.WriteString(n.Label)
			b.WriteByte('\n')
			continue
		}
		b.WriteString("<" + n.Label + ">\n")
		render(b, n.FirstChild)
		b.WriteString("</" + n.Label + ">\n")
	}
}

// Print writes an outline of the tree, one label per line, indented by depth.
func (t *Tree) Print(w io.Writer) error {
	if t.empty() {
		return ErrEmptyTree
	}
	var b strings.Builder
	t.outline(&b, t.Root, 1)
	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Tree) outline(b *strings.Builder, n *Node, level int) {
	for ; n != nil; n = n.Sibling {
		b.WriteString(strings.Repeat("      ", level-1))
		if n == t.Root {
			b.WriteString("     ")
		} else {
			b.WriteString("|----")
		}
		b.WriteString(n.Label)
		b.WriteByte('\n')
		if n.FirstChild != nil {
			t.outline(b, n.FirstChild, level+1)
		}
	}
}
