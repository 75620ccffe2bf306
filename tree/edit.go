package tree

import (
	"strings"

	"github.com/pkg/errors"
)

// ReplaceTag renames every element labelled oldTag to newTag and reports how
// many were renamed. Text leaves are never touched.
func (t *Tree) ReplaceTag(oldTag, newTag string) (int, error) {
	if t.empty() {
		return 0, ErrEmptyTree
	}
	return replaceTag(t.Root, oldTag, newTag), nil
}

func replaceTag(n *Node, oldTag, newTag string) (count int) {
	for ; n != nil; n = n.Sibling {
		if n.FirstChild == nil {
			continue
		}
		if n.Label == oldTag {
			n.Label = newTag
			count++
		}
		count += replaceTag(n.FirstChild, oldTag, newTag)
	}
	return count
}

// BoldRow wraps the content of every td in the given 1-based row with a b
// element. Rows are counted by the tr elements seen along the path from the
// root, so a table nested in a row continues counting from that row.
// A row below 1 matches nothing.
func (t *Tree) BoldRow(row int) (int, error) {
	if t.empty() {
		return 0, ErrEmptyTree
	}
	if row < 1 {
		return 0, nil
	}
	return boldRow(t.Root, row, 0), nil
}

func boldRow(n *Node, row, level int) (count int) {
	for ; n != nil; n = n.Sibling {
		if n.Label == "tr" && n.FirstChild != nil {
			level++
		}
		count += boldRow(n.FirstChild, row, level)

		if level == row && n.Label == "td" && n.FirstChild != nil {
			n.FirstChild = &Node{Label: "b", FirstChild: n.FirstChild}
			count++
		}
	}
	return count
}

var removable = map[string]bool{
	"p":  true,
	"em": true,
	"b":  true,
	"ol": true,
	"ul": true,
}

// RemoveTag splices every element labelled tag out of the tree, moving its
// children into its place. Removing ol or ul also turns their li children
// into p elements.
func (t *Tree) RemoveTag(tag string) (int, error) {
	if t.empty() {
		return 0, ErrEmptyTree
	}
	if !removable[tag] {
		return 0, errors.Wrapf(ErrUnsupportedTag, "cannot remove %q", tag)
	}
	return removeTag(&t.Root.FirstChild, tag), nil
}

// removeTag handles the node in *slot after its children and every later
// sibling, so the splice never revisits content it moved.
func removeTag(slot **Node, tag string) (count int) {
	n := *slot
	if n == nil {
		return 0
	}
	count += removeTag(&n.FirstChild, tag)
	count += removeTag(&n.Sibling, tag)

	if n.Label != tag || n.FirstChild == nil {
		return count
	}

	if tag == "ol" || tag == "ul" {
		for li := n.FirstChild; li != nil; li = li.Sibling {
			if li.Label == "li" && li.FirstChild != nil {
				li.Label = "p"
			}
		}
	}

	n.FirstChild.last().Sibling = n.Sibling
	*slot = n.FirstChild
	n.FirstChild, n.Sibling = nil, nil
	return count + 1
}

// AddTag wraps each whitespace-delimited occurrence of word in a tag
// element. Matching ignores case and takes one trailing punctuation mark
// along with the word. Text already directly inside a tag element is left
// alone, so repeated calls do not nest.
func (t *Tree) AddTag(word, tag string) (int, error) {
	if t.empty() {
		return 0, ErrEmptyTree
	}
	if word == "" {
		return 0, nil
	}
	return addTag(&t.Root, word, tag, ""), nil
}

func addTag(slot **Node, word, tag, parent string) (count int) {
	for *slot != nil {
		n := *slot
		switch {
		case n.FirstChild != nil:
			count += addTag(&n.FirstChild, word, tag, n.Label)
		case !strings.EqualFold(parent, tag):
			seq := WrapWord(n.Label, word, tag)
			if seq == nil {
				break
			}
			count++
			splice(slot, n, seq)

			// step over the prefix and the wrapper; a remainder is scanned next
			for (*slot).FirstChild == nil {
				slot = &(*slot).Sibling
			}
			slot = &(*slot).Sibling
			continue
		}
		slot = &n.Sibling
	}
	return count
}

// splice replaces old, which *slot points at, with the chain seq.
func splice(slot **Node, old *Node, seq []*Node) {
	for i := 0; i < len(seq)-1; i++ {
		seq[i].Sibling = seq[i+1]
	}
	seq[len(seq)-1].Sibling = old.Sibling
	*slot = seq[0]
}
