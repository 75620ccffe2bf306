package tree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Lines is the source a tree is built from. *bufio.Scanner satisfies it.
type Lines interface {
	Scan() bool
	Text() string
}

// Parse builds a tree from r, one token per line.
func Parse(r io.Reader) (*Tree, error) {
	return Build(bufio.NewScanner(r))
}

// Build reads the document prologue (the root element and its single
// top-level element) and then the top-level element's content.
//
// Unbalanced input is tolerated: end of input closes every open child list.
// Nothing after the top-level element's close marker is read.
func Build(src Lines) (*Tree, error) {
	root, err := prologue(src, "root")
	if err != nil {
		return nil, err
	}
	top, err := prologue(src, "top-level")
	if err != nil {
		return nil, err
	}
	root.FirstChild = top

	b := builder{src: src}
	top.FirstChild = b.build()

	if e, ok := src.(interface{ Err() error }); ok && e.Err() != nil {
		return nil, fmt.Errorf("could not read input: %w", e.Err())
	}
	return &Tree{Root: root}, nil
}

func prologue(src Lines, what string) (*Node, error) {
	if !src.Scan() {
		return nil, errors.Wrapf(ErrMalformedInput, "missing %s element", what)
	}
	line := src.Text()
	if !isOpen(line) {
		return nil, errors.Wrapf(ErrMalformedInput, "%s element: %q is not an open tag", what, line)
	}
	return &Node{Label: tagName(line)}, nil
}

type builder struct {
	src Lines
}

// build consumes lines until the close marker of the current child list
// and returns the head of that list.
func (b *builder) build() *Node {
	var head *Node
	slot := &head
	for b.src.Scan() {
		line := b.src.Text()

		var n *Node
		switch {
		case isClose(line):
			return head
		case isOpen(line):
			n = &Node{Label: tagName(line)}
			n.FirstChild = b.build()
		default:
			n = &Node{Label: line}
		}

		*slot = n
		slot = &n.Sibling
	}
	return head
}

func isTag(line string) bool {
	return len(line) > 2 && line[0] == '<' && line[len(line)-1] == '>'
}

func isOpen(line string) bool {
	return isTag(line) && !strings.Contains(line, "/")
}

// isClose does not check the name against the opener; any tag line with a
// slash ends the nearest open list.
func isClose(line string) bool {
	return isTag(line) && strings.Contains(line, "/")
}

func tagName(line string) string {
	return line[1 : len(line)-1]
}
