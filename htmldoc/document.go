package htmldoc

import (
	"fmt"
	"strings"

	"github.com/DiscordGophers/domtree/tree"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document builds an x/net/html document from t so it can be queried with
// goquery. Later edits to t are not reflected in the returned document.
func Document(t *tree.Tree) (*goquery.Document, error) {
	if t == nil || t.Root == nil {
		return nil, tree.ErrEmptyTree
	}
	root := &html.Node{Type: html.DocumentNode}
	appendNodes(root, t.Root)
	return goquery.NewDocumentFromNode(root), nil
}

func appendNodes(parent *html.Node, n *tree.Node) {
	for ; n != nil; n = n.Sibling {
		if !n.IsElement() {
			parent.AppendChild(&html.Node{Type: html.TextNode, Data: n.Label})
			continue
		}
		el := &html.Node{
			Type:     html.ElementNode,
			Data:     n.Label,
			DataAtom: atom.Lookup([]byte(n.Label)),
		}
		parent.AppendChild(el)
		appendNodes(el, n.FirstChild)
	}
}

// Query returns the text of every element in t matching the CSS selector.
func Query(t *tree.Tree, selector string) ([]string, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	doc, err := Document(t)
	if err != nil {
		return nil, err
	}

	var matches []string
	doc.FindMatcher(sel).Each(func(_ int, s *goquery.Selection) {
		var parts []string
		for _, n := range s.Nodes {
			parts = append(parts, text(n)...)
		}
		matches = append(matches, strings.Join(strings.Fields(strings.Join(parts, " ")), " "))
	})
	return matches, nil
}

func text(node *html.Node) (parts []string) {
	if node.Type == html.TextNode {
		return []string{node.Data}
	}
	for n := node.FirstChild; n != nil; n = n.NextSibling {
		parts = append(parts, text(n)...)
	}
	return
}
