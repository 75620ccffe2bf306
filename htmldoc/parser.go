// Package htmldoc converts between real HTML documents and the one token per
// line form understood by package tree.
package htmldoc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
	atom.Noscript: true,
}

// Lines parses an HTML document and flattens its body into lines: one open
// marker, text run or close marker per line, wrapped in html and body.
// Attributes are dropped. Elements without text are dropped because the line
// form has no way to express them.
func Lines(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse body: %w", err)
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return nil, errors.New("document has no body")
	}

	lines := []string{"<html>", "<body>"}
	lines = append(lines, parseContent(body.Get(0))...)
	return append(lines, "</body>", "</html>"), nil
}

func parseContent(node *html.Node) (lines []string) {
	for n := node.FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.TextNode:
			text := strings.Join(strings.Fields(n.Data), " ")
			if text == "" {
				continue
			}
			// a run such as "<b>" would read back as a tag
			if strings.HasPrefix(text, "<") && strings.HasSuffix(text, ">") {
				text = html.EscapeString(text)
			}
			lines = append(lines, text)

		case html.ElementNode:
			if skipped[n.DataAtom] {
				continue
			}
			inner := parseContent(n)
			if len(inner) == 0 {
				continue
			}
			lines = append(lines, "<"+n.Data+">")
			lines = append(lines, inner...)
			lines = append(lines, "</"+n.Data+">")
		}
	}
	return
}
