package htmldoc

import (
	"strings"
	"testing"

	"github.com/DiscordGophers/domtree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html>
<head><title>ignored</title></head>
<body class="main">
  <p>Hello   <b>World</b></p>
  <!-- comment -->
  <div></div>
  <script>run()</script>
  <ul><li>one</li><li>&lt;em&gt;</li></ul>
  <table>
    <tr><td>a1</td><td>a2</td></tr>
    <tr><td>b1</td><td>b2</td></tr>
  </table>
</body>
</html>`

func TestLines(t *testing.T) {
	lines, err := Lines(strings.NewReader(page))
	require.NoError(t, err)

	want := []string{
		"<html>", "<body>",
		"<p>", "Hello", "<b>", "World", "</b>", "</p>",
		"<ul>", "<li>", "one", "</li>", "<li>", "&lt;em&gt;", "</li>", "</ul>",
		"<table>", "<tbody>",
		"<tr>", "<td>", "a1", "</td>", "<td>", "a2", "</td>", "</tr>",
		"<tr>", "<td>", "b1", "</td>", "<td>", "b2", "</td>", "</tr>",
		"</tbody>", "</table>",
		"</body>", "</html>",
	}
	assert.Equal(t, want, lines)
}

func TestLinesRoundTrip(t *testing.T) {
	lines, err := Lines(strings.NewReader(page))
	require.NoError(t, err)

	input := strings.Join(lines, "\n") + "\n"
	tr, err := tree.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, input, tr.HTML())
}

func parsePage(t *testing.T) *tree.Tree {
	t.Helper()
	lines, err := Lines(strings.NewReader(page))
	require.NoError(t, err)
	tr, err := tree.Parse(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	return tr
}

func TestQuery(t *testing.T) {
	cases := []struct {
		name     string
		selector string
		want     []string
	}{
		{name: "tag", selector: "td", want: []string{"a1", "a2", "b1", "b2"}},
		{name: "descendant", selector: "p b", want: []string{"World"}},
		{name: "nested text", selector: "p", want: []string{"Hello World"}},
		{name: "position", selector: "tr:nth-child(2) td:first-child", want: []string{"b1"}},
		{name: "no match", selector: "em", want: nil},
	}

	tr := parsePage(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Query(tr, c.selector)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestQueryAfterEdits(t *testing.T) {
	tr := parsePage(t)

	n, err := tr.BoldRow(2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := Query(tr, "td > b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, got)

	_, err = tr.RemoveTag("ul")
	require.NoError(t, err)
	got, err = Query(tr, "body > p")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello World", "one", "&lt;em&gt;"}, got)
}

func TestQueryErrors(t *testing.T) {
	_, err := Query(parsePage(t), "td[")
	assert.Error(t, err)

	_, err = Query(nil, "td")
	assert.ErrorIs(t, err, tree.ErrEmptyTree)

	_, err = Document(&tree.Tree{})
	assert.ErrorIs(t, err, tree.ErrEmptyTree)
}
