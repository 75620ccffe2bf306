package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		limit int
		want  string
		more  bool
	}{
		{
			name:  "fits",
			input: "<p>\nx\n</p>\n",
			limit: 100,
			want:  "<p>\nx\n</p>\n",
		},
		{
			name:  "cut at line",
			input: "<p>\n" + strings.Repeat("x", 40) + "\n</p>\n",
			limit: 30,
			want:  "<p>\n<!-- output omitted -->\n",
			more:  true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, more := truncate(c.input, c.limit)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.more, more)
			assert.LessOrEqual(t, len(got), c.limit)
		})
	}
}

func TestTreeEmbed(t *testing.T) {
	e := treeEmbed("Tree: html", strings.Repeat("line\n", 2000), true)
	assert.True(t, strings.HasPrefix(e.Description, "```html\n"))
	assert.True(t, strings.HasSuffix(e.Description, "<!-- output omitted -->\n```"))
	assert.LessOrEqual(t, len(e.Description), outputLimit+len("```html\n```"))

	e = treeEmbed("Tree: bold", "Bolded 2 cells in row 2.", false)
	assert.Equal(t, "Bolded 2 cells in row 2.", e.Description)
}
