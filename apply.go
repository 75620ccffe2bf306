package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DiscordGophers/domtree/htmldoc"
	"github.com/DiscordGophers/domtree/tree"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
)

type operation struct {
	usage string
	nargs int
	run   func(t *tree.Tree, args []string) (string, error)
}

var errUnknownOperation = errors.New("unknown operation")

// operations is shared by the menu and the bot. A negative nargs means at
// least that many arguments, joined with spaces.
var operations = map[string]operation{
	"replace": {
		usage: "replace <old> <new>",
		nargs: 2,
		run: func(t *tree.Tree, args []string) (string, error) {
			n, err := t.ReplaceTag(args[0], args[1])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Renamed %s <%s> to <%s>.", english.Plural(n, "element", ""), args[0], args[1]), nil
		},
	},
	"bold": {
		usage: "bold <row>",
		nargs: 1,
		run: func(t *tree.Tree, args []string) (string, error) {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return "", errors.Errorf("row %q is not a number", args[0])
			}
			n, err := t.BoldRow(row)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Bolded %s in row %d.", english.Plural(n, "cell", ""), row), nil
		},
	},
	"remove": {
		usage: "remove <p|em|b|ol|ul>",
		nargs: 1,
		run: func(t *tree.Tree, args []string) (string, error) {
			n, err := t.RemoveTag(args[0])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Removed %s <%s>.", english.Plural(n, "element", ""), args[0]), nil
		},
	},
	"add": {
		usage: "add <word> <tag>",
		nargs: 2,
		run: func(t *tree.Tree, args []string) (string, error) {
			n, err := t.AddTag(args[0], args[1])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Wrapped %s of %q in <%s>.", english.Plural(n, "occurrence", ""), args[0], args[1]), nil
		},
	},
	"html": {
		usage: "html",
		run: func(t *tree.Tree, _ []string) (string, error) {
			return t.HTML(), nil
		},
	},
	"print": {
		usage: "print",
		run: func(t *tree.Tree, _ []string) (string, error) {
			var b strings.Builder
			err := t.Print(&b)
			return b.String(), err
		},
	},
	"query": {
		usage: "query <selector>",
		nargs: -1,
		run: func(t *tree.Tree, args []string) (string, error) {
			matches, err := htmldoc.Query(t, strings.Join(args, " "))
			if err != nil {
				return "", err
			}
			var b strings.Builder
			fmt.Fprintf(&b, "%s:\n", english.Plural(len(matches), "match", "matches"))
			for i, m := range matches {
				fmt.Fprintf(&b, "%d. %s\n", i+1, m)
			}
			return b.String(), nil
		},
	},
	"dump": {
		usage: "dump",
		run: func(t *tree.Tree, _ []string) (string, error) {
			return pp.Sprint(t.Root), nil
		},
	},
	"stats": {
		usage: "stats",
		run: func(t *tree.Tree, _ []string) (string, error) {
			s := t.Stats()
			return fmt.Sprintf("%s, %s, depth %d, %s rendered.",
				english.Plural(s.Elements, "element", ""), english.Plural(s.Leaves, "text node", ""), s.Depth,
				humanize.Bytes(uint64(len(t.HTML())))), nil
		},
	},
}

// apply runs the named operation against t.
func apply(t *tree.Tree, name string, args []string) (string, error) {
	op, ok := operations[name]
	if !ok {
		return "", errors.Wrap(errUnknownOperation, name)
	}
	switch {
	case op.nargs >= 0 && len(args) != op.nargs,
		op.nargs < 0 && len(args) < -op.nargs:
		return "", errors.Errorf("usage: %s", op.usage)
	}
	return op.run(t, args)
}

func usage() string {
	names := []string{"replace", "bold", "remove", "add", "html", "print", "query", "dump", "stats"}
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, operations[name].usage)
	}
	return strings.Join(lines, "\n")
}
