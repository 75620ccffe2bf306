package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/DiscordGophers/domtree/tree"
)

// runMenu reads one command per line from in and applies it to t until
// input ends or the user quits.
func runMenu(t *tree.Tree, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, usage())
	fmt.Fprintln(out, "quit")

	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			break
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit", "exit":
			return nil
		case "?", "help":
			fmt.Fprintln(out, usage())
			continue
		}

		msg, err := apply(t, fields[0], fields[1:])
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
			continue
		}
		fmt.Fprintln(out, strings.TrimRight(msg, "\n"))
	}

	fmt.Fprintln(out)
	return sc.Err()
}
