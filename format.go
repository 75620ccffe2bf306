package main

import (
	"strings"
)

// truncate cuts s at a line boundary so that it fits in limit bytes,
// reporting whether anything was dropped.
func truncate(s string, limit int) (string, bool) {
	if len(s) <= limit {
		return s, false
	}

	b := strings.Builder{}
	b.Grow(limit)

	const omitted = "<!-- output omitted -->\n"
	for _, line := range strings.SplitAfter(s, "\n") {
		if len(line)+b.Len()+len(omitted) > limit {
			b.WriteString(omitted)
			break
		}
		b.WriteString(line)
	}
	return b.String(), true
}
