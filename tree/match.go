package tree

import "strings"

const punctuation = ".?:!;,"

// WrapWord splits text around the first token matching word and returns the
// nodes that replace it: an optional prefix leaf, the tag element holding the
// matched token, and an optional remainder leaf. The returned nodes are not
// linked to each other. It returns nil if nothing matches.
func WrapWord(text, word, tag string) []*Node {
	start, end, ok := findWord(text, word)
	if !ok {
		return nil
	}

	var seq []*Node
	if start > 0 {
		seq = append(seq, &Node{Label: text[:start]})
	}
	seq = append(seq, &Node{Label: tag, FirstChild: &Node{Label: text[start:end]}})
	if end < len(text) {
		seq = append(seq, &Node{Label: text[end:]})
	}
	return seq
}

// findWord reports the byte range of the first space-separated token in text
// that equals word ignoring case, optionally followed by one punctuation mark.
func findWord(text, word string) (start, end int, ok bool) {
	if word == "" {
		return 0, 0, false
	}
	for start <= len(text) {
		end = strings.IndexByte(text[start:], ' ')
		if end < 0 {
			end = len(text)
		} else {
			end += start
		}
		if matchToken(text[start:end], word) {
			return start, end, true
		}
		start = end + 1
	}
	return 0, 0, false
}

func matchToken(token, word string) bool {
	if strings.EqualFold(token, word) {
		return true
	}
	if len(token) < 2 || !strings.ContainsRune(punctuation, rune(token[len(token)-1])) {
		return false
	}
	return strings.EqualFold(token[:len(token)-1], word)
}
