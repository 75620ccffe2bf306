package tree

type Stats struct {
	Elements int
	Leaves   int
	Depth    int
}

// Stats counts the nodes of t. The root alone has depth 1.
func (t *Tree) Stats() Stats {
	var s Stats
	if !t.empty() {
		s.count(t.Root, 1)
	}
	return s
}

func (s *Stats) count(n *Node, depth int) {
	if depth > s.Depth {
		s.Depth = depth
	}
	for ; n != nil; n = n.Sibling {
		if n.FirstChild == nil {
			s.Leaves++
			continue
		}
		s.Elements++
		s.count(n.FirstChild, depth+1)
	}
}
