package breaker

// breakNode is a candidate break at item index `position` ending line
// number `line`. Nodes form a tree rooted at the paragraph origin: each
// node holds a back-reference to its predecessor, and a predecessor stays
// reachable for as long as any descendant break is still live in the
// returned chain.
type breakNode struct {
	position     int
	line         int
	fitnessClass FitnessClass
	ratio        float64
	demerits     float64
	previous     *breakNode
}

// frontier is the active set of live break candidates: an ordered slice
// key-sorted by line, with no two entries sharing the same
// (line, fitnessClass) pair.
type frontier struct {
	nodes []*breakNode
}

func newFrontier(origin *breakNode) *frontier {
	return &frontier{nodes: []*breakNode{origin}}
}

func (f *frontier) len() int { return len(f.nodes) }

// insert finds the first index whose line is >= node.line and inserts there,
// unless a node with the same (line, fitnessClass) already occupies that
// line, in which case node is silently dropped.
func (f *frontier) insert(node *breakNode) {
	idx := 0
	for idx < len(f.nodes) && f.nodes[idx].line < node.line {
		idx++
	}
	for j := idx; j < len(f.nodes) && f.nodes[j].line == node.line; j++ {
		if f.nodes[j].fitnessClass == node.fitnessClass {
			return
		}
	}
	f.nodes = append(f.nodes, nil)
	copy(f.nodes[idx+1:], f.nodes[idx:])
	f.nodes[idx] = node
}

// remove deletes at most one occurrence of node, found by identity.
func (f *frontier) remove(node *breakNode) {
	for i, n := range f.nodes {
		if n == node {
			f.nodes = append(f.nodes[:i], f.nodes[i+1:]...)
			return
		}
	}
}

// removeAll deletes every node in toRemove, found by identity, in a single
// pass. It is the batch counterpart to remove: a forced break deactivates
// every currently active node in the same step new candidates are being
// activated, so removal must not be interleaved one at a time with an
// emptiness check that would spuriously spare a node the batch meant to
// drop.
func (f *frontier) removeAll(toRemove []*breakNode) {
	if len(toRemove) == 0 {
		return
	}
	drop := make(map[*breakNode]bool, len(toRemove))
	for _, n := range toRemove {
		drop[n] = true
	}
	kept := f.nodes[:0]
	for _, n := range f.nodes {
		if !drop[n] {
			kept = append(kept, n)
		}
	}
	f.nodes = kept
}
