package bursttrie

import "iter"

// All returns every (key,value) pair in ascending byte-lexicographic order.
//
// The sequence is lazy and finite. Container entries are near-sorted at
// rest (hash order within each container), so each container is sorted on
// demand as the walk reaches it; nothing is cached across mutation. The
// sequence is invalidated by any structural mutation; re-invoking All is
// always valid.
func (t *Trie[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		walkNode(t.root, nil, yield)
	}
}

// walkNode emits the subtree rooted at n in ascending key order. prefix is
// the byte path consumed to reach n; yielded keys are freshly allocated.
func walkNode[V any](n *internalNode[V], prefix []byte, yield func([]byte, V) bool) bool {
	// Keys ending at this depth precede every longer key.
	if n.hasTerminal {
		if !yield(joinKey(prefix), n.terminalValue) {
			return false
		}
	}
	for _, e := range n.ranges {
		switch child := e.child.(type) {
		case *internalNode[V]:
			if !walkNode(child, append(prefix, e.lo), yield) {
				return false
			}
		case *container[V]:
			if !walkContainer(child, prefix, e.lo, yield) {
				return false
			}
		}
	}
	return true
}

// walkContainer emits c's entries in ascending suffix order. disc is the
// range start: the stripped discriminant byte when c is pure; unused when c
// is hybrid, since hybrid suffixes retain their own discriminant.
func walkContainer[V any](c *container[V], prefix []byte, disc byte, yield func([]byte, V) bool) bool {
	for _, e := range c.table.SortedEntries() {
		var key []byte
		if c.hybrid {
			key = joinKey(prefix, e.Key)
		} else {
			key = joinKey(prefix, []byte{disc}, e.Key)
		}
		if !yield(key, e.Value) {
			return false
		}
	}
	return true
}

// joinKey concatenates parts into a fresh, never-nil key slice.
func joinKey(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	key := make([]byte, 0, n)
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}
