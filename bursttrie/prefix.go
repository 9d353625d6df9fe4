package bursttrie

import (
	"bytes"
	"iter"
)

// EnumeratePrefix returns, in ascending key order, exactly the stored
// (key,value) pairs whose key starts with prefix.
//
// The descent consumes prefix bytes through internal nodes; once they are
// exhausted the whole subtree qualifies with no filtering. A container
// reached before the prefix is fully consumed is scanned and filtered
// against the remaining tail, since container storage is not sorted. That
// scan is bounded by the burst limit, so the cost is O(k+M) for prefix
// length k and M results.
//
// The sequence is lazy and finite, and invalidated by structural mutation;
// recomputation from scratch is always valid.
func (t *Trie[V]) EnumeratePrefix(prefix []byte) iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		n := t.root
		for i := 0; ; i++ {
			if i == len(prefix) {
				walkNode(n, bytes.Clone(prefix), yield)
				return
			}
			ri := n.findRange(prefix[i])
			switch child := n.ranges[ri].child.(type) {
			case *internalNode[V]:
				n = child
			case *container[V]:
				consumed, rem := prefix[:i], prefix[i:]
				if !child.hybrid {
					// The singleton range consumed prefix[i]; suffixes are
					// stored without it.
					consumed, rem = prefix[:i+1], prefix[i+1:]
				}
				enumContainer(child, consumed, rem, yield)
				return
			default:
				return
			}
		}
	}
}

// ContainsPrefix reports whether any stored key starts with prefix.
func (t *Trie[V]) ContainsPrefix(prefix []byte) bool {
	for range t.EnumeratePrefix(prefix) {
		return true
	}
	return false
}

// enumContainer emits c's entries whose suffix starts with rem, in
// ascending order, reconstructing full keys under the consumed prefix.
func enumContainer[V any](c *container[V], consumed, rem []byte, yield func([]byte, V) bool) {
	for _, e := range c.table.SortedEntries() {
		if !bytes.HasPrefix(e.Key, rem) {
			continue
		}
		if !yield(joinKey(consumed, e.Key), e.Value) {
			return
		}
	}
}
