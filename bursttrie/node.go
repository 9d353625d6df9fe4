package bursttrie

// node is a range target: either an *internalNode or a *container. A nil
// node marks an Empty range.
type node[V any] interface {
	isNode()
}

// rangeEntry maps the contiguous byte range [lo,hi] to a target. Ranges are
// inclusive at both ends so the full domain [0,255] is representable.
type rangeEntry[V any] struct {
	lo, hi byte
	child  node[V]
}

// internalNode owns a sorted, gap-free partition of [0,255].
//
// Invariants:
//   - ranges are contiguous, ordered, non-overlapping and jointly cover
//     [0,255] exactly once
//   - only a singleton range (lo==hi) may target a nested internalNode
//   - a pure container is only ever targeted by a singleton range
type internalNode[V any] struct {
	ranges        []rangeEntry[V]
	hasTerminal   bool
	terminalValue V
}

func (*internalNode[V]) isNode() {}

// findRange returns the index of the partition entry containing b. The
// partition is gap-free, so the entry always exists.
func (n *internalNode[V]) findRange(b byte) int {
	lo, hi := 0, len(n.ranges)-1
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if n.ranges[mid].hi < b {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// replaceRange substitutes the partition entry at i with repl. The
// replacement slice is fully built before it is swapped in; the entries in
// repl must jointly cover exactly the byte range of the entry they replace.
func (n *internalNode[V]) replaceRange(i int, repl ...rangeEntry[V]) {
	next := make([]rangeEntry[V], 0, len(n.ranges)-1+len(repl))
	next = append(next, n.ranges[:i]...)
	next = append(next, repl...)
	next = append(next, n.ranges[i+1:]...)
	n.ranges = next
}

// claimByte splits the Empty range at i around b, installing child on the
// new singleton range [b,b].
func (n *internalNode[V]) claimByte(i int, b byte, child node[V]) {
	e := n.ranges[i]
	repl := make([]rangeEntry[V], 0, 3)
	if e.lo < b {
		repl = append(repl, rangeEntry[V]{lo: e.lo, hi: b - 1})
	}
	repl = append(repl, rangeEntry[V]{lo: b, hi: b, child: child})
	if b < e.hi {
		repl = append(repl, rangeEntry[V]{lo: b + 1, hi: e.hi})
	}
	n.replaceRange(i, repl...)
}

// clearRange empties the range at i, coalescing it with any adjacent Empty
// neighbours so emptied containers do not fragment the partition.
func (n *internalNode[V]) clearRange(i int) {
	j, k := i, i
	if j > 0 && n.ranges[j-1].child == nil {
		j--
	}
	if k < len(n.ranges)-1 && n.ranges[k+1].child == nil {
		k++
	}
	next := make([]rangeEntry[V], 0, len(n.ranges)-(k-j))
	next = append(next, n.ranges[:j]...)
	next = append(next, rangeEntry[V]{lo: n.ranges[j].lo, hi: n.ranges[k].hi})
	next = append(next, n.ranges[k+1:]...)
	n.ranges = next
}
