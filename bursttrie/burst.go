package bursttrie

// maybeBurst consults the heuristic for c (owned by parent's range at ri)
// and executes a split if demanded. Called after every successful insert
// into c, and recursively on the children a split produces.
func (t *Trie[V]) maybeBurst(parent *internalNode[V], ri int, c *container[V]) {
	if !t.cfg.heuristic.ShouldBurst(c.stats()) {
		return
	}
	t.burst(parent, ri, c)
}

func (t *Trie[V]) burst(parent *internalNode[V], ri int, c *container[V]) {
	if c.hybrid {
		t.rerangeHybrid(parent, ri, c)
		return
	}
	// Pure containers sit on singleton ranges, so both split forms are
	// valid; the configured strategy chooses.
	if t.cfg.strategy == StrategyPure {
		t.burstPure(parent, ri, c)
		return
	}
	t.burstHybrid(parent, ri, c)
}

// burstPure replaces the singleton range owning pure container c with a new
// internal node holding one pure child per occupied discriminant byte. The
// empty suffix, if present, becomes the new node's terminal.
func (t *Trie[V]) burstPure(parent *internalNode[V], ri int, c *container[V]) {
	in := &internalNode[V]{}
	var children [256]*container[V]
	c.table.ForEach(func(suffix []byte, value V) bool {
		if len(suffix) == 0 {
			in.hasTerminal = true
			in.terminalValue = value
			return true
		}
		child := children[suffix[0]]
		if child == nil {
			child = t.newContainer(false)
			children[suffix[0]] = child
		}
		child.table.Insert(suffix[1:], value)
		return true
	})
	in.ranges = buildBytePartition(&children)

	e := parent.ranges[ri]
	parent.replaceRange(ri, rangeEntry[V]{lo: e.lo, hi: e.hi, child: in})

	// A degenerate byte distribution (many shared-prefix keys) can leave a
	// child as full as c was; cascade. Each cascade strictly consumes one
	// more byte of key material, so recursion is bounded.
	t.cascade(in)
}

// burstHybrid replaces the singleton range owning pure container c with a
// new internal node over exactly two hybrid halves, split at the byte value
// that best balances the entry counts. Falls back to a pure burst when no
// split point separates the entries.
func (t *Trie[V]) burstHybrid(parent *internalNode[V], ri int, c *container[V]) {
	var hist histogram
	c.table.ForEach(func(suffix []byte, _ V) bool {
		hist.add(suffix)
		return true
	})
	m, ok := hist.balancedSplit(0x00, 0xFF)
	if !ok {
		t.burstPure(parent, ri, c)
		return
	}

	in := &internalNode[V]{}
	left := t.newContainer(true)
	right := t.newContainer(true)
	c.table.ForEach(func(suffix []byte, value V) bool {
		switch {
		case len(suffix) == 0:
			// The empty suffix would be unreachable inside a hybrid child:
			// traversal consults the internal node's terminal once the key
			// is exhausted. Promote it.
			in.hasTerminal = true
			in.terminalValue = value
		case suffix[0] < m:
			left.table.Insert(suffix, value)
		default:
			right.table.Insert(suffix, value)
		}
		return true
	})
	in.ranges = []rangeEntry[V]{
		{lo: 0x00, hi: m - 1, child: left},
		{lo: m, hi: 0xFF, child: right},
	}

	e := parent.ranges[ri]
	parent.replaceRange(ri, rangeEntry[V]{lo: e.lo, hi: e.hi, child: in})
	t.cascade(in)
}

// rerangeHybrid splits hybrid container c's range in two within the owning
// partition; no new internal node is created. A sub-range collapsing to a
// single byte is rebuilt pure (discriminant byte stripped). When every entry
// shares one discriminant byte no balancing split exists; that byte is then
// isolated as a pure singleton child, which is pure-burst semantics for the
// hot byte.
func (t *Trie[V]) rerangeHybrid(parent *internalNode[V], ri int, c *container[V]) {
	lo, hi := parent.ranges[ri].lo, parent.ranges[ri].hi

	var hist histogram
	c.table.ForEach(func(suffix []byte, _ V) bool {
		hist.add(suffix)
		return true
	})
	m, ok := hist.balancedSplit(lo, hi)
	if !ok {
		t.isolateHotByte(parent, ri, c, lo, hi, &hist)
		return
	}

	left := t.buildSubRange(c, lo, m-1)
	right := t.buildSubRange(c, m, hi)
	parent.replaceRange(ri,
		rangeEntry[V]{lo: lo, hi: m - 1, child: left},
		rangeEntry[V]{lo: m, hi: hi, child: right},
	)

	t.maybeBurst(parent, ri, left)
	// left's own cascade may have grown the partition; relocate right by
	// its range start before rechecking it.
	for i := ri + 1; i < len(parent.ranges); i++ {
		if parent.ranges[i].lo != m {
			continue
		}
		if cc, ok := parent.ranges[i].child.(*container[V]); ok && cc == right {
			t.maybeBurst(parent, i, cc)
		}
		break
	}
}

// isolateHotByte rewrites the range [lo,hi] so the single occupied byte b
// becomes a pure singleton child flanked by Empty ranges, then rechecks the
// child (stripping b is what lets a cascade make progress).
func (t *Trie[V]) isolateHotByte(parent *internalNode[V], ri int, c *container[V], lo, hi byte, hist *histogram) {
	b := lo
	for x := int(lo); x <= int(hi); x++ {
		if hist.counts[x] > 0 {
			b = byte(x)
			break
		}
	}
	child := t.buildSubRange(c, b, b)

	repl := make([]rangeEntry[V], 0, 3)
	if lo < b {
		repl = append(repl, rangeEntry[V]{lo: lo, hi: b - 1})
	}
	repl = append(repl, rangeEntry[V]{lo: b, hi: b, child: child})
	if b < hi {
		repl = append(repl, rangeEntry[V]{lo: b + 1, hi: hi})
	}
	parent.replaceRange(ri, repl...)

	ci := ri
	if lo < b {
		ci++
	}
	t.maybeBurst(parent, ci, child)
}

// buildSubRange builds the container for [lo,hi] from the entries of hybrid
// container src whose discriminant byte falls in that range. A singleton
// sub-range is built pure.
func (t *Trie[V]) buildSubRange(src *container[V], lo, hi byte) *container[V] {
	pure := lo == hi
	c := t.newContainer(!pure)
	src.table.ForEach(func(suffix []byte, value V) bool {
		if suffix[0] < lo || suffix[0] > hi {
			return true
		}
		if pure {
			c.table.Insert(suffix[1:], value)
		} else {
			c.table.Insert(suffix, value)
		}
		return true
	})
	return c
}

// cascade rechecks every container child of a freshly built internal node
// against the burst heuristic. Index-based: a recheck can rewrite the
// partition it is walking.
func (t *Trie[V]) cascade(in *internalNode[V]) {
	for i := 0; i < len(in.ranges); i++ {
		if cc, ok := in.ranges[i].child.(*container[V]); ok {
			t.maybeBurst(in, i, cc)
		}
	}
}

// buildBytePartition assembles a gap-free partition from a sparse per-byte
// child array, coalescing unoccupied bytes into Empty ranges.
func buildBytePartition[V any](children *[256]*container[V]) []rangeEntry[V] {
	var ranges []rangeEntry[V]
	gapLo := -1
	for b := range 256 {
		if children[b] == nil {
			if gapLo < 0 {
				gapLo = b
			}
			continue
		}
		if gapLo >= 0 {
			ranges = append(ranges, rangeEntry[V]{lo: byte(gapLo), hi: byte(b - 1)})
			gapLo = -1
		}
		ranges = append(ranges, rangeEntry[V]{lo: byte(b), hi: byte(b), child: children[b]})
	}
	if gapLo >= 0 {
		ranges = append(ranges, rangeEntry[V]{lo: byte(gapLo), hi: 0xFF})
	}
	return ranges
}

// histogram tallies next-discriminant bytes for split-point selection. Empty
// suffixes count toward the terminal bucket, which orders before byte 0.
type histogram struct {
	counts   [256]int
	terminal int
}

func (h *histogram) add(suffix []byte) {
	if len(suffix) == 0 {
		h.terminal++
		return
	}
	h.counts[suffix[0]]++
}

// balancedSplit returns the split point m in (lo,hi] minimizing the absolute
// difference between the entry count below m and at-or-above m, considering
// only bytes within [lo,hi]. ok is false when every candidate leaves one
// side empty, i.e. the distribution cannot be balanced by splitting.
func (h *histogram) balancedSplit(lo, hi byte) (byte, bool) {
	total := h.terminal
	for b := int(lo); b <= int(hi); b++ {
		total += h.counts[b]
	}

	below := h.terminal
	bestDiff := -1
	var bestM byte
	for m := int(lo) + 1; m <= int(hi); m++ {
		below += h.counts[m-1]
		above := total - below
		if below == 0 || above == 0 {
			continue
		}
		diff := below - above
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			bestDiff = diff
			bestM = byte(m)
		}
	}
	return bestM, bestDiff >= 0
}
