package bursttrie

import "github.com/forestrie/go-bursttrie/aht"

// Trie is a burst trie mapping variable-length byte-string keys to values of
// type V. Construct with New; the zero value is not usable.
type Trie[V any] struct {
	cfg  config
	root *internalNode[V]
	size int
}

// New returns an empty trie. Invalid configuration is rejected here and
// never at operation time.
func New[V any](opts ...Option) (*Trie[V], error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	if cfg.heuristic == nil {
		cfg.heuristic = LimitHeuristic{Limit: cfg.limit}
	}

	t := &Trie[V]{cfg: cfg}
	// The virtual root: one range over the whole alphabet, consuming zero
	// bytes, targeting a single container of full keys.
	t.root = &internalNode[V]{
		ranges: []rangeEntry[V]{{lo: 0x00, hi: 0xFF, child: t.newContainer(true)}},
	}
	return t, nil
}

// Len returns the number of keys stored.
func (t *Trie[V]) Len() int { return t.size }

func (t *Trie[V]) newContainer(hybrid bool) *container[V] {
	return &container[V]{hybrid: hybrid, table: aht.New[V](t.cfg.table)}
}

// Insert stores (key,value). Inserting an existing key replaces its value
// and returns the previous one; this is resolved at the container level,
// never by burst logic. key bytes are copied.
func (t *Trie[V]) Insert(key []byte, value V) (prev V, replaced bool) {
	n := t.root
	for i := 0; ; i++ {
		if i == len(key) {
			prev, replaced = n.terminalValue, n.hasTerminal
			n.hasTerminal = true
			n.terminalValue = value
			if !replaced {
				t.size++
			}
			return prev, replaced
		}
		b := key[i]
		ri := n.findRange(b)
		switch child := n.ranges[ri].child.(type) {
		case *internalNode[V]:
			n = child
		case *container[V]:
			suffix := key[i:]
			if !child.hybrid {
				suffix = key[i+1:]
			}
			prev, replaced = child.table.Insert(suffix, value)
			if !replaced {
				t.size++
				t.maybeBurst(n, ri, child)
			}
			return prev, replaced
		default:
			// Empty range: claim b with a fresh pure container.
			c := t.newContainer(false)
			c.table.Insert(key[i+1:], value)
			n.claimByte(ri, b, c)
			t.size++
			return prev, false
		}
	}
}

// Lookup returns the value stored for key. It performs no structural
// mutation (container access counters aside).
func (t *Trie[V]) Lookup(key []byte) (V, bool) {
	var zero V
	n := t.root
	for i := 0; ; i++ {
		if i == len(key) {
			if n.hasTerminal {
				return n.terminalValue, true
			}
			return zero, false
		}
		ri := n.findRange(key[i])
		switch child := n.ranges[ri].child.(type) {
		case *internalNode[V]:
			n = child
		case *container[V]:
			suffix := key[i:]
			if !child.hybrid {
				suffix = key[i+1:]
			}
			return child.lookup(suffix)
		default:
			return zero, false
		}
	}
}

// Delete removes key and returns its value. A container that empties has
// its range cleared; internal nodes are never collapsed back into
// containers.
func (t *Trie[V]) Delete(key []byte) (V, bool) {
	var zero V
	n := t.root
	for i := 0; ; i++ {
		if i == len(key) {
			if !n.hasTerminal {
				return zero, false
			}
			prev := n.terminalValue
			n.hasTerminal = false
			n.terminalValue = zero
			t.size--
			return prev, true
		}
		ri := n.findRange(key[i])
		switch child := n.ranges[ri].child.(type) {
		case *internalNode[V]:
			n = child
		case *container[V]:
			suffix := key[i:]
			if !child.hybrid {
				suffix = key[i+1:]
			}
			prev, removed := child.table.Remove(suffix)
			if removed {
				t.size--
				if child.table.Len() == 0 {
					n.clearRange(ri)
				}
			}
			return prev, removed
		default:
			return zero, false
		}
	}
}
