package bursttrie

import "github.com/forestrie/go-bursttrie/aht"

// container wraps one array hash table of key suffixes.
//
// A pure container sits on a singleton range and stores suffixes with the
// discriminant byte stripped. A hybrid container covers a wider range and
// retains the byte. A zero-length suffix marks a key ending exactly at the
// container's depth; hybrid containers never hold one (keys ending at an
// internal node's depth live in its terminal slot instead).
type container[V any] struct {
	hybrid bool
	table  *aht.Table[V]

	// Access counters for the Ratio heuristic. Reset implicitly: bursts
	// build replacement containers rather than mutating this one.
	accesses   uint64
	directHits uint64
}

func (*container[V]) isNode() {}

func (c *container[V]) lookup(suffix []byte) (V, bool) {
	v, ok, direct := c.table.Probe(suffix)
	c.accesses++
	if direct {
		c.directHits++
	}
	return v, ok
}

func (c *container[V]) stats() ContainerStats {
	return ContainerStats{
		Entries:    c.table.Len(),
		Accesses:   c.accesses,
		DirectHits: c.directHits,
	}
}
