package aht

import (
	"bytes"
	"encoding/binary"
	"slices"
)

// Table is an array hash table over variable-length byte-string keys.
//
// Keys are unique within a table. The zero value is not usable; construct
// with New.
type Table[V any] struct {
	buckets []bucket[V]
	count   int
	maxLoad float64
	hash    func([]byte) uint64
}

// bucket packs its keys into one contiguous buffer and keeps values in a
// parallel slice in record order.
type bucket[V any] struct {
	buf  []byte
	vals []V
}

// New returns an empty table for cfg. cfg must be zero or pass Check; an
// unchecked invalid field falls back to its default.
func New[V any](cfg Config) *Table[V] {
	if cfg.Check() != nil {
		cfg = Config{Hash: cfg.Hash}
	}
	cfg = cfg.withDefaults()
	return &Table[V]{
		buckets: make([]bucket[V], cfg.BucketCount),
		maxLoad: cfg.MaxLoad,
		hash:    cfg.Hash,
	}
}

// Len returns the number of records in the table.
func (t *Table[V]) Len() int { return t.count }

// Insert stores (key,value). If key is already present its value is replaced
// and the previous value returned. key bytes are copied; the caller may
// reuse the slice.
func (t *Table[V]) Insert(key []byte, value V) (prev V, replaced bool) {
	b := &t.buckets[t.bucketIndex(key)]
	if i, _, _ := b.find(key); i >= 0 {
		prev = b.vals[i]
		b.vals[i] = value
		return prev, true
	}
	b.appendRecord(key, value)
	t.count++
	if float64(t.count) > t.maxLoad*float64(len(t.buckets)) {
		t.grow()
	}
	return prev, false
}

// Lookup returns the value stored for key.
func (t *Table[V]) Lookup(key []byte) (V, bool) {
	v, ok, _ := t.Probe(key)
	return v, ok
}

// Probe is Lookup plus a direct-hit indicator: direct is true when the key
// was the first record scanned in its bucket. Burst heuristics use this to
// estimate how much in-bucket scanning a container is costing.
func (t *Table[V]) Probe(key []byte) (v V, ok bool, direct bool) {
	b := &t.buckets[t.bucketIndex(key)]
	i, _, _ := b.find(key)
	if i < 0 {
		return v, false, false
	}
	return b.vals[i], true, i == 0
}

// Remove deletes key and returns its value. The record's key bytes are
// compacted out of the bucket buffer in place.
func (t *Table[V]) Remove(key []byte) (prev V, removed bool) {
	b := &t.buckets[t.bucketIndex(key)]
	i, off, end := b.find(key)
	if i < 0 {
		return prev, false
	}
	prev = b.vals[i]
	b.buf = append(b.buf[:off], b.buf[end:]...)
	b.vals = slices.Delete(b.vals, i, i+1)
	t.count--
	return prev, true
}

// ForEach visits every record in bucket order. The key slice aliases the
// bucket buffer and is only valid during the visit; visitors must not mutate
// the table. Returning false stops the walk.
func (t *Table[V]) ForEach(visit func(key []byte, value V) bool) {
	for bi := range t.buckets {
		b := &t.buckets[bi]
		off := 0
		for i := range b.vals {
			klen, n := binary.Uvarint(b.buf[off:])
			off += n
			if !visit(b.buf[off:off+int(klen):off+int(klen)], b.vals[i]) {
				return
			}
			off += int(klen)
		}
	}
}

// SortedEntries returns every record ordered by ascending byte-lexicographic
// key. Keys are copied. The order is recomputed on each call; the table
// keeps no sorted state.
func (t *Table[V]) SortedEntries() []Entry[V] {
	entries := make([]Entry[V], 0, t.count)
	t.ForEach(func(key []byte, value V) bool {
		entries = append(entries, Entry[V]{Key: bytes.Clone(key), Value: value})
		return true
	})
	slices.SortFunc(entries, func(a, b Entry[V]) int {
		return bytes.Compare(a.Key, b.Key)
	})
	return entries
}

func (t *Table[V]) bucketIndex(key []byte) uint64 {
	return t.hash(key) & uint64(len(t.buckets)-1)
}

// grow doubles the bucket count and redistributes every record. The new
// bucket array is fully built before it replaces the old one.
func (t *Table[V]) grow() {
	old := t.buckets
	t.buckets = make([]bucket[V], 2*len(old))
	for bi := range old {
		b := &old[bi]
		off := 0
		for i := range b.vals {
			klen, n := binary.Uvarint(b.buf[off:])
			off += n
			key := b.buf[off : off+int(klen)]
			off += int(klen)
			t.buckets[t.bucketIndex(key)].appendRecord(key, b.vals[i])
		}
	}
}

// find scans b for key. It returns the record index and the [off,end) byte
// range of the record within the bucket buffer, or (-1,0,0).
func (b *bucket[V]) find(key []byte) (idx, off, end int) {
	pos := 0
	for i := range b.vals {
		klen, n := binary.Uvarint(b.buf[pos:])
		kend := pos + n + int(klen)
		if int(klen) == len(key) && bytes.Equal(b.buf[pos+n:kend], key) {
			return i, pos, kend
		}
		pos = kend
	}
	return -1, 0, 0
}

func (b *bucket[V]) appendRecord(key []byte, value V) {
	b.buf = binary.AppendUvarint(b.buf, uint64(len(key)))
	b.buf = append(b.buf, key...)
	b.vals = append(b.vals, value)
}
