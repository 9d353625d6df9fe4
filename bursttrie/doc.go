package bursttrie

/*

# Burst trie over raw byte-string keys (range-partitioned, array-hashed leaves)

This package provides an ordered associative container for variable-length
byte-string keys, optionally mapped to values. It combines a byte-wise trie
with array hash tables (`go-bursttrie/aht`) as leaf storage and an adaptive
"burst" policy that grows trie structure only where the key distribution
demands it.

Keys are raw byte sequences. Alphabet and encoding normalization (UTF-8 vs
ASCII, case folding, ...) is a caller concern.

## Node model

An internal node owns a sorted, gap-free partition of the byte domain
[0,255] into ranges, each targeting one of:

- Empty (no keys pass through these bytes)
- a container node (an array hash table of key suffixes)
- a nested internal node (only permitted on single-byte ranges, because
  descending consumes exactly one key byte)

An internal node additionally carries a terminal slot for the keys that end
exactly at its depth.

Containers come in two variants:

- Pure: addressed by exactly one discriminant byte; suffixes are stored with
  that byte already stripped.
- Hybrid: addressed by a contiguous range of discriminant bytes; suffixes
  retain the byte, because the container must still disambiguate within its
  range.

The trie starts as a virtual-root internal node whose single range [0,255]
targets one container holding full keys. Internal nodes are created only by
bursts.

## Bursting

Each successful insert into a container consults a heuristic (Limit by
default: entry count above a configured threshold). An over-full container
splits one of three ways:

- pure burst: a singleton-range container becomes an internal node with
  per-byte pure children
- hybrid burst: a singleton-range container becomes an internal node with
  exactly two hybrid children, split at the byte value that best balances
  the entry counts
- hybrid re-range: an over-full hybrid container splits its own range in two
  within the owning partition, with no new internal node

Bursts are pure internal reorganizations: the set of recoverable (key,value)
pairs is unchanged. Every partition rewrite is built completely before it is
swapped into the owning node, so the structure observed between operations
is always whole.

## Near-sorted order

Only the byte-prefix consumed by internal nodes is structurally sorted;
entries within a container are stored in hash order. Sorted iteration and
prefix enumeration therefore sort each container on demand; the sort is
recomputed, never cached across mutation.

## Concurrency

None. All operations run synchronously on the calling goroutine. Lookup
updates per-container access counters consumed by the Ratio heuristic, so
even read operations mutate the structure. Callers requiring concurrent
access must provide external exclusion, and any iteration in progress is
invalidated by a structural mutation.

*/
