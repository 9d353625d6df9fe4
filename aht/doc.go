package aht

/*

# Array hash table primitives (packed buckets, in-place scans)

This package provides the array hash table used as leaf storage by the burst
trie in `go-bursttrie/bursttrie`. It is useful on its own wherever many short
byte-string keys must be stored with minimal pointer chasing.

It follows the same "functional primitives" style as the rest of the module:

- small, composable functions
- explicit byte layouts
- a burden of knowledge on the caller for hot paths

## Why packed buckets

A chained hash table resolves collisions by walking a linked list: one cache
miss per visited entry. An array hash table instead packs all same-bucket
keys into a single contiguous buffer:

	+--------------------------------------------+
	| uvarint(len k0) | k0 bytes | uvarint ...   |
	+--------------------------------------------+

Lookup costs one dereference to reach the buffer and then purely sequential
memory access. Collisions are resolved by this in-bucket scan alone; there is
no secondary structure.

## Values

Values are generic and may be of any size, so they are never interleaved with
key bytes (that would destroy the scan locality the layout exists for).
Each bucket owns a parallel value slice in record order: the i-th record in
the bucket's key buffer maps to the i-th value slot.

## Growth

Bucket buffers grow by amortized doubling via append. The table itself grows
when the mean records-per-bucket exceeds the configured load factor: the
bucket count doubles and every record is redistributed by its recomputed
bucket index. Redistribution builds the new bucket array completely before it
is swapped in, so a table observed between operations is always whole.

## Hashing

The bucket index is `hash(key) & (bucketCount-1)`; bucket counts are powers
of two. The hash function is pluggable and defaults to xxhash (Sum64).

## Concurrency

None. Callers requiring concurrent access must provide external exclusion.

*/
