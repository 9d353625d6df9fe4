package aht

import (
	"errors"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultBucketCount is the bucket count used when Config leaves it zero.
	DefaultBucketCount = 16

	// DefaultMaxLoad is the mean records-per-bucket above which the table
	// doubles its bucket count.
	DefaultMaxLoad = 8.0
)

var (
	ErrBadBucketCount = errors.New("aht: bucket count must be a power of two")
	ErrBadLoadFactor  = errors.New("aht: max load factor must be positive")
)

// Config carries the immutable table parameters.
//
// Zero values select the package defaults. Check validates explicitly set
// fields; New assumes a checked (or zero) Config.
type Config struct {
	// BucketCount is the initial number of buckets. Must be a power of two.
	BucketCount int

	// MaxLoad is the mean records-per-bucket that triggers a table resize.
	MaxLoad float64

	// Hash maps a key to a 64-bit hash. Defaults to xxhash.Sum64.
	Hash func([]byte) uint64
}

// Check reports whether explicitly set fields are usable.
func (c Config) Check() error {
	if c.BucketCount != 0 && (c.BucketCount < 1 || c.BucketCount&(c.BucketCount-1) != 0) {
		return ErrBadBucketCount
	}
	if c.MaxLoad < 0 {
		return ErrBadLoadFactor
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.BucketCount == 0 {
		c.BucketCount = DefaultBucketCount
	}
	if c.MaxLoad == 0 {
		c.MaxLoad = DefaultMaxLoad
	}
	if c.Hash == nil {
		c.Hash = xxhash.Sum64
	}
	return c
}

// Entry is a (key,value) record surfaced by SortedEntries.
type Entry[V any] struct {
	Key   []byte
	Value V
}
