package bursttrie

import "github.com/forestrie/go-bursttrie/aht"

type config struct {
	limit     int
	strategy  Strategy
	heuristic Heuristic
	table     aht.Config
}

func defaultConfig() config {
	return config{
		limit:    DefaultBurstLimit,
		strategy: StrategyHybrid,
	}
}

func (c config) check() error {
	if c.limit <= 1 {
		return ErrBadBurstLimit
	}
	if c.strategy != StrategyPure && c.strategy != StrategyHybrid {
		return ErrBadStrategy
	}
	return c.table.Check()
}

// Option configures a Trie at construction. Configuration is immutable once
// New returns; there is no process-global tuning state.
type Option func(*config)

// WithBurstLimit sets the container entry count above which the default
// Limit heuristic bursts. Must be greater than 1.
func WithBurstLimit(limit int) Option {
	return func(c *config) { c.limit = limit }
}

// WithStrategy selects the split strategy for bursting pure containers.
func WithStrategy(s Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithHeuristic replaces the default Limit heuristic. The supplied heuristic
// must eventually stop requesting bursts for a container it cannot shrink,
// or insertion will not terminate; both shipped heuristics do.
func WithHeuristic(h Heuristic) Option {
	return func(c *config) { c.heuristic = h }
}

// WithBucketCount sets the initial bucket count of each container's hash
// table. Must be a power of two.
func WithBucketCount(n int) Option {
	return func(c *config) { c.table.BucketCount = n }
}

// WithMaxLoadFactor sets the mean records-per-bucket above which a
// container's hash table doubles its bucket count.
func WithMaxLoadFactor(f float64) Option {
	return func(c *config) { c.table.MaxLoad = f }
}

// WithHash replaces the default key hash (xxhash) used by container hash
// tables.
func WithHash(h func([]byte) uint64) Option {
	return func(c *config) { c.table.Hash = h }
}
