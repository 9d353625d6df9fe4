package bursttrie

import "errors"

// DefaultBurstLimit is the container entry count above which the default
// Limit heuristic bursts.
const DefaultBurstLimit = 16384

// Strategy selects how a pure container splits when it bursts.
type Strategy uint8

const (
	// StrategyHybrid replaces an over-full pure container with an internal
	// node over two hybrid halves, split at the best-balancing byte value.
	// This is the default: it grows structure two ranges at a time instead
	// of fanning out up to 256 children at once.
	StrategyHybrid Strategy = iota

	// StrategyPure replaces an over-full pure container with an internal
	// node holding one pure child per occupied discriminant byte.
	StrategyPure
)

var (
	ErrBadBurstLimit = errors.New("bursttrie: burst limit must be greater than 1")
	ErrBadStrategy   = errors.New("bursttrie: unknown burst strategy")
)
