package bursttrie

// ContainerStats is the per-container bookkeeping a Heuristic consults.
type ContainerStats struct {
	// Entries is the container's current record count.
	Entries int

	// Accesses counts lookups answered by this container since it was
	// created. Containers are replaced wholesale by bursts, so counters
	// never survive a structural change.
	Accesses uint64

	// DirectHits counts the subset of Accesses where the record was the
	// first one scanned in its hash bucket, i.e. answered with no in-bucket
	// scanning cost.
	DirectHits uint64
}

// Heuristic decides, after each successful insert, whether the receiving
// container must burst. Alternative heuristics attach here without touching
// the node representation.
type Heuristic interface {
	ShouldBurst(ContainerStats) bool
}

// LimitHeuristic bursts when a container's entry count exceeds Limit. This
// is the baseline policy and the default.
type LimitHeuristic struct {
	Limit int
}

func (h LimitHeuristic) ShouldBurst(s ContainerStats) bool {
	return s.Entries > h.Limit
}

// RatioHeuristic bursts a container whose lookups are degrading into long
// in-bucket scans: once it has seen MinAccesses lookups, it bursts when the
// direct-hit fraction drops below MinDirectRatio. Limit is still enforced as
// a hard cap.
type RatioHeuristic struct {
	Limit          int
	MinAccesses    uint64
	MinDirectRatio float64
}

func (h RatioHeuristic) ShouldBurst(s ContainerStats) bool {
	if s.Entries > h.Limit {
		return true
	}
	if s.Accesses < h.MinAccesses {
		return false
	}
	return float64(s.DirectHits) < h.MinDirectRatio*float64(s.Accesses)
}
