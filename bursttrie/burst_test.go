package bursttrie

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkTrieInvariants verifies the structural invariants that every burst
// variant must preserve: gap-free ordered partitions, internal references
// and pure containers confined to singleton ranges, and hybrid suffixes
// retaining a discriminant byte inside the owning range.
func checkTrieInvariants[V any](t *testing.T, tr *Trie[V]) {
	t.Helper()
	checkNodeInvariants(t, tr.root)
}

func checkNodeInvariants[V any](t *testing.T, n *internalNode[V]) {
	t.Helper()
	require.NotEmpty(t, n.ranges)
	require.Equal(t, byte(0x00), n.ranges[0].lo)
	require.Equal(t, byte(0xFF), n.ranges[len(n.ranges)-1].hi)

	for i, e := range n.ranges {
		require.LessOrEqual(t, e.lo, e.hi, "range %d inverted", i)
		if i > 0 {
			require.Equalf(t, int(n.ranges[i-1].hi)+1, int(e.lo),
				"gap or overlap between ranges %d and %d", i-1, i)
		}

		switch child := e.child.(type) {
		case *internalNode[V]:
			require.Equal(t, e.lo, e.hi, "internal ref on non-singleton range")
			checkNodeInvariants(t, child)
		case *container[V]:
			if !child.hybrid {
				require.Equal(t, e.lo, e.hi, "pure container on non-singleton range")
				continue
			}
			child.table.ForEach(func(suffix []byte, _ V) bool {
				require.NotEmpty(t, suffix, "hybrid container holds an empty suffix")
				require.GreaterOrEqual(t, suffix[0], e.lo)
				require.LessOrEqual(t, suffix[0], e.hi)
				return true
			})
		}
	}
}

// collect drains All into a map plus the observed key order.
func collect[V any](t *testing.T, tr *Trie[V]) (map[string]V, []string) {
	t.Helper()
	got := map[string]V{}
	var order []string
	for k, v := range tr.All() {
		_, seen := got[string(k)]
		require.False(t, seen, "key %q yielded twice", k)
		got[string(k)] = v
		order = append(order, string(k))
	}
	return got, order
}

// TestBurstInvariance drives the trie through many bursts of every variant
// and asserts after each insert that the recoverable contents are exactly
// the reference map: burst is a pure internal reorganization.
func TestBurstInvariance(t *testing.T) {
	corpus := []string{
		"", "r", "ro", "rom", "roman", "romane", "romanes", "romanus",
		"romulus", "rub", "rubens", "ruber", "rubicon", "rubicundus",
		"a", "ab", "abc", "abd", "abe", "b", "ba", "bb", "bc",
		"\x00", "\x00\x00", "\x00\xff", "\xff", "\xff\x00", "\xff\xff",
	}

	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			tr, err := New[int](WithBurstLimit(2), WithStrategy(strategy))
			require.NoError(t, err)

			want := map[string]int{}
			for i, k := range corpus {
				tr.Insert([]byte(k), i)
				want[k] = i

				checkTrieInvariants(t, tr)
				require.Equal(t, len(want), tr.Len())

				got, order := collect(t, tr)
				require.Equal(t, want, got)
				require.True(t, sort.StringsAreSorted(order), "order %q", order)
			}
		})
	}
}

// TestDegenerateSharedPrefixCascade forces the all-identical-byte fallback:
// every key shares a long prefix, so hybrid splits cannot balance and the
// controller must repeatedly fall back to pure-burst semantics.
func TestDegenerateSharedPrefixCascade(t *testing.T) {
	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			tr, err := New[int](WithBurstLimit(2), WithStrategy(strategy))
			require.NoError(t, err)

			prefix := "aaaaaaaaaaaaaaaa"
			keys := []string{
				prefix,
				prefix + "a",
				prefix + "aa",
				prefix + "aaa",
				prefix + "b",
				prefix + "c",
			}
			for i, k := range keys {
				tr.Insert([]byte(k), i)
			}
			checkTrieInvariants(t, tr)
			require.Equal(t, len(keys), tr.Len())

			for i, k := range keys {
				v, ok := tr.Lookup([]byte(k))
				require.True(t, ok, "key %q", k)
				require.Equal(t, i, v)
			}

			_, order := collect(t, tr)
			require.True(t, sort.StringsAreSorted(order))
		})
	}
}

func TestHybridSplitBalances(t *testing.T) {
	tr, err := New[int](WithBurstLimit(8), WithStrategy(StrategyHybrid))
	require.NoError(t, err)

	// Nine distinct leading bytes force exactly one split of the root
	// container into two hybrid halves of near-equal population.
	for i := range 9 {
		tr.Insert([]byte{byte('a' + i)}, i)
	}
	checkTrieInvariants(t, tr)

	require.Len(t, tr.root.ranges, 2)
	var sizes []int
	for _, e := range tr.root.ranges {
		c, ok := e.child.(*container[int])
		require.True(t, ok)
		require.True(t, c.hybrid)
		sizes = append(sizes, c.table.Len())
	}
	require.Equal(t, 9, sizes[0]+sizes[1])
	require.LessOrEqual(t, sizes[0]-sizes[1], 1)
	require.LessOrEqual(t, sizes[1]-sizes[0], 1)
}

func TestHybridRerangeSplitsInPlace(t *testing.T) {
	tr, err := New[int](WithBurstLimit(4), WithStrategy(StrategyHybrid))
	require.NoError(t, err)

	// First five distinct bytes burst the root container into two hybrid
	// halves; pushing more keys into one half must re-range it without
	// growing the tree depth on that path.
	for i := range 16 {
		tr.Insert([]byte{byte(i), 'x'}, i)
	}
	checkTrieInvariants(t, tr)

	// Every top-level target is still directly under the root: re-range
	// rewrites the partition in place.
	require.Greater(t, len(tr.root.ranges), 2)
	for i, e := range tr.root.ranges {
		if _, ok := e.child.(*internalNode[int]); ok {
			require.Equal(t, e.lo, e.hi, "range %d", i)
		}
	}

	for i := range 16 {
		v, ok := tr.Lookup([]byte{byte(i), 'x'})
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestPureBurstPromotesEmptySuffixToTerminal(t *testing.T) {
	tr, err := New[int](WithBurstLimit(2), WithStrategy(StrategyPure))
	require.NoError(t, err)

	// "a" ends one byte below its siblings; after the shared container
	// bursts, it must survive as a terminal rather than a suffix entry.
	for i, k := range []string{"a", "ab", "ac", "ad"} {
		tr.Insert([]byte(k), i)
	}
	checkTrieInvariants(t, tr)

	v, ok := tr.Lookup([]byte("a"))
	require.True(t, ok)
	require.Equal(t, 0, v)

	got, order := collect(t, tr)
	require.Equal(t, map[string]int{"a": 0, "ab": 1, "ac": 2, "ad": 3}, got)
	require.Equal(t, []string{"a", "ab", "ac", "ad"}, order)
}

func TestLimitHeuristic(t *testing.T) {
	h := LimitHeuristic{Limit: 16}
	require.False(t, h.ShouldBurst(ContainerStats{Entries: 16}))
	require.True(t, h.ShouldBurst(ContainerStats{Entries: 17}))
}

func TestRatioHeuristic(t *testing.T) {
	h := RatioHeuristic{Limit: 1000, MinAccesses: 10, MinDirectRatio: 0.5}

	// Hard cap applies regardless of counters.
	require.True(t, h.ShouldBurst(ContainerStats{Entries: 1001}))

	// Too few accesses to judge.
	require.False(t, h.ShouldBurst(ContainerStats{Entries: 5, Accesses: 9, DirectHits: 0}))

	// Healthy direct-hit ratio.
	require.False(t, h.ShouldBurst(ContainerStats{Entries: 5, Accesses: 100, DirectHits: 80}))

	// Scans dominating: burst.
	require.True(t, h.ShouldBurst(ContainerStats{Entries: 5, Accesses: 100, DirectHits: 20}))
}

func TestRatioHeuristicDrivesBurst(t *testing.T) {
	tr, err := New[int](WithHeuristic(RatioHeuristic{
		Limit:          1 << 20,
		MinAccesses:    8,
		MinDirectRatio: 0.99,
	}))
	require.NoError(t, err)

	// One shared bucket guarantees non-direct probes, pushing the observed
	// ratio below threshold once enough lookups accumulate.
	n := 32
	for i := range n {
		tr.Insert(fmt.Appendf(nil, "ratio-key-%02d", i), i)
	}
	for range 8 {
		for i := range n {
			tr.Lookup(fmt.Appendf(nil, "ratio-key-%02d", i))
		}
	}
	// The burst trigger is evaluated on insert.
	tr.Insert([]byte("ratio-key-last"), n)

	checkTrieInvariants(t, tr)
	require.Equal(t, n+1, tr.Len())
	for i := range n {
		v, ok := tr.Lookup(fmt.Appendf(nil, "ratio-key-%02d", i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}
