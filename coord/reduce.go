// Package coord implements arbitrary and connectivity-preserving throat
// trimming.
package coord

import (
	"math"

	"github.com/katalvlaran/porenet/core"
)

// Trim deletes the given throats from n with no connectivity guarantee.
// Duplicate ids in throatIDs are deduplicated before deletion (part of the
// contract: a random sample with repeats removes each throat once). The
// returned TrimReport lists what was removed, which pores ended up
// isolated, and the component counts around the trim; splits and isolated
// pores are reported, never silently hidden, and never fatal.
//
// Returns ErrNilNetwork for a nil network and core.ErrThroatNotFound for an
// out-of-range id (checked before anything mutates).
//
// Time:   O(V + E).
// Memory: O(V + E).
func Trim(n *core.Network, throatIDs []int) (TrimReport, error) {
	if n == nil {
		return TrimReport{}, ErrNilNetwork
	}

	// Deduplicate while preserving first-seen order.
	seen := make(map[int]bool, len(throatIDs))
	unique := make([]int, 0, len(throatIDs))
	for _, id := range throatIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	before := len(n.ConnectedComponents())
	if _, err := n.RemoveThroats(unique); err != nil {
		return TrimReport{}, err
	}

	report := TrimReport{
		Removed:          unique,
		ComponentsBefore: before,
		ComponentsAfter:  len(n.ConnectedComponents()),
	}
	for id := 0; id < n.PoreCount(); id++ {
		if d, _ := n.Degree(id); d == 0 {
			report.IsolatedPores = append(report.IsolatedPores, id)
		}
	}

	return report, nil
}

// SampleThroats draws count distinct throat ids uniformly at random from n,
// deterministically per seed, for use with Trim. A count at or above the
// throat total returns every id.
//
// Returns ErrNilNetwork / ErrBadSampleCount on bad arguments.
//
// Complexity: O(E) time and memory.
func SampleThroats(n *core.Network, count int, seed int64) ([]int, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	if count < 0 {
		return nil, ErrBadSampleCount
	}
	if count > n.ThroatCount() {
		count = n.ThroatCount()
	}

	perm := permRange(n.ThroatCount(), rngFromSeed(seed))

	return perm[:count], nil
}

// ReduceCoordination removes throats from n until the mean degree over all
// pores reaches targetZ, while never disconnecting a component that was
// connected before the call.
//
// Steps:
//  1. Compute a spanning forest (one tree per component) with a
//     Kruskal-style union-find pass over the throats in seeded-shuffled
//     order. Weights are uniform, so correctness does not depend on the
//     order; the shuffle only decides which interchangeable edges are kept.
//  2. Mark every forest edge protected.
//  3. Derive the removal count from targetZ = 2·T/P: remove
//     ThroatCount − round(targetZ·PoreCount/2) throats.
//  4. Remove that many non-protected throats chosen uniformly at random
//     from the same seeded stream.
//
// If targetZ demands removing protected edges, the full forest is kept and
// the achieved (higher) mean degree is reported instead. A targetZ at or
// above the current mean degree removes nothing.
//
// Returns ErrNilNetwork / ErrEmptyNetwork / ErrBadTargetDegree on bad
// arguments; nothing mutates on error.
//
// Time:   O(E·α(V) + V + E).
// Memory: O(V + E).
func ReduceCoordination(n *core.Network, targetZ float64, seed int64) (ReduceResult, error) {
	if n == nil {
		return ReduceResult{}, ErrNilNetwork
	}
	if n.PoreCount() == 0 {
		return ReduceResult{}, ErrEmptyNetwork
	}
	if !(targetZ > 0) {
		return ReduceResult{}, ErrBadTargetDegree
	}

	rng := rngFromSeed(seed)
	throats := n.Throats()

	// 1+2. Spanning forest via union-find over shuffled edge order.
	parent := make([]int, n.PoreCount())
	rank := make([]int, n.PoreCount())
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path compression by halving
			u = parent[u]
		}

		return u
	}

	protected := make([]bool, len(throats))
	nonProtected := make([]int, 0, len(throats))
	for _, tid := range permRange(len(throats), rng) {
		ra, rb := find(throats[tid].PoreA), find(throats[tid].PoreB)
		if ra == rb {
			// Cycle edge: removable without disconnecting anything.
			nonProtected = append(nonProtected, tid)
			continue
		}
		// Union by rank; this edge joins two trees of the forest.
		if rank[ra] < rank[rb] {
			ra, rb = rb, ra
		}
		parent[rb] = ra
		if rank[ra] == rank[rb] {
			rank[ra]++
		}
		protected[tid] = true
	}
	forestSize := len(throats) - len(nonProtected)

	// 3. How many throats must go: targetZ = 2·T/P ⇒ T = targetZ·P/2.
	targetThroats := int(math.Round(targetZ * float64(n.PoreCount()) / 2))
	removeCount := len(throats) - targetThroats
	if removeCount < 0 {
		removeCount = 0
	}
	if removeCount > len(nonProtected) {
		// The spanning-forest floor: keep the forest, deliver a higher z.
		removeCount = len(nonProtected)
	}

	// 4. Uniform random choice among the removable throats.
	shuffleIntsInPlace(nonProtected, rng)
	if _, err := n.RemoveThroats(nonProtected[:removeCount]); err != nil {
		return ReduceResult{}, err
	}

	return ReduceResult{
		AchievedZ: n.MeanDegree(),
		Removed:   removeCount,
		Protected: forestSize,
	}, nil
}
