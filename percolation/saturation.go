// Package percolation - saturation extraction from frozen sweep results.
package percolation

import (
	"math"
	"sort"

	"github.com/katalvlaran/porenet/core"
)

// intrusionCurve derives the invaded-volume-fraction curve from per-entity
// invasion thresholds. The denominator is the accessible volume: pores and
// throats reachable from the inlet set through the full graph, since
// unreachable regions can never be invaded at any pressure. Saturation is
// non-decreasing by construction (thresholds are sweep pressures and
// invasion never reverses) and confined to [0, 1].
//
// Time:   O(V + E + (V+E)·log S), S sweep steps.
// Memory: O(V + S).
func intrusionCurve(net *core.Network, inlets []int, res *Result) []Point {
	reachable := net.ReachableFrom(inlets)

	// Accessible volume and per-step invaded-volume increments.
	var accessible float64
	delta := make([]float64, len(res.Pressures))

	for id, thr := range res.PoreInvasion {
		p, _ := net.Pore(id)
		if !reachable[id] {
			continue
		}
		accessible += p.Volume
		if !math.IsInf(thr, 1) {
			delta[stepIndex(res.Pressures, thr)] += p.Volume
		}
	}
	for tid, thr := range res.ThroatInvasion {
		th, _ := net.Throat(tid)
		if !reachable[th.PoreA] { // endpoints share reachability
			continue
		}
		accessible += th.Volume
		if !math.IsInf(thr, 1) {
			delta[stepIndex(res.Pressures, thr)] += th.Volume
		}
	}

	curve := make([]Point, len(res.Pressures))
	var invaded float64
	for si, p := range res.Pressures {
		invaded += delta[si]
		sat := 0.0
		if accessible > 0 {
			sat = invaded / accessible
		}
		// Clamp against float round-off at full saturation.
		if sat > 1 {
			sat = 1
		}
		curve[si] = Point{Pressure: p, Saturation: sat}
	}

	return curve
}

// stepIndex locates an invasion threshold in the ascending sweep pressures.
// Thresholds are always exact sweep values, so the search always hits.
func stepIndex(pressures []float64, thr float64) int {
	i := sort.SearchFloat64s(pressures, thr)
	if i == len(pressures) {
		i--
	}

	return i
}
