// Package cluster provides a disjoint-set (union-find) tracker over dense
// integer entity ids, specialized for boundary-touch queries.
//
// What:
//
//   - Tracker merges entities into clusters via Union and answers Find,
//     TouchesInlet, TouchesOutlet, and Percolating in O(α(n)) / O(1).
//   - Each cluster root caches two boolean flags — "touches the inlet set"
//     and "touches the outlet set" — OR-merged on every union, so boundary
//     membership never requires scanning cluster members.
//   - A live count of roots carrying both flags makes Percolating O(1).
//
// Why:
//
//   - Invasion percolation asks, at every sweep pressure, which clusters
//     reach the injection boundary and whether any cluster spans from inlet
//     to outlet. Incremental flag maintenance keeps the whole sweep
//     near-linear.
//
// Complexity:
//
//   - Union/Find: O(α(n)) amortized (union by size + path halving).
//   - TouchesInlet/TouchesOutlet/Percolating: O(α(n)) / O(1).
//   - Memory: O(n).
package cluster
