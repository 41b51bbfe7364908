// Package coord reduces the coordination number of a pore network by
// removing throats, with or without a connectivity guarantee.
//
// What:
//
//   - Trim deletes an explicit throat set and reports the structural
//     fallout (isolated pores, component splits) instead of hiding it.
//   - SampleThroats draws a reproducible random throat sample for Trim.
//   - ReduceCoordination removes throats until the mean degree hits a
//     target z, never touching a spanning forest of the input graph, so no
//     previously connected component ever splits.
//
// Why:
//
//   - Real porous media rarely show the full lattice coordination; trimming
//     a regular lattice toward a measured mean degree is the standard way
//     to match sample statistics while keeping the network percolatable.
//
// Guarantees:
//
//   - ReduceCoordination never increases the number of connected components:
//     one spanning tree per component is computed first (Kruskal-style DSU
//     over a uniformly shuffled edge order — weights are interchangeable, so
//     the shuffle decides which interchangeable edges survive) and those
//     edges are protected from removal.
//   - If the target z is below the spanning-forest floor (~2 for a single
//     component), the full forest is kept and the achieved, higher z is
//     reported rather than silently under-delivering.
//   - All randomness flows from the caller's seed; identical inputs and
//     seed give identical trims.
//
// Complexity:
//
//   - ReduceCoordination: O(E·α(V) + V + E) time, O(V + E) memory.
//   - Trim: O(V + E).
//
// Errors:
//
//   - ErrNilNetwork: nil network argument.
//   - ErrEmptyNetwork: no pores to reduce over.
//   - ErrBadTargetDegree: target z is not positive.
package coord
