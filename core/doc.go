// Package core defines the central Network, Pore, and Throat types:
// flat columnar tables for pore-network modeling, plus the adjacency
// index tying them together.
//
// What:
//
//   - Pore: a void site with position, volume, diameter, entry pressure.
//   - Throat: a channel between two pores with geometric and capillary attributes.
//   - Network: pore table + throat table + adjacency (pore → incident throat ids),
//     with mandatory deduplication of undirected pore pairs.
//
// Why:
//
//   - Invasion percolation, coordination trimming, and saturation accounting
//     all operate on the same dense-id tables; free-form attribute maps are
//     deliberately avoided in favor of named fixed fields.
//
// Invariants:
//
//   - Throat endpoints are always valid indices into the pore table.
//   - No throat connects a pore to itself.
//   - At most one throat per unordered pore pair (AddThroat enforces this);
//     trimming may later leave isolated pores or split components — a valid
//     state, not an error.
//
// Complexity:
//
//   - AddPore / AddThroat / Degree / Neighbors: O(1) amortized.
//   - ConnectedComponents / ReachableFrom: O(V+E).
//   - RemoveThroats / RemovePores: O(V+E) rebuild with dense relabeling.
//
// Errors:
//
//   - ErrPoreNotFound: an operation referenced a non-existent pore id.
//   - ErrThroatNotFound: an operation referenced a non-existent throat id.
//   - ErrSelfLoop: a throat tried to connect a pore to itself.
//   - ErrDuplicateThroat: a second throat for an already-connected pore pair.
package core
