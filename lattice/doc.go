// Package lattice builds regular 3D pore networks: full cubic lattices and
// template-constrained lattices carved from a boolean occupancy mask.
//
// What:
//
//   - Build constructs an nx×ny×nz cubic lattice with pores at
//     (i·sx, j·sy, k·sz) and throats generated from a neighbor-offset
//     template selected by connectivity class.
//   - BuildFromMask applies the same templates restricted to the true cells
//     of an occupancy mask (one pore per true cell, row-major ids).
//   - Seven connectivity classes: Conn6 (faces), Conn8 (corners),
//     Conn12 (edges), and the unions Conn14, Conn18, Conn20, Conn26.
//
// Why:
//
//   - Cubic lattices are the workhorse topology of pore-network modeling;
//     masks carve arbitrary sample shapes (cylindrical cores, irregular
//     domains) out of the same template machinery.
//
// Guarantees:
//
//   - Each undirected neighbor pair is emitted exactly once (the lower id
//     initiates the throat); offsets landing outside the shape are skipped —
//     no wraparound.
//   - Spacing never changes topology, only coordinates.
//   - BuildFromMask with an all-true mask is isomorphic to Build for the
//     same shape, spacing, and connectivity.
//
// Complexity:
//
//   - Build / BuildFromMask: O(N·d) time and memory, N = cell count,
//     d = template size (6..26).
//
// Errors:
//
//   - ErrBadConnectivity: connectivity not one of the seven classes.
//   - ErrBadShape: a dimension below 1.
//   - ErrBadSpacing: a non-positive spacing component.
//   - ErrEmptyMask / ErrRaggedMask: degenerate or non-cuboid mask.
package lattice
