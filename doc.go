// Package porenet is an in-memory toolkit for pore-network modeling:
// build lattice pore/throat graphs, trim them toward realistic
// coordination numbers, and run quasi-static invasion percolation.
//
// What is porenet?
//
//	A deterministic, dependency-light library that brings together:
//		• Entity tables: dense-id pore and throat storage with adjacency
//		• Lattice builders: cubic lattices in seven connectivity classes,
//		  plus template-constrained builds over boolean occupancy masks
//		• Coordination reduction: arbitrary trims with structural reports,
//		  and target-z trims guarded by a spanning forest
//		• Cluster tracking: union-find with O(1) boundary-touch queries
//		• Invasion percolation: site/bond/mixed threshold sweeps with
//		  breakthrough detection and intrusion (saturation) curves
//
// Why choose porenet?
//
//   - Deterministic by construction – every random choice flows from a
//     caller-supplied seed; identical inputs give identical networks
//   - Honest diagnostics – trims that split the graph report it, sweeps
//     that cannot percolate say so; nothing is silently swallowed
//   - Pure Go – no cgo, no services, no global state
//
// The packages:
//
//	core/        — Network, Pore, Throat tables and adjacency
//	lattice/     — cubic and mask-constrained lattice builders
//	coord/       — coordination-number reduction
//	cluster/     — union-find with cached boundary flags
//	percolation/ — the invasion engine and saturation extraction
//
// Quick sketch:
//
//	net, _ := lattice.Build(10, 10, 10, lattice.Conn26)
//	coord.ReduceCoordination(net, 4.5, seed)
//	// ... assign entry pressures (external physics) ...
//	eng, _ := percolation.NewEngine(net)
//	eng.Configure(percolation.Bond, inlets, outlets)
//	res, _ := eng.Run(percolation.Steps(100))
//	// res.Threshold, res.Curve
//
// Entry-pressure physics, file export, and visualization live outside the
// library: the engine consumes pressures through a PressureProvider, and
// the tables expose read-only iteration for any serializer to consume.
package porenet
