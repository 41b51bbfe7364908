// Package percolation drives quasi-static invasion percolation over a pore
// network: a monotonic capillary-pressure sweep that grows an invaded set
// from an injection boundary and detects breakthrough to an exit boundary.
//
// What:
//
//   - Engine is a small state machine: Unconfigured → Configured →
//     Running → Completed. Configure sets the percolation mode, inlet and
//     outlet pore sets, and the entry-pressure provider; Run executes one
//     ascending pressure sweep and freezes the results.
//   - Three modes gate admission: Bond (throat entry pressures), Site (pore
//     entry pressures; a throat conducts once both endpoints are admitted),
//     Mixed (a throat is admitted when the largest of its own and both
//     endpoint pressures is reached).
//   - Per sweep pressure p, admitted entities are merged into clusters
//     (cluster.Tracker); every cluster touching the inlet set invades, and
//     each newly invaded entity records p as its invasion threshold exactly
//     once — invasion is irreversible.
//   - The percolation threshold is the first sweep pressure at which some
//     cluster touches inlet and outlet simultaneously; +Inf when the sweep
//     never percolates.
//   - The intrusion curve reports, per sweep pressure, the invaded fraction
//     of the volume reachable from the inlet set (unreachable regions can
//     never be invaded and are excluded from the denominator).
//
// Why:
//
//   - Mercury intrusion and drainage experiments are threshold sweeps: each
//     pressure step admits every entity whose capillary entry pressure has
//     been exceeded, but only inlet-connected clusters actually fill.
//
// Guarantees:
//
//   - Configuration errors (empty boundary set, bad mode, short sweep,
//     missing entry pressure) surface before any sweep work; a failed Run
//     leaves no partial results behind.
//   - Invasion thresholds are non-decreasing along the sweep; the intrusion
//     curve is non-decreasing and confined to [0, 1].
//   - Results are frozen at completion; Run is not re-entrant — a second
//     Run fails with ErrInvalidState until an explicit Reset.
//
// Complexity:
//
//   - Run: O(E log E + (V+E)·α(V) + S·(V+E)) worst case for S sweep steps;
//     entities are admitted through sorted cursors, so each union happens
//     exactly once across the whole sweep.
//
// Errors:
//
//   - ErrNilNetwork, ErrBadMode, ErrEmptyInlets, ErrEmptyOutlets,
//     ErrPoreIndex: configuration rejection.
//   - ErrShortSweep: fewer than two sweep points, or nothing to span.
//   - ErrMissingPressure: an entity lacks its entry pressure (wrapped with
//     the entity id); raised before any result state mutates.
//   - ErrInvalidState: Run on a completed engine, or querying results
//     before completion.
package percolation
