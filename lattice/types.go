// Package lattice defines connectivity classes, build options, and sentinel
// errors for the lattice builders.
package lattice

import "errors"

// Sentinel errors for lattice construction.
var (
	// ErrBadConnectivity indicates a connectivity outside {6,8,12,14,18,20,26}.
	ErrBadConnectivity = errors.New("lattice: connectivity must be one of 6, 8, 12, 14, 18, 20, 26")

	// ErrBadShape indicates a lattice dimension below 1.
	ErrBadShape = errors.New("lattice: every shape dimension must be at least 1")

	// ErrBadSpacing indicates a non-positive spacing component.
	ErrBadSpacing = errors.New("lattice: spacing must be positive on every axis")

	// ErrEmptyMask indicates an occupancy mask with a zero dimension.
	ErrEmptyMask = errors.New("lattice: mask must have at least one cell per axis")

	// ErrRaggedMask indicates an occupancy mask that is not a full cuboid.
	ErrRaggedMask = errors.New("lattice: mask rows must all have the same length")
)

// Connectivity selects the neighbor-offset template used to generate
// throats. Values equal the template size so configuration reads naturally
// (Conn26 produces up to 26 neighbors per interior pore).
type Connectivity int

const (
	// Conn6 connects face neighbors only (the six axis-aligned offsets).
	Conn6 Connectivity = 6
	// Conn8 connects corner neighbors only (offsets differing in all three axes).
	Conn8 Connectivity = 8
	// Conn12 connects edge neighbors only (offsets differing in exactly two axes).
	Conn12 Connectivity = 12
	// Conn14 is the union of Conn6 and Conn8.
	Conn14 Connectivity = 14
	// Conn18 is the union of Conn6 and Conn12.
	Conn18 Connectivity = 18
	// Conn20 is the union of Conn8 and Conn12.
	Conn20 Connectivity = 20
	// Conn26 is the full template: faces, corners, and edges.
	Conn26 Connectivity = 26
)

// Options holds tunable build parameters. Use DefaultOptions and the With*
// functional options rather than constructing Options directly.
type Options struct {
	// Spacing is the lattice constant per axis; pore (i,j,k) sits at
	// (i·Spacing[0], j·Spacing[1], k·Spacing[2]).
	Spacing [3]float64
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithSpacing sets a per-axis lattice spacing.
func WithSpacing(sx, sy, sz float64) Option {
	return func(o *Options) { o.Spacing = [3]float64{sx, sy, sz} }
}

// WithUniformSpacing broadcasts a single spacing to all three axes.
func WithUniformSpacing(s float64) Option {
	return func(o *Options) { o.Spacing = [3]float64{s, s, s} }
}

// DefaultOptions returns Options with unit spacing on every axis.
func DefaultOptions() Options {
	return Options{Spacing: [3]float64{1, 1, 1}}
}
