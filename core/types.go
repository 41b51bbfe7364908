// Package core defines types and sentinel errors for pore-network storage.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core network operations.
var (
	// ErrPoreNotFound indicates an operation referenced a non-existent pore id.
	ErrPoreNotFound = errors.New("core: pore not found")

	// ErrThroatNotFound indicates an operation referenced a non-existent throat id.
	ErrThroatNotFound = errors.New("core: throat not found")

	// ErrSelfLoop indicates a throat was attempted from a pore to itself.
	ErrSelfLoop = errors.New("core: throat endpoints must differ")

	// ErrDuplicateThroat indicates a second throat for an already-connected pore pair.
	ErrDuplicateThroat = errors.New("core: duplicate throat for pore pair")

	// ErrBadPressure indicates a NaN entry pressure was passed to a setter.
	ErrBadPressure = errors.New("core: entry pressure must not be NaN")
)

// Pore is a void site in the network. Ids are dense and 0-based, assigned
// by AddPore in insertion order; they only change under RemovePores, which
// relabels the table densely.
//
// EntryPressure is NaN until supplied by an external physics model
// (see NewPore); percolation treats NaN as "missing property".
type Pore struct {
	// X, Y, Z are the spatial coordinates of the pore center.
	X, Y, Z float64

	// Volume is the void volume attributed to this pore.
	Volume float64

	// Diameter is the characteristic pore body diameter.
	Diameter float64

	// EntryPressure is the capillary entry pressure; NaN means "not yet set".
	EntryPressure float64
}

// NewPore returns a Pore at (x, y, z) with EntryPressure marked unset (NaN).
// Volume and Diameter start at zero; use the field directly or the builders'
// spacing-derived defaults.
func NewPore(x, y, z float64) Pore {
	return Pore{X: x, Y: y, Z: z, EntryPressure: math.NaN()}
}

// Throat is a channel connecting two distinct pores. The endpoint pair is
// unordered; AddThroat canonicalizes it so that PoreA < PoreB.
//
// EntryPressure follows the same NaN-until-set convention as Pore.
type Throat struct {
	// PoreA and PoreB are the endpoint pore ids, canonicalized PoreA < PoreB.
	PoreA, PoreB int

	// Length is the channel length between the pore centers.
	Length float64

	// Diameter is the constriction diameter controlling capillary entry.
	Diameter float64

	// Volume is the void volume attributed to this throat.
	Volume float64

	// EntryPressure is the capillary entry pressure; NaN means "not yet set".
	EntryPressure float64
}

// NewThroat returns a Throat with the given geometry and EntryPressure
// marked unset (NaN). Endpoints are assigned by AddThroat.
func NewThroat(length, diameter, volume float64) Throat {
	return Throat{Length: length, Diameter: diameter, Volume: volume, EntryPressure: math.NaN()}
}

// pairKey identifies an unordered pore pair with a < b.
type pairKey struct{ a, b int }

// Network is the pore/throat graph: columnar entity tables plus an adjacency
// index mapping each pore to its incident throat ids. A Network may be
// disconnected; operations that require reachability say so explicitly.
//
// Network is not safe for concurrent mutation; build it, then share it
// read-only across percolation runs.
type Network struct {
	pores   []Pore
	throats []Throat
	adj     [][]int         // pore id → incident throat ids
	pairs   map[pairKey]int // canonical pair → throat id, for deduplication
}
