// Package percolation defines modes, schedules, providers, and sentinel
// errors for the invasion engine.
package percolation

import (
	"errors"
	"math"

	"github.com/katalvlaran/porenet/core"
)

// Sentinel errors for percolation configuration and queries.
var (
	// ErrNilNetwork indicates a nil network argument.
	ErrNilNetwork = errors.New("percolation: network must not be nil")

	// ErrBadMode indicates a mode outside {Site, Bond, Mixed}.
	ErrBadMode = errors.New("percolation: unknown percolation mode")

	// ErrEmptyInlets indicates an empty inlet pore set.
	ErrEmptyInlets = errors.New("percolation: inlet set must not be empty")

	// ErrEmptyOutlets indicates an empty outlet pore set.
	ErrEmptyOutlets = errors.New("percolation: outlet set must not be empty")

	// ErrPoreIndex indicates a boundary pore id outside the pore table.
	ErrPoreIndex = errors.New("percolation: boundary pore id out of range")

	// ErrShortSweep indicates a sweep schedule with fewer than two points.
	ErrShortSweep = errors.New("percolation: sweep needs at least two pressure points")

	// ErrMissingPressure indicates an entity without a precomputed entry
	// pressure; the wrapping error names the entity.
	ErrMissingPressure = errors.New("percolation: missing entry pressure")

	// ErrInvalidState indicates an operation illegal in the engine's
	// current state (re-running without Reset, querying before completion).
	ErrInvalidState = errors.New("percolation: operation invalid in current engine state")
)

// Mode selects which entity type's entry pressure gates admission into the
// invaded set.
type Mode int

const (
	// Site percolation: pore entry pressures gate admission; a throat
	// conducts (and invades) once both its endpoint pores are admitted.
	Site Mode = iota
	// Bond percolation: throat entry pressures gate admission; a pore
	// invades with its inlet-connected cluster once its cheapest incident
	// throat is admitted.
	Bond
	// Mixed percolation: a throat is admitted when the largest of its own
	// entry pressure and both endpoint pore pressures is reached.
	Mixed
)

// String returns the conventional lowercase mode name.
func (m Mode) String() string {
	switch m {
	case Site:
		return "site"
	case Bond:
		return "bond"
	case Mixed:
		return "mixed"
	default:
		return "invalid"
	}
}

// PressureProvider supplies entry pressures keyed by entity id, decoupling
// the engine from any particular physical model. The boolean reports
// whether the pressure exists; a false for a relevant entity aborts the run
// with ErrMissingPressure before any sweep work.
type PressureProvider interface {
	// PoreEntryPressure returns the capillary entry pressure of pore id.
	PoreEntryPressure(id int) (float64, bool)
	// ThroatEntryPressure returns the capillary entry pressure of throat id.
	ThroatEntryPressure(id int) (float64, bool)
}

// TablePressures reads entry pressures straight from the network tables,
// treating the NaN "unset" sentinel as missing. This is the default
// provider wired by Configure.
type TablePressures struct {
	Net *core.Network
}

// PoreEntryPressure implements PressureProvider.
func (t TablePressures) PoreEntryPressure(id int) (float64, bool) {
	p, err := t.Net.Pore(id)
	if err != nil || math.IsNaN(p.EntryPressure) {
		return 0, false
	}

	return p.EntryPressure, true
}

// ThroatEntryPressure implements PressureProvider.
func (t TablePressures) ThroatEntryPressure(id int) (float64, bool) {
	th, err := t.Net.Throat(id)
	if err != nil || math.IsNaN(th.EntryPressure) {
		return 0, false
	}

	return th.EntryPressure, true
}

// FuncProvider adapts two plain functions into a PressureProvider, for
// callers computing pressures on the fly (e.g. a Washburn model over
// diameters) without materializing them in the tables.
type FuncProvider struct {
	Pore   func(id int) (float64, bool)
	Throat func(id int) (float64, bool)
}

// PoreEntryPressure implements PressureProvider.
func (f FuncProvider) PoreEntryPressure(id int) (float64, bool) {
	if f.Pore == nil {
		return 0, false
	}

	return f.Pore(id)
}

// ThroatEntryPressure implements PressureProvider.
func (f FuncProvider) ThroatEntryPressure(id int) (float64, bool) {
	if f.Throat == nil {
		return 0, false
	}

	return f.Throat(id)
}

// Schedule describes the pressure sweep: either a step count (Steps) from
// which the engine spans [min, max] of the relevant entry pressures, or an
// explicit pressure sequence (Pressures), deduplicated and sorted ascending
// regardless of input order.
type Schedule struct {
	steps    int
	explicit []float64
}

// Steps requests n equally spaced sweep pressures spanning the relevant
// entry-pressure range. n below 2 is rejected at Run time with ErrShortSweep.
func Steps(n int) Schedule { return Schedule{steps: n} }

// Pressures requests an explicit sweep sequence. The values are copied,
// sorted ascending, and deduplicated at Run time; fewer than two distinct
// values is rejected with ErrShortSweep.
func Pressures(ps ...float64) Schedule {
	cp := make([]float64, len(ps))
	copy(cp, ps)

	return Schedule{explicit: cp}
}

// Point is one (pressure, saturation) sample of the intrusion curve.
type Point struct {
	Pressure   float64
	Saturation float64
}

// Result holds the frozen outcome of one completed sweep. All slices are
// owned by the engine and must be treated as read-only.
type Result struct {
	// Mode echoes the configured percolation mode.
	Mode Mode

	// Pressures is the materialized ascending sweep schedule.
	Pressures []float64

	// PoreInvasion and ThroatInvasion hold per-entity invasion thresholds:
	// the minimal sweep pressure at which the entity joined an
	// inlet-connected cluster, +Inf for entities never invaded.
	PoreInvasion   []float64
	ThroatInvasion []float64

	// PercolatingAt flags, per sweep step, whether some cluster touched
	// inlet and outlet simultaneously.
	PercolatingAt []bool

	// Threshold is the first percolating sweep pressure, +Inf if the sweep
	// never percolated.
	Threshold float64

	// Curve is the intrusion curve: per sweep pressure, the invaded
	// fraction of inlet-reachable volume. Non-decreasing, within [0, 1].
	Curve []Point
}
