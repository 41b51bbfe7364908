// Package coord defines result types and sentinel errors for coordination
// reduction.
package coord

import "errors"

// Sentinel errors for coordination operations.
var (
	// ErrNilNetwork indicates a nil network argument.
	ErrNilNetwork = errors.New("coord: network must not be nil")

	// ErrEmptyNetwork indicates the network has no pores.
	ErrEmptyNetwork = errors.New("coord: network has no pores")

	// ErrBadTargetDegree indicates a non-positive target mean degree.
	ErrBadTargetDegree = errors.New("coord: target mean degree must be positive")

	// ErrBadSampleCount indicates a negative sample size.
	ErrBadSampleCount = errors.New("coord: sample count must be non-negative")
)

// TrimReport describes the structural outcome of an arbitrary trim. It is
// the non-fatal counterpart of an error: trims that isolate pores or split
// components succeed, and the report carries the diagnostics a caller
// needs to decide whether that is acceptable.
type TrimReport struct {
	// Removed lists the throat ids actually deleted (input order,
	// duplicates collapsed).
	Removed []int

	// IsolatedPores lists pores left with zero incident throats.
	IsolatedPores []int

	// ComponentsBefore and ComponentsAfter count connected components
	// around the trim; ComponentsAfter > ComponentsBefore means the trim
	// split the graph.
	ComponentsBefore int
	ComponentsAfter  int
}

// Split reports whether the trim broke a previously connected component.
func (r TrimReport) Split() bool { return r.ComponentsAfter > r.ComponentsBefore }

// ReduceResult describes the outcome of a target-coordination trim.
type ReduceResult struct {
	// AchievedZ is the mean degree after reduction. It exceeds the
	// requested target when the spanning-forest floor prevented further
	// removal.
	AchievedZ float64

	// Removed counts deleted throats; Protected counts spanning-forest
	// edges that were exempt from removal.
	Removed   int
	Protected int
}
