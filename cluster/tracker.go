// Package cluster implements the union-find cluster tracker used by the
// percolation sweep.
package cluster

import "errors"

// ErrBadSize indicates a Tracker was requested for a negative entity count.
var ErrBadSize = errors.New("cluster: entity count must be non-negative")

// ErrIndex indicates an entity id outside [0, n).
var ErrIndex = errors.New("cluster: entity id out of range")

// Tracker is a disjoint-set forest over entities 0..n-1 with per-cluster
// cached boundary flags. The zero value is unusable; construct with New.
//
// Tracker is not safe for concurrent use; the percolation sweep is
// strictly sequential and owns its tracker exclusively.
type Tracker struct {
	parent []int
	size   []int
	inlet  []bool // valid at roots only
	outlet []bool // valid at roots only

	// spanning counts roots whose cluster touches both boundaries,
	// maintained incrementally so Percolating is O(1).
	spanning int
}

// New constructs a Tracker over n singleton clusters with no boundary flags
// set. Returns ErrBadSize for negative n.
//
// Complexity: O(n).
func New(n int) (*Tracker, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	t := &Tracker{
		parent: make([]int, n),
		size:   make([]int, n),
		inlet:  make([]bool, n),
		outlet: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		t.parent[i] = i
		t.size[i] = 1
	}

	return t, nil
}

// Len returns the number of tracked entities. Complexity: O(1).
func (t *Tracker) Len() int { return len(t.parent) }

// Find returns the representative (root) of a's cluster, compressing the
// path by halving as it walks. Returns ErrIndex for an out-of-range id.
//
// Complexity: O(α(n)) amortized.
func (t *Tracker) Find(a int) (int, error) {
	if a < 0 || a >= len(t.parent) {
		return 0, ErrIndex
	}
	for t.parent[a] != a {
		// Path halving: point a at its grandparent, then step up.
		t.parent[a] = t.parent[t.parent[a]]
		a = t.parent[a]
	}

	return a, nil
}

// Union merges the clusters of a and b (union by size) and OR-merges their
// boundary flags onto the surviving root. It returns the new root.
// Uniting already-merged entities is a no-op.
//
// Complexity: O(α(n)) amortized.
func (t *Tracker) Union(a, b int) (int, error) {
	ra, err := t.Find(a)
	if err != nil {
		return 0, err
	}
	rb, err := t.Find(b)
	if err != nil {
		return 0, err
	}
	if ra == rb {
		return ra, nil
	}

	// Attach the smaller tree under the larger root.
	if t.size[ra] < t.size[rb] {
		ra, rb = rb, ra
	}

	// The merged cluster stops being counted if both halves already spanned.
	if t.inlet[ra] && t.outlet[ra] {
		t.spanning--
	}
	if t.inlet[rb] && t.outlet[rb] {
		t.spanning--
	}

	t.parent[rb] = ra
	t.size[ra] += t.size[rb]
	t.inlet[ra] = t.inlet[ra] || t.inlet[rb]
	t.outlet[ra] = t.outlet[ra] || t.outlet[rb]

	if t.inlet[ra] && t.outlet[ra] {
		t.spanning++
	}

	return ra, nil
}

// MarkInlet flags a's cluster as touching the inlet boundary.
// Complexity: O(α(n)) amortized.
func (t *Tracker) MarkInlet(a int) error {
	r, err := t.Find(a)
	if err != nil {
		return err
	}
	if t.inlet[r] {
		return nil
	}
	t.inlet[r] = true
	if t.outlet[r] {
		t.spanning++
	}

	return nil
}

// MarkOutlet flags a's cluster as touching the outlet boundary.
// Complexity: O(α(n)) amortized.
func (t *Tracker) MarkOutlet(a int) error {
	r, err := t.Find(a)
	if err != nil {
		return err
	}
	if t.outlet[r] {
		return nil
	}
	t.outlet[r] = true
	if t.inlet[r] {
		t.spanning++
	}

	return nil
}

// TouchesInlet reports whether a's cluster touches the inlet boundary.
// Complexity: O(α(n)) amortized.
func (t *Tracker) TouchesInlet(a int) (bool, error) {
	r, err := t.Find(a)
	if err != nil {
		return false, err
	}

	return t.inlet[r], nil
}

// TouchesOutlet reports whether a's cluster touches the outlet boundary.
// Complexity: O(α(n)) amortized.
func (t *Tracker) TouchesOutlet(a int) (bool, error) {
	r, err := t.Find(a)
	if err != nil {
		return false, err
	}

	return t.outlet[r], nil
}

// Percolating reports whether any cluster touches both boundaries.
// Complexity: O(1).
func (t *Tracker) Percolating() bool { return t.spanning > 0 }

// Size returns the number of entities in a's cluster.
// Complexity: O(α(n)) amortized.
func (t *Tracker) Size(a int) (int, error) {
	r, err := t.Find(a)
	if err != nil {
		return 0, err
	}

	return t.size[r], nil
}
