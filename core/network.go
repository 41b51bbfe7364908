package core

import "math"

// NewNetwork constructs an empty Network. Optional capacity hints avoid
// re-allocation when the final pore/throat counts are known up front
// (the lattice builders know them exactly).
//
// Complexity: O(poreHint + throatHint).
func NewNetwork(poreHint, throatHint int) *Network {
	if poreHint < 0 {
		poreHint = 0
	}
	if throatHint < 0 {
		throatHint = 0
	}

	return &Network{
		pores:   make([]Pore, 0, poreHint),
		throats: make([]Throat, 0, throatHint),
		adj:     make([][]int, 0, poreHint),
		pairs:   make(map[pairKey]int, throatHint),
	}
}

// AddPore appends p to the pore table and returns its dense id.
// Complexity: O(1) amortized.
func (n *Network) AddPore(p Pore) int {
	id := len(n.pores)
	n.pores = append(n.pores, p)
	n.adj = append(n.adj, nil)

	return id
}

// AddThroat connects pores a and b with throat t (t's endpoint fields are
// overwritten by the canonicalized pair) and returns the new throat id.
//
// Returns ErrPoreNotFound if either endpoint id is out of range,
// ErrSelfLoop if a == b, ErrDuplicateThroat if the pair is already connected.
// Deduplication is mandatory for the builders; callers wanting parallel
// channels must model them as merged conductances upstream.
//
// Complexity: O(1) amortized.
func (n *Network) AddThroat(a, b int, t Throat) (int, error) {
	if a < 0 || a >= len(n.pores) || b < 0 || b >= len(n.pores) {
		return 0, ErrPoreNotFound
	}
	if a == b {
		return 0, ErrSelfLoop
	}
	// Canonicalize the unordered pair: lower id first.
	if a > b {
		a, b = b, a
	}
	key := pairKey{a, b}
	if _, dup := n.pairs[key]; dup {
		return 0, ErrDuplicateThroat
	}

	t.PoreA, t.PoreB = a, b
	id := len(n.throats)
	n.throats = append(n.throats, t)
	n.pairs[key] = id
	n.adj[a] = append(n.adj[a], id)
	n.adj[b] = append(n.adj[b], id)

	return id, nil
}

// PoreCount returns the number of pores. Complexity: O(1).
func (n *Network) PoreCount() int { return len(n.pores) }

// ThroatCount returns the number of throats. Complexity: O(1).
func (n *Network) ThroatCount() int { return len(n.throats) }

// Pore returns a copy of the pore record for id.
// Returns ErrPoreNotFound for an out-of-range id.
func (n *Network) Pore(id int) (Pore, error) {
	if id < 0 || id >= len(n.pores) {
		return Pore{}, ErrPoreNotFound
	}

	return n.pores[id], nil
}

// Throat returns a copy of the throat record for id.
// Returns ErrThroatNotFound for an out-of-range id.
func (n *Network) Throat(id int) (Throat, error) {
	if id < 0 || id >= len(n.throats) {
		return Throat{}, ErrThroatNotFound
	}

	return n.throats[id], nil
}

// Pores returns a read-only snapshot of the pore table (a copy, so external
// serializers cannot mutate network state). Complexity: O(V).
func (n *Network) Pores() []Pore {
	out := make([]Pore, len(n.pores))
	copy(out, n.pores)

	return out
}

// Throats returns a read-only snapshot of the throat table.
// Complexity: O(E).
func (n *Network) Throats() []Throat {
	out := make([]Throat, len(n.throats))
	copy(out, n.throats)

	return out
}

// SetPoreEntryPressure stores pc as the entry pressure of pore id.
// NaN is rejected (NaN is reserved as the "unset" sentinel).
func (n *Network) SetPoreEntryPressure(id int, pc float64) error {
	if id < 0 || id >= len(n.pores) {
		return ErrPoreNotFound
	}
	if math.IsNaN(pc) {
		return ErrBadPressure
	}
	n.pores[id].EntryPressure = pc

	return nil
}

// SetThroatEntryPressure stores pc as the entry pressure of throat id.
// NaN is rejected (NaN is reserved as the "unset" sentinel).
func (n *Network) SetThroatEntryPressure(id int, pc float64) error {
	if id < 0 || id >= len(n.throats) {
		return ErrThroatNotFound
	}
	if math.IsNaN(pc) {
		return ErrBadPressure
	}
	n.throats[id].EntryPressure = pc

	return nil
}

// SetPoreVolume overwrites the volume of pore id.
func (n *Network) SetPoreVolume(id int, v float64) error {
	if id < 0 || id >= len(n.pores) {
		return ErrPoreNotFound
	}
	n.pores[id].Volume = v

	return nil
}

// SetThroatVolume overwrites the volume of throat id.
func (n *Network) SetThroatVolume(id int, v float64) error {
	if id < 0 || id >= len(n.throats) {
		return ErrThroatNotFound
	}
	n.throats[id].Volume = v

	return nil
}

// HasThroat reports whether pores a and b are directly connected, and the
// connecting throat id when they are. Order of a and b does not matter.
// Complexity: O(1).
func (n *Network) HasThroat(a, b int) (int, bool) {
	if a > b {
		a, b = b, a
	}
	id, ok := n.pairs[pairKey{a, b}]

	return id, ok
}
