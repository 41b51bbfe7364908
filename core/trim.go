package core

// Trimming is the one sanctioned mutation of built tables: it deletes
// entities and relabels the survivors densely. Both operations accept
// duplicate ids in the input (deduplicated internally, documented contract)
// and report the old→new id mapping so callers can remap external data
// keyed by entity id.

// RemoveThroats deletes the given throats and relabels the remaining
// throat table densely, preserving relative order. The returned slice maps
// old throat ids to new ones, with -1 for deleted throats.
//
// Duplicate ids are deduplicated; any out-of-range id fails with
// ErrThroatNotFound before anything is mutated. Removing throats may leave
// isolated pores or split components — that is a valid resulting state,
// reported by higher layers (see coord.Trim), not an error here.
//
// Time:   O(V+E).
// Memory: O(V+E) for the rebuilt tables.
func (n *Network) RemoveThroats(ids []int) ([]int, error) {
	drop := make([]bool, len(n.throats))
	for _, id := range ids {
		if id < 0 || id >= len(n.throats) {
			return nil, ErrThroatNotFound
		}
		drop[id] = true
	}

	relabel := make([]int, len(n.throats))
	kept := make([]Throat, 0, len(n.throats))
	for old, t := range n.throats {
		if drop[old] {
			relabel[old] = -1
			continue
		}
		relabel[old] = len(kept)
		kept = append(kept, t)
	}

	n.throats = kept
	n.rebuildIndexes()

	return relabel, nil
}

// RemovePores deletes the given pores, drops every throat incident to a
// deleted pore, and relabels both tables densely. The returned slice maps
// old pore ids to new ones, with -1 for deleted pores.
//
// Duplicate ids are deduplicated; any out-of-range id fails with
// ErrPoreNotFound before anything is mutated.
//
// Time:   O(V+E).
// Memory: O(V+E) for the rebuilt tables.
func (n *Network) RemovePores(ids []int) ([]int, error) {
	drop := make([]bool, len(n.pores))
	for _, id := range ids {
		if id < 0 || id >= len(n.pores) {
			return nil, ErrPoreNotFound
		}
		drop[id] = true
	}

	relabel := make([]int, len(n.pores))
	keptPores := make([]Pore, 0, len(n.pores))
	for old, p := range n.pores {
		if drop[old] {
			relabel[old] = -1
			continue
		}
		relabel[old] = len(keptPores)
		keptPores = append(keptPores, p)
	}

	keptThroats := make([]Throat, 0, len(n.throats))
	for _, t := range n.throats {
		a, b := relabel[t.PoreA], relabel[t.PoreB]
		if a < 0 || b < 0 {
			continue // incident to a deleted pore
		}
		t.PoreA, t.PoreB = a, b
		keptThroats = append(keptThroats, t)
	}

	n.pores = keptPores
	n.throats = keptThroats
	n.rebuildIndexes()

	return relabel, nil
}

// rebuildIndexes reconstructs the adjacency and pair indexes from the
// current throat table. Complexity: O(V+E).
func (n *Network) rebuildIndexes() {
	n.adj = make([][]int, len(n.pores))
	n.pairs = make(map[pairKey]int, len(n.throats))
	for id, t := range n.throats {
		n.pairs[pairKey{t.PoreA, t.PoreB}] = id
		n.adj[t.PoreA] = append(n.adj[t.PoreA], id)
		n.adj[t.PoreB] = append(n.adj[t.PoreB], id)
	}
}
