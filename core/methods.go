package core

// IncidentThroats returns the throat ids incident to pore id, in insertion
// order. The slice is a copy; mutating it does not affect the network.
// Returns ErrPoreNotFound for an out-of-range id.
//
// Complexity: O(degree).
func (n *Network) IncidentThroats(id int) ([]int, error) {
	if id < 0 || id >= len(n.pores) {
		return nil, ErrPoreNotFound
	}
	out := make([]int, len(n.adj[id]))
	copy(out, n.adj[id])

	return out, nil
}

// Neighbors returns the pore ids directly connected to pore id.
// Complexity: O(degree).
func (n *Network) Neighbors(id int) ([]int, error) {
	if id < 0 || id >= len(n.pores) {
		return nil, ErrPoreNotFound
	}
	out := make([]int, 0, len(n.adj[id]))
	for _, tid := range n.adj[id] {
		out = append(out, n.otherEnd(tid, id))
	}

	return out, nil
}

// Degree returns the coordination number of pore id (count of incident
// throats). Returns ErrPoreNotFound for an out-of-range id.
// Complexity: O(1).
func (n *Network) Degree(id int) (int, error) {
	if id < 0 || id >= len(n.pores) {
		return 0, ErrPoreNotFound
	}

	return len(n.adj[id]), nil
}

// MeanDegree returns the average coordination number over all pores,
// 2·|throats| / |pores|. Returns 0 for an empty network.
// Complexity: O(1).
func (n *Network) MeanDegree() float64 {
	if len(n.pores) == 0 {
		return 0
	}

	return 2 * float64(len(n.throats)) / float64(len(n.pores))
}

// otherEnd returns the endpoint of throat tid opposite to pore id.
// Callers guarantee tid is incident to id.
func (n *Network) otherEnd(tid, id int) int {
	t := &n.throats[tid]
	if t.PoreA == id {
		return t.PoreB
	}

	return t.PoreA
}

// ConnectedComponents finds all maximal connected pore groups via BFS over
// the adjacency index. Each component lists pore ids in discovery order;
// components appear in order of their lowest pore id. Isolated pores form
// singleton components.
//
// Time:   O(V+E).
// Memory: O(V).
func (n *Network) ConnectedComponents() [][]int {
	seen := make([]bool, len(n.pores))
	var comps [][]int

	for start := range n.pores {
		if seen[start] {
			continue
		}
		// BFS to collect the component containing start.
		queue := []int{start}
		seen[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, tid := range n.adj[u] {
				v := n.otherEnd(tid, u)
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// ReachableFrom returns a per-pore flag marking every pore reachable from
// any of the seed pores through the full throat set. Out-of-range seeds are
// ignored. Used by saturation accounting: volume unreachable from the inlet
// set can never be invaded.
//
// Time:   O(V+E).
// Memory: O(V).
func (n *Network) ReachableFrom(seeds []int) []bool {
	reached := make([]bool, len(n.pores))
	var queue []int
	for _, s := range seeds {
		if s >= 0 && s < len(n.pores) && !reached[s] {
			reached[s] = true
			queue = append(queue, s)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, tid := range n.adj[u] {
			v := n.otherEnd(tid, u)
			if !reached[v] {
				reached[v] = true
				queue = append(queue, v)
			}
		}
	}

	return reached
}
