package lattice

// Neighbor-offset templates over the cubic lattice. The 26 possible unit
// offsets split into three disjoint families by how many axes differ:
// faces (one axis), edges (two axes), corners (all three). Connectivity
// classes are unions of whole families.
var (
	// faceOffsets: the six axis-aligned unit offsets.
	faceOffsets = [][3]int{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}

	// cornerOffsets: the eight offsets differing in all three axes.
	cornerOffsets = [][3]int{
		{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
		{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
	}

	// edgeOffsets: the twelve offsets differing in exactly two axes.
	edgeOffsets = [][3]int{
		{1, 1, 0}, {1, -1, 0}, {-1, 1, 0}, {-1, -1, 0},
		{1, 0, 1}, {1, 0, -1}, {-1, 0, 1}, {-1, 0, -1},
		{0, 1, 1}, {0, 1, -1}, {0, -1, 1}, {0, -1, -1},
	}
)

// offsetsFor returns the neighbor template for conn, or ErrBadConnectivity
// for a value outside the enumerated classes. The returned slice length
// always equals int(conn).
//
// Complexity: O(d) to assemble, d = template size.
func offsetsFor(conn Connectivity) ([][3]int, error) {
	switch conn {
	case Conn6:
		return faceOffsets, nil
	case Conn8:
		return cornerOffsets, nil
	case Conn12:
		return edgeOffsets, nil
	case Conn14:
		return concatOffsets(faceOffsets, cornerOffsets), nil
	case Conn18:
		return concatOffsets(faceOffsets, edgeOffsets), nil
	case Conn20:
		return concatOffsets(cornerOffsets, edgeOffsets), nil
	case Conn26:
		return concatOffsets(faceOffsets, cornerOffsets, edgeOffsets), nil
	default:
		return nil, ErrBadConnectivity
	}
}

// concatOffsets joins offset families into a fresh slice so the package-level
// templates are never aliased by callers.
func concatOffsets(families ...[][3]int) [][3]int {
	total := 0
	for _, f := range families {
		total += len(f)
	}
	out := make([][3]int, 0, total)
	for _, f := range families {
		out = append(out, f...)
	}

	return out
}
