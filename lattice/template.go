package lattice

import "github.com/katalvlaran/porenet/core"

// Mask is a 3D boolean occupancy array indexed mask[i][j][k]. True cells
// become pores; false cells are holes the template skips over.
type Mask [][][]bool

// FullMask returns an all-true mask of shape (nx, ny, nz), for which
// BuildFromMask is isomorphic to Build. Returns ErrBadShape for a
// dimension below 1.
func FullMask(nx, ny, nz int) (Mask, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, ErrBadShape
	}
	m := make(Mask, nx)
	for i := range m {
		m[i] = make([][]bool, ny)
		for j := range m[i] {
			row := make([]bool, nz)
			for k := range row {
				row[k] = true
			}
			m[i][j] = row
		}
	}

	return m, nil
}

// shape validates that m is a non-empty cuboid and returns its dimensions.
func (m Mask) shape() (nx, ny, nz int, err error) {
	nx = len(m)
	if nx == 0 || len(m[0]) == 0 || len(m[0][0]) == 0 {
		return 0, 0, 0, ErrEmptyMask
	}
	ny, nz = len(m[0]), len(m[0][0])
	for i := 0; i < nx; i++ {
		if len(m[i]) != ny {
			return 0, 0, 0, ErrRaggedMask
		}
		for j := 0; j < ny; j++ {
			if len(m[i][j]) != nz {
				return 0, 0, 0, ErrRaggedMask
			}
		}
	}

	return nx, ny, nz, nil
}

// BuildFromMask constructs a lattice-connectivity Network restricted to the
// true cells of mask. Pore ids are assigned in row-major scan order over the
// occupied cells; pore coordinates follow the same (i·sx, j·sy, k·sz) rule
// as Build. Throats apply the class's neighbor template to pairs of occupied
// cells only; neighbors landing on false cells or out of bounds are skipped.
//
// Equivalence: an all-true mask yields the same pore coordinates and throat
// set as Build for the same shape, spacing, and connectivity.
//
// Returns ErrEmptyMask / ErrRaggedMask for degenerate masks, plus the Build
// validation errors.
//
// Time:   O(nx·ny·nz·d), d = template size.
// Memory: O(V + E).
func BuildFromMask(mask Mask, conn Connectivity, opts ...Option) (*core.Network, error) {
	nx, ny, nz, err := mask.shape()
	if err != nil {
		return nil, err
	}
	offsets, err := offsetsFor(conn)
	if err != nil {
		return nil, err
	}
	opt := DefaultOptions()
	for _, apply := range opts {
		apply(&opt)
	}
	if err = validateSpacing(opt.Spacing); err != nil {
		return nil, err
	}

	// 1. Assign dense pore ids to occupied cells in row-major scan order.
	//    cellID maps the linear cell index to its pore id, -1 for holes.
	cellID := make([]int, nx*ny*nz)
	linear := func(i, j, k int) int { return (i*ny+j)*nz + k }
	count := 0
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				if mask[i][j][k] {
					cellID[linear(i, j, k)] = count
					count++
				} else {
					cellID[linear(i, j, k)] = -1
				}
			}
		}
	}

	geo := deriveGeometry(opt.Spacing)
	net := core.NewNetwork(count, count*len(offsets)/2)

	// 2. Pores for occupied cells.
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				if mask[i][j][k] {
					net.AddPore(geo.pore(i, j, k, opt.Spacing))
				}
			}
		}
	}

	// 3. Throats between occupied neighbor pairs, lower id initiating.
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				u := cellID[linear(i, j, k)]
				if u < 0 {
					continue
				}
				for _, d := range offsets {
					ni, nj, nk := i+d[0], j+d[1], k+d[2]
					if ni < 0 || ni >= nx || nj < 0 || nj >= ny || nk < 0 || nk >= nz {
						continue // outside the shape
					}
					v := cellID[linear(ni, nj, nk)]
					if v < 0 || v <= u {
						continue // hole, or pair already emitted by the lower id
					}
					if _, err = net.AddThroat(u, v, geo.throat(d, opt.Spacing)); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return net, nil
}
