// Package lattice implements the cubic lattice builder.
package lattice

import (
	"math"

	"github.com/katalvlaran/porenet/core"
)

// Spacing-derived default geometry. Builders fill every pore and throat
// with these so downstream volume accounting works out of the box; callers
// overwrite per entity via the core setters when a real geometry model runs.
const (
	// poreDiameterFraction scales the smallest spacing into a pore body diameter.
	poreDiameterFraction = 0.5
	// throatDiameterFraction scales the pore diameter into a throat constriction.
	throatDiameterFraction = 0.5
)

// Build constructs an nx×ny×nz cubic lattice Network with the given
// connectivity class. Pore ids run in row-major order (i outermost, k
// innermost); pore (i,j,k) sits at (i·sx, j·sy, k·sz). Throats come from
// the class's neighbor template: every offset is tried for every pore,
// out-of-shape neighbors are skipped (no wraparound), and each undirected
// pair is emitted exactly once with the lower id initiating.
//
// Returns ErrBadShape if any dimension is below 1, ErrBadConnectivity for
// an unknown class, ErrBadSpacing for a non-positive spacing component.
//
// Time:   O(nx·ny·nz·d), d = template size.
// Memory: O(V + E).
func Build(nx, ny, nz int, conn Connectivity, opts ...Option) (*core.Network, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, ErrBadShape
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

	geo := deriveGeometry(opt.Spacing)
	net := core.NewNetwork(nx*ny*nz, nx*ny*nz*len(offsets)/2)

	// 1. Pores in row-major scan order.
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				net.AddPore(geo.pore(i, j, k, opt.Spacing))
			}
		}
	}

	// 2. Throats from the neighbor template, lower id initiating.
	id := func(i, j, k int) int { return (i*ny+j)*nz + k }
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				u := id(i, j, k)
				for _, d := range offsets {
					ni, nj, nk := i+d[0], j+d[1], k+d[2]
					if ni < 0 || ni >= nx || nj < 0 || nj >= ny || nk < 0 || nk >= nz {
						continue // outside the shape
					}
					v := id(ni, nj, nk)
					if v <= u {
						continue // the lower endpoint already emitted this pair
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

// validateSpacing rejects non-positive (or NaN) spacing components.
func validateSpacing(s [3]float64) error {
	for _, v := range s {
		if !(v > 0) {
			return ErrBadSpacing
		}
	}

	return nil
}

// geometry carries the spacing-derived default entity dimensions.
type geometry struct {
	poreDiameter float64
	poreVolume   float64
}

// deriveGeometry computes default pore geometry from the smallest spacing:
// a sphere of diameter poreDiameterFraction·min(spacing).
func deriveGeometry(s [3]float64) geometry {
	minS := math.Min(s[0], math.Min(s[1], s[2]))
	d := poreDiameterFraction * minS

	return geometry{
		poreDiameter: d,
		poreVolume:   math.Pi / 6 * d * d * d,
	}
}

// pore builds the default pore record for cell (i,j,k).
func (g geometry) pore(i, j, k int, s [3]float64) core.Pore {
	p := core.NewPore(float64(i)*s[0], float64(j)*s[1], float64(k)*s[2])
	p.Diameter = g.poreDiameter
	p.Volume = g.poreVolume

	return p
}

// throat builds the default throat record for a neighbor offset d: a
// cylinder spanning the center-to-center distance along d.
func (g geometry) throat(d [3]int, s [3]float64) core.Throat {
	dx := float64(d[0]) * s[0]
	dy := float64(d[1]) * s[1]
	dz := float64(d[2]) * s[2]
	length := math.Sqrt(dx*dx + dy*dy + dz*dz)
	dia := throatDiameterFraction * g.poreDiameter

	return core.NewThroat(length, dia, math.Pi/4*dia*dia*length)
}
