// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seed

import (
	"fmt"
	"math"

	"github.com/cpmech/bmcmesh/collab"
	"github.com/cpmech/bmcmesh/mesh"
	"github.com/cpmech/gosl/rnd"
)

// Seeder generates the initial pseudo-particle population. Grounded on
// bmc_init.h's fmc_init_importance_sampling{,_mesh} and
// buildImportantSamplingHistogram: the mode flags there
// (importanceSamplingProbability/density/FromInputParticles) become the
// Mode tagged variant here, and r2() (the original's uniform RNG) is
// replaced by gosl/rnd: only the resulting distribution, not a
// byte-identical stream, needs to match.
type Seeder struct {
	NTotal     int     // particle budget split across cells by the histogram modes; Uniform mode ignores it
	Mode       Mode
	UseHermite bool
	NPerVertex int     // minimum particles per occupied vertex/cell
	Seed       int64
	HermiteMom []float64 // Hermite momentum-offset abscissae, used when UseHermite

	ProbabilityField ProbabilityField // UserProbability mode
	BField           collab.BField    // PlasmaDensity mode
	Plasma           collab.Plasma    // PlasmaDensity mode
	Wall             collab.Wall2D    // all modes, masks cells outside the wall
	InputParticles   []Particle       // FromInputParticles mode
}

// Seed generates the pseudo-particle population for mesh m at initial
// time t, for a species of the given mass and charge. It returns the
// particles and a companion slice mapping each particle to the mesh
// vertex index it seeds.
func (s *Seeder) Seed(m *mesh.Mesh, t, mass, charge float64) (particles []Particle, meshIndex []int, err error) {
	rnd.Init(int(s.Seed))

	if s.Mode == Uniform {
		return s.seedUniform(m, t, mass, charge)
	}

	hist, err := BuildHistogram(m, s.Mode, s.Wall, s.BField, s.Plasma, s.ProbabilityField, s.InputParticles)
	if err != nil {
		return nil, nil, err
	}
	counts, err := allocate(hist.Values, s.NTotal, s.NPerVertex)
	if err != nil {
		return nil, nil, err
	}

	nextID := 0
	g := hist.grid
	for cm2 := 0; cm2 < g.nMom2; cm2++ {
		for cm1 := 0; cm1 < g.nMom1; cm1++ {
			for cphi := 0; cphi < g.nCellsPhi; cphi++ {
				for cz := 0; cz < g.nCellsZ; cz++ {
					for cr := 0; cr < g.nCellsR; cr++ {
						idx := g.index(cr, cz, cphi, cm1, cm2)
						n := counts[idx]
						if n == 0 {
							continue
						}
						cellParticles := s.placeInCell(m, g, cr, cz, cphi, cm1, cm2, n, t, mass, charge, &nextID)
						vIdx := m.Index(cr, cz, cphi, cm1, cm2)
						for i := range cellParticles {
							cellParticles[i].MeshIndex = vIdx
							meshIndex = append(meshIndex, vIdx)
						}
						particles = append(particles, cellParticles...)
					}
				}
			}
		}
	}
	return particles, meshIndex, nil
}

// seedUniform places NPerVertex particles at every mesh vertex inside
// the wall (or every vertex, if no wall collaborator was supplied).
func (s *Seeder) seedUniform(m *mesh.Mesh, t, mass, charge float64) (particles []Particle, meshIndex []int, err error) {
	nextID := 0
	for idx := 0; idx < m.Size; idx++ {
		r, phi, z, mom1, mom2, ierr := m.IndexToPos(idx)
		if ierr != nil {
			return nil, nil, ierr
		}
		if s.Wall != nil {
			inside, werr := s.Wall.Contains(r, z)
			if werr != nil {
				return nil, nil, fmt.Errorf("seed: wall query failed: %w", werr)
			}
			if !inside {
				continue
			}
		}
		n := s.NPerVertex
		if n <= 0 {
			n = 1
		}
		for k := 0; k < n; k++ {
			mom1k, mom2k := mom1, mom2
			if s.UseHermite && len(s.HermiteMom) > 0 {
				mom1k += s.HermiteMom[k%len(s.HermiteMom)]
			}
			particles = append(particles, Particle{
				ID: nextID, R: r, Phi: phi, Z: z, Mom1: mom1k, Mom2: mom2k,
				Mass: mass, Charge: charge, T: t, MeshIndex: idx,
			})
			meshIndex = append(meshIndex, idx)
			nextID++
		}
	}
	return particles, meshIndex, nil
}

// placeInCell places n particles inside cell (cr,cz,cphi,cm1,cm2): at
// the cell's vertices offset by Hermite momentum abscissae when
// UseHermite is set, otherwise at uniform-random points in the cell.
func (s *Seeder) placeInCell(m *mesh.Mesh, g *cellGrid, cr, cz, cphi, cm1, cm2, n int, t, mass, charge float64, nextID *int) []Particle {
	out := make([]Particle, 0, n)
	rLo, rHi, zLo, zHi, phiLo, phiHi, m1Lo, m1Hi, m2Lo, m2Hi := g.bounds(cr, cz, cphi, cm1, cm2)

	if s.UseHermite {
		// the cell's 8 spatial (R,z,phi) corners; momentum stays at the
		// cell's own centroid except for the Hermite offset added below.
		_, _, _, mom1, mom2 := g.centroid(cr, cz, cphi, cm1, cm2)
		vertices := [8][3]float64{
			{rLo, zLo, phiLo}, {rHi, zLo, phiLo}, {rLo, zHi, phiLo}, {rHi, zHi, phiLo},
			{rLo, zLo, phiHi}, {rHi, zLo, phiHi}, {rLo, zHi, phiHi}, {rHi, zHi, phiHi},
		}
		knots := s.HermiteMom
		if len(knots) == 0 {
			knots = []float64{0}
		}
		for i := 0; i < n; i++ {
			v := vertices[i%len(vertices)]
			k := i % len(knots)
			out = append(out, Particle{
				ID: *nextID, R: v[0], Phi: wrapPhi(v[2], m.Phi), Z: v[1], Mom1: mom1 + knots[k], Mom2: mom2,
				Mass: mass, Charge: charge, T: t, MeshIndex: -1,
			})
			*nextID++
		}
		return out
	}

	for i := 0; i < n; i++ {
		out = append(out, Particle{
			ID:   *nextID,
			R:    rnd.Float64(rLo, rHi),
			Phi:  wrapPhi(rnd.Float64(phiLo, phiHi), m.Phi),
			Z:    rnd.Float64(zLo, zHi),
			Mom1: rnd.Float64(m1Lo, m1Hi),
			Mom2: rnd.Float64(m2Lo, m2Hi),
			Mass: mass, Charge: charge, T: t, MeshIndex: -1,
		})
		*nextID++
	}
	return out
}

// wrapPhi folds a phi value back into the mesh's periodic interval.
func wrapPhi(phi float64, axis []float64) float64 {
	if len(axis) == 1 {
		return axis[0]
	}
	period := (axis[len(axis)-1] - axis[0]) + (axis[1] - axis[0])
	for phi >= axis[0]+period {
		phi -= period
	}
	for phi < axis[0] {
		phi += period
	}
	return phi
}

// allocate normalizes h to probabilities and rounds n_total*p_c to an
// integer particle count per cell, clamping any non-zero cell up to at
// least nPerVertex particles.
func allocate(h []float64, nTotal, nPerVertex int) ([]int, error) {
	var sum float64
	for _, v := range h {
		sum += v
	}
	counts := make([]int, len(h))
	if sum <= 0 {
		return counts, nil
	}
	for i, v := range h {
		if v <= 0 {
			continue
		}
		p := v / sum
		n := int(math.Round(float64(nTotal) * p))
		if n < nPerVertex {
			n = nPerVertex
		}
		counts[i] = n
	}
	return counts, nil
}
