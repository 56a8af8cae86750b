package seed

import (
	"fmt"

	"github.com/cpmech/bmcmesh/collab"
	"github.com/cpmech/bmcmesh/mesh"
	"github.com/cpmech/gosl/fun"
)

// Mode selects how the seeder biases particle placement. It is a tagged
// variant, never subtype polymorphism (the seeder's mode is plain data,
// not an interface implementation per caller).
type Mode int

const (
	Uniform Mode = iota
	UserProbability
	PlasmaDensity
	FromInputParticles
)

func (m Mode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case UserProbability:
		return "user-probability"
	case PlasmaDensity:
		return "plasma-density"
	case FromInputParticles:
		return "from-input-particles"
	default:
		return "unknown"
	}
}

// ProbabilityField is the user-supplied scalar field sampled at a cell
// centroid in UserProbability mode: the same fun.Func shape used for
// boundary-condition functions elsewhere (SetEleConds's f fun.Func,
// called as f.F(t, x)), with x the 5D phase-space centroid
// (r,phi,z,mom1,mom2).
type ProbabilityField = fun.Func

// cellGrid describes the mesh partitioned into cells (not vertices) for
// importance-weighting purposes: n_a-1 cells along each non-periodic
// axis, n_phi cells along the periodic phi axis.
type cellGrid struct {
	m                                          *mesh.Mesh
	nCellsR, nCellsPhi, nCellsZ, nMom1, nMom2  int
	nCells                                     int
}

func newCellGrid(m *mesh.Mesh) *cellGrid {
	g := &cellGrid{
		m:         m,
		nCellsR:   m.NR - 1,
		nCellsPhi: m.NPhi,
		nCellsZ:   m.NZ - 1,
		nMom1:     m.NMom1 - 1,
		nMom2:     m.NMom2 - 1,
	}
	g.nCells = g.nCellsR * g.nCellsPhi * g.nCellsZ * g.nMom1 * g.nMom2
	return g
}

// index returns the linear cell index for (cr,cz,cphi,cm1,cm2), ordered
// the same way as mesh.Mesh.Index (R fastest, mom2 slowest).
func (g *cellGrid) index(cr, cz, cphi, cm1, cm2 int) int {
	return cm2*(g.nCellsR*g.nCellsZ*g.nCellsPhi*g.nMom1) +
		cm1*(g.nCellsR*g.nCellsZ*g.nCellsPhi) +
		cphi*(g.nCellsR*g.nCellsZ) +
		cz*g.nCellsR +
		cr
}

// bounds returns the [lo,hi) abscissa bounds of cell index c along each axis.
func (g *cellGrid) bounds(cr, cz, cphi, cm1, cm2 int) (rLo, rHi, zLo, zHi, phiLo, phiHi, m1Lo, m1Hi, m2Lo, m2Hi float64) {
	m := g.m
	rLo, rHi = m.R[cr], m.R[cr+1]
	zLo, zHi = m.Z[cz], m.Z[cz+1]
	m1Lo, m1Hi = m.Mom1[cm1], m.Mom1[cm1+1]
	m2Lo, m2Hi = m.Mom2[cm2], m.Mom2[cm2+1]
	phiLo = m.Phi[cphi]
	switch {
	case m.NPhi == 1:
		// degenerate phi: a single cell of nominal width 1 starting at phi[0].
		phiHi = phiLo + 1.0
	case cphi == m.NPhi-1:
		// wrap: the last phi cell spans [phi[last], phi[0]+period)
		period := (m.Phi[m.NPhi-1] - m.Phi[0]) + (m.Phi[1] - m.Phi[0])
		phiHi = m.Phi[0] + period
	default:
		phiHi = m.Phi[cphi+1]
	}
	return
}

func midpoint(lo, hi float64) float64 { return 0.5 * (lo + hi) }

// centroid returns the 5D centroid of cell (cr,cz,cphi,cm1,cm2).
func (g *cellGrid) centroid(cr, cz, cphi, cm1, cm2 int) (r, phi, z, mom1, mom2 float64) {
	rLo, rHi, zLo, zHi, phiLo, phiHi, m1Lo, m1Hi, m2Lo, m2Hi := g.bounds(cr, cz, cphi, cm1, cm2)
	return midpoint(rLo, rHi), midpoint(phiLo, phiHi), midpoint(zLo, zHi), midpoint(m1Lo, m1Hi), midpoint(m2Lo, m2Hi)
}

// Histogram is the importance-weighting histogram h[0..n_cells), one
// entry per mesh cell, ordered via cellGrid's linearization.
type Histogram struct {
	grid   *cellGrid
	Values []float64
}

// NCells returns the number of cells the histogram covers.
func (h *Histogram) NCells() int { return h.grid.nCells }

// BuildHistogram computes h_c per the selected mode. Cells whose
// centroid lies outside the wall contour always get h_c=0, regardless
// of mode.
func BuildHistogram(m *mesh.Mesh, mode Mode, wall collab.Wall2D, bfield collab.BField, plasma collab.Plasma,
	probField ProbabilityField, inputParticles []Particle) (*Histogram, error) {

	g := newCellGrid(m)
	h := &Histogram{grid: g, Values: make([]float64, g.nCells)}

	switch mode {
	case Uniform:
		for i := range h.Values {
			h.Values[i] = 1
		}
	case UserProbability:
		if probField == nil {
			return nil, fmt.Errorf("seed: UserProbability mode requires a ProbabilityField")
		}
		for cm2 := 0; cm2 < g.nMom2; cm2++ {
			for cm1 := 0; cm1 < g.nMom1; cm1++ {
				for cphi := 0; cphi < g.nCellsPhi; cphi++ {
					for cz := 0; cz < g.nCellsZ; cz++ {
						for cr := 0; cr < g.nCellsR; cr++ {
							r, phi, z, mom1, mom2 := g.centroid(cr, cz, cphi, cm1, cm2)
							idx := g.index(cr, cz, cphi, cm1, cm2)
							h.Values[idx] = probField.F(0, []float64{r, phi, z, mom1, mom2})
						}
					}
				}
			}
		}
	case PlasmaDensity:
		if bfield == nil || plasma == nil {
			return nil, fmt.Errorf("seed: PlasmaDensity mode requires a BField and a Plasma")
		}
		for cm2 := 0; cm2 < g.nMom2; cm2++ {
			for cm1 := 0; cm1 < g.nMom1; cm1++ {
				for cphi := 0; cphi < g.nCellsPhi; cphi++ {
					for cz := 0; cz < g.nCellsZ; cz++ {
						for cr := 0; cr < g.nCellsR; cr++ {
							r, _, z, _, _ := g.centroid(cr, cz, cphi, cm1, cm2)
							rho, err := bfield.RhoPol(r, z)
							if err != nil {
								return nil, fmt.Errorf("seed: B-field query failed: %w", err)
							}
							densities, err := plasma.Densities(rho)
							if err != nil {
								return nil, fmt.Errorf("seed: plasma query failed: %w", err)
							}
							var sum float64
							for _, d := range densities {
								sum += d
							}
							idx := g.index(cr, cz, cphi, cm1, cm2)
							h.Values[idx] = sum
						}
					}
				}
			}
		}
	case FromInputParticles:
		for _, p := range inputParticles {
			cr, okR := locateAxis(m.R, p.R)
			cz, okZ := locateAxis(m.Z, p.Z)
			cphi, okPhi := locatePhi(m.Phi, p.Phi)
			if !okR || !okZ || !okPhi {
				continue
			}
			// a spatial bin (R,z,phi) weights all momentum sub-cells equally
			for cm2 := 0; cm2 < g.nMom2; cm2++ {
				for cm1 := 0; cm1 < g.nMom1; cm1++ {
					h.Values[g.index(cr, cz, cphi, cm1, cm2)]++
				}
			}
		}
	default:
		return nil, fmt.Errorf("seed: unknown mode %v", mode)
	}

	if wall != nil {
		for cm2 := 0; cm2 < g.nMom2; cm2++ {
			for cm1 := 0; cm1 < g.nMom1; cm1++ {
				for cphi := 0; cphi < g.nCellsPhi; cphi++ {
					for cz := 0; cz < g.nCellsZ; cz++ {
						for cr := 0; cr < g.nCellsR; cr++ {
							r, _, z, _, _ := g.centroid(cr, cz, cphi, cm1, cm2)
							inside, err := wall.Contains(r, z)
							if err != nil {
								return nil, fmt.Errorf("seed: wall query failed: %w", err)
							}
							if !inside {
								h.Values[g.index(cr, cz, cphi, cm1, cm2)] = 0
							}
						}
					}
				}
			}
		}
	}
	return h, nil
}

// locateAxis returns the index i such that axis[i] <= v < axis[i+1], or
// ok=false if v is outside [axis[0], axis[last]).
func locateAxis(axis []float64, v float64) (i int, ok bool) {
	if v < axis[0] || v >= axis[len(axis)-1] {
		return 0, false
	}
	step := axis[1] - axis[0]
	i = int((v - axis[0]) / step)
	if i < 0 || i >= len(axis)-1 {
		return 0, false
	}
	return i, true
}

// locatePhi is like locateAxis but wraps the periodic phi axis.
func locatePhi(phi []float64, v float64) (i int, ok bool) {
	if len(phi) == 1 {
		return 0, true
	}
	period := (phi[len(phi)-1] - phi[0]) + (phi[1] - phi[0])
	lo := phi[0]
	for v < lo {
		v += period
	}
	for v >= lo+period {
		v -= period
	}
	step := phi[1] - phi[0]
	i = int((v - lo) / step)
	if i < 0 {
		i = 0
	}
	if i >= len(phi) {
		i = len(phi) - 1
	}
	return i, true
}
