// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package interp implements the 5D multilinear interpolation kernel
// used to read the backward Monte Carlo probability field at an
// arbitrary phase-space point.
package interp

import (
	"math"

	"github.com/cpmech/bmcmesh/mesh"
)

// Interpolate computes a multilinear interpolation of m.ValPrev at the
// phase-space point (r,phi,z,mom1,mom2).
//
// Boundary policy: the interpolation returns exactly 0 unless every
// non-periodic axis index i_a satisfies 0 <= i_a <= n_a-3. This mirrors
// the original source exactly: the test is i_a < n_a-2 (equivalently
// i_a <= n_a-3) while the sum below reads node i_a+1, so the final row
// of each non-periodic axis is never touched even though the
// antepenultimate cell is usable. This is intentional regression
// parity, not a bug; a future revision may widen the usable domain by
// one cell (see the source's own open question).
//
// phi is periodic with period NPhi*(phi[1]-phi[0]): a phi outside
// [phi[0], phi[0]+period) is first folded back into that interval, and
// the last phi cell spans [phi[NPhi-1], phi[0]+period), pairing with
// phi[0]. When NPhi==1, phi is degenerate and both "corners" of the phi
// axis contribute equally (weight 0.5 each) with a phi volume factor of
// 1.0; otherwise the phi volume factor is max(|phi_hi-phi_lo|, 1.0).
func Interpolate(m *mesh.Mesh, r, phi, z, mom1, mom2 float64) float64 {
	iR := int(math.Floor((r - m.R[0]) / (m.R[1] - m.R[0])))
	iZ := int(math.Floor((z - m.Z[0]) / (m.Z[1] - m.Z[0])))
	iMom1 := int(math.Floor((mom1 - m.Mom1[0]) / (m.Mom1[1] - m.Mom1[0])))
	iMom2 := int(math.Floor((mom2 - m.Mom2[0]) / (m.Mom2[1] - m.Mom2[0])))

	var iPhi, iPhi1 int
	var phiPeriod float64
	if m.NPhi == 1 {
		iPhi = 0
		iPhi1 = 0
	} else {
		phiPeriod = float64(m.NPhi) * (m.Phi[1] - m.Phi[0])
		phi = m.Phi[0] + math.Mod(phi-m.Phi[0], phiPeriod)
		if phi < m.Phi[0] {
			phi += phiPeriod
		}
		iPhi = int(math.Floor((phi - m.Phi[0]) / (m.Phi[1] - m.Phi[0])))
		if iPhi == m.NPhi-1 {
			iPhi1 = 0
		} else {
			iPhi1 = iPhi + 1
		}
	}

	if iR < 0 || iR > m.NR-3 ||
		iZ < 0 || iZ > m.NZ-3 ||
		iMom1 < 0 || iMom1 > m.NMom1-3 ||
		iMom2 < 0 || iMom2 > m.NMom2-3 {
		return 0
	}

	dr := [2]float64{m.R[iR+1] - r, r - m.R[iR]}
	dz := [2]float64{m.Z[iZ+1] - z, z - m.Z[iZ]}
	dmom1 := [2]float64{m.Mom1[iMom1+1] - mom1, mom1 - m.Mom1[iMom1]}
	dmom2 := [2]float64{m.Mom2[iMom2+1] - mom2, mom2 - m.Mom2[iMom2]}

	var dphi [2]float64
	var phiVol float64
	if m.NPhi == 1 {
		dphi = [2]float64{0.5, 0.5}
		phiVol = 1.0
	} else {
		phiHi := m.Phi[iPhi1]
		if iPhi1 == 0 {
			phiHi = m.Phi[0] + phiPeriod
		}
		dphi = [2]float64{phiHi - phi, phi - m.Phi[iPhi]}
		phiVol = math.Max(math.Abs(phiHi-m.Phi[iPhi]), 1.0)
	}

	vol := (m.R[iR+1] - m.R[iR]) * phiVol * (m.Z[iZ+1] - m.Z[iZ]) *
		(m.Mom1[iMom1+1] - m.Mom1[iMom1]) * (m.Mom2[iMom2+1] - m.Mom2[iMom2])

	var val float64
	for i1 := 0; i1 < 2; i1++ {
		for i2 := 0; i2 < 2; i2++ {
			for i3 := 0; i3 < 2; i3++ {
				phiIdx := iPhi
				if i3 == 1 {
					phiIdx = iPhi1
				}
				for i4 := 0; i4 < 2; i4++ {
					for i5 := 0; i5 < 2; i5++ {
						idx := m.Index(iR+i1, iZ+i2, phiIdx, iMom1+i4, iMom2+i5)
						val += m.ValPrev[idx] * dr[i1] * dz[i2] * dphi[i3] * dmom1[i4] * dmom2[i5]
					}
				}
			}
		}
	}
	return val / vol
}
