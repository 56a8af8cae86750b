// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_axis_layout01(tst *testing.T) {

	chk.PrintTitle("axis_layout01")

	m, err := New(
		AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisSpec{Min: 0, Max: 2 * math.Pi, Count: 4},
		AxisSpec{Min: -1, Max: 1, Count: 2},
		AxisSpec{Min: -1, Max: 1, Count: 2},
		AxisSpec{Min: 0, Max: 1, Count: 2},
	)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}

	chk.Scalar(tst, "R[0]", 1e-15, m.R[0], 0)
	chk.Scalar(tst, "R[n]", 1e-15, m.R[m.NR-1], 1)
	chk.Scalar(tst, "R step", 1e-15, m.R[1]-m.R[0], 0.5)

	chk.IntAssert(m.NPhi, 4)
	dphi := 2 * math.Pi / 5
	for i := 0; i < m.NPhi; i++ {
		chk.Scalar(tst, "phi[i]", 1e-14, m.Phi[i], float64(i)*dphi)
	}
}

func Test_invalid_axis01(tst *testing.T) {

	chk.PrintTitle("invalid_axis01")

	_, err := New(
		AxisSpec{Min: 1, Max: 0, Count: 2}, // max <= min
		AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisSpec{Min: 0, Max: 1, Count: 2},
	)
	if !errors.Is(err, ErrInvalidAxis) {
		tst.Fatalf("expected ErrInvalidAxis, got %v", err)
	}

	_, err = New(
		AxisSpec{Min: 0, Max: 1, Count: 0}, // count <= 0
		AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisSpec{Min: 0, Max: 1, Count: 2},
	)
	if !errors.Is(err, ErrInvalidAxis) {
		tst.Fatalf("expected ErrInvalidAxis, got %v", err)
	}
}

func Test_linearization_roundtrip01(tst *testing.T) {

	chk.PrintTitle("linearization_roundtrip01")

	m, err := New(
		AxisSpec{Min: 0, Max: 1, Count: 3},
		AxisSpec{Min: 0, Max: 2 * math.Pi, Count: 4},
		AxisSpec{Min: 0, Max: 1, Count: 2},
		AxisSpec{Min: -1, Max: 1, Count: 3},
		AxisSpec{Min: 0, Max: 1, Count: 2},
	)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}

	for idx := 0; idx < m.Size; idx++ {
		r, phi, z, mom1, mom2, err := m.IndexToPos(idx)
		if err != nil {
			tst.Fatalf("IndexToPos(%d) failed: %v", idx, err)
		}
		// brute-force search for the (iR,iZ,iPhi,iMom1,iMom2) that
		// reproduce idx under the canonical linearization
		found := false
		for iMom2 := 0; iMom2 < m.NMom2 && !found; iMom2++ {
			for iMom1 := 0; iMom1 < m.NMom1 && !found; iMom1++ {
				for iPhi := 0; iPhi < m.NPhi && !found; iPhi++ {
					for iZ := 0; iZ < m.NZ && !found; iZ++ {
						for iR := 0; iR < m.NR && !found; iR++ {
							if m.Index(iR, iZ, iPhi, iMom1, iMom2) == idx {
								chk.Scalar(tst, "r", 1e-15, r, m.R[iR])
								chk.Scalar(tst, "phi", 1e-15, phi, m.Phi[iPhi])
								chk.Scalar(tst, "z", 1e-15, z, m.Z[iZ])
								chk.Scalar(tst, "mom1", 1e-15, mom1, m.Mom1[iMom1])
								chk.Scalar(tst, "mom2", 1e-15, mom2, m.Mom2[iMom2])
								found = true
							}
						}
					}
				}
			}
		}
		if !found {
			tst.Fatalf("idx=%d did not round-trip to any (iR,iZ,iPhi,iMom1,iMom2)", idx)
		}
	}

	_, _, _, _, _, err = m.IndexToPos(m.Size)
	if !errors.Is(err, ErrOutOfRange) {
		tst.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}
