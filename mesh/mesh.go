// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh implements the 5D (R,phi,z,p_par,p_perp) phase-space grid
// that backs the backward Monte Carlo probability propagation engine.
package mesh

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Sentinel error kinds. Use errors.Is to test for these.
var (
	ErrInvalidAxis      = errors.New("mesh: invalid axis spec")
	ErrOutOfRange       = errors.New("mesh: index out of range")
	ErrAllocationFailed = errors.New("mesh: allocation failed")
)

// AxisSpec describes one of the five mesh axes as given by the caller:
// count cells between min and max. R, z, p_par and p_perp store count+1
// abscissae (endpoints inclusive); phi is periodic and stores exactly
// count abscissae covering [min,max).
type AxisSpec struct {
	Min   float64
	Max   float64
	Count int
}

// Mesh owns the five axis abscissae and the two value buffers (current
// and next probability field). r is the fastest-varying axis in the
// canonical linearization, mom2 the slowest.
type Mesh struct {
	NR, NPhi, NZ, NMom1, NMom2 int
	R, Phi, Z, Mom1, Mom2      []float64
	ValPrev, ValNext           []float64
	Size                       int
}

// New builds a mesh from five axis specs, one per (R,phi,z,p_par,p_perp).
// Both value buffers are allocated and zeroed. Returns ErrInvalidAxis if
// any axis has Max<=Min or Count<=0.
func New(axisR, axisPhi, axisZ, axisMom1, axisMom2 AxisSpec) (o *Mesh, err error) {
	for name, a := range map[string]AxisSpec{"r": axisR, "phi": axisPhi, "z": axisZ, "mom1": axisMom1, "mom2": axisMom2} {
		if a.Max <= a.Min {
			return nil, fmt.Errorf("%w: axis %q has max<=min (min=%g max=%g)", ErrInvalidAxis, name, a.Min, a.Max)
		}
		if a.Count <= 0 {
			return nil, fmt.Errorf("%w: axis %q has non-positive count=%d", ErrInvalidAxis, name, a.Count)
		}
	}

	o = new(Mesh)
	o.NR = axisR.Count + 1
	o.NZ = axisZ.Count + 1
	o.NMom1 = axisMom1.Count + 1
	o.NMom2 = axisMom2.Count + 1
	o.NPhi = axisPhi.Count

	o.R = linspaceInclusive(axisR.Min, axisR.Max, axisR.Count)
	o.Z = linspaceInclusive(axisZ.Min, axisZ.Max, axisZ.Count)
	o.Mom1 = linspaceInclusive(axisMom1.Min, axisMom1.Max, axisMom1.Count)
	o.Mom2 = linspaceInclusive(axisMom2.Min, axisMom2.Max, axisMom2.Count)
	o.Phi = make([]float64, o.NPhi)
	dphi := (axisPhi.Max - axisPhi.Min) / float64(axisPhi.Count+1)
	for i := 0; i < o.NPhi; i++ {
		o.Phi[i] = axisPhi.Min + float64(i)*dphi
	}

	o.Size = o.NR * o.NPhi * o.NZ * o.NMom1 * o.NMom2
	if o.Size <= 0 {
		return nil, fmt.Errorf("%w: computed mesh size is non-positive", ErrAllocationFailed)
	}
	o.ValPrev = make([]float64, o.Size)
	o.ValNext = make([]float64, o.Size)
	return o, nil
}

// linspaceInclusive returns count+1 uniformly spaced values from min to
// max inclusive, matching the original source's a[i] = min + i*(max-min)/count.
func linspaceInclusive(min, max float64, count int) []float64 {
	a := make([]float64, count+1)
	step := (max - min) / float64(count)
	for i := 0; i <= count; i++ {
		a[i] = min + float64(i)*step
	}
	return a
}

// Free releases the mesh's buffers and resets Size to zero.
func (o *Mesh) Free() {
	o.R, o.Phi, o.Z, o.Mom1, o.Mom2 = nil, nil, nil, nil, nil
	o.ValPrev, o.ValNext = nil, nil
	o.Size = 0
}

// Index returns the canonical linear index for a 5-tuple of per-axis
// indices (iR,iZ,iPhi,iMom1,iMom2); R is fastest, mom2 slowest.
func (o *Mesh) Index(iR, iZ, iPhi, iMom1, iMom2 int) int {
	return iMom2*(o.NR*o.NZ*o.NPhi*o.NMom1) +
		iMom1*(o.NR*o.NZ*o.NPhi) +
		iPhi*(o.NR*o.NZ) +
		iZ*o.NR +
		iR
}

// IndexToPos is the inverse of the canonical linearization: it returns
// the phase-space coordinates (r,phi,z,mom1,mom2) stored at idx. Returns
// ErrOutOfRange if idx >= Size.
func (o *Mesh) IndexToPos(idx int) (r, phi, z, mom1, mom2 float64, err error) {
	if idx < 0 || idx >= o.Size {
		err = fmt.Errorf("%w: idx=%d size=%d", ErrOutOfRange, idx, o.Size)
		return
	}
	stride4 := o.NR * o.NZ * o.NPhi * o.NMom1
	iMom2 := idx / stride4
	idx -= iMom2 * stride4

	stride3 := o.NR * o.NZ * o.NPhi
	iMom1 := idx / stride3
	idx -= iMom1 * stride3

	stride2 := o.NR * o.NZ
	iPhi := idx / stride2
	idx -= iPhi * stride2

	iZ := idx / o.NR
	idx -= iZ * o.NR

	iR := idx

	r = o.R[iR]
	phi = o.Phi[iPhi]
	z = o.Z[iZ]
	mom1 = o.Mom1[iMom1]
	mom2 = o.Mom2[iMom2]
	return
}

// checkBuilt panics (chk.Panic, a programming error per the propagation
// policy) when called on a mesh that has not been built yet or has
// already been freed.
func (o *Mesh) checkBuilt() {
	if o.Size == 0 {
		chk.Panic("mesh: operation requires an initialised (non-freed) mesh")
	}
}
