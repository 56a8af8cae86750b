// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package collab defines the narrow interfaces through which the BMC
// engine queries its three external collaborators (magnetic field,
// plasma background, wall geometry) and a named registry for pluggable
// implementations of each: a named factory/registry, generalized from
// "named finite-element type -> allocator" to "named collaborator
// implementation -> constructor".
package collab

import "github.com/cpmech/gosl/chk"

// BField queries the normalized poloidal flux coordinate rho_pol at a
// given (R,z) location.
type BField interface {
	RhoPol(r, z float64) (float64, error)
}

// Plasma queries the plasma background's per-species densities at a
// given normalized poloidal flux coordinate.
type Plasma interface {
	Densities(rhoPol float64) ([]float64, error)
}

// Wall2D reports whether a given (R,z) location lies inside the 2D wall
// contour.
type Wall2D interface {
	Contains(r, z float64) (bool, error)
}

// BFieldCtor, PlasmaCtor and WallCtor build a named collaborator
// implementation from an opaque configuration payload.
type BFieldCtor func(cfg interface{}) (BField, error)
type PlasmaCtor func(cfg interface{}) (Plasma, error)
type WallCtor func(cfg interface{}) (Wall2D, error)

var (
	bfieldFactory = make(map[string]BFieldCtor)
	plasmaFactory = make(map[string]PlasmaCtor)
	wallFactory   = make(map[string]WallCtor)
)

// RegisterBField makes a named B-field implementation available to
// NewBField. Panics (a programming error) if the name is already taken.
func RegisterBField(name string, ctor BFieldCtor) {
	if _, ok := bfieldFactory[name]; ok {
		chk.Panic("collab: B-field implementation %q already registered", name)
	}
	bfieldFactory[name] = ctor
}

// RegisterPlasma makes a named plasma implementation available to NewPlasma.
func RegisterPlasma(name string, ctor PlasmaCtor) {
	if _, ok := plasmaFactory[name]; ok {
		chk.Panic("collab: plasma implementation %q already registered", name)
	}
	plasmaFactory[name] = ctor
}

// RegisterWall makes a named wall implementation available to NewWall.
func RegisterWall(name string, ctor WallCtor) {
	if _, ok := wallFactory[name]; ok {
		chk.Panic("collab: wall implementation %q already registered", name)
	}
	wallFactory[name] = ctor
}

// NewBField builds the named B-field implementation.
func NewBField(name string, cfg interface{}) (BField, error) {
	ctor, ok := bfieldFactory[name]
	if !ok {
		return nil, chk.Err("collab: no B-field implementation registered under %q", name)
	}
	return ctor(cfg)
}

// NewPlasma builds the named plasma implementation.
func NewPlasma(name string, cfg interface{}) (Plasma, error) {
	ctor, ok := plasmaFactory[name]
	if !ok {
		return nil, chk.Err("collab: no plasma implementation registered under %q", name)
	}
	return ctor(cfg)
}

// NewWall builds the named wall implementation.
func NewWall(name string, cfg interface{}) (Wall2D, error) {
	ctor, ok := wallFactory[name]
	if !ok {
		return nil, chk.Err("collab: no wall implementation registered under %q", name)
	}
	return ctor(cfg)
}
