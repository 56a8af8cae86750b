// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package seed implements importance-sampled seeding of the initial
// pseudo-particle population across mesh vertices.
package seed

// Particle is a single pseudo-particle: a Monte Carlo marker used only
// to transport probability mass, not physical content.
type Particle struct {
	ID                    int
	R, Phi, Z, Mom1, Mom2 float64
	Mass, Charge          float64
	T                     float64 // initial time
	MeshIndex             int     // provenance: the mesh element this particle seeds
}
