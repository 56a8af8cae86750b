package engine

import (
	"context"

	"github.com/cpmech/bmcmesh/mesh"
	"github.com/cpmech/bmcmesh/seed"
)

// IdentityPusher is a trivial OrbitPusher: for every mesh element in
// [start,stop) and every Hermite knot it reports fate=FateInFlight at the
// coordinates of a particle seeding that element (the last one in the
// slice when several do), or at the element's own vertex when none
// does. It is useful for tests and as a CLI default/placeholder when no
// real orbit integrator is wired in: a constant field left unchanged by
// a step where every particle simply reports its own starting point.
type IdentityPusher struct {
	Knots int
}

// Push implements OrbitPusher.
func (p IdentityPusher) Push(ctx context.Context, m *mesh.Mesh, start, stop int,
	mass, charge, dt float64, subCycles int, particles []seed.Particle) (EndpointBatch, error) {

	k := p.Knots
	if k <= 0 {
		k = 1
	}
	n := (stop - start) * k
	batch := EndpointBatch{
		R:    make([]float64, n),
		Phi:  make([]float64, n),
		Z:    make([]float64, n),
		Mom1: make([]float64, n),
		Mom2: make([]float64, n),
		Fate: make([]Fate, n),
	}
	byVertex := make(map[int]seed.Particle, len(particles))
	for _, part := range particles {
		byVertex[part.MeshIndex] = part
	}
	for i := start; i < stop; i++ {
		part, ok := byVertex[i]
		if !ok {
			r, phi, z, mom1, mom2, err := m.IndexToPos(i)
			if err != nil {
				return EndpointBatch{}, err
			}
			part = seed.Particle{R: r, Phi: phi, Z: z, Mom1: mom1, Mom2: mom2}
		}
		for knot := 0; knot < k; knot++ {
			j := (i-start)*k + knot
			batch.R[j] = part.R
			batch.Phi[j] = part.Phi
			batch.Z[j] = part.Z
			batch.Mom1[j] = part.Mom1
			batch.Mom2[j] = part.Mom2
			batch.Fate[j] = FateInFlight
		}
	}
	return batch, nil
}
