package engine

import (
	"context"

	"github.com/cpmech/bmcmesh/mesh"
	"github.com/cpmech/bmcmesh/seed"
)

// OrbitPusher is the external orbit-push oracle: given the mesh, an
// index range, species mass/charge, a time step and a sub-cycle count,
// plus the seeded pseudo-particle
// state for that range, it produces an EndpointBatch of
// (stop-start)*K records. Implementations must wrap phi to the mesh's
// periodic interval and report a fate in {-1,0,1,2}.
type OrbitPusher interface {
	Push(ctx context.Context, m *mesh.Mesh, start, stop int,
		mass, charge, dt float64, subCycles int,
		particles []seed.Particle) (EndpointBatch, error)
}
