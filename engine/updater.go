package engine

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cpmech/bmcmesh/interp"
	"github.com/cpmech/bmcmesh/mesh"
)

// Updater accumulates Hermite-weighted contributions from a batch of
// orbit-push endpoints into m.ValNext. It writes exclusively to indices
// inside its partition; different goroutines own disjoint mesh indices
// so no locking is required (grounded on bmc_mesh_update's OpenMP
// `parallel for`, whose per-iteration writes to distinct iprt are
// data-race-free by construction).
type Updater struct {
	Rule HermiteRule
}

// NewUpdater returns an Updater configured with the given Hermite rule.
func NewUpdater(rule HermiteRule) *Updater {
	rule.Validate()
	return &Updater{Rule: rule}
}

// Update applies one time step's worth of endpoint data to [p.Start,p.Stop)
// of m, writing only to m.ValNext[p.Start:p.Stop). batch must have
// exactly p.Len()*Rule.Knots() records. The per-i accumulation runs on a
// worker goroutine pool, data-parallel across i; within a single i the
// knot loop is sequential on one accumulator, fixing the floating-point
// summation order regardless of worker count.
func (u *Updater) Update(m *mesh.Mesh, p Partition, batch EndpointBatch) error {
	k := u.Rule.Knots()
	want := p.Len() * k
	if batch.Len() != want {
		return fmt.Errorf("engine: endpoint batch has %d records, want %d (=%d indices * %d knots)",
			batch.Len(), want, p.Len(), k)
	}

	nWorkers := runtime.GOMAXPROCS(0)
	if nWorkers > p.Len() {
		nWorkers = p.Len()
	}
	if nWorkers < 1 {
		return nil
	}

	chunks := SplitRange(p.Len(), nWorkers)
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, c := range chunks {
		c := c
		go func() {
			defer wg.Done()
			for local := c.Start; local < c.Stop; local++ {
				i := p.Start + local
				var acc float64
				for knot := 0; knot < k; knot++ {
					j := local*k + knot
					acc += u.Rule.Weights[knot] * contribution(m, batch, j)
				}
				m.ValNext[i] += acc
			}
		}()
	}
	wg.Wait()
	return nil
}

// contribution computes v_k for endpoint record j per the fate rules:
// FILD hit contributes 1, wall hit or error contributes 0, otherwise
// the interpolated probability value at the endpoint.
func contribution(m *mesh.Mesh, batch EndpointBatch, j int) float64 {
	switch f := batch.Fate[j]; {
	case f == FateFILD:
		return 1.0
	case f == FateWall || f == FateError:
		return 0.0
	default:
		return interp.Interpolate(m, batch.R[j], batch.Phi[j], batch.Z[j], batch.Mom1[j], batch.Mom2[j])
	}
}
