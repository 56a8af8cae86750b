package engine

import (
	"errors"
	"fmt"

	"github.com/cpmech/bmcmesh/mesh"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"
)

// ErrReductionFailed is returned when the collective all-reduce
// transport reports an error. FinishStep then discards ValNext (zeroes
// it), and Engine.Step returns while still in StepInProgress, so the
// engine accepts no further steps.
var ErrReductionFailed = errors.New("engine: reduction failed")

// Reducer sums m.ValNext across cooperating workers into m.ValPrev and
// zeroes m.ValNext, preparing the mesh for the next backward time step.
// With a nil Comm the reduction is a plain copy (single-worker mode);
// otherwise it is a blocking MPI all-reduce-sum, the only
// synchronisation point between workers in the engine.
type Reducer struct {
	Comm *mpi.Communicator
}

// NewReducer returns a Reducer. Pass a nil comm for single-worker runs.
func NewReducer(comm *mpi.Communicator) *Reducer {
	return &Reducer{Comm: comm}
}

// FinishStep performs the reduction described above.
func (o *Reducer) FinishStep(m *mesh.Mesh) error {
	if o.Comm == nil || !mpi.IsOn() {
		la.VecCopy(m.ValPrev, 1.0, m.ValNext)
	} else {
		if err := o.Comm.AllReduceSum(m.ValPrev, m.ValNext); err != nil {
			la.VecFill(m.ValNext, 0)
			return fmt.Errorf("%w: %v", ErrReductionFailed, err)
		}
	}
	la.VecFill(m.ValNext, 0)
	return nil
}
