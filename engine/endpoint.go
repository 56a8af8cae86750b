package engine

// Fate classifies how a pseudo-particle's orbit push terminated.
type Fate int8

const (
	FateError    Fate = -1 // orbit push failed
	FateInFlight Fate = 0  // still inside the domain; interpolate
	FateWall     Fate = 1  // hit the wall
	FateFILD     Fate = 2  // hit the fast-ion loss detector
)

// EndpointBatch holds the (stop-start)*K endpoint records produced by
// the orbit-push oracle for a contiguous mesh-element range [start,stop).
// Record (i,k) lives at offset (i-start)*K+k.
type EndpointBatch struct {
	R, Phi, Z, Mom1, Mom2 []float64
	Fate                  []Fate
}

// Len returns the number of endpoint records in the batch.
func (b EndpointBatch) Len() int { return len(b.Fate) }
