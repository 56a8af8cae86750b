package engine

import "github.com/cpmech/gosl/chk"

// HermiteRule holds the fixed Hermite stochastic-quadrature knots and
// weights that drive the backward time-step update. K = len(Weights) is
// the HERMITE_KNOTS of the original source; the knots themselves are an
// implementation detail of the orbit-push oracle (they perturb the
// momentum coordinates before the push), so only the weights are needed
// by the Updater. Sum(Weights) must equal 1.
type HermiteRule struct {
	Weights []float64
}

// DefaultHermiteRule is a 3-knot Gauss-Hermite-derived rule with weights
// summing to 1, used when a configuration does not specify its own.
func DefaultHermiteRule() HermiteRule {
	return HermiteRule{Weights: []float64{1.0 / 6.0, 4.0 / 6.0, 1.0 / 6.0}}
}

// Knots returns K, the number of Hermite knots per mesh element.
func (h HermiteRule) Knots() int { return len(h.Weights) }

// Validate checks that the rule's weights sum to 1 (within tolerance)
// and panics otherwise; malformed quadrature rules are a programming
// error caught at configuration time, not a runtime fate.
func (h HermiteRule) Validate() {
	if len(h.Weights) == 0 {
		chk.Panic("engine: Hermite rule must have at least one knot")
	}
	sum := 0.0
	for _, w := range h.Weights {
		sum += w
	}
	if sum < 1-1e-9 || sum > 1+1e-9 {
		chk.Panic("engine: Hermite weights must sum to 1, got %g", sum)
	}
}
