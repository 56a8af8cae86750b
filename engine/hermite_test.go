package engine

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_hermite_weights01(tst *testing.T) {

	chk.PrintTitle("hermite_weights01")

	rule := DefaultHermiteRule()
	chk.IntAssert(rule.Knots(), 3)

	var sum float64
	for _, w := range rule.Weights {
		sum += w
	}
	chk.Scalar(tst, "sum of hermite weights", 1e-15, sum, 1.0)
}

func Test_hermite_validate_panics_on_bad_weights01(tst *testing.T) {

	chk.PrintTitle("hermite_validate_panics_on_bad_weights01")

	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("expected Validate to panic on weights not summing to 1")
		}
	}()
	HermiteRule{Weights: []float64{0.1, 0.1}}.Validate()
}
