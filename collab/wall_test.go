// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collab

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_polygon_wall_contains01(tst *testing.T) {

	chk.PrintTitle("polygon_wall_contains01")

	// a unit square in the (R,z) plane
	w, err := NewPolygonWall([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	if err != nil {
		tst.Fatalf("NewPolygonWall failed: %v", err)
	}

	inside, err := w.Contains(0.5, 0.5)
	if err != nil {
		tst.Fatalf("Contains failed: %v", err)
	}
	if !inside {
		tst.Fatalf("expected (0.5,0.5) to lie inside the unit square")
	}

	outside, err := w.Contains(5, 5)
	if err != nil {
		tst.Fatalf("Contains failed: %v", err)
	}
	if outside {
		tst.Fatalf("expected (5,5) to lie outside the unit square")
	}
}

func Test_polygon_wall_rejects_degenerate01(tst *testing.T) {

	chk.PrintTitle("polygon_wall_rejects_degenerate01")

	_, err := NewPolygonWall([][]float64{{0, 0}, {1, 0}})
	if err == nil {
		tst.Fatalf("expected an error for a polygon with fewer than 3 vertices")
	}
}

func Test_registered_polygon_ctor01(tst *testing.T) {

	chk.PrintTitle("registered_polygon_ctor01")

	w, err := NewWall("polygon", [][]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	if err != nil {
		tst.Fatalf("NewWall failed: %v", err)
	}
	inside, err := w.Contains(1, 1)
	if err != nil {
		tst.Fatalf("Contains failed: %v", err)
	}
	if !inside {
		tst.Fatalf("expected (1,1) to lie inside the registered polygon wall")
	}
}
