// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collab

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

type fakeBField struct{}

func (fakeBField) RhoPol(r, z float64) (float64, error) { return r + z, nil }

func Test_bfield_register_roundtrip01(tst *testing.T) {

	chk.PrintTitle("bfield_register_roundtrip01")

	RegisterBField("fake-test-bfield", func(cfg interface{}) (BField, error) {
		return fakeBField{}, nil
	})

	bf, err := NewBField("fake-test-bfield", nil)
	if err != nil {
		tst.Fatalf("NewBField failed: %v", err)
	}
	rho, err := bf.RhoPol(2, 3)
	if err != nil {
		tst.Fatalf("RhoPol failed: %v", err)
	}
	chk.Scalar(tst, "rho_pol", 1e-15, rho, 5)
}

func Test_bfield_duplicate_register_panics01(tst *testing.T) {

	chk.PrintTitle("bfield_duplicate_register_panics01")

	RegisterBField("dup-test-bfield", func(cfg interface{}) (BField, error) { return fakeBField{}, nil })

	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("expected RegisterBField to panic on a duplicate name")
		}
	}()
	RegisterBField("dup-test-bfield", func(cfg interface{}) (BField, error) { return fakeBField{}, nil })
}

func Test_wall_unknown_name01(tst *testing.T) {

	chk.PrintTitle("wall_unknown_name01")

	_, err := NewWall("no-such-wall-impl", nil)
	if err == nil {
		tst.Fatalf("expected an error for an unregistered wall implementation")
	}
}
