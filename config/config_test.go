// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/cpmech/bmcmesh/seed"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

const testRunJSON = `{
	"desc": "unit test run",
	"dirout": "/tmp/bmcmesh/test",
	"key": "test01",
	"axis_r":    {"min": 0, "max": 1, "count": 4},
	"axis_phi":  {"min": 0, "max": 6.283185307, "count": 3},
	"axis_z":    {"min": 0, "max": 1, "count": 4},
	"axis_mom1": {"min": -1, "max": 1, "count": 4},
	"axis_mom2": {"min": 0, "max": 1, "count": 4},
	"n_total": 1000,
	"seed_mode": "plasma-density",
	"n_per_vertex": 1,
	"use_hermite": true,
	"seed": 7,
	"mass": 1.0,
	"charge": 1.0,
	"dt": 1e-6,
	"sub_cycles": 4,
	"n_steps": 10,
	"hermite_weights": [0.16666666666666666, 0.6666666666666666, 0.16666666666666666],
	"n_workers": 2
}`

func Test_load_run01(tst *testing.T) {

	chk.PrintTitle("load_run01")

	io.WriteFileSD("/tmp/bmcmesh/config", "test_run.bmc", testRunJSON)

	r, err := Load("/tmp/bmcmesh/config/test_run.bmc")
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}

	chk.IntAssert(r.AxisR.Count, 4)
	chk.IntAssert(r.AxisPhi.Count, 3)
	chk.IntAssert(r.NTotal, 1000)
	chk.IntAssert(r.SubCycles, 4)
	chk.IntAssert(len(r.HermiteWeights), 3)

	mode, err := r.SeedModeValue()
	if err != nil {
		tst.Fatalf("SeedModeValue failed: %v", err)
	}
	if mode != seed.PlasmaDensity {
		tst.Fatalf("expected PlasmaDensity, got %v", mode)
	}

	ar, aphi, az, am1, am2 := r.Axes()
	chk.IntAssert(ar.Count, 4)
	chk.IntAssert(aphi.Count, 3)
	chk.IntAssert(az.Count, 4)
	chk.IntAssert(am1.Count, 4)
	chk.IntAssert(am2.Count, 4)
}

func Test_seed_mode_default01(tst *testing.T) {

	chk.PrintTitle("seed_mode_default01")

	r := &Run{}
	mode, err := r.SeedModeValue()
	if err != nil {
		tst.Fatalf("SeedModeValue failed: %v", err)
	}
	if mode != seed.Uniform {
		tst.Fatalf("expected Uniform as the default seed mode, got %v", mode)
	}
}

func Test_seed_mode_unknown01(tst *testing.T) {

	chk.PrintTitle("seed_mode_unknown01")

	r := &Run{SeedMode: "not-a-real-mode"}
	if _, err := r.SeedModeValue(); err == nil {
		tst.Fatalf("expected an error for an unknown seed_mode")
	}
}
