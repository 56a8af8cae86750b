// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config implements JSON-driven run configuration for the BMC
// engine, grounded on inp.Data/inp.Simulation's JSON-tagged struct idiom
// and inp.ReadSim's io.ReadFile + encoding/json loading shape.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/cpmech/bmcmesh/mesh"
	"github.com/cpmech/bmcmesh/seed"
	"github.com/cpmech/gosl/io"
)

// AxisSpec mirrors mesh.AxisSpec with JSON tags for file I/O.
type AxisSpec struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

func (a AxisSpec) toMesh() mesh.AxisSpec {
	return mesh.AxisSpec{Min: a.Min, Max: a.Max, Count: a.Count}
}

// Run holds everything needed to build and step an engine.Engine,
// loaded from a .bmc JSON run file.
type Run struct {
	Desc   string `json:"desc"`   // description of the run
	DirOut string `json:"dirout"` // directory for output/checkpoints
	Key    string `json:"key"`    // run key, used to name output files

	AxisR    AxisSpec `json:"axis_r"`
	AxisPhi  AxisSpec `json:"axis_phi"`
	AxisZ    AxisSpec `json:"axis_z"`
	AxisMom1 AxisSpec `json:"axis_mom1"`
	AxisMom2 AxisSpec `json:"axis_mom2"`

	NTotal     int     `json:"n_total"`
	SeedMode   string  `json:"seed_mode"` // "uniform"|"user-probability"|"plasma-density"|"from-input-particles"
	NPerVertex int     `json:"n_per_vertex"`
	UseHermite bool    `json:"use_hermite"`
	Seed       int64   `json:"seed"`
	Mass       float64 `json:"mass"`
	Charge     float64 `json:"charge"`

	Dt        float64 `json:"dt"`
	SubCycles int     `json:"sub_cycles"`
	NSteps    int     `json:"n_steps"`

	HermiteWeights []float64 `json:"hermite_weights"`
	NWorkers       int       `json:"n_workers"`

	WallKind     string      `json:"wall_kind"`     // name registered via collab.RegisterWall, e.g. "polygon"
	WallVertices [][]float64 `json:"wall_vertices"` // (R,z) vertices, consumed as the "polygon" wall's config
	BFieldKind   string      `json:"bfield_kind"`   // name registered via collab.RegisterBField
	PlasmaKind   string      `json:"plasma_kind"`   // name registered via collab.RegisterPlasma
}

// Load reads and decodes a .bmc JSON run file at path.
func Load(path string) (*Run, error) {
	buf, err := io.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot read %q: %w", path, err)
	}
	var r Run
	if err := json.Unmarshal(buf, &r); err != nil {
		return nil, fmt.Errorf("config: cannot decode %q: %w", path, err)
	}
	return &r, nil
}

// Axes returns the five axis specs converted to mesh.AxisSpec, in
// (R,phi,z,mom1,mom2) order.
func (r *Run) Axes() (ar, aphi, az, am1, am2 mesh.AxisSpec) {
	return r.AxisR.toMesh(), r.AxisPhi.toMesh(), r.AxisZ.toMesh(), r.AxisMom1.toMesh(), r.AxisMom2.toMesh()
}

// SeedModeValue maps the run's string SeedMode to seed.Mode.
func (r *Run) SeedModeValue() (seed.Mode, error) {
	switch r.SeedMode {
	case "", "uniform":
		return seed.Uniform, nil
	case "user-probability":
		return seed.UserProbability, nil
	case "plasma-density":
		return seed.PlasmaDensity, nil
	case "from-input-particles":
		return seed.FromInputParticles, nil
	default:
		return 0, fmt.Errorf("config: unknown seed_mode %q", r.SeedMode)
	}
}
