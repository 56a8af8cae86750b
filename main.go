// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"os"

	"github.com/cpmech/bmcmesh/collab"
	"github.com/cpmech/bmcmesh/config"
	"github.com/cpmech/bmcmesh/engine"
	"github.com/cpmech/bmcmesh/mesh"
	"github.com/cpmech/bmcmesh/seed"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

func main() {
	verbose := true
	profile := false

	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\nbmcmesh -- Backward Monte Carlo 5D probability-propagation engine\n\n")
	}

	flag.BoolVar(&profile, "profile", false, "write a CPU profile for this run")
	flag.Parse()
	defer utl.DoProf(profile)()

	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a run filename. Ex.: run.bmc")
	}

	cfg, err := config.Load(fnamepath)
	if err != nil {
		chk.Panic("cannot load run file: %v", err)
	}

	if err := run(cfg, verbose); err != nil {
		chk.Panic("run failed: %v", err)
	}
}

func run(cfg *config.Run, verbose bool) error {
	ar, aphi, az, am1, am2 := cfg.Axes()
	m, err := mesh.New(ar, aphi, az, am1, am2)
	if err != nil {
		return err
	}

	seedMode, err := cfg.SeedModeValue()
	if err != nil {
		return err
	}

	var wall collab.Wall2D
	if cfg.WallKind != "" {
		wall, err = collab.NewWall(cfg.WallKind, cfg.WallVertices)
		if err != nil {
			return err
		}
	}

	var bfield collab.BField
	var plasma collab.Plasma
	if seedMode == seed.PlasmaDensity {
		bfield, err = collab.NewBField(cfg.BFieldKind, nil)
		if err != nil {
			return err
		}
		plasma, err = collab.NewPlasma(cfg.PlasmaKind, nil)
		if err != nil {
			return err
		}
	}

	seeder := &seed.Seeder{
		NTotal:     cfg.NTotal,
		Mode:       seedMode,
		UseHermite: cfg.UseHermite,
		NPerVertex: cfg.NPerVertex,
		Seed:       cfg.Seed,
		Wall:       wall,
		BField:     bfield,
		Plasma:     plasma,
	}

	rule := engine.DefaultHermiteRule()
	if len(cfg.HermiteWeights) > 0 {
		rule = engine.HermiteRule{Weights: cfg.HermiteWeights}
	}

	nWorkers := cfg.NWorkers
	if nWorkers <= 0 {
		nWorkers = 1
	}

	var comm *mpi.Communicator
	if mpi.IsOn() && mpi.Size() > 1 {
		comm = mpi.NewCommunicator(nil)
	}
	reducer := engine.NewReducer(comm)

	eng := engine.New(m, engine.IdentityPusher{Knots: rule.Knots()}, rule, reducer, nWorkers)
	eng.Mass = cfg.Mass
	eng.Charge = cfg.Charge
	eng.Dt = cfg.Dt
	eng.SubCycles = cfg.SubCycles
	eng.ShowMsg = verbose && mpi.Rank() == 0

	if err := eng.Seed(seeder, 0); err != nil {
		return err
	}

	if cfg.DirOut != "" {
		if err := os.MkdirAll(cfg.DirOut, 0777); err != nil {
			return err
		}
	}

	ctx := context.Background()
	for step := 0; step < cfg.NSteps; step++ {
		if err := eng.Step(ctx); err != nil {
			return err
		}
		if eng.ShowMsg {
			io.Pf("> finished step %d/%d\n", step+1, cfg.NSteps)
		}
		if cfg.DirOut != "" {
			hdr := mesh.CheckpointHeader{AxisR: ar, AxisPhi: aphi, AxisZ: az, AxisMom1: am1, AxisMom2: am2,
				HermiteWeights: rule.Weights, Step: step}
			if err := m.Checkpoint(checkpointPath(cfg.DirOut, cfg.Key, step), hdr); err != nil {
				return err
			}
		}
	}

	eng.Finalize()
	if eng.ShowMsg {
		io.PfGreen("> Success\n")
	}
	return nil
}

func checkpointPath(dirout, key string, step int) string {
	return io.Sf("%s/%s_step%04d.bmc", dirout, key, step)
}
