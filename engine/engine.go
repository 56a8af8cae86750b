// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package engine implements the BMC time-stepping orchestration: the
// Updater, Reducer and the Engine state machine that drives them.
// Grounded on fem.FEM's NewFEM/Run/onexit lifecycle, generalized from
// "read sim, build domains, run stages" to "init mesh+seed, step,
// finalize".
package engine

import (
	"context"
	"fmt"

	"github.com/cpmech/bmcmesh/mesh"
	"github.com/cpmech/bmcmesh/seed"
	"github.com/cpmech/gosl/io"
)

// State is one of the engine's lifecycle states:
// Uninitialized -> Seeded -> StepInProgress <-> StepReady -> Finished.
type State int

const (
	Uninitialized State = iota
	Seeded
	StepInProgress
	StepReady
	Finished
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Seeded:
		return "seeded"
	case StepInProgress:
		return "step-in-progress"
	case StepReady:
		return "step-ready"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Engine owns the mesh, the current pseudo-particle population, and
// the Updater/Reducer pair that advances the probability field one
// backward time step at a time.
type Engine struct {
	Mesh       *mesh.Mesh
	Particles  []seed.Particle
	MeshIndex  []int // particles[i] seeds mesh element MeshIndex[i]
	Partitions []Partition

	Mass, Charge float64
	Dt           float64
	SubCycles    int

	Pusher  OrbitPusher
	Updater *Updater
	Reducer *Reducer

	ShowMsg bool
	state   State
}

// New builds an Engine around an already-constructed mesh. Call Seed
// before Step: Step returns an error until Seed has moved the engine to
// the Seeded state.
func New(m *mesh.Mesh, pusher OrbitPusher, rule HermiteRule, reducer *Reducer, nWorkers int) *Engine {
	return &Engine{
		Mesh:       m,
		Pusher:     pusher,
		Updater:    NewUpdater(rule),
		Reducer:    reducer,
		Partitions: SplitRange(m.Size, nWorkers),
		state:      Uninitialized,
	}
}

// State returns the engine's current lifecycle state.
func (o *Engine) State() State { return o.state }

// Seed populates the particle population using s and moves the engine
// to the Seeded state.
func (o *Engine) Seed(s *seed.Seeder, t float64) error {
	if o.state != Uninitialized {
		return fmt.Errorf("engine: Seed called in state %v, want %v", o.state, Uninitialized)
	}
	particles, meshIndex, err := s.Seed(o.Mesh, t, o.Mass, o.Charge)
	if err != nil {
		return err
	}
	o.Particles = particles
	o.MeshIndex = meshIndex
	o.state = Seeded
	return nil
}

// Step performs one backward time step: for every partition, gather the
// particles seeding mesh elements in that partition, push their orbits
// through the external oracle, accumulate the Hermite-weighted
// contributions via the Updater, then reduce across workers via the
// Reducer. A failed orbit push for an individual particle never aborts
// the step (it surfaces as fate=-1); only a failure of the oracle call
// itself or of the reduction aborts Step.
func (o *Engine) Step(ctx context.Context) error {
	if o.state != Seeded && o.state != StepReady {
		return fmt.Errorf("engine: Step called in state %v, want %v or %v", o.state, Seeded, StepReady)
	}
	o.state = StepInProgress

	byPartition := o.groupByPartition()
	for pi, p := range o.Partitions {
		parts := byPartition[pi]
		batch, err := o.Pusher.Push(ctx, o.Mesh, p.Start, p.Stop, o.Mass, o.Charge, o.Dt, o.SubCycles, parts)
		if err != nil {
			return fmt.Errorf("engine: orbit push failed for partition [%d,%d): %w", p.Start, p.Stop, err)
		}
		if err := o.Updater.Update(o.Mesh, p, batch); err != nil {
			return err
		}
	}

	if err := o.Reducer.FinishStep(o.Mesh); err != nil {
		return err
	}
	o.state = StepReady
	if o.ShowMsg {
		io.Pf("> step complete\n")
	}
	return nil
}

// groupByPartition buckets o.Particles by which partition's mesh-index
// range their seeding element falls into, preserving each particle's
// ordering within its partition (required so record (i,k) at offset
// (i-start)*K+k lines up with the oracle's own per-element ordering).
func (o *Engine) groupByPartition() [][]seed.Particle {
	out := make([][]seed.Particle, len(o.Partitions))
	for i, p := range o.Particles {
		idx := o.MeshIndex[i]
		for pi, part := range o.Partitions {
			if idx >= part.Start && idx < part.Stop {
				out[pi] = append(out[pi], p)
				break
			}
		}
	}
	return out
}

// Finalize releases the mesh's buffers and moves the engine to the
// Finished state.
func (o *Engine) Finalize() {
	if o.state == Finished {
		return
	}
	o.Mesh.Free()
	o.state = Finished
}
