// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package driver is the outer stage/timestep loop, mirroring gofem's
// fem.Main: it owns the set of blocks, drives them stage by stage through
// the task-list DAG, and performs the cross-block synchronization that
// spec.md §2 puts outside the per-block core ("a global synchronization
// hook between stages, coordinated outside the core"). Physics task bodies
// must already be registered (package physics's blank import, mirroring
// gofem's fem/allelements.go) before NewController is called.
package driver

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/philipjon/ATHENA/block"
	"github.com/philipjon/ATHENA/config"
	"github.com/philipjon/ATHENA/driver/metrics"
	"github.com/philipjon/ATHENA/integrator"
	"github.com/philipjon/ATHENA/tasklist"
)

// Rank carries this process's position in the MPI world, populated once at
// startup (spec.md §5 notes inter-block exchange is MPI-mediated via the
// collab.Transport family; this struct is the driver's own bookkeeping of
// "which process am I").
type Rank struct {
	Proc  int
	Nproc int
}

// NewRank reads gosl/mpi's process topology, following the same
// mpi.IsOn/mpi.Rank/mpi.Size pattern as gofem's fem.NewMain.
func NewRank() Rank {
	if !mpi.IsOn() {
		return Rank{Proc: 0, Nproc: 1}
	}
	return Rank{Proc: mpi.Rank(), Nproc: mpi.Size()}
}

// Controller owns every block on this process plus the shared task list and
// integrator descriptor they all execute against (spec.md §5: task lists
// and integrator descriptors are built once and shared read-only across
// blocks; registers and completion state are per-block).
type Controller struct {
	Blocks     []*block.Block
	TaskList   *tasklist.TaskList
	Descriptor *integrator.Descriptor
	Rank       Rank
	Verbose    bool

	// MaxSweepsPerStage bounds the cooperative scheduling loop described in
	// spec.md §4.5: in a real MPI run, a Fail status means "the neighbor's
	// message has not arrived yet", and the loop must keep coming back to
	// it across many outer iterations while other blocks make progress.
	MaxSweepsPerStage int

	// CFLNumber is the requested CFL number after integrator.ClampCFL
	// (spec.md §4.1, §7); callers deriving a per-block dt from the cell
	// size read this rather than the raw, unclamped config value.
	CFLNumber float64

	// Metrics records load-balance time per block per timestep; nil is a
	// valid, harmless no-op (SPEC_FULL.md §3 "Load-balance time
	// accounting").
	Metrics *metrics.Recorder
}

// NewController builds the shared task list for the named integrator scheme
// and physics toggles, clamps the requested CFL, and wires every block to
// that descriptor and task list (spec.md §4.1, §4.4).
func NewController(cfg *config.Data, toggles tasklist.Toggles, ndim int, blocks []*block.Block, rec *metrics.Recorder, verbose bool) (*Controller, error) {
	d, err := integrator.Lookup(cfg.Time.Integrator)
	if err != nil {
		return nil, err
	}
	tl, err := tasklist.Build(cfg.Time.Integrator, toggles)
	if err != nil {
		return nil, err
	}

	clamped := integrator.ClampCFL(d, ndim, cfg.Time.CFLNumber, toggles.FluidEvolved)

	for _, blk := range blocks {
		blk.Descriptor = d
	}

	return &Controller{
		Blocks:            blocks,
		TaskList:          tl,
		Descriptor:        d,
		Rank:              NewRank(),
		Verbose:           verbose,
		MaxSweepsPerStage: 1000,
		CFLNumber:         clamped,
		Metrics:           rec,
	}, nil
}

// Step advances every owned block by exactly one full timestep of length dt:
// for every stage 1..nstages it runs each block's Startup (which resets the
// completion state every stage and does the register bookkeeping only at
// stage 1, spec.md §8 property 4), then cooperatively round-robins RunSweep
// across all blocks so
// that one block's pending "message not yet arrived" Fail does not stall
// another block's independent progress (spec.md §4.5, §5), and finally
// advances each block's time by exactly dt (spec.md §8 property 1).
func (c *Controller) Step(dt float64) error {
	for _, blk := range c.Blocks {
		blk.Dt = dt
		blk.Abscissae = integrator.Compute(blk.Descriptor, dt)
	}

	for stage := 1; stage <= c.Descriptor.NStages; stage++ {
		for _, blk := range c.Blocks {
			blk.Startup(stage)
		}
		if err := c.runStageToCompletion(stage); err != nil {
			return err
		}
	}

	for _, blk := range c.Blocks {
		blk.T += dt
		c.Metrics.ObserveBlockLBTime(blk.ID, blk.LBTimeTotal)
	}
	c.Metrics.IncTimestep()
	return nil
}

// runStageToCompletion round-robins RunSweep across every block until all
// are done or the sweep budget is exhausted, so independently-progressing
// blocks are never blocked behind one waiting on a not-yet-arrived message.
func (c *Controller) runStageToCompletion(stage int) error {
	remaining := make(map[int]bool, len(c.Blocks))
	for i := range c.Blocks {
		remaining[i] = true
	}
	for sweep := 0; sweep < c.MaxSweepsPerStage && len(remaining) > 0; sweep++ {
		for i := range c.Blocks {
			if !remaining[i] {
				continue
			}
			done, err := tasklist.RunSweep(c.TaskList, c.Blocks[i], stage, c.Verbose)
			if err != nil {
				return err
			}
			if done {
				delete(remaining, i)
			}
		}
	}
	if len(remaining) > 0 {
		chk.Panic("driver: stage %d did not complete for %d block(s) within %d sweeps", stage, len(remaining), c.MaxSweepsPerStage)
	}
	return nil
}

// Run repeatedly calls Step with dtFunc's proposed timestep until every
// block's time reaches tFinal, mirroring gofem's fem.Main.Run time loop
// (stage-by-stage, then a full transient loop to Tf) but driven by this
// package's per-timestep Step instead of a Newton iteration.
func (c *Controller) Run(tFinal float64, dtFunc func() float64) error {
	if len(c.Blocks) == 0 {
		return nil
	}
	start := time.Now()
	for c.Blocks[0].T < tFinal {
		dt := dtFunc()
		if c.Blocks[0].T+dt > tFinal {
			dt = tFinal - c.Blocks[0].T
		}
		if err := c.Step(dt); err != nil {
			return err
		}
		if c.Verbose && c.Rank.Proc == 0 {
			io.Pf("t = %v / %v\n", c.Blocks[0].T, tFinal)
		}
	}
	if c.Verbose && c.Rank.Proc == 0 {
		io.Pf("> done in %v\n", time.Since(start))
	}
	return nil
}
