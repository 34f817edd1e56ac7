// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package block owns the per-mesh-block storage registers, completion
// state, and external-collaborator handles that the task-list executor and
// physics task bodies operate on (spec.md §3 "Storage registers per
// block"). It mirrors the role of gofem's ele.Solution: a plain data holder
// with a handful of lifecycle methods, no task-dispatch logic of its own.
package block

import (
	"time"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"

	"github.com/philipjon/ATHENA/collab"
	"github.com/philipjon/ATHENA/integrator"
)

// Registers holds the (u, u1, u2) triplet for one evolved field family plus,
// for hydro and radiation, the primitive companions (w, w1).
//
// u2 is nil unless the active integrator needs it (only ssprk5_4, spec.md
// §3). Aliases are swapped by exchanging slice headers, never by copying
// the underlying arrays (spec.md §9 "Cyclic register aliases").
type Registers struct {
	U, U1, U2 []float64
	W, W1     []float64 // primitives; empty for field/scalars, used by hydro/radiation
}

// NewRegisters allocates a zeroed triplet of length n. u2 is allocated only
// when withU2 is true.
func NewRegisters(n int, withU2, withPrimitives bool) *Registers {
	r := &Registers{
		U:  make([]float64, n),
		U1: make([]float64, n),
	}
	if withU2 {
		r.U2 = make([]float64, n)
	}
	if withPrimitives {
		r.W = make([]float64, n)
		r.W1 = make([]float64, n)
	}
	return r
}

// ResetU1 zero-clears u1, per spec.md §8 property 4 ("StartupTaskList
// zero-clears u1 ... at stage 1").
func (r *Registers) ResetU1() {
	la.VecFill(r.U1, 0)
}

// SeedU2FromU copies u into u2 at stage 1 for ssprk5_4 (spec.md §3, §8
// property 4).
func (r *Registers) SeedU2FromU() {
	if r.U2 == nil {
		return
	}
	la.VecCopy(r.U2, 1, r.U)
}

// Step1 performs the first of the two weighted averages of the integrate
// task body: u1 ← 1·u1 + δ·u + 0·u2 (spec.md §4.6).
func (r *Registers) Step1(w integrator.StageWeights, dt float64) {
	for i := range r.U1 {
		r.U1[i] = r.U1[i] + w.Delta*r.U[i]
	}
}

// Step2 performs the second weighted average: u ← γ1·u + γ2·u1 + γ3·u2.
// When the weights degenerate to the identity (γ1,γ2,γ3)=(0,1,0) this is a
// handle swap, not an arithmetic pass (spec.md §3, §8 property 5, §9).
func (r *Registers) Step2(w integrator.StageWeights) {
	if w.IsIdentityAverage() {
		r.U, r.U1 = r.U1, r.U
		return
	}
	for i := range r.U {
		v := w.Gamma1 * r.U[i]
		v += w.Gamma2 * r.U1[i]
		if r.U2 != nil {
			v += w.Gamma3 * r.U2[i]
		}
		r.U[i] = v
	}
}

// PenultimateHack implements the ssprk5_4 stage-4 irregularity: it
// overwrites u2 (which still holds uⁿ, seeded at stage 1) with -1·u2 ahead
// of the caller's flux-divergence addition (spec.md §4.6, §9). No-op if u2
// is not allocated.
func (r *Registers) PenultimateHack() {
	if r.U2 == nil {
		return
	}
	for i := range r.U2 {
		r.U2[i] = -r.U2[i]
	}
}

// SwapPrimitives exchanges w and w1, used by CONS2PRIM once the new
// primitives have been computed into w1 (spec.md §4.6).
func (r *Registers) SwapPrimitives() {
	r.W, r.W1 = r.W1, r.W
}

// CompletionState is the per-block-per-stage bookkeeping of spec.md §3: a
// bitmask of finished task ids plus a count. It is stored as a plain uint64
// (not tasklist.TaskID) so that block never needs to import tasklist.
type CompletionState struct {
	Mask  uint64
	Count int
}

// Reset clears the completion state at the start of a stage.
func (c *CompletionState) Reset() {
	c.Mask = 0
	c.Count = 0
}

// Collaborators groups every external capability a block's task bodies may
// call into, all declared out of scope by spec.md §1. Families that are not
// evolved (e.g. MHD off) simply leave the corresponding fields nil; task
// bodies for disabled families are never added to the task list by the
// builder, so a nil field is never dereferenced.
type Collaborators struct {
	HydroEOS  collab.EOS
	ScalarEOS collab.EOS
	RadEOS    collab.EOS

	HydroFluxKernel  collab.FluxKernel
	FieldFluxKernel  collab.FluxKernel
	ScalarFluxKernel collab.FluxKernel
	RadFluxKernel    collab.FluxKernel

	HydroDiffusion  collab.FluxKernel
	FieldDiffusion  collab.FluxKernel
	ScalarDiffusion collab.FluxKernel

	HydroFluxDiv  collab.FluxDivergence
	FieldFluxDiv  collab.FluxDivergence
	ScalarFluxDiv collab.FluxDivergence
	RadFluxDiv    collab.FluxDivergence

	HydroSource collab.SourceTerm
	RadSource   collab.RadiationSource

	// SourceTimeProfile optionally modulates both families' source weight
	// by a function of time before it reaches the collaborator, the same
	// role gofem's fem.go plays for its own "dtFunc fun.Func" coefficient
	// function. Nil means "no modulation" (weight passes through as-is).
	SourceTimeProfile fun.Func

	HydroBoundary  collab.Transport
	FieldBoundary  collab.Transport
	ScalarBoundary collab.Transport
	RadBoundary    collab.Transport

	HydroFluxTransport  collab.FluxTransport
	FieldFluxTransport  collab.FluxTransport
	ScalarFluxTransport collab.FluxTransport
	RadFluxTransport    collab.FluxTransport

	HydroShear collab.ShearingBoxTransport
	FieldShear collab.ShearingBoxTransport
	EMFShear   collab.ShearingBoxTransport

	Prolongation collab.Prolongation
	Opacity      collab.Opacity
	AMR          collab.AMRFlagger
	UserWork     collab.UserWork
	TimestepProp collab.TimestepProposer
	PhysBoundary collab.PhysicalBoundary
}

// Block is one mesh block's worth of registers, completion state, and
// collaborator handles, owned exclusively by that block's tasks (spec.md
// §5 "Shared resources").
type Block struct {
	ID int

	MHD              bool
	NScalars         int
	RadiationEnabled bool
	Multilevel       bool
	ShearingBox      bool
	STS              bool
	FluidEvolved     bool

	Hydro   *Registers
	Field   *Registers
	Scalars *Registers
	Rad     *Registers

	FluxX1, FluxX2, FluxX3 []float64

	// per-timestep integrator context, set once by the driver before the
	// stage loop begins (spec.md §4.2).
	Descriptor *integrator.Descriptor
	Abscissae  integrator.Table
	Dt         float64
	T          float64 // block time at the start of the current timestep

	Completion CompletionState
	Collab     Collaborators

	// LBTimeTotal accumulates wall time for tasks flagged lb_time=true
	// (spec.md §3; SPEC_FULL.md §3 "Load-balance time accounting").
	LBTimeTotal time.Duration
}

// AccumulateLBTime adds d to the block's load-balance time total.
func (b *Block) AccumulateLBTime(d time.Duration) {
	b.LBTimeTotal += d
}

// Startup implements StartupTaskList (spec.md §4.7, §5, §8 property 4): the
// completion mask is reset at the start of every stage, since each stage
// runs its own scan-to-fixpoint over the full task list; the register
// bookkeeping — zero-clearing u1 and, for integrators that need the extra
// register, seeding u2 ← u — happens only at stage 1.
func (b *Block) Startup(stage int) {
	b.Completion.Reset()
	if stage != 1 {
		return
	}
	needsU2 := b.Descriptor != nil && b.Descriptor.PenultimateHackStage > 0
	for _, r := range b.evolvedRegisterSets() {
		r.ResetU1()
		if needsU2 {
			r.SeedU2FromU()
		}
	}
}

func (b *Block) evolvedRegisterSets() []*Registers {
	var out []*Registers
	if b.FluidEvolved && b.Hydro != nil {
		out = append(out, b.Hydro)
	}
	if b.MHD && b.Field != nil {
		out = append(out, b.Field)
	}
	if b.NScalars > 0 && b.Scalars != nil {
		out = append(out, b.Scalars)
	}
	if b.RadiationEnabled && b.Rad != nil {
		out = append(out, b.Rad)
	}
	return out
}
