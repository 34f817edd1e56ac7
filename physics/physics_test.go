// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/philipjon/ATHENA/block"
	"github.com/philipjon/ATHENA/integrator"
	"github.com/philipjon/ATHENA/tasklist"
)

// fakeFluxDiv is a no-op flux-divergence collaborator: Div(F) = 0, so the
// integrate step degenerates to the pure register algebra, which is what
// S4 (ssprk5_4, zero flux, bit-exact) exercises.
type fakeFluxDiv struct{ calls int }

func (f *fakeFluxDiv) AddFluxDivergence(u []float64, weight float64) error {
	f.calls++
	return nil
}
func (f *fakeFluxDiv) AddFluxDivergenceToAverage(u []float64, beta float64) error {
	f.calls++
	return nil
}

func newHydroBlock(d *integrator.Descriptor, dt float64, u0 float64) *block.Block {
	needsU2 := d.PenultimateHackStage > 0
	regs := block.NewRegisters(1, needsU2, false)
	regs.U[0] = u0
	blk := &block.Block{
		ID:           1,
		FluidEvolved: true,
		Descriptor:   d,
		Dt:           dt,
		Abscissae:    integrator.Compute(d, dt),
	}
	blk.Hydro = regs
	blk.Collab.HydroFluxDiv = &fakeFluxDiv{}
	return blk
}

// S4: scheme=ssprk5_4, zero flux divergence => a consistent RK scheme
// applied to du/dt=0 must reproduce the initial value to floating
// rounding after a full timestep (spec.md §8 property 3).
func TestSsprk54ZeroFluxPreservesU(tst *testing.T) {
	d, _ := integrator.Lookup("ssprk5_4")
	dt := 0.2
	const u0 = 3.5
	blk := newHydroBlock(d, dt, u0)
	blk.Hydro.ResetU1()
	blk.Hydro.SeedU2FromU()
	for stage := 1; stage <= d.NStages; stage++ {
		status := integrateHydro(blk, stage)
		if status != tasklist.Success {
			tst.Fatalf("stage %d: status = %v", stage, status)
		}
	}
	if got := blk.Hydro.U[0]; got < u0-1e-9 || got > u0+1e-9 {
		tst.Fatalf("u = %v, want %v (within rounding)", got, u0)
	}
}

// Identity-average degeneracy: rk1's single stage has (γ1,γ2,γ3)=(0,1,0),
// so integrateHydro must not write new values into U beyond what the swap
// already produced (spec.md §8 property 5).
func TestIdentityAverageIsASwapNotACopy(tst *testing.T) {
	d, _ := integrator.Lookup("rk1")
	blk := newHydroBlock(d, 0.5, 0.0)
	before := blk.Hydro.U1
	integrateHydro(blk, 1)
	after := blk.Hydro.U
	if &before[0] != &after[0] {
		tst.Error("expected U to alias the former U1 storage after an identity-average swap")
	}
}

type fakeSource struct {
	has    bool
	called bool
	lastT  float64
}

func (f *fakeSource) HasSources() bool { return f.has }
func (f *fakeSource) AddHydroSourceTerms(u []float64, t, weight float64) error {
	f.called = true
	f.lastT = t
	return nil
}

func TestAddSourceTermsHydroSkipsWhenDisabled(tst *testing.T) {
	d, _ := integrator.Lookup("rk1")
	blk := newHydroBlock(d, 0.5, 0.0)
	blk.Collab.HydroSource = &fakeSource{has: false}
	status := addSourceTermsHydro(blk, 1)
	if status != tasklist.Next {
		tst.Fatalf("expected Next when no sources are configured, got %v", status)
	}
}

func TestAddSourceTermsHydroRunsWhenEnabled(tst *testing.T) {
	d, _ := integrator.Lookup("rk1")
	blk := newHydroBlock(d, 0.5, 0.0)
	src := &fakeSource{has: true}
	blk.Collab.HydroSource = src
	status := addSourceTermsHydro(blk, 1)
	if status != tasklist.Success {
		tst.Fatalf("expected Success, got %v", status)
	}
	if !src.called {
		tst.Fatal("expected AddHydroSourceTerms to be called")
	}
}

type fakeEOS struct{ calls int }

func (f *fakeEOS) ConservedToPrimitive(cons, prim []float64) error {
	f.calls++
	copy(prim, cons)
	return nil
}

func TestCons2PrimSwapsPrimitiveRegisters(tst *testing.T) {
	d, _ := integrator.Lookup("rk1")
	blk := newHydroBlock(d, 0.5, 0.0)
	blk.Hydro = block.NewRegisters(1, false, true)
	blk.Hydro.U[0] = 7.0
	eos := &fakeEOS{}
	blk.Collab.HydroEOS = eos
	oldW := blk.Hydro.W
	status := cons2prim(blk, 1)
	if status != tasklist.Success {
		tst.Fatalf("status = %v", status)
	}
	if eos.calls != 1 {
		tst.Fatalf("expected EOS called once, got %d", eos.calls)
	}
	if blk.Hydro.W[0] != 7.0 {
		tst.Fatalf("W[0] = %v, want 7.0", blk.Hydro.W[0])
	}
	if &blk.Hydro.W1[0] != &oldW[0] {
		tst.Fatal("expected W1 to alias the former W storage after swap")
	}
}

func TestFinalStageOnlyGating(tst *testing.T) {
	d, _ := integrator.Lookup("rk2")
	blk := newHydroBlock(d, 0.1, 0.0)
	var calls int
	fn := func() error { calls++; return nil }

	status := finalStageOnly(blk, 1, fn)
	if status != tasklist.Success || calls != 0 {
		tst.Fatalf("stage 1 of 2 should not invoke fn: calls=%d status=%v", calls, status)
	}
	status = finalStageOnly(blk, 2, fn)
	if status != tasklist.Success || calls != 1 {
		tst.Fatalf("final stage should invoke fn exactly once: calls=%d status=%v", calls, status)
	}
}
