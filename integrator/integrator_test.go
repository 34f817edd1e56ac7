// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestLookupKnownSchemes(tst *testing.T) {
	names := []string{"rk1", "vl2", "rk2", "rk3", "rk4", "ssprk5_4"}
	for _, name := range names {
		d, err := Lookup(name)
		if err != nil {
			tst.Errorf("Lookup(%q) failed: %v", name, err)
			continue
		}
		if d.Name != name {
			tst.Errorf("Lookup(%q).Name = %q", name, d.Name)
		}
		if len(d.Stages) != d.NStages {
			tst.Errorf("%q: len(Stages)=%d != NStages=%d", name, len(d.Stages), d.NStages)
		}
	}
}

func TestLookupUnknownScheme(tst *testing.T) {
	_, err := Lookup("not-a-scheme")
	if err == nil {
		tst.Fatal("expected error for unknown integrator")
	}
}

func TestVl2CflByDimension(tst *testing.T) {
	d, err := Lookup("vl2")
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "vl2 1D", 1e-15, d.CFLLimitForDim(1), 1.0)
	chk.Scalar(tst, "vl2 2D", 1e-15, d.CFLLimitForDim(2), 0.5)
	chk.Scalar(tst, "vl2 3D", 1e-15, d.CFLLimitForDim(3), ONE_THIRD)
}

// S5: scheme=vl2 in 3D with requested CFL=1.0 => clamped to 1/3.
func TestClampCFL(tst *testing.T) {
	d, _ := Lookup("vl2")
	eff := ClampCFL(d, 3, 1.0, true)
	chk.Scalar(tst, "clamped CFL", 1e-15, eff, ONE_THIRD)
}

func TestClampCFLSkippedWhenFluidNotEvolved(tst *testing.T) {
	d, _ := Lookup("vl2")
	eff := ClampCFL(d, 3, 1.0, false)
	chk.Scalar(tst, "unclamped CFL", 1e-15, eff, 1.0)
}

// S3 abscissa invariant: for rk1,rk2,rk3,ssprk5_4, abs[nstages][0] == dt
// exactly; for vl2,rk4, within floating rounding.
func TestAbscissaFinalStageEqualsDt(tst *testing.T) {
	dt := 0.37
	exact := []string{"rk1", "rk2", "rk3", "ssprk5_4"}
	for _, name := range exact {
		d, _ := Lookup(name)
		table := Compute(d, dt)
		got := table[d.NStages][0]
		if math.Abs(got-dt) > 1e-12 {
			tst.Errorf("%q: abs[last][0] = %v, want %v (within 1e-12)", name, got, dt)
		}
	}
	approx := []string{"vl2", "rk4"}
	for _, name := range approx {
		d, _ := Lookup(name)
		table := Compute(d, dt)
		got := table[d.NStages][0]
		if !approxEqual(got, dt, 1e-9) {
			tst.Errorf("%q: abs[last][0] = %v, want ~%v", name, got, dt)
		}
	}
}

func TestPenultimateHackOnlySsprk54(tst *testing.T) {
	for name, want := range map[string]int{
		"rk1": 0, "vl2": 0, "rk2": 0, "rk3": 0, "rk4": 0, "ssprk5_4": 4,
	} {
		d, _ := Lookup(name)
		if d.PenultimateHackStage != want {
			tst.Errorf("%q: PenultimateHackStage = %d, want %d", name, d.PenultimateHackStage, want)
		}
	}
}

func TestIdentityAverageDetection(tst *testing.T) {
	d, _ := Lookup("rk1")
	if !d.Stages[0].IsIdentityAverage() {
		tst.Error("rk1 stage 1 should be an identity average (γ1,γ2,γ3)=(0,1,0)")
	}
	d2, _ := Lookup("rk4")
	if d2.Stages[2].IsIdentityAverage() {
		tst.Error("rk4 stage 3 should not be an identity average")
	}
}
