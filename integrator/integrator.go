// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integrator holds the low-storage 2S/3S* Runge-Kutta weights for
// every supported explicit time-integration scheme and the per-stage
// abscissa bookkeeping that source-term evaluations rely on.
package integrator

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ONE_THIRD is the vl2 CFL limit in 3D.
const ONE_THIRD = 1.0 / 3.0

// penultimate-hack beta used only by ssprk5_4 at stage 4.
const SSPRK54PenultimateBeta = 0.063692468666290

// StageWeights holds the (δ, γ1, γ2, γ3, β) tuple for one stage.
type StageWeights struct {
	Delta  float64
	Gamma1 float64
	Gamma2 float64
	Gamma3 float64
	Beta   float64
}

// IsIdentityAverage reports whether (γ1,γ2,γ3) degenerate to (0,1,0), the
// case in which the weighted average may be implemented as a register
// alias swap instead of an arithmetic pass (spec.md §3, §9).
func (w StageWeights) IsIdentityAverage() bool {
	return w.Gamma1 == 0 && w.Gamma2 == 1 && w.Gamma3 == 0
}

// Descriptor is a named integrator scheme: its stage count, its stability
// limit, and its stage weight table.
type Descriptor struct {
	Name     string
	NStages  int
	CFLLimit float64 // stands unconditionally, except for "vl2" (see CFLLimitForDim)
	Stages   []StageWeights

	// PenultimateHackStage is the 1-based stage at which the SSPRK(5,4)
	// scheme additionally writes into the u2 register (0 for every other
	// scheme). Kept local to this descriptor, not leaked into the task
	// bodies' understanding of any other scheme (spec.md §9).
	PenultimateHackStage int
}

// CFLLimitForDim returns the effective CFL stability limit for this scheme
// in the given spatial dimension. Only "vl2" depends on dimensionality.
func (d *Descriptor) CFLLimitForDim(ndim int) float64 {
	if d.Name != "vl2" {
		return d.CFLLimit
	}
	switch ndim {
	case 1:
		return 1.0
	case 2:
		return 0.5
	case 3:
		return ONE_THIRD
	default:
		chk.Panic("vl2 CFL limit requires ndim in {1,2,3}; ndim=%d is invalid", ndim)
	}
	return 0
}

// registry holds the fixed literal scheme table (spec.md §4.1, §6).
var registry = map[string]*Descriptor{
	"rk1": {
		Name: "rk1", NStages: 1, CFLLimit: 1.0,
		Stages: []StageWeights{
			// δ=1 seeds u1←u at the only stage; δ=0 would drop the uⁿ term
			// once the identity average swaps u1 into u (spec.md §4.1;
			// matches the original Athena++ rk1 coefficients).
			{Delta: 1, Gamma1: 0, Gamma2: 1, Gamma3: 0, Beta: 1},
		},
	},
	"vl2": {
		Name: "vl2", NStages: 2, CFLLimit: 1.0,
		Stages: []StageWeights{
			{Delta: 1, Gamma1: 0, Gamma2: 1, Gamma3: 0, Beta: 0.5},
			{Delta: 0, Gamma1: 0, Gamma2: 1, Gamma3: 0, Beta: 1.0},
		},
	},
	"rk2": {
		Name: "rk2", NStages: 2, CFLLimit: 1.0,
		Stages: []StageWeights{
			{Delta: 1, Gamma1: 0, Gamma2: 1, Gamma3: 0, Beta: 1},
			{Delta: 0, Gamma1: 0.5, Gamma2: 0.5, Gamma3: 0, Beta: 0.5},
		},
	},
	"rk3": {
		Name: "rk3", NStages: 3, CFLLimit: 1.0,
		Stages: []StageWeights{
			{Delta: 1, Gamma1: 0, Gamma2: 1, Gamma3: 0, Beta: 1},
			{Delta: 0, Gamma1: 0.25, Gamma2: 0.75, Gamma3: 0, Beta: 0.25},
			{Delta: 0, Gamma1: 2.0 / 3.0, Gamma2: 1.0 / 3.0, Gamma3: 0, Beta: 2.0 / 3.0},
		},
	},
	"rk4": {
		// Ketcheson (2010) Table 2 coefficients, verbatim per spec.md §6.
		Name: "rk4", NStages: 4, CFLLimit: 1.3925,
		Stages: []StageWeights{
			{Delta: 1.0, Gamma1: 0.0, Gamma2: 1.0, Gamma3: 0.0, Beta: 1.193743905974738},
			{Delta: 0.217683334308543, Gamma1: 0.121098479554482, Gamma2: 0.721781678111411, Gamma3: 0.0, Beta: 0.099279895495783},
			{Delta: 1.065841341361089, Gamma1: -3.843833699660025, Gamma2: 2.121209265338722, Gamma3: 0.0, Beta: 1.131678018054042},
			{Delta: 0.0, Gamma1: 0.546370891121863, Gamma2: 0.198653035682705, Gamma3: 0.0, Beta: 0.310665766509336},
		},
	},
	"ssprk5_4": {
		// Gottlieb (2009) coefficients, verbatim per spec.md §6.
		Name: "ssprk5_4", NStages: 5, CFLLimit: 1.3925, PenultimateHackStage: 4,
		Stages: []StageWeights{
			{Delta: 1.0, Gamma1: 0.0, Gamma2: 1.0, Gamma3: 0.0, Beta: 0.391752226571890},
			{Delta: 0.0, Gamma1: 0.555629506348765, Gamma2: 0.444370493651235, Gamma3: 0.0, Beta: 0.368410593050371},
			{Delta: 0.517231671970585, Gamma1: 0.379898148511597, Gamma2: 0.0, Gamma3: 0.620101851488403, Beta: 0.251891774271694},
			{Delta: 0.096059710526147, Gamma1: 0.821920045606868, Gamma2: 0.0, Gamma3: 0.178079954393132, Beta: 0.544974750228521},
			{Delta: 0.0, Gamma1: 0.386708617503268, Gamma2: 1.0, Gamma3: 1.0, Beta: 0.226007483236906},
		},
	},
}

// Lookup returns the named integrator descriptor, or a fatal construction
// error if the name is unknown (spec.md §4.4, §7).
func Lookup(name string) (*Descriptor, error) {
	d, ok := registry[name]
	if !ok {
		return nil, chk.Err("integrator: unknown integrator %q", name)
	}
	return d, nil
}

// ClampCFL clamps a requested CFL number to the scheme's stability limit for
// the given dimensionality, warning (not failing) on overflow, per spec.md
// §4.1 and §7. When the fluid is not evolved the request passes through
// unclamped (there is nothing whose stability the CFL number constrains).
func ClampCFL(d *Descriptor, ndim int, requested float64, fluidEvolved bool) float64 {
	if !fluidEvolved {
		return requested
	}
	limit := d.CFLLimitForDim(ndim)
	if requested > limit {
		io.PfYel("integrator: warning: requested CFL %v exceeds %q stability limit %v; clamping\n", requested, d.Name, limit)
		return limit
	}
	return requested
}

// approxEqual is used by tests needing floating tolerance comparisons
// against dt (spec.md §8 property 3, vl2/rk4 "within floating rounding").
func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
