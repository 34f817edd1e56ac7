// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import "gonum.org/v1/gonum/floats"

// Abscissa is the per-register effective time offset after a stage,
// reg ∈ {0: u, 1: u1, 2: u2} (spec.md §3 "Stage abscissae").
type Abscissa [3]float64

// Table holds abs[stage][reg] for stage = 0..nstages.
type Table []Abscissa

// NewTable seeds abs[0][*] = 0 for an integrator with the given stage count
// (spec.md §4.2: "initialize abs[0][*] = 0").
func NewTable(nstages int) Table {
	return make(Table, nstages+1)
}

// Advance computes abs[l][*] from abs[l-1][*] for one stage, following the
// algebraic relations of spec.md §4.2:
//
//	abs[l][1] = abs[l-1][1] + δ_l · abs[l-1][0]
//	abs[l][0] = γ1_l·abs[l-1][0] + γ2_l·abs[l][1] + γ3_l·abs[l-1][2] + β_l·dt
//	abs[l][2] = 0
func (t Table) Advance(l int, w StageWeights, dt float64) {
	prev := t[l-1]
	reg1 := prev[1] + w.Delta*prev[0]

	// weighted sum over (prev[0], reg1, prev[2]) with weights (γ1,γ2,γ3),
	// plus β·dt — expressed as a dot product so the three-register algebra
	// is exercised the same way regardless of how many terms are zero.
	terms := []float64{prev[0], reg1, prev[2]}
	weights := []float64{w.Gamma1, w.Gamma2, w.Gamma3}
	reg0 := floats.Dot(terms, weights) + w.Beta*dt

	t[l] = Abscissa{reg0, reg1, 0}
}

// Compute fills the full stage-abscissa table for one timestep of the given
// descriptor, starting from t[0] = {0,0,0}. At the descriptor's
// penultimate-hack stage (ssprk5_4 stage 4) u2 is rewritten as
// -uⁿ + β′·dt·Div(F), so its offset after that stage is β′·dt instead of 0.
func Compute(d *Descriptor, dt float64) Table {
	t := NewTable(d.NStages)
	for l := 1; l <= d.NStages; l++ {
		t.Advance(l, d.Stages[l-1], dt)
		if l == d.PenultimateHackStage {
			t[l][2] = SSPRK54PenultimateBeta * dt
		}
	}
	return t
}
