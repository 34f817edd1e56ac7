// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/philipjon/ATHENA/block"
	"github.com/philipjon/ATHENA/tasklist"
)

// sourceWeight applies blk.Collab.SourceTimeProfile, when set, as a
// multiplier on the stage's β·dt coefficient before it reaches the source
// collaborator — the same role gofem's fem.go "dtFunc fun.Func" plays for
// its own time-dependent coefficient (spec.md §4.6; DESIGN.md).
func sourceWeight(blk *block.Block, t, base float64) float64 {
	if blk.Collab.SourceTimeProfile == nil {
		return base
	}
	return base * blk.Collab.SourceTimeProfile.F(t, nil)
}

// addSourceTermsHydro implements spec.md §4.6 "AddSourceTermsHydro":
// evaluates time-dependent sources at t + abs[l-1][0] with coefficient
// β_l·dt, skipping (via Next, preserving dependencies per spec.md §7) when
// there are no sources or the fluid is not evolved.
func addSourceTermsHydro(blk *block.Block, stage int) tasklist.Status {
	if !blk.FluidEvolved || blk.Collab.HydroSource == nil || !blk.Collab.HydroSource.HasSources() {
		return tasklist.Next
	}
	w := blk.Descriptor.Stages[stage-1]
	t := blk.T + blk.Abscissae[stage-1][0]
	weight := sourceWeight(blk, t, w.Beta*blk.Dt)
	if err := blk.Collab.HydroSource.AddHydroSourceTerms(blk.Hydro.U, t, weight); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

func addSourceTermsRadiation(blk *block.Block, stage int) tasklist.Status {
	if !blk.RadiationEnabled || blk.Collab.RadSource == nil {
		return tasklist.Next
	}
	w := blk.Descriptor.Stages[stage-1]
	t := blk.T + blk.Abscissae[stage-1][0]
	weight := sourceWeight(blk, t, w.Beta*blk.Dt)
	if err := blk.Collab.RadSource.AddRadiationSourceTerms(blk.Rad.U, t, weight); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

func init() {
	tasklist.Register(tasklist.SrctermHyd, addSourceTermsHydro)
	tasklist.Register(tasklist.SrctermRad, addSourceTermsRadiation)
}
