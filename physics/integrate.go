// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package physics implements the task bodies of spec.md §4.6: thin
// wrappers that pull weights from the active integrator descriptor and
// delegate to the external collaborators of package collab. Each function
// here is registered into the tasklist catalogue by this package's init(),
// mirroring gofem's fem/allelements.go ("enforce loading of all
// elements").
package physics

import (
	"github.com/philipjon/ATHENA/block"
	"github.com/philipjon/ATHENA/collab"
	"github.com/philipjon/ATHENA/integrator"
	"github.com/philipjon/ATHENA/tasklist"
)

// betaConvention selects which of collab.FluxDivergence's two methods the
// ssprk5_4 penultimate hack uses for a given family; the ordinary integrate
// step always calls AddFluxDivergence with weight=β·dt. Hydro, field and
// scalars' hack branches also fold dt at the call site (AddFluxDivergence);
// radiation's penultimate branch passes β raw to
// AddFluxDivergenceToAverage, which is specified to fold dt internally.
// This is the resolution of spec.md §9's open question (see DESIGN.md).
type betaConvention int

const (
	betaScaledByDt betaConvention = iota // weight = β·dt, AddFluxDivergence
	betaRaw                              // weight = β,    AddFluxDivergenceToAverage
)

// integrateFamily implements the shared 3S*/2S algebra of spec.md §4.6
// "Integrate family F": the two weighted-average passes, the
// flux-divergence addition, and (when the active scheme is ssprk5_4 and
// this is its hack stage) the penultimate-hack write into u2. geomSource,
// when non-nil, adds hydro's geometric source term at the same weight.
func integrateFamily(blk *block.Block, stage int, regs *block.Registers, fluxDiv collab.FluxDivergence, hackConvention betaConvention, geomSource collab.SourceTerm) tasklist.Status {
	w := blk.Descriptor.Stages[stage-1]
	dt := blk.Dt

	regs.Step1(w, dt)
	regs.Step2(w)

	if err := fluxDiv.AddFluxDivergence(regs.U, w.Beta*dt); err != nil {
		return tasklist.Fail
	}
	if geomSource != nil && geomSource.HasSources() {
		midT := blk.T + blk.Abscissae[stage-1][0]
		if err := geomSource.AddHydroSourceTerms(regs.U, midT, w.Beta*dt); err != nil {
			return tasklist.Fail
		}
	}

	if blk.Descriptor.PenultimateHackStage == stage {
		regs.PenultimateHack()
		beta := integrator.SSPRK54PenultimateBeta
		var err error
		switch hackConvention {
		case betaScaledByDt:
			err = fluxDiv.AddFluxDivergence(regs.U2, beta*dt)
		case betaRaw:
			err = fluxDiv.AddFluxDivergenceToAverage(regs.U2, beta)
		}
		if err != nil {
			return tasklist.Fail
		}
	}
	return tasklist.Success
}

func integrateHydro(blk *block.Block, stage int) tasklist.Status {
	return integrateFamily(blk, stage, blk.Hydro, blk.Collab.HydroFluxDiv, betaScaledByDt, blk.Collab.HydroSource)
}

func integrateField(blk *block.Block, stage int) tasklist.Status {
	return integrateFamily(blk, stage, blk.Field, blk.Collab.FieldFluxDiv, betaScaledByDt, nil)
}

func integrateScalars(blk *block.Block, stage int) tasklist.Status {
	return integrateFamily(blk, stage, blk.Scalars, blk.Collab.ScalarFluxDiv, betaScaledByDt, nil)
}

func integrateRadiation(blk *block.Block, stage int) tasklist.Status {
	return integrateFamily(blk, stage, blk.Rad, blk.Collab.RadFluxDiv, betaRaw, nil)
}

func init() {
	tasklist.Register(tasklist.IntHyd, integrateHydro)
	tasklist.Register(tasklist.IntFld, integrateField)
	tasklist.Register(tasklist.IntSclr, integrateScalars)
	tasklist.Register(tasklist.IntRad, integrateRadiation)
}
