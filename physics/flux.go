// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/philipjon/ATHENA/block"
	"github.com/philipjon/ATHENA/collab"
	"github.com/philipjon/ATHENA/tasklist"
)

// runFluxKernel is the shared body for CALC_*FLX and DIFFUSE_* tasks: both
// simply ask their family's collaborator to (re)compute the flux arrays
// (spec.md §4.3, §4.4).
func runFluxKernel(k collab.FluxKernel) tasklist.Status {
	if k == nil {
		return tasklist.Success
	}
	if err := k.ComputeFlux(); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

func calcHydroFlux(blk *block.Block, stage int) tasklist.Status {
	return runFluxKernel(blk.Collab.HydroFluxKernel)
}
func calcFieldFlux(blk *block.Block, stage int) tasklist.Status {
	return runFluxKernel(blk.Collab.FieldFluxKernel)
}
func calcScalarFlux(blk *block.Block, stage int) tasklist.Status {
	return runFluxKernel(blk.Collab.ScalarFluxKernel)
}
func calcRadiationFlux(blk *block.Block, stage int) tasklist.Status {
	return runFluxKernel(blk.Collab.RadFluxKernel)
}

func diffuseHydro(blk *block.Block, stage int) tasklist.Status {
	return runFluxKernel(blk.Collab.HydroDiffusion)
}
func diffuseField(blk *block.Block, stage int) tasklist.Status {
	return runFluxKernel(blk.Collab.FieldDiffusion)
}
func diffuseScalars(blk *block.Block, stage int) tasklist.Status {
	return runFluxKernel(blk.Collab.ScalarDiffusion)
}

func init() {
	tasklist.Register(tasklist.CalcHydFlx, calcHydroFlux)
	tasklist.Register(tasklist.CalcFldFlx, calcFieldFlux)
	tasklist.Register(tasklist.CalcSclrFlx, calcScalarFlux)
	tasklist.Register(tasklist.CalcRadFlx, calcRadiationFlux)

	tasklist.Register(tasklist.DiffuseHyd, diffuseHydro)
	tasklist.Register(tasklist.DiffuseFld, diffuseField)
	tasklist.Register(tasklist.DiffuseSclr, diffuseScalars)
}
