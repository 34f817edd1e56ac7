// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/philipjon/ATHENA/block"
	"github.com/philipjon/ATHENA/tasklist"
)

// finalStageOnly gates USERWORK, NEW_DT, and FLAG_AMR so they run only on
// the integrator's last stage, short-circuiting with Success on earlier
// stages without doing any work (spec.md §4.6: "execute only when stage ==
// nstages; return success immediately on earlier stages").
func finalStageOnly(blk *block.Block, stage int, fn func() error) tasklist.Status {
	if blk.Descriptor == nil || stage != blk.Descriptor.NStages {
		return tasklist.Success
	}
	if fn == nil {
		return tasklist.Success
	}
	if err := fn(); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

func physicalBoundary(blk *block.Block, stage int) tasklist.Status {
	if blk.Collab.PhysBoundary == nil {
		return tasklist.Next
	}
	if err := blk.Collab.PhysBoundary.Apply(); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

func calcOpacity(blk *block.Block, stage int) tasklist.Status {
	if blk.Collab.Opacity == nil {
		return tasklist.Next
	}
	if err := blk.Collab.Opacity.CalcOpacity(); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

func userwork(blk *block.Block, stage int) tasklist.Status {
	var fn func() error
	if blk.Collab.UserWork != nil {
		fn = blk.Collab.UserWork.Run
	}
	return finalStageOnly(blk, stage, fn)
}

func newDt(blk *block.Block, stage int) tasklist.Status {
	var fn func() error
	if blk.Collab.TimestepProp != nil {
		fn = func() error {
			_, err := blk.Collab.TimestepProp.NewDt()
			return err
		}
	}
	return finalStageOnly(blk, stage, fn)
}

func flagAmr(blk *block.Block, stage int) tasklist.Status {
	var fn func() error
	if blk.Collab.AMR != nil {
		fn = blk.Collab.AMR.FlagRefinement
	}
	return finalStageOnly(blk, stage, fn)
}

// clearAllBoundary implements CLEAR_ALLBND: tears down every family's
// posted receives, terminating the stage's DAG (spec.md §4.7, §5).
func clearAllBoundary(blk *block.Block, stage int) tasklist.Status {
	if blk.Collab.HydroBoundary != nil {
		blk.Collab.HydroBoundary.ClearAllBoundary()
	}
	if blk.Collab.FieldBoundary != nil {
		blk.Collab.FieldBoundary.ClearAllBoundary()
	}
	if blk.Collab.ScalarBoundary != nil {
		blk.Collab.ScalarBoundary.ClearAllBoundary()
	}
	if blk.Collab.RadBoundary != nil {
		blk.Collab.RadBoundary.ClearAllBoundary()
	}
	return tasklist.Success
}

func init() {
	tasklist.Register(tasklist.PhyBval, physicalBoundary)
	tasklist.Register(tasklist.CalcOpacity, calcOpacity)
	tasklist.Register(tasklist.Userwork, userwork)
	tasklist.Register(tasklist.NewDt, newDt)
	tasklist.Register(tasklist.FlagAmr, flagAmr)
	tasklist.Register(tasklist.ClearAllbnd, clearAllBoundary)
}
