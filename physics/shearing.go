// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/philipjon/ATHENA/block"
	"github.com/philipjon/ATHENA/collab"
	"github.com/philipjon/ATHENA/tasklist"
)

// shearSend/shearReceive/shearRemap implement the shearing-box variants of
// the boundary triple plus the EMF remap, spec.md §4.4.
func shearSend(t collab.ShearingBoxTransport, u []float64) tasklist.Status {
	if t == nil {
		return tasklist.Success
	}
	if err := t.Send(u); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

func shearReceive(t collab.ShearingBoxTransport) tasklist.Status {
	if t == nil {
		return tasklist.Success
	}
	ready, err := t.Receive()
	if err != nil {
		return tasklist.Fail
	}
	if !ready {
		return tasklist.Fail
	}
	return tasklist.Success
}

func shearSetBoundaries(t collab.ShearingBoxTransport, u []float64) tasklist.Status {
	if t == nil {
		return tasklist.Success
	}
	if err := t.SetBoundaries(u); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

func shearRemap(t collab.ShearingBoxTransport) tasklist.Status {
	if t == nil {
		return tasklist.Success
	}
	if err := t.Remap(); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

func init() {
	tasklist.Register(tasklist.SendHydSh, func(blk *block.Block, stage int) tasklist.Status {
		return shearSend(blk.Collab.HydroShear, blk.Hydro.U)
	})
	tasklist.Register(tasklist.RecvHydSh, func(blk *block.Block, stage int) tasklist.Status {
		return shearReceive(blk.Collab.HydroShear)
	})
	tasklist.Register(tasklist.SetbHydSh, func(blk *block.Block, stage int) tasklist.Status {
		return shearSetBoundaries(blk.Collab.HydroShear, blk.Hydro.U)
	})

	tasklist.Register(tasklist.SendFldSh, func(blk *block.Block, stage int) tasklist.Status {
		return shearSend(blk.Collab.FieldShear, blk.Field.U)
	})
	tasklist.Register(tasklist.RecvFldSh, func(blk *block.Block, stage int) tasklist.Status {
		return shearReceive(blk.Collab.FieldShear)
	})
	tasklist.Register(tasklist.SetbFldSh, func(blk *block.Block, stage int) tasklist.Status {
		return shearSetBoundaries(blk.Collab.FieldShear, blk.Field.U)
	})

	tasklist.Register(tasklist.SendEmfSh, func(blk *block.Block, stage int) tasklist.Status {
		return shearSend(blk.Collab.EMFShear, nil)
	})
	tasklist.Register(tasklist.RecvEmfSh, func(blk *block.Block, stage int) tasklist.Status {
		return shearReceive(blk.Collab.EMFShear)
	})
	tasklist.Register(tasklist.SetbEmfSh, func(blk *block.Block, stage int) tasklist.Status {
		return shearSetBoundaries(blk.Collab.EMFShear, nil)
	})
	tasklist.Register(tasklist.RmapEmfSh, func(blk *block.Block, stage int) tasklist.Status {
		return shearRemap(blk.Collab.EMFShear)
	})
}
