// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/philipjon/ATHENA/block"
	"github.com/philipjon/ATHENA/collab"
	"github.com/philipjon/ATHENA/tasklist"
)

// sendBoundary, receiveBoundary, and setBoundaries implement the
// SEND_F/RECV_F/SETB_F triple of spec.md §4.6
// ("SendHydro/ReceiveHydro/SetBoundariesHydro"): they operate on the
// conserved register u, which must already be the interface's active
// pointer (the register swap in integrateFamily re-points it before these
// run, since they are scheduled downstream of INT_F / SRCTERM_HYD).
func sendBoundary(t collab.Transport, u []float64) tasklist.Status {
	if t == nil {
		return tasklist.Success
	}
	if err := t.Send(u); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

// receiveBoundary returns Success once every neighbor buffer has arrived,
// else Fail (spec.md §4.6: "ReceiveHydro returns success when all neighbor
// buffers have arrived, else fail").
func receiveBoundary(t collab.Transport) tasklist.Status {
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

func setBoundaries(t collab.Transport, u []float64) tasklist.Status {
	if t == nil {
		return tasklist.Success
	}
	if err := t.SetBoundaries(u); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

func init() {
	tasklist.Register(tasklist.SendHyd, func(blk *block.Block, stage int) tasklist.Status {
		return sendBoundary(blk.Collab.HydroBoundary, blk.Hydro.U)
	})
	tasklist.Register(tasklist.RecvHyd, func(blk *block.Block, stage int) tasklist.Status {
		return receiveBoundary(blk.Collab.HydroBoundary)
	})
	tasklist.Register(tasklist.SetbHyd, func(blk *block.Block, stage int) tasklist.Status {
		return setBoundaries(blk.Collab.HydroBoundary, blk.Hydro.U)
	})

	tasklist.Register(tasklist.SendFld, func(blk *block.Block, stage int) tasklist.Status {
		return sendBoundary(blk.Collab.FieldBoundary, blk.Field.U)
	})
	tasklist.Register(tasklist.RecvFld, func(blk *block.Block, stage int) tasklist.Status {
		return receiveBoundary(blk.Collab.FieldBoundary)
	})
	tasklist.Register(tasklist.SetbFld, func(blk *block.Block, stage int) tasklist.Status {
		return setBoundaries(blk.Collab.FieldBoundary, blk.Field.U)
	})

	tasklist.Register(tasklist.SendSclr, func(blk *block.Block, stage int) tasklist.Status {
		return sendBoundary(blk.Collab.ScalarBoundary, blk.Scalars.U)
	})
	tasklist.Register(tasklist.RecvSclr, func(blk *block.Block, stage int) tasklist.Status {
		return receiveBoundary(blk.Collab.ScalarBoundary)
	})
	tasklist.Register(tasklist.SetbSclr, func(blk *block.Block, stage int) tasklist.Status {
		return setBoundaries(blk.Collab.ScalarBoundary, blk.Scalars.U)
	})

	tasklist.Register(tasklist.SendRad, func(blk *block.Block, stage int) tasklist.Status {
		return sendBoundary(blk.Collab.RadBoundary, blk.Rad.U)
	})
	tasklist.Register(tasklist.RecvRad, func(blk *block.Block, stage int) tasklist.Status {
		return receiveBoundary(blk.Collab.RadBoundary)
	})
	tasklist.Register(tasklist.SetbRad, func(blk *block.Block, stage int) tasklist.Status {
		return setBoundaries(blk.Collab.RadBoundary, blk.Rad.U)
	})
}
