// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/philipjon/ATHENA/block"
	"github.com/philipjon/ATHENA/collab"
	"github.com/philipjon/ATHENA/tasklist"
)

// sendFlux and recvFlux implement the SEND_*FLX / RECV_*FLX pair inserted
// only under multilevel mesh refinement, to reconcile fluxes at coarse/fine
// boundaries (spec.md §4.4 "Flux correction").
func sendFlux(t collab.FluxTransport) tasklist.Status {
	if t == nil {
		return tasklist.Success
	}
	if err := t.Send(); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

func recvFlux(t collab.FluxTransport) tasklist.Status {
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

func init() {
	tasklist.Register(tasklist.SendHydFlx, func(blk *block.Block, stage int) tasklist.Status { return sendFlux(blk.Collab.HydroFluxTransport) })
	tasklist.Register(tasklist.RecvHydFlx, func(blk *block.Block, stage int) tasklist.Status { return recvFlux(blk.Collab.HydroFluxTransport) })
	tasklist.Register(tasklist.SendFldFlx, func(blk *block.Block, stage int) tasklist.Status { return sendFlux(blk.Collab.FieldFluxTransport) })
	tasklist.Register(tasklist.RecvFldFlx, func(blk *block.Block, stage int) tasklist.Status { return recvFlux(blk.Collab.FieldFluxTransport) })
	tasklist.Register(tasklist.SendSclrFlx, func(blk *block.Block, stage int) tasklist.Status { return sendFlux(blk.Collab.ScalarFluxTransport) })
	tasklist.Register(tasklist.RecvSclrFlx, func(blk *block.Block, stage int) tasklist.Status { return recvFlux(blk.Collab.ScalarFluxTransport) })
	tasklist.Register(tasklist.SendRadFlx, func(blk *block.Block, stage int) tasklist.Status { return sendFlux(blk.Collab.RadFluxTransport) })
	tasklist.Register(tasklist.RecvRadFlx, func(blk *block.Block, stage int) tasklist.Status { return recvFlux(blk.Collab.RadFluxTransport) })
}
