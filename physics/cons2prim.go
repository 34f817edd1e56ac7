// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/philipjon/ATHENA/block"
	"github.com/philipjon/ATHENA/collab"
	"github.com/philipjon/ATHENA/tasklist"
)

// cons2prim implements spec.md §4.6 "Primitives (CONS2PRIM)": invoke the
// EOS collaborator to fill the scratch primitive register from the
// conserved register, then swap w <-> w1 so that w holds the new
// primitives. Ghost-zone expansion (nblevel[...] != -1 checks) and
// fourth-order cell-averaging are the EOS collaborator's concern — both
// are mesh/AMR details out of scope per spec.md §1.
func cons2primFor(eos collab.EOS, regs *block.Registers) tasklist.Status {
	if eos == nil || regs == nil {
		return tasklist.Next
	}
	if err := eos.ConservedToPrimitive(regs.U, regs.W1); err != nil {
		return tasklist.Fail
	}
	regs.SwapPrimitives()
	return tasklist.Success
}

func cons2prim(blk *block.Block, stage int) tasklist.Status {
	statuses := []tasklist.Status{
		cons2primFor(blk.Collab.HydroEOS, blk.Hydro),
		cons2primFor(blk.Collab.ScalarEOS, blk.Scalars),
		cons2primFor(blk.Collab.RadEOS, blk.Rad),
	}
	for _, s := range statuses {
		if s == tasklist.Fail {
			return tasklist.Fail
		}
	}
	return tasklist.Success
}

func init() {
	tasklist.Register(tasklist.Cons2Prim, cons2prim)
}
