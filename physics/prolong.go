// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/philipjon/ATHENA/block"
	"github.com/philipjon/ATHENA/tasklist"
)

// prolong implements spec.md §4.6 "Prolongation": invoked with
// (t + abs[l][0], β_l·dt), it propagates coarse-to-fine boundary data at
// refinement interfaces.
func prolong(blk *block.Block, stage int) tasklist.Status {
	if blk.Collab.Prolongation == nil {
		return tasklist.Next
	}
	w := blk.Descriptor.Stages[stage-1]
	t := blk.T + blk.Abscissae[stage][0]
	if err := blk.Collab.Prolongation.Prolong(t, w.Beta*blk.Dt); err != nil {
		return tasklist.Fail
	}
	return tasklist.Success
}

func init() {
	tasklist.Register(tasklist.Prolong, prolong)
}
