// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tasklist

import (
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/philipjon/ATHENA/block"
)

// RunSweep is one executor "entry": it scans the task list once in
// insertion order, dispatching every task whose dependencies are already
// satisfied. Whenever a dispatched task returns Next, the scan restarts
// from the top before the call returns, so that newly-unblocked chains
// (e.g. RECV_*FLX -> INT_*) drain within one entry instead of waiting for
// the outer driver's next pass (spec.md §4.5).
//
// RunSweep never fails on a Fail-returning task — that is a request to
// retry later, not an error (spec.md §7). It returns a non-nil error only
// for the fatal, construction-class faults: an id that was never
// registered in the catalogue.
func RunSweep(tl *TaskList, blk *block.Block, stage int, verbose bool) (done bool, err error) {
	for {
		progressedViaNext := false
		for i := range tl.Entries {
			e := &tl.Entries[i]
			if blk.Completion.Mask&uint64(e.ID) != 0 {
				continue // already complete
			}
			if blk.Completion.Mask&uint64(e.Dependency) != uint64(e.Dependency) {
				continue // dependencies not yet satisfied
			}
			fn, lookupErr := lookupFunc(e.ID)
			if lookupErr != nil {
				return false, lookupErr
			}
			start := time.Now()
			status := fn(blk, stage)
			elapsed := time.Since(start)

			switch status {
			case Success, Next:
				blk.Completion.Mask |= uint64(e.ID)
				blk.Completion.Count++
				if e.LBTime {
					blk.AccumulateLBTime(elapsed)
				}
				if verbose {
					io.Pfgrey("  [block %d] stage %d: %s complete\n", blk.ID, stage, Name(e.ID))
				}
				if status == Next {
					progressedViaNext = true
				}
			case Fail:
				if verbose {
					io.Pfgrey("  [block %d] stage %d: %s not ready, retrying\n", blk.ID, stage, Name(e.ID))
				}
			}
		}
		if !progressedViaNext {
			break
		}
	}
	return blk.Completion.Count == len(tl.Entries), nil
}

// RunToCompletion repeatedly calls RunSweep until the stage is done. It
// models a single block running in isolation (e.g. in a test); the
// cooperative multi-block driver (package driver) instead calls RunSweep
// once per block per outer-loop iteration so blocks interleave.
func RunToCompletion(tl *TaskList, blk *block.Block, stage int, verbose bool, maxSweeps int) (bool, error) {
	for i := 0; i < maxSweeps; i++ {
		done, err := RunSweep(tl, blk, stage, verbose)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
	}
	return false, nil
}
