// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tasklist

import (
	"github.com/cpmech/gosl/chk"

	"github.com/philipjon/ATHENA/block"
)

// Status is a task's return code (spec.md §3 "Task status").
type Status int

const (
	// Success marks the task complete and, if lb_time is set,
	// load-balance-accumulated.
	Success Status = iota
	// Next marks the task complete and tells the executor to rescan
	// immediately for newly-unblocked successors before yielding.
	Next
	// Fail leaves the task pending; the executor retries later in the
	// same stage.
	Fail
)

// Func is the invokable bound to a task id: it receives the block and the
// current stage number and returns a status (spec.md §3 "Task").
type Func func(blk *block.Block, stage int) Status

// catalogue is the static map from task id to invokable (spec.md §4.3). It
// is populated at init() time by package physics, mirroring gofem's
// ele/factory.go allocators map and its SetAllocator/GetAllocator
// discipline: registering the same id twice is a construction-time fault.
// The load-balance flag half of the catalogue triple is static metadata
// (ids.go's lbTimeFor) and does not require an invokable to be registered,
// so the task-list builder can run and validate a task list before package
// physics has registered anything.
var catalogue = make(map[TaskID]Func)

// Register binds fn to id in the task catalogue. Panics if id is not a
// recognized catalogue bit, or if id has already been registered.
func Register(id TaskID, fn Func) {
	if !knownID(id) {
		chk.Panic("tasklist: cannot register unknown task id %#x", uint64(id))
	}
	if _, ok := catalogue[id]; ok {
		chk.Panic("tasklist: task %s already registered", Name(id))
	}
	catalogue[id] = fn
}

// lookupFunc returns the registered invokable for id, or a fatal
// construction error if none was ever registered for a recognized id (e.g.
// package physics was not imported).
func lookupFunc(id TaskID) (Func, error) {
	fn, ok := catalogue[id]
	if !ok {
		return nil, chk.Err("tasklist: no invokable registered for task %s", Name(id))
	}
	return fn, nil
}
