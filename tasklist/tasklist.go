// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tasklist

import "github.com/cpmech/gosl/chk"

// Entry is one task list row: its id, its dependency mask, and its
// load-balance flag (copied from the catalogue at build time so the
// executor need not re-look it up per sweep).
type Entry struct {
	ID         TaskID
	Dependency TaskID
	LBTime     bool
}

// TaskList is the ordered DAG for one stage of one integrator configuration
// (spec.md §4.4). The insertion order is the executor's scan order.
type TaskList struct {
	Integrator string
	Entries    []Entry
}

// add appends a task, validating it is a known catalogue id (spec.md §4.4
// "fails ... with an 'invalid task' error if any id added is outside the
// catalogue"). Used only by the builder, which treats a violation as a
// programming error in the builder itself.
func (tl *TaskList) add(id, dep TaskID) error {
	if !knownID(id) {
		return chk.Err("tasklist: invalid task id %#x", uint64(id))
	}
	tl.Entries = append(tl.Entries, Entry{ID: id, Dependency: dep, LBTime: lbTimeFor(id)})
	return nil
}

// Validate checks the two structural invariants of spec.md §8 property 2:
// closure (every dependency bit is also an id present in the list) and
// acyclicity (no cycle among the dependency edges).
func (tl *TaskList) Validate() error {
	present := make(map[TaskID]bool, len(tl.Entries))
	for _, e := range tl.Entries {
		present[e.ID] = true
	}
	for _, e := range tl.Entries {
		for bit := TaskID(1); bit != 0 && bit <= e.Dependency; bit <<= 1 {
			if e.Dependency&bit == 0 {
				continue
			}
			if !present[bit] {
				return chk.Err("tasklist: dependency %s of %s is not present in the task list", Name(bit), Name(e.ID))
			}
		}
	}
	return tl.checkAcyclic()
}

// checkAcyclic runs a Kahn's-algorithm topological sort over the
// dependency graph; if any entry remains unresolved the graph has a cycle.
func (tl *TaskList) checkAcyclic() error {
	remaining := make(map[TaskID]TaskID, len(tl.Entries))
	for _, e := range tl.Entries {
		remaining[e.ID] = e.Dependency
	}
	resolved := TaskID(0)
	for progress := true; progress && len(remaining) > 0; {
		progress = false
		for id, dep := range remaining {
			if resolved&dep == dep {
				resolved |= id
				delete(remaining, id)
				progress = true
			}
		}
	}
	if len(remaining) > 0 {
		return chk.Err("tasklist: dependency cycle detected among %d task(s)", len(remaining))
	}
	return nil
}
