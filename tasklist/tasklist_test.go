// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tasklist

import "testing"

func buildFull(tst *testing.T) *TaskList {
	tl, err := Build("vl2", Toggles{
		FluidEvolved: true,
		MHD:          true,
		NScalars:     2,
		Radiation:    true,
		Multilevel:   true,
		ShearingBox:  true,
		STS:          false,
		AMR:          true,
	})
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	return tl
}

func TestBuildUnknownIntegrator(tst *testing.T) {
	_, err := Build("not-a-scheme", Toggles{FluidEvolved: true})
	if err == nil {
		tst.Fatal("expected error for unknown integrator")
	}
}

func TestBuildMinimalHydroOnly(tst *testing.T) {
	tl, err := Build("rk1", Toggles{FluidEvolved: true})
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	if err := tl.Validate(); err != nil {
		tst.Fatalf("Validate failed: %v", err)
	}
	want := []TaskID{DiffuseHyd, CalcHydFlx, IntHyd, SrctermHyd, SendHyd, RecvHyd, SetbHyd, Cons2Prim, PhyBval, Userwork, NewDt, ClearAllbnd}
	if len(tl.Entries) != len(want) {
		tst.Fatalf("got %d entries, want %d", len(tl.Entries), len(want))
	}
	for i, id := range want {
		if tl.Entries[i].ID != id {
			tst.Errorf("entry %d: got %s, want %s", i, Name(tl.Entries[i].ID), Name(id))
		}
	}
}

// S6: task-list construction for (MHD on, scalars=2, radiation on,
// multilevel on, shearing-box on) contains RMAP_EMFSH with dep RECV_EMFSH,
// and CONS2PRIM depends on PROLONG.
func TestBuildFullPhysicsS6(tst *testing.T) {
	tl := buildFull(tst)
	var rmap, cons2prim *Entry
	for i := range tl.Entries {
		switch tl.Entries[i].ID {
		case RmapEmfSh:
			rmap = &tl.Entries[i]
		case Cons2Prim:
			cons2prim = &tl.Entries[i]
		}
	}
	if rmap == nil {
		tst.Fatal("RMAP_EMFSH not present in full task list")
	}
	if rmap.Dependency != RecvEmfSh {
		tst.Errorf("RMAP_EMFSH dependency = %#x, want RECV_EMFSH (%#x)", uint64(rmap.Dependency), uint64(RecvEmfSh))
	}
	if cons2prim == nil {
		tst.Fatal("CONS2PRIM not present")
	}
	if cons2prim.Dependency&Prolong == 0 {
		tst.Errorf("CONS2PRIM dependency %#x does not include PROLONG", uint64(cons2prim.Dependency))
	}
}

func TestBuildValidatesClosureAndAcyclicity(tst *testing.T) {
	tl := buildFull(tst)
	if err := tl.Validate(); err != nil {
		tst.Fatalf("full physics task list should validate: %v", err)
	}
}

func TestRecvTasksAreNotLoadBalanced(tst *testing.T) {
	tl := buildFull(tst)
	recvIDs := map[TaskID]bool{
		RecvHydFlx: true, RecvFldFlx: true, RecvRadFlx: true, RecvSclrFlx: true,
		RecvHyd: true, RecvFld: true, RecvRad: true, RecvSclr: true,
		RecvHydSh: true, RecvFldSh: true, RecvEmfSh: true,
	}
	for _, e := range tl.Entries {
		if recvIDs[e.ID] && e.LBTime {
			tst.Errorf("%s should have lb_time=false", Name(e.ID))
		}
	}
}

func TestDiffusionOmittedUnderSTS(tst *testing.T) {
	tl, err := Build("rk1", Toggles{FluidEvolved: true, STS: true})
	if err != nil {
		tst.Fatal(err)
	}
	for _, e := range tl.Entries {
		if e.ID == DiffuseHyd {
			tst.Error("DIFFUSE_HYD should not be present when STS is on")
		}
	}
}

func TestInvalidTaskIDRejected(tst *testing.T) {
	tl := &TaskList{Integrator: "rk1"}
	if err := tl.add(TaskID(1)<<62, 0); err == nil {
		tst.Fatal("expected invalid task id error")
	}
}
