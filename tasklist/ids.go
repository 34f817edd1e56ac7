// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tasklist implements the closed task catalogue, the per-stage DAG
// builder, and the cooperative DAG executor of spec.md §4.3-4.5.
package tasklist

// TaskID is a single-bit identifier; dependency masks are bitwise-OR
// combinations of TaskIDs (spec.md §3 "Task").
type TaskID uint64

// The closed set of task identifiers (spec.md §4.3). At most 64 distinct
// tasks may exist; this catalogue uses 51.
const (
	CalcHydFlx TaskID = 1 << iota
	CalcFldFlx
	CalcRadFlx
	CalcSclrFlx

	SendHydFlx
	RecvHydFlx
	SendFldFlx
	RecvFldFlx
	SendRadFlx
	RecvRadFlx
	SendSclrFlx
	RecvSclrFlx

	DiffuseHyd
	DiffuseFld
	DiffuseSclr

	IntHyd
	IntFld
	IntRad
	IntSclr

	SrctermHyd
	SrctermRad

	SendHyd
	RecvHyd
	SetbHyd
	SendFld
	RecvFld
	SetbFld
	SendRad
	RecvRad
	SetbRad
	SendSclr
	RecvSclr
	SetbSclr

	SendHydSh
	RecvHydSh
	SetbHydSh
	SendFldSh
	RecvFldSh
	SetbFldSh
	SendEmfSh
	RecvEmfSh
	SetbEmfSh
	RmapEmfSh

	Prolong
	Cons2Prim
	PhyBval
	CalcOpacity
	Userwork
	NewDt
	FlagAmr
	ClearAllbnd
)

// names gives a diagnostic label for each id, used by the executor's
// verbose trace and by error messages.
var names = map[TaskID]string{
	CalcHydFlx: "CALC_HYDFLX", CalcFldFlx: "CALC_FLDFLX", CalcRadFlx: "CALC_RADFLX", CalcSclrFlx: "CALC_SCLRFLX",
	SendHydFlx: "SEND_HYDFLX", RecvHydFlx: "RECV_HYDFLX",
	SendFldFlx: "SEND_FLDFLX", RecvFldFlx: "RECV_FLDFLX",
	SendRadFlx: "SEND_RADFLX", RecvRadFlx: "RECV_RADFLX",
	SendSclrFlx: "SEND_SCLRFLX", RecvSclrFlx: "RECV_SCLRFLX",
	DiffuseHyd: "DIFFUSE_HYD", DiffuseFld: "DIFFUSE_FLD", DiffuseSclr: "DIFFUSE_SCLR",
	IntHyd: "INT_HYD", IntFld: "INT_FLD", IntRad: "INT_RAD", IntSclr: "INT_SCLR",
	SrctermHyd: "SRCTERM_HYD", SrctermRad: "SRCTERM_RAD",
	SendHyd: "SEND_HYD", RecvHyd: "RECV_HYD", SetbHyd: "SETB_HYD",
	SendFld: "SEND_FLD", RecvFld: "RECV_FLD", SetbFld: "SETB_FLD",
	SendRad: "SEND_RAD", RecvRad: "RECV_RAD", SetbRad: "SETB_RAD",
	SendSclr: "SEND_SCLR", RecvSclr: "RECV_SCLR", SetbSclr: "SETB_SCLR",
	SendHydSh: "SEND_HYDSH", RecvHydSh: "RECV_HYDSH", SetbHydSh: "SETB_HYDSH",
	SendFldSh: "SEND_FLDSH", RecvFldSh: "RECV_FLDSH", SetbFldSh: "SETB_FLDSH",
	SendEmfSh: "SEND_EMFSH", RecvEmfSh: "RECV_EMFSH", SetbEmfSh: "SETB_EMFSH", RmapEmfSh: "RMAP_EMFSH",
	Prolong: "PROLONG", Cons2Prim: "CONS2PRIM", PhyBval: "PHY_BVAL", CalcOpacity: "CALC_OPACITY",
	Userwork: "USERWORK", NewDt: "NEW_DT", FlagAmr: "FLAG_AMR", ClearAllbnd: "CLEAR_ALLBND",
}

// Name returns the diagnostic name of a task id, or "UNKNOWN" if it is not
// in the catalogue.
func Name(id TaskID) string {
	if n, ok := names[id]; ok {
		return n
	}
	return "UNKNOWN"
}

// knownID reports whether id is a single recognized catalogue bit.
func knownID(id TaskID) bool {
	_, ok := names[id]
	return ok
}

// notLoadBalanced is the set of ids that are always lb_time=false (spec.md
// §4.3 "Receives (RECV_*) are always lb_time=false"). Every other known id
// defaults to lb_time=true. This table is static catalogue metadata, known
// at construction time independently of whether package physics has
// registered an invokable yet — the task-list builder needs only this, not
// the invokable itself (spec.md §4.3's "(invokable, dependency mask,
// load-balance flag)" triple is split across two tables for exactly that
// reason).
var notLoadBalanced = map[TaskID]bool{
	RecvHydFlx: true, RecvFldFlx: true, RecvRadFlx: true, RecvSclrFlx: true,
	RecvHyd: true, RecvFld: true, RecvRad: true, RecvSclr: true,
	RecvHydSh: true, RecvFldSh: true, RecvEmfSh: true,
}

// lbTimeFor returns the static load-balance flag for a recognized task id.
func lbTimeFor(id TaskID) bool {
	return !notLoadBalanced[id]
}
