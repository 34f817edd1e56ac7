// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tasklist

import "github.com/philipjon/ATHENA/integrator"

// Toggles carries the physics configuration the builder needs to decide
// which tasks to emit (spec.md §4.4), passed to the builder as one explicit
// configuration record rather than as package-level constants.
type Toggles struct {
	FluidEvolved bool
	MHD          bool
	NScalars     int
	Radiation    bool
	Multilevel   bool
	ShearingBox  bool
	STS          bool
	AMR          bool
}

// Build composes the per-stage task DAG for the named integrator and the
// given physics toggles (spec.md §4.4). It fails with an "unknown
// integrator" error if name is not registered, and propagates any
// "invalid task" error from a malformed catalogue entry.
func Build(name string, t Toggles) (*TaskList, error) {
	if _, err := integrator.Lookup(name); err != nil {
		return nil, err
	}
	tl := &TaskList{Integrator: name}

	var hydFlx, fldFlx, sclrFlx, radFlx TaskID // CALC_*FLX dependency feeders
	var hydSrc, fldSrc, sclrSrc, radSrc TaskID // what SEND_* depends on

	if t.FluidEvolved {
		dep := TaskID(0)
		if !t.STS {
			if err := tl.add(DiffuseHyd, 0); err != nil {
				return nil, err
			}
			dep = DiffuseHyd
		}
		if err := tl.add(CalcHydFlx, dep); err != nil {
			return nil, err
		}
		hydFlx = CalcHydFlx
		if t.Multilevel {
			if err := tl.add(SendHydFlx, CalcHydFlx); err != nil {
				return nil, err
			}
			if err := tl.add(RecvHydFlx, 0); err != nil {
				return nil, err
			}
			hydFlx = RecvHydFlx
		}
		if err := tl.add(IntHyd, hydFlx); err != nil {
			return nil, err
		}
		hydSrc = IntHyd
	}

	if t.MHD {
		dep := TaskID(0)
		if !t.STS {
			if err := tl.add(DiffuseFld, 0); err != nil {
				return nil, err
			}
			dep = DiffuseFld
		}
		if err := tl.add(CalcFldFlx, dep); err != nil {
			return nil, err
		}
		fldFlx = CalcFldFlx
		if t.Multilevel {
			if err := tl.add(SendFldFlx, CalcFldFlx); err != nil {
				return nil, err
			}
			if err := tl.add(RecvFldFlx, 0); err != nil {
				return nil, err
			}
			fldFlx = RecvFldFlx
		}
		if err := tl.add(IntFld, fldFlx); err != nil {
			return nil, err
		}
		fldSrc = IntFld
	}

	if t.NScalars > 0 {
		dep := TaskID(0)
		if !t.STS {
			if err := tl.add(DiffuseSclr, 0); err != nil {
				return nil, err
			}
			dep = DiffuseSclr
		}
		if err := tl.add(CalcSclrFlx, dep); err != nil {
			return nil, err
		}
		sclrFlx = CalcSclrFlx
		if t.Multilevel {
			if err := tl.add(SendSclrFlx, CalcSclrFlx); err != nil {
				return nil, err
			}
			if err := tl.add(RecvSclrFlx, 0); err != nil {
				return nil, err
			}
			sclrFlx = RecvSclrFlx
		}
		if err := tl.add(IntSclr, sclrFlx); err != nil {
			return nil, err
		}
		sclrSrc = IntSclr
	}

	if t.Radiation {
		if err := tl.add(CalcRadFlx, 0); err != nil {
			return nil, err
		}
		radFlx = CalcRadFlx
		if t.Multilevel {
			if err := tl.add(SendRadFlx, CalcRadFlx); err != nil {
				return nil, err
			}
			if err := tl.add(RecvRadFlx, 0); err != nil {
				return nil, err
			}
			radFlx = RecvRadFlx
		}
		if err := tl.add(IntRad, radFlx); err != nil {
			return nil, err
		}
		if err := tl.add(SrctermRad, IntRad); err != nil {
			return nil, err
		}
		radSrc = SrctermRad
	}

	if t.FluidEvolved {
		srcDep := hydSrc
		if t.Radiation {
			srcDep |= radSrc
		}
		if err := tl.add(SrctermHyd, srcDep); err != nil {
			return nil, err
		}
		hydSrc = SrctermHyd
	}

	// boundary exchange per evolved family
	if t.FluidEvolved {
		if err := tl.addBoundaryTriple(SendHyd, RecvHyd, SetbHyd, hydSrc); err != nil {
			return nil, err
		}
	}
	if t.MHD {
		if err := tl.addBoundaryTriple(SendFld, RecvFld, SetbFld, fldSrc); err != nil {
			return nil, err
		}
	}
	if t.NScalars > 0 {
		if err := tl.addBoundaryTriple(SendSclr, RecvSclr, SetbSclr, sclrSrc); err != nil {
			return nil, err
		}
	}
	if t.Radiation {
		if err := tl.addBoundaryTriple(SendRad, RecvRad, SetbRad, radSrc); err != nil {
			return nil, err
		}
	}

	// shearing-box send/receive/remap, attached after their family's SETB_*
	shearRecvDeps := TaskID(0)
	if t.ShearingBox {
		if t.FluidEvolved {
			if err := tl.addBoundaryTriple(SendHydSh, RecvHydSh, SetbHydSh, SetbHyd); err != nil {
				return nil, err
			}
			shearRecvDeps |= RecvHydSh
		}
		if t.MHD {
			if err := tl.addBoundaryTriple(SendFldSh, RecvFldSh, SetbFldSh, SetbFld); err != nil {
				return nil, err
			}
			if err := tl.add(SendEmfSh, SetbFld); err != nil {
				return nil, err
			}
			if err := tl.add(RecvEmfSh, 0); err != nil {
				return nil, err
			}
			if err := tl.add(SetbEmfSh, SendEmfSh|RecvEmfSh); err != nil {
				return nil, err
			}
			if err := tl.add(RmapEmfSh, RecvEmfSh); err != nil {
				return nil, err
			}
			shearRecvDeps |= RecvFldSh | RecvEmfSh
		}
	}

	// PROLONG: union of all evolved families' SEND_* | SETB_*, multilevel only.
	prolongDep := TaskID(0)
	if t.Multilevel {
		if t.FluidEvolved {
			prolongDep |= SendHyd | SetbHyd
		}
		if t.MHD {
			prolongDep |= SendFld | SetbFld
		}
		if t.NScalars > 0 {
			prolongDep |= SendSclr | SetbSclr
		}
		if t.Radiation {
			prolongDep |= SendRad | SetbRad
		}
		if err := tl.add(Prolong, prolongDep); err != nil {
			return nil, err
		}
	}

	// CONS2PRIM
	cons2primDep := TaskID(0)
	if t.Multilevel {
		cons2primDep = Prolong
	} else {
		if t.FluidEvolved {
			cons2primDep |= SetbHyd
		}
		if t.MHD {
			cons2primDep |= SetbFld
		}
		if t.NScalars > 0 {
			cons2primDep |= SetbSclr
		}
		if t.Radiation {
			cons2primDep |= SetbRad
		}
	}
	cons2primDep |= shearRecvDeps
	if err := tl.add(Cons2Prim, cons2primDep); err != nil {
		return nil, err
	}

	if err := tl.add(PhyBval, Cons2Prim); err != nil {
		return nil, err
	}

	userworkDep := PhyBval
	if t.Radiation {
		if err := tl.add(CalcOpacity, PhyBval); err != nil {
			return nil, err
		}
		userworkDep = CalcOpacity
	}
	if err := tl.add(Userwork, userworkDep); err != nil {
		return nil, err
	}
	if err := tl.add(NewDt, Userwork); err != nil {
		return nil, err
	}

	if t.AMR {
		if err := tl.add(FlagAmr, NewDt); err != nil {
			return nil, err
		}
		if err := tl.add(ClearAllbnd, FlagAmr); err != nil {
			return nil, err
		}
	} else {
		if err := tl.add(ClearAllbnd, NewDt); err != nil {
			return nil, err
		}
	}

	if err := tl.Validate(); err != nil {
		return nil, err
	}
	return tl, nil
}

// addBoundaryTriple adds SEND_F (dep srcTermDep), RECV_F (no deps, arrives
// any time, lb_time=false via the catalogue), and SETB_F (dep
// send|recv|srcTermDep), matching spec.md §4.4's "SEND_HYD → SETB_HYD;
// RECV_HYD starts with empty deps; SETB_HYD needs (RECV_HYD |
// SRCTERM_HYD)".
func (tl *TaskList) addBoundaryTriple(send, recv, setb, srcTermDep TaskID) error {
	if err := tl.add(send, srcTermDep); err != nil {
		return err
	}
	if err := tl.add(recv, 0); err != nil {
		return err
	}
	return tl.add(setb, send|recv|srcTermDep)
}
