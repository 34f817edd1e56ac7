// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config reads the time-integration parameter block from a JSON
// input file, mirroring gofem's inp.Simulation/inp.SolverData: a plain
// JSON-tagged struct with a SetDefault() pass applied before unmarshalling,
// so the zero value of an absent field never silently reaches the rest of
// the program (spec.md §6 "Configuration knobs").
package config

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// TimeData holds the keys of spec.md §6's configuration table: the
// integrator scheme name and the base CFL number. cfl_number has no
// sensible default (spec.md marks it "required"), so it is left at its
// zero value by SetDefault and validated after unmarshalling.
type TimeData struct {
	Integrator string  `json:"integrator"` // "time/integrator"; default "vl2"
	CFLNumber  float64 `json:"cfl_number"` // "time/cfl_number"; required, no default
}

// SetDefault assigns spec.md's documented defaults ahead of unmarshalling,
// the same two-step pattern as inp.SolverData.SetDefault followed by
// json.Unmarshal in gofem's ReadSim.
func (o *TimeData) SetDefault() {
	o.Integrator = "vl2"
}

// Data is the top-level configuration document; additional sections (mesh,
// physics toggles) are out of this package's scope and are the driver's
// concern, not this time-integration knob set.
type Data struct {
	Time TimeData `json:"time"`
}

// Load reads and validates a JSON configuration file from path, applying
// defaults first so that an omitted "time.integrator" key resolves to
// "vl2" per spec.md §6, and panicking (gofem's ReadSim convention: a
// malformed input file is a construction-time fault, not a recoverable
// one) if "time.cfl_number" was left unset.
func Load(path string) *Data {
	var d Data
	d.Time.SetDefault()

	b, err := io.ReadFile(path)
	if err != nil {
		chk.Panic("config: cannot read configuration file %q", path)
	}
	if err := json.Unmarshal(b, &d); err != nil {
		chk.Panic("config: cannot unmarshal configuration file %q: %v", path, err)
	}
	if d.Time.CFLNumber <= 0 {
		chk.Panic("config: %q: time/cfl_number is required and must be positive", path)
	}
	return &d
}
