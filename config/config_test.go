// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(tst *testing.T, contents string) string {
	dir := tst.TempDir()
	path := filepath.Join(dir, "sim.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		tst.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadDefaultsIntegratorToVl2(tst *testing.T) {
	path := writeTemp(tst, `{"time":{"cfl_number":0.8}}`)
	d := Load(path)
	if d.Time.Integrator != "vl2" {
		tst.Fatalf("Integrator = %q, want vl2", d.Time.Integrator)
	}
	if d.Time.CFLNumber != 0.8 {
		tst.Fatalf("CFLNumber = %v, want 0.8", d.Time.CFLNumber)
	}
}

func TestLoadHonorsExplicitIntegrator(tst *testing.T) {
	path := writeTemp(tst, `{"time":{"integrator":"rk3","cfl_number":1.0}}`)
	d := Load(path)
	if d.Time.Integrator != "rk3" {
		tst.Fatalf("Integrator = %q, want rk3", d.Time.Integrator)
	}
}

func TestLoadPanicsWithoutCFLNumber(tst *testing.T) {
	defer func() {
		if recover() == nil {
			tst.Fatal("expected a panic when time/cfl_number is missing")
		}
	}()
	path := writeTemp(tst, `{"time":{"integrator":"rk2"}}`)
	Load(path)
}

func TestLoadPanicsOnMissingFile(tst *testing.T) {
	defer func() {
		if recover() == nil {
			tst.Fatal("expected a panic when the configuration file does not exist")
		}
	}()
	Load(filepath.Join(tst.TempDir(), "does-not-exist.json"))
}
