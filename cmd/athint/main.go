// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// athint is a thin CLI driver: read a configuration file, construct the
// integrator descriptor and task list it describes, and run the stage loop.
// Mirrors gofem's main.go (flag.Parse, chk.Panic on a missing argument, a
// deferred recover that prints the error and exits) rather than cobra — no
// subcommands are needed for a single-purpose batch driver.
package main

import (
	"flag"
	"net/http"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/philipjon/ATHENA/block"
	"github.com/philipjon/ATHENA/config"
	"github.com/philipjon/ATHENA/driver"
	"github.com/philipjon/ATHENA/driver/metrics"
	_ "github.com/philipjon/ATHENA/physics" // enforce loading of all task bodies
	"github.com/philipjon/ATHENA/tasklist"
)

func main() {
	verbose := flag.Bool("v", false, "verbose stage tracing")
	tFinal := flag.Float64("tf", 1.0, "final simulation time")
	ndim := flag.Int("ndim", 1, "spatial dimensionality (1, 2, or 3)")
	metricsAddr := flag.String("metrics", "", "address to serve Prometheus /metrics on, e.g. :9100 (empty disables)")
	flag.Parse()

	if len(flag.Args()) < 1 {
		chk.Panic("Please provide a configuration file. Ex.: athint problem.json")
	}
	cfgPath := flag.Arg(0)

	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("ERROR: %v\n", err)
			}
			mpi.Stop(false)
		}
	}()
	mpi.Start(false)
	defer mpi.Stop(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\nathint -- multistage finite-volume time integration\n\n")
	}

	cfg := config.Load(cfgPath)

	var rec *metrics.Recorder
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		rec = metrics.NewRecorder(reg)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				io.PfRed("metrics server: %v\n", err)
			}
		}()
	}

	// A concrete problem (mesh, EOS, flux kernels, boundary transports) is
	// supplied by the caller's own collaborator implementations, the same
	// way gofem's materials file drives ele.GetAllocator — out of this
	// module's scope per spec.md §1's non-goals. This entry point validates
	// the configuration against the integrator/task-list core and runs it
	// against whatever blocks the caller registered.
	toggles := tasklist.Toggles{FluidEvolved: true}
	blocks := problemBlocks()

	ctl, err := driver.NewController(cfg, toggles, *ndim, blocks, rec, *verbose)
	if err != nil {
		chk.Panic("%v", err)
	}

	if mpi.Rank() == 0 {
		io.Pf("> integrator=%s cfl=%v (clamped) nblocks=%d\n", ctl.Descriptor.Name, ctl.CFLNumber, len(blocks))
	}

	// A real deployment's NEW_DT task (collab.TimestepProposer) proposes
	// each timestep from cell size and the clamped CFL number; here the
	// clamped CFL number itself is used as a constant step. With no blocks
	// registered (problemBlocks returns none), Run returns without stepping.
	if err := ctl.Run(*tFinal, func() float64 { return ctl.CFLNumber }); err != nil {
		chk.Panic("%v", err)
	}
}

// problemBlocks returns the blocks to integrate. A real deployment replaces
// this with mesh-partition-derived blocks wired to its own EOS/flux/
// transport collaborators; athint ships none, since constructing a mesh is
// explicitly out of scope (spec.md §1).
func problemBlocks() []*block.Block {
	return nil
}
