// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package metrics exposes load-balance time accounting (SPEC_FULL.md §3
// "Load-balance time accounting") as Prometheus collectors, the same
// counter/histogram-wrapping style as the pack's VSA transformer/sink
// metrics wrappers: a small struct holding the collectors, with a method
// per thing being measured, nil-checked so an unregistered Recorder is a
// harmless no-op.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder records per-block load-balance time into a histogram labeled by
// block id, and the count of timesteps taken into a plain counter.
type Recorder struct {
	lbTime    *prometheus.HistogramVec
	timesteps prometheus.Counter
}

// NewRecorder creates and registers the collectors against reg. Passing
// prometheus.NewRegistry() (rather than the global DefaultRegisterer) keeps
// repeated construction in tests from panicking on duplicate registration.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		lbTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "athint_block_lb_time_seconds",
			Help:    "Accumulated load-balance time per block per timestep.",
			Buckets: prometheus.DefBuckets,
		}, []string{"block_id"}),
		timesteps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "athint_timesteps_total",
			Help: "Total number of completed timesteps.",
		}),
	}
	reg.MustRegister(r.lbTime, r.timesteps)
	return r
}

// ObserveBlockLBTime records one block's accumulated load-balance time for
// the timestep just completed (block.Block.LBTimeTotal).
func (r *Recorder) ObserveBlockLBTime(blockID int, d time.Duration) {
	if r == nil {
		return
	}
	r.lbTime.WithLabelValues(strconv.Itoa(blockID)).Observe(d.Seconds())
}

// IncTimestep records that one full timestep completed across all blocks.
func (r *Recorder) IncTimestep() {
	if r == nil {
		return
	}
	r.timesteps.Inc()
}
