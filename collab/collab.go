// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package collab declares the external collaborators that spec.md §1 puts
// out of scope: mesh refinement, physical boundary kernels, EOS
// conservative<->primitive routines, flux kernels, diffusion kernels,
// geometric source terms, opacity models, and MPI transport mechanics. Task
// bodies in package physics hold these as opaque, narrow interfaces — the
// same interface-segregation style as gofem's ele.Element family (Element,
// WithIntVars, Connector, CanExtrapolate, ...), so each task depends on
// only the single capability it actually calls.
package collab

// EOS converts a block's conserved register to its primitive register.
// Ghost-zone handling and fourth-order cell-averaging are the
// collaborator's concern (spec.md §4.6 "Primitives (CONS2PRIM)").
type EOS interface {
	ConservedToPrimitive(cons, prim []float64) error
}

// FluxKernel computes (or adds a diffusive contribution to) the flux arrays
// of the block it is bound to. Used for CALC_*FLX and DIFFUSE_* tasks alike
// — both are "fill in my owner's flux arrays" from the task list's point of
// view (spec.md §4.3, §4.4).
type FluxKernel interface {
	ComputeFlux() error
}

// FluxDivergence adds the divergence of previously computed fluxes into a
// conserved register.
//
// AddFluxDivergence takes a weight that already folds in dt at the call
// site (the hydro/scalar ordinary-integrate and penultimate-hack
// convention). AddFluxDivergenceToAverage takes beta un-scaled by dt,
// because that collaborator is specified to fold dt internally — this is
// the resolution of spec.md §9's open question, recorded in DESIGN.md.
type FluxDivergence interface {
	AddFluxDivergence(u []float64, weight float64) error
	AddFluxDivergenceToAverage(u []float64, beta float64) error
}

// SourceTerm adds hydro's geometric and time-dependent source terms.
type SourceTerm interface {
	HasSources() bool
	AddHydroSourceTerms(u []float64, t, weight float64) error
}

// RadiationSource adds radiation source terms, including the back-reaction
// deposited into hydro's conserved variables (spec.md §4.4 SRCTERM_HYD
// dependency note).
type RadiationSource interface {
	AddRadiationSourceTerms(uRad []float64, t, weight float64) error
}

// Transport mediates one family's boundary-value exchange: send, receive,
// and the set-boundary pass that copies received data into ghost zones.
// Receive returns ready=false (never an error) while data has not yet
// arrived; the executor interprets that as tasklist.Fail and retries
// (spec.md §4.6 "ReceiveHydro ... returns success when all neighbor
// buffers have arrived, else fail").
type Transport interface {
	StartReceiving()
	ClearAllBoundary()
	Send(u []float64) error
	Receive() (ready bool, err error)
	SetBoundaries(u []float64) error
}

// FluxTransport mediates flux-correction exchange at refinement interfaces
// (SEND/RECV_*FLX); narrower than Transport because there is no
// set-boundary phase.
type FluxTransport interface {
	Send() error
	Receive() (ready bool, err error)
}

// ShearingBoxTransport mediates the shearing-box send/receive/set-boundary
// exchange, plus (for the EMF variant only) the periodic remap step that
// RMAP_EMFSH performs after the EMF boundary values are set (spec.md §4.3,
// §4.4).
type ShearingBoxTransport interface {
	Send(u []float64) error
	Receive() (ready bool, err error)
	SetBoundaries(u []float64) error
	Remap() error
}

// Prolongation interpolates coarse-level ghost data into a fine block's
// ghost cells at refinement interfaces (spec.md §4.6 "Prolongation").
type Prolongation interface {
	Prolong(t, weight float64) error
}

// PhysicalBoundary applies physical (non-inter-block) boundary conditions.
type PhysicalBoundary interface {
	Apply() error
}

// Opacity computes opacities consumed by radiation transport.
type Opacity interface {
	CalcOpacity() error
}

// AMRFlagger decides whether a block should be flagged for refinement or
// derefinement; the decision itself, and any regridding, is out of scope.
type AMRFlagger interface {
	FlagRefinement() error
}

// UserWork runs problem-specific end-of-step user code.
type UserWork interface {
	Run() error
}

// TimestepProposer proposes the block's next stable timestep.
type TimestepProposer interface {
	NewDt() (float64, error)
}
