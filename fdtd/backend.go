// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/vec3"
)

// Component selects which field Instance.Field observes.
type Component int

const (
	FieldE Component = iota
	FieldH
)

// UpdatePass is the short-lived, borrow-scoped object of spec §3.12/§4.3:
// it accumulates forcings, then atomically advances the state by one tick
// on Finish. Concrete backends (cpu, gpu) implement this; the runner talks
// to it only through this interface (the "erased wrapper" spec §9
// sanctions at the control boundary).
type UpdatePass interface {
	// SetForcing injects (j, m) current density at p. p must be in
	// bounds; out-of-bounds is a programming error (spec §4.3 step 2).
	SetForcing(p lat.Point, j, m vec3.T)

	// Finish commits all accumulated forcing, runs the H-then-E update
	// over every cell, and advances tick/time. A pass that is simply
	// dropped without calling Finish must not be observable as having
	// advanced anything (spec §4.3 step 4) — Go has no linear types, so
	// this is a documented caller obligation, not statically enforced.
	Finish()
}

// Instance is the immutable, shareable solver built from a SolverConfig
// plus a DomainDescription (spec §3.12, §4.2).
type Instance interface {
	Config() SolverConfig

	// CreateState returns a fresh, zero-initialized State.
	CreateState() *State

	// BeginUpdate borrows state mutably for the duration of the returned
	// UpdatePass.
	BeginUpdate(state *State) UpdatePass

	// Field returns an observation view over [from, to) of component at
	// the current contents of state (spec §4.6).
	Field(state *State, from, to lat.Point, component Component) (FieldView, error)
}

// Backend is the trait surface of spec §4.1.
type Backend interface {
	// CreateInstance iterates every lattice point of config exactly once
	// via domain, caching derived update coefficients, then never queries
	// domain again.
	CreateInstance(config SolverConfig, domain DomainDescription) (Instance, error)

	// MemoryRequired estimates the bytes a run of config would need, or
	// returns ok=false if the backend cannot estimate (used by the runner
	// to refuse requests exceeding a user-set cap).
	MemoryRequired(config SolverConfig) (bytes uint64, ok bool)
}
