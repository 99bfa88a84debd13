// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/lat"
)

// Instance is the CPU backend's fdtd.Instance: config, the once-derived
// CoefficientLattice, and the threading policy baked in at construction
// (spec §9 "threading policy is a value, not a type" — switching requires
// recreating the instance).
type Instance struct {
	config     fdtd.SolverConfig
	coeffs     fdtd.CoefficientLattice
	numThreads int
}

// Config implements fdtd.Instance.
func (in *Instance) Config() fdtd.SolverConfig {
	return in.config
}

// CreateState implements fdtd.Instance.
func (in *Instance) CreateState() *fdtd.State {
	return fdtd.NewState(in.config.Strider())
}

// BeginUpdate implements fdtd.Instance.
func (in *Instance) BeginUpdate(state *fdtd.State) fdtd.UpdatePass {
	state.Forcing.Reset()
	p := &pass{instance: in, state: state}
	if in.numThreads > 1 {
		p.runCells = parallelRunner(in.numThreads)
	} else {
		p.runCells = sequentialRunner
	}
	return p
}

// Field implements fdtd.Instance.
func (in *Instance) Field(state *fdtd.State, from, to lat.Point, component fdtd.Component) (fdtd.FieldView, error) {
	size := in.config.SizeInLatticeCells
	if from.X < 0 || from.Y < 0 || from.Z < 0 || to.X > size.X || to.Y > size.Y || to.Z > size.Z {
		return nil, chk.Err("cpu: field range [%v, %v) exceeds lattice size %v", from, to, size)
	}
	switch component {
	case fdtd.FieldE:
		return fdtd.NewStorageFieldView(state.E.At(state.Parity()), from, to), nil
	case fdtd.FieldH:
		return fdtd.NewStorageFieldView(state.H.At(state.Parity()), from, to), nil
	}
	return nil, chk.Err("cpu: unknown field component %v", component)
}
