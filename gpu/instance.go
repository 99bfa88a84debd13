// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/lat"
)

// Instance is the GPU backend's fdtd.Instance. The authoritative field
// data lives in the host-resident fdtd.State between ticks (so Field
// observation can reuse fdtd.NewStorageFieldView exactly as the CPU
// backend does); each UpdatePass stages it up to the GL buffers below,
// dispatches the two compute pipelines, and reads the result back down
// (spec §9: "round-trips through host memory every tick" is an accepted
// simplification over a fully GPU-resident state, see DESIGN.md).
type Instance struct {
	backend      *Backend
	config       fdtd.SolverConfig
	strider      lat.Strider
	configUBO    uint32
	coefficients uint32
	forcing      uint32
	eBuf, hBuf   [2]uint32
	dispatchPlan []Dispatch
}

// Config implements fdtd.Instance.
func (in *Instance) Config() fdtd.SolverConfig {
	return in.config
}

// CreateState implements fdtd.Instance.
func (in *Instance) CreateState() *fdtd.State {
	return fdtd.NewState(in.strider)
}

// BeginUpdate implements fdtd.Instance.
func (in *Instance) BeginUpdate(state *fdtd.State) fdtd.UpdatePass {
	state.Forcing.Reset()
	return &pass{instance: in, state: state}
}

// Field implements fdtd.Instance, identically to the CPU backend: the
// host-resident state storage is the data of record between passes.
func (in *Instance) Field(state *fdtd.State, from, to lat.Point, component fdtd.Component) (fdtd.FieldView, error) {
	size := in.config.SizeInLatticeCells
	if from.X < 0 || from.Y < 0 || from.Z < 0 || to.X > size.X || to.Y > size.Y || to.Z > size.Z {
		return nil, chk.Err("gpu: field range [%v, %v) exceeds lattice size %v", from, to, size)
	}
	switch component {
	case fdtd.FieldE:
		return fdtd.NewStorageFieldView(state.E.At(state.Parity()), from, to), nil
	case fdtd.FieldH:
		return fdtd.NewStorageFieldView(state.H.At(state.Parity()), from, to), nil
	}
	return nil, chk.Err("gpu: unknown field component %v", component)
}

func uploadConfig(ubo uint32, data configData) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, int(unsafe.Sizeof(data)), gl.Ptr(&data))
}
