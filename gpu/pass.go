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
	"github.com/cpmech/gofdtd/vec3"
)

// pass implements fdtd.UpdatePass for the GPU backend.
type pass struct {
	instance *Instance
	state    *fdtd.State
}

// SetForcing implements fdtd.UpdatePass, staging into the same host-side
// ForcingBuffer the CPU backend uses; it is packed and uploaded once in
// Finish.
func (p *pass) SetForcing(point lat.Point, j, m vec3.T) {
	idx, ok := p.instance.strider.Index(point)
	if !ok {
		chk.Panic("gpu: set_forcing point %v out of bounds for lattice size %v", point, p.instance.config.SizeInLatticeCells)
	}
	p.state.Forcing.Set(idx, j, m)
}

// Finish implements fdtd.UpdatePass: stage host state up to the GPU,
// dispatch update_h then update_e, read the results back down, advance
// tick/time (spec §4.3 step 3, mirroring cpu/pass.go's ordering exactly).
func (p *pass) Finish() {
	in := p.instance
	cfg := in.config
	numCells := cfg.NumCells()

	prevParity := p.state.Parity()
	nextParity := prevParity.Other()

	ePrev := p.state.E.At(prevParity).Raw()
	hPrev := p.state.H.At(prevParity).Raw()

	cfgData := newConfigData(cfg, in.strider)
	cfgData.firstIndex = 0
	uploadConfig(in.configUBO, cfgData)

	uploadVec3(in.eBuf[prevParity], ePrev)
	uploadVec3(in.hBuf[prevParity], hPrev)
	uploadForcing(in.forcing, p.state.Forcing, numCells)

	// H half-step: self=H_prev, other=E_prev (curl via forward difference).
	dispatchUpdate(in.backend.layout.updateHProgram, in.configUBO, in.coefficients, in.forcing,
		in.hBuf[prevParity], in.eBuf[prevParity], in.hBuf[nextParity], in.dispatchPlan)

	// E half-step: self=E_prev, other=H_next (curl via backward difference).
	dispatchUpdate(in.backend.layout.updateEProgram, in.configUBO, in.coefficients, in.forcing,
		in.eBuf[prevParity], in.hBuf[nextParity], in.eBuf[nextParity], in.dispatchPlan)

	downloadVec3(in.eBuf[nextParity], p.state.E.At(nextParity).Raw())
	downloadVec3(in.hBuf[nextParity], p.state.H.At(nextParity).Raw())

	p.state.Advance(cfg.Resolution.Temporal)
}

func uploadVec3(buf uint32, raw []vec3.T) {
	data := packVec3(raw)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, buf)
	gl.BufferSubData(gl.SHADER_STORAGE_BUFFER, 0, len(data)*4, gl.Ptr(data))
}

func downloadVec3(buf uint32, dst []vec3.T) {
	data := make([]float32, len(dst)*4)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, buf)
	gl.GetBufferSubData(gl.SHADER_STORAGE_BUFFER, 0, len(data)*4, unsafe.Pointer(&data[0]))
	unpackVec3(dst, data)
}

func uploadForcing(buf uint32, forcing *fdtd.ForcingBuffer, numCells int) {
	packed := packForcing(forcing, numCells)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, buf)
	gl.BufferSubData(gl.SHADER_STORAGE_BUFFER, 0, len(packed)*int(unsafe.Sizeof(gpuForce{})), gl.Ptr(packed))
}
