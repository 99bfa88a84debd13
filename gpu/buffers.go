// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/kernel"
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/phys"
	"github.com/cpmech/gofdtd/vec3"
)

// configData mirrors the Config uniform block's std140 layout in
// shaders.go byte-for-byte. Field order must not change without updating
// configDataFirstIndexOffset below.
type configData struct {
	size       [4]int32
	strides    [4]int32
	spatial    [4]float32
	dt         float32
	boundaryX  int32
	boundaryY  int32
	boundaryZ  int32
	firstIndex int32
	numCells   int32
	_pad       [2]int32 // keeps the struct a whole multiple of 8 bytes; not load-bearing for std140
}

// configDataFirstIndexOffset is the byte offset of the firstIndex field,
// used to patch just that field between dispatch chunks.
const configDataFirstIndexOffset = 4*4 + 4*4 + 4*4 + 4 + 4 + 4 + 4

func boundaryMode(bc kernel.BoundaryCondition) int32 {
	switch bc.(type) {
	case kernel.Periodic:
		return 1
	default:
		return 0
	}
}

func newConfigData(config fdtd.SolverConfig, strider lat.Strider) configData {
	size := config.SizeInLatticeCells
	strides := strider.Strides
	res := config.Resolution
	return configData{
		size:    [4]int32{int32(size.X), int32(size.Y), int32(size.Z), 0},
		strides: [4]int32{int32(strides[0]), int32(strides[1]), int32(strides[2]), 0},
		spatial: [4]float32{float32(res.Spatial[0]), float32(res.Spatial[1]), float32(res.Spatial[2]), 0},
		dt:      float32(res.Temporal),
		boundaryX: boundaryMode(config.BoundaryConditions[0]),
		boundaryY: boundaryMode(config.BoundaryConditions[1]),
		boundaryZ: boundaryMode(config.BoundaryConditions[2]),
		numCells:  int32(config.NumCells()),
	}
}

// gpuCoeff and gpuForce mirror the Coeff and Force structs declared in
// shaders.go, used only to size and stage host-side buffers before upload.
type gpuCoeff struct{ ca, cb, da, db float32 }
type gpuForce struct {
	j [4]float32
	m [4]float32
}

func coefficientsToGPU(coeffs []phys.UpdateCoefficients) []gpuCoeff {
	out := make([]gpuCoeff, len(coeffs))
	for i, c := range coeffs {
		out[i] = gpuCoeff{ca: float32(c.Ca), cb: float32(c.Cb), da: float32(c.Da), db: float32(c.Db)}
	}
	return out
}

// createBuffer allocates a GL buffer object and uploads data (or just
// reserves sizeBytes if data is nil), with usage hinting GL_DYNAMIC_DRAW
// for anything rewritten every tick and GL_STATIC_DRAW for the
// once-derived coefficient buffer.
func createBuffer(target uint32, sizeBytes int, data unsafe.Pointer, usage uint32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(target, buf)
	gl.BufferData(target, sizeBytes, data, usage)
	return buf
}

// packVec3 widens a Storage's raw []vec3.T into a host-side []float32 of
// vec4s (the fourth component unused padding), matching the Cell struct's
// std430 layout in shaders.go.
func packVec3(raw []vec3.T) []float32 {
	out := make([]float32, len(raw)*4)
	for i, v := range raw {
		out[i*4+0] = float32(v.X)
		out[i*4+1] = float32(v.Y)
		out[i*4+2] = float32(v.Z)
	}
	return out
}

// unpackVec3 is the inverse of packVec3, reading a downloaded vec4 buffer
// back into a Storage's raw []vec3.T in place.
func unpackVec3(dst []vec3.T, raw []float32) {
	for i := range dst {
		dst[i] = vec3.T{X: float64(raw[i*4+0]), Y: float64(raw[i*4+1]), Z: float64(raw[i*4+2])}
	}
}

// packForcing widens a ForcingBuffer into the dense per-cell layout the
// compute shader expects: unlike the CPU backend's sparse slot indirection
// (spec §4.5, §9), the GPU path must write every cell's forcing on every
// dispatch regardless, so sparsity buys nothing and a plain per-cell
// buffer is simpler to stage.
func packForcing(forcing *fdtd.ForcingBuffer, numCells int) []gpuForce {
	out := make([]gpuForce, numCells)
	for i := range out {
		v := forcing.At(i)
		out[i] = gpuForce{
			j: [4]float32{float32(v.J.X), float32(v.J.Y), float32(v.J.Z), 0},
			m: [4]float32{float32(v.M.X), float32(v.M.Y), float32(v.M.Z), 0},
		}
	}
	return out
}
