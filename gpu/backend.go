// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofdtd/fdtd"
)

// bytesPerCell accounts for the six GL buffers kept resident per cell: two
// swap halves x two fields x vec4, one Coeff, one Force.
const bytesPerCell = 2*2*16 + 16 + 32

// Backend is the OpenGL 4.3 compute-shader implementation of
// fdtd.Backend (spec §4.4-§4.5, L6b). It owns the compiled pipelines and
// the Context they were compiled against; every Instance it creates
// shares those programs.
type Backend struct {
	ctx    *Context
	layout *pipelineLayout
	limits ComputeLimits
}

// NewBackend compiles the update_h/update_e pipelines against ctx's
// current GL context, sized for a lattice of up to hintCells cells
// (compute shaders fix their local_size at compile time, so the
// workgroup size is chosen once, up front, rather than per Instance).
func NewBackend(ctx *Context, hintCells int) (*Backend, error) {
	limits := DefaultComputeLimits()
	workgroupSize := limits.WorkgroupSizeFor(hintCells)
	layout, err := newPipelineLayout(workgroupSize)
	if err != nil {
		return nil, err
	}
	return &Backend{ctx: ctx, layout: layout, limits: limits}, nil
}

// CreateInstance implements fdtd.Backend. Coefficients are derived exactly
// as in the CPU backend, then uploaded once as a static GL buffer.
func (b *Backend) CreateInstance(config fdtd.SolverConfig, domain fdtd.DomainDescription) (fdtd.Instance, error) {
	config.Validate()
	if err := config.CheckNumCells(); err != nil {
		return nil, err
	}

	c := config.PhysicalConstants.SpeedOfLight()
	dims := activeDimensions(config)
	if config.Resolution.ViolatesCourant(c, dims) {
		io.Pfyel("gpu: warning: Δt=%v exceeds the Courant limit %v for Δx=%v in %d active dimension(s); the run will proceed but may diverge\n",
			config.Resolution.Temporal, config.Resolution.CourantLimit(c, dims), config.Resolution.Spatial, dims)
	}

	strider := config.Strider()
	coeffLattice := fdtd.BuildCoefficientLattice(config, domain)
	gpuCoeffs := coefficientsToGPU(coeffLattice.Raw())

	numCells := config.NumCells()
	plan := b.limits.DivideWorkIntoDispatches(numCells, b.layout.workgroupSize)

	configUBO := createBuffer(gl.UNIFORM_BUFFER, int(unsafe.Sizeof(configData{})), nil, gl.DYNAMIC_DRAW)
	coefficients := createBuffer(gl.SHADER_STORAGE_BUFFER, len(gpuCoeffs)*int(unsafe.Sizeof(gpuCoeff{})), gl.Ptr(gpuCoeffs), gl.STATIC_DRAW)
	forcing := createBuffer(gl.SHADER_STORAGE_BUFFER, numCells*int(unsafe.Sizeof(gpuForce{})), nil, gl.DYNAMIC_DRAW)

	fieldSize := numCells * 16 // vec4 per cell
	var eBuf, hBuf [2]uint32
	for i := range eBuf {
		eBuf[i] = createBuffer(gl.SHADER_STORAGE_BUFFER, fieldSize, nil, gl.DYNAMIC_DRAW)
		hBuf[i] = createBuffer(gl.SHADER_STORAGE_BUFFER, fieldSize, nil, gl.DYNAMIC_DRAW)
	}

	return &Instance{
		backend:      b,
		config:       config,
		strider:      strider,
		configUBO:    configUBO,
		coefficients: coefficients,
		forcing:      forcing,
		eBuf:         eBuf,
		hBuf:         hBuf,
		dispatchPlan: plan,
	}, nil
}

// MemoryRequired implements fdtd.Backend.
func (b *Backend) MemoryRequired(config fdtd.SolverConfig) (uint64, bool) {
	return uint64(config.NumCells()) * bytesPerCell, true
}

func activeDimensions(config fdtd.SolverConfig) int {
	dims := 0
	size := config.SizeInLatticeCells
	if size.X > 1 {
		dims++
	}
	if size.Y > 1 {
		dims++
	}
	if size.Z > 1 {
		dims++
	}
	if dims == 0 {
		dims = 1
	}
	return dims
}
