// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofdtd/fdtd"
)

// Options configures the CPU backend at construction. Requesting
// NumThreads <= 1 transparently downgrades to single-threaded (spec
// §4.5).
type Options struct {
	NumThreads int
}

// Backend is the CPU implementation of fdtd.Backend (spec §4.4-§4.5, L6a).
type Backend struct {
	opts Options
}

// NewBackend constructs a CPU backend with the given threading policy.
func NewBackend(opts Options) *Backend {
	return &Backend{opts: opts}
}

// bytesPerCell accounts for: 2 swap halves × 2 fields (E,H) × 3 float64
// components, plus one UpdateCoefficients (4 float64) and one uint32
// forcing slot per cell.
const bytesPerCell = 2*2*3*8 + 4*8 + 4

// CreateInstance implements fdtd.Backend. It iterates every lattice point
// exactly once via domain (spec §4.1), derives and caches
// UpdateCoefficients, and logs (but does not reject) a Courant-condition
// violation (spec §7, S4).
func (b *Backend) CreateInstance(config fdtd.SolverConfig, domain fdtd.DomainDescription) (fdtd.Instance, error) {
	config.Validate()
	if err := config.CheckNumCells(); err != nil {
		return nil, err
	}

	c := config.PhysicalConstants.SpeedOfLight()
	dims := activeDimensions(config)
	if config.Resolution.ViolatesCourant(c, dims) {
		io.Pfyel("cpu: warning: Δt=%v exceeds the Courant limit %v for Δx=%v in %d active dimension(s); the run will proceed but may diverge\n",
			config.Resolution.Temporal, config.Resolution.CourantLimit(c, dims), config.Resolution.Spatial, dims)
	}

	coeffs := fdtd.BuildCoefficientLattice(config, domain)
	return &Instance{
		config:     config,
		coeffs:     coeffs,
		numThreads: b.opts.NumThreads,
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
