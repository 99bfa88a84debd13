// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fdtd implements the backend-agnostic core: the SolverConfig,
// DomainDescription, Backend/Instance/State/UpdatePass trait surface
// (spec §3.8-§3.12, §4.1-§4.3), field observation (§4.6) and the PML
// coefficient builder (§3.11). Concrete backends live in the sibling cpu
// and gpu packages.
package fdtd

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofdtd/kernel"
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/phys"
)

// SolverConfig is a plain value describing one run: discretization,
// physical constants, lattice extent and per-axis boundary conditions.
// See spec §3.8. Boundary conditions default to Dirichlet on every axis
// (spec §9 Open Question "periodic requires only adding a variant to the
// boundary lookup" — resolved here by making BoundaryConditions part of
// the config, defaulted by NewSolverConfig).
type SolverConfig struct {
	Resolution         phys.Resolution
	PhysicalConstants  phys.PhysicalConstants
	SizeInLatticeCells lat.Point
	BoundaryConditions kernel.BoundaryConditions
}

// NewSolverConfig builds a config with Dirichlet boundaries on every axis.
// Use the BoundaryConditions field directly to opt into Periodic on
// specific axes.
func NewSolverConfig(res phys.Resolution, pc phys.PhysicalConstants, size lat.Point) SolverConfig {
	return SolverConfig{
		Resolution:         res,
		PhysicalConstants:  pc,
		SizeInLatticeCells: size,
		BoundaryConditions: kernel.DefaultBoundaryConditions(),
	}
}

// NumCells returns size.x*size.y*size.z.
func (c SolverConfig) NumCells() int {
	return c.SizeInLatticeCells.X * c.SizeInLatticeCells.Y * c.SizeInLatticeCells.Z
}

// Validate panics unless the resolution's components are strictly
// positive and finite — a basic type invariant, not a recoverable
// configuration error (spec §3.2).
func (c SolverConfig) Validate() {
	c.Resolution.Validate()
}

// CheckNumCells returns a synchronous configuration error if the lattice
// has zero cells (spec §3.8: "A zero-cell config is rejected", §7
// "Configuration errors ... reported synchronously at create_instance").
func (c SolverConfig) CheckNumCells() error {
	if c.NumCells() < 1 {
		return chk.Err("fdtd: solver config has zero cells (size=%v)", c.SizeInLatticeCells)
	}
	return nil
}

// Strider builds the Strider implied by this config's lattice extent.
func (c SolverConfig) Strider() lat.Strider {
	return lat.NewStrider(c.SizeInLatticeCells)
}
