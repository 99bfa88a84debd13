// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phys implements the pure, allocation-free material model of the
// core: PhysicalConstants, Material, Resolution and the per-cell
// UpdateCoefficients they derive (spec §3.2-§3.5, L3).
package phys

import "math"

// PhysicalConstants holds vacuum permittivity (ε₀) and permeability (µ₀).
// See spec §3.3.
type PhysicalConstants struct {
	VacuumPermittivity float64
	VacuumPermeability float64
}

// SI is the standard-units preset.
var SI = PhysicalConstants{
	VacuumPermittivity: 8.854e-12,
	VacuumPermeability: 1.257e-6,
}

// REDUCED is the normalized preset (ε₀=µ₀=1), convenient for test scenarios
// where only relative material contrasts matter.
var REDUCED = PhysicalConstants{
	VacuumPermittivity: 1.0,
	VacuumPermeability: 1.0,
}

// SpeedOfLight returns c = 1/√(ε₀·µ₀) for these constants.
func (c PhysicalConstants) SpeedOfLight() float64 {
	return 1.0 / math.Sqrt(c.VacuumPermittivity*c.VacuumPermeability)
}
