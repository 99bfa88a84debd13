// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

// Material holds the four per-cell constitutive parameters of spec §3.4.
// Materials are assigned once, at instance creation, and never change
// thereafter (spec §3.4, §4.1).
type Material struct {
	RelativePermittivity float64
	RelativePermeability float64
	ElectricConductivity float64
	MagneticConductivity float64
}

// VACUUM is the zero-loss, unit-relative-permittivity/permeability preset.
var VACUUM = Material{
	RelativePermittivity: 1.0,
	RelativePermeability: 1.0,
	ElectricConductivity: 0.0,
	MagneticConductivity: 0.0,
}

// Equal reports whether two materials carry identical parameters. Used to
// de-duplicate UpdateCoefficients derivation over large uniform regions
// (SPEC_FULL §"Supplemented features" item 1); has no effect on the
// once-per-cell caching contract of spec §4.1.
func (m Material) Equal(other Material) bool {
	return m == other
}
