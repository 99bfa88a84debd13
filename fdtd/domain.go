// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/phys"
)

// DomainDescription is the consumer-supplied per-point query surface: a
// material and an optional PML parametrization at a lattice point. A
// backend calls this exactly once per cell, during CreateInstance, and
// never queries it again (spec §4.1).
type DomainDescription interface {
	Material(p lat.Point) phys.Material
	PML(p lat.Point) (GradingParams, NormalDepth, bool)
}

// NormalDepth is the (normalized depth, outward normal) pair a
// DomainDescription supplies for a PML cell, consumed by
// BuildPmlCoefficients.
type NormalDepth struct {
	Depth  float64
	Normal [3]float64
}

// UniformDomain is a DomainDescription that assigns the same material to
// every cell and declares no PML region. Convenient for S1/S2/S4-style
// scenarios and for tests.
type UniformDomain struct {
	Mat phys.Material
}

// Material implements DomainDescription.
func (d UniformDomain) Material(p lat.Point) phys.Material {
	return d.Mat
}

// PML implements DomainDescription.
func (d UniformDomain) PML(p lat.Point) (GradingParams, NormalDepth, bool) {
	return GradingParams{}, NormalDepth{}, false
}

// CoefficientLattice holds one set of precomputed UpdateCoefficients per
// cell, derived once from a DomainDescription and never recomputed (spec
// §4.1). Shared by the cpu and gpu backends' CreateInstance.
type CoefficientLattice struct {
	storage lat.Storage[phys.UpdateCoefficients]
}

// BuildCoefficientLattice iterates every lattice point exactly once,
// querying domain for its material and deriving UpdateCoefficients against
// config's resolution and physical constants.
func BuildCoefficientLattice(config SolverConfig, domain DomainDescription) CoefficientLattice {
	strider := config.Strider()
	storage := lat.NewStorage[phys.UpdateCoefficients](strider)
	it := storage.Iter()
	for {
		p, cell, ok := it.Next()
		if !ok {
			break
		}
		mat := domain.Material(p)
		*cell = phys.DeriveUpdateCoefficients(mat, config.Resolution, config.PhysicalConstants)
	}
	return CoefficientLattice{storage: storage}
}

// At returns the coefficients for p, or nil if out of bounds.
func (c *CoefficientLattice) At(p lat.Point) *phys.UpdateCoefficients {
	return c.storage.At(p)
}

// AtIndex returns the coefficients at linear index i.
func (c *CoefficientLattice) AtIndex(i int) *phys.UpdateCoefficients {
	return c.storage.AtIndex(i)
}

// Raw exposes the backing slice in strider order, e.g. for packing into a
// GPU material storage buffer.
func (c *CoefficientLattice) Raw() []phys.UpdateCoefficients {
	return c.storage.Raw()
}
