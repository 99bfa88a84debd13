// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements the single- and multi-threaded CPU backend of
// spec §4.4-§4.5 (L6a): the per-cell FDTD leapfrog update over kernel.Curl
// and phys.UpdateCoefficients.
package cpu

import (
	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/kernel"
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/phys"
	"github.com/cpmech/gofdtd/vec3"
)

// updateCellH computes H_next(p) = Da·H_prev(p) + Db·(-curl(E_prev)(p) -
// M_source(p) + ΨH), ΨH=0 (no PML stepping rule attached; see DESIGN.md).
func updateCellH(p lat.Point, ePrev kernel.Sampler, hPrev vec3.T, coeff phys.UpdateCoefficients, forcing fdtd.SourceValue, res phys.Resolution, bc kernel.BoundaryConditions, size lat.Point) vec3.T {
	curlE := kernel.Curl(ePrev, bc, size, p, res, kernel.Forward)
	term := vec3.Sub(vec3.Scale(curlE, -1), forcing.M)
	return vec3.Add(vec3.Scale(hPrev, coeff.Da), vec3.Scale(term, coeff.Db))
}

// updateCellE computes E_next(p) = Ca·E_prev(p) + Cb·(curl(H_next)(p) -
// J_source(p) + ΨE), ΨE=0.
func updateCellE(p lat.Point, hNext kernel.Sampler, ePrev vec3.T, coeff phys.UpdateCoefficients, forcing fdtd.SourceValue, res phys.Resolution, bc kernel.BoundaryConditions, size lat.Point) vec3.T {
	curlH := kernel.Curl(hNext, bc, size, p, res, kernel.Backward)
	term := vec3.Sub(curlH, forcing.J)
	return vec3.Add(vec3.Scale(ePrev, coeff.Ca), vec3.Scale(term, coeff.Cb))
}

// stepRangeH runs the H-update for linear indices [lo, hi) into hNext, then
// (once the caller has synchronized all ranges of the H pass) the
// caller runs stepRangeE, the E-update for [lo, hi) into eNext. Kept as two separate
// entry points rather than one function spanning both half-steps because
// the H-update must be fully materialized across ALL ranges before ANY
// range begins the E-update (spec §4.4 "Ordering H-before-E is
// mandatory").
func stepRangeH(lo, hi int, strider lat.Strider, coeffs *fdtd.CoefficientLattice, ePrev, hPrev, hNext *lat.Storage[vec3.T], forcing *fdtd.ForcingBuffer, res phys.Resolution, bc kernel.BoundaryConditions, size lat.Point) {
	for i := lo; i < hi; i++ {
		p, _ := strider.Point(i)
		coeff := *coeffs.AtIndex(i)
		prevVal := *hPrev.AtIndex(i)
		f := forcing.At(i)
		*hNext.AtIndex(i) = updateCellH(p, ePrev, prevVal, coeff, f, res, bc, size)
	}
}

func stepRangeE(lo, hi int, strider lat.Strider, coeffs *fdtd.CoefficientLattice, hNext, ePrev, eNext *lat.Storage[vec3.T], forcing *fdtd.ForcingBuffer, res phys.Resolution, bc kernel.BoundaryConditions, size lat.Point) {
	for i := lo; i < hi; i++ {
		p, _ := strider.Point(i)
		coeff := *coeffs.AtIndex(i)
		prevVal := *ePrev.AtIndex(i)
		f := forcing.At(i)
		*eNext.AtIndex(i) = updateCellE(p, hNext, prevVal, coeff, f, res, bc, size)
	}
}
