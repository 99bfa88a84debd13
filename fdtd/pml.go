// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"math"

	"github.com/cpmech/gofdtd/vec3"
)

// GradingParams parametrizes the graded-profile PML builder: polynomial
// order m, stretching order mA, maximum conductivity σ_max, maximum
// stretching κ_max and maximum shift a_max. See spec §3.11.
type GradingParams struct {
	M, Ma    float64
	SigmaMax float64
	KappaMax float64
	AMax     float64
}

// PmlCoefficients are the resolved per-cell CPML parameters: graded
// conductivity σ, stretching κ and frequency shift a. See spec §3.11.
//
// Only the coefficients are specified here. The auxiliary-variable
// stepping rule that consumes them (the Ψ terms in spec §4.4) is left
// unimplemented per spec §9's Open Question — see DESIGN.md.
type PmlCoefficients struct {
	Sigma, Kappa, A float64
	Normal          vec3.T
}

// BuildPmlCoefficients resolves GradingParams against a normalized depth
// into the PML layer (0 at the interior-facing boundary of the layer, 1 at
// the outer lattice edge) and an outward normal, following the standard
// polynomial grading profile (Taflove & Hagness, computational
// electrodynamics):
//
//	σ(d) = σ_max · d^m
//	κ(d) = 1 + (κ_max - 1) · d^m
//	a(d) = a_max · (1 - d)^mA
func BuildPmlCoefficients(params GradingParams, normalizedDepth float64, normal vec3.T) PmlCoefficients {
	d := clamp01(normalizedDepth)
	return PmlCoefficients{
		Sigma:  params.SigmaMax * math.Pow(d, params.M),
		Kappa:  1 + (params.KappaMax-1)*math.Pow(d, params.M),
		A:      params.AMax * math.Pow(1-d, params.Ma),
		Normal: normal,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
