// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Resolution is the spatio-temporal discretization: Δx,Δy,Δz and Δt. See
// spec §3.2.
type Resolution struct {
	Spatial  [3]float64 // Δx, Δy, Δz
	Temporal float64    // Δt
}

// Validate panics unless all four components are strictly positive and
// finite (spec §3.2 invariant). It does NOT enforce the Courant condition:
// a violation is the caller's responsibility to warn about (spec §3.2,
// S4) — this function only rejects values that make the scheme
// meaningless regardless of stability.
func (r Resolution) Validate() {
	check := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) || math.IsNaN(v) {
			chk.Panic("phys: resolution component %s must be strictly positive and finite (got %v)", name, v)
		}
	}
	check("Δx", r.Spatial[0])
	check("Δy", r.Spatial[1])
	check("Δz", r.Spatial[2])
	check("Δt", r.Temporal)
}

// CourantLimit returns the maximum stable Δt for this spatial resolution
// and speed of light c, in D spatial dimensions: Δx_min / (c·√D). See
// GLOSSARY "Courant condition".
func (r Resolution) CourantLimit(c float64, dims int) float64 {
	dxMin := r.Spatial[0]
	for _, dx := range r.Spatial[1:] {
		if dx < dxMin {
			dxMin = dx
		}
	}
	return dxMin / (c * math.Sqrt(float64(dims)))
}

// ViolatesCourant reports whether Δt exceeds the Courant limit implied by c
// and the number of active spatial dimensions (spec §3.2, S4).
func (r Resolution) ViolatesCourant(c float64, dims int) bool {
	return r.Temporal > r.CourantLimit(c, dims)
}
