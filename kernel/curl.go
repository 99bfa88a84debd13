// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/phys"
	"github.com/cpmech/gofdtd/vec3"
)

// Sampler is anything addressable by lattice Point that yields a field
// vector, or nil if the point is out of bounds. *lat.Storage[vec3.T]
// satisfies this directly.
type Sampler interface {
	At(p lat.Point) *vec3.T
}

// Mode selects which half-step's finite-difference stencil to use: forward
// differences for the H-update (E→H), backward for the E-update (H→E).
// See spec §4.4.
type Mode int

const (
	Forward Mode = iota
	Backward
)

// neighborValue resolves the field value at p shifted by delta cells along
// axis, honoring bc when that lands outside the lattice.
func neighborValue(field Sampler, bc BoundaryConditions, size lat.Point, p lat.Point, axis Axis, delta int) vec3.T {
	unit := axisUnit(axis)
	q := lat.Point{X: p.X + unit.X*delta, Y: p.Y + unit.Y*delta, Z: p.Z + unit.Z*delta}
	if q.InBounds(size) {
		if v := field.At(q); v != nil {
			return *v
		}
		return vec3.Zero
	}
	resolved, zero := bc[axis].Resolve(p, axis, delta, size)
	if zero {
		return vec3.Zero
	}
	if v := field.At(resolved); v != nil {
		return *v
	}
	return vec3.Zero
}

func component(v vec3.T, axis Axis) float64 {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	panic("kernel: invalid axis")
}

// partial approximates ∂F_comp/∂x_axis at p using mode's (δ_forward,
// δ_backward) pair: (1,0) for Forward, (0,-1) for Backward (spec §4.4).
func partial(field Sampler, bc BoundaryConditions, size lat.Point, p lat.Point, axis, comp Axis, mode Mode, dx float64) float64 {
	var deltaForward, deltaBackward int
	if mode == Forward {
		deltaForward, deltaBackward = 1, 0
	} else {
		deltaForward, deltaBackward = 0, -1
	}
	vf := neighborValue(field, bc, size, p, axis, deltaForward)
	vb := neighborValue(field, bc, size, p, axis, deltaBackward)
	return (component(vf, comp) - component(vb, comp)) / dx
}

// Curl computes the discrete curl of field at p, using mode's stencil
// (Forward for the H-update reading E, Backward for the E-update reading
// the just-written H). See spec §4.4.
func Curl(field Sampler, bc BoundaryConditions, size lat.Point, p lat.Point, res phys.Resolution, mode Mode) vec3.T {
	dFzdy := partial(field, bc, size, p, AxisY, AxisZ, mode, res.Spatial[1])
	dFydz := partial(field, bc, size, p, AxisZ, AxisY, mode, res.Spatial[2])
	dFxdz := partial(field, bc, size, p, AxisZ, AxisX, mode, res.Spatial[2])
	dFzdx := partial(field, bc, size, p, AxisX, AxisZ, mode, res.Spatial[0])
	dFydx := partial(field, bc, size, p, AxisX, AxisY, mode, res.Spatial[0])
	dFxdy := partial(field, bc, size, p, AxisY, AxisX, mode, res.Spatial[1])
	return vec3.T{
		X: dFzdy - dFydz,
		Y: dFxdz - dFzdx,
		Z: dFydx - dFxdy,
	}
}
