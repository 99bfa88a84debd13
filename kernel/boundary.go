// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the staggered-grid curl discretization shared
// by both backends: forward differences for the H-update half-step,
// backward differences for the E-update half-step, with pluggable
// boundary-condition neighbor resolution (spec §4.4).
package kernel

import "github.com/cpmech/gofdtd/lat"

// Axis names the three lattice axes, also used to index BoundaryConditions
// and to pick a vec3 component.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func axisUnit(a Axis) lat.Point {
	switch a {
	case AxisX:
		return lat.Point{X: 1}
	case AxisY:
		return lat.Point{Y: 1}
	case AxisZ:
		return lat.Point{Z: 1}
	}
	panic("kernel: invalid axis")
}

// BoundaryCondition resolves what a curl stencil should read when a
// requested neighbor falls outside the lattice along axis, having stepped
// delta cells (±1) from p. If zero is true, the stencil treats the
// neighbor as the zero vector instead of sampling resolved (this is how
// Dirichlet is expressed; Periodic instead returns a wrapped in-bounds
// point with zero=false).
type BoundaryCondition interface {
	Resolve(p lat.Point, axis Axis, delta int, size lat.Point) (resolved lat.Point, zero bool)
}

// Dirichlet is the default boundary condition: out-of-range neighbors read
// as the zero vector (spec §4.4).
type Dirichlet struct{}

// Resolve implements BoundaryCondition.
func (Dirichlet) Resolve(p lat.Point, axis Axis, delta int, size lat.Point) (lat.Point, bool) {
	return lat.Point{}, true
}

// Periodic wraps out-of-range neighbors around the lattice extent on the
// affected axis (spec §4.4, §9 Open Question: "supporting periodic
// requires only adding a variant to the boundary lookup").
type Periodic struct{}

// Resolve implements BoundaryCondition.
func (Periodic) Resolve(p lat.Point, axis Axis, delta int, size lat.Point) (lat.Point, bool) {
	q := p
	switch axis {
	case AxisX:
		q.X = wrap(p.X+delta, size.X)
	case AxisY:
		q.Y = wrap(p.Y+delta, size.Y)
	case AxisZ:
		q.Z = wrap(p.Z+delta, size.Z)
	}
	return q, false
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// BoundaryConditions holds one BoundaryCondition per axis (spec §4.4: "the
// boundary-condition array, one per axis").
type BoundaryConditions [3]BoundaryCondition

// DefaultBoundaryConditions returns Dirichlet on every axis.
func DefaultBoundaryConditions() BoundaryConditions {
	return BoundaryConditions{Dirichlet{}, Dirichlet{}, Dirichlet{}}
}
