// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coord implements the world-space <-> lattice-space mapping of
// spec §4.10: a lattice placed in world space by an AABB-minimum origin,
// an orientation quaternion and a per-axis spatial resolution.
package coord

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cpmech/gofdtd/lat"
)

// Frame places a lattice in world space.
type Frame struct {
	Origin      mgl64.Vec3
	Orientation mgl64.Quat
	Spatial     [3]float64
}

// NewFrame returns an axis-aligned, unrotated Frame at origin.
func NewFrame(origin mgl64.Vec3, spatial [3]float64) Frame {
	return Frame{Origin: origin, Orientation: mgl64.QuatIdent(), Spatial: spatial}
}

// ToWorld maps a lattice point to its cell-center world position: scale by
// the spatial resolution, rotate by the orientation, then translate by the
// origin (spec §4.10: "Lattice→world scales, rotates, translates").
func (f Frame) ToWorld(p lat.Point) mgl64.Vec3 {
	local := mgl64.Vec3{
		float64(p.X) * f.Spatial[0],
		float64(p.Y) * f.Spatial[1],
		float64(p.Z) * f.Spatial[2],
	}
	return f.Origin.Add(f.Orientation.Rotate(local))
}

// ToLattice maps a world-space point back to the nearest lattice point,
// returning ok=false if the nearest cell falls outside [0, size) on any
// axis (spec §4.10: "World→lattice rounds to the nearest integer cell and
// returns None when any component falls outside [0, size)").
func (f Frame) ToLattice(w mgl64.Vec3, size lat.Point) (lat.Point, bool) {
	local := f.Orientation.Inverse().Rotate(w.Sub(f.Origin))
	x := math.Round(local.X() / f.Spatial[0])
	y := math.Round(local.Y() / f.Spatial[1])
	z := math.Round(local.Z() / f.Spatial[2])

	p := lat.Point{X: int(x), Y: int(y), Z: int(z)}
	if p.X < 0 || p.Y < 0 || p.Z < 0 || p.X >= size.X || p.Y >= size.Y || p.Z >= size.Z {
		return lat.Point{}, false
	}
	return p, true
}
