// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lat implements the Yee-lattice addressing primitives: the
// bijection between a 3D lattice coordinate and a linear index (Strider),
// contiguous generic storage addressable by either (Storage), and the
// tick-parity double buffer used by every leapfrog update (SwapBuffer).
package lat

import "github.com/cpmech/gosl/chk"

// Point is an integer lattice coordinate.
type Point struct {
	X, Y, Z int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// InBounds reports whether p lies within [0,size) on every axis.
func (p Point) InBounds(size Point) bool {
	return p.X >= 0 && p.X < size.X &&
		p.Y >= 0 && p.Y < size.Y &&
		p.Z >= 0 && p.Z < size.Z
}

// axisUnit returns the unit point along axis a (0=x, 1=y, 2=z).
func axisUnit(a int) Point {
	switch a {
	case 0:
		return Point{1, 0, 0}
	case 1:
		return Point{0, 1, 0}
	case 2:
		return Point{0, 0, 1}
	}
	chk.Panic("lat: invalid axis %d (must be 0, 1 or 2)", a)
	return Point{}
}
