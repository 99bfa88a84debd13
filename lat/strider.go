// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lat

import "github.com/cpmech/gosl/chk"

// Strider is the bijection between a lattice Point and a linear index,
// parametrized by the lattice extents and their derived strides. See
// spec §3.6.
type Strider struct {
	Size    Point // number of cells along each axis
	Strides [4]int // x, y, z strides and total cell count
}

// NewStrider builds a Strider for the given lattice extents. Panics if any
// extent is non-positive; a zero-cell lattice is rejected by the caller
// (SolverConfig), not here, since Strider has no notion of "config".
func NewStrider(size Point) Strider {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		chk.Panic("lat: strider size must be strictly positive on every axis (got %v)", size)
	}
	return Strider{
		Size: size,
		Strides: [4]int{
			1,
			size.X,
			size.X * size.Y,
			size.X * size.Y * size.Z,
		},
	}
}

// Total returns the number of lattice cells.
func (s Strider) Total() int {
	return s.Strides[3]
}

// Index maps a Point to its linear index. The second return is false iff p
// is out of bounds.
func (s Strider) Index(p Point) (int, bool) {
	if !p.InBounds(s.Size) {
		return 0, false
	}
	return p.X*s.Strides[0] + p.Y*s.Strides[1] + p.Z*s.Strides[2], true
}

// Point maps a linear index back to a Point. The second return is false iff
// i is out of [0, Total()).
func (s Strider) Point(i int) (Point, bool) {
	if i < 0 || i >= s.Strides[3] {
		return Point{}, false
	}
	z := i / s.Strides[2]
	rem := i % s.Strides[2]
	y := rem / s.Strides[1]
	x := rem % s.Strides[1]
	return Point{x, y, z}, true
}

// ContiguousIndexRange returns the linear index range [lo, hi) corresponding
// to the axis-aligned point range [from, to) when that range maps onto a
// single contiguous run of linear indices (i.e. it spans the full X and Y
// extent except possibly on its outermost Z layers, or is otherwise a
// prefix/suffix/full slice in strider order). ok is false when the range is
// not contiguous; in that case lo/hi is the smallest enclosing contiguous
// slice, so a caller may over-read and mask.
func (s Strider) ContiguousIndexRange(from, to Point) (lo, hi int, ok bool) {
	loIdx, okLo := s.Index(from)
	// to is exclusive and may legitimately equal Size on each axis, so index
	// the inclusive point (to - (1,1,1)) and add 1.
	last := Point{to.X - 1, to.Y - 1, to.Z - 1}
	hiIdx, okHi := s.Index(last)
	if !okLo || !okHi || from.X > last.X || from.Y > last.Y || from.Z > last.Z {
		return 0, 0, false
	}
	hiIdx++ // exclusive

	spanX := to.X - from.X
	spanY := to.Y - from.Y
	spanZ := to.Z - from.Z
	fullX := spanX == s.Size.X
	fullY := spanY == s.Size.Y

	// Row-major (x fastest, then y, then z) layout is contiguous iff the
	// range is: a sub-row (single y, single z), a full-width band (full x,
	// single z), or a stack of full slabs (full x and full y, any z).
	contiguous := (spanY == 1 && spanZ == 1) ||
		(fullX && spanZ == 1) ||
		(fullX && fullY)

	if contiguous {
		return loIdx, hiIdx, true
	}

	// not contiguous: return the smallest enclosing linear slice.
	return loIdx, hiIdx, false
}
