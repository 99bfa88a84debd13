// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec3 implements the double-precision 3-vector carried by every
// field value on the CPU side of the core (spec §3.1). It is deliberately
// free of any other package dependency so every layer above it (lat, phys,
// kernel, fdtd, cpu, gpu) can use it without risking an import cycle.
package vec3

import "math"

// T is a 3-vector of doubles.
type T struct {
	X, Y, Z float64
}

// Zero is the additive identity.
var Zero = T{}

// Add returns a+b.
func Add(a, b T) T {
	return T{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a-b.
func Sub(a, b T) T {
	return T{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a*s.
func Scale(a T, s float64) T {
	return T{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a·b.
func Dot(a, b T) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// NormSq returns the squared Euclidean norm |a|².
func NormSq(a T) float64 {
	return Dot(a, a)
}

// Norm returns the Euclidean norm |a|.
func Norm(a T) float64 {
	return math.Sqrt(NormSq(a))
}

// IsZero reports whether a is exactly the zero vector.
func (a T) IsZero() bool {
	return a.X == 0 && a.Y == 0 && a.Z == 0
}
