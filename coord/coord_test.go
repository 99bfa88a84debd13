// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coord

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofdtd/lat"
)

func Test_coord01(tst *testing.T) {

	chk.PrintTitle("coord01. world and lattice round-trip through an unrotated frame")

	f := NewFrame(mgl64.Vec3{-5, -5, 0}, [3]float64{1, 1, 1})
	size := lat.Point{10, 10, 1}

	p := lat.Point{X: 3, Y: 7, Z: 0}
	w := f.ToWorld(p)
	chk.Scalar(tst, "world.x", 1e-12, w.X(), -2)
	chk.Scalar(tst, "world.y", 1e-12, w.Y(), 2)

	back, ok := f.ToLattice(w, size)
	if !ok {
		tst.Fatal("expected the round-tripped point to stay in bounds")
	}
	if back != p {
		tst.Fatalf("round trip mismatch: got %v, want %v", back, p)
	}
}

func Test_coord02(tst *testing.T) {

	chk.PrintTitle("coord02. out-of-bounds world points report ok=false")

	f := NewFrame(mgl64.Vec3{0, 0, 0}, [3]float64{1, 1, 1})
	size := lat.Point{4, 4, 4}

	_, ok := f.ToLattice(mgl64.Vec3{100, 0, 0}, size)
	if ok {
		tst.Fatal("expected an out-of-range world point to be rejected")
	}
}

func Test_coord03(tst *testing.T) {

	chk.PrintTitle("coord03. a quarter turn about Z maps +X to +Y")

	f := Frame{
		Origin:      mgl64.Vec3{0, 0, 0},
		Orientation: mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 0, 1}),
		Spatial:     [3]float64{1, 1, 1},
	}
	w := f.ToWorld(lat.Point{X: 1, Y: 0, Z: 0})
	chk.Scalar(tst, "world.x", 1e-9, w.X(), 0)
	chk.Scalar(tst, "world.y", 1e-9, w.Y(), 1)
}
