// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofdtd/lat"
)

func Test_source01(tst *testing.T) {

	chk.PrintTitle("source01. missing components evaluate to zero")

	s := Source{Point: lat.Point{1, 2, 3}, Jz: Gaussian(1, 0, 1)}
	j, m := s.Evaluate(0)
	chk.Scalar(tst, "Jx", 1e-15, j.X, 0)
	chk.Scalar(tst, "Jy", 1e-15, j.Y, 0)
	chk.Scalar(tst, "Jz", 1e-15, j.Z, 1)
	if !m.IsZero() {
		tst.Fatalf("expected zero M, got %v", m)
	}
}

func Test_source02(tst *testing.T) {

	chk.PrintTitle("source02. gaussian peaks at its center")

	g := Gaussian(2.5, 1.0, 0.5)
	chk.Scalar(tst, "peak", 1e-15, g.F(1.0, nil), 2.5)
	if g.F(1.0, nil) <= g.F(0.0, nil) || g.F(1.0, nil) <= g.F(2.0, nil) {
		tst.Fatal("expected the center sample to dominate both neighbors")
	}
}

func Test_source03(tst *testing.T) {

	chk.PrintTitle("source03. CW oscillates at the requested frequency")

	w := CW(1.0, 1.0, 0)
	chk.Scalar(tst, "t=0", 1e-15, w.F(0, nil), 0)
	chk.Scalar(tst, "t=0.25", 1e-12, w.F(0.25, nil), 1.0)
	chk.Scalar(tst, "t=0.5", 1e-12, w.F(0.5, nil), 0)
}
