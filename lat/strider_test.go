// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lat

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_strider01(tst *testing.T) {

	chk.PrintTitle("strider01. index/point round trip")

	s := NewStrider(Point{4, 3, 2})
	chk.IntAssert(s.Total(), 24)

	// P2: point -> index -> point
	for z := 0; z < 2; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				p := Point{x, y, z}
				i, ok := s.Index(p)
				if !ok {
					tst.Fatalf("Index(%v) unexpectedly out of bounds", p)
				}
				back, ok := s.Point(i)
				if !ok || back != p {
					tst.Fatalf("round trip failed for %v: got %v", p, back)
				}
			}
		}
	}

	// P3: index -> point -> index
	for i := 0; i < s.Total(); i++ {
		p, ok := s.Point(i)
		if !ok {
			tst.Fatalf("Point(%d) unexpectedly out of bounds", i)
		}
		back, ok := s.Index(p)
		if !ok || back != i {
			tst.Fatalf("round trip failed for index %d: got %d", i, back)
		}
	}
}

func Test_strider02(tst *testing.T) {

	chk.PrintTitle("strider02. out-of-bounds")

	s := NewStrider(Point{4, 3, 2})
	if _, ok := s.Index(Point{4, 0, 0}); ok {
		tst.Fatal("expected out-of-bounds on x==size.x")
	}
	if _, ok := s.Index(Point{-1, 0, 0}); ok {
		tst.Fatal("expected out-of-bounds on negative x")
	}
	if _, ok := s.Point(-1); ok {
		tst.Fatal("expected out-of-bounds on negative index")
	}
	if _, ok := s.Point(s.Total()); ok {
		tst.Fatal("expected out-of-bounds on index==total")
	}
}

func Test_strider03(tst *testing.T) {

	chk.PrintTitle("strider03. contiguous ranges")

	s := NewStrider(Point{4, 3, 2})

	// full lattice is contiguous
	lo, hi, ok := s.ContiguousIndexRange(Point{0, 0, 0}, Point{4, 3, 2})
	if !ok || lo != 0 || hi != 24 {
		tst.Fatalf("expected full range contiguous, got lo=%d hi=%d ok=%v", lo, hi, ok)
	}

	// a single full XY slab (one Z layer) is contiguous
	lo, hi, ok = s.ContiguousIndexRange(Point{0, 0, 1}, Point{4, 3, 2})
	if !ok || lo != 12 || hi != 24 {
		tst.Fatalf("expected slab contiguous, got lo=%d hi=%d ok=%v", lo, hi, ok)
	}

	// a sub-row within a single (y,z) is contiguous
	lo, hi, ok = s.ContiguousIndexRange(Point{1, 0, 0}, Point{3, 1, 1})
	if !ok {
		tst.Fatalf("expected sub-row contiguous, got lo=%d hi=%d ok=%v", lo, hi, ok)
	}

	// a partial-width, multi-row range is not contiguous
	_, _, ok = s.ContiguousIndexRange(Point{1, 0, 0}, Point{3, 2, 1})
	if ok {
		tst.Fatal("expected partial-width multi-row range to be non-contiguous")
	}
}
