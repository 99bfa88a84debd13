// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/phys"
	"github.com/cpmech/gofdtd/vec3"
)

// Test_s1 is spec scenario S1: a 1x1x1 vacuum lattice, no source, 100
// ticks. E and H stay exactly zero; tick=100; time=100·Δt.
func Test_s1(tst *testing.T) {

	chk.PrintTitle("s1. one-cell identity")

	cfg := fdtd.NewSolverConfig(
		phys.Resolution{Spatial: [3]float64{1, 1, 1}, Temporal: 0.1},
		phys.REDUCED,
		lat.Point{1, 1, 1},
	)
	backend := NewBackend(Options{NumThreads: 1})
	instance, err := backend.CreateInstance(cfg, fdtd.UniformDomain{Mat: phys.VACUUM})
	if err != nil {
		tst.Fatalf("CreateInstance failed: %v", err)
	}
	state := instance.CreateState()

	chk.IntAssert(int(state.Tick()), 0)
	chk.Scalar(tst, "time", 1e-15, state.Time(), 0)

	for n := 0; n < 100; n++ {
		pass := instance.BeginUpdate(state)
		pass.Finish()
	}

	chk.IntAssert(int(state.Tick()), 100)
	chk.Scalar(tst, "time", 1e-12, state.Time(), 100*cfg.Resolution.Temporal)

	view, err := instance.Field(state, lat.Point{0, 0, 0}, lat.Point{1, 1, 1}, fdtd.FieldE)
	if err != nil {
		tst.Fatalf("Field failed: %v", err)
	}
	val, ok := view.At(lat.Point{0, 0, 0})
	if !ok {
		tst.Fatal("expected in-range cell")
	}
	chk.Scalar(tst, "E", 1e-15, vec3.Norm(val), 0)
}

// Test_p11 checks that the multi-threaded backend yields bit-identical
// output to single-threaded for identical inputs, since per-cell writes
// are independent and no cross-goroutine reduction occurs (spec P11).
func Test_p11(tst *testing.T) {

	chk.PrintTitle("p11. multi-threaded matches single-threaded bit-for-bit")

	size := lat.Point{8, 6, 1}
	cfg := fdtd.NewSolverConfig(
		phys.Resolution{Spatial: [3]float64{1, 1, 1}, Temporal: 0.2},
		phys.REDUCED,
		size,
	)
	domain := fdtd.UniformDomain{Mat: phys.VACUUM}

	runScenario := func(numThreads int) *fdtd.State {
		backend := NewBackend(Options{NumThreads: numThreads})
		instance, err := backend.CreateInstance(cfg, domain)
		if err != nil {
			tst.Fatalf("CreateInstance failed: %v", err)
		}
		state := instance.CreateState()
		for n := 0; n < 20; n++ {
			pass := instance.BeginUpdate(state)
			pass.SetForcing(lat.Point{4, 3, 0}, vec3.T{Z: 1.0}, vec3.Zero)
			pass.Finish()
		}
		return state
	}

	single := runScenario(1)
	multi := runScenario(4)

	strider := cfg.Strider()
	for i := 0; i < strider.Total(); i++ {
		p, _ := strider.Point(i)
		eSingle, _ := fdtd.NewStorageFieldView(single.E.At(single.Parity()), lat.Point{}, size).At(p)
		eMulti, _ := fdtd.NewStorageFieldView(multi.E.At(multi.Parity()), lat.Point{}, size).At(p)
		if eSingle != eMulti {
			tst.Fatalf("E mismatch at %v: single=%v multi=%v", p, eSingle, eMulti)
		}
	}
}

// Test_p6 checks that a vacuum lattice with zero sources stays zero.
func Test_p6(tst *testing.T) {

	chk.PrintTitle("p6. vacuum, zero sources, field stays zero")

	size := lat.Point{4, 4, 4}
	cfg := fdtd.NewSolverConfig(
		phys.Resolution{Spatial: [3]float64{1, 1, 1}, Temporal: 0.1},
		phys.REDUCED,
		size,
	)
	backend := NewBackend(Options{NumThreads: 1})
	instance, err := backend.CreateInstance(cfg, fdtd.UniformDomain{Mat: phys.VACUUM})
	if err != nil {
		tst.Fatalf("CreateInstance failed: %v", err)
	}
	state := instance.CreateState()

	for n := 0; n < 30; n++ {
		pass := instance.BeginUpdate(state)
		pass.Finish()
	}

	view, _ := instance.Field(state, lat.Point{}, size, fdtd.FieldE)
	it := view.Iter()
	for {
		p, val, ok := it.Next()
		if !ok {
			break
		}
		if !val.IsZero() {
			tst.Fatalf("expected zero field at %v, got %v", p, val)
		}
	}
}
