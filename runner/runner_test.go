// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofdtd/cpu"
	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/phys"
	"github.com/cpmech/gofdtd/source"
)

func newTestInstance(tst *testing.T, size lat.Point) (fdtd.Instance, *fdtd.State) {
	cfg := fdtd.NewSolverConfig(
		phys.Resolution{Spatial: [3]float64{1, 1, 1}, Temporal: 0.1},
		phys.REDUCED,
		size,
	)
	backend := cpu.NewBackend(cpu.Options{NumThreads: 1})
	instance, err := backend.CreateInstance(cfg, fdtd.UniformDomain{Mat: phys.VACUUM})
	if err != nil {
		tst.Fatalf("CreateInstance failed: %v", err)
	}
	return instance, instance.CreateState()
}

// Test_s5 is spec scenario S5: a paused runner does not advance the tick
// counter until resumed.
func Test_s5(tst *testing.T) {

	chk.PrintTitle("s5. pause holds the tick counter; resume releases it")

	instance, sim := newTestInstance(tst, lat.Point{4, 4, 1})
	r := NewRunner(instance, sim, nil, Options{
		Stop:        StepLimit{Limit: 1_000_000},
		StartPaused: true,
	})
	r.Start()

	time.Sleep(20 * time.Millisecond)
	snap := r.Snapshot()
	if snap.SimTick != 0 {
		tst.Fatalf("expected tick=0 while paused, got %d", snap.SimTick)
	}

	r.Resume()
	time.Sleep(20 * time.Millisecond)
	r.Stop()
	r.Wait()

	if r.Snapshot().SimTick == 0 {
		tst.Fatal("expected the tick counter to have advanced after resume")
	}
}

// Test_s6 checks that the snapshot handed to an observation callback is
// internally consistent (tick and time always agree with the state the
// callback is also given). It does not sample a field view, so the
// restartable-iterator side of scenario S6 is not checked here.
func Test_s6(tst *testing.T) {

	chk.PrintTitle("s6. observation snapshots stay consistent with state")

	instance, sim := newTestInstance(tst, lat.Point{4, 4, 1})

	var mismatches int
	observe := func(snap Snapshot, sim *fdtd.State) error {
		if snap.SimTick != sim.Tick() || snap.SimTime != sim.Time() {
			mismatches++
		}
		return nil
	}

	r := NewRunner(instance, sim, []source.Source{{Point: lat.Point{1, 1, 0}, Jz: source.Gaussian(1, 0, 1)}}, Options{
		Stop:    StepLimit{Limit: 20},
		Observe: observe,
	})
	r.Start()
	r.Wait()

	if mismatches != 0 {
		tst.Fatalf("observed %d inconsistent snapshots", mismatches)
	}
	if r.Snapshot().SimTick != 20 {
		tst.Fatalf("expected tick=20 at stop, got %d", r.Snapshot().SimTick)
	}
}

func Test_stop01(tst *testing.T) {

	chk.PrintTitle("stop01. stop condition predicates")

	if (Never{}).Reached(Snapshot{SimTick: 1 << 40}) {
		tst.Fatal("Never must never stop")
	}
	if !(StepLimit{Limit: 10}).Reached(Snapshot{SimTick: 10}) {
		tst.Fatal("StepLimit must stop once tick reaches the limit")
	}
	if !(SimulatedTimeLimit{Limit: 1.0}).Reached(Snapshot{SimTime: 1.5}) {
		tst.Fatal("SimulatedTimeLimit must stop once time exceeds the limit")
	}
	if !(RealtimeLimit{Limit: time.Second}).Reached(Snapshot{TotalRunningTime: 2 * time.Second}) {
		tst.Fatal("RealtimeLimit must stop once running time exceeds the limit")
	}
}
