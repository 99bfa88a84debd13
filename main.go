// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofdtd/config"
	"github.com/cpmech/gofdtd/cpu"
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/runner"
)

func main() {

	verbose := true

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nGofdtd -- Go Finite-Difference Time-Domain solver\n\n")
	io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide a scenario filename. Ex.: slab.yaml\n")
	}
	fnamepath := flag.Arg(0)

	scenario, err := config.Load(fnamepath)
	if err != nil {
		chk.Panic("%v\n", err)
	}

	cfg, err := scenario.BuildSolverConfig()
	if err != nil {
		chk.Panic("%v\n", err)
	}
	domain := scenario.BuildDomain()
	sources, err := scenario.BuildSources()
	if err != nil {
		chk.Panic("%v\n", err)
	}

	threads := scenario.Threads
	if threads < 1 {
		threads = 1
	}
	backend := cpu.NewBackend(cpu.Options{NumThreads: threads})

	instance, err := backend.CreateInstance(cfg, domain)
	if err != nil {
		chk.Panic("%v\n", err)
	}
	state := instance.CreateState()

	stop := stopConditionFromConfig(scenario.Stop)

	var recorder *runner.CSVRecorder
	if scenario.Recording.Path != "" {
		recorder = runner.NewCSVRecorder(scenario.Recording.Path, instance, lat.Point{}, cfg.SizeInLatticeCells)
	}

	opts := runner.Options{
		Stop:             stop,
		ObservationDelay: time.Duration(scenario.Recording.ObservationDelay * float64(time.Second)),
	}
	if recorder != nil {
		opts.Observe = recorder.Observe
	}

	if verbose {
		io.Pf("lattice: %v cells, Δt=%v\n", cfg.NumCells(), cfg.Resolution.Temporal)
	}

	r := runner.NewRunner(instance, state, sources, opts)
	r.Start()
	r.Wait()

	if recorder != nil {
		if err := recorder.Close(); err != nil {
			chk.Panic("%v\n", err)
		}
	}

	snap := r.Snapshot()
	io.PfGreen("done: tick=%d time=%v\n", snap.SimTick, snap.SimTime)
}

func stopConditionFromConfig(s config.StopConfig) runner.StopCondition {
	switch s.Kind {
	case "step_limit":
		return runner.StepLimit{Limit: s.Steps}
	case "sim_time_limit":
		return runner.SimulatedTimeLimit{Limit: s.Time}
	case "realtime_limit":
		return runner.RealtimeLimit{Limit: time.Duration(s.Secs * float64(time.Second))}
	default:
		return runner.Never{}
	}
}
