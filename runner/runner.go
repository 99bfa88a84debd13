// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/source"
)

// ObservationFunc is invoked whenever at least ObservationDelay has
// elapsed since the previous call (spec §4.9 step 4). Returning a non-nil
// error marks the run finished.
type ObservationFunc func(snap Snapshot, sim *fdtd.State) error

// Options configures a Runner at construction.
type Options struct {
	Stop             StopCondition
	StepDelay        time.Duration
	ObservationDelay time.Duration
	StartPaused      bool
	Observe          ObservationFunc
}

// Runner owns the worker goroutine driving one Instance/State pair
// forward, cooperatively, under a StopCondition (spec §4.9, L7).
type Runner struct {
	instance fdtd.Instance
	sim      *fdtd.State
	sources  []source.Source
	stop     StopCondition
	observe  ObservationFunc
	state    *sharedState
	done     chan struct{}
}

// NewRunner builds a Runner over instance/sim with the given sources and
// options. The worker goroutine is not started until Start is called.
func NewRunner(instance fdtd.Instance, sim *fdtd.State, sources []source.Source, opts Options) *Runner {
	if opts.Stop == nil {
		opts.Stop = Never{}
	}
	shared := newSharedState(opts.StepDelay, opts.ObservationDelay)
	shared.paused = opts.StartPaused
	return &Runner{
		instance: instance,
		sim:      sim,
		sources:  sources,
		stop:     opts.Stop,
		observe:  opts.Observe,
		state:    shared,
		done:     make(chan struct{}),
	}
}

// Start launches the worker goroutine. Wait blocks until it exits.
func (r *Runner) Start() {
	r.state.mu.Lock()
	r.state.startTime = time.Now()
	r.state.mu.Unlock()
	go r.loop()
}

// Wait blocks until the worker goroutine has finished (stop condition
// reached, Stop called, or an observation callback returned an error).
func (r *Runner) Wait() {
	<-r.done
}

func (r *Runner) loop() {
	defer close(r.done)

	var lastObservation time.Time
	firstIteration := true

	for {
		r.state.mu.Lock()
		if r.state.finished {
			r.state.mu.Unlock()
			return
		}
		for r.state.paused {
			if firstIteration && r.observe != nil {
				snap := r.state.snapshot()
				r.state.mu.Unlock()
				if err := r.observe(snap, r.sim); err != nil {
					io.Pfred("runner: observation failed while paused: %v\n", err)
					r.Stop()
					return
				}
				r.state.mu.Lock()
			}
			r.state.cond.Wait()
			if r.state.finished {
				r.state.mu.Unlock()
				return
			}
		}
		snap := r.state.snapshot()
		r.state.mu.Unlock()
		firstIteration = false

		if r.stop.Reached(snap) {
			r.Stop()
			return
		}

		stepStart := time.Now()
		pass := r.instance.BeginUpdate(r.sim)
		source.Inject(r.sources, r.sim.Time(), pass)
		pass.Finish()
		stepTime := time.Since(stepStart)

		r.state.mu.Lock()
		r.state.simTick = r.sim.Tick()
		r.state.simTime = r.sim.Time()
		r.state.lastStepTime = stepTime
		r.state.totalRunningTime += stepTime
		observationDelay := r.state.observationDelay
		stepDelay := r.state.stepDelay
		r.state.mu.Unlock()

		if r.observe != nil && time.Since(lastObservation) >= observationDelay {
			if err := r.observe(r.Snapshot(), r.sim); err != nil {
				io.Pfred("runner: observation failed: %v\n", err)
				r.Stop()
				return
			}
			lastObservation = time.Now()
		}

		if remaining := stepDelay - stepTime; remaining > 0 {
			time.Sleep(remaining)
		}
	}
}
