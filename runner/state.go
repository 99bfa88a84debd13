// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"sync"
	"time"
)

// sharedState is the mutex-plus-condvar-guarded state the worker goroutine
// shares with the owning application (spec §4.9: "{ finished, paused,
// sim_time, sim_tick, start_time, stop_time, total_running_time,
// last_step_time, step_delay, observation_delay }").
type sharedState struct {
	mu   sync.Mutex
	cond *sync.Cond

	finished bool
	paused   bool

	simTime float64
	simTick uint64

	startTime time.Time
	stopTime  time.Time

	totalRunningTime time.Duration
	lastStepTime     time.Duration

	stepDelay        time.Duration
	observationDelay time.Duration
}

func newSharedState(stepDelay, observationDelay time.Duration) *sharedState {
	s := &sharedState{stepDelay: stepDelay, observationDelay: observationDelay}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Snapshot is an immutable, lock-free copy of sharedState taken under the
// mutex, handed to StopCondition.Reached and to observation callbacks.
type Snapshot struct {
	Finished         bool
	Paused           bool
	SimTime          float64
	SimTick          uint64
	TotalRunningTime time.Duration
	LastStepTime     time.Duration
}

func (s *sharedState) snapshot() Snapshot {
	return Snapshot{
		Finished:         s.finished,
		Paused:           s.paused,
		SimTime:          s.simTime,
		SimTick:          s.simTick,
		TotalRunningTime: s.totalRunningTime,
		LastStepTime:     s.lastStepTime,
	}
}

// Snapshot returns a point-in-time copy of the shared state, safe to call
// from any goroutine.
func (r *Runner) Snapshot() Snapshot {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return r.state.snapshot()
}

// Pause requests the worker stop advancing the simulation at the next
// loop iteration. Cooperative: the worker finishes any in-flight update
// pass first.
func (r *Runner) Pause() {
	r.state.mu.Lock()
	r.state.paused = true
	r.state.mu.Unlock()
}

// Resume clears a pause request and wakes the worker if it is blocked.
func (r *Runner) Resume() {
	r.state.mu.Lock()
	r.state.paused = false
	r.state.mu.Unlock()
	r.state.cond.Broadcast()
}

// Stop requests the worker exit at the next loop iteration, waking it if
// it is paused.
func (r *Runner) Stop() {
	r.state.mu.Lock()
	r.state.finished = true
	r.state.stopTime = time.Now()
	r.state.mu.Unlock()
	r.state.cond.Broadcast()
}
