// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runner drives the update loop on a dedicated worker goroutine
// (spec §4.9): shared state guarded by a mutex plus condition variable,
// cooperative pause/resume, pluggable stop conditions, observation-delay
// gating and an optional CSV trace of per-tick diagnostics.
package runner

import "time"

// StopCondition is a pure predicate evaluated against the shared state
// once per loop iteration (spec §4.9).
type StopCondition interface {
	Reached(s Snapshot) bool
}

// Never never stops the run.
type Never struct{}

// Reached implements StopCondition.
func (Never) Reached(Snapshot) bool { return false }

// StepLimit stops once the tick counter reaches Limit.
type StepLimit struct {
	Limit uint64
}

// Reached implements StopCondition.
func (s StepLimit) Reached(snap Snapshot) bool { return snap.SimTick >= s.Limit }

// SimulatedTimeLimit stops once simulated time reaches Limit.
type SimulatedTimeLimit struct {
	Limit float64
}

// Reached implements StopCondition.
func (s SimulatedTimeLimit) Reached(snap Snapshot) bool { return snap.SimTime >= s.Limit }

// RealtimeLimit stops once wall-clock running time reaches Limit.
type RealtimeLimit struct {
	Limit time.Duration
}

// Reached implements StopCondition.
func (s RealtimeLimit) Reached(snap Snapshot) bool { return snap.TotalRunningTime >= s.Limit }
