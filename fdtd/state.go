// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/vec3"
)

// State is the mutable, per-run field storage of spec §3.9: double-buffered
// E and H, the sparse forcing buffer, tick counter and simulated time. It
// is owned exclusively by whichever thread is driving the update loop; a
// fresh State has tick=0, time=0 and both field halves identically zero at
// every cell (spec P4).
type State struct {
	E, H    lat.SwapBuffer[lat.Storage[vec3.T]]
	Forcing *ForcingBuffer
	tick    uint64
	time    float64
}

// NewState allocates a zero-initialized State over strider.
func NewState(strider lat.Strider) *State {
	return &State{
		E:       lat.NewSwapBuffer(lat.NewStorage[vec3.T](strider), lat.NewStorage[vec3.T](strider)),
		H:       lat.NewSwapBuffer(lat.NewStorage[vec3.T](strider), lat.NewStorage[vec3.T](strider)),
		Forcing: NewForcingBuffer(strider.Total()),
	}
}

// Tick returns the number of completed update passes.
func (s *State) Tick() uint64 {
	return s.tick
}

// Time returns the simulated time, tick*Δt accumulated over successful
// passes (spec P5).
func (s *State) Time() float64 {
	return s.time
}

// Parity returns the current tick's SwapBufferIndex: the half that holds
// the most recently written ("previous", about to become "next"'s source)
// values.
func (s *State) Parity() lat.SwapBufferIndex {
	return lat.SwapBufferIndexFromTick(s.tick)
}

// Advance commits one successful update pass: tick += 1, time += Δt. Only
// called by UpdatePass.Finish implementations, after both half-steps have
// completed (spec §4.3 step 3).
func (s *State) Advance(dt float64) {
	s.tick++
	s.time += dt
}
