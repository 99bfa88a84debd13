// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/vec3"
)

// pass implements fdtd.UpdatePass for both the single- and
// multi-threaded instance variants; the only difference between them is
// how runCells below partitions the index range (see runner.go).
type pass struct {
	instance *Instance
	state    *fdtd.State
	runCells func(total int, body func(lo, hi int))
}

// SetForcing implements fdtd.UpdatePass.
func (p *pass) SetForcing(point lat.Point, j, m vec3.T) {
	idx, ok := p.instance.config.Strider().Index(point)
	if !ok {
		chk.Panic("cpu: set_forcing point %v out of bounds for lattice size %v", point, p.instance.config.SizeInLatticeCells)
	}
	p.state.Forcing.Set(idx, j, m)
}

// Finish implements fdtd.UpdatePass: H update over all cells, then E
// update over all cells reading the just-written H, then tick/time
// advance (spec §4.3 step 3).
func (p *pass) Finish() {
	cfg := p.instance.config
	strider := cfg.Strider()
	size := cfg.SizeInLatticeCells
	res := cfg.Resolution
	bc := cfg.BoundaryConditions

	nextParity := p.state.Parity().Other()

	hNext, hPrev := p.state.H.Pair(nextParity)
	eNext, ePrev := p.state.E.Pair(nextParity)

	total := strider.Total()
	p.runCells(total, func(lo, hi int) {
		stepRangeH(lo, hi, strider, &p.instance.coeffs, ePrev, hPrev, hNext, p.state.Forcing, res, bc, size)
	})

	p.runCells(total, func(lo, hi int) {
		stepRangeE(lo, hi, strider, &p.instance.coeffs, hNext, ePrev, eNext, p.state.Forcing, res, bc, size)
	})

	p.state.Advance(res.Temporal)
}
