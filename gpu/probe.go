// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/phys"
)

// Probe is a standalone smoke test: it opens a throwaway Context, builds a
// 500-cell one-dimensional vacuum lattice with a 20-cell dielectric slab
// (cells 190 to 209), and runs a handful of ticks, logging whether the pipelines
// compiled and ran without error. It exists so an operator (or a startup
// health check) can answer "does compute shader support work on this
// machine" without standing up a full scenario, mirroring the reference
// implementation's own `run_test` smoke check.
func Probe() error {
	ctx, err := NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	size := lat.Point{500, 1, 1}
	cfg := fdtd.NewSolverConfig(
		phys.Resolution{Spatial: [3]float64{1, 1, 1}, Temporal: 0.25},
		phys.REDUCED,
		size,
	)

	backend, err := NewBackend(ctx, cfg.NumCells())
	if err != nil {
		return chk.Err("gpu: probe: %v", err)
	}

	domain := slabDomain{lo: 190, hi: 210}
	instance, err := backend.CreateInstance(cfg, domain)
	if err != nil {
		return chk.Err("gpu: probe: create instance failed: %v", err)
	}

	state := instance.CreateState()
	for n := 0; n < 10; n++ {
		pass := instance.BeginUpdate(state)
		pass.Finish()
	}

	io.Pfgreen("gpu: probe ok, tick=%d time=%v\n", state.Tick(), state.Time())
	return nil
}

// slabDomain assigns a raised-permittivity slab over [lo, hi) on the
// X axis and vacuum everywhere else, the same dielectric-slab shape the
// reference implementation's own compute-pipeline smoke test uses.
type slabDomain struct {
	lo, hi int
}

func (d slabDomain) Material(p lat.Point) phys.Material {
	if p.X >= d.lo && p.X < d.hi {
		m := phys.VACUUM
		m.RelativePermittivity = 3.9
		return m
	}
	return phys.VACUUM
}

func (d slabDomain) PML(p lat.Point) (fdtd.GradingParams, fdtd.NormalDepth, bool) {
	return fdtd.GradingParams{}, fdtd.NormalDepth{}, false
}
