// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofdtd/lat"
)

const sampleScenario = `
backend: cpu
threads: 4
lattice:
  size: [20, 20, 1]
  spatial: [1.0, 1.0, 1.0]
  temporal: 0.2
  constants: reduced
boundary:
  x: dirichlet
  y: periodic
  z: dirichlet
regions:
  - from: [8, 0, 0]
    to: [12, 20, 1]
    relative_permittivity: 3.9
sources:
  - point: [4, 4, 0]
    component: jz
    shape: gaussian
    amplitude: 1.0
    center: 2.0
    width: 0.5
stop:
  kind: step_limit
  steps: 500
recording:
  path: trace.csv
  observation_delay: 0.0
`

func Test_scenario01(tst *testing.T) {

	chk.PrintTitle("scenario01. load and build a scenario end to end")

	dir := tst.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(sampleScenario), 0o644); err != nil {
		tst.Fatalf("writing fixture: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	chk.IntAssert(s.Lattice.Size[0], 20)

	cfg, err := s.BuildSolverConfig()
	if err != nil {
		tst.Fatalf("BuildSolverConfig failed: %v", err)
	}
	chk.IntAssert(cfg.NumCells(), 400)

	domain := s.BuildDomain()
	slab := domain.Material(lat.Point{X: 10, Y: 10, Z: 0})
	chk.Scalar(tst, "slab permittivity", 1e-15, slab.RelativePermittivity, 3.9)
	outside := domain.Material(lat.Point{X: 0, Y: 0, Z: 0})
	chk.Scalar(tst, "vacuum permittivity", 1e-15, outside.RelativePermittivity, 1.0)

	sources, err := s.BuildSources()
	if err != nil {
		tst.Fatalf("BuildSources failed: %v", err)
	}
	if len(sources) != 1 {
		tst.Fatalf("expected 1 source, got %d", len(sources))
	}
	_, m := sources[0].Evaluate(2.0)
	if !m.IsZero() {
		tst.Fatal("expected zero M at an unset component")
	}
}

func Test_scenario02(tst *testing.T) {

	chk.PrintTitle("scenario02. unknown shape is a reported error, not a panic")

	s := Scenario{Sources: []SourceConfig{{Component: "jz", Shape: "triangle"}}}
	if _, err := s.BuildSources(); err == nil {
		tst.Fatal("expected an error for an unknown source shape")
	}
}
