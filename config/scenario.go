// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads a scenario description from a YAML file, the
// gofdtd equivalent of the teacher's inp package (spec §6): instead of a
// finite-element mesh and boundary-condition functions keyed by tag, a
// scenario names a lattice size, a resolution, a backend, a list of
// uniform material regions and a list of named-shape sources.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cpmech/gosl/chk"
)

// Scenario is the top-level YAML document a run is driven from.
type Scenario struct {
	Backend    string           `yaml:"backend"`
	Threads    int              `yaml:"threads"`
	Lattice    LatticeConfig    `yaml:"lattice"`
	Boundary   BoundaryConfig   `yaml:"boundary"`
	Regions    []RegionConfig   `yaml:"regions"`
	Sources    []SourceConfig   `yaml:"sources"`
	Stop       StopConfig       `yaml:"stop"`
	Recording  RecordingConfig  `yaml:"recording"`
}

// LatticeConfig names the discretization: lattice extent in cells, the
// physical cell spacing on each axis, the timestep, and which constants
// preset to derive update coefficients against.
type LatticeConfig struct {
	Size      [3]int     `yaml:"size"`
	Spatial   [3]float64 `yaml:"spatial"`
	Temporal  float64    `yaml:"temporal"`
	Constants string     `yaml:"constants"` // "si" or "reduced"
}

// BoundaryConfig names one condition per axis: "dirichlet" or "periodic".
type BoundaryConfig struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
	Z string `yaml:"z"`
}

// RegionConfig is one axis-aligned box of uniform material, applied in
// list order so later entries override earlier ones on overlap (spec §6:
// "last write wins", mirroring the teacher's own region-precedence rule
// for overlapping geometry tags).
type RegionConfig struct {
	From                  [3]int  `yaml:"from"`
	To                    [3]int  `yaml:"to"`
	RelativePermittivity  float64 `yaml:"relative_permittivity"`
	RelativePermeability  float64 `yaml:"relative_permeability"`
	ElectricConductivity  float64 `yaml:"electric_conductivity"`
	MagneticConductivity  float64 `yaml:"magnetic_conductivity"`
}

// SourceConfig names one forcing point and the shape of its six
// components. Omitted components stay at zero (spec §3.10).
type SourceConfig struct {
	Point     [3]int          `yaml:"point"`
	Component string          `yaml:"component"` // "jx","jy","jz","mx","my","mz"
	Shape     string          `yaml:"shape"`      // "gaussian" or "cw"
	Amplitude float64         `yaml:"amplitude"`
	Center    float64         `yaml:"center"`     // gaussian only
	Width     float64         `yaml:"width"`      // gaussian only
	Frequency float64         `yaml:"frequency"`  // cw only
	Phase     float64         `yaml:"phase"`      // cw only
}

// StopConfig names the runner's stop condition (spec §5).
type StopConfig struct {
	Kind  string  `yaml:"kind"` // "never", "step_limit", "sim_time_limit", "realtime_limit"
	Steps uint64  `yaml:"steps"`
	Time  float64 `yaml:"time"`
	Secs  float64 `yaml:"secs"`
}

// RecordingConfig names an optional CSV trace of per-tick energy norms.
type RecordingConfig struct {
	Path             string  `yaml:"path"`
	ObservationDelay float64 `yaml:"observation_delay"`
}

// Load reads and parses a Scenario from path.
func Load(path string) (Scenario, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, chk.Err("config: reading %q: %v", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return Scenario{}, chk.Err("config: parsing %q: %v", path, err)
	}
	return s, nil
}
