// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/kernel"
	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/phys"
	"github.com/cpmech/gofdtd/source"
)

// RegionDomain is a fdtd.DomainDescription built from a Scenario's region
// list: a default material plus a list of axis-aligned overrides applied
// in order, later entries winning on overlap.
type RegionDomain struct {
	Default phys.Material
	Regions []boxMaterial
}

type boxMaterial struct {
	from, to lat.Point
	mat      phys.Material
}

// Material implements fdtd.DomainDescription.
func (d RegionDomain) Material(p lat.Point) phys.Material {
	mat := d.Default
	for _, r := range d.Regions {
		if p.X >= r.from.X && p.X < r.to.X &&
			p.Y >= r.from.Y && p.Y < r.to.Y &&
			p.Z >= r.from.Z && p.Z < r.to.Z {
			mat = r.mat
		}
	}
	return mat
}

// PML implements fdtd.DomainDescription. Scenario files do not yet name a
// PML region (spec §9 Open Question: PML stepping is unimplemented), so
// every cell reports "no PML".
func (d RegionDomain) PML(p lat.Point) (fdtd.GradingParams, fdtd.NormalDepth, bool) {
	return fdtd.GradingParams{}, fdtd.NormalDepth{}, false
}

// BuildSolverConfig translates the Scenario's lattice and boundary
// sections into a fdtd.SolverConfig.
func (s Scenario) BuildSolverConfig() (fdtd.SolverConfig, error) {
	pc, err := constantsByName(s.Lattice.Constants)
	if err != nil {
		return fdtd.SolverConfig{}, err
	}
	bx, err := boundaryByName(s.Boundary.X)
	if err != nil {
		return fdtd.SolverConfig{}, err
	}
	by, err := boundaryByName(s.Boundary.Y)
	if err != nil {
		return fdtd.SolverConfig{}, err
	}
	bz, err := boundaryByName(s.Boundary.Z)
	if err != nil {
		return fdtd.SolverConfig{}, err
	}

	size := lat.Point{X: s.Lattice.Size[0], Y: s.Lattice.Size[1], Z: s.Lattice.Size[2]}
	res := phys.Resolution{Spatial: s.Lattice.Spatial, Temporal: s.Lattice.Temporal}
	cfg := fdtd.NewSolverConfig(res, pc, size)
	cfg.BoundaryConditions = kernel.BoundaryConditions{bx, by, bz}
	return cfg, nil
}

// BuildDomain translates the Scenario's region list into a RegionDomain.
func (s Scenario) BuildDomain() RegionDomain {
	domain := RegionDomain{Default: phys.VACUUM}
	for _, r := range s.Regions {
		domain.Regions = append(domain.Regions, boxMaterial{
			from: lat.Point{X: r.From[0], Y: r.From[1], Z: r.From[2]},
			to:   lat.Point{X: r.To[0], Y: r.To[1], Z: r.To[2]},
			mat: phys.Material{
				RelativePermittivity: orOne(r.RelativePermittivity),
				RelativePermeability: orOne(r.RelativePermeability),
				ElectricConductivity: r.ElectricConductivity,
				MagneticConductivity: r.MagneticConductivity,
			},
		})
	}
	return domain
}

// BuildSources translates the Scenario's source list into source.Source
// values, grouping entries that share a Point into a single Source with
// multiple non-zero components.
func (s Scenario) BuildSources() ([]source.Source, error) {
	byPoint := map[lat.Point]*source.Source{}
	var order []lat.Point
	for _, sc := range s.Sources {
		p := lat.Point{X: sc.Point[0], Y: sc.Point[1], Z: sc.Point[2]}
		entry, ok := byPoint[p]
		if !ok {
			entry = &source.Source{Point: p}
			byPoint[p] = entry
			order = append(order, p)
		}
		fn, err := sc.buildFunc()
		if err != nil {
			return nil, err
		}
		if err := assignComponent(entry, sc.Component, fn); err != nil {
			return nil, err
		}
	}
	out := make([]source.Source, 0, len(order))
	for _, p := range order {
		out = append(out, *byPoint[p])
	}
	return out, nil
}

func (sc SourceConfig) buildFunc() (fun.Func, error) {
	switch sc.Shape {
	case "gaussian":
		return source.Gaussian(sc.Amplitude, sc.Center, sc.Width), nil
	case "cw":
		return source.CW(sc.Amplitude, sc.Frequency, sc.Phase), nil
	default:
		return nil, chk.Err("config: unknown source shape %q", sc.Shape)
	}
}

func assignComponent(s *source.Source, component string, fn fun.Func) error {
	switch component {
	case "jx":
		s.Jx = fn
	case "jy":
		s.Jy = fn
	case "jz":
		s.Jz = fn
	case "mx":
		s.Mx = fn
	case "my":
		s.My = fn
	case "mz":
		s.Mz = fn
	default:
		return chk.Err("config: unknown source component %q", component)
	}
	return nil
}

func constantsByName(name string) (phys.PhysicalConstants, error) {
	switch name {
	case "", "reduced":
		return phys.REDUCED, nil
	case "si":
		return phys.SI, nil
	default:
		return phys.PhysicalConstants{}, chk.Err("config: unknown constants preset %q", name)
	}
}

func boundaryByName(name string) (kernel.BoundaryCondition, error) {
	switch name {
	case "", "dirichlet":
		return kernel.Dirichlet{}, nil
	case "periodic":
		return kernel.Periodic{}, nil
	default:
		return nil, chk.Err("config: unknown boundary condition %q", name)
	}
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
