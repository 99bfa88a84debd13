// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

// UpdateCoefficients holds the four scalars that multiply the previous
// field value and the curl/forcing term in the leapfrog update, derived
// once from material + resolution + constants. See spec §3.5.
//
// Naming follows Taflove & Hagness (computational electrodynamics, CE)
// page 67's C_a/C_b (electric) and D_a/D_b (magnetic) convention, matched
// by the teacher's own Greek/CE-derived naming in fem/dyncoefs.go.
type UpdateCoefficients struct {
	Ca, Cb float64
	Da, Db float64
}

// τ-parametrized scalar pair shared by both the electric and magnetic
// derivations: a = (1-τ)/(1+τ), b = Δt/(perm·(1+τ)), τ = 0.5·σ·Δt/perm.
func halfStepPair(sigma, perm, dt float64) (a, b float64) {
	tau := 0.5 * sigma * dt / perm
	a = (1.0 - tau) / (1.0 + tau)
	b = dt / (perm * (1.0 + tau))
	return
}

// DeriveUpdateCoefficients computes (Ca,Cb,Da,Db) for a material at the
// given resolution and physical constants. Pure function: no I/O, no
// panics for any finite resolution+material (the σ=0 case yields τ=0,
// Ca=Da=1 exactly — spec P8).
func DeriveUpdateCoefficients(m Material, r Resolution, c PhysicalConstants) UpdateCoefficients {
	eps := m.RelativePermittivity * c.VacuumPermittivity
	mu := m.RelativePermeability * c.VacuumPermeability
	ca, cb := halfStepPair(m.ElectricConductivity, eps, r.Temporal)
	da, db := halfStepPair(m.MagneticConductivity, mu, r.Temporal)
	return UpdateCoefficients{Ca: ca, Cb: cb, Da: da, Db: db}
}
