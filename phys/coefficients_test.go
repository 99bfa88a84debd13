// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_coeffs01(tst *testing.T) {

	chk.PrintTitle("coeffs01. vacuum coefficients are exact")

	r := Resolution{Spatial: [3]float64{1, 1, 1}, Temporal: 0.25}
	u := DeriveUpdateCoefficients(VACUUM, r, REDUCED)

	// spec P8: σ=0 ⇒ Ca=1, Da=1 exactly
	chk.Scalar(tst, "Ca", 1e-15, u.Ca, 1.0)
	chk.Scalar(tst, "Da", 1e-15, u.Da, 1.0)
	chk.Scalar(tst, "Cb", 1e-15, u.Cb, r.Temporal/REDUCED.VacuumPermittivity)
	chk.Scalar(tst, "Db", 1e-15, u.Db, r.Temporal/REDUCED.VacuumPermeability)
}

func Test_coeffs02(tst *testing.T) {

	chk.PrintTitle("coeffs02. lossy material damps Ca below 1")

	m := VACUUM
	m.ElectricConductivity = 0.5
	r := Resolution{Spatial: [3]float64{1, 1, 1}, Temporal: 0.1}
	u := DeriveUpdateCoefficients(m, r, REDUCED)

	if u.Ca >= 1.0 {
		tst.Fatalf("expected Ca < 1 for lossy electric conductivity, got %v", u.Ca)
	}
	chk.Scalar(tst, "Da", 1e-15, u.Da, 1.0)
}

func Test_resolution01(tst *testing.T) {

	chk.PrintTitle("resolution01. Courant violation is detected but not enforced")

	r := Resolution{Spatial: [3]float64{1, 1, 1}, Temporal: 2.0}
	c := REDUCED.SpeedOfLight()
	if !r.ViolatesCourant(c, 3) {
		tst.Fatal("expected Δt=2.0 to violate the Courant limit in reduced units")
	}

	// Validate does not panic even though Courant is violated: stability is
	// a warning, not a configuration error (spec §3.2).
	r.Validate()
}
