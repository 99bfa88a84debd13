// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source implements the time-domain forcing functions of spec
// §3.10/§6: a Source pairs a lattice point with six scalar
// gosl/fun.Func — the same interface the teacher uses for every
// time-dependent boundary condition (ele/*.go's Gfcn, Sfun, QnL, ...) — one
// per electric (J) and magnetic (M) current-density component.
package source

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/vec3"
)

// Source is a forcing point: a lattice location plus six time-dependent
// scalar functions. Purity is not required of the functions but
// determinism is (spec §6).
type Source struct {
	Point      lat.Point
	Jx, Jy, Jz fun.Func
	Mx, My, Mz fun.Func
}

// Evaluate samples every component at time t, returning zero for any nil
// function (spec §3.10: "Zero when absent").
func (s Source) Evaluate(t float64) (j, m vec3.T) {
	j = vec3.T{X: sample(s.Jx, t), Y: sample(s.Jy, t), Z: sample(s.Jz, t)}
	m = vec3.T{X: sample(s.Mx, t), Y: sample(s.My, t), Z: sample(s.Mz, t)}
	return
}

func sample(f fun.Func, t float64) float64 {
	if f == nil {
		return 0
	}
	return f.F(t, nil)
}
