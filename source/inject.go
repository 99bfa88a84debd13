// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "github.com/cpmech/gofdtd/fdtd"

// Inject samples every source at time t and stages the results into pass
// via SetForcing. It is the glue between a scenario's named pulse shapes
// and the per-tick UpdatePass.SetForcing call (spec §4.3 step 2, §6).
func Inject(sources []Source, t float64, pass fdtd.UpdatePass) {
	for _, s := range sources {
		j, m := s.Evaluate(t)
		pass.SetForcing(s.Point, j, m)
	}
}
