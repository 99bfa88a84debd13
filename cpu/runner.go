// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "golang.org/x/sync/errgroup"

// sequentialRunner runs body once, over the whole [0, total) range, in
// strider order (spec §4.5 "single-threaded").
func sequentialRunner(total int, body func(lo, hi int)) {
	body(0, total)
}

// parallelRunner splits [0, total) into numThreads disjoint, contiguous
// chunks and runs body over each chunk on its own goroutine, barrier-joined
// before returning. Chunks partition the strider's linear index space, so
// distinct goroutines write disjoint output cells and no locking is needed
// (spec §4.5, §5: "disjoint writes into the next half require no
// locking"). This gives P11 (bit-identical output vs. single-threaded):
// no cross-goroutine reduction ever occurs, only independent writes.
func parallelRunner(numThreads int) func(total int, body func(lo, hi int)) {
	return func(total int, body func(lo, hi int)) {
		if numThreads <= 1 || total == 0 {
			sequentialRunner(total, body)
			return
		}
		n := numThreads
		if n > total {
			n = total
		}
		chunk := (total + n - 1) / n

		var g errgroup.Group
		for lo := 0; lo < total; lo += chunk {
			hi := lo + chunk
			if hi > total {
				hi = total
			}
			lo, hi := lo, hi
			g.Go(func() error {
				body(lo, hi)
				return nil
			})
		}
		_ = g.Wait() // body never returns an error
	}
}
