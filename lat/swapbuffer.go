// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lat

// SwapBufferIndex is tick mod 2, selecting one of the two halves of a
// SwapBuffer. See spec §3.7, P1.
type SwapBufferIndex uint8

// SwapBufferIndexFromTick derives the parity for a given tick count.
func SwapBufferIndexFromTick(tick uint64) SwapBufferIndex {
	return SwapBufferIndex(tick % 2)
}

// Other flips the parity: Previous and Next are always opposite.
func (i SwapBufferIndex) Other() SwapBufferIndex {
	return 1 - i
}

// SwapBuffer is a pair of T, indexed by tick parity. "Previous" and "next"
// rotate every update: next is written from previous, then the tick
// advances and their roles swap. See spec §3.7.
type SwapBuffer[T any] struct {
	halves [2]T
}

// NewSwapBuffer wraps an already-constructed pair.
func NewSwapBuffer[T any](a, b T) SwapBuffer[T] {
	return SwapBuffer[T]{halves: [2]T{a, b}}
}

// At returns a pointer to the half selected by i.
func (b *SwapBuffer[T]) At(i SwapBufferIndex) *T {
	return &b.halves[i]
}

// Pair splits the buffer into the mutable "next" half and a read-only
// reference to "previous", without two independent mutable borrows — see
// spec §9's note on borrow-checked pair_mut.
func (b *SwapBuffer[T]) Pair(next SwapBufferIndex) (nextHalf *T, prevHalf *T) {
	return &b.halves[next], &b.halves[next.Other()]
}
