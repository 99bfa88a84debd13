// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import "github.com/cpmech/gofdtd/vec3"

// SourceValue is the per-forcing-point electric and magnetic current
// density injected at a cell (spec §3.10). The zero value is "no
// forcing", and is reserved as slot 0 of every ForcingBuffer (spec §4.3
// step 1, §4.5, §9 "source indexing via sentinel zero").
type SourceValue struct {
	J, M vec3.T
}

// ForcingBuffer is the sparse per-cell source slot assignment of spec
// §3.9/§4.5: a per-cell "source slot" that is 0 when unforced, otherwise
// an index into a small dense slice of SourceValue. It is owned by
// SolverState (the index persists only for bookkeeping across one pass;
// Reset clears it back to "nothing forced" at the start of every
// UpdatePass) and is shared, unmodified in shape, by every backend's
// update-pass implementation.
type ForcingBuffer struct {
	slots      []SourceValue
	cellToSlot []uint32
	touched    []int
}

// NewForcingBuffer allocates a buffer for a lattice of numCells cells,
// with slot 0 reserved as the zero-filled sentinel.
func NewForcingBuffer(numCells int) *ForcingBuffer {
	return &ForcingBuffer{
		slots:      []SourceValue{{}},
		cellToSlot: make([]uint32, numCells),
	}
}

// Reset clears every cell touched since the last Reset back to slot 0 and
// truncates the slot list back to just the sentinel. Called once at the
// start of every UpdatePass (spec §4.3 step 1).
func (b *ForcingBuffer) Reset() {
	for _, idx := range b.touched {
		b.cellToSlot[idx] = 0
	}
	b.touched = b.touched[:0]
	b.slots = b.slots[:1]
}

// Set assigns (j, m) forcing to the cell at linear index cellIndex.
// Calling Set twice for the same cell within one pass overwrites the
// slot's values rather than allocating a second slot (spec §4.5).
func (b *ForcingBuffer) Set(cellIndex int, j, m vec3.T) {
	if slot := b.cellToSlot[cellIndex]; slot != 0 {
		b.slots[slot] = SourceValue{J: j, M: m}
		return
	}
	slot := uint32(len(b.slots))
	b.slots = append(b.slots, SourceValue{J: j, M: m})
	b.cellToSlot[cellIndex] = slot
	b.touched = append(b.touched, cellIndex)
}

// SlotFor returns the slot index for cellIndex (0 if unforced this pass).
func (b *ForcingBuffer) SlotFor(cellIndex int) uint32 {
	return b.cellToSlot[cellIndex]
}

// Value returns the SourceValue stored at slot.
func (b *ForcingBuffer) Value(slot uint32) SourceValue {
	return b.slots[slot]
}

// At returns the forcing for cellIndex directly (zero if unforced).
func (b *ForcingBuffer) At(cellIndex int) SourceValue {
	return b.Value(b.SlotFor(cellIndex))
}

// Slots exposes the dense slot list in order, slot 0 first, e.g. for
// staging into a GPU source storage buffer.
func (b *ForcingBuffer) Slots() []SourceValue {
	return b.slots
}

// NumSources returns the number of occupied (non-sentinel) slots.
func (b *ForcingBuffer) NumSources() int {
	return len(b.slots) - 1
}
