// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lat

// Storage is a contiguous array of cells of element type T, addressable by
// either linear index or Point through a shared Strider. See spec §2 L1.
type Storage[T any] struct {
	strider Strider
	cells   []T
}

// NewStorage allocates a zero-initialized Storage over the given strider.
func NewStorage[T any](strider Strider) Storage[T] {
	return Storage[T]{
		strider: strider,
		cells:   make([]T, strider.Total()),
	}
}

// Strider returns the addressing scheme backing this storage.
func (s *Storage[T]) Strider() Strider {
	return s.strider
}

// At returns a pointer to the cell at p, or nil if p is out of bounds.
func (s *Storage[T]) At(p Point) *T {
	i, ok := s.strider.Index(p)
	if !ok {
		return nil
	}
	return &s.cells[i]
}

// AtIndex returns a pointer to the cell at linear index i. Panics if i is
// out of range; callers on the hot path are expected to iterate in-range
// indices produced by the Strider itself.
func (s *Storage[T]) AtIndex(i int) *T {
	return &s.cells[i]
}

// Raw exposes the backing slice in strider order, e.g. for bulk zeroing or
// for copying into a GPU staging buffer.
func (s *Storage[T]) Raw() []T {
	return s.cells
}

// Reset overwrites every cell with the zero value of T.
func (s *Storage[T]) Reset() {
	var zero T
	for i := range s.cells {
		s.cells[i] = zero
	}
}

// Iterator walks a Storage's cells, restartable via Reset.
type Iterator[T any] struct {
	storage *Storage[T]
	next    int
}

// Iter returns a fresh Iterator over s, starting at index 0.
func (s *Storage[T]) Iter() Iterator[T] {
	return Iterator[T]{storage: s}
}

// Next advances the iterator, returning the point, a pointer to its cell,
// and true, or an invalid Point/nil/false once exhausted.
func (it *Iterator[T]) Next() (Point, *T, bool) {
	if it.next >= len(it.storage.cells) {
		return Point{}, nil, false
	}
	p, _ := it.storage.strider.Point(it.next)
	cell := &it.storage.cells[it.next]
	it.next++
	return p, cell, true
}

// Reset restarts the iterator from index 0.
func (it *Iterator[T]) Reset() {
	it.next = 0
}
