// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cpmech/gofdtd/lat"
	"github.com/cpmech/gofdtd/vec3"
)

// FieldView is a (possibly lazily-materialized) observation window over a
// field component, produced by Instance.Field (spec §4.6). Both the CPU
// and the GPU backend return a zero-copy StorageFieldView over the
// host-resident State; the GPU backend issues no device transfer in
// Field, since its Finish already reads each tick's result back into State.
type FieldView interface {
	At(p lat.Point) (vec3.T, bool)
	Iter() FieldIterator
}

// FieldIterator walks a FieldView's (point, value) pairs. Restartable: the
// same sequence is produced by calling Iter again (spec S6).
type FieldIterator interface {
	Next() (lat.Point, vec3.T, bool)
}

// StorageFieldView is a zero-copy FieldView directly over a lat.Storage
// restricted to [from, to). Used by the CPU backend (spec §4.6: "For
// contiguous axis-aligned rectangular ranges the CPU backend returns a
// zero-copy borrowed view").
type StorageFieldView struct {
	storage  *lat.Storage[vec3.T]
	from, to lat.Point
}

// NewStorageFieldView wraps storage, restricted to [from, to).
func NewStorageFieldView(storage *lat.Storage[vec3.T], from, to lat.Point) StorageFieldView {
	return StorageFieldView{storage: storage, from: from, to: to}
}

func (v StorageFieldView) inRange(p lat.Point) bool {
	return p.X >= v.from.X && p.X < v.to.X &&
		p.Y >= v.from.Y && p.Y < v.to.Y &&
		p.Z >= v.from.Z && p.Z < v.to.Z
}

// At implements FieldView.
func (v StorageFieldView) At(p lat.Point) (vec3.T, bool) {
	if !v.inRange(p) {
		return vec3.Zero, false
	}
	cell := v.storage.At(p)
	if cell == nil {
		return vec3.Zero, false
	}
	return *cell, true
}

// Iter implements FieldView.
func (v StorageFieldView) Iter() FieldIterator {
	return &storageFieldIterator{view: v, cur: v.from}
}

type storageFieldIterator struct {
	view StorageFieldView
	cur  lat.Point
	done bool
}

func (it *storageFieldIterator) Next() (lat.Point, vec3.T, bool) {
	if it.done {
		return lat.Point{}, vec3.Zero, false
	}
	p := it.cur
	cell := it.view.storage.At(p)
	var val vec3.T
	if cell != nil {
		val = *cell
	}

	it.cur.X++
	if it.cur.X >= it.view.to.X {
		it.cur.X = it.view.from.X
		it.cur.Y++
		if it.cur.Y >= it.view.to.Y {
			it.cur.Y = it.view.from.Y
			it.cur.Z++
			if it.cur.Z >= it.view.to.Z {
				it.done = true
			}
		}
	}
	return p, val, true
}

// EnergyNorm returns the L2 norm of every value yielded by a FieldView,
// used by runner.CSVRecorder for its per-observation energy columns. It
// collects the components into a fresh slice on every call and takes the
// norm with gonum/floats.
func EnergyNorm(v FieldView) float64 {
	var components []float64
	it := v.Iter()
	for {
		_, val, ok := it.Next()
		if !ok {
			break
		}
		components = append(components, val.X, val.Y, val.Z)
	}
	if len(components) == 0 {
		return 0
	}
	return floats.Norm(components, 2)
}
