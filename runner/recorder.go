// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"os"

	"github.com/gocarina/gocsv"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/lat"
)

// TraceRow is one recorded sample, tagged for gocsv's struct-based
// marshaling (spec "Supplemented features": a tabular time-series sink
// alongside the existing observation-callback hook).
type TraceRow struct {
	Tick    uint64  `csv:"tick"`
	Time    float64 `csv:"time"`
	EnergyE float64 `csv:"energy_e"`
	EnergyH float64 `csv:"energy_h"`
}

// CSVRecorder accumulates TraceRow samples in memory and flushes them to
// path on Close. Its Observe method is an ObservationFunc.
type CSVRecorder struct {
	path     string
	instance fdtd.Instance
	from, to lat.Point
	rows     []TraceRow
}

// NewCSVRecorder returns a recorder sampling EnergyNorm over [from, to) of
// both fields, at every observation, from instance.
func NewCSVRecorder(path string, instance fdtd.Instance, from, to lat.Point) *CSVRecorder {
	return &CSVRecorder{path: path, instance: instance, from: from, to: to}
}

// Observe implements ObservationFunc.
func (rec *CSVRecorder) Observe(snap Snapshot, sim *fdtd.State) error {
	eView, err := rec.instance.Field(sim, rec.from, rec.to, fdtd.FieldE)
	if err != nil {
		return err
	}
	hView, err := rec.instance.Field(sim, rec.from, rec.to, fdtd.FieldH)
	if err != nil {
		return err
	}
	rec.rows = append(rec.rows, TraceRow{
		Tick:    snap.SimTick,
		Time:    snap.SimTime,
		EnergyE: fdtd.EnergyNorm(eView),
		EnergyH: fdtd.EnergyNorm(hView),
	})
	return nil
}

// Close writes every accumulated row to the recorder's path as CSV.
func (rec *CSVRecorder) Close() error {
	f, err := os.Create(rec.path)
	if err != nil {
		return chk.Err("runner: creating trace file %q: %v", rec.path, err)
	}
	defer f.Close()
	if err := gocsv.MarshalFile(&rec.rows, f); err != nil {
		return chk.Err("runner: writing trace file %q: %v", rec.path, err)
	}
	return nil
}
