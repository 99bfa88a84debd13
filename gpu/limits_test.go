// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_limits01(tst *testing.T) {

	chk.PrintTitle("limits01. workgroup size never exceeds the invocation cap")

	l := DefaultComputeLimits()
	size := l.WorkgroupSizeFor(8)
	if size > l.MaxInvocationsPerWorkgroup || size > l.MaxWorkgroupSize[0] {
		tst.Fatalf("workgroup size %d exceeds limits %+v", size, l)
	}
	if size == 0 {
		tst.Fatal("workgroup size must never be zero")
	}
}

func Test_limits02(tst *testing.T) {

	chk.PrintTitle("limits02. one dispatch covers small work exactly")

	l := DefaultComputeLimits()
	plan := l.DivideWorkIntoDispatches(1000, 64)
	if len(plan) != 1 {
		tst.Fatalf("expected a single dispatch, got %d", len(plan))
	}
	if plan[0].FirstIndex != 0 {
		tst.Fatalf("expected FirstIndex=0, got %d", plan[0].FirstIndex)
	}
	wantGroups := (1000 + 63) / 64
	if int(plan[0].NumGroupsX) != wantGroups {
		tst.Fatalf("expected %d workgroups, got %d", wantGroups, plan[0].NumGroupsX)
	}
}

func Test_limits03(tst *testing.T) {

	chk.PrintTitle("limits03. work beyond one dispatch's workgroup cap tiles into several")

	l := ComputeLimits{
		MaxInvocationsPerWorkgroup: 64,
		MaxWorkgroupSize:           [3]uint32{64, 64, 64},
		MaxWorkgroupsPerDispatch:   [3]uint32{4, 4, 4},
	}
	workgroupSize := uint32(64)
	total := int(workgroupSize) * 10 // 10 workgroups, cap of 4 per dispatch
	plan := l.DivideWorkIntoDispatches(total, workgroupSize)
	if len(plan) != 3 {
		tst.Fatalf("expected 3 dispatches (4+4+2), got %d", len(plan))
	}
	covered := 0
	for i, d := range plan {
		if d.FirstIndex != covered {
			tst.Fatalf("dispatch %d: expected FirstIndex=%d, got %d", i, covered, d.FirstIndex)
		}
		covered += int(d.NumGroupsX) * int(workgroupSize)
	}
	if covered < total {
		tst.Fatalf("dispatches only cover %d of %d cells", covered, total)
	}
}
