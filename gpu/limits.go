// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu implements the OpenGL 4.3 compute-shader backend (spec
// §4.4-§4.5, L6b): the same fdtd.Backend/Instance/UpdatePass surface as
// cpu, driven by two compute pipelines (update_h, update_e) dispatched
// once per tick instead of a goroutine pool.
package gpu

// ComputeLimits mirrors the driver-reported bounds a workgroup plan must
// respect: the maximum invocations in one workgroup, and the maximum
// number of workgroups in one dispatch along any axis. OpenGL 4.3
// guarantees at least 1024 invocations/workgroup and 65535
// workgroups/dispatch/axis; DefaultComputeLimits uses exactly those
// floors so a plan built against it is always safe without querying the
// driver first.
type ComputeLimits struct {
	MaxInvocationsPerWorkgroup uint32
	MaxWorkgroupSize           [3]uint32
	MaxWorkgroupsPerDispatch   [3]uint32
}

// DefaultComputeLimits returns the OpenGL 4.3 minimum guaranteed limits
// (GL_MAX_COMPUTE_WORK_GROUP_INVOCATIONS=1024,
// GL_MAX_COMPUTE_WORK_GROUP_COUNT=65535 per axis).
func DefaultComputeLimits() ComputeLimits {
	return ComputeLimits{
		MaxInvocationsPerWorkgroup: 1024,
		MaxWorkgroupSize:           [3]uint32{1024, 1024, 64},
		MaxWorkgroupsPerDispatch:   [3]uint32{65535, 65535, 65535},
	}
}

// WorkgroupSizeFor picks a 1-D workgroup size (Y=Z=1) no larger than the
// invocation cap or the X-axis workgroup-size cap, halving it while it
// exceeds workSize but never below 64 (a common warp/wavefront multiple),
// so a workSize under 64 still gets a 64-wide workgroup.
func (l ComputeLimits) WorkgroupSizeFor(workSize int) uint32 {
	size := l.MaxInvocationsPerWorkgroup
	if l.MaxWorkgroupSize[0] < size {
		size = l.MaxWorkgroupSize[0]
	}
	for size > 64 && uint32(workSize) < size {
		size /= 2
	}
	if size == 0 {
		size = 1
	}
	return size
}

// DivideWorkIntoDispatches splits workSize invocations, grouped into
// workgroups of workgroupSize, into one or more dispatch calls, each
// respecting MaxWorkgroupsPerDispatch on every axis. Almost every run
// needs exactly one dispatch; very large lattices spill into several,
// each covering a contiguous slice of the linear index space (spec §9:
// "a lattice bigger than one dispatch can address is tiled, not
// rejected").
func (l ComputeLimits) DivideWorkIntoDispatches(workSize int, workgroupSize uint32) []Dispatch {
	if workSize <= 0 {
		return nil
	}
	numWorkgroups := (workSize + int(workgroupSize) - 1) / int(workgroupSize)
	maxPerDispatch := int(l.MaxWorkgroupsPerDispatch[0])

	var dispatches []Dispatch
	firstWorkgroup := 0
	for firstWorkgroup < numWorkgroups {
		count := numWorkgroups - firstWorkgroup
		if count > maxPerDispatch {
			count = maxPerDispatch
		}
		dispatches = append(dispatches, Dispatch{
			FirstIndex: firstWorkgroup * int(workgroupSize),
			NumGroupsX: uint32(count),
		})
		firstWorkgroup += count
	}
	return dispatches
}

// Dispatch is one glDispatchCompute call: NumGroupsX workgroups of the
// plan's fixed size, covering the linear index range starting at
// FirstIndex. The compute shader adds FirstIndex (via a push-constant-like
// uniform) to its built-in global invocation id to recover the lattice
// cell's linear index.
type Dispatch struct {
	FirstIndex int
	NumGroupsX uint32
}
