// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// updateShaderSource is shared by both compute pipelines; #define UPDATE_H
// (injected by specializeShader for the H program, absent for the E
// program) selects which half-step the entry point runs, matching kernel.Curl's forward/backward mode split
// (spec §4.4) and phys.UpdateCoefficients' Ca/Cb/Da/Db recurrence.
//
// Binding layout, fixed across both pipelines:
//
//	0  uniform   Config              dimensions, strides, resolution, boundary modes, dispatch offset
//	1  std430 ro Coefficients        one {Ca,Cb,Da,Db} per cell, strider order
//	2  std430 ro Forcing             one {Jx,Jy,Jz,0,Mx,My,Mz,0} per cell, strider order
//	3  std430 ro PrevE / PrevH       the half-step's read side (rotates with tick parity)
//	4  std430 ro OtherPrev           the other field's read side, needed by the curl term
//	5  std430 rw NextE / NextH       the half-step's write side (rotates with tick parity)
const updateShaderSource = `
#version 430

layout(local_size_x = WORKGROUP_SIZE_X, local_size_y = 1, local_size_z = 1) in;

layout(std140, binding = 0) uniform Config {
	ivec4 size;        // x,y,z, pad
	ivec4 strides;     // x,y,z, pad
	vec4 spatial;      // dx,dy,dz, pad
	float dt;
	int boundaryX;     // 0 = dirichlet, 1 = periodic
	int boundaryY;
	int boundaryZ;
	int firstIndex;
	int numCells;
	int pad0, pad1, pad2;
};

struct Coeff { float ca, cb, da, db; };
layout(std430, binding = 1) readonly buffer Coefficients { Coeff coeffs[]; };

struct Force { vec4 j; vec4 m; };
layout(std430, binding = 2) readonly buffer Forcing { Force forcing[]; };

struct Cell { vec4 v; };
layout(std430, binding = 3) readonly buffer PrevSelf { Cell prevSelf[]; };
layout(std430, binding = 4) readonly buffer PrevOther { Cell prevOther[]; };
layout(std430, binding = 5) buffer NextSelf { Cell nextSelf[]; };

ivec3 unflatten(int index) {
	int z = index / strides.z;
	int rem = index - z * strides.z;
	int y = rem / strides.y;
	int x = rem - y * strides.y;
	return ivec3(x, y, z);
}

bool resolve(ivec3 p, int axis, int delta, out ivec3 q) {
	q = p;
	int n, mode;
	if (axis == 0) { n = size.x; mode = boundaryX; }
	else if (axis == 1) { n = size.y; mode = boundaryY; }
	else { n = size.z; mode = boundaryZ; }

	int v = (axis == 0 ? p.x : (axis == 1 ? p.y : p.z)) + delta;
	if (mode == 1) {
		v = ((v % n) + n) % n;
		if (axis == 0) q.x = v; else if (axis == 1) q.y = v; else q.z = v;
		return true;
	}
	if (v < 0 || v >= n) {
		return false;
	}
	if (axis == 0) q.x = v; else if (axis == 1) q.y = v; else q.z = v;
	return true;
}

int flatten(ivec3 p) {
	return p.x * strides.x + p.y * strides.y + p.z * strides.z;
}

vec3 sampleOther(ivec3 p, int axis, int delta) {
	ivec3 q;
	if (!resolve(p, axis, delta, q)) {
		return vec3(0.0);
	}
	return prevOther[flatten(q)].v.xyz;
}

// partial derivative of "other"'s comp-th component along axis, centered at p,
// using the requested finite-difference direction (-1 for backward, +1 for forward).
float partial(ivec3 p, int axis, int comp, int direction) {
	vec3 a = vec3(0.0);
	if (axis == 0) a = sampleOther(p, axis, 0);
	else if (axis == 1) a = sampleOther(p, axis, 0);
	else a = sampleOther(p, axis, 0);

	vec3 b = sampleOther(p, axis, direction);
	float av = comp == 0 ? a.x : (comp == 1 ? a.y : a.z);
	float bv = comp == 0 ? b.x : (comp == 1 ? b.y : b.z);
	float h = axis == 0 ? spatial.x : (axis == 1 ? spatial.y : spatial.z);
	return direction > 0 ? (bv - av) / h : (av - bv) / h;
}

vec3 curl(ivec3 p, int direction) {
	float dFzdy = partial(p, 1, 2, direction);
	float dFydz = partial(p, 2, 1, direction);
	float dFxdz = partial(p, 2, 0, direction);
	float dFzdx = partial(p, 0, 2, direction);
	float dFydx = partial(p, 0, 1, direction);
	float dFxdy = partial(p, 1, 0, direction);
	return vec3(dFzdy - dFydz, dFxdz - dFzdx, dFydx - dFxdy);
}

void main() {
	int index = int(gl_GlobalInvocationID.x) + firstIndex;
	if (index >= numCells) {
		return;
	}
	ivec3 p = unflatten(index);
	Coeff c = coeffs[index];
	Force f = forcing[index];
	vec3 self = prevSelf[index].v.xyz;

#ifdef UPDATE_H
	vec3 c3 = curl(p, 1); // forward difference of E for the H half-step
	vec3 result = c.da * self + c.db * (-c3 - f.m.xyz);
#else
	vec3 c3 = curl(p, -1); // backward difference of H for the E half-step
	vec3 result = c.ca * self + c.cb * (c3 - f.j.xyz);
#endif
	nextSelf[index].v = vec4(result, 0.0);
}
`
