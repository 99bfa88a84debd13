// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"strconv"
	"strings"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/cpmech/gosl/chk"
)

// bindings match the layout documented in shaders.go.
const (
	bindingConfig       = 0
	bindingCoefficients = 1
	bindingForcing      = 2
	bindingPrevSelf     = 3
	bindingPrevOther    = 4
	bindingNextSelf     = 5
)

// pipelineLayout owns the two compiled compute programs and the fixed
// workgroup size they were specialized for, one per Backend (spec §9:
// "a GPU backend compiles its programs once, at Backend construction, and
// reuses them for every Instance it creates").
type pipelineLayout struct {
	updateHProgram uint32
	updateEProgram uint32
	workgroupSize  uint32
}

func newPipelineLayout(workgroupSize uint32) (*pipelineLayout, error) {
	hSrc := specializeShader(updateShaderSource, workgroupSize, true)
	eSrc := specializeShader(updateShaderSource, workgroupSize, false)

	hProgram, err := compileComputeProgram(hSrc)
	if err != nil {
		return nil, chk.Err("gpu: compiling update_h pipeline: %v", err)
	}
	eProgram, err := compileComputeProgram(eSrc)
	if err != nil {
		return nil, chk.Err("gpu: compiling update_e pipeline: %v", err)
	}
	return &pipelineLayout{updateHProgram: hProgram, updateEProgram: eProgram, workgroupSize: workgroupSize}, nil
}

// specializeShader performs the textual constant substitution the wgpu
// reference pipeline does via PipelineCompilationOptions.constants: GLSL
// compute shaders fix their local_size at compile time, so the workgroup
// size is baked in per program rather than passed as a uniform.
func specializeShader(src string, workgroupSize uint32, updateH bool) string {
	src = strings.Replace(src, "WORKGROUP_SIZE_X", strconv.FormatUint(uint64(workgroupSize), 10), 1)
	if updateH {
		src = strings.Replace(src, "#version 430", "#version 430\n#define UPDATE_H", 1)
	}
	return src
}

func compileComputeProgram(source string) (uint32, error) {
	shader := gl.CreateShader(gl.COMPUTE_SHADER)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, chk.Err("gpu: compute shader compile failed: %v", log)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, shader)
	gl.LinkProgram(program)
	gl.DeleteShader(shader)

	var linked int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &linked)
	if linked == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, chk.Err("gpu: compute program link failed: %v", log)
	}
	return program, nil
}

// dispatchUpdate runs one half-step: binds the Config uniform and the five
// storage buffers for this direction, runs every Dispatch in plan, and issues the shader
// storage memory barrier the next half-step (or the host read-back) relies
// on to observe the writes.
func dispatchUpdate(program uint32, configUBO, coefficients, forcing, prevSelf, prevOther, nextSelf uint32, plan []Dispatch) {
	gl.UseProgram(program)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, bindingConfig, configUBO)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, bindingCoefficients, coefficients)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, bindingForcing, forcing)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, bindingPrevSelf, prevSelf)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, bindingPrevOther, prevOther)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, bindingNextSelf, nextSelf)

	for _, d := range plan {
		setDispatchOffset(configUBO, d.FirstIndex)
		gl.DispatchCompute(d.NumGroupsX, 1, 1)
	}
	gl.MemoryBarrier(gl.SHADER_STORAGE_BARRIER_BIT)
}

// setDispatchOffset patches just the firstIndex field of the Config
// uniform block in place, avoiding a full re-upload per dispatch chunk.
func setDispatchOffset(configUBO uint32, firstIndex int) {
	offset := int32(firstIndex)
	gl.BindBuffer(gl.UNIFORM_BUFFER, configUBO)
	gl.BufferSubData(gl.UNIFORM_BUFFER, configDataFirstIndexOffset, 4, gl.Ptr(&offset))
}
