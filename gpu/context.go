// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"runtime"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cpmech/gosl/chk"
)

func init() {
	// GLFW and the GL context it creates are bound to the OS thread that
	// created them; every call into this package must happen from that
	// same thread (spec §9: "the GPU backend is single-threaded at the
	// control-plane level, regardless of the lattice's own parallelism").
	runtime.LockOSThread()
}

// Context is a hidden, offscreen OpenGL 4.3 core-profile context, enough
// to run compute shaders without a visible window. NewBackend and
// Probe both need one; a scenario driving several runs reuses a single
// Context rather than paying GLFW/driver setup cost per Instance.
type Context struct {
	window *glfw.Window
}

// NewContext initializes GLFW, creates a 1x1 hidden window to own a
// current GL context, and loads the GL function pointers. Must be called
// from the same OS thread for the lifetime of every Backend built from it.
func NewContext() (*Context, error) {
	if err := glfw.Init(); err != nil {
		return nil, chk.Err("gpu: glfw init failed: %v", err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(1, 1, "gofdtd-compute", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, chk.Err("gpu: creating offscreen context failed: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, chk.Err("gpu: loading GL function pointers failed: %v", err)
	}
	return &Context{window: window}, nil
}

// Close destroys the context. The Context (and every Backend built from
// it) must not be used afterwards.
func (c *Context) Close() {
	c.window.Destroy()
	glfw.Terminate()
}
