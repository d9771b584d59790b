// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"image"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.

// Window is a top-level GLFW window with a WebGPU surface,
// for use as the Window of a graphics.SwapchainCreateInfo.
// All methods must be called on the main thread.
type Window struct {
	window  *glfw.Window
	surface *wgpu.Surface
}

// NewWindow initializes GLFW and opens a window of the given size,
// with a surface on the instance of gp.
func NewWindow(gp *GPU, size image.Point, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Log(err)
	}
	w := &Window{window: window}
	w.surface = gp.Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	return w, nil
}

// Surface returns the WebGPU surface of the window.
func (w *Window) Surface() *wgpu.Surface {
	return w.surface
}

// PollEvents processes pending window events without blocking.
// It returns false once the window has been asked to close.
func (w *Window) PollEvents() bool {
	if w.window.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return !w.window.ShouldClose()
}

// Size returns the size of the window framebuffer in pixels.
func (w *Window) Size() image.Point {
	width, height := w.window.GetFramebufferSize()
	return image.Point{width, height}
}

// WaitEvents blocks until a window event arrives or the timeout
// passes, and then processes the pending events.
func (w *Window) WaitEvents(timeout time.Duration) {
	glfw.WaitEventsTimeout(timeout.Seconds())
}

// Release releases the surface, destroys the window and terminates GLFW.
// Any swapchain on the window must be destroyed first.
func (w *Window) Release() {
	if w.surface != nil {
		w.surface.Release()
		w.surface = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	glfw.Terminate()
}
