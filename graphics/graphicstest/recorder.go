// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphicstest provides a recording implementation of
// graphics.API for tests that do not have a GPU.
package graphicstest

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gfxtest/graphics"
)

// Call is one recorded API call.
type Call struct {
	// Method is the API method name, e.g. "CreateBuffer".
	Method string

	// Handle is the handle created or operated on, if any.
	Handle graphics.Handle

	// Args is the remaining argument of interest, if any
	// (create info, image index, byte count, ...).
	Args any
}

func (c Call) String() string {
	if c.Handle == 0 {
		return c.Method
	}
	return fmt.Sprintf("%s(%d)", c.Method, c.Handle)
}

// Recorder is a graphics.API that records every call.
// Create methods return sequential handles starting at 1.
// The zero value is ready to use.
type Recorder struct {
	// Calls is the log of all calls, in order.
	Calls []Call

	// Fail maps a method name to errors returned by successive
	// calls of that method. A nil entry means success.
	Fail map[string][]error

	// SwapchainCount is the number of images in created swapchains,
	// overriding the requested count when > 0.
	SwapchainCount int

	// Depth is the depth format reported by DepthFormat.
	Depth graphics.Format

	next       graphics.Handle
	live       map[graphics.Handle]string
	swapchains map[graphics.Handle]*swapchain
	rendering  bool
	err        error
}

type swapchain struct {
	format   graphics.Format
	images   []graphics.Image
	current  int
	acquired bool
	width    int
	height   int
}

// FailNext makes the next calls of method return the given errors.
func (rc *Recorder) FailNext(method string, errs ...error) {
	if rc.Fail == nil {
		rc.Fail = make(map[string][]error)
	}
	rc.Fail[method] = append(rc.Fail[method], errs...)
}

func (rc *Recorder) failure(method string) error {
	q := rc.Fail[method]
	if len(q) == 0 {
		return nil
	}
	rc.Fail[method] = q[1:]
	return q[0]
}

func (rc *Recorder) record(method string, h graphics.Handle, args any) {
	rc.Calls = append(rc.Calls, Call{Method: method, Handle: h, Args: args})
}

func (rc *Recorder) create(method string, kind graphics.ErrorKind, args any) (graphics.Handle, error) {
	if err := rc.failure(method); err != nil {
		rc.record(method, 0, args)
		return 0, graphics.NewError(kind, method, err)
	}
	if rc.live == nil {
		rc.live = make(map[graphics.Handle]string)
	}
	rc.next++
	h := rc.next
	rc.live[h] = method
	rc.record(method, h, args)
	return h, nil
}

func (rc *Recorder) destroy(method string, h graphics.Handle) {
	rc.record(method, h, nil)
	if _, ok := rc.live[h]; !ok {
		rc.setErr(graphics.NewError(graphics.Command, method, fmt.Errorf("%w: %d", graphics.ErrInvalidHandle, h)))
		return
	}
	delete(rc.live, h)
}

func (rc *Recorder) setErr(err error) {
	if rc.err == nil {
		rc.err = err
	}
}

// Err returns the first misuse detected outside of a frame, such
// as destroying a handle twice.
func (rc *Recorder) Err() error {
	return rc.err
}

// Live returns the number of created resources not yet destroyed.
func (rc *Recorder) Live() int {
	return len(rc.live)
}

// Count returns the number of recorded calls of method.
func (rc *Recorder) Count(method string) int {
	n := 0
	for _, c := range rc.Calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Created returns the successful Create* calls in order.
func (rc *Recorder) Created() []Call {
	var cs []Call
	for _, c := range rc.Calls {
		if strings.HasPrefix(c.Method, "Create") && c.Handle != 0 {
			cs = append(cs, c)
		}
	}
	return cs
}

// Destroyed returns the Destroy* calls in order.
func (rc *Recorder) Destroyed() []Call {
	var cs []Call
	for _, c := range rc.Calls {
		if strings.HasPrefix(c.Method, "Destroy") {
			cs = append(cs, c)
		}
	}
	return cs
}

// Methods returns the recorded method names, in order.
func (rc *Recorder) Methods() []string {
	ms := make([]string, len(rc.Calls))
	for i, c := range rc.Calls {
		ms[i] = c.Method
	}
	return ms
}

// Reset clears the call log, keeping live resources.
func (rc *Recorder) Reset() {
	rc.Calls = nil
}

//////// Device

func (rc *Recorder) Type() graphics.Type { return graphics.WebGPU }

func (rc *Recorder) DepthFormat() graphics.Format {
	if rc.Depth == graphics.UndefinedFormat {
		return graphics.Depth32Float
	}
	return rc.Depth
}

func (rc *Recorder) CreateDesktopSwapchain(ci graphics.SwapchainCreateInfo) (graphics.Swapchain, error) {
	h, err := rc.create("CreateDesktopSwapchain", graphics.ResourceCreation, ci)
	if err != nil {
		return 0, err
	}
	n := ci.Count
	if rc.SwapchainCount > 0 {
		n = rc.SwapchainCount
	}
	n = max(n, 1)
	sc := &swapchain{format: ci.Format, width: ci.Width, height: ci.Height}
	for range n {
		// swapchain images are owned by the swapchain: not in live.
		rc.next++
		sc.images = append(sc.images, graphics.Image(rc.next))
	}
	if rc.swapchains == nil {
		rc.swapchains = make(map[graphics.Handle]*swapchain)
	}
	rc.swapchains[h] = sc
	return graphics.Swapchain(h), nil
}

func (rc *Recorder) DestroyDesktopSwapchain(sc graphics.Swapchain) {
	rc.destroy("DestroyDesktopSwapchain", graphics.Handle(sc))
	delete(rc.swapchains, graphics.Handle(sc))
}

func (rc *Recorder) ResizeDesktopSwapchain(sc graphics.Swapchain, width, height int) error {
	rc.record("ResizeDesktopSwapchain", graphics.Handle(sc), [2]int{width, height})
	if err := rc.failure("ResizeDesktopSwapchain"); err != nil {
		return graphics.NewError(graphics.ResourceCreation, "ResizeDesktopSwapchain", err)
	}
	s, ok := rc.swapchains[graphics.Handle(sc)]
	if !ok {
		return graphics.NewError(graphics.ResourceCreation, "ResizeDesktopSwapchain", graphics.ErrInvalidHandle)
	}
	s.width, s.height = width, height
	return nil
}

// SwapchainSize returns the current size of the swapchain.
func (rc *Recorder) SwapchainSize(sc graphics.Swapchain) (width, height int) {
	s, ok := rc.swapchains[graphics.Handle(sc)]
	if !ok {
		return 0, 0
	}
	return s.width, s.height
}

func (rc *Recorder) DesktopSwapchainFormat(sc graphics.Swapchain) graphics.Format {
	s, ok := rc.swapchains[graphics.Handle(sc)]
	if !ok {
		return graphics.UndefinedFormat
	}
	return s.format
}

func (rc *Recorder) DesktopSwapchainImage(sc graphics.Swapchain, index int) (graphics.Image, error) {
	rc.record("DesktopSwapchainImage", graphics.Handle(sc), index)
	s, ok := rc.swapchains[graphics.Handle(sc)]
	if !ok || index < 0 || index >= len(s.images) {
		return 0, graphics.NewError(graphics.ResourceCreation, "DesktopSwapchainImage", graphics.ErrInvalidHandle)
	}
	return s.images[index], nil
}

func (rc *Recorder) AcquireDesktopSwapchainImage(sc graphics.Swapchain) (int, error) {
	s, ok := rc.swapchains[graphics.Handle(sc)]
	if !ok {
		rc.record("AcquireDesktopSwapchainImage", graphics.Handle(sc), -1)
		return 0, graphics.NewError(graphics.SwapchainAcquire, "AcquireDesktopSwapchainImage", graphics.ErrInvalidHandle)
	}
	if err := rc.failure("AcquireDesktopSwapchainImage"); err != nil {
		rc.record("AcquireDesktopSwapchainImage", graphics.Handle(sc), -1)
		return 0, graphics.NewError(graphics.SwapchainAcquire, "AcquireDesktopSwapchainImage", err)
	}
	idx := s.current
	s.current = (s.current + 1) % len(s.images)
	s.acquired = true
	rc.record("AcquireDesktopSwapchainImage", graphics.Handle(sc), idx)
	return idx, nil
}

func (rc *Recorder) PresentDesktopSwapchainImage(sc graphics.Swapchain, index int) error {
	rc.record("PresentDesktopSwapchainImage", graphics.Handle(sc), index)
	s, ok := rc.swapchains[graphics.Handle(sc)]
	if !ok || !s.acquired {
		return graphics.NewError(graphics.Present, "PresentDesktopSwapchainImage", graphics.ErrInvalidHandle)
	}
	s.acquired = false
	if err := rc.failure("PresentDesktopSwapchainImage"); err != nil {
		return graphics.NewError(graphics.Present, "PresentDesktopSwapchainImage", err)
	}
	return nil
}

func (rc *Recorder) CreateImage(ci graphics.ImageCreateInfo) (graphics.Image, error) {
	h, err := rc.create("CreateImage", graphics.ResourceCreation, ci)
	return graphics.Image(h), err
}

func (rc *Recorder) DestroyImage(img graphics.Image) {
	rc.destroy("DestroyImage", graphics.Handle(img))
}

func (rc *Recorder) CreateImageView(ci graphics.ImageViewCreateInfo) (graphics.ImageView, error) {
	h, err := rc.create("CreateImageView", graphics.ResourceCreation, ci)
	return graphics.ImageView(h), err
}

func (rc *Recorder) DestroyImageView(view graphics.ImageView) {
	rc.destroy("DestroyImageView", graphics.Handle(view))
}

func (rc *Recorder) CreateBuffer(ci graphics.BufferCreateInfo) (graphics.Buffer, error) {
	if len(ci.Data) > ci.Size {
		rc.record("CreateBuffer", 0, ci)
		return 0, graphics.NewError(graphics.ResourceCreation, "CreateBuffer",
			fmt.Errorf("data size %d exceeds buffer size %d", len(ci.Data), ci.Size))
	}
	h, err := rc.create("CreateBuffer", graphics.ResourceCreation, ci)
	return graphics.Buffer(h), err
}

func (rc *Recorder) DestroyBuffer(buf graphics.Buffer) {
	rc.destroy("DestroyBuffer", graphics.Handle(buf))
}

func (rc *Recorder) SetBufferData(buf graphics.Buffer, offset int, data []byte) error {
	rc.record("SetBufferData", graphics.Handle(buf), append([]byte(nil), data...))
	if _, ok := rc.live[graphics.Handle(buf)]; !ok {
		return graphics.NewError(graphics.Command, "SetBufferData", graphics.ErrInvalidHandle)
	}
	return graphics.NewError(graphics.Command, "SetBufferData", rc.failure("SetBufferData"))
}

func (rc *Recorder) CreateShader(ci graphics.ShaderCreateInfo) (graphics.Shader, error) {
	h, err := rc.create("CreateShader", graphics.ShaderCompile, ci)
	return graphics.Shader(h), err
}

func (rc *Recorder) DestroyShader(sh graphics.Shader) {
	rc.destroy("DestroyShader", graphics.Handle(sh))
}

func (rc *Recorder) CreatePipeline(ci graphics.PipelineCreateInfo) (graphics.Pipeline, error) {
	for _, sh := range ci.Shaders {
		if _, ok := rc.live[graphics.Handle(sh)]; !ok {
			rc.record("CreatePipeline", 0, ci)
			return 0, graphics.NewError(graphics.ResourceCreation, "CreatePipeline", graphics.ErrInvalidHandle)
		}
	}
	h, err := rc.create("CreatePipeline", graphics.ResourceCreation, ci)
	return graphics.Pipeline(h), err
}

func (rc *Recorder) DestroyPipeline(pl graphics.Pipeline) {
	rc.destroy("DestroyPipeline", graphics.Handle(pl))
}

func (rc *Recorder) Release() {
	rc.record("Release", 0, nil)
}

//////// Commands

func (rc *Recorder) BeginRendering() error {
	rc.record("BeginRendering", 0, nil)
	if rc.rendering {
		return graphics.NewError(graphics.Command, "BeginRendering", errors.New("already rendering"))
	}
	if err := rc.failure("BeginRendering"); err != nil {
		return graphics.NewError(graphics.Command, "BeginRendering", err)
	}
	rc.rendering = true
	return nil
}

// check records a command and notes use outside of a frame.
func (rc *Recorder) check(method string, h graphics.Handle, args any) {
	rc.record(method, h, args)
	if !rc.rendering {
		rc.setErr(graphics.NewError(graphics.Command, method, errors.New("not rendering")))
	}
}

func (rc *Recorder) ClearColor(view graphics.ImageView, c graphics.Color) {
	rc.check("ClearColor", graphics.Handle(view), c)
}

func (rc *Recorder) ClearDepth(view graphics.ImageView, depth float32) {
	rc.check("ClearDepth", graphics.Handle(view), depth)
}

func (rc *Recorder) SetRenderAttachments(colors []graphics.ImageView, depth graphics.ImageView) {
	rc.check("SetRenderAttachments", graphics.Handle(depth), append([]graphics.ImageView(nil), colors...))
}

func (rc *Recorder) SetViewports(viewports ...graphics.Viewport) {
	rc.check("SetViewports", 0, viewports)
}

func (rc *Recorder) SetScissors(scissors ...graphics.Rect2D) {
	rc.check("SetScissors", 0, scissors)
}

func (rc *Recorder) SetPipeline(pl graphics.Pipeline) {
	rc.check("SetPipeline", graphics.Handle(pl), nil)
}

func (rc *Recorder) SetDescriptor(d graphics.DescriptorInfo) {
	rc.check("SetDescriptor", d.Resource, d)
}

func (rc *Recorder) UpdateDescriptors() {
	rc.check("UpdateDescriptors", 0, nil)
}

func (rc *Recorder) SetVertexBuffers(bufs ...graphics.Buffer) {
	rc.check("SetVertexBuffers", 0, bufs)
}

func (rc *Recorder) SetIndexBuffer(buf graphics.Buffer) {
	rc.check("SetIndexBuffer", graphics.Handle(buf), nil)
}

func (rc *Recorder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	rc.check("DrawIndexed", 0, indexCount)
}

func (rc *Recorder) EndRendering() error {
	rc.record("EndRendering", 0, nil)
	if !rc.rendering {
		return graphics.NewError(graphics.Command, "EndRendering", errors.New("not rendering"))
	}
	rc.rendering = false
	return graphics.NewError(graphics.Command, "EndRendering", rc.failure("EndRendering"))
}
