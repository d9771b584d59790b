// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gfxtest/graphics"
	"github.com/cogentcore/webgpu/wgpu"
)

// commands is the recording state of one frame, between
// BeginRendering and EndRendering.
type commands struct {
	recording bool
	encoder   *wgpu.CommandEncoder
	pass      *wgpu.RenderPassEncoder

	// pending load ops, applied when the render pass opens.
	clears      map[graphics.ImageView]graphics.Color
	depthClears map[graphics.ImageView]float32

	// state applied when set, or when the render pass opens.
	viewports []graphics.Viewport
	scissors  []graphics.Rect2D
	pipeline  *pipeline
	bindGroup *wgpu.BindGroup

	// staged descriptors, bound by UpdateDescriptors.
	descriptors []graphics.DescriptorInfo

	// transient are views of swapchain textures, and bindGroups
	// the bind groups of the frame, released after submit.
	transient  []*wgpu.TextureView
	bindGroups []*wgpu.BindGroup

	// err is the first error since BeginRendering.
	err error
}

// fail records err if it is the first error of the frame.
func (c *commands) fail(err error) {
	if err == nil {
		return
	}
	errors.Log(err)
	if c.err == nil {
		c.err = err
	}
}

// releaseFrame releases the per frame objects and resets the state.
func (c *commands) releaseFrame() {
	for _, v := range c.transient {
		v.Release()
	}
	for _, bg := range c.bindGroups {
		bg.Release()
	}
	*c = commands{}
}

func (c *commands) release() {
	if c.pass != nil {
		c.pass.Release()
	}
	if c.encoder != nil {
		c.encoder.Release()
	}
	c.releaseFrame()
}

// active returns the render pass, recording an error for op
// if there is none.
func (gp *GPU) active(op string) *wgpu.RenderPassEncoder {
	c := &gp.cmd
	if !c.recording {
		c.fail(graphics.NewError(graphics.Command, op, errors.New("not between BeginRendering and EndRendering")))
		return nil
	}
	if c.pass == nil {
		c.fail(graphics.NewError(graphics.Command, op, errors.New("no render pass: SetRenderAttachments must be called first")))
		return nil
	}
	return c.pass
}

// recording records an error for op if the frame is not recording.
func (gp *GPU) recording(op string) bool {
	if !gp.cmd.recording {
		gp.cmd.fail(graphics.NewError(graphics.Command, op, errors.New("not between BeginRendering and EndRendering")))
		return false
	}
	return true
}

func (gp *GPU) BeginRendering() error {
	const op = "BeginRendering"
	if gp.cmd.recording {
		return graphics.NewError(graphics.Command, op, errors.New("already rendering"))
	}
	if gp.device == nil {
		return graphics.NewError(graphics.Command, op, errors.New("no device"))
	}
	enc, err := gp.device.CreateCommandEncoder(nil)
	if err != nil {
		return errors.Log(graphics.NewError(graphics.Command, op, err))
	}
	gp.cmd = commands{
		recording:   true,
		encoder:     enc,
		clears:      make(map[graphics.ImageView]graphics.Color),
		depthClears: make(map[graphics.ImageView]float32),
	}
	return nil
}

func (gp *GPU) ClearColor(view graphics.ImageView, c graphics.Color) {
	if gp.recording("ClearColor") {
		gp.cmd.clears[view] = c
	}
}

func (gp *GPU) ClearDepth(view graphics.ImageView, depth float32) {
	if gp.recording("ClearDepth") {
		gp.cmd.depthClears[view] = depth
	}
}

func (gp *GPU) SetRenderAttachments(colors []graphics.ImageView, depth graphics.ImageView) {
	const op = "SetRenderAttachments"
	c := &gp.cmd
	if !gp.recording(op) {
		return
	}
	if c.pass != nil {
		c.fail(graphics.NewError(graphics.Command, op, errors.New("render pass already open")))
		return
	}
	rpd := &wgpu.RenderPassDescriptor{}
	for _, h := range colors {
		view, err := gp.resolveView(h, op)
		if err != nil {
			c.fail(err)
			return
		}
		att := wgpu.RenderPassColorAttachment{
			View:    view,
			LoadOp:  wgpu.LoadOpLoad,
			StoreOp: wgpu.StoreOpStore,
		}
		if cl, ok := c.clears[h]; ok {
			att.LoadOp = wgpu.LoadOpClear
			att.ClearValue = wgpu.Color{R: float64(cl.R), G: float64(cl.G), B: float64(cl.B), A: float64(cl.A)}
		}
		rpd.ColorAttachments = append(rpd.ColorAttachments, att)
	}
	if depth != 0 {
		vw, err := get[*textureView](&gp.res, graphics.Handle(depth), op)
		if err != nil {
			c.fail(err)
			return
		}
		if !vw.format.IsDepth() {
			c.fail(graphics.NewError(graphics.Command, op, fmt.Errorf("view %d of format %v is not a depth view", depth, vw.format)))
			return
		}
		att := &wgpu.RenderPassDepthStencilAttachment{
			View:         vw.view,
			DepthLoadOp:  wgpu.LoadOpLoad,
			DepthStoreOp: wgpu.StoreOpStore,
		}
		if d, ok := c.depthClears[depth]; ok {
			att.DepthLoadOp = wgpu.LoadOpClear
			att.DepthClearValue = d
		}
		if vw.format.HasStencil() {
			att.StencilLoadOp = wgpu.LoadOpClear
			att.StencilStoreOp = wgpu.StoreOpStore
		}
		rpd.DepthStencilAttachment = att
	}
	c.pass = c.encoder.BeginRenderPass(rpd)
	gp.applyViewports()
	gp.applyScissors()
	if c.pipeline != nil {
		c.pass.SetPipeline(c.pipeline.pipeline)
	}
	if c.bindGroup != nil {
		c.pass.SetBindGroup(0, c.bindGroup, nil)
	}
}

// applyViewports sets the viewport on the open pass.
// WebGPU has a single viewport, so only the first is used.
func (gp *GPU) applyViewports() {
	c := &gp.cmd
	if c.pass == nil || len(c.viewports) == 0 {
		return
	}
	vp := c.viewports[0]
	c.pass.SetViewport(vp.X, vp.Y, vp.Width, vp.Height, vp.MinDepth, vp.MaxDepth)
}

func (gp *GPU) applyScissors() {
	c := &gp.cmd
	if c.pass == nil || len(c.scissors) == 0 {
		return
	}
	sr := c.scissors[0]
	c.pass.SetScissorRect(uint32(max(sr.Offset.X, 0)), uint32(max(sr.Offset.Y, 0)), sr.Extent.Width, sr.Extent.Height)
}

func (gp *GPU) SetViewports(viewports ...graphics.Viewport) {
	if !gp.recording("SetViewports") {
		return
	}
	if len(viewports) > 1 {
		gp.debug("only the first viewport is used", "count", len(viewports))
	}
	gp.cmd.viewports = viewports
	gp.applyViewports()
}

func (gp *GPU) SetScissors(scissors ...graphics.Rect2D) {
	if !gp.recording("SetScissors") {
		return
	}
	gp.cmd.scissors = scissors
	gp.applyScissors()
}

func (gp *GPU) SetPipeline(h graphics.Pipeline) {
	const op = "SetPipeline"
	c := &gp.cmd
	if !gp.recording(op) {
		return
	}
	pl, err := get[*pipeline](&gp.res, graphics.Handle(h), op)
	if err != nil {
		c.fail(err)
		return
	}
	c.pipeline = pl
	c.bindGroup = nil
	if c.pass != nil {
		c.pass.SetPipeline(pl.pipeline)
	}
}

func (gp *GPU) SetDescriptor(d graphics.DescriptorInfo) {
	if gp.recording("SetDescriptor") {
		gp.cmd.descriptors = append(gp.cmd.descriptors, d)
	}
}

func (gp *GPU) UpdateDescriptors() {
	const op = "UpdateDescriptors"
	c := &gp.cmd
	if !gp.recording(op) {
		return
	}
	if c.pipeline == nil {
		c.fail(graphics.NewError(graphics.Command, op, errors.New("no pipeline set")))
		return
	}
	entries := make([]wgpu.BindGroupEntry, 0, len(c.descriptors))
	for _, d := range c.descriptors {
		if _, ok := c.pipeline.bindings[d.Binding]; !ok {
			c.fail(graphics.NewError(graphics.Command, op, fmt.Errorf("binding %d is not in the pipeline layout", d.Binding)))
			return
		}
		if d.Type != graphics.DescriptorBuffer {
			c.fail(graphics.NewError(graphics.Command, op, fmt.Errorf("unsupported descriptor type %v at binding %d", d.Type, d.Binding)))
			return
		}
		bf, err := get[*buffer](&gp.res, d.Resource, op)
		if err != nil {
			c.fail(err)
			return
		}
		entries = append(entries, wgpu.BindGroupEntry{
			Binding: uint32(d.Binding),
			Buffer:  bf.buffer,
			Offset:  0,
			Size:    wgpu.WholeSize,
		})
	}
	c.descriptors = nil
	bg, err := gp.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout:  c.pipeline.bindLayout,
		Entries: entries,
	})
	if err != nil {
		c.fail(graphics.NewError(graphics.Command, op, err))
		return
	}
	c.bindGroups = append(c.bindGroups, bg) // released after submit
	c.bindGroup = bg
	if c.pass != nil {
		c.pass.SetBindGroup(0, bg, nil) // note: nil is dynamic offsets
	}
}

func (gp *GPU) SetVertexBuffers(bufs ...graphics.Buffer) {
	const op = "SetVertexBuffers"
	rp := gp.active(op)
	if rp == nil {
		return
	}
	for slot, h := range bufs {
		bf, err := get[*buffer](&gp.res, graphics.Handle(h), op)
		if err != nil {
			gp.cmd.fail(err)
			return
		}
		rp.SetVertexBuffer(uint32(slot), bf.buffer, 0, wgpu.WholeSize)
	}
}

func (gp *GPU) SetIndexBuffer(h graphics.Buffer) {
	const op = "SetIndexBuffer"
	rp := gp.active(op)
	if rp == nil {
		return
	}
	bf, err := get[*buffer](&gp.res, graphics.Handle(h), op)
	if err != nil {
		gp.cmd.fail(err)
		return
	}
	rp.SetIndexBuffer(bf.buffer, IndexFormat(bf.stride), 0, wgpu.WholeSize)
}

func (gp *GPU) DrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	const op = "DrawIndexed"
	rp := gp.active(op)
	if rp == nil {
		return
	}
	if gp.cmd.pipeline == nil {
		gp.cmd.fail(graphics.NewError(graphics.Command, op, errors.New("no pipeline set")))
		return
	}
	rp.DrawIndexed(indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

func (gp *GPU) EndRendering() error {
	const op = "EndRendering"
	c := &gp.cmd
	if !c.recording {
		return graphics.NewError(graphics.Command, op, errors.New("not rendering"))
	}
	defer c.releaseFrame()
	if c.pass != nil {
		c.pass.End()
		c.pass.Release() // must happen before Finish
		c.pass = nil
	}
	enc := c.encoder
	c.encoder = nil
	defer enc.Release()
	if c.err != nil {
		return c.err
	}
	cmdBuffer, err := enc.Finish(nil)
	if err != nil {
		return errors.Log(graphics.NewError(graphics.Command, op, err))
	}
	gp.queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	return nil
}
