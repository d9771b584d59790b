// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gfxtest/graphics"
	"github.com/cogentcore/webgpu/wgpu"
)

// Surfacer is a window that has a WebGPU surface, such as [Window].
type Surfacer interface {
	Surface() *wgpu.Surface
}

// swapchain is a configured surface. WebGPU hands out one surface
// texture at a time, so the swapchain has Count logical image slots:
// each acquire binds the current surface texture to the next slot.
type swapchain struct {
	surface *wgpu.Surface
	config  *wgpu.SurfaceConfiguration
	format  graphics.Format

	// images are the handles of the slot images.
	images []graphics.Handle
	next   int

	// current is the acquired texture, bound to slot currentSlot.
	current     *wgpu.Texture
	currentSlot int
}

func (sc *swapchain) releaseCurrent() {
	if sc.current != nil {
		sc.current.Release()
		sc.current = nil
	}
	sc.currentSlot = -1
}

func (sc *swapchain) release() {
	sc.releaseCurrent()
}

// swapchainImage is a slot image of a swapchain.
type swapchainImage struct {
	sc   *swapchain
	slot int
}

func (si *swapchainImage) release() {}

func surfaceOf(window any) (*wgpu.Surface, error) {
	switch w := window.(type) {
	case *wgpu.Surface:
		return w, nil
	case Surfacer:
		return w.Surface(), nil
	}
	return nil, fmt.Errorf("window of type %T has no WebGPU surface", window)
}

func (gp *GPU) CreateDesktopSwapchain(ci graphics.SwapchainCreateInfo) (graphics.Swapchain, error) {
	const op = "CreateDesktopSwapchain"
	surface, err := surfaceOf(ci.Window)
	if err != nil {
		return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, err))
	}
	if err := gp.initDevice(surface); err != nil {
		return 0, err
	}
	caps := surface.GetCapabilities(gp.adapter)
	if len(caps.Formats) == 0 {
		return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, errors.New("surface is not supported by the adapter")))
	}

	tf, err := lookup(FormatToTextureFormat, ci.Format, op, "format")
	if err != nil {
		return 0, errors.Log(err)
	}
	if !slices.Contains(caps.Formats, tf) {
		slog.Info("gpu: swapchain format not supported by surface, using preferred format", "requested", ci.Format, "format", caps.Formats[0])
		tf = caps.Formats[0]
	}
	format, ok := TextureFormatToFormat[tf]
	if !ok {
		return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, fmt.Errorf("unsupported surface format %v", tf)))
	}

	mode := wgpu.PresentModeFifo
	if !ci.VSync && slices.Contains(caps.PresentModes, wgpu.PresentModeImmediate) {
		mode = wgpu.PresentModeImmediate
	}
	alpha := wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alpha = caps.AlphaModes[0]
	}

	sc := &swapchain{
		surface: surface,
		format:  format,
		config: &wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      tf,
			Width:       uint32(max(ci.Width, 1)),
			Height:      uint32(max(ci.Height, 1)),
			PresentMode: mode,
			AlphaMode:   alpha,
		},
		currentSlot: -1,
	}
	surface.Configure(gp.adapter, gp.device, sc.config)

	h := gp.res.add(sc)
	for slot := range max(ci.Count, 1) {
		sc.images = append(sc.images, gp.res.add(&swapchainImage{sc: sc, slot: slot}))
	}
	gp.debug("swapchain", "handle", h, "size", [2]int{ci.Width, ci.Height}, "format", format, "count", len(sc.images))
	return graphics.Swapchain(h), nil
}

func (gp *GPU) DestroyDesktopSwapchain(sch graphics.Swapchain) {
	sc, err := get[*swapchain](&gp.res, graphics.Handle(sch), "DestroyDesktopSwapchain")
	if errors.Log(err) != nil {
		return
	}
	for _, img := range sc.images {
		delete(gp.res.table, img)
	}
	remove[*swapchain](&gp.res, graphics.Handle(sch), "DestroyDesktopSwapchain")
}

func (gp *GPU) ResizeDesktopSwapchain(sch graphics.Swapchain, width, height int) error {
	const op = "ResizeDesktopSwapchain"
	sc, err := get[*swapchain](&gp.res, graphics.Handle(sch), op)
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		// minimized: keep the old configuration
		return nil
	}
	sc.releaseCurrent()
	sc.config.Width = uint32(width)
	sc.config.Height = uint32(height)
	sc.surface.Configure(gp.adapter, gp.device, sc.config)
	gp.debug("swapchain resize", "handle", sch, "size", [2]int{width, height})
	return nil
}

func (gp *GPU) DesktopSwapchainFormat(sch graphics.Swapchain) graphics.Format {
	sc, err := get[*swapchain](&gp.res, graphics.Handle(sch), "DesktopSwapchainFormat")
	if errors.Log(err) != nil {
		return graphics.UndefinedFormat
	}
	return sc.format
}

func (gp *GPU) DesktopSwapchainImage(sch graphics.Swapchain, index int) (graphics.Image, error) {
	const op = "DesktopSwapchainImage"
	sc, err := get[*swapchain](&gp.res, graphics.Handle(sch), op)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(sc.images) {
		return 0, graphics.NewError(graphics.ResourceCreation, op, fmt.Errorf("%w: image index %d of %d", graphics.ErrInvalidHandle, index, len(sc.images)))
	}
	return graphics.Image(sc.images[index]), nil
}

func (gp *GPU) AcquireDesktopSwapchainImage(sch graphics.Swapchain) (int, error) {
	const op = "AcquireDesktopSwapchainImage"
	sc, err := get[*swapchain](&gp.res, graphics.Handle(sch), op)
	if err != nil {
		return 0, err
	}
	// an image acquired but never presented is dropped
	sc.releaseCurrent()
	tex, err := sc.surface.GetCurrentTexture()
	if err != nil || tex == nil {
		return 0, graphics.NewError(graphics.SwapchainAcquire, op, errors.Join(graphics.ErrSurfaceOutdated, err))
	}
	slot := sc.next
	sc.next = (sc.next + 1) % len(sc.images)
	sc.current = tex
	sc.currentSlot = slot
	return slot, nil
}

func (gp *GPU) PresentDesktopSwapchainImage(sch graphics.Swapchain, index int) error {
	const op = "PresentDesktopSwapchainImage"
	sc, err := get[*swapchain](&gp.res, graphics.Handle(sch), op)
	if err != nil {
		return err
	}
	if sc.current == nil || sc.currentSlot != index {
		return graphics.NewError(graphics.Present, op, fmt.Errorf("%w: image %d is not acquired", graphics.ErrInvalidHandle, index))
	}
	sc.surface.Present()
	sc.releaseCurrent()
	return nil
}
