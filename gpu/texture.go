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

// texture is an image created by CreateImage.
type texture struct {
	texture *wgpu.Texture
	format  graphics.Format
}

func (tx *texture) release() {
	if tx.texture != nil {
		tx.texture.Release()
		tx.texture = nil
	}
}

// textureView is a view of a texture or of a swapchain slot image.
// Views of slot images are made from the acquired surface texture
// each time the view is used.
type textureView struct {
	view   *wgpu.TextureView
	image  graphics.Handle
	format graphics.Format
	slot   *swapchainImage
}

func (vw *textureView) release() {
	if vw.view != nil {
		vw.view.Release()
		vw.view = nil
	}
}

// TextureUsage returns the WebGPU usage of an image.
func TextureUsage(ci *graphics.ImageCreateInfo) wgpu.TextureUsage {
	var usage wgpu.TextureUsage
	if ci.ColorAttachment || ci.DepthAttachment {
		usage |= wgpu.TextureUsageRenderAttachment
	}
	if ci.Sampled {
		usage |= wgpu.TextureUsageTextureBinding
		if !ci.Format.IsDepth() {
			usage |= wgpu.TextureUsageCopyDst
		}
	}
	return usage
}

func textureDimension(dim int) wgpu.TextureDimension {
	switch dim {
	case 1:
		return wgpu.TextureDimension1D
	case 3:
		return wgpu.TextureDimension3D
	}
	return wgpu.TextureDimension2D
}

func (gp *GPU) CreateImage(ci graphics.ImageCreateInfo) (graphics.Image, error) {
	const op = "CreateImage"
	if err := gp.initDevice(nil); err != nil {
		return 0, err
	}
	tf, err := lookup(FormatToTextureFormat, ci.Format, op, "format")
	if err != nil {
		return 0, errors.Log(err)
	}
	if ci.Width <= 0 || ci.Height <= 0 {
		return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, fmt.Errorf("invalid image size %dx%d", ci.Width, ci.Height)))
	}
	layers := max(ci.Depth, ci.ArrayLayers, 1)
	t, err := gp.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: ci.Label,
		Size: wgpu.Extent3D{
			Width:              uint32(ci.Width),
			Height:             uint32(ci.Height),
			DepthOrArrayLayers: uint32(layers),
		},
		MipLevelCount: uint32(max(ci.MipLevels, 1)),
		SampleCount:   uint32(max(ci.SampleCount, 1)),
		Dimension:     textureDimension(ci.Dimension),
		Format:        tf,
		Usage:         TextureUsage(&ci),
	})
	if err != nil {
		return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, err))
	}
	h := gp.res.add(&texture{texture: t, format: ci.Format})
	gp.debug("image", "handle", h, "label", ci.Label, "format", ci.Format)
	return graphics.Image(h), nil
}

func (gp *GPU) DestroyImage(img graphics.Image) {
	if _, err := get[*swapchainImage](&gp.res, graphics.Handle(img), "DestroyImage"); err == nil {
		errors.Log(graphics.NewError(graphics.Command, "DestroyImage", errors.New("swapchain images are owned by the swapchain")))
		return
	}
	remove[*texture](&gp.res, graphics.Handle(img), "DestroyImage")
}

func (gp *GPU) CreateImageView(ci graphics.ImageViewCreateInfo) (graphics.ImageView, error) {
	const op = "CreateImageView"
	h := graphics.Handle(ci.Image)
	if si, err := get[*swapchainImage](&gp.res, h, op); err == nil {
		return graphics.ImageView(gp.res.add(&textureView{image: h, format: si.sc.format, slot: si})), nil
	}
	tx, err := get[*texture](&gp.res, h, op)
	if err != nil {
		return 0, errors.Log(err)
	}
	dim, err := lookup(ViewDimensionToTextureViewDimension, ci.View, op, "view dimension")
	if err != nil {
		return 0, errors.Log(err)
	}
	format := ci.Format
	if format == graphics.UndefinedFormat {
		format = tx.format
	}
	tf, err := lookup(FormatToTextureFormat, format, op, "format")
	if err != nil {
		return 0, errors.Log(err)
	}
	view, err := tx.texture.CreateView(&wgpu.TextureViewDescriptor{
		Format:          tf,
		Dimension:       dim,
		BaseMipLevel:    uint32(ci.BaseMipLevel),
		MipLevelCount:   uint32(max(ci.LevelCount, 1)),
		BaseArrayLayer:  uint32(ci.BaseArrayLayer),
		ArrayLayerCount: uint32(max(ci.LayerCount, 1)),
		Aspect:          TextureAspect(ci.Aspect),
	})
	if err != nil {
		return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, err))
	}
	return graphics.ImageView(gp.res.add(&textureView{view: view, image: h, format: format})), nil
}

func (gp *GPU) DestroyImageView(view graphics.ImageView) {
	remove[*textureView](&gp.res, graphics.Handle(view), "DestroyImageView")
}

// resolveView returns the WebGPU view of the given view handle.
// Views of swapchain images require that image to be acquired;
// the view made for it is released after the frame is submitted.
func (gp *GPU) resolveView(h graphics.ImageView, op string) (*wgpu.TextureView, error) {
	vw, err := get[*textureView](&gp.res, graphics.Handle(h), op)
	if err != nil {
		return nil, err
	}
	if vw.slot == nil {
		return vw.view, nil
	}
	sc := vw.slot.sc
	if sc.current == nil || sc.currentSlot != vw.slot.slot {
		return nil, graphics.NewError(graphics.Command, op, fmt.Errorf("%w: swapchain image %d is not acquired", graphics.ErrInvalidHandle, vw.slot.slot))
	}
	view, err := sc.current.CreateView(nil)
	if err != nil {
		return nil, graphics.NewError(graphics.Command, op, err)
	}
	gp.cmd.transient = append(gp.cmd.transient, view)
	return view, nil
}
