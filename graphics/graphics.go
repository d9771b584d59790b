// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphics defines a small backend-neutral graphics API:
// opaque resource handles, create-info descriptions of images, views,
// buffers, shaders and pipelines, and the [Device] and [Commands]
// interfaces that a concrete backend (see package gpu) implements.
//
// The API follows the explicit style of modern native APIs:
// every resource is created once, referenced by handle, and
// destroyed once. Recording commands do not return errors;
// the first failure during a frame is kept and returned by
// [Commands.EndRendering].
package graphics

// Handle is the opaque identifier of a backend resource.
// The zero Handle never refers to a resource.
type Handle uint32

// Distinct handle types, so that a Buffer cannot be passed where
// a Pipeline is expected.
type (
	Swapchain Handle
	Image     Handle
	ImageView Handle
	Buffer    Handle
	Shader    Handle
	Pipeline  Handle
)

// Device creates and destroys resources, and owns the swapchain.
type Device interface {
	// Type returns the kind of backend.
	Type() Type

	// DepthFormat returns the depth format the backend prefers for
	// depth attachments.
	DepthFormat() Format

	// CreateDesktopSwapchain creates a swapchain presenting to the
	// window given in ci.Window, which is backend specific.
	CreateDesktopSwapchain(ci SwapchainCreateInfo) (Swapchain, error)
	DestroyDesktopSwapchain(sc Swapchain)

	// ResizeDesktopSwapchain reconfigures the swapchain for a new
	// surface size. Views of swapchain images remain valid.
	ResizeDesktopSwapchain(sc Swapchain, width, height int) error

	// DesktopSwapchainFormat returns the format of the swapchain
	// images, which may differ from the requested format when the
	// surface does not support it.
	DesktopSwapchainFormat(sc Swapchain) Format

	// DesktopSwapchainImage returns the image at index, which is owned
	// by the swapchain and must not be destroyed.
	DesktopSwapchainImage(sc Swapchain, index int) (Image, error)

	// AcquireDesktopSwapchainImage returns the index of the image to
	// render to next.
	AcquireDesktopSwapchainImage(sc Swapchain) (int, error)

	// PresentDesktopSwapchainImage presents the acquired image at index.
	PresentDesktopSwapchainImage(sc Swapchain, index int) error

	CreateImage(ci ImageCreateInfo) (Image, error)
	DestroyImage(img Image)

	CreateImageView(ci ImageViewCreateInfo) (ImageView, error)
	DestroyImageView(view ImageView)

	CreateBuffer(ci BufferCreateInfo) (Buffer, error)
	DestroyBuffer(buf Buffer)

	// SetBufferData writes data into buf starting at byte offset.
	SetBufferData(buf Buffer, offset int, data []byte) error

	CreateShader(ci ShaderCreateInfo) (Shader, error)
	DestroyShader(sh Shader)

	CreatePipeline(ci PipelineCreateInfo) (Pipeline, error)
	DestroyPipeline(pl Pipeline)

	// Release releases the device itself. All resources
	// must have been destroyed first.
	Release()
}

// Commands records the rendering commands for one frame,
// between BeginRendering and EndRendering.
type Commands interface {
	BeginRendering() error

	// ClearColor clears the given render target view to c
	// at the start of the render pass.
	ClearColor(view ImageView, c Color)

	// ClearDepth clears the given depth view to depth
	// at the start of the render pass.
	ClearDepth(view ImageView, depth float32)

	// SetRenderAttachments sets the color targets and the optional
	// depth target (zero for none) of the render pass.
	SetRenderAttachments(colors []ImageView, depth ImageView)

	SetViewports(viewports ...Viewport)
	SetScissors(scissors ...Rect2D)

	SetPipeline(pl Pipeline)

	// SetDescriptor stages a resource binding for the current pipeline.
	SetDescriptor(d DescriptorInfo)

	// UpdateDescriptors binds all staged descriptors.
	UpdateDescriptors()

	SetVertexBuffers(bufs ...Buffer)
	SetIndexBuffer(buf Buffer)

	DrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32)

	// EndRendering ends the frame and submits it, returning the first
	// error recorded since BeginRendering.
	EndRendering() error
}

// API is a complete graphics backend.
type API interface {
	Device
	Commands
}

// Color is a linear RGBA color.
type Color struct {
	R, G, B, A float32
}
