// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cubetest is a harness that draws a colored cube through
// a graphics.API, to test a backend end to end: swapchain, depth
// buffer, vertex, index and uniform buffers, shaders, pipeline
// state and the per-frame command sequence.
package cubetest

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gfxtest/camera"
	"cogentcore.org/gfxtest/cube"
	"cogentcore.org/gfxtest/cubetest/shaders"
	"cogentcore.org/gfxtest/graphics"
	"cogentcore.org/gfxtest/xrmath"
)

// Window is the window the harness renders to. It is also passed
// to the backend as the Window of the swapchain.
type Window interface {
	// PollEvents processes pending window events without blocking,
	// and returns false once the window has been asked to close.
	PollEvents() bool

	// Size returns the size of the drawable area in pixels.
	Size() image.Point
}

// EventWaiter is a Window that can block until an event arrives.
// The render loop uses it to idle while the window is minimized.
type EventWaiter interface {
	WaitEvents(timeout time.Duration)
}

// MinimizedWait is how long the render loop idles per iteration
// while the window is minimized.
const MinimizedWait = 50 * time.Millisecond

// State is the state of the render loop.
type State int32 //enums:enum

const (
	Running State = iota
	Quitting
)

// SwapchainFormat is the requested format of the swapchain images.
// The backend may substitute the format that the surface prefers.
const SwapchainFormat = graphics.RGBA8Unorm

// ClearColor is the background color.
var ClearColor = graphics.Color{R: 0.22, G: 0.17, B: 0.35, A: 1}

// App is the cube harness.
type App struct {
	Config Config

	// Stats is where frame statistics are printed, if non-nil.
	Stats io.Writer

	api    graphics.API
	win    Window
	camera *camera.Camera
	res    graphics.ResourceStack

	size      image.Point
	swapchain graphics.Swapchain
	format    graphics.Format
	views     []graphics.ImageView

	depthImage graphics.Image
	depthView  graphics.ImageView

	vertexBuffer  graphics.Buffer
	indexBuffer   graphics.Buffer
	paletteBuffer graphics.Buffer
	cameraBuffer  graphics.Buffer

	vertexShader   graphics.Shader
	fragmentShader graphics.Shader
	pipeline       graphics.Pipeline

	watcher *shaderWatcher
	stats   *frameStats

	frame       int
	frameErrors int

	// sleep idles the render loop for windows that are not an EventWaiter.
	sleep func(time.Duration)

	state    atomic.Int32
	done     chan struct{}
	doneOnce sync.Once
}

// New returns a new harness rendering to win with api.
// Call Setup before Run.
func New(api graphics.API, win Window, cfg Config) *App {
	return &App{
		Config: cfg,
		api:    api,
		win:    win,
		camera: cfg.Camera(xrmath.ClipSpaceOf(api.Type())),
		sleep:  time.Sleep,
		done:   make(chan struct{}),
	}
}

// State returns the state of the render loop.
func (a *App) State() State {
	return State(a.state.Load())
}

// Quit requests the render loop to stop after the current frame.
// It is safe to call from any goroutine.
func (a *App) Quit() {
	a.state.Store(int32(Quitting))
}

// Done is closed when Teardown has finished.
func (a *App) Done() <-chan struct{} {
	return a.done
}

// Frames returns the number of frames presented.
func (a *App) Frames() int {
	return a.frame
}

// Size returns the current render size.
func (a *App) Size() image.Point {
	return a.size
}

// Format returns the format of the swapchain images.
func (a *App) Format() graphics.Format {
	return a.format
}

// Camera returns the camera.
func (a *App) Camera() *camera.Camera {
	return a.camera
}

// Setup creates all resources. On failure the resources created
// so far are destroyed.
func (a *App) Setup() (err error) {
	if err := a.Config.Validate(); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			a.res.Release()
		}
	}()
	a.size = a.win.Size()
	if a.size.X <= 0 || a.size.Y <= 0 {
		a.size = a.Config.Size()
	}
	if err := a.createSwapchain(); err != nil {
		return err
	}
	a.res.Push("depth", a.destroyDepth)
	if err := a.createDepth(a.size); err != nil {
		return err
	}
	if err := a.createBuffers(); err != nil {
		return err
	}

	vert, frag, err := LoadShaders(a.Config.ShaderDir)
	if err != nil {
		return errors.Log(err)
	}
	a.res.Push("pipeline", a.destroyPipeline)
	a.vertexShader, a.fragmentShader, a.pipeline, err = a.createPipeline(vert, frag)
	if err != nil {
		return err
	}

	if a.Config.ShaderDir != "" {
		w, err := newShaderWatcher(a.Config.ShaderDir)
		if err != nil {
			return errors.Log(err)
		}
		a.watcher = w
		a.res.Push("shader watcher", func() {
			a.watcher.close()
			a.watcher = nil
		})
	}
	if a.Config.StatsInterval > 0 {
		a.stats = newFrameStats(time.Duration(a.Config.StatsInterval*float32(time.Second)), a.Stats)
	}
	slog.Info("cubetest: ready", "size", a.size, "format", a.format, "images", len(a.views))
	return nil
}

func (a *App) createSwapchain() error {
	sc, err := a.api.CreateDesktopSwapchain(graphics.SwapchainCreateInfo{
		Width:  a.size.X,
		Height: a.size.Y,
		Count:  a.Config.SwapchainCount,
		Window: a.win,
		Format: SwapchainFormat,
		VSync:  a.Config.VSync,
	})
	if err != nil {
		return err
	}
	a.swapchain = sc
	a.res.Push("swapchain", func() { a.api.DestroyDesktopSwapchain(sc) })
	a.format = a.api.DesktopSwapchainFormat(sc)

	for i := range a.Config.SwapchainCount {
		img, err := a.api.DesktopSwapchainImage(sc, i)
		if err != nil {
			return err
		}
		view, err := a.api.CreateImageView(graphics.ImageViewCreateInfo{
			Image:      img,
			Type:       graphics.RTV,
			View:       graphics.View2D,
			Format:     a.format,
			Aspect:     graphics.AspectColor,
			LevelCount: 1,
			LayerCount: 1,
		})
		if err != nil {
			return err
		}
		a.views = append(a.views, view)
		a.res.Push(fmt.Sprintf("swapchain view %d", i), func() { a.api.DestroyImageView(view) })
	}
	return nil
}

// createDepth creates the depth image and view of the given size.
func (a *App) createDepth(size image.Point) error {
	df := a.api.DepthFormat()
	img, err := a.api.CreateImage(graphics.ImageCreateInfo{
		Dimension:       2,
		Width:           size.X,
		Height:          size.Y,
		Depth:           1,
		MipLevels:       1,
		ArrayLayers:     1,
		SampleCount:     1,
		Format:          df,
		DepthAttachment: true,
		Label:           "depth",
	})
	if err != nil {
		return err
	}
	a.depthImage = img
	view, err := a.api.CreateImageView(graphics.ImageViewCreateInfo{
		Image:      img,
		Type:       graphics.DSV,
		View:       graphics.View2D,
		Format:     df,
		Aspect:     graphics.AspectDepth,
		LevelCount: 1,
		LayerCount: 1,
	})
	if err != nil {
		return err
	}
	a.depthView = view
	return nil
}

func (a *App) destroyDepth() {
	if a.depthView != 0 {
		a.api.DestroyImageView(a.depthView)
		a.depthView = 0
	}
	if a.depthImage != 0 {
		a.api.DestroyImage(a.depthImage)
		a.depthImage = 0
	}
}

func (a *App) createBuffers() error {
	constants := a.camera.Update(a.size, 0)
	for _, b := range []struct {
		buf *graphics.Buffer
		ci  graphics.BufferCreateInfo
	}{
		{&a.vertexBuffer, graphics.BufferCreateInfo{Type: graphics.VertexBuffer, Stride: cube.VertexStride, Data: cube.VertexBytes(), Label: "vertices"}},
		{&a.indexBuffer, graphics.BufferCreateInfo{Type: graphics.IndexBuffer, Stride: 4, Data: cube.IndexBytes(), Label: "indices"}},
		{&a.paletteBuffer, graphics.BufferCreateInfo{Type: graphics.UniformBuffer, Data: cube.PaletteBytes(), Label: "palette"}},
		{&a.cameraBuffer, graphics.BufferCreateInfo{Type: graphics.UniformBuffer, Data: constants.Bytes(), Label: "camera"}},
	} {
		b.ci.Size = len(b.ci.Data)
		buf, err := a.api.CreateBuffer(b.ci)
		if err != nil {
			return err
		}
		*b.buf = buf
		a.res.Push(b.ci.Label+" buffer", func() { a.api.DestroyBuffer(buf) })
	}
	return nil
}

// PipelineCreateInfo returns the pipeline of the cube for the given
// shaders and formats.
func PipelineCreateInfo(vs, fs graphics.Shader, color, depth graphics.Format) graphics.PipelineCreateInfo {
	return graphics.PipelineCreateInfo{
		Shaders: []graphics.Shader{vs, fs},
		VertexInputState: graphics.VertexInputState{
			Attributes: []graphics.VertexInputAttribute{{Location: 0, Binding: 0, Type: graphics.Vec4, Offset: 0, SemanticName: "TEXCOORD"}},
			Bindings:   []graphics.VertexInputBinding{{Binding: 0, Offset: 0, Stride: cube.VertexStride}},
		},
		InputAssemblyState: graphics.InputAssemblyState{Topology: graphics.TriangleList},
		RasterisationState: graphics.RasterisationState{
			PolygonMode: graphics.Fill,
			CullMode:    graphics.CullBack,
			FrontFace:   graphics.CounterClockwise,
			LineWidth:   1,
		},
		MultisampleState: graphics.MultisampleState{
			RasterisationSamples: 1,
			MinSampleShading:     1,
			SampleMask:           0xFFFFFFFF,
		},
		DepthStencilState: graphics.DepthStencilState{
			DepthTestEnable:  true,
			DepthWriteEnable: true,
			DepthCompareOp:   graphics.CompareLessOrEqual,
			MaxDepthBounds:   1,
		},
		ColorBlendState: graphics.ColorBlendState{
			LogicOp: graphics.LogicNoOp,
			Attachments: []graphics.ColorBlendAttachmentState{{
				BlendEnable:         true,
				SrcColorBlendFactor: graphics.BlendSrcAlpha,
				DstColorBlendFactor: graphics.BlendOneMinusSrcAlpha,
				ColorBlendOp:        graphics.BlendAdd,
				SrcAlphaBlendFactor: graphics.BlendOne,
				DstAlphaBlendFactor: graphics.BlendZero,
				AlphaBlendOp:        graphics.BlendAdd,
				ColorWriteMask:      graphics.ColorAll,
			}},
		},
		ColorFormats: []graphics.Format{color},
		DepthFormat:  depth,
		Layout: []graphics.DescriptorInfo{
			{Binding: shaders.CameraBinding, Type: graphics.DescriptorBuffer, Stage: graphics.VertexStage},
			{Binding: shaders.PaletteBinding, Type: graphics.DescriptorBuffer, Stage: graphics.FragmentStage},
		},
		Label: "cube",
	}
}

// createPipeline creates the shaders and the pipeline. On failure
// it destroys what it created.
func (a *App) createPipeline(vert, frag string) (vs, fs graphics.Shader, pl graphics.Pipeline, err error) {
	vs, err = a.api.CreateShader(graphics.ShaderCreateInfo{
		Type: graphics.VertexStage, Source: vert, EntryPoint: shaders.VertexEntry, Name: shaders.VertexFile,
	})
	if err != nil {
		return 0, 0, 0, err
	}
	fs, err = a.api.CreateShader(graphics.ShaderCreateInfo{
		Type: graphics.FragmentStage, Source: frag, EntryPoint: shaders.FragmentEntry, Name: shaders.FragmentFile,
	})
	if err != nil {
		a.api.DestroyShader(vs)
		return 0, 0, 0, err
	}
	pl, err = a.api.CreatePipeline(PipelineCreateInfo(vs, fs, a.format, a.api.DepthFormat()))
	if err != nil {
		a.api.DestroyShader(fs)
		a.api.DestroyShader(vs)
		return 0, 0, 0, err
	}
	return vs, fs, pl, nil
}

func (a *App) destroyPipeline() {
	if a.pipeline != 0 {
		a.api.DestroyPipeline(a.pipeline)
		a.pipeline = 0
	}
	if a.fragmentShader != 0 {
		a.api.DestroyShader(a.fragmentShader)
		a.fragmentShader = 0
	}
	if a.vertexShader != 0 {
		a.api.DestroyShader(a.vertexShader)
		a.vertexShader = 0
	}
}

// ReloadShaders rebuilds the shaders and the pipeline from
// Config.ShaderDir. On failure the current pipeline is kept.
func (a *App) ReloadShaders() error {
	vert, frag, err := LoadShaders(a.Config.ShaderDir)
	if err != nil {
		return err
	}
	vs, fs, pl, err := a.createPipeline(vert, frag)
	if err != nil {
		return err
	}
	a.destroyPipeline()
	a.vertexShader, a.fragmentShader, a.pipeline = vs, fs, pl
	slog.Info("cubetest: shaders reloaded", "dir", a.Config.ShaderDir)
	return nil
}

// Resize resizes the swapchain and recreates the depth target for
// the given size. Empty sizes, as for a minimized window, are ignored.
// The render size changes only once both succeed, and a failed
// resize is retried by the next frame.
func (a *App) Resize(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	if err := a.api.ResizeDesktopSwapchain(a.swapchain, size.X, size.Y); err != nil {
		return err
	}
	a.destroyDepth()
	if err := a.createDepth(size); err != nil {
		return err
	}
	a.size = size
	return nil
}

// Frame renders and presents one frame.
// Nothing is drawn while the window is minimized.
func (a *App) Frame() error {
	_, err := a.renderFrame()
	return err
}

// renderFrame is Frame, also returning whether the frame
// was skipped because the window is minimized.
func (a *App) renderFrame() (skipped bool, err error) {
	size := a.win.Size()
	if size.X <= 0 || size.Y <= 0 {
		return true, nil
	}
	if size != a.size || a.depthView == 0 {
		slog.Debug("cubetest: resize", "size", size)
		if err := a.Resize(size); err != nil {
			return false, err
		}
	}
	if a.watcher != nil && a.watcher.changed() {
		if err := a.ReloadShaders(); err != nil {
			slog.Error("cubetest: shader reload failed, keeping the previous shaders", "err", err)
		}
	}

	idx, err := a.api.AcquireDesktopSwapchainImage(a.swapchain)
	if err != nil {
		return false, err
	}
	if idx < 0 || idx >= len(a.views) {
		return false, graphics.NewError(graphics.SwapchainAcquire, "Frame", fmt.Errorf("%w: image index %d of %d", graphics.ErrInvalidHandle, idx, len(a.views)))
	}
	if err := a.render(idx); err != nil {
		return false, err
	}
	if err := a.api.PresentDesktopSwapchainImage(a.swapchain, idx); err != nil {
		return false, err
	}
	a.frame++
	if a.stats != nil {
		a.stats.frame()
	}
	return false, nil
}

// render records and submits the commands of one frame
// to the swapchain image idx.
func (a *App) render(idx int) error {
	api := a.api
	if err := api.BeginRendering(); err != nil {
		return err
	}
	view := a.views[idx]
	api.ClearColor(view, ClearColor)
	api.ClearDepth(a.depthView, 1)
	api.SetRenderAttachments([]graphics.ImageView{view}, a.depthView)
	api.SetViewports(graphics.Viewport{Width: float32(a.size.X), Height: float32(a.size.Y), MinDepth: 0, MaxDepth: 1})
	api.SetScissors(graphics.Rect2D{Extent: graphics.Extent2D{Width: uint32(a.size.X), Height: uint32(a.size.Y)}})

	constants := a.camera.Update(a.size, a.frame)
	api.SetPipeline(a.pipeline)

	err := api.SetBufferData(a.cameraBuffer, 0, constants.Bytes())
	api.SetDescriptor(graphics.DescriptorInfo{
		Binding:  shaders.CameraBinding,
		Resource: graphics.Handle(a.cameraBuffer),
		Type:     graphics.DescriptorBuffer,
		Stage:    graphics.VertexStage,
	})
	err = errors.Join(err, api.SetBufferData(a.paletteBuffer, 0, cube.PaletteBytes()))
	api.SetDescriptor(graphics.DescriptorInfo{
		Binding:  shaders.PaletteBinding,
		Resource: graphics.Handle(a.paletteBuffer),
		Type:     graphics.DescriptorBuffer,
		Stage:    graphics.FragmentStage,
	})
	api.UpdateDescriptors()

	api.SetVertexBuffers(a.vertexBuffer)
	api.SetIndexBuffer(a.indexBuffer)
	api.DrawIndexed(cube.NumVertices, 1, 0, 0, 0)
	return errors.Join(err, api.EndRendering())
}

// Run runs the render loop until the window is closed, Quit is
// called, MaxFrames frames are presented, or MaxFrameErrors
// consecutive frames fail.
func (a *App) Run() error {
	for a.State() == Running {
		if !a.win.PollEvents() {
			a.Quit()
			break
		}
		skipped, err := a.renderFrame()
		if err == nil {
			a.frameErrors = 0
			if skipped {
				a.idle()
			}
			if a.Config.MaxFrames > 0 && a.frame >= a.Config.MaxFrames {
				a.Quit()
			}
			continue
		}
		a.frameErrors++
		switch {
		case graphics.IsRecoverableSurfaceError(err):
			slog.Warn("cubetest: surface outdated, resizing", "err", err)
			if rerr := a.Resize(a.win.Size()); rerr != nil {
				err = errors.Join(err, rerr)
				slog.Error("cubetest: resize failed", "err", rerr)
			}
		case errors.Is(err, graphics.ErrTimeout):
			slog.Debug("cubetest: frame skipped", "err", err)
		default:
			slog.Error("cubetest: frame failed", "err", err)
		}
		if a.frameErrors >= a.Config.MaxFrameErrors {
			return fmt.Errorf("cubetest: %d consecutive frames failed: %w", a.frameErrors, err)
		}
	}
	return nil
}

// idle waits for window events, or sleeps, while the window is minimized.
func (a *App) idle() {
	if w, ok := a.win.(EventWaiter); ok {
		w.WaitEvents(MinimizedWait)
		return
	}
	a.sleep(MinimizedWait)
}

// Teardown destroys all resources in reverse creation order,
// each exactly once, and closes Done.
func (a *App) Teardown() {
	a.Quit()
	a.res.Release()
	a.views = nil
	a.doneOnce.Do(func() { close(a.done) })
}
