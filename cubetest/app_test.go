// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubetest

import (
	"image"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gfxtest/cube"
	"cogentcore.org/gfxtest/cubetest/shaders"
	"cogentcore.org/gfxtest/graphics"
	"cogentcore.org/gfxtest/graphics/graphicstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testWindow is a window that closes after a number of polls.
type testWindow struct {
	size image.Point

	// closeAfter is the number of polls that return true, if > 0.
	closeAfter int
	polls      int
}

func (w *testWindow) PollEvents() bool {
	w.polls++
	return w.closeAfter <= 0 || w.polls <= w.closeAfter
}

func (w *testWindow) Size() image.Point { return w.size }

// waitWindow is a testWindow that records event waits.
type waitWindow struct {
	testWindow
	waits []time.Duration
}

func (w *waitWindow) WaitEvents(timeout time.Duration) {
	w.waits = append(w.waits, timeout)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.StatsInterval = 0
	return cfg
}

func newTestApp(t *testing.T, cfg Config) (*App, *graphicstest.Recorder, *testWindow) {
	t.Helper()
	rc := &graphicstest.Recorder{}
	win := &testWindow{size: image.Pt(800, 600)}
	a := New(rc, win, cfg)
	require.NoError(t, a.Setup())
	return a, rc, win
}

var frameCalls = []string{
	"AcquireDesktopSwapchainImage",
	"BeginRendering",
	"ClearColor",
	"ClearDepth",
	"SetRenderAttachments",
	"SetViewports",
	"SetScissors",
	"SetPipeline",
	"SetBufferData",
	"SetDescriptor",
	"SetBufferData",
	"SetDescriptor",
	"UpdateDescriptors",
	"SetVertexBuffers",
	"SetIndexBuffer",
	"DrawIndexed",
	"EndRendering",
	"PresentDesktopSwapchainImage",
}

func TestSetup(t *testing.T) {
	a, rc, _ := newTestApp(t, testConfig())
	assert.NoError(t, rc.Err())

	assert.Equal(t, []string{
		"CreateDesktopSwapchain",
		"DesktopSwapchainImage", "CreateImageView",
		"DesktopSwapchainImage", "CreateImageView",
		"DesktopSwapchainImage", "CreateImageView",
		"CreateImage", "CreateImageView",
		"CreateBuffer", "CreateBuffer", "CreateBuffer", "CreateBuffer",
		"CreateShader", "CreateShader",
		"CreatePipeline",
	}, rc.Methods())

	sci := rc.Calls[0].Args.(graphics.SwapchainCreateInfo)
	assert.Equal(t, 800, sci.Width)
	assert.Equal(t, 600, sci.Height)
	assert.Equal(t, 3, sci.Count)
	assert.Equal(t, SwapchainFormat, sci.Format)
	assert.Equal(t, graphics.RGBA8Unorm, a.Format())
	assert.Equal(t, image.Pt(800, 600), a.Size())

	var bufs []graphics.BufferCreateInfo
	var shs []graphics.ShaderCreateInfo
	var views []graphics.ImageViewCreateInfo
	var pci graphics.PipelineCreateInfo
	for _, c := range rc.Calls {
		switch ci := c.Args.(type) {
		case graphics.BufferCreateInfo:
			bufs = append(bufs, ci)
		case graphics.ShaderCreateInfo:
			shs = append(shs, ci)
		case graphics.ImageViewCreateInfo:
			views = append(views, ci)
		case graphics.PipelineCreateInfo:
			pci = ci
		}
	}
	require.Len(t, bufs, 4)
	assert.Equal(t, graphics.VertexBuffer, bufs[0].Type)
	assert.Equal(t, 16, bufs[0].Stride)
	assert.Equal(t, cube.VertexBytes(), bufs[0].Data)
	assert.Equal(t, graphics.IndexBuffer, bufs[1].Type)
	assert.Equal(t, 4, bufs[1].Stride)
	assert.Equal(t, graphics.UniformBuffer, bufs[2].Type)
	assert.Equal(t, cube.PaletteBytes(), bufs[2].Data)
	assert.Equal(t, graphics.UniformBuffer, bufs[3].Type)
	assert.Equal(t, 192, bufs[3].Size)
	for _, b := range bufs {
		assert.Equal(t, len(b.Data), b.Size, b.Label)
	}

	require.Len(t, views, 4)
	for _, v := range views[:3] {
		assert.Equal(t, graphics.RTV, v.Type)
		assert.Equal(t, graphics.RGBA8Unorm, v.Format)
	}
	assert.Equal(t, graphics.DSV, views[3].Type)
	assert.Equal(t, graphics.Depth32Float, views[3].Format)
	assert.Equal(t, graphics.AspectDepth, views[3].Aspect)

	require.Len(t, shs, 2)
	assert.Equal(t, graphics.VertexStage, shs[0].Type)
	assert.Equal(t, shaders.VertexEntry, shs[0].EntryPoint)
	assert.Equal(t, shaders.Vertex, shs[0].Source)
	assert.Equal(t, graphics.FragmentStage, shs[1].Type)
	assert.Equal(t, shaders.FragmentEntry, shs[1].EntryPoint)

	assert.Equal(t, []graphics.Format{graphics.RGBA8Unorm}, pci.ColorFormats)
	assert.Equal(t, graphics.Depth32Float, pci.DepthFormat)
	assert.Len(t, pci.Layout, 2)
	assert.Equal(t, graphics.TriangleList, pci.InputAssemblyState.Topology)
}

func TestTeardownSymmetry(t *testing.T) {
	a, rc, _ := newTestApp(t, testConfig())
	for range 5 {
		require.NoError(t, a.Frame())
	}
	a.Teardown()
	a.Teardown()
	assert.NoError(t, rc.Err())
	assert.Zero(t, rc.Live())

	created := rc.Created()
	destroyed := rc.Destroyed()
	require.Len(t, destroyed, len(created))
	for i, c := range created {
		d := destroyed[len(destroyed)-1-i]
		assert.Equal(t, c.Handle, d.Handle, "%s destroyed by %s", c.Method, d.Method)
		assert.Equal(t, "Destroy"+c.Method[len("Create"):], d.Method)
	}
	select {
	case <-a.Done():
	default:
		t.Fatal("Done not closed")
	}
	assert.Equal(t, Quitting, a.State())
}

func TestFrameCalls(t *testing.T) {
	a, rc, _ := newTestApp(t, testConfig())
	rc.Reset()
	require.NoError(t, a.Frame())
	assert.Equal(t, frameCalls, rc.Methods())
	assert.NoError(t, rc.Err())
	assert.Equal(t, 1, a.Frames())

	call := func(method string) graphicstest.Call {
		i := slices.IndexFunc(rc.Calls, func(c graphicstest.Call) bool { return c.Method == method })
		require.GreaterOrEqual(t, i, 0, method)
		return rc.Calls[i]
	}
	assert.Equal(t, 0, call("AcquireDesktopSwapchainImage").Args)
	assert.Equal(t, ClearColor, call("ClearColor").Args)
	assert.Equal(t, float32(1), call("ClearDepth").Args)
	assert.Equal(t, graphics.Handle(a.views[0]), call("ClearColor").Handle)
	assert.Equal(t, []graphics.Viewport{{Width: 800, Height: 600, MaxDepth: 1}}, call("SetViewports").Args)
	assert.Equal(t, []graphics.Rect2D{{Extent: graphics.Extent2D{Width: 800, Height: 600}}}, call("SetScissors").Args)
	assert.Equal(t, cube.NumVertices, int(call("DrawIndexed").Args.(uint32)))
	assert.Equal(t, graphics.Handle(a.pipeline), call("SetPipeline").Handle)

	rc.Reset()
	require.NoError(t, a.Frame())
	require.NoError(t, a.Frame())
	assert.Equal(t, []any{1, 2}, []any{rc.Calls[0].Args, rc.Calls[len(frameCalls)].Args})
}

func TestRunMaxFrames(t *testing.T) {
	cfg := testConfig()
	cfg.MaxFrames = 4
	a, rc, _ := newTestApp(t, cfg)
	require.NoError(t, a.Run())
	assert.Equal(t, 4, a.Frames())
	assert.Equal(t, 4, rc.Count("PresentDesktopSwapchainImage"))
	assert.Equal(t, Quitting, a.State())
	a.Teardown()
	assert.Zero(t, rc.Live())
}

func TestRunWindowClosed(t *testing.T) {
	a, rc, win := newTestApp(t, testConfig())
	win.closeAfter = 3
	require.NoError(t, a.Run())
	assert.Equal(t, 3, a.Frames())
	assert.Equal(t, 3, rc.Count("DrawIndexed"))
}

func TestRunQuit(t *testing.T) {
	a, rc, _ := newTestApp(t, testConfig())
	a.Quit()
	require.NoError(t, a.Run())
	assert.Zero(t, rc.Count("BeginRendering"))
}

func TestSurfaceOutdated(t *testing.T) {
	cfg := testConfig()
	cfg.MaxFrames = 2
	a, rc, _ := newTestApp(t, cfg)
	rc.Reset()
	rc.FailNext("AcquireDesktopSwapchainImage", graphics.ErrSurfaceOutdated)
	require.NoError(t, a.Run())
	assert.Equal(t, 2, a.Frames())
	assert.Equal(t, 1, rc.Count("ResizeDesktopSwapchain"))
	// the depth target is recreated for the new surface
	assert.Equal(t, 1, rc.Count("DestroyImage"))
	assert.Equal(t, 1, rc.Count("CreateImage"))
	assert.Equal(t, 2, rc.Count("PresentDesktopSwapchainImage"))
	a.Teardown()
	assert.NoError(t, rc.Err())
	assert.Zero(t, rc.Live())
}

func TestTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.MaxFrames = 1
	a, rc, _ := newTestApp(t, cfg)
	rc.Reset()
	rc.FailNext("AcquireDesktopSwapchainImage", graphics.ErrTimeout)
	require.NoError(t, a.Run())
	assert.Equal(t, 1, a.Frames())
	assert.Zero(t, rc.Count("ResizeDesktopSwapchain"))
	assert.Equal(t, 2, rc.Count("AcquireDesktopSwapchainImage"))
}

func TestMaxFrameErrors(t *testing.T) {
	cfg := testConfig()
	cfg.MaxFrameErrors = 3
	a, rc, _ := newTestApp(t, cfg)
	bad := errors.New("device lost")
	rc.FailNext("AcquireDesktopSwapchainImage", bad, bad, bad)
	err := a.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, bad)
	assert.Contains(t, err.Error(), "3 consecutive frames failed")
	assert.Zero(t, a.Frames())
	a.Teardown()
	assert.Zero(t, rc.Live())
}

func TestFrameErrorsReset(t *testing.T) {
	cfg := testConfig()
	cfg.MaxFrameErrors = 2
	cfg.MaxFrames = 3
	a, rc, _ := newTestApp(t, cfg)
	bad := errors.New("flaky")
	rc.FailNext("AcquireDesktopSwapchainImage", bad, nil, bad, nil, bad)
	require.NoError(t, a.Run())
	assert.Equal(t, 3, a.Frames())
}

func TestRenderError(t *testing.T) {
	a, rc, _ := newTestApp(t, testConfig())
	rc.Reset()
	bad := errors.New("submit failed")
	rc.FailNext("EndRendering", bad)
	err := a.Frame()
	assert.ErrorIs(t, err, bad)
	kind, ok := graphics.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, graphics.Command, kind)
	assert.Zero(t, rc.Count("PresentDesktopSwapchainImage"))
	assert.Zero(t, a.Frames())

	// a failed buffer write still ends the frame
	rc.Reset()
	rc.FailNext("SetBufferData", bad)
	assert.ErrorIs(t, a.Frame(), bad)
	assert.Equal(t, 1, rc.Count("EndRendering"))
	assert.NoError(t, rc.Err())

	require.NoError(t, a.Frame())
	assert.Equal(t, 1, a.Frames())
}

func TestResize(t *testing.T) {
	a, rc, win := newTestApp(t, testConfig())
	rc.Reset()
	win.size = image.Pt(1024, 768)
	require.NoError(t, a.Frame())
	assert.Equal(t, image.Pt(1024, 768), a.Size())
	w, h := rc.SwapchainSize(a.swapchain)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
	assert.Equal(t, 1, rc.Count("CreateImage"))
	assert.Equal(t, 1, rc.Count("DestroyImage"))

	for _, c := range rc.Calls {
		if ci, ok := c.Args.(graphics.ImageCreateInfo); ok {
			assert.Equal(t, 1024, ci.Width)
			assert.Equal(t, 768, ci.Height)
		}
		if vps, ok := c.Args.([]graphics.Viewport); ok {
			assert.Equal(t, float32(1024), vps[0].Width)
		}
	}

	// no resize when the size is unchanged
	rc.Reset()
	require.NoError(t, a.Frame())
	assert.Zero(t, rc.Count("ResizeDesktopSwapchain"))

	// minimized windows are skipped
	rc.Reset()
	win.size = image.Point{}
	require.NoError(t, a.Frame())
	assert.Empty(t, rc.Calls)

	a.Teardown()
	assert.NoError(t, rc.Err())
	assert.Zero(t, rc.Live())
}

func TestSetupFailure(t *testing.T) {
	for _, method := range []string{"CreateDesktopSwapchain", "CreateImageView", "CreateImage", "CreateBuffer", "CreateShader", "CreatePipeline"} {
		t.Run(method, func(t *testing.T) {
			rc := &graphicstest.Recorder{}
			bad := errors.New("out of memory")
			rc.FailNext(method, bad)
			a := New(rc, &testWindow{size: image.Pt(640, 480)}, testConfig())
			err := a.Setup()
			assert.ErrorIs(t, err, bad)
			assert.NoError(t, rc.Err())
			assert.Zero(t, rc.Live())
		})
	}
}

func TestSetupInvalidConfig(t *testing.T) {
	rc := &graphicstest.Recorder{}
	cfg := testConfig()
	cfg.SwapchainCount = 0
	a := New(rc, &testWindow{size: image.Pt(640, 480)}, cfg)
	assert.Error(t, a.Setup())
	assert.Empty(t, rc.Calls)
}

func TestSetupMinimized(t *testing.T) {
	rc := &graphicstest.Recorder{}
	a := New(rc, &testWindow{}, testConfig())
	require.NoError(t, a.Setup())
	assert.Equal(t, image.Pt(800, 600), a.Size())
	a.Teardown()
}

func TestReloadShaders(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteShaders(dir))
	cfg := testConfig()
	cfg.ShaderDir = dir
	a, rc, _ := newTestApp(t, cfg)
	require.NotNil(t, a.watcher)

	old := a.pipeline
	require.NoError(t, a.ReloadShaders())
	assert.NotEqual(t, old, a.pipeline)
	assert.Equal(t, 1, rc.Count("DestroyPipeline"))
	assert.Equal(t, 2, rc.Count("DestroyShader"))

	cur := a.pipeline
	live := rc.Live()
	bad := errors.New("bad shader")
	rc.FailNext("CreatePipeline", bad)
	assert.ErrorIs(t, a.ReloadShaders(), bad)
	assert.Equal(t, cur, a.pipeline)
	assert.Equal(t, live, rc.Live())

	require.NoError(t, os.Remove(filepath.Join(dir, shaders.FragmentFile)))
	assert.Error(t, a.ReloadShaders())
	assert.Equal(t, cur, a.pipeline)

	require.NoError(t, a.Frame())
	a.Teardown()
	assert.NoError(t, rc.Err())
	assert.Zero(t, rc.Live())
	assert.Nil(t, a.watcher)
}

func TestSetupMissingShaderDir(t *testing.T) {
	rc := &graphicstest.Recorder{}
	cfg := testConfig()
	cfg.ShaderDir = filepath.Join(t.TempDir(), "missing")
	a := New(rc, &testWindow{size: image.Pt(640, 480)}, cfg)
	assert.Error(t, a.Setup())
	assert.Zero(t, rc.Live())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "Quitting", Quitting.String())
}

func TestResizeDepthFailure(t *testing.T) {
	a, rc, win := newTestApp(t, testConfig())
	rc.Reset()
	win.size = image.Pt(1024, 768)
	bad := errors.New("out of memory")
	rc.FailNext("CreateImage", bad)

	require.ErrorIs(t, a.Frame(), bad)
	assert.Zero(t, a.depthView)
	assert.Equal(t, image.Pt(800, 600), a.Size())
	assert.Zero(t, rc.Count("PresentDesktopSwapchainImage"))

	// the next frame recreates the depth target
	require.NoError(t, a.Frame())
	assert.NotZero(t, a.depthView)
	assert.Equal(t, image.Pt(1024, 768), a.Size())
	assert.Equal(t, 2, rc.Count("CreateImage"))
	i := slices.IndexFunc(rc.Calls, func(c graphicstest.Call) bool { return c.Method == "ClearDepth" })
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, graphics.Handle(a.depthView), rc.Calls[i].Handle)
	assert.NotZero(t, rc.Calls[i].Handle)

	a.Teardown()
	assert.NoError(t, rc.Err())
	assert.Zero(t, rc.Live())
}

func TestResizeDepthViewFailure(t *testing.T) {
	a, rc, _ := newTestApp(t, testConfig())
	rc.Reset()
	bad := errors.New("out of memory")
	rc.FailNext("CreateImageView", bad)
	require.ErrorIs(t, a.Resize(image.Pt(640, 480)), bad)
	assert.Zero(t, a.depthView)
	assert.Equal(t, image.Pt(800, 600), a.Size())

	// the window size is unchanged, but the depth target is missing
	require.NoError(t, a.Frame())
	assert.NotZero(t, a.depthView)
	assert.Equal(t, 1, a.Frames())
	w, h := rc.SwapchainSize(a.swapchain)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, 2, rc.Count("CreateImage"))

	a.Teardown()
	assert.NoError(t, rc.Err())
	assert.Zero(t, rc.Live())
}

func TestRunMinimizedWaits(t *testing.T) {
	rc := &graphicstest.Recorder{}
	win := &waitWindow{testWindow: testWindow{size: image.Pt(800, 600), closeAfter: 4}}
	a := New(rc, win, testConfig())
	require.NoError(t, a.Setup())
	win.size = image.Point{}
	a.sleep = func(time.Duration) { t.Fatal("sleep with an EventWaiter window") }

	require.NoError(t, a.Run())
	assert.Equal(t, []time.Duration{MinimizedWait, MinimizedWait, MinimizedWait, MinimizedWait}, win.waits)
	assert.Zero(t, rc.Count("AcquireDesktopSwapchainImage"))
	assert.Zero(t, a.Frames())
	a.Teardown()
	assert.Zero(t, rc.Live())
}

func TestRunMinimizedSleeps(t *testing.T) {
	a, rc, win := newTestApp(t, testConfig())
	win.closeAfter = 3
	var slept []time.Duration
	a.sleep = func(d time.Duration) {
		slept = append(slept, d)
		// restored after two idle iterations
		if len(slept) == 2 {
			win.size = image.Pt(800, 600)
		}
	}
	win.size = image.Point{}
	require.NoError(t, a.Run())
	assert.Equal(t, []time.Duration{MinimizedWait, MinimizedWait}, slept)
	assert.Equal(t, 1, a.Frames())
	assert.Equal(t, 1, rc.Count("PresentDesktopSwapchainImage"))
}
