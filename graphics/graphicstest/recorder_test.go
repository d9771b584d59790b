// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphicstest

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gfxtest/graphics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ graphics.API = &Recorder{}

func TestRecorderHandles(t *testing.T) {
	rc := &Recorder{}
	b1, err := rc.CreateBuffer(graphics.BufferCreateInfo{Size: 16})
	require.NoError(t, err)
	b2, err := rc.CreateBuffer(graphics.BufferCreateInfo{Size: 16})
	require.NoError(t, err)
	assert.NotEqual(t, b1, b2)
	assert.NotZero(t, b1)
	assert.Equal(t, 2, rc.Live())

	rc.DestroyBuffer(b2)
	rc.DestroyBuffer(b1)
	assert.Equal(t, 0, rc.Live())
	assert.NoError(t, rc.Err())
	assert.Len(t, rc.Created(), 2)
	assert.Len(t, rc.Destroyed(), 2)

	rc.DestroyBuffer(b1)
	assert.ErrorIs(t, rc.Err(), graphics.ErrInvalidHandle)
}

func TestRecorderFail(t *testing.T) {
	rc := &Recorder{}
	boom := errors.New("boom")
	rc.FailNext("CreateShader", boom)

	_, err := rc.CreateShader(graphics.ShaderCreateInfo{})
	assert.ErrorIs(t, err, boom)
	kind, ok := graphics.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, graphics.ShaderCompile, kind)

	sh, err := rc.CreateShader(graphics.ShaderCreateInfo{})
	assert.NoError(t, err)
	assert.NotZero(t, sh)
	assert.Equal(t, 2, rc.Count("CreateShader"))
	assert.Len(t, rc.Created(), 1)
}

func TestRecorderBufferData(t *testing.T) {
	rc := &Recorder{}
	_, err := rc.CreateBuffer(graphics.BufferCreateInfo{Size: 2, Data: make([]byte, 4)})
	assert.Error(t, err)

	buf, err := rc.CreateBuffer(graphics.BufferCreateInfo{Size: 4})
	require.NoError(t, err)
	assert.NoError(t, rc.SetBufferData(buf, 0, []byte{1, 2, 3, 4}))
	assert.ErrorIs(t, rc.SetBufferData(99, 0, nil), graphics.ErrInvalidHandle)
}

func TestRecorderSwapchain(t *testing.T) {
	rc := &Recorder{}
	sc, err := rc.CreateDesktopSwapchain(graphics.SwapchainCreateInfo{Width: 8, Height: 4, Count: 3, Format: graphics.RGBA8Unorm})
	require.NoError(t, err)
	assert.Equal(t, graphics.RGBA8Unorm, rc.DesktopSwapchainFormat(sc))

	seen := map[graphics.Image]bool{}
	for i := range 3 {
		img, err := rc.DesktopSwapchainImage(sc, i)
		require.NoError(t, err)
		seen[img] = true
	}
	assert.Len(t, seen, 3)
	_, err = rc.DesktopSwapchainImage(sc, 3)
	assert.Error(t, err)

	for want := range 4 {
		idx, err := rc.AcquireDesktopSwapchainImage(sc)
		require.NoError(t, err)
		assert.Equal(t, want%3, idx)
		assert.NoError(t, rc.PresentDesktopSwapchainImage(sc, idx))
	}
	assert.Error(t, rc.PresentDesktopSwapchainImage(sc, 0), "present without acquire")

	rc.FailNext("AcquireDesktopSwapchainImage", graphics.ErrSurfaceOutdated)
	_, err = rc.AcquireDesktopSwapchainImage(sc)
	assert.True(t, graphics.IsRecoverableSurfaceError(err))

	require.NoError(t, rc.ResizeDesktopSwapchain(sc, 16, 9))
	w, h := rc.SwapchainSize(sc)
	assert.Equal(t, 16, w)
	assert.Equal(t, 9, h)

	rc.DestroyDesktopSwapchain(sc)
	assert.Equal(t, 0, rc.Live())
}

func TestRecorderRendering(t *testing.T) {
	rc := &Recorder{}
	assert.Error(t, rc.EndRendering())
	require.NoError(t, rc.BeginRendering())
	assert.Error(t, rc.BeginRendering())
	rc.DrawIndexed(36, 1, 0, 0, 0)
	require.NoError(t, rc.EndRendering())
	assert.NoError(t, rc.Err())

	rc.DrawIndexed(36, 1, 0, 0, 0)
	assert.Error(t, rc.Err(), "draw outside of rendering")

	rc.Reset()
	assert.Empty(t, rc.Calls)
}
