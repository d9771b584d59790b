// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubetest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/gfxtest/cubetest/shaders"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShaders(t *testing.T) {
	vert, frag, err := LoadShaders("")
	require.NoError(t, err)
	assert.Equal(t, shaders.Vertex, vert)
	assert.Equal(t, shaders.Fragment, frag)

	dir := filepath.Join(t.TempDir(), "shaders")
	require.NoError(t, WriteShaders(dir))
	vert, frag, err = LoadShaders(dir)
	require.NoError(t, err)
	assert.Equal(t, shaders.Vertex, vert)
	assert.Equal(t, shaders.Fragment, frag)

	_, _, err = LoadShaders(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsShaderEvent(t *testing.T) {
	assert.True(t, isShaderEvent(fsnotify.Event{Name: "/a/" + shaders.VertexFile, Op: fsnotify.Write}))
	assert.True(t, isShaderEvent(fsnotify.Event{Name: shaders.FragmentFile, Op: fsnotify.Create}))
	assert.True(t, isShaderEvent(fsnotify.Event{Name: shaders.FragmentFile, Op: fsnotify.Rename}))
	assert.False(t, isShaderEvent(fsnotify.Event{Name: shaders.FragmentFile, Op: fsnotify.Chmod}))
	assert.False(t, isShaderEvent(fsnotify.Event{Name: "/a/other.wgsl", Op: fsnotify.Write}))
}

func TestShaderWatcher(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteShaders(dir))
	sw, err := newShaderWatcher(dir)
	require.NoError(t, err)
	defer sw.close()

	assert.False(t, sw.changed())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, shaders.FragmentFile), []byte(shaders.Fragment+"\n"), 0o644))
	assert.Eventually(t, sw.changed, 5*time.Second, 10*time.Millisecond)
}
