// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubetest

import (
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gfxtest/cubetest/shaders"
	"github.com/fsnotify/fsnotify"
)

// LoadShaders returns the vertex and fragment shader sources in dir,
// or the built-in shaders if dir is empty.
func LoadShaders(dir string) (vertex, fragment string, err error) {
	if dir == "" {
		return shaders.Vertex, shaders.Fragment, nil
	}
	vb, err := os.ReadFile(filepath.Join(dir, shaders.VertexFile))
	if err != nil {
		return "", "", err
	}
	fb, err := os.ReadFile(filepath.Join(dir, shaders.FragmentFile))
	if err != nil {
		return "", "", err
	}
	return string(vb), string(fb), nil
}

// WriteShaders writes the built-in shaders into dir,
// as a starting point for editing them.
func WriteShaders(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return errors.Join(
		os.WriteFile(filepath.Join(dir, shaders.VertexFile), []byte(shaders.Vertex), 0o644),
		os.WriteFile(filepath.Join(dir, shaders.FragmentFile), []byte(shaders.Fragment), 0o644))
}

// shaderWatcher watches the shader files in a directory.
type shaderWatcher struct {
	watcher *fsnotify.Watcher
}

func newShaderWatcher(dir string) (*shaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory, as editors often replace files on save
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	return &shaderWatcher{watcher: w}, nil
}

// changed returns whether a shader file changed since the last call.
// It does not block.
func (sw *shaderWatcher) changed() bool {
	changed := false
	for {
		select {
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return changed
			}
			if isShaderEvent(ev) {
				changed = true
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return changed
			}
			slog.Error("cubetest: shader watcher", "err", err)
		default:
			return changed
		}
	}
}

func isShaderEvent(ev fsnotify.Event) bool {
	switch filepath.Base(ev.Name) {
	case shaders.VertexFile, shaders.FragmentFile:
		return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
	}
	return false
}

func (sw *shaderWatcher) close() {
	errors.Log(sw.watcher.Close())
}
