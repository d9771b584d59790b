// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders has the WGSL sources of the cube shaders.
package shaders

import _ "embed"

// File names of the shaders, also used for hot reload.
const (
	VertexFile   = "cube.vert.wgsl"
	FragmentFile = "cube.frag.wgsl"
)

// Entry points of the shaders.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// Bindings of the uniform buffers, in group 0.
const (
	PaletteBinding = 0
	CameraBinding  = 1
)

//go:embed cube.vert.wgsl
var Vertex string

//go:embed cube.frag.wgsl
var Fragment string
