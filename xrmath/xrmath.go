// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xrmath provides the field of view projections and rigid body
// poses used by XR style renderers, on top of math32 column-major
// matrices. Projections are built from per-edge field of view angles,
// in the clip space convention of the target graphics API.
package xrmath

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/gfxtest/graphics"
	m32 "github.com/chewxy/math32"
)

// Fov is a field of view given by the angle of each edge from the
// forward direction, in radians. Left and Down are normally negative.
type Fov struct {
	AngleLeft  float32
	AngleRight float32
	AngleUp    float32
	AngleDown  float32
}

// SymmetricFov returns the field of view with the given vertical
// angle in radians, and the horizontal angle matching the given
// width / height aspect ratio.
func SymmetricFov(fovY, aspect float32) Fov {
	halfY := fovY / 2
	halfX := m32.Atan(m32.Tan(halfY) * aspect)
	return Fov{AngleLeft: -halfX, AngleRight: halfX, AngleUp: halfY, AngleDown: -halfY}
}

// ClipSpace is the clip space convention of a graphics API.
type ClipSpace int32 //enums:enum

const (
	// Vulkan has Y down and Z in [0, 1].
	Vulkan ClipSpace = iota

	// OpenGL has Y up and Z in [-1, 1].
	OpenGL

	// OpenGLES is the same as OpenGL.
	OpenGLES

	// D3D has Y up and Z in [0, 1]. WebGPU and Metal use it too.
	D3D
)

// ClipSpaceOf returns the clip space convention of the given API type.
func ClipSpaceOf(t graphics.Type) ClipSpace {
	switch t {
	case graphics.Vulkan:
		return Vulkan
	case graphics.OpenGL:
		return OpenGL
	case graphics.OpenGLES:
		return OpenGLES
	}
	return D3D
}

// ProjectionFov returns the projection matrix for the given field of
// view and near and far planes. If far <= near the far plane is at
// infinity.
func ProjectionFov(cs ClipSpace, fov Fov, near, far float32) math32.Matrix4 {
	tanLeft := m32.Tan(fov.AngleLeft)
	tanRight := m32.Tan(fov.AngleRight)
	tanUp := m32.Tan(fov.AngleUp)
	tanDown := m32.Tan(fov.AngleDown)

	width := tanRight - tanLeft
	height := tanUp - tanDown
	if cs == Vulkan {
		height = tanDown - tanUp
	}

	// Z in [-1, 1] for GL, [0, 1] otherwise
	var offsetZ float32
	if cs == OpenGL || cs == OpenGLES {
		offsetZ = near
	}

	var m math32.Matrix4
	m[0] = 2 / width
	m[8] = (tanRight + tanLeft) / width
	m[5] = 2 / height
	m[9] = (tanUp + tanDown) / height
	m[11] = -1
	if far <= near {
		m[10] = -1
		m[14] = -(near + offsetZ)
	} else {
		m[10] = -(far + offsetZ) / (far - near)
		m[14] = -(far * (near + offsetZ)) / (far - near)
	}
	return m
}
