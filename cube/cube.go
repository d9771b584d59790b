// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cube has the static geometry and colors of a unit cube
// centered at the origin, drawn as 36 vertices, six per face, so that
// each face can be colored by vertex index.
package cube

import (
	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
)

// Face identifies one of the six faces of the cube.
type Face int32 //enums:enum

const (
	PosX Face = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

// NumFaces is the number of faces.
const NumFaces = int(FaceN)

// Normal returns the outward unit normal of the face.
func (f Face) Normal() math32.Vector3 {
	switch f {
	case PosX:
		return math32.Vec3(1, 0, 0)
	case NegX:
		return math32.Vec3(-1, 0, 0)
	case PosY:
		return math32.Vec3(0, 1, 0)
	case NegY:
		return math32.Vec3(0, -1, 0)
	case PosZ:
		return math32.Vec3(0, 0, 1)
	}
	return math32.Vec3(0, 0, -1)
}

const (
	// VerticesPerFace is two triangles.
	VerticesPerFace = 6

	// NumVertices is the number of expanded vertices.
	NumVertices = NumFaces * VerticesPerFace

	// NumTriangles is the number of triangles.
	NumTriangles = NumVertices / 3

	// VertexStride is the size of one vertex (a vec4 position) in bytes.
	VertexStride = 16
)

// Corners are the 8 corners of the cube, with coordinates +/- 0.5.
var Corners = [8]math32.Vector3{
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
	{X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
	{X: -0.5, Y: -0.5, Z: -0.5},
}

// FaceCorners are the Corners indexes of the two triangles of each face,
// counter-clockwise when seen from outside the cube.
var FaceCorners = [NumFaces][VerticesPerFace]int{
	PosX: {2, 1, 0, 2, 3, 1},
	NegX: {6, 4, 5, 6, 5, 7},
	PosY: {0, 1, 5, 0, 5, 4},
	NegY: {2, 6, 7, 2, 7, 3},
	PosZ: {0, 4, 6, 0, 6, 2},
	NegZ: {1, 3, 7, 1, 7, 5},
}

// Palette is the color of each face, as RGBA.
var Palette = [NumFaces]math32.Vector4{
	PosX: {X: 1, Y: 0, Z: 0, W: 1},
	NegX: {X: 0.1, Y: 0, Z: 0, W: 1},
	PosY: {X: 0, Y: 0.6, Z: 0, W: 1},
	NegY: {X: 0, Y: 0.1, Z: 0, W: 1},
	PosZ: {X: 0, Y: 0.2, Z: 1, W: 1},
	NegZ: {X: 0, Y: 0.02, Z: 0.1, W: 1},
}

// Vertices returns the 36 expanded vertex positions, face by face,
// with w = 1.
func Vertices() []math32.Vector4 {
	vs := make([]math32.Vector4, 0, NumVertices)
	for _, fc := range FaceCorners {
		for _, ci := range fc {
			c := Corners[ci]
			vs = append(vs, math32.Vector4{X: c.X, Y: c.Y, Z: c.Z, W: 1})
		}
	}
	return vs
}

// Indices returns the index buffer contents: 0 through 35.
func Indices() []uint32 {
	idx := make([]uint32, NumVertices)
	for i := range idx {
		idx[i] = uint32(i)
	}
	return idx
}

// FaceOf returns the face that the given expanded vertex belongs to.
func FaceOf(vertex int) Face {
	return Face(vertex / VerticesPerFace)
}

// VertexBytes returns Vertices as float32 bytes.
func VertexBytes() []byte {
	return wgpu.ToBytes(Vertices())
}

// IndexBytes returns Indices as uint32 bytes.
func IndexBytes() []byte {
	return wgpu.ToBytes(Indices())
}

// PaletteBytes returns Palette as float32 bytes,
// matching an array<vec4<f32>, 6> uniform.
func PaletteBytes() []byte {
	pal := Palette
	return wgpu.ToBytes(pal[:])
}
