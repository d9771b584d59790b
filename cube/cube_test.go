// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"encoding/binary"
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v3(v math32.Vector4) math32.Vector3 {
	return math32.Vec3(v.X, v.Y, v.Z)
}

func sub(a, b math32.Vector3) math32.Vector3 {
	return math32.Vec3(a.X-b.X, a.Y-b.Y, a.Z-b.Z)
}

func cross(a, b math32.Vector3) math32.Vector3 {
	return math32.Vec3(a.Y*b.Z-a.Z*b.Y, a.Z*b.X-a.X*b.Z, a.X*b.Y-a.Y*b.X)
}

func TestVertices(t *testing.T) {
	vs := Vertices()
	require.Len(t, vs, NumVertices)
	for _, v := range vs {
		assert.Equal(t, float32(1), v.W)
		assert.Equal(t, float32(0.5), math32.Abs(v.X))
		assert.Equal(t, float32(0.5), math32.Abs(v.Y))
		assert.Equal(t, float32(0.5), math32.Abs(v.Z))
	}
}

func TestTriangles(t *testing.T) {
	vs := Vertices()
	idx := Indices()
	require.Len(t, idx, NumVertices)
	assert.Equal(t, 12, NumTriangles)

	area := float32(0)
	covered := map[Face]int{}
	for tri := range NumTriangles {
		a := v3(vs[idx[3*tri]])
		b := v3(vs[idx[3*tri+1]])
		c := v3(vs[idx[3*tri+2]])
		n := cross(sub(b, a), sub(c, a))
		face := FaceOf(int(idx[3*tri]))
		assert.Equal(t, face, FaceOf(int(idx[3*tri+2])))
		want := face.Normal()

		// counter-clockwise from outside: the normal points outward
		assert.Equal(t, want, n, "triangle %d of face %s", tri, face)

		centroid := math32.Vec3((a.X+b.X+c.X)/3, (a.Y+b.Y+c.Y)/3, (a.Z+b.Z+c.Z)/3)
		d := centroid.X*want.X + centroid.Y*want.Y + centroid.Z*want.Z
		assert.Equal(t, float32(0.5), d)

		area += 0.5 * math32.Sqrt(n.X*n.X+n.Y*n.Y+n.Z*n.Z)
		covered[face]++
	}
	assert.InDelta(t, 6, area, 1e-6)
	assert.Len(t, covered, NumFaces)
	for f, n := range covered {
		assert.Equal(t, 2, n, f.String())
	}
}

func TestFaceCornersUseAllCorners(t *testing.T) {
	for f, fc := range FaceCorners {
		used := map[int]bool{}
		for _, c := range fc {
			used[c] = true
		}
		assert.Len(t, used, 4, Face(f).String())
	}
}

func TestIndices(t *testing.T) {
	for i, v := range Indices() {
		assert.Equal(t, uint32(i), v)
	}
}

func TestFaceOf(t *testing.T) {
	assert.Equal(t, PosX, FaceOf(0))
	assert.Equal(t, PosX, FaceOf(5))
	assert.Equal(t, NegX, FaceOf(6))
	assert.Equal(t, NegZ, FaceOf(35))
	assert.Equal(t, "NegY", NegY.String())
	assert.Equal(t, "7", Face(7).String())
}

func TestBytes(t *testing.T) {
	vb := VertexBytes()
	assert.Len(t, vb, NumVertices*VertexStride)
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(vb[0:])))
	assert.Equal(t, float32(-0.5), math.Float32frombits(binary.LittleEndian.Uint32(vb[4:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(vb[12:])))

	ib := IndexBytes()
	assert.Len(t, ib, 4*NumVertices)
	assert.Equal(t, uint32(35), binary.LittleEndian.Uint32(ib[4*35:]))

	pb := PaletteBytes()
	assert.Len(t, pb, 16*NumFaces)
	assert.Equal(t, float32(0.6), math.Float32frombits(binary.LittleEndian.Uint32(pb[16*int(PosY)+4:])))

	// the palette bytes are a copy
	pb[0] = ^pb[0]
	assert.Equal(t, float32(0.6), math.Float32frombits(binary.LittleEndian.Uint32(PaletteBytes()[16*int(PosY)+4:])))
}

func TestBytesMatchLayout(t *testing.T) {
	vb := VertexBytes()
	for i, v := range Vertices() {
		o := i * VertexStride
		for j, f := range []float32{v.X, v.Y, v.Z, v.W} {
			assert.Equal(t, math.Float32bits(f), binary.LittleEndian.Uint32(vb[o+4*j:]), "vertex %d", i)
		}
	}
	assert.Equal(t, wgpu.ToBytes(Vertices()), vb)
	assert.Equal(t, wgpu.ToBytes(Indices()), IndexBytes())
	for i := range NumVertices {
		assert.Equal(t, uint32(i), binary.LittleEndian.Uint32(IndexBytes()[4*i:]))
	}
}
