// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera computes the per-frame camera constants uniform
// block from a fixed eye pose and an object pose.
package camera

import (
	"image"
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/gfxtest/xrmath"
	"github.com/cogentcore/webgpu/wgpu"
)

// ConstantsSize is the size of Constants in bytes.
const ConstantsSize = 3 * 64

// Constants is the camera uniform block seen by the vertex shader.
type Constants struct {
	ViewProj      math32.Matrix4
	ModelViewProj math32.Matrix4
	Model         math32.Matrix4
}

// Bytes returns the constants as little-endian float32 bytes
// in field order.
func (c *Constants) Bytes() []byte {
	return wgpu.ToBytes([]Constants{*c})
}

// Camera is a perspective camera looking down -Z from its View pose.
type Camera struct {
	// FovY is the vertical field of view in radians.
	FovY float32

	// Near and Far are the clipping plane distances.
	Near float32
	Far  float32

	// View is the pose of the eye.
	View xrmath.Pose

	// Object is the pose of the drawn object.
	Object xrmath.Pose

	// Spin rotates the object about the Y axis by this many radians per frame.
	Spin float32

	ClipSpace xrmath.ClipSpace
}

// New returns a camera with a 90 degree vertical field of view at the
// origin, and the object 2 units in front of it.
func New(cs xrmath.ClipSpace) *Camera {
	return &Camera{
		FovY:      math32.Pi / 2,
		Near:      0.05,
		Far:       100,
		View:      xrmath.IdentityPose(),
		Object:    xrmath.PoseAt(0, 0, -2),
		ClipSpace: cs,
	}
}

// Aspect returns the width / height ratio of size, or 1 if it is empty.
func Aspect(size image.Point) float32 {
	if size.X <= 0 || size.Y <= 0 {
		return 1
	}
	return float32(size.X) / float32(size.Y)
}

// Projection returns the projection matrix for the given render size.
func (cm *Camera) Projection(size image.Point) math32.Matrix4 {
	fov := xrmath.SymmetricFov(cm.FovY, Aspect(size))
	return xrmath.ProjectionFov(cm.ClipSpace, fov, cm.Near, cm.Far)
}

// Update returns the constants for the given render size and frame number.
func (cm *Camera) Update(size image.Point, frame int) Constants {
	obj := cm.Object
	if cm.Spin != 0 {
		angle := float32(math.Mod(float64(cm.Spin)*float64(frame), 2*math.Pi))
		obj = obj.Rotated(math32.Vec3(0, 1, 0), angle)
	}
	proj := cm.Projection(size)
	view := cm.View.ViewMatrix()
	var c Constants
	c.ViewProj.MulMatrices(&proj, &view)
	c.Model = obj.Matrix()
	c.ModelViewProj.MulMatrices(&c.ViewProj, &c.Model)
	return c
}
