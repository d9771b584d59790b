// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xrmath

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Pose is a rigid body placement: an orientation followed by a position.
type Pose struct {
	Orientation math32.Quat
	Position    math32.Vector3
}

// IdentityPose returns the pose at the origin with no rotation.
func IdentityPose() Pose {
	return Pose{Orientation: math32.NewQuat(0, 0, 0, 1)}
}

// PoseAt returns the unrotated pose at the given position.
func PoseAt(x, y, z float32) Pose {
	return Pose{Orientation: math32.NewQuat(0, 0, 0, 1), Position: math32.Vec3(x, y, z)}
}

// Matrix returns the model matrix of the pose, with unit scale.
func (p Pose) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(p.Position, p.Orientation, math32.Vec3(1, 1, 1))
	return m
}

// ViewMatrix returns the inverse of the pose matrix, for
// use as a view matrix when the pose is the eye.
// A degenerate pose gives the identity.
func (p Pose) ViewMatrix() math32.Matrix4 {
	m := p.Matrix()
	view, err := m.Inverse()
	errors.Log(err)
	return *view
}

// Rotated returns the pose with an additional rotation by angle
// radians about axis, applied after its current orientation.
func (p Pose) Rotated(axis math32.Vector3, angle float32) Pose {
	q := math32.NewQuatAxisAngle(axis, angle)
	p.Orientation = q.Mul(p.Orientation)
	return p
}
