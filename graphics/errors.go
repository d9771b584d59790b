// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// ErrorKind classifies backend failures, so that callers can decide
// whether to retry, reconfigure or abort.
type ErrorKind int32 //enums:enum

const (
	// ResourceCreation is a failure to create a device, image, view,
	// buffer or pipeline. It is not recoverable.
	ResourceCreation ErrorKind = iota

	// SwapchainAcquire is a failure to acquire the next swapchain image,
	// typically because the surface is outdated after a resize.
	SwapchainAcquire

	// Present is a failure to present a swapchain image.
	Present

	// ShaderCompile is a failure to compile shader source.
	ShaderCompile

	// Command is a failure while recording or submitting commands.
	Command
)

var (
	// ErrSurfaceOutdated means the surface no longer matches the
	// swapchain and the swapchain must be resized.
	ErrSurfaceOutdated = errors.New("graphics: surface outdated")

	// ErrSurfaceLost means the surface was lost and must be recreated.
	ErrSurfaceLost = errors.New("graphics: surface lost")

	// ErrTimeout means the operation timed out and may be retried.
	ErrTimeout = errors.New("graphics: timeout")

	// ErrInvalidHandle is returned for handles that do not refer
	// to a live resource of the expected kind.
	ErrInvalidHandle = errors.New("graphics: invalid handle")
)

// Error is a classified backend error.
type Error struct {
	Kind ErrorKind

	// Op is the operation that failed, e.g. "CreateBuffer".
	Op string

	Err error
}

// NewError returns a new *Error, or nil if err is nil.
func NewError(kind ErrorKind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("graphics %s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in the chain of err.
func KindOf(err error) (ErrorKind, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind, true
	}
	return 0, false
}

// IsRecoverableSurfaceError returns true if err means the swapchain
// should be resized and the frame skipped.
func IsRecoverableSurfaceError(err error) bool {
	return errors.Is(err, ErrSurfaceOutdated) || errors.Is(err, ErrSurfaceLost)
}
