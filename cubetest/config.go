// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubetest

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"cogentcore.org/gfxtest/camera"
	"cogentcore.org/gfxtest/xrmath"
)

// Config is the configuration of the cube harness.
type Config struct {

	// Width is the initial window width in pixels.
	Width int `default:"800"`

	// Height is the initial window height in pixels.
	Height int `default:"600"`

	// Title is the window title.
	Title string `default:"gfxtest"`

	// SwapchainCount is the number of swapchain images.
	SwapchainCount int `default:"3"`

	// Backend is the native backend WebGPU runs on:
	// primary, all, vulkan, metal, dx12 or gl.
	Backend string `default:"primary"`

	// HighPerformance requests the discrete GPU when there is a choice.
	HighPerformance bool

	// FovY is the vertical field of view in degrees.
	FovY float32 `default:"90"`

	// Near is the distance of the near clipping plane.
	Near float32 `default:"0.05"`

	// Far is the distance of the far clipping plane,
	// or 0 for a far plane at infinity.
	Far float32 `default:"100"`

	// Distance is how far in front of the eye the cube is.
	Distance float32 `default:"2"`

	// Spin rotates the cube about the vertical axis,
	// in degrees per frame.
	Spin float32

	// VSync waits for the vertical blank on present.
	VSync bool `default:"true"`

	// ValidateShaders checks the shaders with naga before
	// handing them to the driver.
	ValidateShaders bool `default:"true"`

	// ShaderDir is a directory with cube.vert.wgsl and cube.frag.wgsl
	// to use instead of the built-in shaders. The files are watched
	// and the pipeline is rebuilt when they change.
	ShaderDir string

	// MaxFrameErrors is the number of consecutive failed frames
	// after which the harness gives up.
	MaxFrameErrors int `default:"10"`

	// StatsInterval is the interval of frame rate reports in seconds,
	// or 0 for no reports.
	StatsInterval float32 `default:"10"`

	// MaxFrames quits after this many frames, if > 0.
	MaxFrames int

	// Debug turns on debug logging.
	Debug bool

	// PrintConfig prints the effective configuration as TOML and exits.
	PrintConfig bool

	// WriteShaders writes the built-in shaders into this directory and
	// exits, as a starting point for a ShaderDir.
	WriteShaders string
}

// DefaultConfig returns the configuration with all defaults set.
func DefaultConfig() Config {
	var cfg Config
	cli.SetFromDefaults(&cfg)
	return cfg
}

// Size returns the initial window size.
func (cfg *Config) Size() image.Point {
	return image.Point{cfg.Width, cfg.Height}
}

// Validate returns an error for every invalid setting.
func (cfg *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("cubetest: "+format, args...))
		}
	}
	check(cfg.Width > 0 && cfg.Height > 0, "invalid window size %dx%d", cfg.Width, cfg.Height)
	check(cfg.SwapchainCount >= 1, "SwapchainCount must be at least 1, not %d", cfg.SwapchainCount)
	check(cfg.FovY > 0 && cfg.FovY < 180, "FovY must be in (0, 180) degrees, not %g", cfg.FovY)
	check(cfg.Near > 0, "Near must be positive, not %g", cfg.Near)
	check(cfg.Far == 0 || cfg.Far > cfg.Near, "Far must be 0 or beyond Near (%g), not %g", cfg.Near, cfg.Far)
	check(cfg.Distance > cfg.Near, "Distance must be beyond Near (%g), not %g", cfg.Near, cfg.Distance)
	check(cfg.MaxFrameErrors >= 1, "MaxFrameErrors must be at least 1, not %d", cfg.MaxFrameErrors)
	check(cfg.StatsInterval >= 0, "StatsInterval must not be negative, not %g", cfg.StatsInterval)
	check(cfg.MaxFrames >= 0, "MaxFrames must not be negative, not %d", cfg.MaxFrames)
	return errors.Join(errs...)
}

// Camera returns the camera for the configuration,
// in the given clip space.
func (cfg *Config) Camera(cs xrmath.ClipSpace) *camera.Camera {
	cm := camera.New(cs)
	cm.FovY = math32.DegToRad(cfg.FovY)
	cm.Near = cfg.Near
	cm.Far = cfg.Far
	cm.Object = xrmath.PoseAt(0, 0, -cfg.Distance)
	cm.Spin = math32.DegToRad(cfg.Spin)
	return cm
}
