// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu implements graphics.API on WebGPU, using
// github.com/cogentcore/webgpu, which drives the native Vulkan,
// Metal, D3D12 or OpenGL driver of the platform.
// Windows and surfaces are made with GLFW.
package gpu

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gfxtest/graphics"
	"github.com/cogentcore/webgpu/wgpu"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

// Debug turns on debug logging of resource creation.
var Debug = false

// Backends are the names accepted by [ParseBackend].
var Backends = []string{"all", "primary", "vulkan", "metal", "dx12", "gl"}

// ParseBackend returns the WebGPU instance backend mask for the
// given name (case insensitive), as listed in [Backends].
func ParseBackend(name string) (wgpu.InstanceBackend, error) {
	switch strings.ToLower(name) {
	case "", "primary":
		return wgpu.InstanceBackendPrimary, nil
	case "all":
		return wgpu.InstanceBackendAll, nil
	case "vulkan":
		return wgpu.InstanceBackendVulkan, nil
	case "metal":
		return wgpu.InstanceBackendMetal, nil
	case "dx12", "d3d12":
		return wgpu.InstanceBackendDX12, nil
	case "gl", "opengl":
		return wgpu.InstanceBackendGL, nil
	}
	return 0, fmt.Errorf("gpu: unknown backend %q, must be one of %v", name, Backends)
}

// Options are the settings of a new [GPU].
type Options struct {
	// Backend is the backend name, see [ParseBackend].
	Backend string

	// HighPerformance requests the discrete GPU when there is a choice.
	HighPerformance bool

	// ValidateShaders compiles shader sources with naga before
	// handing them to the driver, for better error messages.
	ValidateShaders bool
}

// GPU is a graphics.API on a WebGPU device.
// The adapter and device are requested lazily: compatible with the
// surface of the first swapchain, or headless for the first resource
// created without one.
type GPU struct {
	Options Options

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// backendType is the native backend reported by the adapter.
	backendType wgpu.BackendType

	res resources
	cmd commands
}

var _ graphics.API = (*GPU)(nil)

// NewGPU returns a new GPU with a WebGPU instance for
// the configured backend.
func NewGPU(opts Options) (*GPU, error) {
	backends, err := ParseBackend(opts.Backend)
	if err != nil {
		return nil, err
	}
	gp := &GPU{Options: opts}
	gp.instance = wgpu.CreateInstance(&wgpu.InstanceDescriptor{Backends: backends})
	if gp.instance == nil {
		return nil, errors.Log(graphics.NewError(graphics.ResourceCreation, "NewGPU", errors.New("could not create WebGPU instance")))
	}
	gp.res.init()
	return gp, nil
}

// Instance returns the WebGPU instance.
func (gp *GPU) Instance() *wgpu.Instance {
	return gp.instance
}

// initDevice requests the adapter and device if not done yet,
// compatible with the given surface, which may be nil.
func (gp *GPU) initDevice(surface *wgpu.Surface) error {
	if gp.device != nil {
		return nil
	}
	pref := wgpu.PowerPreferenceLowPower
	if gp.Options.HighPerformance {
		pref = wgpu.PowerPreferenceHighPerformance
	}
	adapter, err := gp.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   pref,
	})
	if err != nil {
		return errors.Log(graphics.NewError(graphics.ResourceCreation, "RequestAdapter", err))
	}
	info := adapter.GetInfo()
	gp.backendType = info.BackendType
	slog.Info("gpu: adapter", "name", info.Name, "backend", info.BackendType.String(), "driver", info.DriverDescription)

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "gfxtest"})
	if err != nil {
		adapter.Release()
		return errors.Log(graphics.NewError(graphics.ResourceCreation, "RequestDevice", err))
	}
	gp.adapter = adapter
	gp.device = device
	gp.queue = device.GetQueue()
	return nil
}

// Type returns WebGPU. WebGPU presents one clip space convention
// whatever the native backend: see [GPU.Backend] for that.
func (gp *GPU) Type() graphics.Type {
	return graphics.WebGPU
}

// Backend returns the native backend that WebGPU runs on once the
// device exists, and WebGPU before.
func (gp *GPU) Backend() graphics.Type {
	switch gp.backendType {
	case wgpu.BackendTypeVulkan:
		return graphics.Vulkan
	case wgpu.BackendTypeD3D12:
		return graphics.D3D12
	case wgpu.BackendTypeD3D11:
		return graphics.D3D11
	case wgpu.BackendTypeMetal:
		return graphics.Metal
	case wgpu.BackendTypeOpenGL:
		return graphics.OpenGL
	case wgpu.BackendTypeOpenGLES:
		return graphics.OpenGLES
	}
	return graphics.WebGPU
}

// DepthFormat returns Depth32Float, which every WebGPU device supports.
func (gp *GPU) DepthFormat() graphics.Format {
	return graphics.Depth32Float
}

// Release releases the device, adapter and instance. Resources that
// are still live are released first, with an error logged for each.
func (gp *GPU) Release() {
	gp.cmd.release()
	if n := gp.res.len(); n > 0 {
		slog.Error("gpu: Release with live resources", "count", n)
		gp.res.releaseAll()
	}
	if gp.queue != nil {
		gp.queue.Release()
		gp.queue = nil
	}
	if gp.device != nil {
		gp.device.Release()
		gp.device = nil
	}
	if gp.adapter != nil {
		gp.adapter.Release()
		gp.adapter = nil
	}
	if gp.instance != nil {
		gp.instance.Release()
		gp.instance = nil
	}
}

func (gp *GPU) debug(msg string, args ...any) {
	if Debug {
		slog.Debug("gpu: "+msg, args...)
	}
}
