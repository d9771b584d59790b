// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/gfxtest/graphics"
	"github.com/cogentcore/webgpu/wgpu"
)

// FormatToTextureFormat maps graphics formats to WebGPU texture formats.
var FormatToTextureFormat = map[graphics.Format]wgpu.TextureFormat{
	graphics.UndefinedFormat:     wgpu.TextureFormatUndefined,
	graphics.RGBA8Unorm:          wgpu.TextureFormatRGBA8Unorm,
	graphics.RGBA8UnormSRGB:      wgpu.TextureFormatRGBA8UnormSrgb,
	graphics.BGRA8Unorm:          wgpu.TextureFormatBGRA8Unorm,
	graphics.BGRA8UnormSRGB:      wgpu.TextureFormatBGRA8UnormSrgb,
	graphics.RGBA16Float:         wgpu.TextureFormatRGBA16Float,
	graphics.Depth16Unorm:        wgpu.TextureFormatDepth16Unorm,
	graphics.Depth24Plus:         wgpu.TextureFormatDepth24Plus,
	graphics.Depth24PlusStencil8: wgpu.TextureFormatDepth24PlusStencil8,
	graphics.Depth32Float:        wgpu.TextureFormatDepth32Float,
}

// TextureFormatToFormat is the inverse of [FormatToTextureFormat].
var TextureFormatToFormat = func() map[wgpu.TextureFormat]graphics.Format {
	m := make(map[wgpu.TextureFormat]graphics.Format, len(FormatToTextureFormat))
	for f, tf := range FormatToTextureFormat {
		m[tf] = f
	}
	return m
}()

// VertexTypeToVertexFormat maps vertex attribute types to WebGPU vertex formats.
var VertexTypeToVertexFormat = map[graphics.VertexType]wgpu.VertexFormat{
	graphics.Float: wgpu.VertexFormatFloat32,
	graphics.Vec2:  wgpu.VertexFormatFloat32x2,
	graphics.Vec3:  wgpu.VertexFormatFloat32x3,
	graphics.Vec4:  wgpu.VertexFormatFloat32x4,
	graphics.Int:   wgpu.VertexFormatSint32,
	graphics.IVec2: wgpu.VertexFormatSint32x2,
	graphics.IVec3: wgpu.VertexFormatSint32x3,
	graphics.IVec4: wgpu.VertexFormatSint32x4,
	graphics.Uint:  wgpu.VertexFormatUint32,
	graphics.UVec2: wgpu.VertexFormatUint32x2,
	graphics.UVec3: wgpu.VertexFormatUint32x3,
	graphics.UVec4: wgpu.VertexFormatUint32x4,
}

// TopologyToPrimitiveTopology maps topologies; WebGPU has no triangle fans.
var TopologyToPrimitiveTopology = map[graphics.PrimitiveTopology]wgpu.PrimitiveTopology{
	graphics.PointList:     wgpu.PrimitiveTopologyPointList,
	graphics.LineList:      wgpu.PrimitiveTopologyLineList,
	graphics.LineStrip:     wgpu.PrimitiveTopologyLineStrip,
	graphics.TriangleList:  wgpu.PrimitiveTopologyTriangleList,
	graphics.TriangleStrip: wgpu.PrimitiveTopologyTriangleStrip,
}

var CullModeToCullMode = map[graphics.CullMode]wgpu.CullMode{
	graphics.CullNone:  wgpu.CullModeNone,
	graphics.CullFront: wgpu.CullModeFront,
	graphics.CullBack:  wgpu.CullModeBack,
}

var FrontFaceToFrontFace = map[graphics.FrontFace]wgpu.FrontFace{
	graphics.CounterClockwise: wgpu.FrontFaceCCW,
	graphics.Clockwise:        wgpu.FrontFaceCW,
}

var CompareOpToCompareFunction = map[graphics.CompareOp]wgpu.CompareFunction{
	graphics.CompareNever:          wgpu.CompareFunctionNever,
	graphics.CompareLess:           wgpu.CompareFunctionLess,
	graphics.CompareEqual:          wgpu.CompareFunctionEqual,
	graphics.CompareLessOrEqual:    wgpu.CompareFunctionLessEqual,
	graphics.CompareGreater:        wgpu.CompareFunctionGreater,
	graphics.CompareNotEqual:       wgpu.CompareFunctionNotEqual,
	graphics.CompareGreaterOrEqual: wgpu.CompareFunctionGreaterEqual,
	graphics.CompareAlways:         wgpu.CompareFunctionAlways,
}

var StencilOpToStencilOperation = map[graphics.StencilOp]wgpu.StencilOperation{
	graphics.StencilKeep:              wgpu.StencilOperationKeep,
	graphics.StencilZero:              wgpu.StencilOperationZero,
	graphics.StencilReplace:           wgpu.StencilOperationReplace,
	graphics.StencilIncrementAndClamp: wgpu.StencilOperationIncrementClamp,
	graphics.StencilDecrementAndClamp: wgpu.StencilOperationDecrementClamp,
	graphics.StencilInvert:            wgpu.StencilOperationInvert,
	graphics.StencilIncrementAndWrap:  wgpu.StencilOperationIncrementWrap,
	graphics.StencilDecrementAndWrap:  wgpu.StencilOperationDecrementWrap,
}

var BlendFactorToBlendFactor = map[graphics.BlendFactor]wgpu.BlendFactor{
	graphics.BlendZero:             wgpu.BlendFactorZero,
	graphics.BlendOne:              wgpu.BlendFactorOne,
	graphics.BlendSrcColor:         wgpu.BlendFactorSrc,
	graphics.BlendOneMinusSrcColor: wgpu.BlendFactorOneMinusSrc,
	graphics.BlendDstColor:         wgpu.BlendFactorDst,
	graphics.BlendOneMinusDstColor: wgpu.BlendFactorOneMinusDst,
	graphics.BlendSrcAlpha:         wgpu.BlendFactorSrcAlpha,
	graphics.BlendOneMinusSrcAlpha: wgpu.BlendFactorOneMinusSrcAlpha,
	graphics.BlendDstAlpha:         wgpu.BlendFactorDstAlpha,
	graphics.BlendOneMinusDstAlpha: wgpu.BlendFactorOneMinusDstAlpha,
	graphics.BlendConstant:         wgpu.BlendFactorConstant,
	graphics.BlendOneMinusConstant: wgpu.BlendFactorOneMinusConstant,
	graphics.BlendSrcAlphaSaturate: wgpu.BlendFactorSrcAlphaSaturated,
}

var BlendOpToBlendOperation = map[graphics.BlendOp]wgpu.BlendOperation{
	graphics.BlendAdd:             wgpu.BlendOperationAdd,
	graphics.BlendSubtract:        wgpu.BlendOperationSubtract,
	graphics.BlendReverseSubtract: wgpu.BlendOperationReverseSubtract,
	graphics.BlendMin:             wgpu.BlendOperationMin,
	graphics.BlendMax:             wgpu.BlendOperationMax,
}

var ViewDimensionToTextureViewDimension = map[graphics.ViewDimension]wgpu.TextureViewDimension{
	graphics.View1D:        wgpu.TextureViewDimension1D,
	graphics.View2D:        wgpu.TextureViewDimension2D,
	graphics.View3D:        wgpu.TextureViewDimension3D,
	graphics.ViewCube:      wgpu.TextureViewDimensionCube,
	graphics.View2DArray:   wgpu.TextureViewDimension2DArray,
	graphics.ViewCubeArray: wgpu.TextureViewDimensionCubeArray,
}

var BufferTypeToBufferUsage = map[graphics.BufferType]wgpu.BufferUsage{
	graphics.VertexBuffer:  wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	graphics.IndexBuffer:   wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	graphics.UniformBuffer: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	graphics.StorageBuffer: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst | wgpu.BufferUsageCopySrc,
}

// ShaderStageToShaderStage maps the stages that WebGPU supports.
var ShaderStageToShaderStage = map[graphics.ShaderStage]wgpu.ShaderStage{
	graphics.VertexStage:   wgpu.ShaderStageVertex,
	graphics.FragmentStage: wgpu.ShaderStageFragment,
	graphics.ComputeStage:  wgpu.ShaderStageCompute,
}

// ColorWriteMask returns the WebGPU write mask for the given channels.
func ColorWriteMask(c graphics.ColorComponentBit) wgpu.ColorWriteMask {
	var m wgpu.ColorWriteMask
	if c.HasFlag(graphics.ColorR) {
		m |= wgpu.ColorWriteMaskRed
	}
	if c.HasFlag(graphics.ColorG) {
		m |= wgpu.ColorWriteMaskGreen
	}
	if c.HasFlag(graphics.ColorB) {
		m |= wgpu.ColorWriteMaskBlue
	}
	if c.HasFlag(graphics.ColorA) {
		m |= wgpu.ColorWriteMaskAlpha
	}
	return m
}

// TextureAspect returns the WebGPU aspect for the given image aspect.
func TextureAspect(a graphics.Aspect) wgpu.TextureAspect {
	switch a {
	case graphics.AspectDepth:
		return wgpu.TextureAspectDepthOnly
	case graphics.AspectStencil:
		return wgpu.TextureAspectStencilOnly
	}
	return wgpu.TextureAspectAll
}

// IndexFormat returns the index format for an index buffer stride.
func IndexFormat(stride int) wgpu.IndexFormat {
	if stride == 2 {
		return wgpu.IndexFormatUint16
	}
	return wgpu.IndexFormatUint32
}

// lookup returns m[k], or a ResourceCreation error naming what.
func lookup[K comparable, V any](m map[K]V, k K, op, what string) (V, error) {
	v, ok := m[k]
	if !ok {
		return v, graphics.NewError(graphics.ResourceCreation, op, fmt.Errorf("unsupported %s: %v", what, k))
	}
	return v, nil
}
