// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics

// Type is the kind of graphics backend.
type Type int32 //enums:enum

const (
	WebGPU Type = iota
	Vulkan
	D3D11
	D3D12
	OpenGL
	OpenGLES
	Metal
)

// Format is a texture / render target format.
type Format int32 //enums:enum

const (
	UndefinedFormat Format = iota
	RGBA8Unorm
	RGBA8UnormSRGB
	BGRA8Unorm
	BGRA8UnormSRGB
	RGBA16Float
	Depth16Unorm
	Depth24Plus
	Depth24PlusStencil8
	Depth32Float
)

// IsDepth returns true for depth (and depth-stencil) formats.
func (f Format) IsDepth() bool {
	return f >= Depth16Unorm && f <= Depth32Float
}

// HasStencil returns true if the format has a stencil component.
func (f Format) HasStencil() bool {
	return f == Depth24PlusStencil8
}

// VertexType is the type of a vertex attribute.
type VertexType int32 //enums:enum

const (
	Float VertexType = iota
	Vec2
	Vec3
	Vec4
	Int
	IVec2
	IVec3
	IVec4
	Uint
	UVec2
	UVec3
	UVec4
)

// Bytes returns the size of the attribute in bytes.
func (vt VertexType) Bytes() int {
	return 4 * (int(vt)%4 + 1)
}

// PrimitiveTopology is the assembly of vertices into primitives.
type PrimitiveTopology int32 //enums:enum

const (
	PointList PrimitiveTopology = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
	TriangleFan
)

type PolygonMode int32 //enums:enum

const (
	Fill PolygonMode = iota
	Line
	Point
)

type CullMode int32 //enums:enum

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullFrontAndBack
)

type FrontFace int32 //enums:enum

const (
	CounterClockwise FrontFace = iota
	Clockwise
)

type CompareOp int32 //enums:enum

const (
	CompareNever CompareOp = iota
	CompareLess
	CompareEqual
	CompareLessOrEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterOrEqual
	CompareAlways
)

type StencilOp int32 //enums:enum

const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilReplace
	StencilIncrementAndClamp
	StencilDecrementAndClamp
	StencilInvert
	StencilIncrementAndWrap
	StencilDecrementAndWrap
)

type BlendFactor int32 //enums:enum

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
	BlendConstant
	BlendOneMinusConstant
	BlendSrcAlphaSaturate
)

type BlendOp int32 //enums:enum

const (
	BlendAdd BlendOp = iota
	BlendSubtract
	BlendReverseSubtract
	BlendMin
	BlendMax
)

// LogicOp is the framebuffer logic operation. Backends without
// logic op support only accept NoOp with logic ops disabled.
type LogicOp int32 //enums:enum

const (
	LogicClear LogicOp = iota
	LogicAnd
	LogicAndReverse
	LogicCopy
	LogicAndInverted
	LogicNoOp
	LogicXor
	LogicOr
	LogicNor
	LogicEquivalent
	LogicInvert
	LogicOrReverse
	LogicCopyInverted
	LogicOrInverted
	LogicNand
	LogicSet
)

// ColorComponentBit is a color channel written by a blend attachment.
// A ColorWriteMask is a set of these bit flags.
type ColorComponentBit int64 //enums:bitflag

const (
	ColorR ColorComponentBit = iota
	ColorG
	ColorB
	ColorA
)

// ColorAll is the write mask of all four channels.
var ColorAll = ColorMask(ColorR, ColorG, ColorB, ColorA)

// ColorMask returns the write mask of the given channels.
func ColorMask(channels ...ColorComponentBit) ColorComponentBit {
	var m ColorComponentBit
	for _, c := range channels {
		m.SetFlag(true, c)
	}
	return m
}

// DescriptorType is the kind of resource bound by a descriptor.
type DescriptorType int32 //enums:enum

const (
	DescriptorBuffer DescriptorType = iota
	DescriptorImage
	DescriptorSampler
)

// ShaderStage is the pipeline stage that sees a descriptor or runs a shader.
type ShaderStage int32 //enums:enum

const (
	VertexStage ShaderStage = iota
	TessellationControlStage
	TessellationEvaluationStage
	GeometryStage
	FragmentStage
	ComputeStage
)
