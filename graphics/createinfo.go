// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics

// SwapchainCreateInfo describes a desktop swapchain.
type SwapchainCreateInfo struct {
	Width  int
	Height int

	// Count is the number of images cycled through by the swapchain.
	Count int

	// Window is the backend-specific window or surface to present to.
	Window any

	Format Format

	// VSync waits for the vertical blank on present.
	VSync bool
}

// ImageCreateInfo describes an image.
type ImageCreateInfo struct {
	// Dimension is 1, 2 or 3.
	Dimension   int
	Width       int
	Height      int
	Depth       int
	MipLevels   int
	ArrayLayers int
	SampleCount int
	Format      Format

	Cubemap         bool
	ColorAttachment bool
	DepthAttachment bool
	Sampled         bool

	// Label is an optional debug name.
	Label string
}

// ViewType is the usage of an image view.
type ViewType int32 //enums:enum

const (
	// RTV is a render target (color attachment) view.
	RTV ViewType = iota

	// DSV is a depth-stencil attachment view.
	DSV

	// SRV is a shader resource (sampled) view.
	SRV

	// UAV is an unordered access (storage) view.
	UAV
)

// ViewDimension is the dimensionality of an image view.
type ViewDimension int32 //enums:enum

const (
	View1D ViewDimension = iota
	View2D
	View3D
	ViewCube
	View1DArray
	View2DArray
	ViewCubeArray
)

// Aspect is the part of an image seen by a view.
type Aspect int32 //enums:enum

const (
	AspectColor Aspect = iota
	AspectDepth
	AspectStencil
	AspectDepthStencil
)

// ImageViewCreateInfo describes a view of an image.
type ImageViewCreateInfo struct {
	Image          Image
	Type           ViewType
	View           ViewDimension
	Format         Format
	Aspect         Aspect
	BaseMipLevel   int
	LevelCount     int
	BaseArrayLayer int
	LayerCount     int
}

// BufferType is the usage of a buffer.
type BufferType int32 //enums:enum

const (
	VertexBuffer BufferType = iota
	IndexBuffer
	UniformBuffer
	StorageBuffer
)

// BufferCreateInfo describes a buffer.
type BufferCreateInfo struct {
	Type BufferType

	// Stride is the element size in bytes: the vertex stride for vertex
	// buffers, and 2 or 4 for index buffers.
	Stride int

	// Size is the total size in bytes.
	Size int

	// Data is the optional initial content, at most Size bytes.
	Data []byte

	// HostVisible requests a buffer mappable by the host.
	HostVisible bool

	Label string
}

// ShaderCreateInfo describes a shader module and its entry point.
type ShaderCreateInfo struct {
	Type ShaderStage

	// Source is the shader source code.
	Source string

	// EntryPoint is the name of the entry function.
	EntryPoint string

	Name string
}

// VertexInputAttribute describes one vertex attribute.
type VertexInputAttribute struct {
	// Location is the shader input location.
	Location int

	// Binding is the index of the vertex buffer binding.
	Binding int

	Type VertexType

	// Offset is the byte offset within the vertex.
	Offset int

	// SemanticName is the attribute semantic, for backends that use one.
	SemanticName string
}

// VertexInputBinding describes one vertex buffer binding.
type VertexInputBinding struct {
	Binding int
	Offset  int
	Stride  int
}

type VertexInputState struct {
	Attributes []VertexInputAttribute
	Bindings   []VertexInputBinding
}

type InputAssemblyState struct {
	Topology               PrimitiveTopology
	PrimitiveRestartEnable bool
}

type RasterisationState struct {
	DepthClampEnable        bool
	RasteriserDiscardEnable bool
	PolygonMode             PolygonMode
	CullMode                CullMode
	FrontFace               FrontFace
	DepthBiasEnable         bool
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

type MultisampleState struct {
	RasterisationSamples  int
	SampleShadingEnable   bool
	MinSampleShading      float32
	SampleMask            uint32
	AlphaToCoverageEnable bool
	AlphaToOneEnable      bool
}

type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

type DepthStencilState struct {
	DepthTestEnable       bool
	DepthWriteEnable      bool
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable bool
	StencilTestEnable     bool
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

// ColorBlendAttachmentState is the blend state of one color target.
type ColorBlendAttachmentState struct {
	BlendEnable         bool
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentBit
}

type ColorBlendState struct {
	LogicOpEnable  bool
	LogicOp        LogicOp
	Attachments    []ColorBlendAttachmentState
	BlendConstants [4]float32
}

// DescriptorInfo binds a resource to a shader binding slot.
// In a pipeline layout Resource is zero.
type DescriptorInfo struct {
	Binding int

	// Resource is the bound Buffer, ImageView or sampler handle.
	Resource Handle

	Type  DescriptorType
	Stage ShaderStage

	ReadWrite bool
}

// PipelineCreateInfo describes a graphics pipeline.
type PipelineCreateInfo struct {
	Shaders            []Shader
	VertexInputState   VertexInputState
	InputAssemblyState InputAssemblyState
	RasterisationState RasterisationState
	MultisampleState   MultisampleState
	DepthStencilState  DepthStencilState
	ColorBlendState    ColorBlendState
	ColorFormats       []Format
	DepthFormat        Format
	Layout             []DescriptorInfo

	Label string
}

// Viewport is a render viewport with its depth range.
type Viewport struct {
	X, Y, Width, Height float32
	MinDepth, MaxDepth  float32
}

// Offset2D is an integer 2D position.
type Offset2D struct {
	X, Y int32
}

// Extent2D is an integer 2D size.
type Extent2D struct {
	Width, Height uint32
}

// Rect2D is an integer rectangle, used for scissors.
type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}
