// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/gfxtest/cubetest/shaders"
	"cogentcore.org/gfxtest/graphics"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormats(t *testing.T) {
	for f := graphics.UndefinedFormat; f <= graphics.Depth32Float; f++ {
		tf, ok := FormatToTextureFormat[f]
		if assert.True(t, ok, f.String()) {
			assert.Equal(t, f, TextureFormatToFormat[tf], f.String())
		}
	}
	assert.Len(t, TextureFormatToFormat, len(FormatToTextureFormat))
}

func TestVertexFormats(t *testing.T) {
	for vt := graphics.Float; vt <= graphics.UVec4; vt++ {
		_, ok := VertexTypeToVertexFormat[vt]
		assert.True(t, ok, vt.String())
	}
	assert.Equal(t, wgpu.VertexFormatFloat32x4, VertexTypeToVertexFormat[graphics.Vec4])
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		name string
		want wgpu.InstanceBackend
	}{
		{"", wgpu.InstanceBackendPrimary},
		{"primary", wgpu.InstanceBackendPrimary},
		{"All", wgpu.InstanceBackendAll},
		{"vulkan", wgpu.InstanceBackendVulkan},
		{"metal", wgpu.InstanceBackendMetal},
		{"DX12", wgpu.InstanceBackendDX12},
		{"d3d12", wgpu.InstanceBackendDX12},
		{"gl", wgpu.InstanceBackendGL},
	}
	for _, test := range tests {
		got, err := ParseBackend(test.name)
		if assert.NoError(t, err, test.name) {
			assert.Equal(t, test.want, got, test.name)
		}
	}
	_, err := ParseBackend("glide")
	assert.ErrorContains(t, err, "glide")
}

func TestConversions(t *testing.T) {
	assert.Equal(t, wgpu.ColorWriteMaskAll, ColorWriteMask(graphics.ColorAll))
	assert.Equal(t, wgpu.ColorWriteMaskRed|wgpu.ColorWriteMaskAlpha, ColorWriteMask(graphics.ColorMask(graphics.ColorR, graphics.ColorA)))
	assert.Equal(t, wgpu.ColorWriteMask(0), ColorWriteMask(0))

	assert.Equal(t, wgpu.TextureAspectDepthOnly, TextureAspect(graphics.AspectDepth))
	assert.Equal(t, wgpu.TextureAspectStencilOnly, TextureAspect(graphics.AspectStencil))
	assert.Equal(t, wgpu.TextureAspectAll, TextureAspect(graphics.AspectColor))
	assert.Equal(t, wgpu.TextureAspectAll, TextureAspect(graphics.AspectDepthStencil))

	assert.Equal(t, wgpu.IndexFormatUint16, IndexFormat(2))
	assert.Equal(t, wgpu.IndexFormatUint32, IndexFormat(4))

	assert.Equal(t, 0, align4(0))
	assert.Equal(t, 4, align4(1))
	assert.Equal(t, 192, align4(192))
	assert.Equal(t, 8, align4(6))
}

func TestTextureUsage(t *testing.T) {
	depth := &graphics.ImageCreateInfo{Format: graphics.Depth32Float, DepthAttachment: true}
	assert.Equal(t, wgpu.TextureUsageRenderAttachment, TextureUsage(depth))

	depth.Sampled = true
	assert.Equal(t, wgpu.TextureUsageRenderAttachment|wgpu.TextureUsageTextureBinding, TextureUsage(depth))

	color := &graphics.ImageCreateInfo{Format: graphics.RGBA8Unorm, Sampled: true}
	assert.Equal(t, wgpu.TextureUsageTextureBinding|wgpu.TextureUsageCopyDst, TextureUsage(color))
}

// cubePipeline is the pipeline of the cube harness.
func cubePipeline() graphics.PipelineCreateInfo {
	return graphics.PipelineCreateInfo{
		VertexInputState: graphics.VertexInputState{
			Attributes: []graphics.VertexInputAttribute{{Location: 0, Binding: 0, Type: graphics.Vec4, Offset: 0}},
			Bindings:   []graphics.VertexInputBinding{{Binding: 0, Stride: 16}},
		},
		InputAssemblyState: graphics.InputAssemblyState{Topology: graphics.TriangleList},
		RasterisationState: graphics.RasterisationState{
			PolygonMode: graphics.Fill,
			CullMode:    graphics.CullBack,
			FrontFace:   graphics.CounterClockwise,
			LineWidth:   1,
		},
		MultisampleState: graphics.MultisampleState{RasterisationSamples: 1},
		DepthStencilState: graphics.DepthStencilState{
			DepthTestEnable:  true,
			DepthWriteEnable: true,
			DepthCompareOp:   graphics.CompareLessOrEqual,
		},
		ColorBlendState: graphics.ColorBlendState{
			LogicOp: graphics.LogicNoOp,
			Attachments: []graphics.ColorBlendAttachmentState{{
				BlendEnable:         true,
				SrcColorBlendFactor: graphics.BlendSrcAlpha,
				DstColorBlendFactor: graphics.BlendOneMinusSrcAlpha,
				ColorBlendOp:        graphics.BlendAdd,
				SrcAlphaBlendFactor: graphics.BlendOne,
				DstAlphaBlendFactor: graphics.BlendZero,
				AlphaBlendOp:        graphics.BlendAdd,
				ColorWriteMask:      graphics.ColorAll,
			}},
		},
		ColorFormats: []graphics.Format{graphics.BGRA8Unorm},
		DepthFormat:  graphics.Depth32Float,
		Layout: []graphics.DescriptorInfo{
			{Binding: 1, Type: graphics.DescriptorBuffer, Stage: graphics.VertexStage},
			{Binding: 0, Type: graphics.DescriptorBuffer, Stage: graphics.FragmentStage},
		},
		Label: "cube",
	}
}

func TestRenderPipelineDescriptor(t *testing.T) {
	ci := cubePipeline()
	pd, err := renderPipelineDescriptor(&ci, "test")
	require.NoError(t, err)

	assert.Equal(t, "cube", pd.Label)
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, pd.Primitive.Topology)
	assert.Equal(t, wgpu.CullModeBack, pd.Primitive.CullMode)
	assert.Equal(t, wgpu.FrontFaceCCW, pd.Primitive.FrontFace)
	assert.Equal(t, uint32(1), pd.Multisample.Count)
	assert.Equal(t, uint32(0xFFFFFFFF), pd.Multisample.Mask)

	require.Len(t, pd.Vertex.Buffers, 1)
	vb := pd.Vertex.Buffers[0]
	assert.Equal(t, uint64(16), vb.ArrayStride)
	require.Len(t, vb.Attributes, 1)
	assert.Equal(t, wgpu.VertexFormatFloat32x4, vb.Attributes[0].Format)
	assert.Equal(t, uint32(0), vb.Attributes[0].ShaderLocation)

	require.NotNil(t, pd.DepthStencil)
	assert.Equal(t, wgpu.TextureFormatDepth32Float, pd.DepthStencil.Format)
	assert.True(t, pd.DepthStencil.DepthWriteEnabled)
	assert.Equal(t, wgpu.CompareFunctionLessEqual, pd.DepthStencil.DepthCompare)
	assert.Equal(t, wgpu.CompareFunctionAlways, pd.DepthStencil.StencilFront.Compare)

	require.NotNil(t, pd.Fragment)
	require.Len(t, pd.Fragment.Targets, 1)
	target := pd.Fragment.Targets[0]
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, target.Format)
	assert.Equal(t, wgpu.ColorWriteMaskAll, target.WriteMask)
	require.NotNil(t, target.Blend)
	assert.Equal(t, wgpu.BlendComponent{
		Operation: wgpu.BlendOperationAdd,
		SrcFactor: wgpu.BlendFactorSrcAlpha,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
	}, target.Blend.Color)
	assert.Equal(t, wgpu.BlendComponent{
		Operation: wgpu.BlendOperationAdd,
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorZero,
	}, target.Blend.Alpha)
}

func TestRenderPipelineDescriptorState(t *testing.T) {
	ci := cubePipeline()
	ci.DepthFormat = graphics.UndefinedFormat
	ci.ColorBlendState.Attachments[0].BlendEnable = false
	pd, err := renderPipelineDescriptor(&ci, "test")
	require.NoError(t, err)
	assert.Nil(t, pd.DepthStencil)
	assert.Nil(t, pd.Fragment.Targets[0].Blend)

	ci = cubePipeline()
	ci.DepthStencilState.DepthTestEnable = false
	pd, err = renderPipelineDescriptor(&ci, "test")
	require.NoError(t, err)
	assert.False(t, pd.DepthStencil.DepthWriteEnabled)
	assert.Equal(t, wgpu.CompareFunctionAlways, pd.DepthStencil.DepthCompare)

	ci = cubePipeline()
	ci.DepthFormat = graphics.Depth24PlusStencil8
	ci.DepthStencilState.StencilTestEnable = true
	ci.DepthStencilState.Front = graphics.StencilOpState{
		PassOp:    graphics.StencilReplace,
		CompareOp: graphics.CompareAlways,
		WriteMask: 0xFF,
	}
	pd, err = renderPipelineDescriptor(&ci, "test")
	require.NoError(t, err)
	assert.Equal(t, wgpu.StencilOperationReplace, pd.DepthStencil.StencilFront.PassOp)
	assert.Equal(t, uint32(0xFF), pd.DepthStencil.StencilWriteMask)
}

func TestRenderPipelineDescriptorErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(ci *graphics.PipelineCreateInfo)
	}{
		{"fan", func(ci *graphics.PipelineCreateInfo) { ci.InputAssemblyState.Topology = graphics.TriangleFan }},
		{"line mode", func(ci *graphics.PipelineCreateInfo) { ci.RasterisationState.PolygonMode = graphics.Line }},
		{"logic op", func(ci *graphics.PipelineCreateInfo) { ci.ColorBlendState.LogicOpEnable = true }},
		{"cull both", func(ci *graphics.PipelineCreateInfo) { ci.RasterisationState.CullMode = graphics.CullFrontAndBack }},
		{"binding", func(ci *graphics.PipelineCreateInfo) { ci.VertexInputState.Attributes[0].Binding = 1 }},
		{"depth format", func(ci *graphics.PipelineCreateInfo) { ci.DepthFormat = graphics.Format(100) }},
	}
	for _, test := range tests {
		ci := cubePipeline()
		test.modify(&ci)
		_, err := renderPipelineDescriptor(&ci, "test")
		if assert.Error(t, err, test.name) {
			kind, ok := graphics.KindOf(err)
			assert.True(t, ok, test.name)
			assert.Equal(t, graphics.ResourceCreation, kind, test.name)
		}
	}
}

func TestBindLayoutEntries(t *testing.T) {
	ci := cubePipeline()
	entries, err := bindLayoutEntries(ci.Layout, "test")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, uint32(1), entries[0].Binding)
	assert.Equal(t, wgpu.ShaderStageVertex, entries[0].Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entries[0].Buffer.Type)
	assert.Equal(t, uint32(0), entries[1].Binding)
	assert.Equal(t, wgpu.ShaderStageFragment, entries[1].Visibility)

	_, err = bindLayoutEntries([]graphics.DescriptorInfo{{Type: graphics.DescriptorImage, Stage: graphics.FragmentStage}}, "test")
	assert.Error(t, err)
	_, err = bindLayoutEntries([]graphics.DescriptorInfo{{Type: graphics.DescriptorBuffer, Stage: graphics.GeometryStage}}, "test")
	assert.Error(t, err)
}

func TestValidateWGSL(t *testing.T) {
	assert.NoError(t, ValidateWGSL(shaders.Vertex, shaders.VertexEntry, graphics.VertexStage))
	assert.NoError(t, ValidateWGSL(shaders.Fragment, shaders.FragmentEntry, graphics.FragmentStage))

	assert.ErrorContains(t, ValidateWGSL(shaders.Vertex, "main", graphics.VertexStage), "not found")
	assert.ErrorContains(t, ValidateWGSL(shaders.Fragment, shaders.FragmentEntry, graphics.VertexStage), "not a")
	assert.Error(t, ValidateWGSL("fn vs_main( {", shaders.VertexEntry, graphics.VertexStage))
	assert.Error(t, ValidateWGSL(shaders.Vertex, shaders.VertexEntry, graphics.GeometryStage))
}

func TestResources(t *testing.T) {
	var rs resources
	rs.init()
	sh := &shader{stage: graphics.VertexStage}
	bf := &buffer{size: 16}
	hs := rs.add(sh)
	hb := rs.add(bf)
	assert.Equal(t, graphics.Handle(1), hs)
	assert.Equal(t, graphics.Handle(2), hb)

	got, err := get[*shader](&rs, hs, "test")
	assert.NoError(t, err)
	assert.Same(t, sh, got)

	_, err = get[*shader](&rs, hb, "test")
	assert.ErrorIs(t, err, graphics.ErrInvalidHandle)
	_, err = get[*buffer](&rs, 99, "test")
	assert.ErrorIs(t, err, graphics.ErrInvalidHandle)

	remove[*buffer](&rs, hb, "test")
	assert.Equal(t, 1, rs.len())
	remove[*buffer](&rs, hb, "test") // logged, no effect
	assert.Equal(t, 1, rs.len())

	rs.releaseAll()
	assert.Equal(t, 0, rs.len())
}

func TestGPUCube(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, err := NewGPU(Options{ValidateShaders: true})
	require.NoError(t, err)
	defer gp.Release()
	img, err := gp.CreateImage(graphics.ImageCreateInfo{
		Dimension: 2, Width: 64, Height: 64, Format: graphics.Depth32Float, DepthAttachment: true,
	})
	require.NoError(t, err)
	view, err := gp.CreateImageView(graphics.ImageViewCreateInfo{
		Image: img, Type: graphics.DSV, View: graphics.View2D, Aspect: graphics.AspectDepth,
	})
	require.NoError(t, err)
	vs, err := gp.CreateShader(graphics.ShaderCreateInfo{Type: graphics.VertexStage, Source: shaders.Vertex, EntryPoint: shaders.VertexEntry, Name: "vs"})
	require.NoError(t, err)
	fs, err := gp.CreateShader(graphics.ShaderCreateInfo{Type: graphics.FragmentStage, Source: shaders.Fragment, EntryPoint: shaders.FragmentEntry, Name: "fs"})
	require.NoError(t, err)
	ci := cubePipeline()
	ci.Shaders = []graphics.Shader{vs, fs}
	pl, err := gp.CreatePipeline(ci)
	require.NoError(t, err)

	gp.DestroyPipeline(pl)
	gp.DestroyShader(fs)
	gp.DestroyShader(vs)
	gp.DestroyImageView(view)
	gp.DestroyImage(img)
	assert.Equal(t, 0, gp.res.len())
}
