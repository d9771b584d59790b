// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gfxtest/graphics"
	"github.com/cogentcore/webgpu/wgpu"
)

// pipeline is a render pipeline with its bind group layout,
// which is always group 0.
type pipeline struct {
	pipeline   *wgpu.RenderPipeline
	layout     *wgpu.PipelineLayout
	bindLayout *wgpu.BindGroupLayout

	// bindings are the layout descriptors, by binding.
	bindings map[int]graphics.DescriptorInfo
}

func (pl *pipeline) release() {
	if pl.pipeline != nil {
		pl.pipeline.Release()
		pl.pipeline = nil
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.bindLayout != nil {
		pl.bindLayout.Release()
		pl.bindLayout = nil
	}
}

// bindLayoutEntries returns the bind group layout entries of
// the descriptors. Only buffer descriptors are supported.
func bindLayoutEntries(layout []graphics.DescriptorInfo, op string) ([]wgpu.BindGroupLayoutEntry, error) {
	entries := make([]wgpu.BindGroupLayoutEntry, 0, len(layout))
	for _, d := range layout {
		if d.Type != graphics.DescriptorBuffer {
			return nil, graphics.NewError(graphics.ResourceCreation, op, fmt.Errorf("unsupported descriptor type %v at binding %d", d.Type, d.Binding))
		}
		stage, err := lookup(ShaderStageToShaderStage, d.Stage, op, "descriptor stage")
		if err != nil {
			return nil, err
		}
		bt := wgpu.BufferBindingTypeUniform
		if d.ReadWrite {
			bt = wgpu.BufferBindingTypeStorage
		}
		entries = append(entries, wgpu.BindGroupLayoutEntry{
			Binding:    uint32(d.Binding),
			Visibility: stage,
			Buffer:     wgpu.BufferBindingLayout{Type: bt},
		})
	}
	return entries, nil
}

// vertexLayout returns the vertex buffer layouts of the vertex input
// state, one per binding in binding order.
func vertexLayout(vi *graphics.VertexInputState, op string) ([]wgpu.VertexBufferLayout, error) {
	lays := make([]wgpu.VertexBufferLayout, len(vi.Bindings))
	for i, b := range vi.Bindings {
		if b.Binding != i {
			return nil, graphics.NewError(graphics.ResourceCreation, op, fmt.Errorf("vertex binding %d at position %d", b.Binding, i))
		}
		lays[i] = wgpu.VertexBufferLayout{
			ArrayStride: uint64(b.Stride),
			StepMode:    wgpu.VertexStepModeVertex,
		}
	}
	for _, a := range vi.Attributes {
		if a.Binding < 0 || a.Binding >= len(lays) {
			return nil, graphics.NewError(graphics.ResourceCreation, op, fmt.Errorf("vertex attribute %d uses unknown binding %d", a.Location, a.Binding))
		}
		vf, err := lookup(VertexTypeToVertexFormat, a.Type, op, "vertex type")
		if err != nil {
			return nil, err
		}
		lays[a.Binding].Attributes = append(lays[a.Binding].Attributes, wgpu.VertexAttribute{
			Format:         vf,
			Offset:         uint64(a.Offset),
			ShaderLocation: uint32(a.Location),
		})
	}
	return lays, nil
}

func stencilFace(st *graphics.StencilOpState, op string) (wgpu.StencilFaceState, error) {
	var sf wgpu.StencilFaceState
	var err error
	if sf.Compare, err = lookup(CompareOpToCompareFunction, st.CompareOp, op, "stencil compare op"); err != nil {
		return sf, err
	}
	if sf.FailOp, err = lookup(StencilOpToStencilOperation, st.FailOp, op, "stencil op"); err != nil {
		return sf, err
	}
	if sf.DepthFailOp, err = lookup(StencilOpToStencilOperation, st.DepthFailOp, op, "stencil op"); err != nil {
		return sf, err
	}
	sf.PassOp, err = lookup(StencilOpToStencilOperation, st.PassOp, op, "stencil op")
	return sf, err
}

// depthStencil returns the depth stencil state, or nil if
// the pipeline has no depth attachment.
func depthStencil(ci *graphics.PipelineCreateInfo, op string) (*wgpu.DepthStencilState, error) {
	if ci.DepthFormat == graphics.UndefinedFormat {
		return nil, nil
	}
	tf, err := lookup(FormatToTextureFormat, ci.DepthFormat, op, "depth format")
	if err != nil {
		return nil, err
	}
	ds := &ci.DepthStencilState
	compare := wgpu.CompareFunctionAlways
	if ds.DepthTestEnable {
		if compare, err = lookup(CompareOpToCompareFunction, ds.DepthCompareOp, op, "depth compare op"); err != nil {
			return nil, err
		}
	}
	st := &wgpu.DepthStencilState{
		Format:            tf,
		DepthWriteEnabled: ds.DepthTestEnable && ds.DepthWriteEnable,
		DepthCompare:      compare,
		StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
		StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
	}
	if ds.StencilTestEnable && ci.DepthFormat.HasStencil() {
		if st.StencilFront, err = stencilFace(&ds.Front, op); err != nil {
			return nil, err
		}
		if st.StencilBack, err = stencilFace(&ds.Back, op); err != nil {
			return nil, err
		}
		st.StencilReadMask = ds.Front.CompareMask
		st.StencilWriteMask = ds.Front.WriteMask
	}
	return st, nil
}

// colorTargets returns the fragment color targets, one per color format.
func colorTargets(ci *graphics.PipelineCreateInfo, op string) ([]wgpu.ColorTargetState, error) {
	targets := make([]wgpu.ColorTargetState, len(ci.ColorFormats))
	for i, f := range ci.ColorFormats {
		tf, err := lookup(FormatToTextureFormat, f, op, "color format")
		if err != nil {
			return nil, err
		}
		att := graphics.ColorBlendAttachmentState{ColorWriteMask: graphics.ColorAll}
		if i < len(ci.ColorBlendState.Attachments) {
			att = ci.ColorBlendState.Attachments[i]
		}
		targets[i] = wgpu.ColorTargetState{
			Format:    tf,
			WriteMask: ColorWriteMask(att.ColorWriteMask),
		}
		if !att.BlendEnable {
			continue
		}
		blend := &wgpu.BlendState{}
		for _, c := range []struct {
			comp      *wgpu.BlendComponent
			src, dst  graphics.BlendFactor
			operation graphics.BlendOp
		}{
			{&blend.Color, att.SrcColorBlendFactor, att.DstColorBlendFactor, att.ColorBlendOp},
			{&blend.Alpha, att.SrcAlphaBlendFactor, att.DstAlphaBlendFactor, att.AlphaBlendOp},
		} {
			if c.comp.SrcFactor, err = lookup(BlendFactorToBlendFactor, c.src, op, "blend factor"); err != nil {
				return nil, err
			}
			if c.comp.DstFactor, err = lookup(BlendFactorToBlendFactor, c.dst, op, "blend factor"); err != nil {
				return nil, err
			}
			if c.comp.Operation, err = lookup(BlendOpToBlendOperation, c.operation, op, "blend op"); err != nil {
				return nil, err
			}
		}
		targets[i].Blend = blend
	}
	return targets, nil
}

// renderPipelineDescriptor returns the descriptor of ci, without
// the shader modules and layout.
func renderPipelineDescriptor(ci *graphics.PipelineCreateInfo, op string) (*wgpu.RenderPipelineDescriptor, error) {
	if ci.ColorBlendState.LogicOpEnable {
		return nil, graphics.NewError(graphics.ResourceCreation, op, errors.New("logic ops are not supported"))
	}
	rs := &ci.RasterisationState
	if rs.PolygonMode != graphics.Fill {
		return nil, graphics.NewError(graphics.ResourceCreation, op, fmt.Errorf("unsupported polygon mode %v", rs.PolygonMode))
	}
	topo, err := lookup(TopologyToPrimitiveTopology, ci.InputAssemblyState.Topology, op, "topology")
	if err != nil {
		return nil, err
	}
	cull, err := lookup(CullModeToCullMode, rs.CullMode, op, "cull mode")
	if err != nil {
		return nil, err
	}
	front, err := lookup(FrontFaceToFrontFace, rs.FrontFace, op, "front face")
	if err != nil {
		return nil, err
	}
	buffers, err := vertexLayout(&ci.VertexInputState, op)
	if err != nil {
		return nil, err
	}
	ds, err := depthStencil(ci, op)
	if err != nil {
		return nil, err
	}
	targets, err := colorTargets(ci, op)
	if err != nil {
		return nil, err
	}
	ms := &ci.MultisampleState
	mask := ms.SampleMask
	if mask == 0 {
		mask = 0xFFFFFFFF
	}
	return &wgpu.RenderPipelineDescriptor{
		Label:  ci.Label,
		Vertex: wgpu.VertexState{Buffers: buffers},
		Primitive: wgpu.PrimitiveState{
			Topology:  topo,
			FrontFace: front,
			CullMode:  cull,
		},
		DepthStencil: ds,
		Multisample: wgpu.MultisampleState{
			Count:                  uint32(max(ms.RasterisationSamples, 1)),
			Mask:                   mask,
			AlphaToCoverageEnabled: ms.AlphaToCoverageEnable,
		},
		Fragment: &wgpu.FragmentState{Targets: targets},
	}, nil
}

func (gp *GPU) CreatePipeline(ci graphics.PipelineCreateInfo) (graphics.Pipeline, error) {
	const op = "CreatePipeline"
	if err := gp.initDevice(nil); err != nil {
		return 0, err
	}
	pd, err := renderPipelineDescriptor(&ci, op)
	if err != nil {
		return 0, errors.Log(err)
	}
	for _, h := range ci.Shaders {
		sh, err := get[*shader](&gp.res, graphics.Handle(h), op)
		if err != nil {
			return 0, errors.Log(err)
		}
		switch sh.stage {
		case graphics.VertexStage:
			pd.Vertex.Module = sh.module
			pd.Vertex.EntryPoint = sh.entry
		case graphics.FragmentStage:
			pd.Fragment.Module = sh.module
			pd.Fragment.EntryPoint = sh.entry
		default:
			return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, fmt.Errorf("unsupported pipeline shader stage %v", sh.stage)))
		}
	}
	if pd.Vertex.Module == nil || pd.Fragment.Module == nil {
		return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, errors.New("pipeline needs a vertex and a fragment shader")))
	}

	entries, err := bindLayoutEntries(ci.Layout, op)
	if err != nil {
		return 0, errors.Log(err)
	}
	pl := &pipeline{bindings: make(map[int]graphics.DescriptorInfo, len(ci.Layout))}
	for _, d := range ci.Layout {
		pl.bindings[d.Binding] = d
	}
	pl.bindLayout, err = gp.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   ci.Label,
		Entries: entries,
	})
	if err != nil {
		return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, err))
	}
	pl.layout, err = gp.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            ci.Label,
		BindGroupLayouts: []*wgpu.BindGroupLayout{pl.bindLayout},
	})
	if err != nil {
		pl.release()
		return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, err))
	}
	pd.Layout = pl.layout
	pl.pipeline, err = gp.device.CreateRenderPipeline(pd)
	if err != nil {
		pl.release()
		return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, err))
	}
	h := gp.res.add(pl)
	gp.debug("pipeline", "handle", h, "label", ci.Label)
	return graphics.Pipeline(h), nil
}

func (gp *GPU) DestroyPipeline(pl graphics.Pipeline) {
	remove[*pipeline](&gp.res, graphics.Handle(pl), "DestroyPipeline")
}
