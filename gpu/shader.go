// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gfxtest/graphics"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// shader is a WebGPU shader module with one entry point.
type shader struct {
	module *wgpu.ShaderModule
	stage  graphics.ShaderStage
	entry  string
}

func (sh *shader) release() {
	if sh.module != nil {
		sh.module.Release()
		sh.module = nil
	}
}

var stageToNaga = map[graphics.ShaderStage]ir.ShaderStage{
	graphics.VertexStage:   ir.StageVertex,
	graphics.FragmentStage: ir.StageFragment,
	graphics.ComputeStage:  ir.StageCompute,
}

// ValidateWGSL parses and checks the WGSL source with naga,
// and checks that it has the given entry point for the stage.
// Validation findings are logged as warnings, as the driver
// compiler is the final judge.
func ValidateWGSL(source, entryPoint string, stage graphics.ShaderStage) error {
	ast, err := naga.Parse(source)
	if err != nil {
		return err
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return err
	}
	want, ok := stageToNaga[stage]
	if !ok {
		return fmt.Errorf("unsupported shader stage %v", stage)
	}
	found := false
	for _, ep := range module.EntryPoints {
		if ep.Name == entryPoint {
			if ep.Stage != want {
				return fmt.Errorf("entry point %q is not a %v shader", entryPoint, stage)
			}
			found = true
		}
	}
	if !found {
		return fmt.Errorf("entry point %q not found", entryPoint)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return err
	}
	for _, ve := range verrs {
		slog.Warn("gpu: shader validation", "entry", entryPoint, "msg", ve.Error())
	}
	return nil
}

func (gp *GPU) CreateShader(ci graphics.ShaderCreateInfo) (graphics.Shader, error) {
	const op = "CreateShader"
	if err := gp.initDevice(nil); err != nil {
		return 0, err
	}
	if gp.Options.ValidateShaders {
		if err := ValidateWGSL(ci.Source, ci.EntryPoint, ci.Type); err != nil {
			return 0, errors.Log(graphics.NewError(graphics.ShaderCompile, op, fmt.Errorf("%s: %w", ci.Name, err)))
		}
	}
	module, err := gp.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          ci.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: ci.Source},
	})
	if err != nil {
		return 0, errors.Log(graphics.NewError(graphics.ShaderCompile, op, fmt.Errorf("%s: %w", ci.Name, err)))
	}
	h := gp.res.add(&shader{module: module, stage: ci.Type, entry: ci.EntryPoint})
	gp.debug("shader", "handle", h, "name", ci.Name, "entry", ci.EntryPoint)
	return graphics.Shader(h), nil
}

func (gp *GPU) DestroyShader(sh graphics.Shader) {
	remove[*shader](&gp.res, graphics.Handle(sh), "DestroyShader")
}
