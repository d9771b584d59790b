// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Command gfxtest opens a window and draws a colored cube through
// the WebGPU graphics backend, to test the backend end to end.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/gfxtest/cubetest"
	"cogentcore.org/gfxtest/gpu"
	"github.com/pelletier/go-toml/v2"
	"github.com/xlab/closer"
)

func main() {
	defer closer.Close()
	opts := cli.DefaultOptions("gfxtest", "gfxtest draws a colored cube through the WebGPU graphics backend.")
	cli.Run(opts, &cubetest.Config{}, run)
}

func run(cfg *cubetest.Config) error {
	if cfg.Debug {
		logx.UserLevel = slog.LevelDebug
		gpu.Debug = true
	}
	if cfg.PrintConfig {
		b, err := toml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(b)
		return err
	}
	if cfg.WriteShaders != "" {
		if err := cubetest.WriteShaders(cfg.WriteShaders); err != nil {
			return err
		}
		slog.Info("gfxtest: wrote shaders", "dir", cfg.WriteShaders)
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	gp, err := gpu.NewGPU(gpu.Options{
		Backend:         cfg.Backend,
		HighPerformance: cfg.HighPerformance,
		ValidateShaders: cfg.ValidateShaders,
	})
	if err != nil {
		return err
	}
	defer gp.Release()
	win, err := gpu.NewWindow(gp, cfg.Size(), cfg.Title)
	if err != nil {
		return err
	}
	defer win.Release()

	app := cubetest.New(gp, win, *cfg)
	app.Stats = os.Stdout
	if err := app.Setup(); err != nil {
		return fmt.Errorf("gfxtest: setup: %w", err)
	}
	slog.Info("gfxtest: running", "backend", gp.Backend(), "size", app.Size(), "format", app.Format())

	// on SIGINT / SIGTERM, stop the render loop and wait for teardown
	closer.Bind(func() {
		app.Quit()
		<-app.Done()
	})
	err = app.Run()
	app.Teardown()
	return errors.Log(err)
}
