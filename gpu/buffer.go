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

// note: WriteBuffer is the preferred method for writing,
// so HostVisible buffers need no mapping.

// buffer is a WebGPU buffer.
type buffer struct {
	buffer *wgpu.Buffer
	typ    graphics.BufferType
	stride int
	size   int
}

func (bf *buffer) release() {
	if bf.buffer != nil {
		bf.buffer.Release()
		bf.buffer = nil
	}
}

// align4 rounds n up to a multiple of 4, as WebGPU requires
// for buffer sizes and writes.
func align4(n int) int {
	return (n + 3) &^ 3
}

func (gp *GPU) CreateBuffer(ci graphics.BufferCreateInfo) (graphics.Buffer, error) {
	const op = "CreateBuffer"
	if err := gp.initDevice(nil); err != nil {
		return 0, err
	}
	usage, err := lookup(BufferTypeToBufferUsage, ci.Type, op, "buffer type")
	if err != nil {
		return 0, errors.Log(err)
	}
	if ci.Size <= 0 || len(ci.Data) > ci.Size {
		return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, fmt.Errorf("invalid buffer size %d for %d bytes of data", ci.Size, len(ci.Data))))
	}
	size := align4(ci.Size)
	var buf *wgpu.Buffer
	if len(ci.Data) > 0 {
		contents := ci.Data
		if len(contents) != size {
			contents = make([]byte, size)
			copy(contents, ci.Data)
		}
		buf, err = gp.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    ci.Label,
			Contents: contents,
			Usage:    usage,
		})
	} else {
		buf, err = gp.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: ci.Label,
			Size:  uint64(size),
			Usage: usage,
		})
	}
	if err != nil {
		return 0, errors.Log(graphics.NewError(graphics.ResourceCreation, op, err))
	}
	h := gp.res.add(&buffer{buffer: buf, typ: ci.Type, stride: ci.Stride, size: size})
	gp.debug("buffer", "handle", h, "label", ci.Label, "type", ci.Type, "size", size)
	return graphics.Buffer(h), nil
}

func (gp *GPU) DestroyBuffer(buf graphics.Buffer) {
	remove[*buffer](&gp.res, graphics.Handle(buf), "DestroyBuffer")
}

func (gp *GPU) SetBufferData(buf graphics.Buffer, offset int, data []byte) error {
	const op = "SetBufferData"
	bf, err := get[*buffer](&gp.res, graphics.Handle(buf), op)
	if err != nil {
		return err
	}
	if offset < 0 || offset%4 != 0 || offset+len(data) > bf.size {
		return graphics.NewError(graphics.Command, op, fmt.Errorf("write of %d bytes at %d out of range for buffer of %d bytes", len(data), offset, bf.size))
	}
	if len(data)%4 != 0 {
		padded := make([]byte, align4(len(data)))
		copy(padded, data)
		data = padded
	}
	return graphics.NewError(graphics.Command, op, gp.queue.WriteBuffer(bf.buffer, uint64(offset), data))
}
