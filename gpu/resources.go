// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gfxtest/graphics"
)

// resource is a live backend object behind a handle.
type resource interface {
	release()
}

// resources is the handle table of a GPU.
type resources struct {
	next  graphics.Handle
	table map[graphics.Handle]resource
}

func (rs *resources) init() {
	rs.table = make(map[graphics.Handle]resource)
}

func (rs *resources) add(r resource) graphics.Handle {
	rs.next++
	rs.table[rs.next] = r
	return rs.next
}

func (rs *resources) len() int {
	return len(rs.table)
}

// remove removes and releases the resource of h, which
// must be of type T.
func remove[T resource](rs *resources, h graphics.Handle, op string) {
	if _, err := get[T](rs, h, op); err != nil {
		slog.Error("gpu: "+op, "err", err)
		return
	}
	r := rs.table[h]
	delete(rs.table, h)
	r.release()
}

// get returns the resource of h, which must be of type T.
func get[T resource](rs *resources, h graphics.Handle, op string) (T, error) {
	var zero T
	r, ok := rs.table[h]
	if !ok {
		return zero, graphics.NewError(graphics.Command, op, fmt.Errorf("%w: %d", graphics.ErrInvalidHandle, h))
	}
	t, ok := r.(T)
	if !ok {
		return zero, graphics.NewError(graphics.Command, op, fmt.Errorf("%w: %d is a %T", graphics.ErrInvalidHandle, h, r))
	}
	return t, nil
}

// releaseAll releases all resources, newest first.
func (rs *resources) releaseAll() {
	for h := rs.next; h > 0; h-- {
		if r, ok := rs.table[h]; ok {
			delete(rs.table, h)
			r.release()
		}
	}
}
