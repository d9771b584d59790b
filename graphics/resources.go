// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics

import "log/slog"

// ResourceStack records how to release resources in creation order,
// and releases them in the reverse order, each exactly once.
type ResourceStack struct {
	entries []resourceEntry
}

type resourceEntry struct {
	name    string
	release func()
}

// Push records the release function for the named resource.
func (rs *ResourceStack) Push(name string, release func()) {
	rs.entries = append(rs.entries, resourceEntry{name: name, release: release})
}

// Len returns the number of unreleased resources.
func (rs *ResourceStack) Len() int {
	return len(rs.entries)
}

// Names returns the resource names in creation order.
func (rs *ResourceStack) Names() []string {
	names := make([]string, len(rs.entries))
	for i, e := range rs.entries {
		names[i] = e.name
	}
	return names
}

// Release releases all resources, most recently pushed first,
// and empties the stack.
func (rs *ResourceStack) Release() {
	for i := len(rs.entries) - 1; i >= 0; i-- {
		e := rs.entries[i]
		rs.entries = rs.entries[:i]
		slog.Debug("graphics: release", "resource", e.name)
		e.release()
	}
}
