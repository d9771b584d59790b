// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubetest

import (
	"bytes"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameStats(t *testing.T) {
	var clock time.Duration
	var out bytes.Buffer
	fs := &frameStats{
		interval: time.Second,
		now:      func() time.Duration { return clock },
		out:      &out,
		profile:  termenv.Ascii,
	}
	fs.reset()

	steps := []time.Duration{50, 150, 100, 100, 100, 100, 100, 100, 100, 100}
	var st *Stats
	for i, step := range steps {
		clock += step * time.Millisecond
		st = fs.frame()
		if i < len(steps)-1 {
			require.Nil(t, st, "frame %d", i)
		}
	}
	require.NotNil(t, st)
	assert.Equal(t, 10, st.Frames)
	assert.Equal(t, time.Second, st.Elapsed)
	assert.Equal(t, 50*time.Millisecond, st.Min)
	assert.Equal(t, 150*time.Millisecond, st.Max)
	assert.InDelta(t, 10, st.FPS(), 1e-9)
	assert.Equal(t, 100*time.Millisecond, st.Mean())
	assert.Contains(t, out.String(), "10 frames in 1s")
	assert.Contains(t, out.String(), "10.0 fps")

	// the next interval starts over
	clock += 200 * time.Millisecond
	assert.Nil(t, fs.frame())
	assert.Equal(t, 1, fs.cur.Frames)
	assert.Equal(t, 200*time.Millisecond, fs.cur.Min)
}

func TestStatsEmpty(t *testing.T) {
	var st Stats
	assert.Zero(t, st.FPS())
	assert.Zero(t, st.Mean())
}
