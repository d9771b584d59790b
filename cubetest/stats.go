// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cubetest

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/loov/hrtime"
	"github.com/muesli/termenv"
)

// Stats are the frame statistics of one reporting interval.
type Stats struct {
	Frames  int
	Elapsed time.Duration
	Min     time.Duration
	Max     time.Duration
}

// FPS returns the mean frame rate.
func (st *Stats) FPS() float64 {
	if st.Elapsed <= 0 {
		return 0
	}
	return float64(st.Frames) / st.Elapsed.Seconds()
}

// Mean returns the mean frame time.
func (st *Stats) Mean() time.Duration {
	if st.Frames == 0 {
		return 0
	}
	return st.Elapsed / time.Duration(st.Frames)
}

func (st *Stats) String() string {
	return fmt.Sprintf("%d frames in %v: %.1f fps, frame time mean %v min %v max %v",
		st.Frames, st.Elapsed.Round(time.Millisecond), st.FPS(), st.Mean().Round(time.Microsecond),
		st.Min.Round(time.Microsecond), st.Max.Round(time.Microsecond))
}

// frameStats times frames and reports the frame rate every interval.
type frameStats struct {
	interval time.Duration

	// now returns the current time, hrtime.Now by default.
	now func() time.Duration

	// out is the terminal to print reports to, if any.
	out     io.Writer
	profile termenv.Profile

	start time.Duration
	last  time.Duration
	cur   Stats
}

func newFrameStats(interval time.Duration, out io.Writer) *frameStats {
	fs := &frameStats{interval: interval, now: hrtime.Now, out: out, profile: termenv.ColorProfile()}
	fs.reset()
	return fs
}

func (fs *frameStats) reset() {
	fs.start = fs.now()
	fs.last = fs.start
	fs.cur = Stats{}
}

// frame records the end of a frame. It returns the stats of the
// interval when the interval is over, and nil otherwise.
func (fs *frameStats) frame() *Stats {
	now := fs.now()
	dt := now - fs.last
	fs.last = now
	if fs.cur.Frames == 0 || dt < fs.cur.Min {
		fs.cur.Min = dt
	}
	fs.cur.Max = max(fs.cur.Max, dt)
	fs.cur.Frames++
	fs.cur.Elapsed = now - fs.start
	if fs.cur.Elapsed < fs.interval {
		return nil
	}
	st := fs.cur
	fs.report(&st)
	fs.reset()
	return &st
}

func (fs *frameStats) report(st *Stats) {
	slog.Info("cubetest: frame stats", "frames", st.Frames, "fps", st.FPS(), "mean", st.Mean(), "min", st.Min, "max", st.Max)
	if fs.out == nil {
		return
	}
	fps := termenv.String(fmt.Sprintf("%6.1f fps", st.FPS())).Bold()
	switch {
	case st.FPS() >= 55:
		fps = fps.Foreground(fs.profile.Color("2"))
	case st.FPS() >= 25:
		fps = fps.Foreground(fs.profile.Color("3"))
	default:
		fps = fps.Foreground(fs.profile.Color("1"))
	}
	fmt.Fprintf(fs.out, "%s  %s\n", fps, termenv.String(st.String()).Faint())
}
