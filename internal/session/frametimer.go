package session

import "time"

// fpsSmoothing weights the previous smoothed value; the current sample
// gets the remaining 0.1.
const fpsSmoothing = 0.9

// FrameTimer tracks the raw frame interval and an exponentially smoothed
// FPS/frame-time pair for the overlay. It is only ticked while the
// overlay path is active; the minimal path skips it entirely.
type FrameTimer struct {
	FrameMS float64
	FPS     float64

	SmoothedFrameMS float64
	SmoothedFPS     float64

	last time.Time
}

// Tick records one frame boundary and updates the smoothed values.
func (t *FrameTimer) Tick(now time.Time) {
	if t.last.IsZero() {
		t.last = now
		return
	}

	t.FrameMS = float64(now.Sub(t.last)) / float64(time.Millisecond)
	t.last = now
	if t.FrameMS > 0 {
		t.FPS = 1000.0 / t.FrameMS
	} else {
		t.FPS = 0
	}

	t.SmoothedFrameMS = t.SmoothedFrameMS*fpsSmoothing + t.FrameMS*(1-fpsSmoothing)
	t.SmoothedFPS = t.SmoothedFPS*fpsSmoothing + t.FPS*(1-fpsSmoothing)
}
