package session

import (
	"fmt"
	"time"
)

const (
	// DefaultFlashDuration is the startup flash length.
	DefaultFlashDuration = 50 * time.Millisecond

	// MinFlashDuration is the floor the duration is clamped to.
	MinFlashDuration = 10 * time.Millisecond

	// FlashDurationStep is the F5/F6 adjustment increment.
	FlashDurationStep = 10 * time.Millisecond

	// maxLogLines caps the latency tester's scrolling event log.
	maxLogLines = 30
)

// FlashSession is the latency tester's state machine. "Not flashing" is
// the default; a significant input event starts a flash, and the frame
// clock ends it once the configured duration has elapsed. The expiry
// check runs on every tick, including the minimal render path with the
// overlay disabled.
type FlashSession struct {
	// Flashing is true for exactly [FlashStart, FlashStart+FlashDuration).
	Flashing      bool
	FlashStart    time.Time
	FlashDuration time.Duration

	// LastInput and LastDevice describe the most recent significant event.
	LastInput  string
	LastDevice string

	// Log collects timestamped event lines while logging is enabled.
	Log        *TextLog
	LogEnabled bool

	start       time.Time
	lastEventMS float64
}

// NewFlashSession creates a session whose log timestamps are measured
// from the given process start instant.
func NewFlashSession(start time.Time) *FlashSession {
	return &FlashSession{
		FlashDuration: DefaultFlashDuration,
		LastInput:     "Waiting for input...",
		Log:           NewTextLog(maxLogLines),
		start:         start,
	}
}

// Trigger starts (or restarts) a flash for a significant input event and
// records its description. With logging enabled it also appends a
// "123.45ms +12.34Δ | input | device" line carrying the elapsed time
// since process start and the delta since the previous event.
func (s *FlashSession) Trigger(now time.Time, inputText, deviceText string) {
	s.Flashing = true
	s.FlashStart = now
	s.LastInput = inputText
	s.LastDevice = deviceText

	if !s.LogEnabled {
		return
	}
	elapsedMS := float64(now.Sub(s.start)) / float64(time.Millisecond)
	deltaMS := elapsedMS - s.lastEventMS
	s.Log.Insert(fmt.Sprintf("%.2fms %+.2fΔ | %s | %s", elapsedMS, deltaMS, inputText, deviceText))
	s.lastEventMS = elapsedMS
}

// Tick resolves the time-based transition: the flash ends once its
// duration has elapsed.
func (s *FlashSession) Tick(now time.Time) {
	if s.Flashing && now.Sub(s.FlashStart) >= s.FlashDuration {
		s.Flashing = false
	}
}

// AdjustDuration changes the flash duration by delta, clamped to the
// minimum.
func (s *FlashSession) AdjustDuration(delta time.Duration) {
	s.FlashDuration += delta
	if s.FlashDuration < MinFlashDuration {
		s.FlashDuration = MinFlashDuration
	}
}

// SetLogEnabled toggles event logging. Disabling clears the log.
func (s *FlashSession) SetLogEnabled(enabled bool) {
	s.LogEnabled = enabled
	if !enabled {
		s.Log.Clear()
	}
}
