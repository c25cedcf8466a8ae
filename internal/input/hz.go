package input

import "time"

// rateWindow is the trailing window over which the polling rate is counted.
const rateWindow = time.Second

// RateTracker measures the raw mouse polling rate as the number of
// movement samples observed within the trailing one-second window.
//
// Every delta sample is recorded while the diagnostic is enabled,
// regardless of the significance filter: the diagnostic wants the raw
// device report rate, not the subset the user has chosen to react to.
type RateTracker struct {
	enabled bool
	samples []time.Time
}

// NewRateTracker returns a disabled tracker.
func NewRateTracker() *RateTracker {
	return &RateTracker{}
}

// SetEnabled toggles the diagnostic. Disabling discards all samples.
func (r *RateTracker) SetEnabled(enabled bool) {
	r.enabled = enabled
	if !enabled {
		r.samples = nil
	}
}

// Enabled reports whether the diagnostic is active.
func (r *RateTracker) Enabled() bool {
	return r.enabled
}

// Record registers one movement sample. No-op while disabled.
func (r *RateTracker) Record(now time.Time) {
	if !r.enabled {
		return
	}
	r.samples = append(r.samples, now)
}

// Rate prunes samples older than one second and returns the count of the
// remaining ones, i.e. the observed report rate in Hz.
func (r *RateTracker) Rate(now time.Time) int {
	cutoff := now.Add(-rateWindow)
	i := 0
	for i < len(r.samples) && r.samples[i].Before(cutoff) {
		i++
	}
	if i > 0 {
		r.samples = r.samples[i:]
	}
	return len(r.samples)
}
