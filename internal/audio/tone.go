// Package audio produces the reaction-test stimulus tone and plays it
// with as little output buffering as the platform allows.
package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate is the fixed output sample rate.
const SampleRate = 48000

const (
	// BeepFrequency is the stimulus tone pitch.
	BeepFrequency = 800.0
	// BeepDuration is the stimulus tone length.
	BeepDuration = 80 * time.Millisecond

	beepAmplitude = 16000
)

// SineTone renders a sine wave as 16-bit little-endian stereo PCM at the
// given sample rate. Both channels carry the same signal.
func SineTone(freq float64, duration time.Duration, sampleRate int) []byte {
	frames := int(float64(sampleRate) * duration.Seconds())
	pcm := make([]byte, frames*4)

	step := 2 * math.Pi * freq / float64(sampleRate)
	for i := 0; i < frames; i++ {
		sample := int16(beepAmplitude * math.Sin(step*float64(i)))
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(sample))
	}
	return pcm
}

// BeepPCM renders the standard stimulus tone.
func BeepPCM() []byte {
	return SineTone(BeepFrequency, BeepDuration, SampleRate)
}
