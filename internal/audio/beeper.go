package audio

import (
	"bytes"
	"fmt"
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Mode reports which output path the beeper ended up on.
type Mode int

const (
	// ModeDisabled means no audio output could be acquired.
	ModeDisabled Mode = iota
	// ModeLowLatency means the small output buffer was accepted.
	ModeLowLatency
	// ModeShared means the beeper fell back to the conservative buffer.
	ModeShared
)

const (
	lowLatencyBuffer = 3 * time.Millisecond
	sharedBuffer     = 10 * time.Millisecond
)

// tonePlayer is the subset of the audio player the beeper drives.
type tonePlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	Rewind() error
}

// playerFactory acquires a tone player configured for the requested
// output buffer, or reports why that path is unavailable.
type playerFactory func(buffer time.Duration) (tonePlayer, error)

// Beeper owns the stimulus tone player. Construction failure is not
// fatal to the caller: a disabled beeper swallows Play calls and the
// overlay reports audio as unavailable.
type Beeper struct {
	player  tonePlayer
	mode    Mode
	latency time.Duration
}

// NewBeeper acquires an output player for the stimulus tone. It asks for
// the low-latency buffer first and falls back to the shared buffer, so a
// refused low-latency path still leaves the test usable. The mixer
// honors any buffer request once a player exists, so with a live
// context the shared step only covers acquisition failure of the
// low-latency player.
func NewBeeper(ctx *eaudio.Context) (*Beeper, error) {
	pcm := BeepPCM()
	return newBeeper(func(buffer time.Duration) (tonePlayer, error) {
		player, err := ctx.NewPlayer(bytes.NewReader(pcm))
		if err != nil {
			return nil, err
		}
		player.SetBufferSize(buffer)
		return player, nil
	})
}

func newBeeper(acquire playerFactory) (*Beeper, error) {
	player, err := acquire(lowLatencyBuffer)
	if err == nil {
		return &Beeper{player: player, mode: ModeLowLatency, latency: lowLatencyBuffer}, nil
	}
	firstErr := err

	player, err = acquire(sharedBuffer)
	if err != nil {
		return &Beeper{mode: ModeDisabled}, fmt.Errorf("acquire tone player (low-latency attempt: %v): %w", firstErr, err)
	}
	return &Beeper{player: player, mode: ModeShared, latency: sharedBuffer}, nil
}

// Play restarts the stimulus tone from the beginning. A disabled beeper
// does nothing.
func (b *Beeper) Play() {
	if b.player == nil {
		return
	}
	if b.player.IsPlaying() {
		b.player.Pause()
	}
	// Rewind on an in-memory reader cannot fail in practice.
	_ = b.player.Rewind()
	b.player.Play()
}

// Ready reports whether audio output was acquired.
func (b *Beeper) Ready() bool {
	return b.mode != ModeDisabled
}

// Mode reports which output path is active.
func (b *Beeper) Mode() Mode {
	return b.mode
}

// Latency is the output buffer duration of the active path.
func (b *Beeper) Latency() time.Duration {
	return b.latency
}
