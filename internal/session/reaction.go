package session

import (
	"math/rand"
	"time"
)

const (
	// MinDelay and MaxDelay bound the random wait before the stimulus.
	// The target delay is drawn uniformly from [MinDelay, MaxDelay).
	MinDelay = 1500 * time.Millisecond
	MaxDelay = 5000 * time.Millisecond

	// maxReactionResults caps the recorded reaction times.
	maxReactionResults = 25
)

// Phase is the reaction tester's state.
type Phase uint8

const (
	// PhaseWaiting shows a black screen until the random delay elapses.
	PhaseWaiting Phase = iota
	// PhaseFlashing presents the stimulus and waits for the click.
	PhaseFlashing
	// PhaseTooEarly marks a false start: a click before the stimulus.
	PhaseTooEarly
)

// ReactionSession is the reaction tester's three-state machine. Time-based
// transitions happen in Tick, click-based ones in Click; both run on the
// single frame-clock thread.
type ReactionSession struct {
	Phase Phase

	// AudioMode selects the beep stimulus instead of the white flash.
	AudioMode bool

	// Results holds recorded reaction times, newest first.
	Results *ResultLog

	// LastReaction is the most recent measurement in milliseconds.
	LastReaction float64

	// FlashStart is the instant the stimulus fired this round.
	FlashStart time.Time

	roundStart  time.Time
	targetDelay time.Duration
	beepPlayed  bool

	rng      *rand.Rand
	stimulus func()
}

// NewReactionSession creates a session and starts its first round. The
// rng is seeded once at process start and reused for every round. The
// stimulus callback fires on the Waiting->Flashing transition in audio
// mode, after the flash timestamp has been captured, so the recorded
// latency excludes the emission call itself.
func NewReactionSession(now time.Time, rng *rand.Rand, stimulus func()) *ReactionSession {
	s := &ReactionSession{
		Results:  NewResultLog(maxReactionResults),
		rng:      rng,
		stimulus: stimulus,
	}
	s.startRound(now)
	return s
}

// startRound begins a fresh round with a newly drawn target delay.
func (s *ReactionSession) startRound(now time.Time) {
	s.Phase = PhaseWaiting
	s.roundStart = now
	s.targetDelay = MinDelay + time.Duration(s.rng.Int63n(int64(MaxDelay-MinDelay)))
	s.beepPlayed = false
}

// TargetDelay returns the current round's drawn delay.
func (s *ReactionSession) TargetDelay() time.Duration {
	return s.targetDelay
}

// Tick resolves the time-based Waiting->Flashing transition. The flash
// timestamp is captured first; the audio stimulus is emitted immediately
// after, at most once per round.
func (s *ReactionSession) Tick(now time.Time) {
	if s.Phase != PhaseWaiting {
		return
	}
	if now.Sub(s.roundStart) < s.targetDelay {
		return
	}

	s.Phase = PhaseFlashing
	s.FlashStart = now
	if s.AudioMode && !s.beepPlayed {
		s.beepPlayed = true
		if s.stimulus != nil {
			s.stimulus()
		}
	}
}

// Click handles a qualifying mouse button press.
//
//	Waiting  -> TooEarly  false start, nothing recorded
//	Flashing -> Waiting   reaction recorded, stats recomputed, next round
//	TooEarly -> Waiting   next round, nothing recorded
func (s *ReactionSession) Click(now time.Time) {
	switch s.Phase {
	case PhaseWaiting:
		s.Phase = PhaseTooEarly
	case PhaseFlashing:
		reactionMS := float64(now.Sub(s.FlashStart)) / float64(time.Millisecond)
		s.LastReaction = reactionMS
		s.Results.Insert(reactionMS)
		s.startRound(now)
	case PhaseTooEarly:
		s.startRound(now)
	}
}

// Reset clears all results and starts a new round regardless of the
// current phase.
func (s *ReactionSession) Reset(now time.Time) {
	s.Results.Clear()
	s.LastReaction = 0
	s.startRound(now)
}

// ToggleAudioMode switches between the visual and audio stimulus. The
// switch invalidates comparisons, so it clears results and restarts.
func (s *ReactionSession) ToggleAudioMode(now time.Time) {
	s.AudioMode = !s.AudioMode
	s.Reset(now)
}
