package app

import (
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/graphics"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/input"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/overlay"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/session"
)

// stimulusPlayer emits the audio stimulus tone.
type stimulusPlayer interface {
	Play()
	Ready() bool
	Latency() time.Duration
}

// ReactionScene runs the reaction time test: after a random delay the
// screen flashes (or a tone plays) and the click latency is recorded.
type ReactionScene struct {
	window graphics.Window
	logger *slog.Logger

	source eventSource
	keys   hotkeys
	beeper stimulusPlayer

	session *session.ReactionSession
}

// NewReactionScene creates the reaction test scene from configuration
func NewReactionScene(app *Application, beeper stimulusPlayer) *ReactionScene {
	cfg := app.GetConfig()
	now := time.Now()

	s := &ReactionScene{
		window: app.Window(),
		logger: app.Logger(),
		source: input.NewAdapter(),
		keys:   inpututilHotkeys{},
		beeper: beeper,
	}

	rng := rand.New(rand.NewSource(now.UnixNano()))
	s.session = session.NewReactionSession(now, rng, func() {
		if s.beeper != nil {
			s.beeper.Play()
		}
	})
	if cfg.Reaction.Audio {
		s.session.ToggleAudioMode(now)
	}

	return s
}

// Advance implements graphics.Scene
func (s *ReactionScene) Advance(now time.Time) error {
	if s.keys.JustPressed(ebiten.KeyEscape) {
		return graphics.ErrQuit
	}
	if s.keys.JustPressed(ebiten.KeySpace) {
		s.session.Reset(now)
		s.logger.Info("results cleared")
	}
	if s.keys.JustPressed(ebiten.KeyF1) {
		s.session.ToggleAudioMode(now)
		s.logger.Info("stimulus mode toggled", "audio", s.session.AudioMode)
	}
	if s.keys.JustPressed(ebiten.KeyF10) {
		s.window.SetFullscreen(!s.window.IsFullscreen())
		s.logger.Info("display mode toggled", "fullscreen", s.window.IsFullscreen())
	}

	for _, ev := range s.source.Poll() {
		if ev.Device != input.DeviceMouse || ev.Action != input.ActionButtonDown {
			continue
		}
		switch ev.Button {
		case input.MouseLeft, input.MouseRight, input.MouseMiddle:
			s.session.Click(now)
		}
	}

	s.session.Tick(now)
	return nil
}

// Render implements graphics.Scene
func (s *ReactionScene) Render(canvas graphics.Canvas) {
	switch {
	case s.session.Phase == session.PhaseTooEarly:
		canvas.Fill(colorRed)
	case s.session.Phase == session.PhaseFlashing && !s.session.AudioMode:
		canvas.Fill(colorWhite)
	default:
		// Audio mode keeps the screen dark so the tone is the only cue.
		canvas.Fill(colorBlack)
	}

	status := overlay.AudioStatus{}
	if s.beeper != nil {
		status.Ready = s.beeper.Ready()
		status.Latency = s.beeper.Latency()
	}
	view := overlay.ComposeReaction(s.session, status, s.window.IsFullscreen())

	width, height := canvas.Size()

	canvas.Text(view.Header, 40, 40)
	if view.Stats != "" {
		canvas.Text(view.Stats, 40, 70)
	}
	for i, line := range view.Results {
		canvas.Text(line, 40, 100+i*16)
	}

	drawCentered(canvas, view.Center, width, height)

	canvas.Text(view.Legend, 40, height-30)
}

// drawCentered draws a possibly multi-line message at the screen center.
// The debug font is a fixed 6x16 cell, which is close enough for layout.
func drawCentered(canvas graphics.Canvas, text string, width, height int) {
	lines := strings.Split(text, "\n")
	top := height/2 - len(lines)*8
	for i, line := range lines {
		x := width/2 - len(line)*3
		canvas.Text(line, x, top+i*16)
	}
}
