package app

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/graphics"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/input"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/overlay"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/session"
)

var (
	colorBlack = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorRed   = color.RGBA{R: 204, G: 26, B: 26, A: 255}
)

// eventSource produces the normalized input events of one frame.
type eventSource interface {
	Poll() []input.Event
}

// hotkeys reports edge-triggered presses of control keys.
type hotkeys interface {
	JustPressed(key ebiten.Key) bool
}

// inpututilHotkeys reads control keys from the live keyboard.
type inpututilHotkeys struct{}

func (inpututilHotkeys) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// LatencyScene runs the input-to-photon latency test: every significant
// input event flashes the screen white for a short, fixed duration.
type LatencyScene struct {
	window graphics.Window
	logger *slog.Logger

	source eventSource
	keys   hotkeys

	toggles input.Toggles
	session *session.FlashSession
	timer   *session.FrameTimer
	hz      *input.RateTracker

	overlayOn bool
	hzOn      bool
	hzRate    int
}

// NewLatencyScene creates the latency test scene from configuration
func NewLatencyScene(app *Application) *LatencyScene {
	cfg := app.GetConfig()
	now := time.Now()

	fs := session.NewFlashSession(now)
	fs.FlashDuration = cfg.FlashDuration()
	fs.SetLogEnabled(cfg.Latency.EventLog)

	hz := input.NewRateTracker()
	hz.SetEnabled(cfg.Latency.HzCounter)

	return &LatencyScene{
		window:    app.Window(),
		logger:    app.Logger(),
		source:    input.NewAdapter(),
		keys:      inpututilHotkeys{},
		toggles:   cfg.Toggles(),
		session:   fs,
		timer:     &session.FrameTimer{},
		hz:        hz,
		overlayOn: cfg.Latency.Overlay,
		hzOn:      cfg.Latency.HzCounter,
	}
}

// Advance implements graphics.Scene
func (s *LatencyScene) Advance(now time.Time) error {
	if s.keys.JustPressed(ebiten.KeyEscape) {
		return graphics.ErrQuit
	}
	s.handleHotkeys()

	for _, ev := range s.source.Poll() {
		if ev.Device == input.DeviceMouse && ev.Action == input.ActionMove {
			s.hz.Record(now)
		}
		if sig, ok := input.Classify(ev, s.toggles); ok {
			s.session.Trigger(now, sig.Description, sig.DeviceText)
		}
	}

	s.session.Tick(now)

	// Overlay bookkeeping stays off the minimal path.
	if s.overlayOn {
		s.timer.Tick(now)
		if s.hzOn {
			s.hzRate = s.hz.Rate(now)
		}
	}
	return nil
}

func (s *LatencyScene) handleHotkeys() {
	if s.keys.JustPressed(ebiten.KeyF1) {
		s.toggles.MouseButtons = !s.toggles.MouseButtons
		s.logger.Info("mouse button capture toggled", "enabled", s.toggles.MouseButtons)
	}
	if s.keys.JustPressed(ebiten.KeyF2) {
		s.toggles.Keyboard = !s.toggles.Keyboard
		s.logger.Info("keyboard capture toggled", "enabled", s.toggles.Keyboard)
	}
	if s.keys.JustPressed(ebiten.KeyF3) {
		s.toggles.MouseDelta = !s.toggles.MouseDelta
		s.logger.Info("mouse movement capture toggled", "enabled", s.toggles.MouseDelta)
	}
	if s.keys.JustPressed(ebiten.KeyF4) {
		s.session.SetLogEnabled(!s.session.LogEnabled)
		s.logger.Info("event log toggled", "enabled", s.session.LogEnabled)
	}
	if s.keys.JustPressed(ebiten.KeyF5) {
		s.session.AdjustDuration(session.FlashDurationStep)
		s.logger.Info("flash duration adjusted", "ms", s.session.FlashDuration.Milliseconds())
	}
	if s.keys.JustPressed(ebiten.KeyF6) {
		s.session.AdjustDuration(-session.FlashDurationStep)
		s.logger.Info("flash duration adjusted", "ms", s.session.FlashDuration.Milliseconds())
	}
	if s.keys.JustPressed(ebiten.KeyF7) {
		s.toggles.UpEvents = !s.toggles.UpEvents
		s.logger.Info("release event capture toggled", "enabled", s.toggles.UpEvents)
	}
	if s.keys.JustPressed(ebiten.KeyF8) {
		s.hzOn = !s.hzOn
		s.hz.SetEnabled(s.hzOn)
		s.logger.Info("polling rate counter toggled", "enabled", s.hzOn)
	}
	if s.keys.JustPressed(ebiten.KeyF9) {
		s.overlayOn = !s.overlayOn
		s.logger.Info("overlay toggled", "enabled", s.overlayOn)
	}
	if s.keys.JustPressed(ebiten.KeyF10) {
		s.window.SetFullscreen(!s.window.IsFullscreen())
		s.logger.Info("display mode toggled", "fullscreen", s.window.IsFullscreen())
	}
}

// Render implements graphics.Scene
func (s *LatencyScene) Render(canvas graphics.Canvas) {
	if s.session.Flashing {
		canvas.Fill(colorWhite)
	} else {
		canvas.Fill(colorBlack)
	}

	if !s.overlayOn {
		return
	}

	view := overlay.ComposeLatency(s.session, s.timer, s.hzRate, overlay.LegendState{
		Toggles:       s.toggles,
		LogEnabled:    s.session.LogEnabled,
		HzEnabled:     s.hzOn,
		OverlayOn:     s.overlayOn,
		Fullscreen:    s.window.IsFullscreen(),
		FlashDuration: s.session.FlashDuration,
	})

	width, height := canvas.Size()

	canvas.Text(view.Input, 40, 40)
	canvas.Text(view.Device, 40, 60)
	canvas.Text(view.Corner, width-140, 40)
	for i, line := range view.Log {
		canvas.Text(line, 40, 100+i*16)
	}
	canvas.Text(view.Legend, 40, height-30)
}
