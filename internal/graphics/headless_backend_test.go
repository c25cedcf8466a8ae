package graphics

import (
	"image/color"
	"testing"
	"time"
)

type countingScene struct {
	frames    int
	quitAfter int
	fill      color.RGBA
	label     string
}

func (s *countingScene) Advance(now time.Time) error {
	s.frames++
	if s.quitAfter > 0 && s.frames > s.quitAfter {
		return ErrQuit
	}
	return nil
}

func (s *countingScene) Render(canvas Canvas) {
	canvas.Fill(s.fill)
	if s.label != "" {
		canvas.Text(s.label, 10, 10)
	}
}

func newTestWindow(t *testing.T) *HeadlessWindow {
	t.Helper()
	backend := NewHeadlessBackend()
	if err := backend.Initialize(Config{WindowWidth: 1280, WindowHeight: 720}); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	window, err := backend.CreateWindow("test")
	if err != nil {
		t.Fatalf("create window: %v", err)
	}
	return window.(*HeadlessWindow)
}

func TestHeadlessBackend_ShouldRejectDoubleInitialize(t *testing.T) {
	backend := NewHeadlessBackend()
	if err := backend.Initialize(Config{}); err != nil {
		t.Fatalf("first initialize: %v", err)
	}
	if err := backend.Initialize(Config{}); err == nil {
		t.Error("second initialize should fail")
	}
}

func TestHeadlessBackend_ShouldRejectWindowBeforeInitialize(t *testing.T) {
	backend := NewHeadlessBackend()
	if _, err := backend.CreateWindow("test"); err == nil {
		t.Error("create window before initialize should fail")
	}
}

func TestHeadlessWindow_ShouldStopAtMaxFrames(t *testing.T) {
	window := newTestWindow(t)
	window.MaxFrames = 10

	scene := &countingScene{}
	if err := window.Run(scene); err != nil {
		t.Fatalf("run: %v", err)
	}
	if scene.frames != 10 {
		t.Errorf("expected 10 frames, got %d", scene.frames)
	}
}

func TestHeadlessWindow_ShouldStopCleanlyOnQuit(t *testing.T) {
	window := newTestWindow(t)

	scene := &countingScene{quitAfter: 3}
	if err := window.Run(scene); err != nil {
		t.Fatalf("quit should not surface as an error, got %v", err)
	}
	if scene.frames != 4 {
		t.Errorf("expected 4 advances (3 frames + quit), got %d", scene.frames)
	}
}

func TestRecordingCanvas_ShouldRecordLastFrameOnly(t *testing.T) {
	window := newTestWindow(t)
	window.MaxFrames = 5

	scene := &countingScene{fill: color.RGBA{R: 255, G: 255, B: 255, A: 255}, label: "CLICK!"}
	if err := window.Run(scene); err != nil {
		t.Fatalf("run: %v", err)
	}

	canvas := window.Canvas
	if canvas.FillColor.R != 255 {
		t.Errorf("fill color not recorded: %+v", canvas.FillColor)
	}
	if canvas.Fills != 5 {
		t.Errorf("expected one fill per frame, got %d", canvas.Fills)
	}
	if len(canvas.Texts) != 1 || canvas.Texts[0].Text != "CLICK!" {
		t.Errorf("text draws should reset per frame: %+v", canvas.Texts)
	}

	width, height := canvas.Size()
	if width != 1280 || height != 720 {
		t.Errorf("canvas size: got %dx%d", width, height)
	}
}
