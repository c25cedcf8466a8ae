package app

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/graphics"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/input"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/session"
)

type fakeBeeper struct {
	plays int
}

func (b *fakeBeeper) Play()                  { b.plays++ }
func (b *fakeBeeper) Ready() bool            { return true }
func (b *fakeBeeper) Latency() time.Duration { return 3 * time.Millisecond }

func newTestReactionScene(now time.Time) (*ReactionScene, *fakeSource, *fakeKeys, *fakeBeeper) {
	source := &fakeSource{}
	keys := &fakeKeys{}
	beeper := &fakeBeeper{}

	scene := &ReactionScene{
		window: &fakeWindow{fullscreen: true},
		logger: discardLogger(),
		source: source,
		keys:   keys,
		beeper: beeper,
	}
	scene.session = session.NewReactionSession(now, rand.New(rand.NewSource(42)), func() {
		scene.beeper.Play()
	})
	return scene, source, keys, beeper
}

func mouseDown(button input.MouseButton) input.Event {
	return input.Event{
		Device:     input.DeviceMouse,
		Action:     input.ActionButtonDown,
		Button:     button,
		DeviceName: "system pointer",
	}
}

func TestReactionScene_VisualStimulusShouldFillWhite(t *testing.T) {
	now := time.Now()
	scene, _, _, beeper := newTestReactionScene(now)
	canvas := graphics.NewRecordingCanvas(1280, 720)

	scene.Render(canvas)
	if canvas.FillColor != colorBlack {
		t.Errorf("waiting frame should be black, got %+v", canvas.FillColor)
	}

	fire := now.Add(scene.session.TargetDelay())
	if err := scene.Advance(fire); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if scene.session.Phase != session.PhaseFlashing {
		t.Fatalf("expected flashing phase, got %v", scene.session.Phase)
	}

	scene.Render(canvas)
	if canvas.FillColor != colorWhite {
		t.Errorf("visual stimulus frame should be white, got %+v", canvas.FillColor)
	}
	if beeper.plays != 0 {
		t.Errorf("visual mode should not beep, played %d times", beeper.plays)
	}
}

func TestReactionScene_AudioStimulusShouldBeepAndStayDark(t *testing.T) {
	now := time.Now()
	scene, _, keys, beeper := newTestReactionScene(now)
	canvas := graphics.NewRecordingCanvas(1280, 720)

	keys.press(ebiten.KeyF1)
	if err := scene.Advance(now); err != nil {
		t.Fatalf("advance: %v", err)
	}
	keys.release()
	if !scene.session.AudioMode {
		t.Fatal("F1 should switch to audio mode")
	}

	fire := now.Add(scene.session.TargetDelay())
	if err := scene.Advance(fire); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if beeper.plays != 1 {
		t.Fatalf("expected one beep, got %d", beeper.plays)
	}

	scene.Render(canvas)
	if canvas.FillColor != colorBlack {
		t.Errorf("audio stimulus frame should stay black, got %+v", canvas.FillColor)
	}
}

func TestReactionScene_EarlyClickShouldShowRed(t *testing.T) {
	now := time.Now()
	scene, source, _, _ := newTestReactionScene(now)
	canvas := graphics.NewRecordingCanvas(1280, 720)

	source.events = []input.Event{mouseDown(input.MouseLeft)}
	if err := scene.Advance(now.Add(100 * time.Millisecond)); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if scene.session.Phase != session.PhaseTooEarly {
		t.Fatalf("expected too-early phase, got %v", scene.session.Phase)
	}

	scene.Render(canvas)
	if canvas.FillColor != colorRed {
		t.Errorf("false-start frame should be red, got %+v", canvas.FillColor)
	}
}

func TestReactionScene_TimedClickShouldRecordResult(t *testing.T) {
	now := time.Now()
	scene, source, _, _ := newTestReactionScene(now)

	fire := now.Add(scene.session.TargetDelay())
	if err := scene.Advance(fire); err != nil {
		t.Fatalf("advance: %v", err)
	}

	source.events = []input.Event{mouseDown(input.MouseRight)}
	if err := scene.Advance(fire.Add(234 * time.Millisecond)); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if scene.session.Results.Len() != 1 {
		t.Fatalf("expected one recorded result, got %d", scene.session.Results.Len())
	}
	if got := scene.session.Results.Times()[0]; got != 234.0 {
		t.Errorf("expected 234ms reaction, got %.1f", got)
	}
}

func TestReactionScene_WheelAndMovementShouldNotCount(t *testing.T) {
	now := time.Now()
	scene, source, _, _ := newTestReactionScene(now)

	source.events = []input.Event{
		{Device: input.DeviceMouse, Action: input.ActionWheel, WheelAmount: 120},
		{Device: input.DeviceMouse, Action: input.ActionMove, DeltaX: 5},
		{Device: input.DeviceKeyboard, Action: input.ActionKeyDown, KeyName: "Space"},
		mouseDown(input.MouseBack),
	}
	if err := scene.Advance(now.Add(100 * time.Millisecond)); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if scene.session.Phase != session.PhaseWaiting {
		t.Errorf("only left/right/middle clicks should register, got phase %v", scene.session.Phase)
	}
}

func TestReactionScene_SpaceShouldClearResults(t *testing.T) {
	now := time.Now()
	scene, _, keys, _ := newTestReactionScene(now)

	scene.session.Results.Insert(200.0)
	keys.press(ebiten.KeySpace)
	if err := scene.Advance(now.Add(time.Second)); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if scene.session.Results.Len() != 0 {
		t.Errorf("space should clear results, %d remain", scene.session.Results.Len())
	}
}

func TestReactionScene_EscapeShouldRequestQuit(t *testing.T) {
	scene, _, keys, _ := newTestReactionScene(time.Now())

	keys.press(ebiten.KeyEscape)
	if err := scene.Advance(time.Now()); !errors.Is(err, graphics.ErrQuit) {
		t.Errorf("expected ErrQuit, got %v", err)
	}
}
