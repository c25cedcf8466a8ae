package session

import (
	"strings"
	"testing"
	"time"
)

func TestFlashSession_InitialState(t *testing.T) {
	s := NewFlashSession(time.Now())

	if s.Flashing {
		t.Error("Expected no flash at startup")
	}
	if s.FlashDuration != DefaultFlashDuration {
		t.Errorf("Expected default duration %v, got %v", DefaultFlashDuration, s.FlashDuration)
	}
	if s.LastInput != "Waiting for input..." {
		t.Errorf("Expected waiting placeholder, got %q", s.LastInput)
	}
}

func TestFlashSession_TriggerStartsFlash(t *testing.T) {
	start := time.Now()
	s := NewFlashSession(start)
	now := start.Add(100 * time.Millisecond)

	s.Trigger(now, "Left Click DOWN", "MOUSE: system pointer")

	if !s.Flashing {
		t.Fatal("Expected flash after trigger")
	}
	if !s.FlashStart.Equal(now) {
		t.Errorf("Expected flash start %v, got %v", now, s.FlashStart)
	}
	if s.LastInput != "Left Click DOWN" {
		t.Errorf("Expected input text recorded, got %q", s.LastInput)
	}
	if s.LastDevice != "MOUSE: system pointer" {
		t.Errorf("Expected device text recorded, got %q", s.LastDevice)
	}
}

func TestFlashSession_FlashLastsExactDuration(t *testing.T) {
	start := time.Now()
	s := NewFlashSession(start)
	s.Trigger(start, "Left Click DOWN", "MOUSE: system pointer")

	// Strictly before the duration elapses the flash holds.
	for _, offset := range []time.Duration{0, 10 * time.Millisecond, 49 * time.Millisecond} {
		s.Tick(start.Add(offset))
		if !s.Flashing {
			t.Fatalf("Expected flash to hold at +%v", offset)
		}
	}

	// At exactly the duration it ends.
	s.Tick(start.Add(DefaultFlashDuration))
	if s.Flashing {
		t.Error("Expected flash to end at the duration boundary")
	}
}

func TestFlashSession_ExpiryIndependentOfOverlay(t *testing.T) {
	// Tick carries no overlay knowledge at all; this pins down that the
	// expiry check needs nothing beyond the session itself, so the
	// minimal render path cannot skip it by accident.
	start := time.Now()
	s := NewFlashSession(start)
	s.Trigger(start, "Left Click DOWN", "MOUSE: system pointer")

	s.Tick(start.Add(DefaultFlashDuration + time.Millisecond))
	if s.Flashing {
		t.Error("Expected flash to expire without any overlay involvement")
	}
}

func TestFlashSession_RetriggerRestartsFlash(t *testing.T) {
	start := time.Now()
	s := NewFlashSession(start)

	s.Trigger(start, "Left Click DOWN", "MOUSE: system pointer")
	s.Tick(start.Add(DefaultFlashDuration))
	if s.Flashing {
		t.Fatal("Expected first flash expired")
	}

	second := start.Add(200 * time.Millisecond)
	s.Trigger(second, "Left Click UP", "MOUSE: system pointer")
	if !s.Flashing {
		t.Error("Expected up-event to re-trigger the flash")
	}
	if s.LastInput != "Left Click UP" {
		t.Errorf("Expected description updated, got %q", s.LastInput)
	}
}

func TestFlashSession_AdjustDurationClampsToFloor(t *testing.T) {
	s := NewFlashSession(time.Now())

	s.AdjustDuration(FlashDurationStep)
	if s.FlashDuration != 60*time.Millisecond {
		t.Errorf("Expected 60ms after one increment, got %v", s.FlashDuration)
	}

	for i := 0; i < 20; i++ {
		s.AdjustDuration(-FlashDurationStep)
	}
	if s.FlashDuration != MinFlashDuration {
		t.Errorf("Expected clamp at %v, got %v", MinFlashDuration, s.FlashDuration)
	}
}

func TestFlashSession_LogFormatAndDelta(t *testing.T) {
	start := time.Now()
	s := NewFlashSession(start)
	s.SetLogEnabled(true)

	s.Trigger(start.Add(100*time.Millisecond), "Left Click DOWN", "MOUSE: system pointer")
	s.Trigger(start.Add(250*time.Millisecond), "Left Click UP", "MOUSE: system pointer")

	lines := s.Log.Lines()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d", len(lines))
	}
	if lines[0] != "250.00ms +150.00Δ | Left Click UP | MOUSE: system pointer" {
		t.Errorf("Unexpected newest log line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "100.00ms +100.00Δ | Left Click DOWN") {
		t.Errorf("Unexpected oldest log line: %q", lines[1])
	}
}

func TestFlashSession_LogDisabledByDefault(t *testing.T) {
	start := time.Now()
	s := NewFlashSession(start)

	s.Trigger(start, "Left Click DOWN", "MOUSE: system pointer")

	if s.Log.Len() != 0 {
		t.Errorf("Expected no log lines while logging is disabled, got %d", s.Log.Len())
	}
}

func TestFlashSession_DisablingLogClearsIt(t *testing.T) {
	start := time.Now()
	s := NewFlashSession(start)
	s.SetLogEnabled(true)
	s.Trigger(start, "Left Click DOWN", "MOUSE: system pointer")

	s.SetLogEnabled(false)

	if s.Log.Len() != 0 {
		t.Errorf("Expected log cleared on disable, got %d lines", s.Log.Len())
	}
}

func TestFlashSession_LogCappedAtMax(t *testing.T) {
	start := time.Now()
	s := NewFlashSession(start)
	s.SetLogEnabled(true)

	for i := 0; i < maxLogLines+10; i++ {
		s.Trigger(start.Add(time.Duration(i)*time.Millisecond), "Left Click DOWN", "MOUSE: system pointer")
	}

	if s.Log.Len() != maxLogLines {
		t.Errorf("Expected log capped at %d, got %d", maxLogLines, s.Log.Len())
	}
}
