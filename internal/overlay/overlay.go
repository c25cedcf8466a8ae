// Package overlay formats current test state into drawable text. It is
// the slow path by design: everything here is skipped entirely when the
// overlay is disabled, leaving the render tick with nothing but a state
// check, a clear and a present.
package overlay

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/input"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/session"
)

// LatencyView is the composed overlay for the latency tester.
type LatencyView struct {
	// Input and Device describe the last significant event.
	Input  string
	Device string
	// Corner is the FPS/frame-time (and optional Hz) block.
	Corner string
	// Log is the scrolling event log, newest first.
	Log []string
	// Legend is the single-line keybinding/toggle summary.
	Legend string
}

// LegendState carries the toggle states the legend line reports.
type LegendState struct {
	Toggles       input.Toggles
	LogEnabled    bool
	HzEnabled     bool
	OverlayOn     bool
	Fullscreen    bool
	FlashDuration time.Duration
}

// ComposeLatency builds the latency tester overlay from current state.
func ComposeLatency(s *session.FlashSession, timer *session.FrameTimer, hz int, legend LegendState) LatencyView {
	var corner string
	if legend.HzEnabled {
		corner = fmt.Sprintf("%.1f FPS\n%.2f ms\n%d Hz", timer.SmoothedFPS, timer.SmoothedFrameMS, hz)
	} else {
		corner = fmt.Sprintf("%.1f FPS\n%.2f ms", timer.SmoothedFPS, timer.SmoothedFrameMS)
	}

	var log []string
	if s.LogEnabled && s.Log.Len() > 0 {
		log = s.Log.Lines()
	}

	return LatencyView{
		Input:  s.LastInput,
		Device: s.LastDevice,
		Corner: corner,
		Log:    log,
		Legend: latencyLegend(legend),
	}
}

func latencyLegend(l LegendState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ESC | F1=Mouse[%s]", onOff(l.Toggles.MouseButtons))
	fmt.Fprintf(&b, " F2=KB[%s]", onOff(l.Toggles.Keyboard))
	fmt.Fprintf(&b, " F3=Dlt[%s]", onOff(l.Toggles.MouseDelta))
	fmt.Fprintf(&b, " F4=Log[%s]", onOff(l.LogEnabled))
	fmt.Fprintf(&b, " F7=Up[%s]", onOff(l.Toggles.UpEvents))
	fmt.Fprintf(&b, " F8=Hz[%s]", onOff(l.HzEnabled))
	fmt.Fprintf(&b, " F9=OL[%s]", onOff(l.OverlayOn))
	fmt.Fprintf(&b, " F10=[%s]", fullscreenLabel(l.Fullscreen))
	fmt.Fprintf(&b, " F5/6=%dms", l.FlashDuration.Milliseconds())
	return b.String()
}

// ReactionView is the composed overlay for the reaction tester.
type ReactionView struct {
	// Header names the active mode.
	Header string
	// Stats is the "Avg/Best" line; empty with no results.
	Stats string
	// Results are the numbered reaction times, newest first.
	Results []string
	// Center is the large state message in the middle of the screen.
	Center string
	// Legend is the bottom keybinding line.
	Legend string
}

// AudioStatus describes the audio backend for the legend line.
type AudioStatus struct {
	Ready   bool
	Latency time.Duration
}

// ComposeReaction builds the reaction tester overlay from current state.
func ComposeReaction(s *session.ReactionSession, audio AudioStatus, fullscreen bool) ReactionView {
	header := "VISUAL REACTION"
	if s.AudioMode {
		header = "AUDIO REACTION"
	}

	var stats string
	if s.Results.Len() > 0 {
		st := s.Results.Stats()
		stats = fmt.Sprintf("Avg: %.1f ms  Best: %.1f ms", st.Average, st.Best)
	}

	times := s.Results.Times()
	results := make([]string, len(times))
	for i, rt := range times {
		results[i] = fmt.Sprintf("%2d. %.1f ms", i+1, rt)
	}

	var center string
	switch s.Phase {
	case session.PhaseWaiting:
		center = "Wait for it..."
	case session.PhaseFlashing:
		center = "CLICK!"
	case session.PhaseTooEarly:
		center = "TOO EARLY!\nClick to retry"
	}

	return ReactionView{
		Header:  header,
		Stats:   stats,
		Results: results,
		Center:  center,
		Legend:  reactionLegend(s.AudioMode, audio, fullscreen),
	}
}

func reactionLegend(audioMode bool, audio AudioStatus, fullscreen bool) string {
	mode := "VISUAL"
	if audioMode {
		if audio.Ready {
			mode = fmt.Sprintf("AUDIO ~%.1fms", float64(audio.Latency)/float64(time.Millisecond))
		} else {
			mode = "AUDIO (N/A)"
		}
	}
	return fmt.Sprintf("ESC=Exit | SPACE=Clear | F1=[%s] | F10=%s", mode, fullscreenLabel(fullscreen))
}

func onOff(enabled bool) string {
	if enabled {
		return "+"
	}
	return "-"
}

func fullscreenLabel(fullscreen bool) string {
	if fullscreen {
		return "FSE"
	}
	return "WIN"
}
