package input

import "fmt"

// Toggles holds the user-configurable capture filters. One instance lives
// for the whole process and is mutated only by keyboard shortcuts.
type Toggles struct {
	// MouseButtons enables mouse button and wheel events.
	MouseButtons bool
	// Keyboard enables all keyboard events.
	Keyboard bool
	// MouseDelta enables pure movement events (no button involved).
	MouseDelta bool
	// UpEvents enables button/key release events. When off, only DOWN
	// transitions register.
	UpEvents bool
}

// DefaultToggles returns the startup filter configuration.
func DefaultToggles() Toggles {
	return Toggles{
		MouseButtons: true,
		Keyboard:     true,
		MouseDelta:   true,
		UpEvents:     true,
	}
}

// Significant is a classified event that should affect test state.
type Significant struct {
	// Description is the human-readable input line, e.g. "Left Click DOWN".
	Description string
	// DeviceText is the originating device line, e.g. "MOUSE: ...".
	DeviceText string
}

// Classify decides whether an event is significant under the given
// toggles and renders its description. It is a pure function of its
// arguments: identical inputs always yield identical results.
//
// Rules are evaluated in a fixed precedence:
//  1. device class disabled entirely
//  2. up-transition while up-events are disabled
//  3. mouse button/wheel while button capture is disabled
//  4. pure movement while delta capture is disabled
//  5. otherwise significant
func Classify(ev Event, t Toggles) (Significant, bool) {
	if ev.Device == DeviceKeyboard && !t.Keyboard {
		return Significant{}, false
	}
	if ev.isUp() && !t.UpEvents {
		return Significant{}, false
	}
	if ev.Device == DeviceMouse {
		switch ev.Action {
		case ActionButtonDown, ActionButtonUp, ActionWheel:
			if !t.MouseButtons {
				return Significant{}, false
			}
		case ActionMove:
			if !t.MouseDelta {
				return Significant{}, false
			}
		}
	}

	return Significant{
		Description: describe(ev),
		DeviceText:  ev.DeviceText(),
	}, true
}

// describe renders the display description for a significant event.
func describe(ev Event) string {
	switch ev.Action {
	case ActionButtonDown:
		return ButtonName(ev.Button) + " DOWN"
	case ActionButtonUp:
		return ButtonName(ev.Button) + " UP"
	case ActionWheel:
		return fmt.Sprintf("Wheel: %d", ev.WheelAmount)
	case ActionMove:
		return fmt.Sprintf("Move: dX=%d dY=%d", ev.DeltaX, ev.DeltaY)
	case ActionKeyDown:
		return fmt.Sprintf("%s (VK=%d SC=%d) DOWN", ev.KeyName, ev.KeyCode, ev.ScanCode)
	case ActionKeyUp:
		return fmt.Sprintf("%s (VK=%d SC=%d) UP", ev.KeyName, ev.KeyCode, ev.ScanCode)
	default:
		return "Unknown"
	}
}
