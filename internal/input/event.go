// Package input implements raw input normalization, filtering and
// diagnostics for the latency and reaction testers.
package input

import "fmt"

// Device identifies the class of device that produced an event.
type Device uint8

const (
	DeviceMouse Device = iota
	DeviceKeyboard
)

// String returns the display label used in device descriptions.
func (d Device) String() string {
	switch d {
	case DeviceMouse:
		return "MOUSE"
	case DeviceKeyboard:
		return "KEYBOARD"
	default:
		return "UNKNOWN"
	}
}

// Action identifies what a normalized event represents.
type Action uint8

const (
	ActionButtonDown Action = iota
	ActionButtonUp
	ActionMove
	ActionWheel
	ActionKeyDown
	ActionKeyUp
)

// MouseButton identifies a physical mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseBack
	MouseForward
)

// mouseButtonNames maps buttons to display names in a fixed precedence
// order. First match wins when describing an event.
var mouseButtonNames = []struct {
	Button MouseButton
	Name   string
}{
	{MouseLeft, "Left Click"},
	{MouseRight, "Right Click"},
	{MouseMiddle, "Middle Click"},
	{MouseBack, "Button 4"},
	{MouseForward, "Button 5"},
}

// ButtonName resolves a mouse button to its display name.
func ButtonName(b MouseButton) string {
	for _, entry := range mouseButtonNames {
		if entry.Button == b {
			return entry.Name
		}
	}
	return fmt.Sprintf("Button %d", b)
}

// Event is a normalized input record produced once per physical event.
// It is consumed by the classifier and then discarded; nothing retains it.
type Event struct {
	Device Device
	Action Action

	// Button identifies the mouse button for ActionButtonDown/Up.
	Button MouseButton

	// KeyName, KeyCode and ScanCode describe keyboard events.
	KeyName  string
	KeyCode  int
	ScanCode int

	// DeltaX/DeltaY carry the movement payload for ActionMove.
	DeltaX int
	DeltaY int

	// WheelAmount carries the scroll payload for ActionWheel, in
	// detents of +-120 matching hardware wheel reports.
	WheelAmount int

	// DeviceName is the display name of the originating device.
	DeviceName string
}

// DeviceText returns the "MOUSE: <name>" style device description.
func (e Event) DeviceText() string {
	return fmt.Sprintf("%s: %s", e.Device, e.DeviceName)
}

// isUp reports whether the event is a button/key release.
func (e Event) isUp() bool {
	return e.Action == ActionButtonUp || e.Action == ActionKeyUp
}
