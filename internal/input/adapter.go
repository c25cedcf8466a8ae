package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mouseButtonMap translates platform mouse buttons to normalized ones, in
// the same precedence order the describe table uses.
var mouseButtonMap = []struct {
	Platform ebiten.MouseButton
	Button   MouseButton
}{
	{ebiten.MouseButtonLeft, MouseLeft},
	{ebiten.MouseButtonRight, MouseRight},
	{ebiten.MouseButtonMiddle, MouseMiddle},
	{ebiten.MouseButton3, MouseBack},
	{ebiten.MouseButton4, MouseForward},
}

// Adapter decodes the platform input state into normalized Events, one
// batch per frame. Only foreground input reaches it: the platform layer
// delivers no background-coalesced events.
type Adapter struct {
	pointerName  string
	keyboardName string

	lastX, lastY int
	haveCursor   bool

	// scratch buffers reused across polls to stay off the allocator
	// on the hot path.
	keysDown []ebiten.Key
	keysUp   []ebiten.Key
	events   []Event
}

// NewAdapter returns an adapter reporting the given device display names.
func NewAdapter() *Adapter {
	return &Adapter{
		pointerName:  "system pointer",
		keyboardName: "system keyboard",
	}
}

// Poll decodes everything that arrived since the previous frame. The
// returned slice is valid until the next call. Records that carry neither
// a button transition, wheel motion, key transition nor a nonzero cursor
// delta produce nothing.
func (a *Adapter) Poll() []Event {
	a.events = a.events[:0]

	for _, m := range mouseButtonMap {
		if inpututil.IsMouseButtonJustPressed(m.Platform) {
			a.events = append(a.events, Event{
				Device:     DeviceMouse,
				Action:     ActionButtonDown,
				Button:     m.Button,
				DeviceName: a.pointerName,
			})
		}
		if inpututil.IsMouseButtonJustReleased(m.Platform) {
			a.events = append(a.events, Event{
				Device:     DeviceMouse,
				Action:     ActionButtonUp,
				Button:     m.Button,
				DeviceName: a.pointerName,
			})
		}
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		a.events = append(a.events, Event{
			Device:      DeviceMouse,
			Action:      ActionWheel,
			WheelAmount: int(wheelY * 120),
			DeviceName:  a.pointerName,
		})
	}

	x, y := ebiten.CursorPosition()
	if a.haveCursor {
		if dx, dy := x-a.lastX, y-a.lastY; dx != 0 || dy != 0 {
			a.events = append(a.events, Event{
				Device:     DeviceMouse,
				Action:     ActionMove,
				DeltaX:     dx,
				DeltaY:     dy,
				DeviceName: a.pointerName,
			})
		}
	}
	a.lastX, a.lastY = x, y
	a.haveCursor = true

	a.keysDown = inpututil.AppendJustPressedKeys(a.keysDown[:0])
	for _, k := range a.keysDown {
		a.events = append(a.events, a.keyEvent(k, ActionKeyDown))
	}
	a.keysUp = inpututil.AppendJustReleasedKeys(a.keysUp[:0])
	for _, k := range a.keysUp {
		a.events = append(a.events, a.keyEvent(k, ActionKeyUp))
	}

	return a.events
}

func (a *Adapter) keyEvent(k ebiten.Key, action Action) Event {
	return Event{
		Device:     DeviceKeyboard,
		Action:     action,
		KeyName:    k.String(),
		KeyCode:    int(k),
		ScanCode:   int(k),
		DeviceName: a.keyboardName,
	}
}
