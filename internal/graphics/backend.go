// Package graphics provides an abstraction layer for different presentation backends
package graphics

import (
	"errors"
	"image/color"
	"time"
)

// ErrQuit is returned by a Scene to request a clean shutdown of the
// presentation loop.
var ErrQuit = errors.New("quit requested")

// Backend represents a presentation backend (Ebitengine, headless, etc.)
type Backend interface {
	// Initialize initializes the presentation backend
	Initialize(config Config) error

	// CreateWindow creates a window for presentation (no OS window for headless)
	CreateWindow(title string) (Window, error)

	// Cleanup releases all resources
	Cleanup() error

	// IsHeadless returns true if running in headless mode
	IsHeadless() bool

	// GetName returns the backend name for identification
	GetName() string
}

// Window represents a presentation surface and its frame loop.
type Window interface {
	// SetTitle sets the window title
	SetTitle(title string)

	// GetSize returns window dimensions
	GetSize() (width, height int)

	// SetFullscreen switches between exclusive fullscreen and windowed mode
	SetFullscreen(fullscreen bool)

	// IsFullscreen reports the current display mode
	IsFullscreen() bool

	// Run drives the scene until it returns ErrQuit or fails
	Run(scene Scene) error

	// Cleanup releases window resources
	Cleanup() error
}

// Scene is one frame-driven application mode. The window calls Advance
// once per presented frame, then Render with the frame's canvas.
type Scene interface {
	// Advance processes input and state for the frame presented at now.
	// Returning ErrQuit ends the loop; any other error aborts it.
	Advance(now time.Time) error

	// Render draws the frame. It must stay cheap when nothing is shown:
	// the input-to-photon interval is the product being measured.
	Render(canvas Canvas)
}

// Canvas is the minimal drawing surface a Scene renders to.
type Canvas interface {
	// Fill covers the whole surface with a single color
	Fill(c color.RGBA)

	// Text draws a small debug-font string at pixel coordinates
	Text(s string, x, y int)

	// Size returns the surface dimensions in pixels
	Size() (width, height int)
}

// Config contains configuration for presentation backends
type Config struct {
	// Window configuration
	WindowTitle  string
	WindowWidth  int
	WindowHeight int
	Fullscreen   bool

	// Backend-specific options
	Headless bool
}

// BackendType represents different presentation backend types
type BackendType string

const (
	BackendEbitengine BackendType = "ebitengine"
	BackendHeadless   BackendType = "headless"
)

// CreateBackend creates a presentation backend of the specified type
func CreateBackend(backendType BackendType) (Backend, error) {
	switch backendType {
	case BackendEbitengine:
		return NewEbitengineBackend(), nil
	case BackendHeadless:
		return NewHeadlessBackend(), nil
	default:
		// Default to Ebitengine for GUI mode
		return NewEbitengineBackend(), nil
	}
}
