package graphics

import (
	"fmt"
	"image/color"
	"time"
)

// HeadlessBackend implements the Backend interface for headless operation.
// It drives scenes with a synthetic frame clock, which is what the tests
// use to exercise full frame loops without a display.
type HeadlessBackend struct {
	initialized bool
	config      Config
}

// HeadlessWindow implements the Window interface for headless operation
type HeadlessWindow struct {
	title      string
	width      int
	height     int
	fullscreen bool

	// MaxFrames bounds Run when the scene never requests quit.
	MaxFrames int
	// FrameInterval is the synthetic time step between frames.
	FrameInterval time.Duration
	// Canvas records everything the scene drew.
	Canvas *RecordingCanvas

	frameCount int
}

// NewHeadlessBackend creates a new headless presentation backend
func NewHeadlessBackend() Backend {
	return &HeadlessBackend{}
}

// Initialize initializes the headless backend
func (b *HeadlessBackend) Initialize(config Config) error {
	if b.initialized {
		return fmt.Errorf("headless backend already initialized")
	}

	b.config = config
	b.initialized = true

	return nil
}

// CreateWindow creates a headless "window" (no OS window)
func (b *HeadlessBackend) CreateWindow(title string) (Window, error) {
	if !b.initialized {
		return nil, fmt.Errorf("backend not initialized")
	}

	width, height := b.config.WindowWidth, b.config.WindowHeight
	return &HeadlessWindow{
		title:         title,
		width:         width,
		height:        height,
		fullscreen:    b.config.Fullscreen,
		MaxFrames:     600,
		FrameInterval: 4 * time.Millisecond,
		Canvas:        NewRecordingCanvas(width, height),
	}, nil
}

// Cleanup releases all headless resources
func (b *HeadlessBackend) Cleanup() error {
	b.initialized = false
	return nil
}

// IsHeadless returns true (this is a headless backend)
func (b *HeadlessBackend) IsHeadless() bool {
	return true
}

// GetName returns the backend name
func (b *HeadlessBackend) GetName() string {
	return "Headless"
}

// HeadlessWindow implementation

// SetTitle sets the window title (for logging purposes)
func (w *HeadlessWindow) SetTitle(title string) {
	w.title = title
}

// GetSize returns window dimensions
func (w *HeadlessWindow) GetSize() (width, height int) {
	return w.width, w.height
}

// SetFullscreen records the requested display mode
func (w *HeadlessWindow) SetFullscreen(fullscreen bool) {
	w.fullscreen = fullscreen
}

// IsFullscreen reports the current display mode
func (w *HeadlessWindow) IsFullscreen() bool {
	return w.fullscreen
}

// Run advances the scene on a synthetic clock until it quits, fails, or
// MaxFrames is reached.
func (w *HeadlessWindow) Run(scene Scene) error {
	now := time.Now()
	for w.frameCount = 0; w.frameCount < w.MaxFrames; w.frameCount++ {
		if err := scene.Advance(now); err != nil {
			if err == ErrQuit {
				return nil
			}
			return err
		}
		w.Canvas.beginFrame()
		scene.Render(w.Canvas)
		now = now.Add(w.FrameInterval)
	}
	return nil
}

// Cleanup releases window resources
func (w *HeadlessWindow) Cleanup() error {
	return nil
}

// GetFrameCount returns the number of frames presented so far
func (w *HeadlessWindow) GetFrameCount() int {
	return w.frameCount
}

// TextDraw is one recorded Text call.
type TextDraw struct {
	Text string
	X, Y int
}

// RecordingCanvas is a Canvas that records draw calls instead of
// rasterizing them.
type RecordingCanvas struct {
	width  int
	height int

	// FillColor is the last Fill of the current frame.
	FillColor color.RGBA
	// Texts are the Text calls of the current frame, in draw order.
	Texts []TextDraw
	// Fills counts Fill calls across all frames.
	Fills int
}

// NewRecordingCanvas creates a recording canvas of the given size
func NewRecordingCanvas(width, height int) *RecordingCanvas {
	return &RecordingCanvas{width: width, height: height}
}

func (c *RecordingCanvas) beginFrame() {
	c.Texts = c.Texts[:0]
}

// Fill records a full-surface fill
func (c *RecordingCanvas) Fill(col color.RGBA) {
	c.FillColor = col
	c.Fills++
}

// Text records a text draw
func (c *RecordingCanvas) Text(s string, x, y int) {
	c.Texts = append(c.Texts, TextDraw{Text: s, X: x, Y: y})
}

// Size returns the surface dimensions
func (c *RecordingCanvas) Size() (width, height int) {
	return c.width, c.height
}
