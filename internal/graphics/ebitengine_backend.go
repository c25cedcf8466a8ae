//go:build !headless
// +build !headless

package graphics

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// EbitengineBackend implements the Backend interface using Ebitengine
type EbitengineBackend struct {
	initialized bool
	config      Config
}

// EbitengineWindow implements the Window interface for Ebitengine
type EbitengineWindow struct {
	backend    *EbitengineBackend
	title      string
	fullscreen bool
}

// NewEbitengineBackend creates a new Ebitengine presentation backend
func NewEbitengineBackend() Backend {
	return &EbitengineBackend{}
}

// Initialize initializes the Ebitengine backend
func (b *EbitengineBackend) Initialize(config Config) error {
	if b.initialized {
		return fmt.Errorf("Ebitengine backend already initialized")
	}

	b.config = config
	b.initialized = true

	return nil
}

// CreateWindow creates an Ebitengine window configured for minimal
// presentation latency: vsync off, one state update per presented frame,
// exclusive fullscreen unless windowed mode was requested.
func (b *EbitengineBackend) CreateWindow(title string) (Window, error) {
	if !b.initialized {
		return nil, fmt.Errorf("backend not initialized")
	}

	if b.config.Headless {
		return nil, fmt.Errorf("cannot create window in headless mode")
	}

	window := &EbitengineWindow{
		backend:    b,
		title:      title,
		fullscreen: b.config.Fullscreen,
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.config.WindowWidth, b.config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Uncapped presentation. Waiting for vblank would add up to a full
	// refresh interval to every measurement.
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetScreenClearedEveryFrame(false)

	if b.config.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return window, nil
}

// Cleanup releases all Ebitengine resources
func (b *EbitengineBackend) Cleanup() error {
	b.initialized = false
	return nil
}

// IsHeadless returns true if running in headless mode
func (b *EbitengineBackend) IsHeadless() bool {
	return b.config.Headless
}

// GetName returns the backend name
func (b *EbitengineBackend) GetName() string {
	return "Ebitengine"
}

// EbitengineWindow implementation

// SetTitle sets the window title
func (w *EbitengineWindow) SetTitle(title string) {
	w.title = title
	ebiten.SetWindowTitle(title)
}

// GetSize returns window dimensions
func (w *EbitengineWindow) GetSize() (width, height int) {
	if w.fullscreen {
		return ebiten.Monitor().Size()
	}
	return ebiten.WindowSize()
}

// SetFullscreen switches display mode. Leaving fullscreen restores the
// configured windowed size.
func (w *EbitengineWindow) SetFullscreen(fullscreen bool) {
	w.fullscreen = fullscreen
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		ebiten.SetWindowSize(w.backend.config.WindowWidth, w.backend.config.WindowHeight)
	}
}

// IsFullscreen reports the current display mode
func (w *EbitengineWindow) IsFullscreen() bool {
	return w.fullscreen
}

// Run drives the scene through Ebitengine's game loop
func (w *EbitengineWindow) Run(scene Scene) error {
	err := ebiten.RunGame(&ebitenGame{scene: scene})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Cleanup releases window resources
func (w *EbitengineWindow) Cleanup() error {
	return nil
}

// ebitenGame adapts a Scene to ebiten.Game.
type ebitenGame struct {
	scene  Scene
	width  int
	height int
}

// Update implements ebiten.Game.Update
func (g *ebitenGame) Update() error {
	err := g.scene.Advance(time.Now())
	if errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.Draw
func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.scene.Render(&ebitenCanvas{screen: screen})
}

// Layout implements ebiten.Game.Layout
func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.width = outsideWidth
	g.height = outsideHeight
	return outsideWidth, outsideHeight
}

// ebitenCanvas adapts an ebiten.Image to the Canvas interface.
type ebitenCanvas struct {
	screen *ebiten.Image
}

func (c *ebitenCanvas) Fill(col color.RGBA) {
	c.screen.Fill(col)
}

func (c *ebitenCanvas) Text(s string, x, y int) {
	ebitenutil.DebugPrintAt(c.screen, s, x, y)
}

func (c *ebitenCanvas) Size() (width, height int) {
	bounds := c.screen.Bounds()
	return bounds.Dx(), bounds.Dy()
}
