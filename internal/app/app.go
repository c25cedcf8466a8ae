package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/graphics"
)

// Application owns the presentation backend and window shared by both
// testers.
type Application struct {
	config  *Config
	logger  *slog.Logger
	backend graphics.Backend
	window  graphics.Window

	headless    bool
	initialized bool
}

// ApplicationError represents application-specific errors
type ApplicationError struct {
	Component string
	Operation string
	Err       error
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("application %s error during %s: %v", e.Component, e.Operation, e.Err)
}

func (e *ApplicationError) Unwrap() error {
	return e.Err
}

// Options adjusts application startup beyond what the config file says.
type Options struct {
	// Headless selects the displayless backend.
	Headless bool
	// ForceWindowed overrides the configured fullscreen setting.
	ForceWindowed bool
}

// NewApplication creates the application shell for the named tool
func NewApplication(title, configPath string, logger *slog.Logger) (*Application, error) {
	return NewApplicationWithOptions(title, configPath, logger, Options{})
}

// NewApplicationWithOptions creates the application shell with startup overrides
func NewApplicationWithOptions(title, configPath string, logger *slog.Logger, opts Options) (*Application, error) {
	app := &Application{
		config:   NewConfig(),
		logger:   logger,
		headless: opts.Headless,
	}

	if configPath != "" {
		if err := app.config.LoadFromFile(configPath); err != nil {
			logger.Warn("could not load config, using defaults",
				"path", configPath, "error", err)
		}
	}

	if opts.ForceWindowed {
		app.config.Window.Fullscreen = false
	}

	if err := app.initializeBackend(title, opts.Headless); err != nil {
		return nil, &ApplicationError{
			Component: "graphics",
			Operation: "backend setup",
			Err:       err,
		}
	}

	app.initialized = true
	return app, nil
}

// initializeBackend initializes the presentation backend, falling back
// to headless when no display is available.
func (app *Application) initializeBackend(title string, headless bool) error {
	backendType := graphics.BackendEbitengine
	if headless {
		backendType = graphics.BackendHeadless
	}

	backend, err := graphics.CreateBackend(backendType)
	if err != nil {
		return fmt.Errorf("failed to create graphics backend: %v", err)
	}

	config := graphics.Config{
		WindowTitle:  title,
		WindowWidth:  app.config.Window.Width,
		WindowHeight: app.config.Window.Height,
		Fullscreen:   app.config.Window.Fullscreen,
		Headless:     headless,
	}

	if err := backend.Initialize(config); err != nil {
		if backendType != graphics.BackendEbitengine {
			return fmt.Errorf("failed to initialize graphics backend: %v", err)
		}
		app.logger.Warn("display backend failed, falling back to headless", "error", err)
		backend, err = graphics.CreateBackend(graphics.BackendHeadless)
		if err != nil {
			return fmt.Errorf("failed to create fallback headless backend: %v", err)
		}
		config.Headless = true
		if err := backend.Initialize(config); err != nil {
			return fmt.Errorf("failed to initialize fallback headless backend: %v", err)
		}
	}
	app.backend = backend

	window, err := backend.CreateWindow(title)
	if err != nil {
		return fmt.Errorf("failed to create window: %v", err)
	}
	app.window = window

	app.logger.Info("presentation backend ready",
		"backend", backend.GetName(),
		"fullscreen", app.config.Window.Fullscreen,
		"windowed_size", fmt.Sprintf("%dx%d", app.config.Window.Width, app.config.Window.Height))

	return nil
}

// Run drives the scene on the application window until it exits
func (app *Application) Run(scene graphics.Scene) error {
	if !app.initialized {
		return errors.New("application not initialized")
	}

	return app.window.Run(scene)
}

// Window returns the application window
func (app *Application) Window() graphics.Window {
	return app.window
}

// GetConfig returns the application configuration
func (app *Application) GetConfig() *Config {
	return app.config
}

// Logger returns the application logger
func (app *Application) Logger() *slog.Logger {
	return app.logger
}

// IsHeadless reports whether the headless backend is active
func (app *Application) IsHeadless() bool {
	return app.backend != nil && app.backend.IsHeadless()
}

// Cleanup releases all resources and shuts down the application
func (app *Application) Cleanup() error {
	var lastErr error

	if app.window != nil {
		if err := app.window.Cleanup(); err != nil {
			lastErr = err
			app.logger.Error("window cleanup failed", "error", err)
		}
	}

	if app.backend != nil {
		if err := app.backend.Cleanup(); err != nil {
			lastErr = err
			app.logger.Error("graphics backend cleanup failed", "error", err)
		}
	}

	app.initialized = false
	return lastErr
}
