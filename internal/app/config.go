// Package app provides configuration management and the shared
// application shell for the latency and reaction testers.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/input"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/session"
)

// Config holds all application configuration
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Latency  LatencyConfig  `toml:"latency"`
	Reaction ReactionConfig `toml:"reaction"`
	Log      LogConfig      `toml:"log"`

	// Internal state
	configPath string
	loaded     bool
}

// WindowConfig contains window-related configuration
type WindowConfig struct {
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Fullscreen bool `toml:"fullscreen"`
}

// LatencyConfig contains latency tester startup state
type LatencyConfig struct {
	FlashMS      int  `toml:"flash_ms"`
	Overlay      bool `toml:"overlay"`
	EventLog     bool `toml:"event_log"`
	HzCounter    bool `toml:"hz_counter"`
	MouseButtons bool `toml:"mouse_buttons"`
	Keyboard     bool `toml:"keyboard"`
	MouseDelta   bool `toml:"mouse_delta"`
	UpEvents     bool `toml:"up_events"`
}

// ReactionConfig contains reaction tester startup state
type ReactionConfig struct {
	Audio bool `toml:"audio"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: true,
		},
		Latency: LatencyConfig{
			FlashMS:      int(session.DefaultFlashDuration.Milliseconds()),
			Overlay:      true,
			EventLog:     false,
			HzCounter:    false,
			MouseButtons: true,
			Keyboard:     true,
			MouseDelta:   true,
			UpEvents:     true,
		},
		Reaction: ReactionConfig{
			Audio: false,
		},
		Log: LogConfig{
			Level: "info",
		},
		loaded: false,
	}
}

// LoadFromFile loads configuration from a TOML file. A missing file is
// not an error: defaults are written to the path for the next run.
func (c *Config) LoadFromFile(path string) error {
	c.configPath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c.SaveToFile(path)
	}

	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("failed to parse config file: %v", err)
	}

	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}

	c.loaded = true
	return nil
}

// SaveToFile saves configuration to a TOML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}

	c.configPath = path
	return nil
}

// Save saves the configuration to the current config file
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("no config file path set")
	}

	return c.SaveToFile(c.configPath)
}

// validate validates the configuration values
func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window dimensions: %dx%d", c.Window.Width, c.Window.Height)
	}

	minFlash := int(session.MinFlashDuration.Milliseconds())
	if c.Latency.FlashMS < minFlash {
		c.Latency.FlashMS = minFlash
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Log.Level = "info"
	}

	return nil
}

// FlashDuration returns the configured flash duration
func (c *Config) FlashDuration() time.Duration {
	return time.Duration(c.Latency.FlashMS) * time.Millisecond
}

// Toggles returns the configured input capture filters
func (c *Config) Toggles() input.Toggles {
	return input.Toggles{
		MouseButtons: c.Latency.MouseButtons,
		Keyboard:     c.Latency.Keyboard,
		MouseDelta:   c.Latency.MouseDelta,
		UpEvents:     c.Latency.UpEvents,
	}
}

// SlogLevel maps the configured log level to slog
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsLoaded returns whether the configuration was loaded from file
func (c *Config) IsLoaded() bool {
	return c.loaded
}

// GetConfigPath returns the path to the config file
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// GetDefaultConfigPath returns the default configuration file path for a tool
func GetDefaultConfigPath(tool string) string {
	return filepath.Join("./config", tool+".toml")
}
