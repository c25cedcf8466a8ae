// Package main implements the reaction time tester executable.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/lmittmann/tint"
	flag "github.com/spf13/pflag"

	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/app"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/audio"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/version"
)

const (
	toolName    = "reactiontest"
	windowTitle = "Reaction Tester"
)

func main() {
	var (
		configFile  = flag.String("config", "", "path to configuration file")
		windowed    = flag.Bool("windowed", false, "start windowed instead of exclusive fullscreen")
		headless    = flag.Bool("headless", false, "run without a display (for automation)")
		debug       = flag.Bool("debug", false, "enable debug logging")
		showVersion = flag.Bool("version", false, "show version information")
		help        = flag.Bool("help", false, "show help message")
	)
	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	if *showVersion {
		if *debug {
			version.PrintBuildInfo(toolName)
		} else {
			fmt.Println(version.GetDetailedVersion(toolName))
		}
		os.Exit(0)
	}

	level := new(slog.LevelVar)
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	setupGracefulShutdown(logger)

	configPath := *configFile
	if configPath == "" {
		configPath = app.GetDefaultConfigPath(toolName)
	}

	application, err := app.NewApplicationWithOptions(windowTitle, configPath, logger, app.Options{
		Headless:      *headless,
		ForceWindowed: *windowed,
	})
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Cleanup(); err != nil {
			logger.Error("cleanup failed", "error", err)
		}
	}()

	if *debug {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(application.GetConfig().SlogLevel())
	}

	// A failed audio setup leaves the visual test fully usable, so it is
	// reported but never fatal.
	beeper, err := audio.NewBeeper(eaudio.NewContext(audio.SampleRate))
	if err != nil {
		logger.Warn("audio stimulus unavailable", "error", err)
	} else {
		logger.Info("audio stimulus ready",
			"low_latency", beeper.Mode() == audio.ModeLowLatency,
			"buffer", beeper.Latency())
	}

	logger.Info("starting reaction tester", "version", version.GetVersion())

	scene := app.NewReactionScene(application, beeper)
	if err := application.Run(scene); err != nil {
		logger.Error("test loop failed", "error", err)
		os.Exit(1)
	}

	logger.Info("shut down cleanly")
}

// setupGracefulShutdown sets up signal handling for graceful shutdown
func setupGracefulShutdown(logger *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("interrupt received, shutting down")
		os.Exit(0)
	}()
}

func printUsage() {
	fmt.Println("reactiontest - visual and audio reaction time tester")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  After a random 1.5-5 second delay the screen flashes white (or a")
	fmt.Println("  tone plays in audio mode). Click as fast as you can; the last 25")
	fmt.Println("  reaction times are kept with average and best.")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  reactiontest [options]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("CONTROLS:")
	fmt.Println("  Left/Right/Middle click - React / retry")
	fmt.Println("  SPACE                   - Clear results")
	fmt.Println("  F1                      - Toggle visual / audio stimulus")
	fmt.Println("  F10                     - Toggle exclusive fullscreen / windowed")
	fmt.Println("  ESC                     - Quit")
	fmt.Println()
	fmt.Println("CONFIGURATION:")
	fmt.Println("  Config file: ./config/reactiontest.toml (written on first run)")
}
