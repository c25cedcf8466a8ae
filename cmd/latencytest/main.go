// Package main implements the input-to-photon latency tester executable.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	flag "github.com/spf13/pflag"

	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/app"
	"github.com/sirbardo/latency-and-reaction-tester-dx11/internal/version"
)

const (
	toolName    = "latencytest"
	windowTitle = "Latency Tester"
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

	logger.Info("starting latency tester", "version", version.GetVersion())

	scene := app.NewLatencyScene(application)
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
	fmt.Println("latencytest - input-to-photon display latency tester")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Flashes the screen white the moment an input event arrives, so an")
	fmt.Println("  external high-speed camera or photodiode can measure the full")
	fmt.Println("  click-to-photon latency of the system.")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  latencytest [options]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("CONTROLS:")
	fmt.Println("  ESC     - Quit")
	fmt.Println("  F1      - Toggle mouse button capture")
	fmt.Println("  F2      - Toggle keyboard capture")
	fmt.Println("  F3      - Toggle mouse movement capture")
	fmt.Println("  F4      - Toggle on-screen event log")
	fmt.Println("  F5/F6   - Increase/decrease flash duration")
	fmt.Println("  F7      - Toggle release (up) event capture")
	fmt.Println("  F8      - Toggle mouse polling rate counter")
	fmt.Println("  F9      - Toggle overlay (off = minimal render path)")
	fmt.Println("  F10     - Toggle exclusive fullscreen / windowed")
	fmt.Println()
	fmt.Println("CONFIGURATION:")
	fmt.Println("  Config file: ./config/latencytest.toml (written on first run)")
}
