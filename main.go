// Package main provides the entry point for the Buds Manager
// application. Buds Manager is a GTK4-based desktop companion for
// wireless earbud accessories on Linux: a system tray battery
// indicator plus a window with device details and settings.
//
// Features:
//   - Tray icon showing live battery state
//   - Listening mode and conversation awareness controls
//   - Device detail view with serials and firmware versions
//   - Battery history recording
//   - Command-line interface for scripting
//
// Usage:
//
//	buds-manager [options]
//
// Environment:
//
//	The application expects the protocol daemon to publish device
//	events; without it the UI runs with tray and window only.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dcampos/buds-manager/bluez"
	"github.com/dcampos/buds-manager/bridge"
	"github.com/dcampos/buds-manager/cli"
	"github.com/dcampos/buds-manager/common"
	"github.com/dcampos/buds-manager/config"
	"github.com/dcampos/buds-manager/history"
	"github.com/dcampos/buds-manager/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// GUI/General flags
	showVersion    = flag.Bool("version", false, "Show version and exit")
	verbose        = flag.Bool("verbose", false, "Enable verbose logging")
	startMinimized = flag.Bool("minimized", false, "Start in the tray without opening the window")
	showHelp       = flag.Bool("help", false, "Show help message")

	// CLI flags
	listDevices = flag.Bool("devices", false, "List registered devices")
	showStatus  = flag.Bool("status", false, "Show connection and battery status")
)

func main() {
	flag.Parse()

	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load configuration: %v\n", err)
		cfg = config.DefaultConfig()
	}
	if *startMinimized {
		cfg.StartMinimized = true
	}

	logLevel := common.ParseLogLevel(cfg.LogLevel)
	if *verbose {
		logLevel = common.LevelDebug
	}
	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  true,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	if *listDevices || *showStatus {
		runCLI()
		return
	}

	common.LogInfo("Starting %s v%s (session %s)", common.AppName, appVersion, common.SessionID())

	// Event pipeline: the BlueZ monitor produces connectivity events,
	// the UI consumes them through the bridge; tray commands flow back
	// through the command queue to the protocol daemon.
	eventBridge := bridge.NewEventBridge(32)
	commands := bridge.NewCommandQueue(16)

	monitor, err := bluez.NewMonitor(eventBridge.Producer())
	if err != nil {
		common.LogWarn("Bluetooth monitoring unavailable: %v", err)
	} else {
		monitor.Start()
		defer monitor.Stop()
	}

	sink := bluez.NewCommandSink()
	go sink.Run(commands)

	store, err := history.OpenDefault()
	if err != nil {
		common.LogWarn("Battery history unavailable: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	setupSignalHandler(eventBridge)

	app := ui.NewApplication(cfg, config.DefaultSettingsStore(), eventBridge, commands, store, appVersion)
	exitCode := app.Run([]string{os.Args[0]})

	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	commands.Close()
	os.Exit(exitCode)
}

// runCLI handles command-line interface operations.
func runCLI() {
	cliApp := cli.New()
	defer cliApp.Close()

	var cliErr error
	switch {
	case *listDevices:
		cliErr = cliApp.ListDevices()
	case *showStatus:
		cliErr = cliApp.Status()
	}

	if cliErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
		os.Exit(1)
	}
}

// setupSignalHandler closes the event bridge on SIGINT/SIGTERM so the
// UI loop winds down to its NoOp idle state before the process exits.
func setupSignalHandler(eventBridge *bridge.EventBridge) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, shutting down", sig)
		eventBridge.Close()
		common.CloseLogger()
		os.Exit(0)
	}()
}
