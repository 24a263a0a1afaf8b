// Package main is the entry point for the pico editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/furkanonder/pico/internal/app"
	"github.com/furkanonder/pico/internal/config"
	"github.com/furkanonder/pico/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, cleanup := parseFlags()
	defer cleanup()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: standard input is not a terminal")
		return 1
	}

	// Seed the fallback size from the real terminal when possible.
	if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 && rows > 1 {
		opts.Config.FallbackCols = cols
		opts.Config.FallbackRows = rows
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	application.SetBackend(terminal)

	// Restore the terminal on SIGINT/SIGTERM.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
		os.Exit(1)
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		application.Shutdown()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, func()) {
	cfg := config.Default()

	var (
		logPath     string
		logLevel    string
		showVersion bool
	)

	flag.IntVar(&cfg.ScrollMargin, "margin", cfg.ScrollMargin, "Columns reserved before horizontal scrolling")
	flag.DurationVar(&cfg.PollTimeout, "poll", cfg.PollTimeout, "Input poll timeout")
	flag.StringVar(&logPath, "log", "", "Write diagnostics to this file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pico - a minimal terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pico [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-S  save\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-Q  quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("pico %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	opts := app.Options{
		Path:   flag.Arg(0),
		Config: cfg,
	}

	cleanup := func() {}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
			os.Exit(1)
		}
		opts.Logger = app.NewLogger(f, app.ParseLogLevel(logLevel))
		cleanup = func() { f.Close() }
	}

	return opts, cleanup
}
