package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"mandelscope/app"
	"mandelscope/hal"
	"mandelscope/internal/buildinfo"
	"mandelscope/internal/logging"
)

func main() {
	var (
		headless bool
		term     bool
		hcfg     hal.HeadlessConfig
		hold     string
		out      string
		logLevel string
		logFile  string
		cfg      = app.DefaultConfig()
		host     hal.HostConfig
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&term, "term", false, "Render in the terminal.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Frame rate in headless and terminal mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.IntVar(&host.Width, "width", hal.DefaultWidth, "Initial buffer width.")
	flag.IntVar(&host.Height, "height", hal.DefaultHeight, "Initial buffer height.")
	flag.UintVar(&cfg.Explorer.Budget, "iterations", cfg.Explorer.Budget, "Initial iteration budget.")
	flag.IntVar(&cfg.Explorer.Workers, "workers", 0, "Render workers (0 = GOMAXPROCS).")
	flag.BoolVar(&cfg.Explorer.HUD, "hud", false, "Draw the status overlay (toggle with H).")
	flag.StringVar(&hold, "hold", "", "Keys held for the whole headless run, e.g. zoom-in,pan-left.")
	flag.StringVar(&out, "out", "", "Write the last headless frame to this PNG file.")
	flag.StringVar(&logLevel, "log-level", "info", "debug|info|warn|error.")
	flag.StringVar(&logFile, "log-file", "", "Log to this file instead of stdout (terminal mode discards logs without it).")
	flag.Parse()

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		fatalf("%v", err)
	}
	var w io.Writer = os.Stdout
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatalf("log file: %v", err)
		}
		defer f.Close()
		w = f
	case term:
		w = io.Discard
	}
	logger := logging.New(w, level).With("build", buildinfo.Short())
	logging.SetLogger(logger)
	host.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case headless:
		if hcfg.Hold, err = hal.ParseKeySet(hold); err != nil {
			fatalf("hold: %v", err)
		}
		hcfg.HostConfig = host
		err = runHeadless(ctx, hcfg, cfg, out)
	case term:
		err = hal.RunTerminal(ctx, hal.TermConfig{HostConfig: host, Hz: hcfg.Hz}, newStep(cfg))
	default:
		err = hal.RunWindow(hal.WindowConfig{
			HostConfig: host,
			Title:      "Mandelbrot (" + buildinfo.Short() + ")",
		}, newStep(cfg))
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		stop()
		logger.Error("exit", slog.Any("err", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runHeadless(ctx context.Context, hcfg hal.HeadlessConfig, cfg app.Config, out string) error {
	h := hal.NewHeadless(hcfg)
	a, err := app.New(h, cfg)
	if err != nil {
		return err
	}
	if err := hal.RunHeadless(ctx, h, a.Step, hcfg); err != nil {
		return err
	}
	if out != "" {
		return a.WriteSnapshot(out)
	}
	return nil
}

// newStep adapts app.New to the runners that create their own HAL. A bad
// config surfaces as the first step's error.
func newStep(cfg app.Config) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		a, err := app.New(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		return a.Step
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
