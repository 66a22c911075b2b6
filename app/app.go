// Package app connects the explorer to a HAL: it samples input, steps the
// explorer one frame and presents the result.
package app

import (
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"mandelscope/explorer"
	"mandelscope/hal"
)

type Config struct {
	Explorer explorer.Config
}

// DefaultConfig returns the default explorer configuration.
func DefaultConfig() Config {
	return Config{Explorer: explorer.DefaultConfig()}
}

type App struct {
	h     hal.HAL
	state *explorer.State
	log   *slog.Logger

	frames  uint64
	renders uint64
}

// New validates cfg and prepares the first frame. Nothing is drawn until Step.
func New(h hal.HAL, cfg Config) (*App, error) {
	s, err := explorer.New(cfg.Explorer)
	if err != nil {
		return nil, err
	}
	a := &App{h: h, state: s, log: h.Logger()}
	if a.log == nil {
		a.log = slog.New(slog.DiscardHandler)
	}
	h.Display().SetTitle(s.Status())
	return a, nil
}

// State exposes the explorer state for inspection.
func (a *App) State() *explorer.State { return a.state }

// Step runs one frame. It returns hal.ErrQuit when the quit key is held.
func (a *App) Step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(a.log, r)
		}
	}()

	disp := a.h.Display()
	in := a.h.Input().Sample()
	w, h := disp.Size()

	f := explorer.Step(a.state, in, w, h)
	if f.Quit {
		a.log.Info("quit", "frames", a.frames, "renders", a.renders)
		return hal.ErrQuit
	}
	a.frames++
	if f.Rendered {
		a.renders++
	}
	if f.StatusChanged {
		disp.SetTitle(f.Status)
		a.log.Info("status", "iterations", a.state.Budget)
	}
	if err := disp.Present(f.Buf, f.Width, f.Height); err != nil {
		return fmt.Errorf("frame %d: %w", a.frames, err)
	}
	return nil
}

// ErrNoImage is returned by WriteSnapshot when the HAL cannot read back frames.
var ErrNoImage = errors.New("display does not support snapshots")

// WriteSnapshot encodes the last presented frame as PNG.
func (a *App) WriteSnapshot(path string) error {
	im, ok := a.h.(hal.Imager)
	if !ok {
		return ErrNoImage
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, im.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.log.Info("snapshot", "path", path, "view", a.state.View.String())
	return nil
}
