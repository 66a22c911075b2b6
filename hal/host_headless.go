package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	HostConfig
	Hz    int
	Ticks uint64
	// Hold lists keys held down for the whole run.
	Hold KeySet
	// Frames, when set, replaces Hold with a per-tick scripted input.
	Frames func(tick uint64) InputState
}

// scriptedInput serves a fixed or scripted input state; it never resolves
// a cursor unless the script does.
type scriptedInput struct {
	tick   uint64
	hold   KeySet
	frames func(uint64) InputState
}

func (in *scriptedInput) Sample() InputState {
	if in.frames != nil {
		return in.frames(in.tick)
	}
	return InputState{Keys: in.hold, MouseX: OffBuffer, MouseY: OffBuffer}
}

// Headless is a HAL whose display is an in-memory framebuffer.
type Headless struct {
	*hostHAL
	in *scriptedInput
}

// NewHeadless returns a headless HAL without starting a loop. Step it by
// calling the step function directly; Advance moves the input script on.
func NewHeadless(cfg HeadlessConfig) *Headless {
	in := &scriptedInput{hold: cfg.Hold, frames: cfg.Frames}
	return &Headless{hostHAL: newHostHAL(cfg.HostConfig, in), in: in}
}

// Advance moves the scripted input to the next tick.
func (h *Headless) Advance() { h.in.tick++ }

// Title returns the status text last set by the explorer.
func (h *Headless) Title() string { return h.fb.Title() }

// Resize changes the surface size reported to the next frame.
func (h *Headless) Resize(width, height int) { h.fb.resize(width, height) }

// RunHeadless steps the app at cfg.Hz without opening a window. It returns
// nil after cfg.Ticks ticks or when the step function returns ErrQuit.
func RunHeadless(ctx context.Context, h *Headless, step func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	h.logger.Info("headless start", "hz", cfg.Hz, "ticks", cfg.Ticks)
	defer h.logger.Info("headless stop", "ticks", h.in.tick)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			h.Advance()
			if cfg.Ticks > 0 && h.in.tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
