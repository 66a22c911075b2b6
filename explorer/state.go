// Package explorer is the per-frame navigation loop of the Mandelbrot
// explorer: it turns sampled input into viewport and iteration changes,
// tracks drag selections, and re-renders when the image is stale.
package explorer

import (
	"errors"
	"fmt"

	"mandelscope/mandel"
	"mandelscope/viewport"
)

// ErrInvalidConfig is wrapped by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the initial explorer state.
type Config struct {
	View        viewport.Viewport
	Budget      uint
	Workers     int
	ZoomFactor  float64
	PanFraction float64
	HUD         bool
}

// DefaultConfig returns the canonical view at the default budget.
func DefaultConfig() Config {
	return Config{
		View:        viewport.Default(),
		Budget:      DefaultBudget,
		ZoomFactor:  viewport.ZoomFactor,
		PanFraction: viewport.PanFraction,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case !c.View.Valid():
		return fmt.Errorf("%w: empty viewport %v", ErrInvalidConfig, c.View)
	case c.Budget < 1:
		return fmt.Errorf("%w: iteration budget must be at least 1", ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, c.Workers)
	case !(c.ZoomFactor > 0 && c.ZoomFactor < 1):
		return fmt.Errorf("%w: zoom factor %v outside (0, 1)", ErrInvalidConfig, c.ZoomFactor)
	case !(c.PanFraction > 0):
		return fmt.Errorf("%w: pan fraction %v must be positive", ErrInvalidConfig, c.PanFraction)
	}
	return nil
}

// State is everything the frame loop mutates. Only Step changes it.
type State struct {
	View   viewport.Viewport
	Budget uint
	// Dirty marks the committed buffer as stale.
	Dirty bool
	HUD   bool

	sel Selection

	// committed is the last full render, at committedW x committedH.
	committed  []uint32
	committedW int
	committedH int
	// working holds the committed image with a drag preview or HUD on top.
	working []uint32

	status string

	renderer mandel.Renderer
	zoom     float64
	pan      float64
}

// New returns a dirty state so the first Step renders.
func New(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &State{
		View:     cfg.View,
		Budget:   cfg.Budget,
		Dirty:    true,
		HUD:      cfg.HUD,
		renderer: mandel.Renderer{Workers: cfg.Workers},
		zoom:     cfg.ZoomFactor,
		pan:      cfg.PanFraction,
	}
	s.status = Status(s.Budget)
	return s, nil
}

// Status is the window title text for budget n.
func Status(n uint) string {
	return fmt.Sprintf("Mandelbrot - ESC: EXIT - I/D: ITERATIONS=%d - Arrows: MOVEMENT - +/-: ZOOM", n)
}

// Status returns the current status text.
func (s *State) Status() string { return s.status }

// Selection returns the drag state.
func (s *State) Selection() Selection { return s.sel }

// Committed returns the last full render and its dimensions. The slice is
// owned by s and is replaced by the next render.
func (s *State) Committed() ([]uint32, int, int) {
	return s.committed, s.committedW, s.committedH
}
