package explorer

import (
	"log/slog"

	"mandelscope/hal"
	"mandelscope/internal/logging"
	"mandelscope/mandel"
	"mandelscope/viewport"
)

var panKeys = [...]struct {
	key hal.Key
	dir viewport.Direction
}{
	{hal.KeyPanLeft, viewport.Left},
	{hal.KeyPanRight, viewport.Right},
	{hal.KeyPanUp, viewport.Up},
	{hal.KeyPanDown, viewport.Down},
}

// Frame is the output of one Step.
type Frame struct {
	// Buf is width*height pixels ready to present. It is owned by the State
	// and valid until the next Step.
	Buf           []uint32
	Width, Height int

	Rendered      bool
	Quit          bool
	Status        string
	StatusChanged bool // Status differs from the previous frame
}

// Step runs one frame: it applies the sampled input to s, re-renders when
// the image is stale, and returns the buffer to present. width and height
// are the current surface dimensions.
//
// Held keys act on every frame they are down.
func Step(s *State, in hal.InputState, width, height int) Frame {
	if in.Keys.Has(hal.KeyQuit) {
		return Frame{Quit: true, Status: s.status}
	}
	log := logging.Logger()
	prevStatus := s.status

	if width != s.committedW || height != s.committedH {
		s.Dirty = true
	}

	preview := false
	r, released := s.sel.Update(in.MouseDown, in.MouseX, in.MouseY, in.MouseKnown())
	switch {
	case released:
		if v, ok := Zoom(r, width, height, s.View); ok {
			s.View = v
			s.Dirty = true
			log.Debug("selection", slog.String("view", v.String()))
		} else {
			log.Debug("selection rejected", slog.Float64("x", r.X0), slog.Float64("y", r.Y0))
		}
	case s.sel.Dragging():
		preview = true
	}

	keys := in.Keys
	if keys.Has(hal.KeyReset) {
		s.View = viewport.Reset(s.View)
		s.Dirty = true
	}
	step := BudgetStep
	if keys.Has(hal.KeyFast) {
		step = BudgetStepFast
	}
	if keys.Has(hal.KeyIterUp) {
		s.setBudget(Increase(s.Budget, step))
	}
	if keys.Has(hal.KeyIterDown) {
		s.setBudget(Decrease(s.Budget, step))
	}
	if keys.Has(hal.KeyZoomIn) {
		s.View = viewport.Zoom(s.View, s.zoom)
		s.Dirty = true
	}
	if keys.Has(hal.KeyZoomOut) {
		s.View = viewport.Zoom(s.View, 1/s.zoom)
		s.Dirty = true
	}
	for _, p := range panKeys {
		if keys.Has(p.key) {
			s.View = viewport.Pan(s.View, p.dir, s.pan)
			s.Dirty = true
		}
	}
	if keys.Has(hal.KeyHUD) {
		s.HUD = !s.HUD
	}

	f := Frame{Status: s.status, StatusChanged: s.status != prevStatus}
	if s.Dirty {
		s.committed = s.renderer.Render(s.committed, width, height, s.View, s.Budget)
		s.committedW, s.committedH = width, height
		s.Dirty = false
		f.Rendered = true
	}
	f.Width, f.Height = s.committedW, s.committedH
	f.Buf = s.compose(preview)
	return f
}

func (s *State) setBudget(n uint) {
	if n != s.Budget {
		logging.Logger().Debug("iterations", slog.Uint64("budget", uint64(n)))
	}
	s.Budget = n
	s.status = Status(n)
	s.Dirty = true
}

// compose returns the committed image, or a working copy of it with the drag
// outline and HUD drawn on top. The committed buffer is never written.
func (s *State) compose(preview bool) []uint32 {
	if !preview && !s.HUD {
		return s.committed
	}
	w, h := s.committedW, s.committedH
	s.working = mandel.Resize(s.working, len(s.committed))
	copy(s.working, s.committed)
	if preview {
		drawOutline(s.working, w, h, s.sel.Rect(), mandel.Outline)
	}
	if s.HUD {
		drawHUD(s.working, w, h, hudLines(s.View, s.Budget))
	}
	return s.working
}
