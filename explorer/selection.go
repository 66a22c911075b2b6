package explorer

import "mandelscope/viewport"

// Rect is a normalized pixel-space rectangle: X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Empty reports whether r has zero width or height.
func (r Rect) Empty() bool {
	return r.X0 == r.X1 || r.Y0 == r.Y1
}

func normalize(ax, ay, bx, by float64) Rect {
	return Rect{
		X0: min(ax, bx), X1: max(ax, bx),
		Y0: min(ay, by), Y1: max(ay, by),
	}
}

// Selection tracks a left-button drag across frames. The zero value is idle.
type Selection struct {
	dragging bool

	AnchorX, AnchorY   float64
	CurrentX, CurrentY float64
}

// Dragging reports whether the button was down at the last update.
func (s *Selection) Dragging() bool { return s.dragging }

// Rect returns the normalized drag rectangle.
func (s *Selection) Rect() Rect {
	return normalize(s.AnchorX, s.AnchorY, s.CurrentX, s.CurrentY)
}

// Update advances the machine by one frame with the sampled button state and
// cursor position; known is false when the cursor did not resolve, which
// counts as no movement. On the down-to-up transition it returns the final
// rectangle and release=true; the caller decides whether to apply it.
func (s *Selection) Update(down bool, x, y float64, known bool) (r Rect, release bool) {
	switch {
	case !s.dragging && down:
		if !known {
			return Rect{}, false
		}
		s.dragging = true
		s.AnchorX, s.AnchorY = x, y
		s.CurrentX, s.CurrentY = x, y
	case s.dragging && down:
		if known {
			s.CurrentX, s.CurrentY = x, y
		}
	case s.dragging && !down:
		r = s.Rect()
		*s = Selection{}
		return r, true
	}
	return Rect{}, false
}

// Zoom converts a released pixel rectangle into the viewport it covers under
// v. ok is false for a click without a drag, or when the result would have no
// area at the available precision.
func Zoom(r Rect, width, height int, v viewport.Viewport) (viewport.Viewport, bool) {
	if r.Empty() || width <= 0 || height <= 0 {
		return v, false
	}
	out := viewport.FromPixelRect(r.X0, r.Y0, r.X1, r.Y1, width, height, v)
	if !out.Valid() {
		return v, false
	}
	return out, true
}

// drawOutline draws r's border into buf, clipped to the buffer.
func drawOutline(buf []uint32, width, height int, r Rect, c uint32) {
	x0, y0, x1, y1 := int(r.X0), int(r.Y0), int(r.X1), int(r.Y1)
	set := func(x, y int) {
		if x >= 0 && x < width && y >= 0 && y < height {
			buf[y*width+x] = c
		}
	}
	for x := x0; x <= x1; x++ {
		set(x, y0)
		set(x, y1)
	}
	for y := y0; y <= y1; y++ {
		set(x0, y)
		set(x1, y)
	}
}
