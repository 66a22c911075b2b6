package viewport

// Direction selects the axis and sense of a pan.
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Zoom keeps the center of v and scales its half-extents by factor.
// factor < 1 zooms in, factor > 1 zooms out. A non-positive factor
// would invert or collapse the rectangle, so v is returned unchanged.
func Zoom(v Viewport, factor float64) Viewport {
	if !(factor > 0) {
		return v
	}
	cx, cy := v.Center()
	ex := (v.XMax - v.XMin) / 2 * factor
	ey := (v.YMax - v.YMin) / 2 * factor
	out := Viewport{XMin: cx - ex, XMax: cx + ex, YMin: cy - ey, YMax: cy + ey}
	if !out.Valid() {
		return v
	}
	return out
}

// ZoomIn applies one zoom-in step.
func ZoomIn(v Viewport) Viewport { return Zoom(v, ZoomFactor) }

// ZoomOut applies one zoom-out step, the inverse of ZoomIn.
func ZoomOut(v Viewport) Viewport { return Zoom(v, 1/ZoomFactor) }

// Pan moves v by fraction of its extent along the axis of dir.
// Up increases y. Extents are unchanged.
func Pan(v Viewport, dir Direction, fraction float64) Viewport {
	switch dir {
	case Left, Right:
		d := (v.XMax - v.XMin) * fraction
		if dir == Left {
			d = -d
		}
		v.XMin += d
		v.XMax += d
	case Up, Down:
		d := (v.YMax - v.YMin) * fraction
		if dir == Down {
			d = -d
		}
		v.YMin += d
		v.YMax += d
	}
	return v
}

// Reset returns the default view regardless of v.
func Reset(Viewport) Viewport { return Default() }
