package viewport

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= eps*math.Max(1, math.Abs(b)) }

func nearView(a, b Viewport) bool {
	return near(a.XMin, b.XMin) && near(a.XMax, b.XMax) && near(a.YMin, b.YMin) && near(a.YMax, b.YMax)
}

func TestPixelToPlaneXBoundsAndMonotone(t *testing.T) {
	v := Viewport{XMin: -2.5, XMax: 0.75, YMin: -1, YMax: 1}
	const width = 37

	if got := PixelToPlaneX(0, width, v); got != v.XMin {
		t.Fatalf("x(0)=%v want %v", got, v.XMin)
	}
	if got := PixelToPlaneX(width, width, v); !near(got, v.XMax) {
		t.Fatalf("x(width)=%v want %v", got, v.XMax)
	}

	prev := math.Inf(-1)
	for px := 0; px < width; px++ {
		x := PixelToPlaneX(float64(px), width, v)
		if x < prev {
			t.Fatalf("x(%d)=%v < x(%d)=%v", px, x, px-1, prev)
		}
		prev = x
	}
}

func TestPixelToPlaneYInversion(t *testing.T) {
	for _, v := range []Viewport{
		Default(),
		{XMin: 0, XMax: 1, YMin: 3, YMax: 7},
		{XMin: -1e-6, XMax: 1e-6, YMin: -0.5, YMax: -0.25},
	} {
		for _, height := range []int{1, 2, 360, 1081} {
			if got := PixelToPlaneY(0, height, v); !near(got, v.YMax) {
				t.Fatalf("%v h=%d: y(0)=%v want YMax=%v", v, height, got, v.YMax)
			}
			if got := PixelToPlaneY(float64(height), height, v); !near(got, v.YMin) {
				t.Fatalf("%v h=%d: y(height)=%v want YMin=%v", v, height, got, v.YMin)
			}
		}
	}

	v := Default()
	if top, bottom := PixelToPlaneY(10, 100, v), PixelToPlaneY(90, 100, v); !(top > bottom) {
		t.Fatalf("row 10 maps to %v, row 90 to %v; upper rows must have larger y", top, bottom)
	}
}

func TestPlaneToPixelInverse(t *testing.T) {
	v := Viewport{XMin: -0.8, XMax: -0.7, YMin: 0.1, YMax: 0.15}
	for _, p := range [][2]float64{{0, 0}, {12.5, 7}, {639, 359}, {320, 180}} {
		x := PixelToPlaneX(p[0], 640, v)
		y := PixelToPlaneY(p[1], 360, v)
		if got := PlaneToPixelX(x, 640, v); !near(got, p[0]) {
			t.Fatalf("px round trip %v -> %v", p[0], got)
		}
		if got := PlaneToPixelY(y, 360, v); !near(got, p[1]) {
			t.Fatalf("py round trip %v -> %v", p[1], got)
		}
	}
}

func TestFromPixelRectKeepsOrientation(t *testing.T) {
	v := Default()
	got := FromPixelRect(10, 10, 50, 50, 100, 100, v)
	if !got.Valid() {
		t.Fatalf("converted rect invalid: %v", got)
	}
	want := Viewport{XMin: -1.7, XMax: -0.5, YMin: 0, YMax: 0.8}
	if !nearView(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestZoomRoundTrip(t *testing.T) {
	views := []Viewport{
		Default(),
		{XMin: -0.75, XMax: -0.74, YMin: 0.1, YMax: 0.11},
		{XMin: 100, XMax: 300, YMin: -5, YMax: 9},
	}
	for _, v := range views {
		for _, f := range []float64{0.8, 0.5, 2, 1, 1e-3, -3} {
			got := Zoom(Zoom(v, f), 1/f)
			if !nearView(got, v) {
				t.Fatalf("zoom %v by %v and back: %v", v, f, got)
			}
		}
	}
}

func TestZoomKeepsCenter(t *testing.T) {
	v := Default()
	cx, cy := v.Center()
	in := ZoomIn(v)
	gx, gy := in.Center()
	if !near(gx, cx) || !near(gy, cy) {
		t.Fatalf("center moved: (%v,%v) -> (%v,%v)", cx, cy, gx, gy)
	}
	dx, dy := in.Span()
	if !near(dx, 3*ZoomFactor) || !near(dy, 2*ZoomFactor) {
		t.Fatalf("span=(%v,%v)", dx, dy)
	}
	if !nearView(ZoomOut(in), v) {
		t.Fatalf("ZoomOut(ZoomIn(v))=%v", ZoomOut(in))
	}
}

func TestZoomRejectsNonPositiveFactor(t *testing.T) {
	v := Default()
	for _, f := range []float64{0, -1, math.NaN()} {
		if got := Zoom(v, f); got != v {
			t.Fatalf("Zoom(v, %v)=%v, want unchanged", f, got)
		}
	}
}

func TestPanInverse(t *testing.T) {
	v := Viewport{XMin: -1.3, XMax: 0.2, YMin: -0.4, YMax: 0.9}
	for _, k := range []float64{PanFraction, 0.5, 1.75} {
		if got := Pan(Pan(v, Right, k), Left, k); !nearView(got, v) {
			t.Fatalf("right/left %v: %v", k, got)
		}
		if got := Pan(Pan(v, Up, k), Down, k); !nearView(got, v) {
			t.Fatalf("up/down %v: %v", k, got)
		}
	}
}

func TestPanDirections(t *testing.T) {
	v := Default()
	tests := []struct {
		dir    Direction
		dx, dy float64
	}{
		{Right, 0.3, 0},
		{Left, -0.3, 0},
		{Up, 0, 0.2},
		{Down, 0, -0.2},
	}
	for _, tt := range tests {
		got := Pan(v, tt.dir, PanFraction)
		want := Viewport{XMin: v.XMin + tt.dx, XMax: v.XMax + tt.dx, YMin: v.YMin + tt.dy, YMax: v.YMax + tt.dy}
		if !nearView(got, want) {
			t.Fatalf("pan %v: got %v want %v", tt.dir, got, want)
		}
	}
}

func TestReset(t *testing.T) {
	got := Reset(Viewport{XMin: 5, XMax: 6, YMin: 7, YMax: 8})
	if got != (Viewport{XMin: -2, XMax: 1, YMin: -1, YMax: 1}) {
		t.Fatalf("Reset=%v", got)
	}
}
