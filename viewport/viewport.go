// Package viewport holds the rectangle of the complex plane that is mapped
// onto the pixel buffer, the transform between pixel and plane space, and the
// zoom/pan/reset algebra applied to it.
package viewport

import "fmt"

const (
	// ZoomFactor scales half-extents on each zoom-in step. Zoom-out uses the reciprocal.
	ZoomFactor = 0.8
	// PanFraction is the share of the extent moved by one pan step.
	PanFraction = 0.1
)

// Viewport is a rectangle in complex-plane coordinates.
//
// A valid viewport has XMin < XMax and YMin < YMax.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Default returns the canonical full view of the set.
func Default() Viewport {
	return Viewport{XMin: -2.0, XMax: 1.0, YMin: -1.0, YMax: 1.0}
}

// Valid reports whether v has positive area.
func (v Viewport) Valid() bool {
	return v.XMin < v.XMax && v.YMin < v.YMax
}

// Center returns the midpoint of v.
func (v Viewport) Center() (x, y float64) {
	return (v.XMin + v.XMax) / 2, (v.YMin + v.YMax) / 2
}

// Span returns the full width and height of v.
func (v Viewport) Span() (dx, dy float64) {
	return v.XMax - v.XMin, v.YMax - v.YMin
}

func (v Viewport) String() string {
	return fmt.Sprintf("x:[%g, %g] y:[%g, %g]", v.XMin, v.XMax, v.YMin, v.YMax)
}
