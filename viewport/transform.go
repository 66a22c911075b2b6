package viewport

// PixelToPlaneX maps a pixel column to a real coordinate.
// px outside [0, width) extrapolates linearly.
func PixelToPlaneX(px float64, width int, v Viewport) float64 {
	return v.XMin + (v.XMax-v.XMin)*(px/float64(width))
}

// PixelToPlaneY maps a pixel row to an imaginary coordinate.
// Row 0 is the top of the buffer and maps to YMax.
func PixelToPlaneY(py float64, height int, v Viewport) float64 {
	h := float64(height)
	return v.YMin + (v.YMax-v.YMin)*((h-py)/h)
}

// PlaneToPixelX is the inverse of PixelToPlaneX.
func PlaneToPixelX(x float64, width int, v Viewport) float64 {
	return (x - v.XMin) / (v.XMax - v.XMin) * float64(width)
}

// PlaneToPixelY is the inverse of PixelToPlaneY.
func PlaneToPixelY(y float64, height int, v Viewport) float64 {
	h := float64(height)
	return h - (y-v.YMin)/(v.YMax-v.YMin)*h
}

// FromPixelRect converts a pixel rectangle (x0 <= x1, y0 <= y1, top-left
// origin) to the plane rectangle it covers under v. The top pixel edge y0
// becomes the new YMax.
func FromPixelRect(x0, y0, x1, y1 float64, width, height int, v Viewport) Viewport {
	return Viewport{
		XMin: PixelToPlaneX(x0, width, v),
		XMax: PixelToPlaneX(x1, width, v),
		YMin: PixelToPlaneY(y1, height, v),
		YMax: PixelToPlaneY(y0, height, v),
	}
}
