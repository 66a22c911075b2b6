package explorer

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"mandelscope/hal"
	"mandelscope/viewport"
)

var (
	colorHUDFG = color.RGBA{R: 0xff, G: 0xdd, B: 0x66, A: 0xff}
	colorHUDBG = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
)

const hudPad = 2

// bufDisplay lets tinyfont draw into a packed pixel buffer.
type bufDisplay struct {
	buf    []uint32
	width  int
	height int
}

var _ drivers.Displayer = (*bufDisplay)(nil)

func (d *bufDisplay) Size() (x, y int16) {
	return int16(d.width), int16(d.height)
}

func (d *bufDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.width || iy < 0 || iy >= d.height {
		return
	}
	d.buf[iy*d.width+ix] = hal.PackRGB(c.R, c.G, c.B)
}

func (d *bufDisplay) Display() error { return nil }

func (d *bufDisplay) fillRect(x0, y0, x1, y1 int, c color.RGBA) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, d.width), min(y1, d.height)
	p := hal.PackRGB(c.R, c.G, c.B)
	for y := y0; y < y1; y++ {
		row := d.buf[y*d.width : (y+1)*d.width]
		for x := x0; x < x1; x++ {
			row[x] = p
		}
	}
}

func hudFont() tinyfont.Fonter { return &tinyfont.TomThumb }

// hudLines describes the current view for the overlay.
func hudLines(v viewport.Viewport, budget uint) []string {
	cx, cy := v.Center()
	dx, dy := v.Span()
	return []string{
		fmt.Sprintf("ITER %d", budget),
		fmt.Sprintf("RE %.10g", cx),
		fmt.Sprintf("IM %.10g", cy),
		fmt.Sprintf("SPAN %.3g x %.3g", dx, dy),
	}
}

// drawHUD writes lines in the top-left corner of buf over a dark panel.
// Lines that do not fit are dropped.
func drawHUD(buf []uint32, width, height int, lines []string) {
	if width <= 0 || height <= 0 || len(lines) == 0 {
		return
	}
	d := &bufDisplay{buf: buf, width: width, height: height}
	font := hudFont()
	lineH := int(font.GetYAdvance())
	if lineH <= 0 {
		return
	}

	panelW := 0
	for _, l := range lines {
		_, w := tinyfont.LineWidth(font, l)
		panelW = max(panelW, int(w))
	}
	n := min(len(lines), (height-2*hudPad)/lineH)
	if n <= 0 {
		return
	}
	d.fillRect(0, 0, panelW+2*hudPad, n*lineH+2*hudPad, colorHUDBG)
	for i := 0; i < n; i++ {
		// tinyfont positions text by its baseline.
		y := hudPad + (i+1)*lineH - 1
		tinyfont.WriteLine(d, font, hudPad, int16(y), lines[i], colorHUDFG)
	}
}
