// Command mandelshot renders one view of the Mandelbrot set to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"mandelscope/hal"
	"mandelscope/mandel"
	"mandelscope/viewport"
)

func main() {
	def := viewport.Default()
	var (
		outPath = flag.String("out", "", "Output PNG file.")
		width   = flag.Int("width", hal.DefaultWidth, "Image width in pixels.")
		height  = flag.Int("height", hal.DefaultHeight, "Image height in pixels.")
		iters   = flag.Uint("iterations", 100, "Iteration budget.")
		workers = flag.Int("workers", 0, "Render workers (0 = GOMAXPROCS).")
		xmin    = flag.Float64("xmin", def.XMin, "Left edge of the view.")
		xmax    = flag.Float64("xmax", def.XMax, "Right edge of the view.")
		ymin    = flag.Float64("ymin", def.YMin, "Bottom edge of the view.")
		ymax    = flag.Float64("ymax", def.YMax, "Top edge of the view.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: mandelshot -out view.png [-width 640] [-height 360] [-iterations 100] [-xmin -2 -xmax 1 -ymin -1 -ymax 1]")
	}
	v := viewport.Viewport{XMin: *xmin, XMax: *xmax, YMin: *ymin, YMax: *ymax}
	if !v.Valid() {
		fatalf("empty view: %v", v)
	}
	if *width <= 0 || *height <= 0 {
		fatalf("size out of range: %dx%d", *width, *height)
	}

	buf := mandel.Renderer{Workers: *workers}.Render(nil, *width, *height, v, *iters)
	if err := writePNG(*outPath, encode(buf, *width, *height)); err != nil {
		fatalf("write: %v", err)
	}
}

// encode returns a paletted image; rendering only produces the two set colors.
func encode(buf []uint32, width, height int) *image.Paletted {
	white, black := rgba(mandel.White), rgba(mandel.Black)
	img := image.NewPaletted(image.Rect(0, 0, width, height), color.Palette{white, black})
	for i, p := range buf {
		if p == mandel.Black {
			img.Pix[i] = 1
		}
	}
	return img
}

func rgba(p uint32) color.RGBA {
	r, g, b := hal.UnpackRGB(p)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
