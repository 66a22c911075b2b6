package mandel

import (
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"mandelscope/internal/logging"
	"mandelscope/viewport"
)

// Packed 0x00RRGGBB colors. The top byte is reserved.
const (
	Black   uint32 = 0x00_00_00_00
	White   uint32 = 0x00_FF_FF_FF
	Outline uint32 = 0x00_FF_00_00
)

// bandsPerWorker is the number of row bands queued per worker.
const bandsPerWorker = 4

// Renderer fills pixel buffers with the binary escape-time image.
// The zero value uses GOMAXPROCS workers.
type Renderer struct {
	Workers int
}

func (r Renderer) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Render resizes dst to width*height and fills it so that index i holds pixel
// (i%width, i/width). Member pixels are Black, escaped pixels White.
// The returned buffer reuses dst's backing array when it is large enough.
//
// Output does not depend on the worker count.
func (r Renderer) Render(dst []uint32, width, height int, v viewport.Viewport, n uint) []uint32 {
	if width <= 0 || height <= 0 {
		return dst[:0]
	}
	dst = Resize(dst, width*height)

	start := time.Now()
	workers := r.workers()
	bands := workers * bandsPerWorker
	if bands > height {
		bands = height
	}
	rows := (height + bands - 1) / bands

	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < height; y0 += rows {
		y1 := y0 + rows
		if y1 > height {
			y1 = height
		}
		band := dst[y0*width : y1*width]
		g.Go(func() error {
			fillBand(band, y0, width, height, v, n)
			return nil
		})
	}
	_ = g.Wait()

	logging.Logger().Debug("render",
		slog.Int("w", width),
		slog.Int("h", height),
		slog.Uint64("budget", uint64(n)),
		slog.Int("workers", workers),
		slog.Duration("elapsed", time.Since(start)),
	)
	return dst
}

// fillBand computes rows starting at y0 into band, which holds whole rows.
func fillBand(band []uint32, y0, width, height int, v viewport.Viewport, n uint) {
	for i := range band {
		px := i % width
		py := y0 + i/width
		cr := viewport.PixelToPlaneX(float64(px), width, v)
		ci := viewport.PixelToPlaneY(float64(py), height, v)
		band[i] = Color(Member(cr, ci, n))
	}
}

// Color maps a membership classification to its pixel value.
func Color(member bool) uint32 {
	if member {
		return Black
	}
	return White
}

// Resize returns buf with length n, reusing capacity when possible.
// Contents are unspecified and must be overwritten by the caller.
func Resize(buf []uint32, n int) []uint32 {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]uint32, n)
}
