package hal

import (
	"image"
	"image/color"
	"log/slog"

	"mandelscope/internal/logging"
)

// Default surface size when none is configured.
const (
	DefaultWidth  = 640
	DefaultHeight = 360
)

// HostConfig is shared by every host runner.
type HostConfig struct {
	Width  int
	Height int
	// Logger defaults to the process logger.
	Logger *slog.Logger
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Logger == nil {
		c.Logger = logging.Logger()
	}
	return c
}

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	HostConfig
	Title string
	// TPS is the update rate; the explorer advances one frame per tick.
	TPS int
}

func (c WindowConfig) withDefaults() WindowConfig {
	c.HostConfig = c.HostConfig.withDefaults()
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Title == "" {
		c.Title = "Mandelbrot"
	}
	return c
}

type hostHAL struct {
	logger *slog.Logger
	fb     *hostFramebuffer
	in     Input
}

func newHostHAL(cfg HostConfig, in Input) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		logger: cfg.Logger,
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		in:     in,
	}
}

func (h *hostHAL) Logger() *slog.Logger { return h.logger }
func (h *hostHAL) Display() Display     { return h.fb }
func (h *hostHAL) Input() Input         { return h.in }

// Image returns the last presented frame as an RGBA image.
func (h *hostHAL) Image() *image.RGBA {
	buf, w, hh, _ := h.fb.snapshot(nil)
	img := image.NewRGBA(image.Rect(0, 0, w, hh))
	for i, p := range buf {
		r, g, b := UnpackRGB(p)
		img.SetRGBA(i%w, i/w, color.RGBA{R: r, G: g, B: b, A: 0xFF})
	}
	return img
}

// Imager is implemented by HALs that can hand back the last presented frame.
type Imager interface {
	Image() *image.RGBA
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
