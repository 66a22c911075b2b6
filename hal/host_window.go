//go:build cgo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a resizable desktop window that displays the presented
// frames and samples keyboard and mouse input. It blocks until the window
// closes or the step function returns ErrQuit.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	cfg = cfg.withDefaults()
	h := newHostHAL(cfg.HostConfig, nil)
	h.in = &windowInput{fb: h.fb}
	step := newApp(h)

	g := &hostGame{h: h, step: step, title: cfg.Title}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	h.logger.Info("window start", "w", cfg.Width, "h", cfg.Height, "tps", cfg.TPS)
	err := ebiten.RunGame(g)
	h.logger.Info("window stop")
	return err
}

type hostGame struct {
	h     *hostHAL
	step  func() error
	title string

	src   []uint32
	pix   []byte
	fbImg *ebiten.Image
	imgW  int
	imgH  int
	seq   uint64
}

func (g *hostGame) Update() error {
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	if t := g.h.fb.Title(); t != "" && t != g.title {
		g.title = t
		ebiten.SetWindowTitle(t)
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	src, w, h, seq := g.h.fb.snapshot(g.src)
	g.src = src
	if w <= 0 || h <= 0 {
		return
	}
	if g.fbImg == nil || g.imgW != w || g.imgH != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
		g.imgW, g.imgH = w, h
		g.seq = 0
	}
	if seq != g.seq {
		g.pix = ToRGBA(g.pix, src)
		g.fbImg.WritePixels(g.pix)
		g.seq = seq
	}
	screen.DrawImage(g.fbImg, nil)
}

// Layout makes the logical screen track the window so the explorer renders
// at the window's pixel size.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.h.fb.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
