//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// windowBindings maps logical keys to the physical keys that hold them down.
var windowBindings = []struct {
	key  Key
	phys []ebiten.Key
}{
	{KeyQuit, []ebiten.Key{ebiten.KeyEscape}},
	{KeyReset, []ebiten.Key{ebiten.KeyR}},
	{KeyIterUp, []ebiten.Key{ebiten.KeyI}},
	{KeyIterDown, []ebiten.Key{ebiten.KeyD}},
	{KeyZoomIn, []ebiten.Key{ebiten.KeyNumpadAdd, ebiten.KeyEqual}},
	{KeyZoomOut, []ebiten.Key{ebiten.KeyNumpadSubtract, ebiten.KeyMinus}},
	{KeyPanUp, []ebiten.Key{ebiten.KeyArrowUp}},
	{KeyPanDown, []ebiten.Key{ebiten.KeyArrowDown}},
	{KeyPanLeft, []ebiten.Key{ebiten.KeyArrowLeft}},
	{KeyPanRight, []ebiten.Key{ebiten.KeyArrowRight}},
	{KeyFast, []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
}

// windowInput polls ebiten's input state. It must only be sampled from
// the game's Update.
type windowInput struct {
	fb *hostFramebuffer
}

func (in *windowInput) Sample() InputState {
	var s InputState
	for _, b := range windowBindings {
		for _, k := range b.phys {
			if ebiten.IsKeyPressed(k) {
				s.Keys = s.Keys.With(b.key)
				break
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.Keys = s.Keys.With(KeyHUD)
	}

	s.MouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	w, h := in.fb.Size()
	if w <= 0 || h <= 0 {
		s.MouseX, s.MouseY = OffBuffer, OffBuffer
		return s
	}
	x, y := ebiten.CursorPosition()
	s.MouseX = float64(clampInt(x, 0, w-1))
	s.MouseY = float64(clampInt(y, 0, h-1))
	return s
}
