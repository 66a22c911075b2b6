package app

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mandelscope/hal"
	"mandelscope/mandel"
	"mandelscope/viewport"
)

func TestStepPresentsAndTitles(t *testing.T) {
	h := hal.NewHeadless(hal.HeadlessConfig{HostConfig: hal.HostConfig{Width: 16, Height: 8}})
	a, err := New(h, DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !strings.Contains(h.Title(), "ITERATIONS=100") {
		t.Fatalf("title=%q", h.Title())
	}
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	img := h.Image()
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Fatalf("bounds=%v", img.Bounds())
	}
}

func TestScriptedZoomSelection(t *testing.T) {
	script := []hal.InputState{
		{MouseX: hal.OffBuffer, MouseY: hal.OffBuffer},
		{MouseDown: true, MouseX: 4, MouseY: 2},
		{MouseDown: true, MouseX: 12, MouseY: 6},
		{MouseDown: false, MouseX: 12, MouseY: 6},
		{Keys: hal.KeySet(0).With(hal.KeyIterUp).With(hal.KeyFast), MouseX: hal.OffBuffer, MouseY: hal.OffBuffer},
		{Keys: hal.KeySet(0).With(hal.KeyQuit), MouseX: hal.OffBuffer, MouseY: hal.OffBuffer},
	}
	h := hal.NewHeadless(hal.HeadlessConfig{
		HostConfig: hal.HostConfig{Width: 16, Height: 8},
		Frames:     func(tick uint64) hal.InputState { return script[tick] },
	})
	a, err := New(h, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	var stepErr error
	for i := range script {
		if stepErr = a.Step(); stepErr != nil {
			if i != len(script)-1 {
				t.Fatalf("frame %d: %v", i, stepErr)
			}
			break
		}
		h.Advance()
	}
	if !errors.Is(stepErr, hal.ErrQuit) {
		t.Fatalf("last step err=%v", stepErr)
	}

	s := a.State()
	want := viewport.FromPixelRect(4, 2, 12, 6, 16, 8, viewport.Default())
	if s.View != want {
		t.Fatalf("view=%v want %v", s.View, want)
	}
	if s.Budget != 110 || !strings.Contains(h.Title(), "ITERATIONS=110") {
		t.Fatalf("budget=%d title=%q", s.Budget, h.Title())
	}
}

func TestWriteSnapshot(t *testing.T) {
	h := hal.NewHeadless(hal.HeadlessConfig{HostConfig: hal.HostConfig{Width: 12, Height: 6}})
	a, err := New(h, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := a.WriteSnapshot(path); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	want := mandel.White
	if uint32(r>>8)<<16|uint32(g>>8)<<8|uint32(b>>8) != want {
		t.Fatalf("pixel (0,0)=%v", img.At(0, 0))
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	h := hal.NewHeadless(hal.HeadlessConfig{})
	cfg := DefaultConfig()
	cfg.Explorer.Budget = 0
	if _, err := New(h, cfg); err == nil {
		t.Fatal("expected error")
	}
}
