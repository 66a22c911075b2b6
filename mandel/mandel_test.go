package mandel

import (
	"fmt"
	"slices"
	"testing"

	"mandelscope/viewport"
)

func TestOriginIsMember(t *testing.T) {
	for _, n := range []uint{1, 2, 50, 1000} {
		if !Member(0, 0, n) {
			t.Fatalf("0+0i not a member with budget %d", n)
		}
	}
}

func TestTwoEscapesOnFirstIteration(t *testing.T) {
	for _, n := range []uint{1, 2, 100} {
		iter, escaped := EscapeTime(2, 0, n)
		if !escaped || iter != 1 {
			t.Fatalf("budget %d: iter=%d escaped=%v", n, iter, escaped)
		}
		if Member(2, 0, n) {
			t.Fatalf("2+0i classified as member with budget %d", n)
		}
	}
}

func TestZeroBudgetIsMember(t *testing.T) {
	for _, c := range [][2]float64{{0, 0}, {2, 0}, {-2, 1}, {100, -100}} {
		if !Member(c[0], c[1], 0) {
			t.Fatalf("budget 0: %v not a member", c)
		}
	}
}

func TestKnownPoints(t *testing.T) {
	tests := []struct {
		cr, ci float64
		member bool
	}{
		{-1, 0, true},       // period-2 cycle
		{-0.75, 0.1, false}, // neck of the main cardioid
		{0.25, 0, true},     // cusp
		{-2, 1, false},
		{-0.1, 0.1, true},
	}
	for _, tt := range tests {
		if got := Member(tt.cr, tt.ci, 1000); got != tt.member {
			t.Fatalf("Member(%v, %v)=%v want %v", tt.cr, tt.ci, got, tt.member)
		}
	}
}

func TestRenderEndToEnd(t *testing.T) {
	buf := Renderer{Workers: 2}.Render(nil, 4, 1, viewport.Default(), 50)
	if len(buf) != 4 {
		t.Fatalf("len=%d", len(buf))
	}
	if buf[0] != 0x00FFFFFF {
		t.Fatalf("pixel (0,0)=%#08x want %#08x", buf[0], uint32(0x00FFFFFF))
	}
}

func TestRenderIndexLayout(t *testing.T) {
	const w, h = 7, 5
	v := viewport.Default()
	buf := Renderer{Workers: 3}.Render(nil, w, h, v, 64)
	for i, got := range buf {
		px, py := i%w, i/w
		cr := viewport.PixelToPlaneX(float64(px), w, v)
		ci := viewport.PixelToPlaneY(float64(py), h, v)
		if want := Color(Member(cr, ci, 64)); got != want {
			t.Fatalf("pixel (%d,%d)=%#x want %#x", px, py, got, want)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	v := viewport.Viewport{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}
	sizes := [][2]int{{1, 1}, {13, 3}, {64, 48}, {101, 7}}
	for _, sz := range sizes {
		ref := Renderer{Workers: 1}.Render(nil, sz[0], sz[1], v, 200)
		for _, workers := range []int{2, 3, 8, 64} {
			got := Renderer{Workers: workers}.Render(nil, sz[0], sz[1], v, 200)
			if !slices.Equal(ref, got) {
				t.Fatalf("%dx%d: workers=%d differs from workers=1", sz[0], sz[1], workers)
			}
		}
	}
}

func TestRenderResizesBeforeWriting(t *testing.T) {
	r := Renderer{Workers: 2}
	buf := r.Render(nil, 8, 8, viewport.Default(), 20)
	buf = r.Render(buf, 3, 2, viewport.Default(), 20)
	if len(buf) != 6 {
		t.Fatalf("shrink: len=%d", len(buf))
	}
	buf = r.Render(buf, 20, 10, viewport.Default(), 20)
	if len(buf) != 200 {
		t.Fatalf("grow: len=%d", len(buf))
	}
	if got := r.Render(buf, 0, 10, viewport.Default(), 20); len(got) != 0 {
		t.Fatalf("zero width: len=%d", len(got))
	}
}

func TestRenderOnlyBinaryColors(t *testing.T) {
	buf := Renderer{}.Render(nil, 32, 18, viewport.Default(), 30)
	var black, white int
	for _, c := range buf {
		switch c {
		case Black:
			black++
		case White:
			white++
		default:
			t.Fatalf("unexpected color %#x", c)
		}
	}
	if black == 0 || white == 0 {
		t.Fatalf("black=%d white=%d", black, white)
	}
}

func BenchmarkRender(b *testing.B) {
	v := viewport.Default()
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			r := Renderer{Workers: workers}
			buf := make([]uint32, 640*360)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf = r.Render(buf, 640, 360, v, 100)
			}
		})
	}
}
