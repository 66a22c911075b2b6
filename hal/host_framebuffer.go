package hal

import (
	"fmt"
	"sync"
)

// hostFramebuffer holds the last presented image and, separately, the
// dimensions the surface wants the next frame rendered at.
type hostFramebuffer struct {
	mu sync.Mutex

	width  int // requested by the surface
	height int

	buf  []uint32 // last presented image
	bufW int
	bufH int
	seq  uint64 // incremented on each Present

	title string
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{width: width, height: height}
}

func (f *hostFramebuffer) Size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height
}

func (f *hostFramebuffer) Present(buf []uint32, width, height int) error {
	if width < 0 || height < 0 || len(buf) != width*height {
		return fmt.Errorf("present: buffer of %d pixels for %dx%d", len(buf), width, height)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if cap(f.buf) < len(buf) {
		f.buf = make([]uint32, len(buf))
	}
	f.buf = f.buf[:len(buf)]
	copy(f.buf, buf)
	f.bufW, f.bufH = width, height
	f.seq++
	return nil
}

func (f *hostFramebuffer) SetTitle(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.title = s
}

func (f *hostFramebuffer) Title() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.title
}

func (f *hostFramebuffer) resize(width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.width, f.height = width, height
}

// snapshot copies the last presented image into dst.
func (f *hostFramebuffer) snapshot(dst []uint32) (buf []uint32, width, height int, seq uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cap(dst) < len(f.buf) {
		dst = make([]uint32, len(f.buf))
	}
	dst = dst[:len(f.buf)]
	copy(dst, f.buf)
	return dst, f.bufW, f.bufH, f.seq
}
