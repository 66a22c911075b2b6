package hal

import (
	"errors"
	"log/slog"
	"strings"
)

var (
	// ErrQuit is returned by a step function to end the run cleanly.
	ErrQuit = errors.New("quit")
	// ErrNoWindow is returned when the window backend is not compiled in.
	ErrNoWindow = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
)

// OffBuffer is the cursor coordinate reported when the position is unknown.
const OffBuffer = -1.0

// Key is a logical input, independent of the physical binding.
type Key uint8

const (
	KeyQuit Key = iota
	KeyReset
	KeyIterUp
	KeyIterDown
	KeyZoomIn
	KeyZoomOut
	KeyPanUp
	KeyPanDown
	KeyPanLeft
	KeyPanRight
	KeyFast
	KeyHUD
	keyCount
)

var keyNames = [keyCount]string{
	KeyQuit:     "quit",
	KeyReset:    "reset",
	KeyIterUp:   "iter-up",
	KeyIterDown: "iter-down",
	KeyZoomIn:   "zoom-in",
	KeyZoomOut:  "zoom-out",
	KeyPanUp:    "pan-up",
	KeyPanDown:  "pan-down",
	KeyPanLeft:  "pan-left",
	KeyPanRight: "pan-right",
	KeyFast:     "fast",
	KeyHUD:      "hud",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey returns the key named s.
func ParseKey(s string) (Key, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range keyNames {
		if name == s {
			return Key(k), true
		}
	}
	return 0, false
}

// KeySet is the set of keys held down during one frame.
type KeySet uint16

func (s KeySet) Has(k Key) bool       { return s&(1<<k) != 0 }
func (s KeySet) With(k Key) KeySet    { return s | 1<<k }
func (s KeySet) Without(k Key) KeySet { return s &^ (1 << k) }

// ParseKeySet parses a comma-separated list of key names.
func ParseKeySet(s string) (KeySet, error) {
	var set KeySet
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, ok := ParseKey(part)
		if !ok {
			return 0, errors.New("unknown key: " + strings.TrimSpace(part))
		}
		set = set.With(k)
	}
	return set, nil
}

// InputState is the input sampled for a single frame.
//
// Keys are level-triggered: a held key is present in every frame it is down.
// KeyHUD is the exception and is reported only on the frame it is pressed.
type InputState struct {
	Keys      KeySet
	MouseDown bool
	// MouseX and MouseY are clamped to the buffer, or OffBuffer.
	MouseX, MouseY float64
}

// MouseKnown reports whether the cursor position resolved this frame.
func (in InputState) MouseKnown() bool {
	return in.MouseX != OffBuffer && in.MouseY != OffBuffer
}

// Input samples the input devices once per frame.
type Input interface {
	Sample() InputState
}

// Display is the surface a frame is presented on.
type Display interface {
	// Size returns the current buffer dimensions in pixels.
	Size() (width, height int)
	// Present copies buf, a packed 0x00RRGGBB row-major image of width*height.
	Present(buf []uint32, width, height int) error
	// SetTitle updates the status text shown as window chrome.
	SetTitle(s string)
}

// HAL provides the only contact point between the explorer and the outside world.
type HAL interface {
	Logger() *slog.Logger
	Display() Display
	Input() Input
}
