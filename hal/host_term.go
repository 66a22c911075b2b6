package hal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TermConfig controls the terminal runner. Width and Height are taken from
// the terminal and ignored.
type TermConfig struct {
	HostConfig
	Hz int
}

// Each terminal cell shows two vertically stacked pixels with the upper
// half block: foreground is the top pixel, background the bottom one.
const halfBlock = '▀'

// termSize converts a terminal size to buffer pixels. The last row is
// reserved for the status line.
func termSize(cols, rows int) (width, height int) {
	if cols <= 0 || rows <= 1 {
		return 0, 0
	}
	return cols, (rows - 1) * 2
}

// RunTerminal renders into the current terminal with tcell. Keys are
// reported for the frame following their event, so held keys repeat at the
// terminal's auto-repeat rate.
func RunTerminal(ctx context.Context, cfg TermConfig, newApp func(HAL) func() error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	w, hh := termSize(cols, rows)
	cfg.HostConfig.Width, cfg.HostConfig.Height = w, hh
	h := newHostHAL(cfg.HostConfig, nil)
	h.fb.resize(w, hh)
	in := &termInput{fb: h.fb}
	h.in = in
	step := newApp(h)

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer ticker.Stop()

	h.logger.Info("terminal start", "cols", cols, "rows", rows)
	defer h.logger.Info("terminal stop")

	var (
		src  []uint32
		last uint64
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				c, r := ev.Size()
				h.fb.resize(termSize(c, r))
				screen.Sync()
				last = 0
			case *tcell.EventKey:
				in.key(ev)
			case *tcell.EventMouse:
				in.mouse(ev)
			}
		case <-ticker.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			var (
				pw, ph int
				seq    uint64
			)
			src, pw, ph, seq = h.fb.snapshot(src)
			if seq == last {
				continue
			}
			last = seq
			drawTerm(screen, src, pw, ph, h.fb.Title())
			screen.Show()
		}
	}
}

func drawTerm(screen tcell.Screen, buf []uint32, width, height int, status string) {
	cols, rows := screen.Size()
	for row := 0; row*2 < height && row < rows-1; row++ {
		for x := 0; x < width && x < cols; x++ {
			top := buf[(row*2)*width+x]
			bottom := top
			if row*2+1 < height {
				bottom = buf[(row*2+1)*width+x]
			}
			style := tcell.StyleDefault.Foreground(termColor(top)).Background(termColor(bottom))
			screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
	if rows <= 0 {
		return
	}
	line := runewidth.Truncate(status, cols, "…")
	x := 0
	for _, r := range line {
		screen.SetContent(x, rows-1, r, nil, tcell.StyleDefault)
		x += runewidth.RuneWidth(r)
	}
	for ; x < cols; x++ {
		screen.SetContent(x, rows-1, ' ', nil, tcell.StyleDefault)
	}
}

func termColor(p uint32) tcell.Color {
	r, g, b := UnpackRGB(p)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// termInput accumulates terminal events between samples.
type termInput struct {
	fb *hostFramebuffer

	mu      sync.Mutex
	pressed KeySet
	down    bool
	x, y    float64
	known   bool
}

var termRunes = map[rune]Key{
	'r': KeyReset,
	'i': KeyIterUp,
	'd': KeyIterDown,
	'+': KeyZoomIn,
	'=': KeyZoomIn,
	'-': KeyZoomOut,
	'_': KeyZoomOut,
	'h': KeyHUD,
	'q': KeyQuit,
}

var termKeys = map[tcell.Key]Key{
	tcell.KeyEscape: KeyQuit,
	tcell.KeyCtrlC:  KeyQuit,
	tcell.KeyUp:     KeyPanUp,
	tcell.KeyDown:   KeyPanDown,
	tcell.KeyLeft:   KeyPanLeft,
	tcell.KeyRight:  KeyPanRight,
}

func (in *termInput) key(ev *tcell.EventKey) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if ev.Modifiers()&tcell.ModShift != 0 {
		in.pressed = in.pressed.With(KeyFast)
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			in.pressed = in.pressed.With(KeyFast)
			r += 'a' - 'A'
		}
		if k, ok := termRunes[r]; ok {
			in.pressed = in.pressed.With(k)
		}
		return
	}
	if k, ok := termKeys[ev.Key()]; ok {
		in.pressed = in.pressed.With(k)
	}
}

func (in *termInput) mouse(ev *tcell.EventMouse) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.down = ev.Buttons()&tcell.Button1 != 0
	cx, cy := ev.Position()
	in.x, in.y = float64(cx), float64(cy*2)
	in.known = true
}

func (in *termInput) Sample() InputState {
	in.mu.Lock()
	defer in.mu.Unlock()
	s := InputState{Keys: in.pressed, MouseDown: in.down, MouseX: OffBuffer, MouseY: OffBuffer}
	in.pressed = 0
	w, h := in.fb.Size()
	if in.known && w > 0 && h > 0 {
		s.MouseX = float64(clampInt(int(in.x), 0, w-1))
		s.MouseY = float64(clampInt(int(in.y), 0, h-1))
	}
	return s
}
