// Package term runs the simulation in a terminal: one character per cell,
// a status line at the bottom, keys read from tcell events.
package term

import (
	"context"
	"image/color"

	"conway/internal/app"
	"conway/internal/core"
	"conway/internal/render"

	"github.com/apex/log"
	"github.com/gdamore/tcell/v2"
)

var runeBindings = map[rune]core.Command{
	'r': core.Randomize,
	'R': core.Randomize,
	'c': core.Clear,
	'C': core.Clear,
	'f': core.SpeedUp,
	'F': core.SpeedUp,
	's': core.SpeedDown,
	'S': core.SpeedDown,
	'n': core.Step,
	'N': core.Step,
}

// Terminal is a tcell-backed host: renderer, input and frame pacing in one.
//
// Terminals report no key releases, and a held key arrives as a stream of
// auto-repeat events. A command therefore only fires when its key was not
// also seen in the previous frame; a hold still fires again once the
// repeat gap exceeds one frame, so input is edge-triggered only as far as
// the repeat rate allows.
type Terminal struct {
	screen   tcell.Screen
	pacer    *core.FramePacer
	cellSize int

	pressed map[core.Command]bool
	seen    map[core.Command]bool
	last    map[core.Command]bool
	closed  bool
	status  func() string
}

// New wraps an initialized screen. cellSize converts renderer pixel
// coordinates back to character cells.
func New(screen tcell.Screen, cellSize int) *Terminal {
	if cellSize < 1 {
		cellSize = 1
	}
	return &Terminal{
		screen:   screen,
		pacer:    core.NewFramePacer(0),
		cellSize: cellSize,
		pressed:  map[core.Command]bool{},
		seen:     map[core.Command]bool{},
		last:     map[core.Command]bool{},
	}
}

// Window returns the pixel size that maps one cell to each character,
// keeping the last row for the status line.
func Window(screen tcell.Screen, cellSize int) (width, height int) {
	w, h := screen.Size()
	if h > 0 {
		h--
	}
	return w * cellSize, h * cellSize
}

// SetTargetRate changes the frame rate.
func (t *Terminal) SetTargetRate(rate int) { t.pacer.SetTargetRate(rate) }

// Pressed reports whether cmd was pressed since the previous frame.
func (t *Terminal) Pressed(cmd core.Command) bool { return t.pressed[cmd] }

// ShouldClose reports whether the user asked to quit.
func (t *Terminal) ShouldClose() bool { return t.closed }

// SetStatus installs a provider for text shown after the title on the
// status line.
func (t *Terminal) SetStatus(f func() string) { t.status = f }

// BeginFrame starts a frame.
func (t *Terminal) BeginFrame() {}

// ClearBackground fills the screen.
func (t *Terminal) ClearBackground(c color.Color) {
	t.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(c)))
}

// DrawCellRect paints the character under the rectangle's origin.
func (t *Terminal) DrawCellRect(x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	t.screen.SetContent(x/t.cellSize, y/t.cellSize, ' ', nil, tcell.StyleDefault.Background(tcellColor(c)))
}

// SetWindowTitle writes the title into the status line.
func (t *Terminal) SetWindowTitle(title string) {
	w, h := t.screen.Size()
	if h == 0 {
		return
	}
	line := title
	if t.status != nil {
		line += "  " + t.status()
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	col := 0
	for _, r := range line {
		if col >= w {
			break
		}
		t.screen.SetContent(col, h-1, r, nil, style)
		col++
	}
	for ; col < w; col++ {
		t.screen.SetContent(col, h-1, ' ', nil, style)
	}
}

// EndFrame shows the frame, waits for the next frame slot and collects the
// keys pressed in the meantime.
func (t *Terminal) EndFrame() {
	t.screen.Show()
	t.pacer.Wait()
	t.poll()
}

func (t *Terminal) poll() {
	t.last, t.seen = t.seen, t.last
	clear(t.seen)
	clear(t.pressed)
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.key(ev)
		case *tcell.EventResize:
			t.screen.Sync()
		case nil:
			t.closed = true
			return
		}
	}
	for cmd := range t.seen {
		if !t.last[cmd] {
			t.pressed[cmd] = true
		}
	}
}

func (t *Terminal) key(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.closed = true
	case tcell.KeyEnter:
		t.seen[core.ToggleRun] = true
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			t.closed = true
			return
		}
		if cmd, ok := runeBindings[ev.Rune()]; ok {
			t.seen[cmd] = true
		}
	}
}

func tcellColor(c color.Color) tcell.Color {
	rgba := render.RGBA(c)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

// Run plays the simulation described by cfg on screen until the user quits
// or ctx is cancelled. The window size in cfg is replaced by the screen's.
func Run(ctx context.Context, screen tcell.Screen, cfg *app.Config, logger log.Interface) error {
	cfg.Width, cfg.Height = Window(screen, cfg.CellSize)
	t := New(screen, cfg.CellSize)
	loop, err := app.Build(cfg, t, logger)
	if err != nil {
		return err
	}
	t.SetStatus(func() string { return loop.Status().String() })
	loop.Run(ctx, t)
	return nil
}
