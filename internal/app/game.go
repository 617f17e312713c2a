//go:build ebiten

package app

import (
	"image/color"

	"conway/internal/core"
	"conway/internal/ui"

	"github.com/apex/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var keyBindings = map[core.Command][]ebiten.Key{
	core.ToggleRun: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.Randomize: {ebiten.KeyR},
	core.Clear:     {ebiten.KeyC},
	core.SpeedUp:   {ebiten.KeyF},
	core.SpeedDown: {ebiten.KeyS},
	core.Step:      {ebiten.KeyN},
}

// keyboard reports commands whose key went down this tick.
type keyboard struct{}

func (keyboard) Pressed(cmd core.Command) bool {
	for _, k := range keyBindings[cmd] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// tpsPacer ties the ebiten tick rate to the simulation speed.
type tpsPacer struct{}

func (tpsPacer) SetTargetRate(rate int) { ebiten.SetTPS(rate) }

// screen draws render requests onto an ebiten frame.
type screen struct {
	dst   *ebiten.Image
	title *string
}

func (s screen) BeginFrame()                   {}
func (s screen) ClearBackground(c color.Color) { s.dst.Fill(c) }
func (s screen) EndFrame()                     {}

func (s screen) DrawCellRect(x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s screen) SetWindowTitle(title string) {
	if *s.title == title {
		return
	}
	*s.title = title
	ebiten.SetWindowTitle(title)
}

// Game adapts the simulation loop to the ebiten.Game interface.
type Game struct {
	loop  *Loop
	hud   *ui.HUD
	help  *ui.Help
	title string

	width, height int
}

// NewGame builds the simulation described by cfg and wires it to ebiten's
// tick rate.
func NewGame(cfg *Config, logger log.Interface) (*Game, error) {
	loop, err := Build(cfg, tpsPacer{}, logger)
	if err != nil {
		return nil, err
	}
	return &Game{
		loop:   loop,
		hud:    ui.NewHUD(cfg.Width),
		help:   ui.NewHelp(),
		width:  cfg.Width,
		height: cfg.Height,
	}, nil
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.help.Update()
	g.loop.Update(keyboard{})
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(dst *ebiten.Image) {
	g.loop.Draw(screen{dst: dst, title: &g.title})
	g.hud.Draw(dst, g.loop.Status().String())
	g.help.Draw(dst)
}

// WindowSize returns the grid area plus the status bar strip.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height + ui.HUDHeight
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
