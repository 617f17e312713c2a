//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"Enter  run / pause",
	"R      randomize (paused)",
	"C      clear (paused)",
	"F      faster",
	"S      slower",
	"N      single step (paused)",
	"H      toggle this help",
	"Q/Esc  quit",
}

const (
	helpLineHeight = 16
	helpMargin     = 12
	helpWidth      = 220
)

// Help draws the key binding panel, toggled with H.
type Help struct {
	visible bool
	pixel   *ebiten.Image
}

// NewHelp constructs a hidden help panel.
func NewHelp() *Help {
	h := &Help{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Update toggles visibility on H.
func (h *Help) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the panel in the top-left corner when visible.
func (h *Help) Draw(screen *ebiten.Image) {
	if !h.visible {
		return
	}
	height := float64(len(helpLines)*helpLineHeight + 2*helpMargin)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(helpWidth, height)
	op.GeoM.Translate(helpMargin, helpMargin)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 10, G: 10, B: 14, A: 220})
	screen.DrawImage(h.pixel, op)

	for i, line := range helpLines {
		y := 2*helpMargin + 10 + i*helpLineHeight
		text.Draw(screen, line, basicfont.Face7x13, 2*helpMargin, y, color.RGBA{R: 0, G: 228, B: 48, A: 255})
	}
}
