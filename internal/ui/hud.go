//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUDHeight is the height of the status bar, drawn below the grid.
const HUDHeight = 18

const hudPadding = 6

// HUD renders a one-line status bar in the strip below the grid.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(width int) *HUD {
	if width <= 0 {
		return &HUD{}
	}
	h := &HUD{width: width, panel: ebiten.NewImage(width, HUDHeight)}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	return h
}

// Draw paints line in the status bar.
func (h *HUD) Draw(screen *ebiten.Image, line string) {
	if h == nil || h.panel == nil {
		return
	}
	y := screen.Bounds().Dy() - HUDHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(h.panel, op)
	text.Draw(screen, line, basicfont.Face7x13, hudPadding, y+hudPadding+8, color.White)
}
