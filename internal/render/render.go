// Package render turns a grid and its status into renderer calls.
package render

import (
	"fmt"
	"image/color"

	"conway/internal/core"
)

// Palette maps cell states to colors. It is a value type and is never
// mutated after startup.
type Palette struct {
	Background color.RGBA
	Dead       color.RGBA
	Alive      color.RGBA
}

// DefaultPalette returns the grey-on-green scheme.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 29, G: 29, B: 29, A: 255},
		Dead:       color.RGBA{R: 55, G: 55, B: 55, A: 255},
		Alive:      color.RGBA{R: 0, G: 228, B: 48, A: 255},
	}
}

// Color returns the fill for a cell state.
func (p Palette) Color(s core.CellState) color.RGBA {
	if s == core.Alive {
		return p.Alive
	}
	return p.Dead
}

// Rect is a cell's pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// CellRect returns the rectangle for (row, col), leaving a one pixel gutter
// on the right and bottom.
func CellRect(row, col, cellSize int) Rect {
	side := cellSize - 1
	if side < 0 {
		side = 0
	}
	return Rect{X: col * cellSize, Y: row * cellSize, W: side, H: side}
}

// Title returns the window title for the given run state.
func Title(running bool, speed int) string {
	if running {
		return fmt.Sprintf("Game of Life is Running at %d", speed)
	}
	return "Game of Life is Paused"
}

// Cells clears the background and issues one rectangle per cell.
func Cells(r core.Renderer, g *core.Grid, p Palette, cellSize int) {
	r.ClearBackground(p.Background)
	cols := g.Cols()
	for i, s := range g.Cells() {
		rect := CellRect(i/cols, i%cols, cellSize)
		r.DrawCellRect(rect.X, rect.Y, rect.W, rect.H, p.Color(s))
	}
}
