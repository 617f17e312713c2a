package life

import (
	"fmt"

	"conway/internal/core"
)

// Engine advances a grid by one Conway generation (B3/S23) with toroidal
// wrapping. The scratch buffer is allocated once and reused every step.
type Engine struct {
	nxt *core.Grid
}

// New returns an Engine for grids with the provided dimensions.
func New(rows, cols int) (*Engine, error) {
	nxt, err := core.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Engine{nxt: nxt}, nil
}

// CountLiveNeighbors sums the live cells among the eight wrapped neighbors
// of (row, col).
func CountLiveNeighbors(g *core.Grid, row, col int) int {
	neighbors := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Get(row+dr, col+dc) == core.Alive {
				neighbors++
			}
		}
	}
	return neighbors
}

// NextState applies the birth/survival rule to a cell with n live neighbors.
func NextState(s core.CellState, n int) core.CellState {
	if n == 3 || (s == core.Alive && n == 2) {
		return core.Alive
	}
	return core.Dead
}

// Step advances g by one generation. Every next state is computed from the
// pre-step grid before any cell of g is written.
func (e *Engine) Step(g *core.Grid) {
	if g.Size() != e.nxt.Size() {
		panic(fmt.Sprintf("life: engine sized %v stepping grid %v", e.nxt.Size(), g.Size()))
	}
	rows, cols := g.Rows(), g.Cols()
	cur := g.Cells()
	nxt := e.nxt.Cells()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			nxt[idx] = NextState(cur[idx], CountLiveNeighbors(g, row, col))
		}
	}
	g.CopyFrom(e.nxt)
}
