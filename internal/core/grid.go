package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSize reports a grid with a non-positive dimension.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// Grid stores a fixed-size toroidal matrix of cells in row-major order.
type Grid struct {
	rows, cols int
	data       []CellState
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, data: make([]CellState, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Cells exposes the backing slice in row-major order. Callers must not
// change its length.
func (g *Grid) Cells() []CellState { return g.data }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

func (g *Grid) index(row, col int) int {
	row, col = g.Wrap(row, col)
	return row*g.cols + col
}

// Get returns the state at (row, col) after wrapping.
func (g *Grid) Get(row, col int) CellState { return g.data[g.index(row, col)] }

// Set writes the state at (row, col) after wrapping.
func (g *Grid) Set(row, col int, s CellState) { g.data[g.index(row, col)] = s }

// Fill sets every cell from the policy function.
func (g *Grid) Fill(policy func(row, col int) CellState) {
	for row := 0; row < g.rows; row++ {
		base := row * g.cols
		for col := 0; col < g.cols; col++ {
			g.data[base+col] = policy(row, col)
		}
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Randomize makes each cell alive independently with probability 1/oneIn.
func (g *Grid) Randomize(rnd Random, oneIn int) {
	if oneIn < 1 {
		oneIn = 1
	}
	g.Fill(func(int, int) CellState {
		if rnd.UniformInt(0, oneIn) == 0 {
			return Alive
		}
		return Dead
	})
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// the same dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if g.rows != src.rows || g.cols != src.cols {
		panic(fmt.Sprintf("core: copy %dx%d grid into %dx%d", src.rows, src.cols, g.rows, g.cols))
	}
	copy(g.data, src.data)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, data: append([]CellState(nil), g.data...)}
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}
