package core

import (
	"errors"
	"slices"
	"testing"
)

func mustGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", rows, cols, err)
	}
	return g
}

func TestNewGridRejectsNonPositive(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewGrid(%d, %d) err = %v, expected ErrInvalidSize", dims[0], dims[1], err)
		}
	}
}

func TestNewGridStartsDead(t *testing.T) {
	g := mustGrid(t, 3, 4)
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("size = %v", g.Size())
	}
	if len(g.Cells()) != 12 {
		t.Fatalf("len(cells) = %d, expected 12", len(g.Cells()))
	}
	if g.Population() != 0 {
		t.Fatalf("population = %d, expected 0", g.Population())
	}
}

func TestWrapAddressing(t *testing.T) {
	g := mustGrid(t, 5, 7)
	g.Randomize(NewRNG(3), 2)
	for row := -12; row < 12; row++ {
		for col := -15; col < 15; col++ {
			want := g.Get(row, col)
			for k := -3; k <= 3; k++ {
				if got := g.Get(row+k*g.Rows(), col+k*g.Cols()); got != want {
					t.Fatalf("Get(%d,%d) with k=%d = %v, expected %v", row, col, k, got, want)
				}
			}
			r, c := g.Wrap(row, col)
			if r < 0 || r >= g.Rows() || c < 0 || c >= g.Cols() {
				t.Fatalf("Wrap(%d,%d) = (%d,%d) out of range", row, col, r, c)
			}
		}
	}
}

func TestSetWrapsNegativeIndices(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Set(-1, -1, Alive)
	if g.Get(3, 3) != Alive {
		t.Fatal("Set(-1,-1) did not write (3,3)")
	}
	g.Set(4, 9, Alive)
	if g.Get(0, 1) != Alive {
		t.Fatal("Set(4,9) did not write (0,1)")
	}
	if g.Population() != 2 {
		t.Fatalf("population = %d, expected 2", g.Population())
	}
}

func TestFillAndClear(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Fill(func(row, col int) CellState {
		if row == col {
			return Alive
		}
		return Dead
	})
	if g.Population() != 3 || g.Get(1, 1) != Alive || g.Get(0, 1) != Dead {
		t.Fatalf("diagonal fill wrong: %v", g.Cells())
	}
	g.Clear()
	if g.Population() != 0 {
		t.Fatalf("population after clear = %d", g.Population())
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := mustGrid(t, 20, 30)
	b := mustGrid(t, 20, 30)
	a.Randomize(NewRNG(42), 3)
	b.Randomize(NewRNG(42), 3)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different grids")
	}
	pop := a.Population()
	// 600 cells at one-in-three density.
	if pop < 120 || pop > 280 {
		t.Fatalf("population %d far from expected density", pop)
	}

	all := mustGrid(t, 4, 4)
	all.Randomize(NewRNG(1), 1)
	if all.Population() != 16 {
		t.Fatalf("oneIn=1 population = %d, expected 16", all.Population())
	}
}

func TestCloneEqualCopy(t *testing.T) {
	g := mustGrid(t, 4, 5)
	g.Set(1, 2, Alive)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs from source")
	}
	c.Set(0, 0, Alive)
	if g.Equal(c) {
		t.Fatal("clone shares storage with source")
	}
	g.CopyFrom(c)
	if !g.Equal(c) {
		t.Fatal("CopyFrom did not copy contents")
	}
	if g.Equal(mustGrid(t, 5, 4)) {
		t.Fatal("grids of different shape compare equal")
	}
}

func TestCopyFromPanicsOnShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	mustGrid(t, 2, 2).CopyFrom(mustGrid(t, 3, 3))
}
