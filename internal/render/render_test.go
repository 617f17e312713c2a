package render

import (
	"image/color"
	"testing"

	"conway/internal/core"
)

type rectCall struct {
	Rect
	c color.Color
}

type recorder struct {
	background color.Color
	rects      []rectCall
}

func (r *recorder) BeginFrame()                   {}
func (r *recorder) ClearBackground(c color.Color) { r.background = c }
func (r *recorder) DrawCellRect(x, y, w, h int, c color.Color) {
	r.rects = append(r.rects, rectCall{Rect{x, y, w, h}, c})
}
func (r *recorder) SetWindowTitle(string) {}
func (r *recorder) EndFrame()             {}

func TestCellRectGeometry(t *testing.T) {
	got := CellRect(3, 7, 6)
	want := Rect{X: 42, Y: 18, W: 5, H: 5}
	if got != want {
		t.Fatalf("CellRect = %+v, expected %+v", got, want)
	}
	if r := CellRect(1, 1, 1); r.W != 0 || r.H != 0 {
		t.Fatalf("cell size 1 gave %+v", r)
	}
}

func TestTitle(t *testing.T) {
	if got := Title(true, 14); got != "Game of Life is Running at 14" {
		t.Fatalf("running title = %q", got)
	}
	if got := Title(false, 14); got != "Game of Life is Paused" {
		t.Fatalf("paused title = %q", got)
	}
}

func TestCellsDrawsEveryCell(t *testing.T) {
	g, err := core.NewGrid(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(1, 2, core.Alive)
	p := DefaultPalette()

	rec := &recorder{}
	Cells(rec, g, p, 10)

	if rec.background != p.Background {
		t.Fatalf("background = %v", rec.background)
	}
	if len(rec.rects) != 6 {
		t.Fatalf("drew %d rects, expected 6", len(rec.rects))
	}
	last := rec.rects[5]
	if last.Rect != (Rect{X: 20, Y: 10, W: 9, H: 9}) || last.c != p.Alive {
		t.Fatalf("live cell drawn as %+v", last)
	}
	for _, call := range rec.rects[:5] {
		if call.c != p.Dead {
			t.Fatalf("dead cell drawn with %v", call.c)
		}
	}
}

func TestRGBA(t *testing.T) {
	if got := RGBA(color.White); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("RGBA(white) = %v", got)
	}
	if got := RGBA(nil); got != (color.RGBA{}) {
		t.Fatalf("RGBA(nil) = %v", got)
	}
}
