package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// CellState is the two-state domain of a Life cell.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = iota
	// Alive marks a populated cell.
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Command enumerates the discrete user actions applied once per frame.
type Command int

const (
	ToggleRun Command = iota
	Randomize
	Clear
	SpeedUp
	SpeedDown
	Step
)

// Commands lists every command in the order the loop applies them.
var Commands = []Command{ToggleRun, Randomize, Clear, SpeedUp, SpeedDown, Step}

func (c Command) String() string {
	switch c {
	case ToggleRun:
		return "toggle-run"
	case Randomize:
		return "randomize"
	case Clear:
		return "clear"
	case SpeedUp:
		return "speed-up"
	case SpeedDown:
		return "speed-down"
	case Step:
		return "step"
	}
	return "unknown"
}

// Input reports commands pressed during the current frame. Implementations
// must be edge-triggered: a held key reports true only on the frame it went
// down.
type Input interface {
	Pressed(cmd Command) bool
}

// Random yields integers in [low, high).
type Random interface {
	UniformInt(low, high int) int
}

// Renderer receives the per-frame draw calls.
type Renderer interface {
	BeginFrame()
	ClearBackground(c color.Color)
	DrawCellRect(x, y, w, h int, c color.Color)
	SetWindowTitle(title string)
	EndFrame()
}

// Pacer couples the host frame rate to the simulation speed.
type Pacer interface {
	SetTargetRate(rate int)
}
