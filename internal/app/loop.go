package app

import (
	"context"
	"fmt"

	"conway/internal/control"
	"conway/internal/core"
	"conway/internal/render"
	"conway/internal/sims/life"

	"github.com/apex/log"
)

// Status is the run state shown to the user.
type Status struct {
	Running    bool
	Speed      int
	Generation uint64
	Population int
}

func (s Status) String() string {
	return fmt.Sprintf("gen %d  pop %d  %d/s", s.Generation, s.Population, s.Speed)
}

// Host is a backend that paces itself, supplies input and draws frames.
type Host interface {
	core.Input
	core.Renderer
	ShouldClose() bool
}

// Option customizes a Loop.
type Option func(*Loop)

// WithLogger routes loop logging to l.
func WithLogger(l log.Interface) Option {
	return func(lp *Loop) { lp.log = l }
}

// WithPalette overrides the cell colors.
func WithPalette(p render.Palette) Option {
	return func(lp *Loop) { lp.palette = p }
}

// WithCellSize sets the on-screen cell size in pixels.
func WithCellSize(n int) Option {
	return func(lp *Loop) { lp.cellSize = n }
}

// WithRandomOneIn sets the inverse density used by randomize.
func WithRandomOneIn(n int) Option {
	return func(lp *Loop) { lp.oneIn = n }
}

// WithSpeedStep sets the speed change applied per speed command.
func WithSpeedStep(n int) Option {
	return func(lp *Loop) { lp.speedStep = n }
}

// Loop sequences one frame: commands, then at most one generation, then
// the render request.
type Loop struct {
	grid   *core.Grid
	engine *life.Engine
	state  *control.State
	rnd    core.Random
	pacer  core.Pacer
	log    log.Interface

	palette   render.Palette
	cellSize  int
	oneIn     int
	speedStep int

	generation uint64
}

// NewLoop wires the simulation around grid and reports the initial speed to
// the pacer.
func NewLoop(grid *core.Grid, state *control.State, rnd core.Random, pacer core.Pacer, opts ...Option) (*Loop, error) {
	engine, err := life.New(grid.Rows(), grid.Cols())
	if err != nil {
		return nil, err
	}
	def := control.DefaultConfig()
	l := &Loop{
		grid:      grid,
		engine:    engine,
		state:     state,
		rnd:       rnd,
		pacer:     pacer,
		log:       log.Log,
		palette:   render.DefaultPalette(),
		cellSize:  6,
		oneIn:     3,
		speedStep: def.SpeedStep,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.pacer.SetTargetRate(l.state.Speed())
	return l, nil
}

// Build validates cfg and assembles a Loop, its grid and its control state.
func Build(cfg *Config, pacer core.Pacer, logger log.Interface) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rows, cols := cfg.Dimensions()
	grid, err := core.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	seed := cfg.ResolveSeed()
	rnd := core.NewRNG(seed)
	if cfg.Random {
		grid.Randomize(rnd, cfg.RandomOneIn)
	}
	l, err := NewLoop(grid, control.New(cfg.Control()), rnd, pacer,
		WithLogger(logger),
		WithCellSize(cfg.CellSize),
		WithRandomOneIn(cfg.RandomOneIn),
		WithSpeedStep(cfg.SpeedStep),
	)
	if err != nil {
		return nil, err
	}
	logger.WithFields(log.Fields{
		"rows":  rows,
		"cols":  cols,
		"seed":  seed,
		"speed": cfg.Speed,
	}).Info("simulation ready")
	return l, nil
}

// Grid exposes the simulated grid.
func (l *Loop) Grid() *core.Grid { return l.grid }

// Status reports the current run state.
func (l *Loop) Status() Status {
	return Status{
		Running:    l.state.Running(),
		Speed:      l.state.Speed(),
		Generation: l.generation,
		Population: l.grid.Population(),
	}
}

// Title returns the window title for the current state.
func (l *Loop) Title() string { return render.Title(l.state.Running(), l.state.Speed()) }

// Update applies every command pressed this frame once, then advances one
// generation if running.
func (l *Loop) Update(in core.Input) {
	for _, cmd := range core.Commands {
		if in.Pressed(cmd) {
			l.apply(cmd)
		}
	}
	if l.state.Running() {
		l.advance()
	}
}

// Draw issues the render request for the current grid and status.
func (l *Loop) Draw(r core.Renderer) {
	r.BeginFrame()
	render.Cells(r, l.grid, l.palette, l.cellSize)
	r.SetWindowTitle(l.Title())
	r.EndFrame()
}

// Frame runs Update followed by Draw.
func (l *Loop) Frame(in core.Input, r core.Renderer) {
	l.Update(in)
	l.Draw(r)
}

// Run drives frames until the host asks to close or ctx is cancelled.
// Both are normal termination.
func (l *Loop) Run(ctx context.Context, h Host) {
	for !h.ShouldClose() {
		if ctx.Err() != nil {
			break
		}
		l.Frame(h, h)
	}
	l.log.WithField("generation", l.generation).Info("simulation stopped")
}

func (l *Loop) advance() {
	l.engine.Step(l.grid)
	l.generation++
}

func (l *Loop) apply(cmd core.Command) {
	entry := l.log.WithField("command", cmd.String())
	switch cmd {
	case core.ToggleRun:
		l.state.ToggleRun()
		entry.WithField("running", l.state.Running()).Debug("toggled")
	case core.Randomize:
		if !l.state.RequestRandomize(l.grid, l.rnd, l.oneIn) {
			entry.Debug("ignored while running")
			return
		}
		l.generation = 0
		entry.WithField("population", l.grid.Population()).Debug("randomized")
	case core.Clear:
		if !l.state.RequestClear(l.grid) {
			entry.Debug("ignored while running")
			return
		}
		l.generation = 0
		entry.Debug("cleared")
	case core.SpeedUp:
		if l.state.IncreaseSpeed(l.speedStep) {
			l.pace(entry)
		}
	case core.SpeedDown:
		if !l.state.DecreaseSpeed(l.speedStep) {
			entry.WithField("speed", l.state.Speed()).Debug("at minimum speed")
			return
		}
		l.pace(entry)
	case core.Step:
		if l.state.Running() {
			entry.Debug("ignored while running")
			return
		}
		l.advance()
		entry.WithField("generation", l.generation).Debug("stepped")
	}
}

func (l *Loop) pace(entry *log.Entry) {
	l.pacer.SetTargetRate(l.state.Speed())
	entry.WithField("speed", l.state.Speed()).Debug("speed changed")
}
