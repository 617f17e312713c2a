// Package control holds the user-adjustable simulation parameters and the
// policy for applying commands to them.
package control

import "conway/internal/core"

// Config holds the speed policy.
type Config struct {
	Speed     int
	MinSpeed  int
	SpeedStep int
}

// DefaultConfig returns the default speed policy: 12 generations per second,
// never below 5, adjusted in steps of 2.
func DefaultConfig() Config {
	return Config{Speed: 12, MinSpeed: 5, SpeedStep: 2}
}

// State is the running flag and speed of the simulation.
type State struct {
	running  bool
	speed    int
	minSpeed int
}

// New returns a paused State. Speed is raised to the floor when needed and
// the floor itself is at least 1.
func New(cfg Config) *State {
	floor := cfg.MinSpeed
	if floor < 1 {
		floor = 1
	}
	speed := cfg.Speed
	if speed < floor {
		speed = floor
	}
	return &State{speed: speed, minSpeed: floor}
}

// Running reports whether generations advance each frame.
func (s *State) Running() bool { return s.running }

// Speed returns the target generations per second.
func (s *State) Speed() int { return s.speed }

// MinSpeed returns the speed floor.
func (s *State) MinSpeed() int { return s.minSpeed }

// ToggleRun flips between running and paused.
func (s *State) ToggleRun() { s.running = !s.running }

// IncreaseSpeed raises the speed by delta and reports whether it changed.
func (s *State) IncreaseSpeed(delta int) bool {
	if delta <= 0 {
		return false
	}
	s.speed += delta
	return true
}

// DecreaseSpeed lowers the speed by delta, stopping at the floor, and
// reports whether it changed.
func (s *State) DecreaseSpeed(delta int) bool {
	if delta <= 0 || s.speed == s.minSpeed {
		return false
	}
	s.speed -= delta
	if s.speed < s.minSpeed {
		s.speed = s.minSpeed
	}
	return true
}

// RequestRandomize refills the grid at random while paused. It is a no-op
// while running and reports whether the grid was touched.
func (s *State) RequestRandomize(g *core.Grid, rnd core.Random, oneIn int) bool {
	if s.running {
		return false
	}
	g.Randomize(rnd, oneIn)
	return true
}

// RequestClear kills every cell while paused. It is a no-op while running
// and reports whether the grid was touched.
func (s *State) RequestClear(g *core.Grid) bool {
	if s.running {
		return false
	}
	g.Clear()
	return true
}
