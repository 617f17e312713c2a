package app

import (
	"errors"
	"fmt"
	"time"

	"conway/internal/control"

	"github.com/integrii/flaggy"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int

	Speed     int
	MinSpeed  int
	SpeedStep int

	// RandomOneIn is the inverse density used by randomize: each cell is
	// alive with probability 1/RandomOneIn.
	RandomOneIn int
	Seed        int64
	Random      bool

	Verbose bool
	LogFile string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	speed := control.DefaultConfig()
	return &Config{
		Width:       1020,
		Height:      1020,
		CellSize:    6,
		Speed:       speed.Speed,
		MinSpeed:    speed.MinSpeed,
		SpeedStep:   speed.SpeedStep,
		RandomOneIn: 3,
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Width, "", "width", "window width in pixels")
	p.Int(&c.Height, "", "height", "window height in pixels")
	p.Int(&c.CellSize, "c", "cell-size", "cell size in pixels, including the 1px gutter")
	p.Int(&c.Speed, "s", "speed", "initial generations per second")
	p.Int(&c.MinSpeed, "", "min-speed", "lowest reachable generations per second")
	p.Int(&c.SpeedStep, "", "speed-step", "speed change per key press")
	p.Int(&c.RandomOneIn, "d", "density", "randomize makes one in N cells alive")
	p.Int64(&c.Seed, "", "seed", "seed for randomize (0 picks one from the clock)")
	p.Bool(&c.Random, "r", "random", "start with a random grid")
	p.Bool(&c.Verbose, "v", "verbose", "log every applied command")
	p.String(&c.LogFile, "", "log-file", "write logs to this file")
}

// Validate reports the first setting that cannot produce a usable grid or
// speed policy.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	}
	if rows, cols := c.Dimensions(); rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d window holds %dx%d cells of size %d",
			ErrInvalidConfig, c.Width, c.Height, rows, cols, c.CellSize)
	}
	if c.MinSpeed < 1 {
		return fmt.Errorf("%w: min speed %d must be at least 1", ErrInvalidConfig, c.MinSpeed)
	}
	if c.Speed < c.MinSpeed {
		return fmt.Errorf("%w: speed %d below min speed %d", ErrInvalidConfig, c.Speed, c.MinSpeed)
	}
	if c.SpeedStep < 1 {
		return fmt.Errorf("%w: speed step %d must be at least 1", ErrInvalidConfig, c.SpeedStep)
	}
	if c.RandomOneIn < 1 {
		return fmt.Errorf("%w: density %d must be at least 1", ErrInvalidConfig, c.RandomOneIn)
	}
	return nil
}

// Dimensions derives the grid size from the window; leftover pixels are
// unused margin.
func (c *Config) Dimensions() (rows, cols int) {
	if c.CellSize <= 0 {
		return 0, 0
	}
	return c.Height / c.CellSize, c.Width / c.CellSize
}

// Control returns the speed policy.
func (c *Config) Control() control.Config {
	return control.Config{Speed: c.Speed, MinSpeed: c.MinSpeed, SpeedStep: c.SpeedStep}
}

// ResolveSeed returns the configured seed, or a clock-derived one when unset.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
