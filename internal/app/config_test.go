package app

import (
	"errors"
	"testing"

	"github.com/integrii/flaggy"
)

func TestDefaultConfigDimensions(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if rows, cols := cfg.Dimensions(); rows != 170 || cols != 170 {
		t.Fatalf("dimensions = %dx%d, expected 170x170", rows, cols)
	}
}

func TestDimensionsDropRemainder(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 65, 33, 8
	if rows, cols := cfg.Dimensions(); rows != 4 || cols != 8 {
		t.Fatalf("dimensions = %dx%d, expected 4x8", rows, cols)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero cell size":      func(c *Config) { c.CellSize = 0 },
		"cell wider than win": func(c *Config) { c.CellSize = 2000 },
		"zero min speed":      func(c *Config) { c.MinSpeed = 0 },
		"speed below floor":   func(c *Config) { c.Speed = 3 },
		"zero speed step":     func(c *Config) { c.SpeedStep = 0 },
		"zero density":        func(c *Config) { c.RandomOneIn = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	p := flaggy.NewParser("life")
	cfg.Bind(p)
	err := p.ParseArgs([]string{
		"--width", "300",
		"--height", "200",
		"-c", "10",
		"--speed", "20",
		"--seed", "99",
		"--random",
	})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.Width != 300 || cfg.Height != 200 || cfg.CellSize != 10 {
		t.Fatalf("geometry = %dx%d/%d", cfg.Width, cfg.Height, cfg.CellSize)
	}
	if cfg.Speed != 20 || cfg.Seed != 99 || !cfg.Random {
		t.Fatalf("speed=%d seed=%d random=%v", cfg.Speed, cfg.Seed, cfg.Random)
	}
	if cfg.MinSpeed != 5 || cfg.SpeedStep != 2 {
		t.Fatalf("unset flags lost defaults: min=%d step=%d", cfg.MinSpeed, cfg.SpeedStep)
	}
	if rows, cols := cfg.Dimensions(); rows != 20 || cols != 30 {
		t.Fatalf("dimensions = %dx%d", rows, cols)
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 5
	if cfg.ResolveSeed() != 5 {
		t.Fatal("explicit seed not kept")
	}
	cfg.Seed = 0
	if cfg.ResolveSeed() == 0 {
		t.Fatal("unset seed not resolved from clock")
	}
}
