// SPDX-License-Identifier: MIT

package aco

import (
	"fmt"
	"math"
	"runtime"
)

// DefaultExplorationLength is the step count of every sampled walk.
const DefaultExplorationLength = 80

// Config holds the numeric parameters of a run.
type Config struct {
	NumWalks          int         `yaml:"num_walks"`
	MaxStep           int         `yaml:"max_step"`
	NumIterations     int         `yaml:"num_iterations"`
	Alpha             float64     `yaml:"alpha"`
	Evaporate         float64     `yaml:"evaporate"`
	NumThreads        int         `yaml:"num_threads"`
	ExplorationLength int         `yaml:"exploration_length"`
	Scan              ScanMode    `yaml:"scan"`
	Window            WindowBound `yaml:"window"`
}

// DefaultConfig returns 10 walks per node, segments shorter than 10 steps,
// one round, alpha 1, no evaporation, one thread per CPU.
func DefaultConfig() Config {
	return Config{
		NumWalks:          10,
		MaxStep:           10,
		NumIterations:     1,
		Alpha:             1,
		Evaporate:         0,
		NumThreads:        runtime.NumCPU(),
		ExplorationLength: DefaultExplorationLength,
		Scan:              ScanOverlapping,
		Window:            WindowExclusive,
	}
}

// Validate reports the first field outside its range.
func (c Config) Validate() error {
	switch {
	case c.NumWalks <= 0:
		return fmt.Errorf("num_walks=%d must be > 0: %w", c.NumWalks, ErrInvalidConfig)
	case c.ExplorationLength < 1:
		return fmt.Errorf("exploration_length=%d must be >= 1: %w", c.ExplorationLength, ErrInvalidConfig)
	case c.MaxStep < 1 || c.MaxStep > c.ExplorationLength:
		return fmt.Errorf("max_step=%d must be in [1, %d]: %w", c.MaxStep, c.ExplorationLength, ErrInvalidConfig)
	case c.NumIterations < 0:
		return fmt.Errorf("num_iterations=%d must be >= 0: %w", c.NumIterations, ErrInvalidConfig)
	case c.NumThreads < 1:
		return fmt.Errorf("num_threads=%d must be >= 1: %w", c.NumThreads, ErrInvalidConfig)
	case !finite(c.Alpha) || c.Alpha < 0:
		return fmt.Errorf("alpha=%g must be finite and >= 0: %w", c.Alpha, ErrInvalidConfig)
	case !finite(c.Evaporate) || c.Evaporate > 1:
		return fmt.Errorf("evaporate=%g must be finite and <= 1: %w", c.Evaporate, ErrInvalidConfig)
	case c.Scan != ScanOverlapping && c.Scan != ScanDisjoint:
		return fmt.Errorf("scan=%s: %w", c.Scan, ErrInvalidConfig)
	case c.Window != WindowExclusive && c.Window != WindowInclusive:
		return fmt.Errorf("window=%s: %w", c.Window, ErrInvalidConfig)
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
