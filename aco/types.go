// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Shared vocabulary of the aco package: sentinel errors, Labels,
// result/scan/window modes and Engine options.
// Determinism:
//   - Mode types round-trip through String and UnmarshalText.
// Concurrency:
//   - Labels is read-only during a run; options are copied into the Engine.

package aco

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/antwalk/core"
	"github.com/katalvlaran/antwalk/walker"
)

// Sentinel errors for the aco package.
var (
	// ErrInvalidConfig indicates a Config field outside its valid range.
	ErrInvalidConfig = fmt.Errorf("aco: invalid config: %w", core.ErrInvalidArgument)

	// ErrInvalidLabels indicates a labeled node with an empty label list.
	ErrInvalidLabels = fmt.Errorf("aco: invalid labels: %w", core.ErrInvalidArgument)
)

// Labels maps a node to its integer labels. Only key membership is used
// by scoring; every present key must carry at least one label.
type Labels map[core.Node][]int

// Has reports whether u carries a label.
func (l Labels) Has(u core.Node) bool {
	_, ok := l[u]
	return ok
}

// Validate rejects empty label lists.
func (l Labels) Validate() error {
	for u, ls := range l {
		if len(ls) == 0 {
			return fmt.Errorf("Labels: node %d: %w", u, ErrInvalidLabels)
		}
	}

	return nil
}

// ResultMode selects the shape of the returned pheromone graph.
type ResultMode int

const (
	// ResultAuto exponentiates unlabeled runs only.
	ResultAuto ResultMode = iota
	// ResultRaw returns total pheromone as accumulated.
	ResultRaw
	// ResultExponentiated returns total^Alpha.
	ResultExponentiated
)

// String renders the mode as accepted by ParseResultMode.
func (m ResultMode) String() string {
	switch m {
	case ResultAuto:
		return "auto"
	case ResultRaw:
		return "raw"
	case ResultExponentiated:
		return "exp"
	}

	return fmt.Sprintf("ResultMode(%d)", int(m))
}

// ParseResultMode accepts "auto", "raw" and "exp".
func ParseResultMode(s string) (ResultMode, error) {
	switch s {
	case "auto", "":
		return ResultAuto, nil
	case "raw":
		return ResultRaw, nil
	case "exp", "exponentiated":
		return ResultExponentiated, nil
	}

	return ResultAuto, fmt.Errorf("ParseResultMode: %q: %w", s, ErrInvalidConfig)
}

// ScanMode selects which offsets of a walk are scored.
type ScanMode int

const (
	// ScanOverlapping scores every offset of every walk.
	ScanOverlapping ScanMode = iota
	// ScanDisjoint skips past each scored segment.
	ScanDisjoint
)

// String renders the mode as accepted in YAML configs.
func (m ScanMode) String() string {
	switch m {
	case ScanOverlapping:
		return "overlapping"
	case ScanDisjoint:
		return "disjoint"
	}

	return fmt.Sprintf("ScanMode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m ScanMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ScanMode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "overlapping", "":
		*m = ScanOverlapping
	case "disjoint":
		*m = ScanDisjoint
	default:
		return fmt.Errorf("ScanMode: %q: %w", b, ErrInvalidConfig)
	}

	return nil
}

// WindowBound selects whether MaxStep itself is a scored segment length.
type WindowBound int

const (
	// WindowExclusive scores lengths in [1, MaxStep).
	WindowExclusive WindowBound = iota
	// WindowInclusive scores lengths in [1, MaxStep].
	WindowInclusive
)

// String renders the bound as accepted in YAML configs.
func (w WindowBound) String() string {
	switch w {
	case WindowExclusive:
		return "exclusive"
	case WindowInclusive:
		return "inclusive"
	}

	return fmt.Sprintf("WindowBound(%d)", int(w))
}

// MarshalText implements encoding.TextMarshaler.
func (w WindowBound) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WindowBound) UnmarshalText(b []byte) error {
	switch string(b) {
	case "exclusive", "":
		*w = WindowExclusive
	case "inclusive":
		*w = WindowInclusive
	default:
		return fmt.Errorf("WindowBound: %q: %w", b, ErrInvalidConfig)
	}

	return nil
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	seeds   walker.SeedSource
	logger  *slog.Logger
	result  ResultMode
	deadEnd walker.DeadEndPolicy
}

func newOptions(opts ...Option) options {
	o := options{
		seeds:   walker.EntropySeeds(),
		logger:  slog.Default(),
		result:  ResultAuto,
		deadEnd: walker.DeadEndTruncate,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSeedSource seeds walk workers. Round r, worker i draws seed
// src(r×NumThreads + i). Panics on nil.
func WithSeedSource(src walker.SeedSource) Option {
	if src == nil {
		panic("aco: WithSeedSource(nil)")
	}
	return func(o *options) { o.seeds = src }
}

// WithLogger routes engine logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("aco: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithResultMode selects the returned graph's shape.
func WithResultMode(m ResultMode) Option {
	return func(o *options) { o.result = m }
}

// WithDeadEndPolicy sets how walks handle nodes whose mixed weights are all
// zero. Default: walker.DeadEndTruncate.
func WithDeadEndPolicy(p walker.DeadEndPolicy) Option {
	return func(o *options) { o.deadEnd = p }
}
