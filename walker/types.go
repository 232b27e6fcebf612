// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sampler contract, dead-end policies, walker options and sentinel
//       errors.
// Determinism:
//   - A dead end either truncates the walk or fails it; never a random jump.
// Concurrency:
//   - Options are copied at construction and read-only afterwards.

package walker

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/antwalk/core"
)

// Sentinel errors for the walker package.
var (
	// ErrNoDistribution indicates a walk needed a transition table that was
	// never built: unknown node, unknown directed edge, or a dead end under
	// DeadEndFail.
	ErrNoDistribution = fmt.Errorf("walker: no distribution: %w", core.ErrLookup)

	// ErrDegenerateDistribution indicates an empty candidate set, mismatched
	// lengths, a negative or non-finite weight, or weights summing to zero.
	ErrDegenerateDistribution = fmt.Errorf("walker: degenerate distribution: %w", core.ErrInvalidArgument)

	// ErrInvalidBias indicates p or q is not a finite positive number.
	ErrInvalidBias = fmt.Errorf("walker: p and q must be finite and > 0: %w", core.ErrInvalidArgument)

	// ErrInvalidWalkParams indicates numWalks ≤ 0, walkLength < 0 or numThreads < 1.
	ErrInvalidWalkParams = fmt.Errorf("walker: invalid walk parameters: %w", core.ErrInvalidArgument)
)

// Sampler is the capability the orchestrator needs: a fixed node list and a
// single-walk simulator. Implementations must be safe for concurrent
// SimulateWalk calls with distinct rng values.
type Sampler interface {
	// NodeList returns the start nodes in a stable order.
	NodeList() []core.Node

	// SimulateWalk draws length steps from start and returns the visited
	// nodes, start included (length+1 nodes unless truncated at a dead end).
	SimulateWalk(rng *rand.Rand, start core.Node, length int) ([]core.Node, error)
}

// DeadEndPolicy decides what a walk does at a node without a distribution.
type DeadEndPolicy int

const (
	// DeadEndFail returns ErrNoDistribution.
	DeadEndFail DeadEndPolicy = iota
	// DeadEndTruncate stops the walk and returns the nodes visited so far.
	DeadEndTruncate
)

// String renders the policy name.
func (p DeadEndPolicy) String() string {
	switch p {
	case DeadEndFail:
		return "fail"
	case DeadEndTruncate:
		return "truncate"
	}

	return fmt.Sprintf("DeadEndPolicy(%d)", int(p))
}

// ParseDeadEndPolicy accepts "fail" and "truncate".
func ParseDeadEndPolicy(s string) (DeadEndPolicy, error) {
	switch s {
	case "fail":
		return DeadEndFail, nil
	case "truncate":
		return DeadEndTruncate, nil
	}

	return DeadEndFail, fmt.Errorf("ParseDeadEndPolicy: %q: %w", s, core.ErrInvalidArgument)
}

// Option configures a walker.
type Option func(*options)

type options struct {
	deadEnd DeadEndPolicy
	logger  *slog.Logger
}

func newOptions(opts ...Option) options {
	o := options{deadEnd: DeadEndFail, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithDeadEndPolicy sets how walks treat nodes without a distribution.
func WithDeadEndPolicy(p DeadEndPolicy) Option {
	return func(o *options) { o.deadEnd = p }
}

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("walker: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// deadEnd resolves a missing table for node under policy. known reports
// whether node appeared in the graph snapshot at all.
func deadEnd(policy DeadEndPolicy, node core.Node, known bool, seq []core.Node) ([]core.Node, error) {
	if known && policy == DeadEndTruncate {
		return seq, nil
	}

	return nil, fmt.Errorf("SimulateWalk: node %d: %w", node, ErrNoDistribution)
}
