// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/antwalk/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = fmt.Errorf("bfs: start node not found: %w", core.ErrLookup)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("bfs: invalid option supplied: %w", core.ErrInvalidArgument)

	// ErrNoPath is returned by PathTo for a node the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior. Invalid values are recorded and surface
// as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks of one search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit runs when a node is dequeued. A non-nil error aborts the search.
	OnVisit func(u core.Node, depth int) error

	// MaxDepth > 0 stops expansion beyond that depth; 0 means no limit.
	MaxDepth int

	// FilterNeighbor skips the edge curr→next when it returns false.
	FilterNeighbor func(curr, next core.Node) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filter.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(core.Node, int) error { return nil },
		FilterNeighbor: func(_, _ core.Node) bool { return true },
	}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the visit callback; nil is ignored.
func WithOnVisit(fn func(u core.Node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search depth. d == 0 disables the limit; d < 0
// is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("MaxDepth cannot be negative (%d): %w", d, ErrOptionViolation)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor hides edges for which fn returns false; nil is ignored.
func WithFilterNeighbor(fn func(curr, next core.Node) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the outcome of a search: visit order, edge distance from the
// start, and BFS-tree parents (the start has none).
type Result struct {
	Start  core.Node
	Order  []core.Node
	Depth  map[core.Node]int
	Parent map[core.Node]core.Node
}

// Reached reports whether the search visited u.
func (r *Result) Reached(u core.Node) bool {
	_, ok := r.Depth[u]
	return ok
}

// PathTo reconstructs the start→dest path along BFS-tree parents.
// Errors: ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest core.Node) ([]core.Node, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("PathTo(%d): %w", dest, ErrNoPath)
	}
	path := []core.Node{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
