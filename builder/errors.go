// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors for the builder package. Constructors wrap them with
//       "<Method>: <detail>: %w"; callers branch with errors.Is.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/antwalk/core"
)

// ErrTooFewVertices indicates a size parameter (n, rows, cols, degree) below
// the constructor's minimum.
var ErrTooFewVertices = fmt.Errorf("builder: parameter too small: %w", core.ErrInvalidArgument)

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = fmt.Errorf("builder: probability out of range: %w", core.ErrInvalidArgument)

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor, or that RandomRegular ran
// out of pairing attempts.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadTopology indicates a topology string ParseTopology cannot read.
var ErrBadTopology = fmt.Errorf("builder: bad topology: %w", core.ErrInvalidArgument)
