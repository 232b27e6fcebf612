// SPDX-License-Identifier: MIT
//
// File: topology.go
// Role: Textual topology specs for command-line fixtures.
//
// Grammar (kind:args):
//
//	path:N  cycle:N  star:N  wheel:N  complete:N
//	grid:RxC  bipartite:AxB
//	random:N:P  regular:N:D
//
// Several specs joined by "+" are laid out side by side, each one offset
// past the highest id of the previous.
//
// Weight specs for ParseWeight:
//
//	const:W  uniform:LO:HI  normal:MEAN:STD  exp:RATE

package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseTopology converts spec into one Constructor per "+"-separated part.
// Errors: ErrBadTopology.
func ParseTopology(spec string) ([]Constructor, error) {
	parts := strings.Split(spec, "+")
	out := make([]Constructor, 0, len(parts))
	offset := 0
	for _, part := range parts {
		c, size, err := parseOne(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if offset > 0 {
			c = Offset(offset, c)
		}
		out = append(out, c)
		offset += size
	}

	return out, nil
}

// parseOne returns the constructor and the number of ids it spans.
func parseOne(part string) (Constructor, int, error) {
	kind, args, _ := strings.Cut(part, ":")
	bad := func(reason string) (Constructor, int, error) {
		return nil, 0, fmt.Errorf("ParseTopology: %q: %s: %w", part, reason, ErrBadTopology)
	}

	switch kind {
	case "path", "cycle", "star", "wheel", "complete":
		n, err := strconv.Atoi(args)
		if err != nil {
			return bad("want " + kind + ":N")
		}
		ctor := map[string]func(int) Constructor{
			"path": Path, "cycle": Cycle, "star": Star, "wheel": Wheel, "complete": Complete,
		}[kind]
		return ctor(n), n, nil

	case "grid", "bipartite":
		a, b, ok := strings.Cut(args, "x")
		x, errA := strconv.Atoi(a)
		y, errB := strconv.Atoi(b)
		if !ok || errA != nil || errB != nil {
			return bad("want " + kind + ":AxB")
		}
		if kind == "grid" {
			return Grid(x, y), x * y, nil
		}
		return CompleteBipartite(x, y), x + y, nil

	case "random":
		a, b, ok := strings.Cut(args, ":")
		n, errN := strconv.Atoi(a)
		p, errP := strconv.ParseFloat(b, 64)
		if !ok || errN != nil || errP != nil {
			return bad("want random:N:P")
		}
		return RandomSparse(n, p), n, nil

	case "regular":
		a, b, ok := strings.Cut(args, ":")
		n, errN := strconv.Atoi(a)
		d, errD := strconv.Atoi(b)
		if !ok || errN != nil || errD != nil {
			return bad("want regular:N:D")
		}
		return RandomRegular(n, d), n, nil
	}

	return bad("unknown kind")
}

// ParseWeight converts a weight spec into a BuilderOption. An empty spec
// keeps DefaultWeightFn.
// Errors: ErrBadTopology for malformed specs or out-of-range parameters.
func ParseWeight(spec string) (BuilderOption, error) {
	if spec == "" {
		return WithWeightFn(DefaultWeightFn), nil
	}
	kind, args, _ := strings.Cut(spec, ":")
	bad := func(reason string) (BuilderOption, error) {
		return nil, fmt.Errorf("ParseWeight: %q: %s: %w", spec, reason, ErrBadTopology)
	}

	var xs []float64
	for _, f := range strings.Split(args, ":") {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return bad("non-numeric parameter")
		}
		xs = append(xs, x)
	}

	switch {
	case kind == "const" && len(xs) == 1 && xs[0] >= 0:
		return WithConstantWeight(xs[0]), nil
	case kind == "uniform" && len(xs) == 2 && xs[0] >= 0 && xs[1] >= xs[0]:
		return WithUniformWeight(xs[0], xs[1]), nil
	case kind == "normal" && len(xs) == 2 && xs[1] >= 0:
		return WithNormalWeight(xs[0], xs[1]), nil
	case kind == "exp" && len(xs) == 1 && xs[0] > 0:
		return WithExponentialWeight(xs[0]), nil
	}

	return bad("want const:W, uniform:LO:HI, normal:MEAN:STD or exp:RATE")
}
