// SPDX-License-Identifier: MIT
//
// File: rng.go
// Role: Per-worker seed sources for the walk orchestrator.
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every worker builds its own
//     *rand.Rand from SeedSource(worker) at spawn and never shares it.

package walker

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// SeedSource returns the seed for the given worker index.
// Implementations must be safe for concurrent calls.
type SeedSource func(worker int) int64

// FixedSeeds seeds worker i with base+i. Identical inputs give identical
// walks as long as the worker count stays the same.
func FixedSeeds(base int64) SeedSource {
	return func(worker int) int64 { return base + int64(worker) }
}

// DerivedSeeds mixes base and the worker index through a SplitMix64
// finalizer so neighboring workers get decorrelated streams.
func DerivedSeeds(base int64) SeedSource {
	return func(worker int) int64 { return deriveSeed(base, uint64(worker)) }
}

// EntropySeeds draws every seed from the OS entropy pool. Default source.
func EntropySeeds() SeedSource {
	return func(worker int) int64 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			return deriveSeed(time.Now().UnixNano(), uint64(worker))
		}
		return int64(binary.LittleEndian.Uint64(b[:]))
	}
}

// deriveSeed is the SplitMix64 finalizer over parent ^ stream.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
