// Package rng provides the random source shared by every stochastic part of
// a flight: wind, pad placement, starfield and particle bursts.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand the simulation draws from.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// New returns a PCG-backed source. A zero seed picks one from the clock.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uniform returns a float in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// IntRange returns an int in [lo, hi], both ends inclusive.
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Pick returns a random element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
