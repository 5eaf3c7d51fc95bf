// Package rng is the seeded random source behind every generated dataset and
// every injected failure. Same seed, same stream.
package rng

import (
	"math"
	"unicode/utf16"
)

// Rng is a mulberry32 generator. The whole state is one uint32 counter.
// It is not safe for concurrent use.
type Rng struct {
	state uint32
}

// New creates a generator from seed.
func New(seed uint32) *Rng {
	return &Rng{state: seed}
}

// Derive seeds a generator from seed mixed with the hash of key, so outcomes
// are reproducible per (seed, key).
func Derive(seed uint32, key string) *Rng {
	return New(seed ^ HashString(key))
}

// Float64 returns the next draw in [0,1).
func (r *Rng) Float64() float64 {
	r.state += 0x6d2b79f5
	t := r.state
	x := (t ^ (t >> 15)) * (1 | t)
	x ^= x + (x^(x>>7))*(61|x)
	return float64(x^(x>>14)) / 4294967296
}

// RandInt maps a draw to [lo, hi]. The result is clamped to guard
// rounding; when hi < lo the clamp yields hi.
func RandInt(r *Rng, lo, hi int) int {
	n := int(math.Floor(r.Float64()*float64(hi-lo+1))) + lo
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	return n
}

// PickOne returns a uniformly chosen element of items.
func PickOne[T any](r *Rng, items []T) T {
	return items[RandInt(r, 0, len(items)-1)]
}

// Chance reports whether the next draw is below p.
func Chance(r *Rng, p float64) bool {
	return r.Float64() < p
}

// HashString is 32-bit FNV-1a over the UTF-16 code units of s.
func HashString(s string) uint32 {
	h := uint32(2166136261)
	for _, c := range utf16.Encode([]rune(s)) {
		h ^= uint32(c)
		h *= 16777619
	}
	return h
}
