package vmath

import "math/rand/v2"

// FastRand is a xorshift64 generator, satisfies rand.Source
// Same seed yields the same stream on every platform
type FastRand struct {
	state uint64
}

// NewFastRand seeds the generator, 0 is remapped to 1 since xorshift sticks at 0
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Uint64 advances the state
func (r *FastRand) Uint64() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// NewRand returns a rand.Rand drawing from a FastRand seeded with seed
// Gives uniform, integer and normal distributions over the deterministic stream
func NewRand(seed uint64) *rand.Rand {
	return rand.New(NewFastRand(seed))
}
