// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package permute implements the positional pixel scrambler used to
// optionally randomize a secret's byte order before shadow formation,
// per spec.md section 4.2 and section 9. It is a Fisher-Yates shuffle
// keyed by an explicit, reproducible PRNG value rather than global
// process state, as spec.md section 9 requires: distribute and recover
// must derive the identical swap sequence from the same 16-bit seed.
package permute

// LCG is a 32-bit linear congruential generator reproducing the
// recurrence spec.md section 9 documents for C's rand(): state' =
// (state*1103515245 + 12345) & 0x7FFFFFFF. It is an explicit value, not
// global state, so permute and unpermute can each construct their own
// generator from the same seed and get bit-identical output.
type LCG struct {
	state uint32
}

// randMax is RAND_MAX+1 for the emulated 31-bit generator.
const randMax = 1 << 31

// NewLCG seeds a generator with the given 16-bit permutation seed.
func NewLCG(seed uint16) *LCG {
	return &LCG{state: uint32(seed)}
}

// next advances the generator and returns the new state, in [0, 2^31).
func (g *LCG) next() uint32 {
	g.state = (g.state*1103515245 + 12345) & 0x7FFFFFFF
	return g.state
}

// Intn returns rand_int(max): floor((rand()/(RAND_MAX+1)) * (max+1)),
// an integer in [0, max].
func (g *LCG) Intn(max int) int {
	r := g.next()
	return int(float64(r) / float64(randMax) * float64(max+1))
}
