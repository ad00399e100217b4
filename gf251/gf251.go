// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package gf251 implements arithmetic over the finite field of integers
// modulo 251, the largest prime not exceeding 255. Every value in the
// field fits in a byte, which is what makes it usable for per-pixel
// polynomial evaluation over 8-bit grayscale images.
package gf251

// Prime is the field modulus. 251 is the largest prime <= 255, chosen so
// field elements fit in a byte while leaving room (251..255) for the
// truncation step to discard.
const Prime = 251

// invTable[a] holds the multiplicative inverse of a for a in [1, 250].
// Entry 0 is unused; 0 has no inverse. The table is computed once at
// package init time by brute force search, since Prime is small.
var invTable [Prime]uint8

func init() {
	for a := 1; a < Prime; a++ {
		for b := 1; b < Prime; b++ {
			if (a*b)%Prime == 1 {
				invTable[a] = uint8(b)
				break
			}
		}
	}
}

// Add returns (a+b) mod 251. a and b must already be reduced to [0, 250].
func Add(a, b uint8) uint8 {
	return uint8((int(a) + int(b)) % Prime)
}

// Sub returns (a-b) mod 251, using the mathematical (non-negative)
// remainder convention.
func Sub(a, b uint8) uint8 {
	d := (int(a) - int(b)) % Prime
	if d < 0 {
		d += Prime
	}
	return uint8(d)
}

// Mul returns (a*b) mod 251.
func Mul(a, b uint8) uint8 {
	return uint8((int(a) * int(b)) % Prime)
}

// Inv returns the multiplicative inverse of a in GF(251). a must be in
// [1, 250]; Inv(0) is undefined and returns 0.
func Inv(a uint8) uint8 {
	if a == 0 {
		return 0
	}
	return invTable[a]
}

// Div returns (a * Inv(b)) mod 251. b must be nonzero.
func Div(a, b uint8) uint8 {
	return Mul(a, Inv(b))
}

// PowEval raises x to the integer power i, reduced mod 251. It is used
// only for the small exponents (0..k-1) that appear in Vandermonde rows
// and polynomial evaluation, so a simple repeated-squaring-free loop is
// sufficient.
func PowEval(x uint8, i int) uint8 {
	if i <= 0 {
		return 1
	}
	out := uint8(1)
	for n := 0; n < i; n++ {
		out = Mul(out, x)
	}
	return out
}

// Mod reduces an arbitrary (possibly negative) int to the field's
// non-negative representative in [0, 250]. It is used by callers that
// accumulate sums in a wider integer type before reducing once.
func Mod(v int64) uint8 {
	m := v % Prime
	if m < 0 {
		m += Prime
	}
	return uint8(m)
}
