// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package shadow implements the Thien-Lin shadow generation and
// recovery engine: polynomial evaluation over GF(251) to produce shadow
// pixels (FormShadows) and Gauss-Jordan elimination over the same field
// to recover the secret from any k shadows (RevealSecret), per spec.md
// sections 4.3 and 4.4.
package shadow

import "math"

// ClosestPair picks shadow dimensions (width, height) for a shadow of
// size pixels so that width*height == size and the shape is as close to
// square as possible, per spec.md section 4.3: iterate y from
// floor(sqrt(size)) downward to 3, returning the first y that divides
// size evenly, with width = y, height = size/y. If no such divisor
// exists, fall back to a single row: width = size, height = 1.
func ClosestPair(size int) (width, height int) {
	if size <= 0 {
		return size, 1
	}
	start := int(math.Sqrt(float64(size)))
	for y := start; y >= 3; y-- {
		if size%y == 0 {
			return y, size / y
		}
	}
	return size, 1
}
