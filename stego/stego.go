// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package stego implements the steganographic channel: hiding a shadow's
// bytes in the least significant bits of a carrier bitmap's pixels, and
// retrieving them back out, per spec.md section 4.5. One shadow byte
// occupies 8 carrier pixels (one bit each, MSB first).
package stego

import (
	"fmt"

	"github.com/zanicar/shadowbmp/bmp"
	"github.com/zanicar/shadowbmp/shadow"
	"github.com/zanicar/shadowbmp/shadowerr"
)

// Hide embeds sh's pixel bytes into the least significant bits of
// carrier's pixels, in place, and stamps carrier's reserved header
// fields with seed and sh.Index, per spec.md section 4.5. carrier must
// have capacity for at least 8*len(sh.Pixels) pixels, or
// ErrInsufficientCapacity is returned.
func Hide(carrier *bmp.Bitmap, sh shadow.Shadow, seed uint16) error {
	capacity := bmp.CarrierCapacity(carrier)
	if capacity < len(sh.Pixels) {
		return fmt.Errorf("%w: carrier holds %d bytes, shadow needs %d", shadowerr.ErrInsufficientCapacity, capacity, len(sh.Pixels))
	}

	carrier.SetSeed(seed)
	carrier.SetShadowIndex(sh.Index)

	logical := carrier.LogicalPixels()
	for i, b := range sh.Pixels {
		for t := 0; t < 8; t++ {
			pos := i*8 + t
			bit := (b >> (7 - t)) & 1
			if bit == 1 {
				logical[pos] |= 1
			} else {
				logical[pos] &^= 1
			}
		}
	}
	return carrier.SetLogicalPixels(logical)
}

// Retrieve extracts a shadow previously hidden with Hide. The shadow's
// dimensions are reconstructed from the caller-supplied secret
// dimensions and threshold (secretWidth, secretHeight, k), per spec.md
// section 4.5 and the spec.md section 9 correction that these must be
// the secret's own dimensions, not the carrier's. The shadow's index
// and seed are read back from carrier's reserved header fields.
func Retrieve(carrier *bmp.Bitmap, secretWidth, secretHeight, k int) (shadow.Shadow, uint16, error) {
	sections := (secretWidth * secretHeight) / k
	capacity := bmp.CarrierCapacity(carrier)
	if capacity < sections {
		return shadow.Shadow{}, 0, fmt.Errorf("%w: carrier holds %d bytes, shadow needs %d", shadowerr.ErrInsufficientCapacity, capacity, sections)
	}

	width, height := shadow.ClosestPair(sections)
	logical := carrier.LogicalPixels()
	pixels := make([]byte, sections)
	for i := range pixels {
		var b byte
		for t := 0; t < 8; t++ {
			pos := i*8 + t
			bit := logical[pos] & 1
			b |= bit << (7 - t)
		}
		pixels[i] = b
	}

	sh := shadow.Shadow{
		Index:  carrier.ShadowIndex(),
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
	return sh, carrier.Seed(), nil
}
