// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package bmp implements the 8-bpp indexed BMP container model this
// system uses for secrets, shadows, and carriers: byte-exact header
// layout, a canonical grayscale palette, and row-padding arithmetic, per
// spec.md section 3. It deliberately does not use the standard library's
// image/bmp-style decoders (there is no such package, but golang.org/x/image
// is similarly unsuitable): this format repurposes the file header's two
// reserved fields to carry the permutation seed and shadow index, which no
// general-purpose decoder would expose.
package bmp

// Bitmap is an 8-bpp indexed bitmap with a 256-entry grayscale palette.
type Bitmap struct {
	Header  Header
	Palette Palette
	Pixels  []byte
}

// New constructs a fresh bitmap of the given dimensions with the
// canonical grayscale palette and a zeroed pixel buffer. height must be
// positive; use a negative Header.Height only to round-trip a top-down
// bitmap loaded from storage.
func New(width, height int) *Bitmap {
	h := newHeader(width, height)
	return &Bitmap{
		Header:  h,
		Palette: CanonicalGrayscalePalette(),
		Pixels:  make([]byte, h.PixelArraySize),
	}
}

// Width returns the bitmap's width in pixels.
func (b *Bitmap) Width() int { return int(b.Header.Width) }

// Height returns the bitmap's height in pixels, preserving sign (a
// negative height means the pixel rows are stored top-down).
func (b *Bitmap) Height() int { return int(b.Header.Height) }

// RowStride returns the number of bytes per pixel row, padded to a
// multiple of 4.
func (b *Bitmap) RowStride() int { return b.Header.RowStride() }

// PixelCount returns width*height, the number of logical grayscale
// pixels (excluding row padding).
func (b *Bitmap) PixelCount() int {
	return b.Width() * b.Header.AbsHeight()
}

// Seed returns the permutation seed carried in the file header's first
// reserved field.
func (b *Bitmap) Seed() uint16 { return b.Header.Seed }

// SetSeed stores the permutation seed in the file header's first
// reserved field.
func (b *Bitmap) SetSeed(seed uint16) { b.Header.Seed = seed }

// ShadowIndex returns the 1-based shadow ordinal carried in the file
// header's second reserved field, or 0 if this bitmap is not a shadow.
func (b *Bitmap) ShadowIndex() int { return int(b.Header.ShadowIndex) }

// SetShadowIndex stores the 1-based shadow ordinal in the file header's
// second reserved field.
func (b *Bitmap) SetShadowIndex(index int) { b.Header.ShadowIndex = uint16(index) }

// TruncateGrayscale clamps every pixel value to 250, the largest value
// representable as a GF(251) field element, per spec.md section 4.2.
// Values in [251, 255] become 250; this is a lossy, idempotent operation
// applied once to a secret before shadow formation.
func (b *Bitmap) TruncateGrayscale() {
	for i, p := range b.Pixels {
		if p > 250 {
			b.Pixels[i] = 250
		}
	}
}
