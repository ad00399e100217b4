// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package pipeline orchestrates the distribute and recover data flows
// spec.md section 2 describes: selecting and validating carrier or
// shadow files, pairing them with generated or retrieved shadows, and
// driving the shadow engine and steganographic channel over them.
package pipeline

import "github.com/zanicar/shadowbmp/bmp"

// Validator is the first-class-function-value predicate spec.md
// section 9 calls for ("polymorphism over validators... implement as a
// first-class function value... do not emulate a vtable"): given a
// decoded bitmap, the active threshold k, and (where relevant) the
// secret's pixel count, it reports whether the bitmap qualifies.
type Validator func(b *bmp.Bitmap, k, secretSize int) bool

// CarrierValidator accepts bitmaps usable as carriers for threshold k:
// their pixel count must divide evenly by k.
func CarrierValidator(b *bmp.Bitmap, k, _ int) bool {
	return bmp.IsValidCarrier(b, k)
}

// ShadowValidator accepts bitmaps usable as one of the k shadows needed
// to recover a secret of secretSize pixels.
func ShadowValidator(b *bmp.Bitmap, k, secretSize int) bool {
	return bmp.IsValidShadow(b, k, secretSize)
}
