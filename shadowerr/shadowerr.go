// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package shadowerr declares the sentinel error kinds shared across the
// shadowbmp packages, per spec.md section 7. Every error produced by the
// core is one of these, optionally wrapped with fmt.Errorf("%w: ...") for
// extra context, so callers can distinguish failure kinds with
// errors.Is.
package shadowerr

import "errors"

var (
	// ErrIO covers file open/read/write/seek/close failures.
	ErrIO = errors.New("io error")

	// ErrInvalidBmp means the magic bytes, header size, or depth did not
	// match what a BMP is required to have.
	ErrInvalidBmp = errors.New("invalid bmp")

	// ErrUnsupportedBmp means the bitmap is a structurally valid BMP but
	// not the 40-byte BITMAPINFOHEADER/8bpp variant this package supports.
	ErrUnsupportedBmp = errors.New("unsupported bmp variant")

	// ErrInvalidSecretSize means the secret's pixel count is not evenly
	// divisible by the threshold k.
	ErrInvalidSecretSize = errors.New("invalid secret size")

	// ErrInsufficientCarriers means fewer than n valid carrier bitmaps
	// were found.
	ErrInsufficientCarriers = errors.New("insufficient carriers")

	// ErrInsufficientShadows means fewer than k valid shadow bitmaps were
	// found, or a required shadow had index 0.
	ErrInsufficientShadows = errors.New("insufficient shadows")

	// ErrInsufficientCapacity means a carrier is too small to hide the
	// given shadow.
	ErrInsufficientCapacity = errors.New("insufficient capacity")

	// ErrInvalidArguments covers CLI-level argument validation.
	ErrInvalidArguments = errors.New("invalid arguments")
)
