package bmp

// IsBMP reports whether raw begins with the 'B','M' magic bytes.
func IsBMP(raw []byte) bool {
	return hasMagic(raw)
}

// IsValidCarrier reports whether the bitmap can host shadows produced
// with threshold k: every section of k consecutive shadow bytes must
// fit evenly into the carrier's pixel count, per spec.md section 4.6.
func IsValidCarrier(b *Bitmap, k int) bool {
	if k <= 0 {
		return false
	}
	return (b.Width()*b.Header.AbsHeight())%k == 0
}

// CarrierCapacity returns the number of shadow bytes a carrier with the
// given pixel count can hide: one shadow byte per 8 carrier pixels.
func CarrierCapacity(b *Bitmap) int {
	return b.PixelCount() / 8
}

// IsValidShadow reports whether the bitmap is usable as one of the k
// shadows needed to recover a secret of secretSize pixels, per spec.md
// section 4.6: it must carry a nonzero shadow index and its raw pixel
// count (M, one byte per pixel) must be at least (secretSize*8)/k -
// exactly the embed-time capacity check of spec.md section 4.5
// (M >= 8*(N/k)) with N = secretSize. The factor of 8 is the
// steganographic expansion carried over from the original
// isvalidbmpsize (spec.md section 9): the shadow itself is
// secretSize/k bytes, but each of those bytes needs 8 carrier pixels to
// hide its 8 bits.
func IsValidShadow(b *Bitmap, k, secretSize int) bool {
	if b.ShadowIndex() == 0 {
		return false
	}
	required := (secretSize * 8) / k
	return b.PixelCount() >= required
}
