package bmp

import (
	"fmt"

	"github.com/zanicar/shadowbmp/shadowerr"
)

// Decode parses a complete in-memory BMP file (header, palette, and
// pixel array) into a Bitmap. It accepts a pixel-array size field of
// zero by falling back to fileSize-pixelArrayOffset, matching writers
// that omit the field, per spec.md section 4.6.
func Decode(raw []byte) (*Bitmap, error) {
	if len(raw) < PixelArrayOffset {
		return nil, fmt.Errorf("%w: file too short (%d bytes)", shadowerr.ErrInvalidBmp, len(raw))
	}
	if !hasMagic(raw) {
		return nil, fmt.Errorf("%w: missing 'BM' magic", shadowerr.ErrInvalidBmp)
	}

	h := decodeHeader(raw[:PixelArrayOffset-paletteBytes])
	if h.DIBHeaderSize != DIBHeaderSize {
		return nil, fmt.Errorf("%w: dib header size %d", shadowerr.ErrUnsupportedBmp, h.DIBHeaderSize)
	}
	if h.Depth != Depth {
		return nil, fmt.Errorf("%w: depth %d", shadowerr.ErrUnsupportedBmp, h.Depth)
	}

	var pal Palette
	copy(pal[:], raw[PixelArrayOffset-paletteBytes:PixelArrayOffset])

	pixelArraySize := int(h.PixelArraySize)
	if pixelArraySize == 0 {
		pixelArraySize = int(h.FileSize) - int(h.PixelArrayOffset)
	}
	if pixelArraySize < 0 || PixelArrayOffset+pixelArraySize > len(raw) {
		return nil, fmt.Errorf("%w: pixel array size %d exceeds file length", shadowerr.ErrInvalidBmp, pixelArraySize)
	}

	pixels := make([]byte, pixelArraySize)
	copy(pixels, raw[PixelArrayOffset:PixelArrayOffset+pixelArraySize])
	h.PixelArraySize = uint32(pixelArraySize)

	return &Bitmap{Header: h, Palette: pal, Pixels: pixels}, nil
}

// Encode serializes the bitmap to a complete in-memory BMP file, in
// little-endian on-disk order. encoding/binary.LittleEndian is used for
// every multi-byte field, so the output is byte-identical regardless of
// the host's native endianness - there is no separate byte-swap step to
// get wrong.
func Encode(b *Bitmap) []byte {
	h := b.Header
	h.FileSize = uint32(PixelArrayOffset + len(b.Pixels))
	h.PixelArraySize = uint32(len(b.Pixels))

	out := make([]byte, PixelArrayOffset+len(b.Pixels))
	copy(out, encodeHeader(h))
	copy(out[PixelArrayOffset-paletteBytes:PixelArrayOffset], b.Palette[:])
	copy(out[PixelArrayOffset:], b.Pixels)
	return out
}

// LogicalPixels returns the width*height grayscale pixel values, with
// row padding stripped out. This is the "secret's pixel array" spec.md
// section 4.3 refers to as S: form_shadows and reveal_secret always
// operate on this view, never on the raw padded Pixels buffer.
func (b *Bitmap) LogicalPixels() []byte {
	width := b.Width()
	height := b.Header.AbsHeight()
	stride := b.RowStride()
	out := make([]byte, width*height)
	for row := 0; row < height; row++ {
		copy(out[row*width:(row+1)*width], b.Pixels[row*stride:row*stride+width])
	}
	return out
}

// SetLogicalPixels writes width*height grayscale values back into the
// padded Pixels buffer. Row-padding bytes are left as they are (zero
// for a bitmap from New, or when the buffer has to be reallocated).
// len(values) must equal width*height.
func (b *Bitmap) SetLogicalPixels(values []byte) error {
	width := b.Width()
	height := b.Header.AbsHeight()
	if len(values) != width*height {
		return fmt.Errorf("%w: expected %d logical pixels, got %d", shadowerr.ErrInvalidBmp, width*height, len(values))
	}
	stride := b.RowStride()
	if len(b.Pixels) != stride*height {
		b.Pixels = make([]byte, stride*height)
	}
	for row := 0; row < height; row++ {
		copy(b.Pixels[row*stride:row*stride+width], values[row*width:(row+1)*width])
	}
	return nil
}
