// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package bmp

import "encoding/binary"

// PixelArrayOffset is the fixed byte offset of the pixel array for every
// bitmap this package produces: 14 (file header) + 40 (DIB header) + 1024
// (256-entry BGRA palette).
const PixelArrayOffset = 14 + 40 + paletteBytes

// DIBHeaderSize is the only supported DIB header size: the 40-byte
// BITMAPINFOHEADER. Any other value is UnsupportedBmp.
const DIBHeaderSize = 40

// Depth is the only supported bit depth: 8-bpp indexed.
const Depth = 8

// magic are the two bytes every BMP file starts with.
var magic = [2]byte{'B', 'M'}

// Header holds both the 14-byte BMP file header and the 40-byte
// BITMAPINFOHEADER DIB header. The two reserved fields of the file header
// are repurposed by this format to carry the permutation seed and the
// 1-based shadow index (0 for a non-shadow bitmap), per spec.md section 6.
type Header struct {
	FileSize         uint32
	Seed             uint16
	ShadowIndex      uint16
	PixelArrayOffset uint32

	DIBHeaderSize   uint32
	Width           uint32
	Height          int32 // signed: negative means top-down row order
	Planes          uint16
	Depth           uint16
	Compression     uint32
	PixelArraySize  uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// RowStride returns the number of bytes per row after padding to a
// multiple of 4, per spec.md section 3: ((8*width + 31)/32)*4.
func (h Header) RowStride() int {
	return rowStride(int(h.Width))
}

func rowStride(width int) int {
	return ((8*width + 31) / 32) * 4
}

// AbsHeight returns |Height|, used for pixel-array-size arithmetic.
func (h Header) AbsHeight() int {
	if h.Height < 0 {
		return int(-h.Height)
	}
	return int(h.Height)
}

// newHeader builds a canonical header for a freshly constructed bitmap of
// the given dimensions. Height is stored positive (bottom-up), matching
// the most common BMP convention; top-down bitmaps are only produced by
// round-tripping a negative height read from disk.
func newHeader(width, height int) Header {
	stride := rowStride(width)
	pixelArraySize := stride * height
	return Header{
		FileSize:         uint32(PixelArrayOffset + pixelArraySize),
		Seed:             0,
		ShadowIndex:      0,
		PixelArrayOffset: PixelArrayOffset,
		DIBHeaderSize:    DIBHeaderSize,
		Width:            uint32(width),
		Height:           int32(height),
		Planes:           1,
		Depth:            Depth,
		Compression:      0,
		PixelArraySize:   uint32(pixelArraySize),
		XPixelsPerMeter:  2835, // ~72 DPI, arbitrary but conventional
		YPixelsPerMeter:  2835,
		ColorsUsed:       256,
		ColorsImportant:  256,
	}
}

// encodeHeader writes the 54-byte file+DIB header in little-endian
// on-disk order, regardless of host endianness.
func encodeHeader(h Header) []byte {
	buf := make([]byte, PixelArrayOffset-paletteBytes)
	buf[0], buf[1] = magic[0], magic[1]
	le := binary.LittleEndian
	le.PutUint32(buf[2:6], h.FileSize)
	le.PutUint16(buf[6:8], h.Seed)
	le.PutUint16(buf[8:10], h.ShadowIndex)
	le.PutUint32(buf[10:14], h.PixelArrayOffset)
	le.PutUint32(buf[14:18], h.DIBHeaderSize)
	le.PutUint32(buf[18:22], h.Width)
	le.PutUint32(buf[22:26], uint32(h.Height))
	le.PutUint16(buf[26:28], h.Planes)
	le.PutUint16(buf[28:30], h.Depth)
	le.PutUint32(buf[30:34], h.Compression)
	le.PutUint32(buf[34:38], h.PixelArraySize)
	le.PutUint32(buf[38:42], uint32(h.XPixelsPerMeter))
	le.PutUint32(buf[42:46], uint32(h.YPixelsPerMeter))
	le.PutUint32(buf[46:50], h.ColorsUsed)
	le.PutUint32(buf[50:54], h.ColorsImportant)
	return buf
}

// decodeHeader parses the 54-byte file+DIB header from on-disk
// little-endian order into host representation. The caller is
// responsible for validating the magic bytes before or after decoding.
func decodeHeader(buf []byte) Header {
	le := binary.LittleEndian
	return Header{
		FileSize:         le.Uint32(buf[2:6]),
		Seed:             le.Uint16(buf[6:8]),
		ShadowIndex:      le.Uint16(buf[8:10]),
		PixelArrayOffset: le.Uint32(buf[10:14]),
		DIBHeaderSize:    le.Uint32(buf[14:18]),
		Width:            le.Uint32(buf[18:22]),
		Height:           int32(le.Uint32(buf[22:26])),
		Planes:           le.Uint16(buf[26:28]),
		Depth:            le.Uint16(buf[28:30]),
		Compression:      le.Uint32(buf[30:34]),
		PixelArraySize:   le.Uint32(buf[34:38]),
		XPixelsPerMeter:  int32(le.Uint32(buf[38:42])),
		YPixelsPerMeter:  int32(le.Uint32(buf[42:46])),
		ColorsUsed:       le.Uint32(buf[46:50]),
		ColorsImportant:  le.Uint32(buf[50:54]),
	}
}

func hasMagic(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == magic[0] && buf[1] == magic[1]
}
