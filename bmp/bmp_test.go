package bmp

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasCanonicalPalette(t *testing.T) {
	b := New(8, 1)
	assert.True(t, b.Palette.IsCanonicalGrayscale())
	for i := 0; i < 256; i++ {
		o := i * 4
		assert.Equal(t, byte(i), b.Palette[o])
		assert.Equal(t, byte(i), b.Palette[o+1])
		assert.Equal(t, byte(i), b.Palette[o+2])
		assert.Equal(t, byte(0), b.Palette[o+3])
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := New(8, 1)
	copy(b.Pixels, []byte{10, 20, 30, 40, 50, 60, 70, 80})
	b.SetSeed(691)
	b.SetShadowIndex(2)

	raw := Encode(b)
	assert.Equal(t, int(PixelArrayOffset)+len(b.Pixels), len(raw))

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, b.Pixels, got.Pixels)
	assert.Equal(t, b.Palette, got.Palette)
	assert.Equal(t, uint16(691), got.Seed())
	assert.Equal(t, 2, got.ShadowIndex())
	assert.Equal(t, uint32(PixelArrayOffset), got.Header.PixelArrayOffset)
	assert.Equal(t, uint32(PixelArrayOffset+len(b.Pixels)), got.Header.FileSize)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	raw := Encode(New(4, 4))
	raw[0] = 'X'
	_, err := Decode(raw)
	assert.Error(t, err)
}

func TestDecodeRejectsUnsupportedDepth(t *testing.T) {
	raw := Encode(New(4, 4))
	raw[28] = 24 // depth field
	_, err := Decode(raw)
	assert.Error(t, err)
}

func TestDecodeFallsBackToFileSizeWhenPixelArraySizeZero(t *testing.T) {
	b := New(4, 4)
	raw := Encode(b)
	// zero out the pixel-array-size field to simulate a writer that omits it.
	raw[34], raw[35], raw[36], raw[37] = 0, 0, 0, 0
	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, len(b.Pixels), len(got.Pixels))
}

func TestNegativeHeightPreservesSign(t *testing.T) {
	b := New(4, 4)
	b.Header.Height = -4
	raw := Encode(b)
	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, -4, got.Height())
	assert.Equal(t, 4, got.Header.AbsHeight())
}

func TestRowStridePadsToMultipleOfFour(t *testing.T) {
	// width=3 pixels -> 3 bytes/row, padded up to 4.
	h := newHeader(3, 2)
	assert.Equal(t, 4, h.RowStride())
	// width=5 -> 5 bytes/row, padded up to 8.
	h = newHeader(5, 2)
	assert.Equal(t, 8, h.RowStride())
}

func TestLogicalPixelsStripPadding(t *testing.T) {
	b := New(5, 2) // stride 8, 3 bytes of padding per row
	logical := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	require.NoError(t, b.SetLogicalPixels(logical))
	assert.Equal(t, logical, b.LogicalPixels())
	// padding bytes remain zero
	assert.Equal(t, byte(0), b.Pixels[5])
	assert.Equal(t, byte(0), b.Pixels[6])
	assert.Equal(t, byte(0), b.Pixels[7])
}

func TestFileStoreRoundTripsThroughMemMapFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileStore(fs)

	b := New(8, 1)
	copy(b.Pixels, []byte{10, 20, 30, 40, 50, 60, 70, 80})

	require.NoError(t, store.Save("secret.bmp", b))
	got, err := store.Load("secret.bmp")
	require.NoError(t, err)
	assert.Equal(t, b.Pixels, got.Pixels)
}

func TestIsValidCarrier(t *testing.T) {
	b := New(4, 2) // 8 pixels
	assert.True(t, IsValidCarrier(b, 2))
	assert.True(t, IsValidCarrier(b, 4))
	assert.False(t, IsValidCarrier(b, 3))
}

func TestIsValidShadowRequiresNonzeroIndexAndCapacity(t *testing.T) {
	b := New(64, 1) // 64 raw pixel bytes (M)
	assert.False(t, IsValidShadow(b, 2, 8))
	b.SetShadowIndex(1)
	// secretSize=2, k=2 => required = (2*8)/2 = 8 <= M=64
	assert.True(t, IsValidShadow(b, 2, 2))
	// secretSize=20, k=2 => required = 80 > M=64
	assert.False(t, IsValidShadow(b, 2, 20))
}
