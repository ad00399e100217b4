package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zanicar/shadowbmp/bmp"
	"github.com/zanicar/shadowbmp/shadow"
)

func TestHideMatchesLSBEmbeddingExample(t *testing.T) {
	// spec.md T4: 8 carrier pixels all 0xF0, shadow byte 0xA5.
	carrier := bmp.New(8, 1)
	for i := range carrier.Pixels {
		carrier.Pixels[i] = 0xF0
	}
	sh := shadow.Shadow{Index: 1, Width: 1, Height: 1, Pixels: []byte{0xA5}}

	require.NoError(t, Hide(carrier, sh, 691))

	want := []byte{0xF1, 0xF0, 0xF1, 0xF0, 0xF0, 0xF1, 0xF0, 0xF1}
	assert.Equal(t, want, carrier.Pixels)
	assert.Equal(t, uint16(691), carrier.Seed())
	assert.Equal(t, 1, carrier.ShadowIndex())
}

func TestHideRetrieveRoundTrip(t *testing.T) {
	carrier := bmp.New(64, 1) // 64 pixels -> 8 bytes of capacity
	sh := shadow.Shadow{Index: 3, Width: 8, Height: 1, Pixels: []byte{0x01, 0x02, 0xFA, 0x00, 0xFF, 0x55, 0xAA, 0x7E}}

	require.NoError(t, Hide(carrier, sh, 42))

	got, seed, err := Retrieve(carrier, 8, 1, 1) // secretWidth*height/k = 8
	require.NoError(t, err)
	assert.Equal(t, sh.Pixels, got.Pixels)
	assert.Equal(t, sh.Index, got.Index)
	assert.Equal(t, uint16(42), seed)
}

func TestHideRejectsInsufficientCapacity(t *testing.T) {
	carrier := bmp.New(4, 1) // 4 pixels -> 0 bytes of capacity
	sh := shadow.Shadow{Index: 1, Pixels: []byte{0x01}}
	err := Hide(carrier, sh, 0)
	assert.Error(t, err)
}
