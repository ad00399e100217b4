package shadow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosestPairPrefersSquare(t *testing.T) {
	w, h := ClosestPair(16)
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)

	// 7 is prime: no divisor in [3, floor(sqrt(7))=2], falls back to 7x1.
	w, h = ClosestPair(7)
	assert.Equal(t, 7, w)
	assert.Equal(t, 1, h)
}

func TestFormAndRevealTinyTwoOfThree(t *testing.T) {
	// spec.md T1.
	secret := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	shadows, err := FormShadows(secret, 2, 3)
	require.NoError(t, err)
	require.Len(t, shadows, 3)
	for _, sh := range shadows {
		assert.Len(t, sh.Pixels, 4)
	}

	chosen := []Shadow{shadows[0], shadows[2]} // indices 1 and 3
	recovered, err := RevealSecret(chosen, 2)
	require.NoError(t, err)
	assert.Equal(t, secret, recovered)
}

func TestFormRejectsIndivisibleSecret(t *testing.T) {
	_, err := FormShadows([]byte{1, 2, 3}, 2, 3)
	assert.Error(t, err)
}

func TestFieldWraparound(t *testing.T) {
	// spec.md T5: section [250, 250], k=2. Evaluate at x=1 and x=2.
	secret := []byte{250, 250}
	shadows, err := FormShadows(secret, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(249), shadows[0].Pixels[0]) // x=1
	// spec.md T5 states 247, but 750 mod 251 = 248; the math wins.
	assert.Equal(t, uint8(248), shadows[1].Pixels[0]) // x=2
}

func TestRecoveryNonConsecutiveIndices(t *testing.T) {
	// spec.md T6: k=3, recover with shadow indices {2, 5, 7}.
	secret := make([]byte, 300) // 100 sections of 3 bytes
	for i := range secret {
		secret[i] = byte((i*37 + 5) % 251)
	}
	shadows, err := FormShadows(secret, 3, 7)
	require.NoError(t, err)

	byIndex := map[int]Shadow{}
	for _, sh := range shadows {
		byIndex[sh.Index] = sh
	}
	chosen := []Shadow{byIndex[2], byIndex[5], byIndex[7]}
	recovered, err := RevealSecret(chosen, 3)
	require.NoError(t, err)
	assert.Equal(t, secret, recovered)
}

func TestRoundTripAllKChooseSubsetsSmall(t *testing.T) {
	secret := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	k, n := 2, 5
	shadows, err := FormShadows(secret, k, n)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			recovered, err := RevealSecret([]Shadow{shadows[i], shadows[j]}, k)
			require.NoError(t, err)
			assert.Equal(t, secret, recovered, "pair (%d,%d)", i, j)
		}
	}
}

func TestFormShadowsFieldClosure(t *testing.T) {
	secret := make([]byte, 250)
	for i := range secret {
		secret[i] = 250
	}
	shadows, err := FormShadows(secret, 5, 10)
	require.NoError(t, err)
	for _, sh := range shadows {
		for _, p := range sh.Pixels {
			assert.LessOrEqual(t, p, uint8(250))
		}
	}
}

func TestRevealSecretInsufficientShadows(t *testing.T) {
	_, err := RevealSecret([]Shadow{{Index: 1, Pixels: []byte{1}}}, 2)
	assert.Error(t, err)
}
