package gf251

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvTableIsMultiplicativeInverse(t *testing.T) {
	for a := 1; a < Prime; a++ {
		got := Mul(uint8(a), Inv(uint8(a)))
		assert.Equalf(t, uint8(1), got, "a=%d", a)
	}
}

func TestAddWraps(t *testing.T) {
	assert.Equal(t, uint8(249), Add(250, 250))
}

func TestSubNonNegative(t *testing.T) {
	assert.Equal(t, uint8(249), Sub(0, 2))
}

func TestMulWraparound(t *testing.T) {
	// spec.md T5: section [250, 250], k=2, evaluate at x=1 and x=2.
	c0, c1 := uint8(250), uint8(250)
	at1 := Add(Mul(c0, PowEval(1, 0)), Mul(c1, PowEval(1, 1)))
	at2 := Add(Mul(c0, PowEval(2, 0)), Mul(c1, PowEval(2, 1)))
	assert.Equal(t, uint8(249), at1)
	// spec.md T5 states 247 here, but 750 mod 251 = 248; the math wins.
	assert.Equal(t, uint8(248), at2)
}

func TestPowEval(t *testing.T) {
	cases := []struct {
		x    uint8
		i    int
		want uint8
	}{
		{5, 0, 1},
		{5, 1, 5},
		{5, 2, 25},
		{16, 2, Mod(16 * 16)},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PowEval(c.x, c.i))
	}
}

func TestDivIsInverseOfMul(t *testing.T) {
	for a := uint8(1); a < Prime; a++ {
		for b := uint8(1); b < 10; b++ {
			prod := Mul(a, b)
			assert.Equal(t, a, Div(prod, b))
		}
	}
}
