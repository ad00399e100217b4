package shadow

import (
	"fmt"

	"github.com/zanicar/shadowbmp/gf251"
	"github.com/zanicar/shadowbmp/shadowerr"
)

// Shadow is one of the n shares produced by FormShadows: a 1-based
// index x and its pixel array, shaped width x height as close to
// square as ClosestPair can make it.
type Shadow struct {
	Index  int
	Width  int
	Height int
	Pixels []byte
}

// FormShadows partitions secret into sections of k consecutive bytes
// (treated as polynomial coefficients) and evaluates each section's
// polynomial at n distinct points x = 1..n, producing n shadows any k
// of which can recover secret, per spec.md section 4.3. len(secret)
// must be a multiple of k, or ErrInvalidSecretSize is returned.
func FormShadows(secret []byte, k, n int) ([]Shadow, error) {
	if k <= 0 || n <= 0 || k > n {
		return nil, fmt.Errorf("%w: k=%d n=%d", shadowerr.ErrInvalidArguments, k, n)
	}
	if len(secret)%k != 0 {
		return nil, fmt.Errorf("%w: secret length %d not divisible by k=%d", shadowerr.ErrInvalidSecretSize, len(secret), k)
	}

	sections := len(secret) / k
	width, height := ClosestPair(sections)

	shadows := make([]Shadow, n)
	for idx := range shadows {
		shadows[idx] = Shadow{
			Index:  idx + 1,
			Width:  width,
			Height: height,
			Pixels: make([]byte, sections),
		}
	}

	for j := 0; j < sections; j++ {
		coeffs := secret[j*k : (j+1)*k]
		for _, sh := range shadows {
			x := uint8(sh.Index)
			var acc int64
			for i, c := range coeffs {
				acc += int64(c) * int64(gf251.PowEval(x, i))
			}
			sh.Pixels[j] = gf251.Mod(acc)
		}
	}

	return shadows, nil
}
