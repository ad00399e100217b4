package shadow

import (
	"fmt"

	"github.com/zanicar/shadowbmp/shadowerr"
)

// RevealSecret recovers the original secret from any k shadows produced
// by FormShadows with the same k, per spec.md section 4.3. Exactly the
// first k entries of shadows are used; callers that have more than k
// available should trim to k before calling. Every shadow must carry
// the same pixel count (one section value per position).
//
// For each pixel position p, it builds the k x (k+1) Vandermonde system
// described in spec.md section 4.3 (row j = [1, x_j, ..., x_j^{k-1} |
// y_{j,p}]) and solves it with Gauss-Jordan elimination (section 4.4).
// The resulting coefficients scatter into the recovered secret as
// S[p*k+r] = c_r for r in [0, k), fixing the original revealsecret
// scatter-indexing defect spec.md section 9 documents.
func RevealSecret(shadows []Shadow, k int) ([]byte, error) {
	if len(shadows) < k {
		return nil, fmt.Errorf("%w: need %d shadows, got %d", shadowerr.ErrInsufficientShadows, k, len(shadows))
	}
	used := shadows[:k]

	sections := len(used[0].Pixels)
	for _, sh := range used {
		if len(sh.Pixels) != sections {
			return nil, fmt.Errorf("%w: mismatched shadow pixel counts", shadowerr.ErrInsufficientShadows)
		}
		if sh.Index <= 0 {
			return nil, fmt.Errorf("%w: shadow index %d must be positive", shadowerr.ErrInsufficientShadows, sh.Index)
		}
	}

	xs := make([]uint8, k)
	for j, sh := range used {
		xs[j] = uint8(sh.Index)
	}

	secret := make([]byte, sections*k)
	ys := make([]uint8, k)
	for p := 0; p < sections; p++ {
		for j, sh := range used {
			ys[j] = sh.Pixels[p]
		}
		m := newVandermonde(xs, ys)
		coeffs, err := m.solve()
		if err != nil {
			return nil, err
		}
		for r, c := range coeffs {
			secret[p*k+r] = c
		}
	}

	return secret, nil
}
