package shadow

import (
	"fmt"

	"github.com/zanicar/shadowbmp/gf251"
	"github.com/zanicar/shadowbmp/shadowerr"
)

// matrix is a k x (k+1) augmented matrix over GF(251), used only during
// recovery. Entries are reduced modulo 251 after every operation.
type matrix [][]uint8

// newVandermonde builds the k x (k+1) Vandermonde system for recovering
// one pixel position: row j is [1, x_j, x_j^2, ..., x_j^{k-1} | y_j],
// per spec.md section 4.3.
func newVandermonde(xs []uint8, ys []uint8) matrix {
	k := len(xs)
	m := make(matrix, k)
	for j := 0; j < k; j++ {
		row := make([]uint8, k+1)
		for i := 0; i < k; i++ {
			row[i] = gf251.PowEval(xs[j], i)
		}
		row[k] = ys[j]
		m[j] = row
	}
	return m
}

// solve runs Gauss-Jordan elimination per spec.md section 4.4 and
// returns the solution coefficients c_0..c_{k-1}. Distinct shadow
// indices are distinct nonzero GF(251) residues, which makes the
// Vandermonde matrix non-singular; if a required pivot is nonetheless
// zero (e.g. a caller passed duplicate or invalid indices), the system
// reports ErrInsufficientShadows per spec.md section 4.4's failure
// clause.
func (m matrix) solve() ([]uint8, error) {
	k := len(m)

	// Forward elimination.
	for j := 0; j < k-1; j++ {
		for i := k - 1; i > j; i-- {
			if m[i-1][j] == 0 {
				return nil, fmt.Errorf("%w: zero pivot at row %d, col %d", shadowerr.ErrInsufficientShadows, i-1, j)
			}
			a := gf251.Mul(m[i][j], gf251.Inv(m[i-1][j]))
			for t := j; t <= k; t++ {
				m[i][t] = gf251.Sub(m[i][t], gf251.Mul(m[i-1][t], a))
			}
		}
	}

	// Back-substitution / normalization.
	for i := k - 1; i > 0; i-- {
		if m[i][i] == 0 {
			return nil, fmt.Errorf("%w: zero pivot at row %d, col %d", shadowerr.ErrInsufficientShadows, i, i)
		}
		m[i][k] = gf251.Mul(m[i][k], gf251.Inv(m[i][i]))
		m[i][i] = 1
		for t := i - 1; t >= 0; t-- {
			m[t][k] = gf251.Sub(m[t][k], gf251.Mul(m[i][k], m[t][i]))
			m[t][i] = 0
		}
	}
	if m[0][0] == 0 {
		return nil, fmt.Errorf("%w: zero pivot at row 0, col 0", shadowerr.ErrInsufficientShadows)
	}
	m[0][k] = gf251.Mul(m[0][k], gf251.Inv(m[0][0]))

	c := make([]uint8, k)
	for j := 0; j < k; j++ {
		c[j] = m[j][k]
	}
	return c, nil
}
