// SPDX-License-Identifier: MIT

package covariance

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/linalg"
)

// Cross returns C = [X|Y]ᵀ[X|Y] and m = cols(X).
// This is the zero-lag fast path; it performs exactly the same product as a
// single-chunk Accumulator with lag 0, so both give bitwise identical pages.
//
// Errors: ErrNilInput, ErrRowMismatch.
// Complexity: O(n·(p+q)²).
func Cross(x, y *mat.Dense) (*mat.Dense, int, error) {
	if x == nil || y == nil {
		return nil, 0, covErrorf(opCross, ErrNilInput)
	}
	if err := linalg.ValidateSameRows(x, y); err != nil {
		return nil, 0, covErrorf(opCross, ErrRowMismatch)
	}
	_, m := x.Dims()

	return crossProduct(x, y), m, nil
}

// Gram returns XᵀX (no centring).
// Errors: ErrNilInput.
func Gram(x mat.Matrix) (*mat.Dense, error) {
	if err := linalg.ValidateNotNil(x); err != nil {
		return nil, covErrorf(opGram, ErrNilInput)
	}
	var g mat.Dense
	g.Mul(x.T(), x)

	return &g, nil
}

// crossProduct forms [x|y] and returns its Gram matrix.
func crossProduct(x, y mat.Matrix) *mat.Dense {
	var xy, c mat.Dense
	xy.Augment(x, y)
	c.Mul(xy.T(), &xy)

	return &c
}
