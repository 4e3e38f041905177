// SPDX-License-Identifier: MIT
// Package cca: standalone whitening helpers.
// Neither helper removes the mean of X.

package cca

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/linalg"
)

// Whiten returns X·W and W, with W = V·diag(1/√(λ+fudge))·Vᵀ, where λ, V are the
// eigenpairs of XᵀX (rounding negatives clamp to zero). The fudge term (WithFudge, default 1e-18) keeps
// near-null directions finite. W is symmetric, so the output stays aligned
// with the input channels.
//
// Errors: ErrEmptyInput, ErrNonFinite, ErrNumerical.
// Complexity: O(T·p² + p³).
func Whiten(x *mat.Dense, opts ...Option) (xw, w *mat.Dense, err error) {
	if x == nil || x.IsEmpty() {
		return nil, nil, ccaErrorf(opWhiten, ErrEmptyInput)
	}
	if linalg.ValidateFinite(x) != nil {
		return nil, nil, ccaErrorf(opWhiten, ErrNonFinite)
	}
	o := gatherOptions(opts...)

	var gram mat.SymDense
	gram.SymOuterK(1, x.T())
	comps, err := linalg.PCA(&gram, linalg.PCAOptions{Threshold: linalg.NoThreshold, Solver: o.solver})
	if err != nil {
		return nil, nil, numericalf(opWhiten, err)
	}

	v := comps.Vectors
	p, _ := v.Dims()
	scaled := mat.DenseCopyOf(v)
	var i, k int
	for k = 0; k < comps.Rank; k++ {
		s := 1 / math.Sqrt(math.Max(comps.Values[k], 0)+o.fudge)
		for i = 0; i < p; i++ {
			scaled.Set(i, k, scaled.At(i, k)*s)
		}
	}
	w = new(mat.Dense)
	w.Mul(scaled, v.T())
	xw = new(mat.Dense)
	xw.Mul(x, w)

	return xw, w, nil
}

// SVDWhiten returns U·Vᵀ from the thin SVD X = U·Σ·Vᵀ. The columns of the
// result are orthonormal and span the column space of X.
// Errors: ErrEmptyInput, ErrNonFinite, ErrNumerical.
func SVDWhiten(x *mat.Dense) (*mat.Dense, error) {
	if x == nil || x.IsEmpty() {
		return nil, ccaErrorf(opSVDWhiten, ErrEmptyInput)
	}
	if linalg.ValidateFinite(x) != nil {
		return nil, ccaErrorf(opSVDWhiten, ErrNonFinite)
	}
	u, v, _, err := linalg.ThinSVD(x)
	if err != nil {
		return nil, numericalf(opSVDWhiten, err)
	}
	var out mat.Dense
	out.Mul(u, v.T())

	return &out, nil
}
