// SPDX-License-Identifier: MIT
// Package cca: single-page solve.
//
// Purpose:
//   - Sphere each diagonal block of C, rotate the joint sphered covariance
//     onto its principal axes and read off the canonical pairs.
//
// Notes:
//   - Block slicing after sphering uses the retained rank of X, not m, so a
//     rank-deficient X still produces a correctly partitioned V.

package cca

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/linalg"
)

// Solve computes the CCA of one covariance matrix C = [X|Y]ᵀ[X|Y] whose
// first m rows and columns belong to X.
//
// Errors:
//   - ErrEmptyInput for a nil C, ErrNonSquare, ErrSplitRange unless 0 < m < n,
//     ErrNonFinite for NaN/Inf entries.
//   - ErrNumerical (wrapping the linalg sentinel) when a decomposition fails.
//
// Complexity: O(n³).
func Solve(c mat.Matrix, m int, opts ...Option) (*Result, error) {
	if err := validateCovariance(c, m); err != nil {
		return nil, ccaErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	res, err := solvePage(c, m, o)
	if err != nil {
		return nil, numericalf(opSolve, err)
	}

	return res, nil
}

func validateCovariance(c mat.Matrix, m int) error {
	if linalg.ValidateNotNil(c) != nil {
		return ErrEmptyInput
	}
	r, cols := c.Dims()
	if r != cols {
		return ErrNonSquare
	}
	if m <= 0 || m >= r {
		return ErrSplitRange
	}
	if linalg.ValidateFinite(c) != nil {
		return ErrNonFinite
	}

	return nil
}

// solvePage runs the algorithm on a validated page.
func solvePage(c mat.Matrix, m int, o Options) (*Result, error) {
	n, _ := c.Dims()
	cs, err := linalg.Symmetrize(c)
	if err != nil {
		return nil, err
	}

	cxw, rx, err := sphere(cs.SliceSym(0, m), o)
	if err != nil {
		return nil, err
	}
	cyw, ry, err := sphere(cs.SliceSym(m, n), o)
	if err != nil {
		return nil, err
	}
	res := &Result{A: &mat.Dense{}, B: &mat.Dense{}, R: []float64{}, RankX: rx, RankY: ry}
	nc := min(rx, ry)
	o.logger.Debug().
		Int("n", n).
		Int("m", m).
		Int("rank_x", rx).
		Int("rank_y", ry).
		Msg("cca: blocks sphered")
	if nc == 0 {
		return res, nil
	}

	aa, err := linalg.BlockDiag(cxw, cyw)
	if err != nil {
		return nil, err
	}
	joint, err := linalg.Symmetrize(linalg.Congruence(c, aa))
	if err != nil {
		return nil, err
	}
	comps, err := linalg.PCA(joint, linalg.PCAOptions{
		Threshold: linalg.NoThreshold,
		MaxComps:  nc,
		Solver:    o.solver,
	})
	if err != nil {
		return nil, err
	}

	v := comps.Vectors
	res.A = new(mat.Dense)
	res.A.Mul(cxw, v.Slice(0, rx, 0, nc))
	res.A.Scale(math.Sqrt2, res.A)
	res.B = new(mat.Dense)
	res.B.Mul(cyw, v.Slice(rx, rx+ry, 0, nc))
	res.B.Scale(math.Sqrt2, res.B)
	res.R = make([]float64, nc)
	for k := range res.R {
		res.R[k] = comps.Values[k] - 1
	}

	return res, nil
}

// sphere returns the whitening matrix V·diag(1/√λ^(1−1e-12)) of one diagonal
// block together with its retained rank. Rank 0 yields an empty matrix.
func sphere(block mat.Symmetric, o Options) (*mat.Dense, int, error) {
	comps, err := linalg.PCA(block, linalg.PCAOptions{
		Threshold: o.threshold,
		Solver:    o.solver,
	})
	if err != nil {
		return nil, 0, err
	}
	if comps.Rank == 0 {
		return &mat.Dense{}, 0, nil
	}
	w := comps.Vectors
	rows, _ := w.Dims()
	var i, k int
	for k = 0; k < comps.Rank; k++ {
		s := 1 / math.Sqrt(math.Pow(comps.Values[k], deflationExponent))
		for i = 0; i < rows; i++ {
			w.Set(i, k, w.At(i, k)*s)
		}
	}

	return w, comps.Rank, nil
}
