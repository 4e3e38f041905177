// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - The single "decompose → sort descending → reorder vectors → truncate"
//     primitive. Every caller (block sphering, joint PCA, DSS) goes through
//     PCA so that the ordering and rounding rules never diverge.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NoThreshold disables relative-eigenvalue truncation in PCAOptions.
const NoThreshold = -1.0

// PCAOptions controls truncation in PCA.
type PCAOptions struct {
	// Threshold keeps components with val/val[0] > Threshold.
	// Any negative value disables the cut.
	Threshold float64
	// MaxComps caps the number of retained components (≤0 → no cap).
	MaxComps int
	// Solver performs the decomposition (nil → DefaultSolver()).
	Solver Solver
}

// Components is the sorted, truncated spectrum of a symmetric matrix.
type Components struct {
	// Values holds the retained eigenvalues in non-increasing order.
	Values []float64
	// Vectors holds the matching eigenvectors as columns (n×Rank).
	// It is an empty matrix when Rank == 0.
	Vectors *mat.Dense
	// Rank is the number of retained components.
	Rank int
}

// PCA decomposes a, sorts eigenpairs by descending eigenvalue and truncates.
// Implementation:
//   - Stage 1: Solver.EigenSym(a).
//   - Stage 2: Stable descending argsort (ties keep solver order).
//   - Stage 3: Keep the leading run with val/val[0] > Threshold; a non-positive
//     leading eigenvalue keeps nothing. Apply MaxComps.
//   - Stage 4: Gather the retained vectors into a fresh n×Rank matrix.
//
// Errors:
//   - ErrNilMatrix, solver failures (ErrEigenFailed, ErrNaNInf), all tagged "PCA".
//
// Complexity:
//   - O(n³) for the decomposition, O(n log n + n·Rank) for sort and gather.
func PCA(a mat.Symmetric, opts PCAOptions) (*Components, error) {
	if a == nil {
		return nil, linalgErrorf(opPCA, ErrNilMatrix)
	}
	solver := opts.Solver
	if solver == nil {
		solver = DefaultSolver()
	}

	vals, vecs, err := solver.EigenSym(a)
	if err != nil {
		return nil, linalgErrorf(opPCA, err)
	}

	order := SortDescending(vals)
	n := len(vals)
	keep := n
	if opts.Threshold >= 0 {
		keep = 0
		if n > 0 && vals[order[0]] > 0 {
			top := vals[order[0]]
			for keep < n && vals[order[keep]]/top > opts.Threshold {
				keep++
			}
		}
	}
	if opts.MaxComps > 0 && keep > opts.MaxComps {
		keep = opts.MaxComps
	}

	out := &Components{Values: make([]float64, keep), Vectors: &mat.Dense{}, Rank: keep}
	if keep == 0 {
		return out, nil
	}
	rows, _ := vecs.Dims()
	out.Vectors = mat.NewDense(rows, keep, nil)
	col := make([]float64, rows)
	for k := 0; k < keep; k++ {
		out.Values[k] = vals[order[k]]
		mat.Col(col, order[k], vecs)
		out.Vectors.SetCol(k, col)
	}

	return out, nil
}

// SortDescending returns the permutation that orders vals from largest to
// smallest. Equal values keep their original relative order; NaNs sort last.
// vals itself is not modified.
func SortDescending(vals []float64) []int {
	neg := make([]float64, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			neg[i] = math.Inf(1)
			continue
		}
		neg[i] = -v
	}
	idx := make([]int, len(vals))
	floats.Argsort(neg, idx)

	return stabilize(neg, idx)
}

// stabilize reorders runs of equal keys by original index so that ties are
// deterministic regardless of the sort algorithm used by floats.Argsort.
func stabilize(sorted []float64, idx []int) []int {
	for lo := 0; lo < len(sorted); {
		hi := lo + 1
		for hi < len(sorted) && sorted[hi] == sorted[lo] {
			hi++
		}
		if hi-lo > 1 {
			run := idx[lo:hi]
			for i := 1; i < len(run); i++ {
				for k := i; k > 0 && run[k] < run[k-1]; k-- {
					run[k], run[k-1] = run[k-1], run[k]
				}
			}
		}
		lo = hi
	}

	return idx
}
