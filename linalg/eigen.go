// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Declare the Solver contract for symmetric eigen decomposition.
//   - Provide the default LAPACK-backed implementation (gonum mat.EigenSym).
//
// Contract:
//   - Eigenvalues are real; eigenvectors are orthonormal and stored as the
//     columns of the returned matrix, paired index-for-index with the values.
//   - No ordering is promised by a Solver; PCA sorts.

package linalg

import "gonum.org/v1/gonum/mat"

// Solver decomposes a symmetric matrix into real eigenvalues and orthonormal
// eigenvectors. Implementations must not mutate a.
type Solver interface {
	EigenSym(a mat.Symmetric) (vals []float64, vecs *mat.Dense, err error)
}

// LAPACK is the default Solver, delegating to gonum's symmetric eigensolver.
type LAPACK struct{}

// EigenSym implements Solver.
// Errors: ErrEigenFailed when the factorization does not converge.
// Complexity: O(n³).
func (LAPACK) EigenSym(a mat.Symmetric) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(a, true); !ok {
		return nil, nil, linalgErrorf(opLAPACK, ErrEigenFailed)
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return vals, &vecs, nil
}

// DefaultSolver returns the solver used when callers do not pick one.
func DefaultSolver() Solver { return LAPACK{} }
