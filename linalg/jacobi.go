// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Deterministic pure-Go symmetric eigen solver based on classical Jacobi
//     rotations (largest off-diagonal pivot).
//   - Serves as a reproducible reference for the LAPACK path and as a solver
//     of choice when bitwise stability across platforms matters more than speed.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Jacobi defaults.
const (
	// DefaultJacobiTol is the convergence threshold for max|A[p,q]| relative
	// to the Frobenius norm of the input.
	DefaultJacobiTol = 1e-13

	// DefaultJacobiSweeps bounds the rotation count at sweeps·n² when MaxIter is zero.
	DefaultJacobiSweeps = 50
)

// Jacobi is a Solver running classical Jacobi rotations.
// The zero value is ready to use and resolves to the documented defaults.
type Jacobi struct {
	// Tol is the relative off-diagonal convergence threshold (0 → DefaultJacobiTol).
	Tol float64
	// MaxIter caps the number of single rotations (0 → DefaultJacobiSweeps·n²).
	MaxIter int
}

// EigenSym computes eigenvalues and eigenvectors of a via Jacobi rotations.
// Implementation:
//   - Stage 1: Copy a into a flat row-major working buffer; Q := I.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and annihilate it with a plane rotation, accumulating the rotation into Q.
//   - Stage 3: Stop when max|A[p,q]| ≤ Tol·‖A‖_F; the diagonal holds the eigenvalues.
//
// Errors:
//   - ErrNaNInf when a contains non-finite values.
//   - ErrEigenFailed when MaxIter rotations were not enough to converge.
//
// Determinism:
//   - Fixed pivot scan and update order; results are bitwise reproducible.
//
// Complexity:
//   - Time O(MaxIter·n²) (pivot scan dominates), Space O(n²).
func (j Jacobi) EigenSym(a mat.Symmetric) ([]float64, *mat.Dense, error) {
	n := a.SymmetricDim()
	tol := j.Tol
	if tol <= 0 {
		tol = DefaultJacobiTol
	}
	maxIter := j.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultJacobiSweeps * n * n
	}

	// Stage 1: working copy and orthogonal accumulator.
	w := make([]float64, n*n)
	q := make([]float64, n*n)
	var (
		i, k int
		v    float64
		norm float64
	)
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			v = a.At(i, k)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, nil, linalgErrorf(opJacobi, ErrNaNInf)
			}
			w[i*n+k] = v
			norm += v * v
		}
		q[i*n+i] = 1
	}
	limit := tol * math.Sqrt(norm)

	// Stage 2: rotations.
	var (
		iter, p, r         int
		maxOff, off        float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
		converged          bool
	)
	for iter = 0; iter <= maxIter; iter++ {
		maxOff, p, r = 0, 0, 0
		for i = 0; i < n; i++ {
			for k = i + 1; k < n; k++ {
				off = math.Abs(w[i*n+k])
				if off > maxOff {
					maxOff, p, r = off, i, k
				}
			}
		}
		if maxOff <= limit {
			converged = true
			break
		}
		if iter == maxIter {
			break
		}

		app = w[p*n+p]
		aqq = w[r*n+r]
		apq = w[p*n+r]
		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)); c = 1/√(1+t²); s = t·c
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = w[i*n+p]
			aiq = w[i*n+r]
			w[i*n+p] = c*aip - s*aiq
			w[p*n+i] = w[i*n+p]
			w[i*n+r] = s*aip + c*aiq
			w[r*n+i] = w[i*n+r]
		}
		w[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		w[r*n+r] = s*s*app + 2*c*s*apq + c*c*aqq
		w[p*n+r], w[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = q[i*n+p]
			qiq = q[i*n+r]
			q[i*n+p] = c*qip - s*qiq
			q[i*n+r] = s*qip + c*qiq
		}
	}
	if !converged {
		return nil, nil, linalgErrorf(opJacobi, ErrEigenFailed)
	}

	// Stage 3: eigenvalues from the diagonal.
	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = w[i*n+i]
	}

	return vals, mat.NewDense(n, n, q), nil
}
