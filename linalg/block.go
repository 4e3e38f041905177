// SPDX-License-Identifier: MIT

package linalg

import "gonum.org/v1/gonum/mat"

// BlockDiag assembles [[a, 0], [0, b]]. Either operand may be an empty
// (zero-value) matrix, in which case it contributes no rows or columns.
// Errors: ErrNilMatrix, ErrBadShape when both operands are empty.
func BlockDiag(a, b *mat.Dense) (*mat.Dense, error) {
	if a == nil || b == nil {
		return nil, linalgErrorf(opBlockDiag, ErrNilMatrix)
	}
	ar, ac := dimsOrZero(a)
	br, bc := dimsOrZero(b)
	if ar+br == 0 || ac+bc == 0 {
		return nil, linalgErrorf(opBlockDiag, ErrBadShape)
	}
	out := mat.NewDense(ar+br, ac+bc, nil)
	if ar > 0 && ac > 0 {
		out.Slice(0, ar, 0, ac).(*mat.Dense).Copy(a)
	}
	if br > 0 && bc > 0 {
		out.Slice(ar, ar+br, ac, ac+bc).(*mat.Dense).Copy(b)
	}

	return out, nil
}

// Symmetrize returns ½(A + Aᵀ) as a SymDense. Covariances built by matrix
// products are symmetric only up to rounding; solvers expecting mat.Symmetric
// read a single triangle, so both halves are averaged first.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func Symmetrize(a mat.Matrix) (*mat.SymDense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, linalgErrorf(opSymmetrize, err)
	}
	n, _ := a.Dims()
	s := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		s.SetSym(i, i, a.At(i, i))
		for j = i + 1; j < n; j++ {
			s.SetSym(i, j, 0.5*(a.At(i, j)+a.At(j, i)))
		}
	}

	return s, nil
}

// Congruence returns Wᵀ·C·W, the projection of C through W.
// Shapes must agree (C n×n, W n×k); the caller validates.
func Congruence(c mat.Matrix, w mat.Matrix) *mat.Dense {
	var cw, out mat.Dense
	cw.Mul(c, w)
	out.Mul(w.T(), &cw)

	return &out
}

func dimsOrZero(m *mat.Dense) (int, int) {
	if m.IsEmpty() {
		return 0, 0
	}

	return m.Dims()
}
