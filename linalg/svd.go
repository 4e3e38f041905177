// SPDX-License-Identifier: MIT

package linalg

import (
	"gonum.org/v1/gonum/mat"
)

// DefaultPinvRcond is the relative singular-value cutoff used by Pinv when
// rcond ≤ 0 (matches the customary 1e-15 used for double precision).
const DefaultPinvRcond = 1e-15

// ThinSVD factorizes a (r×c) as U·diag(s)·Vᵀ with U r×k and V c×k, k = min(r, c).
// Errors: ErrNilMatrix, ErrSVDFailed when the factorization does not converge.
// Complexity: O(r·c·k).
func ThinSVD(a mat.Matrix) (u, v *mat.Dense, s []float64, err error) {
	if err = ValidateNotNil(a); err != nil {
		return nil, nil, nil, linalgErrorf(opThinSVD, err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, nil, nil, linalgErrorf(opThinSVD, ErrSVDFailed)
	}
	u, v = &mat.Dense{}, &mat.Dense{}
	svd.UTo(u)
	svd.VTo(v)

	return u, v, svd.Values(nil), nil
}

// Pinv returns the Moore–Penrose pseudo-inverse of a. Singular values not
// exceeding rcond·s_max are treated as zero (rcond ≤ 0 → DefaultPinvRcond).
// Errors: ErrNilMatrix, ErrSVDFailed.
func Pinv(a mat.Matrix, rcond float64) (*mat.Dense, error) {
	u, v, s, err := ThinSVD(a)
	if err != nil {
		return nil, linalgErrorf(opPinv, err)
	}
	if rcond <= 0 {
		rcond = DefaultPinvRcond
	}
	cut := 0.0
	if len(s) > 0 {
		cut = rcond * s[0]
	}
	// A⁺ = V·diag(1/s)·Uᵀ, skipping negligible singular values.
	vs := mat.DenseCopyOf(v)
	rows, _ := vs.Dims()
	for k, sv := range s {
		inv := 0.0
		if sv > cut {
			inv = 1 / sv
		}
		for i := 0; i < rows; i++ {
			vs.Set(i, k, vs.At(i, k)*inv)
		}
	}
	var out mat.Dense
	out.Mul(vs, u.T())

	return &out, nil
}
