// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Provide a single source of truth for common validation checks.
//   - Return sentinels wrapped with the validator name so call sites can wrap
//     again with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing beyond the error value.

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil pointer stored in the interface is treated as nil as well.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (rows == cols).
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(opValidateSquare, err)
	}
	if r, c := m.Dims(); r != c {
		return validatorErrorf(opValidateSquare, ErrNonSquare)
	}

	return nil
}

// ValidateSameRows ensures a and b are non-nil and share their row count
// (the sample axis for signal matrices).
// Complexity: O(1).
func ValidateSameRows(a, b mat.Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameRows", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameRows", err)
	}
	ra, _ := a.Dims()
	rb, _ := b.Dims()
	if ra != rb {
		return validatorErrorf("ValidateSameRows", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m and fails with ErrNaNInf on the first non-finite entry.
// Complexity: O(r*c).
func ValidateFinite(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	r, c := m.Dims()
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// isNil reports whether m is nil or wraps one of the common nil pointer types.
func isNil(m mat.Matrix) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *mat.Dense:
		return v == nil
	case *mat.SymDense:
		return v == nil
	case *mat.VecDense:
		return v == nil
	}

	return false
}
