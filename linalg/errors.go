// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation tag
// by linalgErrorf) and tests match them via errors.Is. Panics are reserved for
// programmer errors in option constructors.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil matrix argument was supplied.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrBadShape is returned when a requested shape is invalid (non-positive extent,
	// or a flat buffer whose length disagrees with the shape).
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrTooManyDims is returned when an array with more than three axes is supplied.
	ErrTooManyDims = errors.New("linalg: at most 3 dimensions are supported")

	// ErrOutOfRange indicates that a page index is outside [0, K).
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")

	// ErrEigenFailed indicates that an eigen decomposition did not converge.
	ErrEigenFailed = errors.New("linalg: eigen decomposition failed")

	// ErrSVDFailed indicates that a singular value decomposition did not converge.
	ErrSVDFailed = errors.New("linalg: SVD failed")
)

// Operation tags for uniform error wrapping.
const (
	opPCA          = "PCA"
	opLAPACK       = "LAPACK.EigenSym"
	opJacobi       = "Jacobi.EigenSym"
	opThinSVD      = "ThinSVD"
	opPinv         = "Pinv"
	opStackOf      = "StackOf"
	opStackFlat    = "StackFromFlat"
	opStackPage    = "Stack.SetPage"
	opBlockDiag    = "BlockDiag"
	opSymmetrize   = "Symmetrize"
	opNewStack     = "NewStack"
	opValidateSquare = "ValidateSquare"
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
