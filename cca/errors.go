// SPDX-License-Identifier: MIT
// Package cca: error taxonomy.
// Two category sentinels, ErrInvalidInput and ErrNumerical; every specific
// sentinel wraps exactly one category so errors.Is works at either level.

package cca

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the category for malformed calls.
	ErrInvalidInput = errors.New("cca: invalid input")

	// ErrNumerical is the category for decomposition failures.
	ErrNumerical = errors.New("cca: numerical failure")
)

var (
	// ErrMissingY indicates that X was given without Y.
	ErrMissingY = fmt.Errorf("%w: y is required when x is given", ErrInvalidInput)

	// ErrMissingX indicates that Y was given without X.
	ErrMissingX = fmt.Errorf("%w: x is required when y is given", ErrInvalidInput)

	// ErrMissingCovariance indicates covariance mode without a covariance.
	ErrMissingCovariance = fmt.Errorf("%w: covariance matrix should be defined", ErrInvalidInput)

	// ErrNonSquare indicates a covariance that is not square in its first two axes.
	ErrNonSquare = fmt.Errorf("%w: covariance matrix should be square", ErrInvalidInput)

	// ErrTooManyDims indicates a covariance array with more than three axes.
	ErrTooManyDims = fmt.Errorf("%w: covariance should be 3D at most", ErrInvalidInput)

	// ErrSplitRange indicates m outside (0, n).
	ErrSplitRange = fmt.Errorf("%w: split index must satisfy 0 < m < n", ErrInvalidInput)

	// ErrMixedInputs indicates raw signals and a covariance in the same request.
	ErrMixedInputs = fmt.Errorf("%w: only covariance should be defined at this point", ErrInvalidInput)

	// ErrRowMismatch indicates X and Y with different sample counts, or a
	// projection whose operands do not conform.
	ErrRowMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidInput)

	// ErrNonFinite indicates NaN or ±Inf inside a covariance.
	ErrNonFinite = fmt.Errorf("%w: NaN or Inf in covariance", ErrInvalidInput)

	// ErrEmptyInput indicates a nil matrix where data is required.
	ErrEmptyInput = fmt.Errorf("%w: nil input", ErrInvalidInput)
)

const (
	opSolve      = "Solve"
	opSolveStack = "SolveStack"
	opSolveFlat  = "SolveFlat"
	opSignals    = "FromSignals"
	opTrials     = "FromTrials"
	opCompute    = "Compute"
	opWhiten     = "Whiten"
	opSVDWhiten  = "SVDWhiten"
	opProject    = "Project"
)

// ccaErrorf tags err with an operation name. Call only with a non-nil err.
func ccaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// numericalf tags a solver failure and files it under ErrNumerical while
// keeping the underlying linalg sentinel reachable.
func numericalf(tag string, err error) error {
	if errors.Is(err, ErrNumerical) {
		return ccaErrorf(tag, err)
	}

	return fmt.Errorf("%s: %w: %w", tag, ErrNumerical, err)
}
