// SPDX-License-Identifier: MIT

package covariance

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates that a nil signal matrix was supplied.
	ErrNilInput = errors.New("covariance: nil input")

	// ErrRowMismatch indicates X and Y chunks with different sample counts.
	ErrRowMismatch = errors.New("covariance: x and y must have the same number of rows")

	// ErrColumnMismatch indicates a chunk whose channel count differs from the accumulator's.
	ErrColumnMismatch = errors.New("covariance: column count differs from accumulator")

	// ErrBadDims indicates a non-positive channel count.
	ErrBadDims = errors.New("covariance: channel counts must be > 0")

	// ErrIncompatible indicates totals that cannot be merged (different lags or split).
	ErrIncompatible = errors.New("covariance: incompatible totals")

	// ErrNoTrials indicates an empty or unbalanced trial list.
	ErrNoTrials = errors.New("covariance: x and y trial lists must be non-empty and of equal length")
)

const (
	opCross  = "Cross"
	opGram   = "Gram"
	opNew    = "NewAccumulator"
	opAdd    = "Accumulator.Add"
	opLags   = "Lags"
	opTrials = "LagsTrials"
	opMerge  = "Merge"
)

func covErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
