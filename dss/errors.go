// SPDX-License-Identifier: MIT
// Package dss: sentinel error set.
// All errors are sentinels wrapped with an operation tag; decomposition
// failures keep the linalg sentinel reachable through errors.Is.

package dss

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates that c0 or c1 is nil.
	ErrNilInput = errors.New("dss: nil covariance")

	// ErrNonSquare indicates a covariance that is not square.
	ErrNonSquare = errors.New("dss: c0 should be square")

	// ErrShapeMismatch indicates c0 and c1 of different sizes.
	ErrShapeMismatch = errors.New("dss: c0 and c1 should have same size")

	// ErrNaNInf indicates a NaN or ±Inf entry in c0 or c1.
	ErrNaNInf = errors.New("dss: NaN or INF in covariance")

	// ErrNoComponents indicates that truncation left nothing to separate
	// (zero baseline or zero bias).
	ErrNoComponents = errors.New("dss: no components above threshold")
)

const opDSS0 = "DSS0"

func dssErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
