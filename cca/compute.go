// SPDX-License-Identifier: MIT

package cca

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/linalg"
)

// Input carries either raw signals (X, Y, Lags) or a covariance (C, M) for
// Compute. Setting fields from both groups is an error.
type Input struct {
	X, Y *mat.Dense
	Lags []int

	C *linalg.Stack
	M int
}

// Compute dispatches to FromSignals when X is set and to SolveStack otherwise.
//
// Errors:
//   - ErrMixedInputs when signal and covariance fields are both set.
//   - ErrMissingY, ErrMissingX, ErrMissingCovariance for incomplete requests.
//   - Everything FromSignals or SolveStack report.
func Compute(in Input, opts ...Option) (*Batch, error) {
	raw := in.X != nil || in.Y != nil || len(in.Lags) > 0
	cov := in.C != nil || in.M != 0
	switch {
	case raw && cov:
		return nil, ccaErrorf(opCompute, ErrMixedInputs)
	case raw:
		return FromSignals(in.X, in.Y, in.Lags, opts...)
	case in.C == nil:
		return nil, ccaErrorf(opCompute, ErrMissingCovariance)
	}

	return SolveStack(in.C, in.M, opts...)
}
