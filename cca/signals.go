// SPDX-License-Identifier: MIT

package cca

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/covariance"
	"github.com/katalvlaran/eegclean/linalg"
)

// FromSignals computes the lagged covariance of X (T×p) and Y (T×q) and
// solves one CCA page per lag. Empty lags means a single zero lag.
//
// A positive lag L pairs X[t] with Y[t+L]; a negative lag pairs X[t+|L|]
// with Y[t]. Rows left without a partner are dropped from that page. Means
// are not removed.
//
// Errors: ErrMissingY, ErrMissingX, ErrRowMismatch, plus everything
// SolveStack reports.
func FromSignals(x, y *mat.Dense, lags []int, opts ...Option) (*Batch, error) {
	if err := validateSignals(x, y); err != nil {
		return nil, ccaErrorf(opSignals, err)
	}
	o := gatherOptions(opts...)
	if len(lags) == 0 {
		lags = []int{0}
	}

	var (
		c   *linalg.Stack
		m   int
		err error
	)
	if len(lags) == 1 && lags[0] == 0 {
		var cx *mat.Dense
		if cx, m, err = covariance.Cross(x, y); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", opSignals, ErrInvalidInput, err)
		}
		if c, err = linalg.StackOf(cx); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", opSignals, ErrInvalidInput, err)
		}
	} else {
		lagged, lerr := covariance.Lags(x, y, lags, covariance.WithLogger(o.logger))
		if lerr != nil {
			return nil, fmt.Errorf("%s: %w: %w", opSignals, ErrInvalidInput, lerr)
		}
		c, m = lagged.C, lagged.M
	}

	b, err := solveChecked(opSignals, c, m, o)
	if err != nil {
		return nil, err
	}
	b.Lags = slices.Clone(lags)

	return b, nil
}

// FromTrials is FromSignals over many (X, Y) chunks: every lag page sums the
// products of all chunks, and lags never reach across chunk boundaries.
// Errors: ErrEmptyInput when no chunk is given or the slices differ in length,
// ErrMissingY/ErrMissingX/ErrRowMismatch for the first bad chunk.
func FromTrials(xs, ys []*mat.Dense, lags []int, opts ...Option) (*Batch, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return nil, ccaErrorf(opTrials, ErrEmptyInput)
	}
	for i := range xs {
		if err := validateSignals(xs[i], ys[i]); err != nil {
			return nil, fmt.Errorf("%s: chunk %d: %w", opTrials, i, err)
		}
	}
	o := gatherOptions(opts...)
	lagged, err := covariance.LagsTrials(xs, ys, lags, covariance.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opTrials, ErrInvalidInput, err)
	}

	b, err := solveChecked(opTrials, lagged.C, lagged.M, o)
	if err != nil {
		return nil, err
	}
	b.Lags = lagged.Lags

	return b, nil
}

func validateSignals(x, y *mat.Dense) error {
	switch {
	case x == nil && y == nil:
		return ErrEmptyInput
	case y == nil:
		return ErrMissingY
	case x == nil:
		return ErrMissingX
	case x.IsEmpty() || y.IsEmpty():
		return ErrEmptyInput
	}
	xr, _ := x.Dims()
	yr, _ := y.Dims()
	if xr != yr {
		return ErrRowMismatch
	}

	return nil
}

// solveChecked validates freshly built covariance pages (non-finite samples
// surface here) and solves them.
func solveChecked(op string, c *linalg.Stack, m int, o Options) (*Batch, error) {
	for k := 0; k < c.Len(); k++ {
		if err := validateCovariance(c.Page(k), m); err != nil {
			return nil, ccaErrorf(op, err)
		}
	}
	b, err := solvePages(c, m, o)
	if err != nil {
		return nil, numericalf(op, err)
	}

	return b, nil
}
