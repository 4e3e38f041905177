// SPDX-License-Identifier: MIT

package cca_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/cca"
	"github.com/katalvlaran/eegclean/linalg"
)

func TestFromSignals_ZeroLagMatchesCovariance(t *testing.T) {
	t.Parallel()

	x, y := correlated(t, 120, 3, 2, 0.6, 500)
	want, err := cca.Solve(covOf(t, x, y), 3)
	require.NoError(t, err)

	for _, lags := range [][]int{nil, {}, {0}} {
		b, err := cca.FromSignals(x, y, lags)
		require.NoError(t, err)
		require.Equal(t, 1, b.Len())
		assert.Equal(t, []int{0}, b.Lags)
		got := b.Page(0)
		assert.InDeltaSlice(t, want.R, got.R, 1e-12)
		assert.True(t, mat.EqualApprox(want.A, got.A, 1e-12))
		assert.True(t, mat.EqualApprox(want.B, got.B, 1e-12))
	}
}

func TestFromSignals_Lags(t *testing.T) {
	t.Parallel()

	// y is x delayed by two samples: lag 2 recovers a perfect pairing
	const n = 200
	src := randDense(t, n+2, 2, 600)
	x := mat.DenseCopyOf(src.Slice(2, n+2, 0, 2))
	y := mat.DenseCopyOf(src.Slice(0, n, 0, 2))

	b, err := cca.FromSignals(x, y, []int{0, -2, 2})
	require.NoError(t, err)
	require.Equal(t, 3, b.Len())
	assert.Equal(t, []int{0, -2, 2}, b.Lags)

	// X[t] = Y[t+2], which is exactly the pairing of lag 2.
	aligned := b.Page(2)
	require.Equal(t, 2, aligned.N())
	for _, r := range aligned.R {
		assert.InDelta(t, 1, r, 1e-8)
	}
	for _, k := range []int{0, 1} {
		assert.Less(t, b.Page(k).R[0], 0.5, "lag %d", b.Lags[k])
	}

	single, err := cca.FromSignals(x, y, []int{2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, aligned.R, single.Page(0).R, 1e-10)
}

func TestFromSignals_Errors(t *testing.T) {
	t.Parallel()

	x := randDense(t, 10, 2, 1)
	_, err := cca.FromSignals(x, nil, nil)
	assert.ErrorIs(t, err, cca.ErrMissingY)
	_, err = cca.FromSignals(nil, x, nil)
	assert.ErrorIs(t, err, cca.ErrMissingX)
	_, err = cca.FromSignals(nil, nil, nil)
	assert.ErrorIs(t, err, cca.ErrEmptyInput)
	_, err = cca.FromSignals(x, randDense(t, 9, 2, 2), nil)
	assert.ErrorIs(t, err, cca.ErrRowMismatch)
	assert.ErrorIs(t, err, cca.ErrInvalidInput)
}

func TestFromTrials(t *testing.T) {
	t.Parallel()

	xa, ya := correlated(t, 80, 2, 2, 0.5, 700)
	xb, yb := correlated(t, 60, 2, 2, 0.5, 710)

	b, err := cca.FromTrials([]*mat.Dense{xa, xb}, []*mat.Dense{ya, yb}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, b.Len())

	var sum mat.Dense
	sum.Add(covOf(t, xa, ya), covOf(t, xb, yb))
	want, err := cca.Solve(&sum, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want.R, b.Page(0).R, 1e-10)

	_, err = cca.FromTrials(nil, nil, nil)
	assert.ErrorIs(t, err, cca.ErrEmptyInput)
	_, err = cca.FromTrials([]*mat.Dense{xa, xb}, []*mat.Dense{ya, nil}, nil)
	assert.ErrorIs(t, err, cca.ErrMissingY)
	assert.Contains(t, err.Error(), "chunk 1")
}

func TestCompute(t *testing.T) {
	t.Parallel()

	x, y := correlated(t, 90, 2, 2, 0.4, 800)
	stack, err := linalg.StackOf(covOf(t, x, y))
	require.NoError(t, err)

	fromSignals, err := cca.Compute(cca.Input{X: x, Y: y})
	require.NoError(t, err)
	fromCov, err := cca.Compute(cca.Input{C: stack, M: 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, fromCov.Page(0).R, fromSignals.Page(0).R, 1e-12)

	cases := []struct {
		name string
		in   cca.Input
		want error
	}{
		{"mixed", cca.Input{X: x, Y: y, C: stack}, cca.ErrMixedInputs},
		{"lags with covariance", cca.Input{Lags: []int{1}, C: stack, M: 2}, cca.ErrMixedInputs},
		{"split with signals", cca.Input{X: x, Y: y, M: 2}, cca.ErrMixedInputs},
		{"nothing", cca.Input{}, cca.ErrMissingCovariance},
		{"split only", cca.Input{M: 2}, cca.ErrMissingCovariance},
		{"y only", cca.Input{Y: y}, cca.ErrMissingX},
		{"x only", cca.Input{X: x}, cca.ErrMissingY},
		{"bad split", cca.Input{C: stack}, cca.ErrSplitRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cca.Compute(tc.in)
			require.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, cca.ErrInvalidInput)
		})
	}
}
