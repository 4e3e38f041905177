// SPDX-License-Identifier: MIT
// Package cca_test contains test helpers
//
// Purpose:
//   • Seeded signal fixtures and the [X|Y]ᵀ[X|Y] builder.
//   • Shared property checks on CCA outputs.

package cca_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/linalg"
)

func randDense(t testing.TB, r, c int, seed int64) *mat.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := make([]float64, r*c)
	for i := range d {
		d[i] = rng.NormFloat64()
	}

	return mat.NewDense(r, c, d)
}

// covOf returns [X|Y]ᵀ[X|Y].
func covOf(t testing.TB, x, y *mat.Dense) *mat.Dense {
	t.Helper()
	var xy, c mat.Dense
	xy.Augment(x, y)
	c.Mul(xy.T(), &xy)

	return &c
}

// correlated returns Y = X·M + noise·E, so canonical correlations are distinct
// and well inside (0, 1).
func correlated(t testing.TB, tt, p, q int, noise float64, seed int64) (*mat.Dense, *mat.Dense) {
	t.Helper()
	x := randDense(t, tt, p, seed)
	mix := randDense(t, p, q, seed+1)
	e := randDense(t, tt, q, seed+2)
	var y mat.Dense
	y.Mul(x, mix)
	e.Scale(noise, e)
	y.Add(&y, e)

	return x, &y
}

// requireOrthonormal asserts Mᵀ·M ≈ I, i.e. unit-variance uncorrelated
// components when M holds projected signals.
func requireOrthonormal(t *testing.T, m mat.Matrix, tol float64) {
	t.Helper()
	var got mat.Dense
	got.Mul(m.T(), m)
	n, _ := got.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDeltaf(t, want, got.At(i, j), tol, "entry (%d,%d)", i, j)
		}
	}
}

// failingSolver delegates to LAPACK unless the top-left entry exceeds limit.
type failingSolver struct{ limit float64 }

var errBoom = errors.New("boom")

func (f failingSolver) EigenSym(a mat.Symmetric) ([]float64, *mat.Dense, error) {
	if a.At(0, 0) > f.limit {
		return nil, nil, errors.Join(linalg.ErrEigenFailed, errBoom)
	}

	return linalg.LAPACK{}.EigenSym(a)
}
