// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded random matrices, SPD builders).
//   • Keep shared property checks (orthonormality, eigen equation) in one place.

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// RandDense returns an r×c matrix of standard-normal values from a fixed seed.
func RandDense(t testing.TB, r, c int, seed int64) *mat.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(r, c, data)
}

// RandSPD returns MᵀM for a random r×n M, which is SPD for r ≥ n.
func RandSPD(t testing.TB, n, r int, seed int64) *mat.SymDense {
	t.Helper()
	m := RandDense(t, r, n, seed)
	s := mat.NewSymDense(n, nil)
	s.SymOuterK(1, m.T())

	return s
}

// propOrthonormal asserts QᵀQ ≈ I.
func propOrthonormal(t *testing.T, q mat.Matrix, tol float64) {
	t.Helper()
	_, c := q.Dims()
	var g mat.Dense
	g.Mul(q.T(), q)
	require.Truef(t, mat.EqualApprox(&g, eye(c), tol), "QᵀQ != I:\n%v", mat.Formatted(&g))
}

// propEigenEquation asserts A·v_k ≈ λ_k·v_k for every retained column.
func propEigenEquation(t *testing.T, a mat.Matrix, vecs *mat.Dense, vals []float64, tol float64) {
	t.Helper()
	var av mat.Dense
	av.Mul(a, vecs)
	r, _ := vecs.Dims()
	for k, lambda := range vals {
		for i := 0; i < r; i++ {
			require.InDeltaf(t, lambda*vecs.At(i, k), av.At(i, k), tol, "column %d row %d", k, i)
		}
	}
}

func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}

	return d
}
