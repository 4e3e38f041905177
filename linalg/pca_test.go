// SPDX-License-Identifier: MIT

package linalg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/linalg"
)

// stubSolver returns a fixed spectrum, letting tests pin the sort/truncate rules.
type stubSolver struct {
	vals []float64
	err  error
}

func (s stubSolver) EigenSym(a mat.Symmetric) ([]float64, *mat.Dense, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	n := len(s.vals)
	vecs := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		vecs.Set(i, i, 1)
	}

	return append([]float64(nil), s.vals...), vecs, nil
}

func TestPCA_SortsDescendingAndReordersVectors(t *testing.T) {
	t.Parallel()

	a := mat.NewSymDense(3, nil)
	c, err := linalg.PCA(a, linalg.PCAOptions{
		Threshold: linalg.NoThreshold,
		Solver:    stubSolver{vals: []float64{1, 5, 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3, 1}, c.Values)
	assert.Equal(t, 3, c.Rank)
	// vectors were unit basis vectors e0,e1,e2 → reordered to e1,e2,e0
	assert.Equal(t, 1.0, c.Vectors.At(1, 0))
	assert.Equal(t, 1.0, c.Vectors.At(2, 1))
	assert.Equal(t, 1.0, c.Vectors.At(0, 2))
}

func TestPCA_RelativeThreshold(t *testing.T) {
	t.Parallel()

	a := mat.NewSymDense(4, nil)
	solver := stubSolver{vals: []float64{1e-14, 10, 1e-3, 1}}

	tests := []struct {
		name   string
		thresh float64
		want   int
	}{
		{"default cut drops only the numerically singular one", 1e-12, 3},
		{"coarser cut", 1e-3, 2},
		{"disabled", linalg.NoThreshold, 4},
		{"zero keeps strictly positive", 0, 4},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := linalg.PCA(a, linalg.PCAOptions{Threshold: tc.thresh, Solver: solver})
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Rank)
			assert.Len(t, c.Values, tc.want)
		})
	}
}

func TestPCA_MaxComps(t *testing.T) {
	t.Parallel()

	a := mat.NewSymDense(3, nil)
	c, err := linalg.PCA(a, linalg.PCAOptions{
		Threshold: linalg.NoThreshold,
		MaxComps:  2,
		Solver:    stubSolver{vals: []float64{3, 2, 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Rank)
	r, cols := c.Vectors.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, cols)
}

func TestPCA_NonPositiveSpectrumIsRankZero(t *testing.T) {
	t.Parallel()

	c, err := linalg.PCA(mat.NewSymDense(2, nil), linalg.PCAOptions{Threshold: 1e-12})
	require.NoError(t, err)
	assert.Equal(t, 0, c.Rank)
	assert.True(t, c.Vectors.IsEmpty())
	assert.Empty(t, c.Values)
}

func TestPCA_PropagatesSolverError(t *testing.T) {
	t.Parallel()

	_, err := linalg.PCA(mat.NewSymDense(2, nil), linalg.PCAOptions{
		Solver: stubSolver{err: linalg.ErrEigenFailed},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, linalg.ErrEigenFailed))

	_, err = linalg.PCA(nil, linalg.PCAOptions{})
	assert.ErrorIs(t, err, linalg.ErrNilMatrix)
}

func TestPCA_ThresholdMonotone(t *testing.T) {
	t.Parallel()

	a := RandSPD(t, 6, 4, 7) // rank 4 of 6: two trailing ~0 eigenvalues
	prev := -1
	for _, th := range []float64{1e-3, 1e-6, 1e-9, 1e-12} {
		c, err := linalg.PCA(a, linalg.PCAOptions{Threshold: th})
		require.NoError(t, err)
		if prev >= 0 {
			assert.GreaterOrEqual(t, c.Rank, prev, "lowering the threshold must not drop components")
		}
		prev = c.Rank
	}
	assert.Equal(t, 4, prev)
}

func TestPCA_SPDReconstruction(t *testing.T) {
	t.Parallel()

	a := RandSPD(t, 5, 20, 11)
	c, err := linalg.PCA(a, linalg.PCAOptions{Threshold: linalg.NoThreshold})
	require.NoError(t, err)
	require.Equal(t, 5, c.Rank)
	for k := 1; k < c.Rank; k++ {
		assert.GreaterOrEqual(t, c.Values[k-1], c.Values[k])
	}
	propOrthonormal(t, c.Vectors, 1e-10)
	propEigenEquation(t, a, c.Vectors, c.Values, 1e-9)
}

func TestSortDescending_StableTies(t *testing.T) {
	t.Parallel()

	idx := linalg.SortDescending([]float64{2, 5, 2, 5, 1})
	assert.Equal(t, []int{1, 3, 0, 2, 4}, idx)
}
