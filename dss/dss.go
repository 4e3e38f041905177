// SPDX-License-Identifier: MIT

package dss

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/linalg"
)

// Result holds the DSS transforms and per-component powers.
type Result struct {
	// ToDSS maps channels to normalised DSS components (n×K).
	ToDSS *mat.Dense
	// FromDSS maps components back to channels (K×n). It is the
	// pseudo-inverse of ToDSS before column normalisation.
	FromDSS *mat.Dense
	// Pwr0 is the baseline power of each component, ‖c0·ToDSS[:,k]‖.
	Pwr0 []float64
	// Pwr1 is the biased power of each component, ‖c1·ToDSS[:,k]‖.
	Pwr1 []float64
}

// DSS0 computes DSS from a baseline covariance c0 and a biased covariance c1.
//
// Errors:
//   - ErrNilInput, ErrShapeMismatch, ErrNonSquare, ErrNaNInf.
//   - ErrNoComponents when either PCA stage keeps nothing.
//   - linalg.ErrEigenFailed / linalg.ErrSVDFailed from the decompositions.
//
// Complexity: O(n³).
func DSS0(c0, c1 mat.Matrix, opts ...Option) (*Result, error) {
	if err := validate(c0, c1); err != nil {
		return nil, dssErrorf(opDSS0, err)
	}
	o := gatherOptions(opts...)
	pcaOpts := linalg.PCAOptions{Threshold: o.threshold, MaxComps: o.keep, Solver: o.solver}

	s0, err := linalg.Symmetrize(c0)
	if err != nil {
		return nil, dssErrorf(opDSS0, err)
	}
	p0, err := linalg.PCA(s0, pcaOpts)
	if err != nil {
		return nil, dssErrorf(opDSS0, err)
	}
	if p0.Rank == 0 {
		return nil, dssErrorf(opDSS0, ErrNoComponents)
	}

	// whitened PCA basis of the baseline
	w := p0.Vectors
	n, _ := w.Dims()
	var i, k int
	for k = 0; k < p0.Rank; k++ {
		s := math.Sqrt(1 / p0.Values[k])
		for i = 0; i < n; i++ {
			w.Set(i, k, w.At(i, k)*s)
		}
	}

	c2, err := linalg.Symmetrize(linalg.Congruence(c1, w))
	if err != nil {
		return nil, dssErrorf(opDSS0, err)
	}
	p2, err := linalg.PCA(c2, pcaOpts)
	if err != nil {
		return nil, dssErrorf(opDSS0, err)
	}
	if p2.Rank == 0 {
		return nil, dssErrorf(opDSS0, ErrNoComponents)
	}
	o.logger.Debug().
		Int("rank_baseline", p0.Rank).
		Int("rank_biased", p2.Rank).
		Msg("dss: components retained")

	todss := new(mat.Dense)
	todss.Mul(w, p2.Vectors)
	fromdss, err := linalg.Pinv(todss, 0)
	if err != nil {
		return nil, dssErrorf(opDSS0, err)
	}

	// unit baseline power per component
	norm := linalg.Congruence(c0, todss)
	for k = 0; k < p2.Rank; k++ {
		s := math.Sqrt(1 / norm.At(k, k))
		for i = 0; i < n; i++ {
			todss.Set(i, k, todss.At(i, k)*s)
		}
	}

	return &Result{
		ToDSS:   todss,
		FromDSS: fromdss,
		Pwr0:    columnNorms(c0, todss),
		Pwr1:    columnNorms(c1, todss),
	}, nil
}

func validate(c0, c1 mat.Matrix) error {
	if linalg.ValidateNotNil(c0) != nil || linalg.ValidateNotNil(c1) != nil {
		return ErrNilInput
	}
	r0, k0 := c0.Dims()
	r1, k1 := c1.Dims()
	if r0 != r1 || k0 != k1 {
		return ErrShapeMismatch
	}
	if r0 != k0 {
		return ErrNonSquare
	}
	if linalg.ValidateFinite(c0) != nil || linalg.ValidateFinite(c1) != nil {
		return ErrNaNInf
	}

	return nil
}

// columnNorms returns the Euclidean norm of every column of c·t.
func columnNorms(c, t mat.Matrix) []float64 {
	var ct mat.Dense
	ct.Mul(c, t)
	r, cols := ct.Dims()
	out := make([]float64, cols)
	col := make([]float64, r)
	for k := range out {
		mat.Col(col, k, &ct)
		out[k] = floats.Norm(col, 2)
	}

	return out
}
