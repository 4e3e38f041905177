// SPDX-License-Identifier: MIT

package cca

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/linalg"
)

// Result is the CCA of a single covariance page.
type Result struct {
	// A maps X columns to canonical components (m×N).
	A *mat.Dense
	// B maps Y columns to canonical components ((n−m)×N).
	B *mat.Dense
	// R holds the canonical correlation scores, descending (length N).
	R []float64
	// RankX and RankY are the ranks retained when sphering each block.
	RankX, RankY int
}

// N returns the number of canonical components, min(RankX, RankY).
// A and B are empty matrices when N is zero.
func (r *Result) N() int { return len(r.R) }

// Batch is the CCA of a stack of covariance pages.
//
// Every page is padded to Nmax = min(m, n−m) components. Columns and scores
// past a page's own N are zero; use Ranks or Page to recover the live part.
type Batch struct {
	// A is m×Nmax×K.
	A *linalg.Stack
	// B is (n−m)×Nmax×K.
	B *linalg.Stack
	// R is Nmax×K; column k holds the scores of page k.
	R *mat.Dense
	// Ranks holds N for every page.
	Ranks []int
	// Lags holds the lag of every page when the batch was built from raw
	// signals; it is nil for covariance input.
	Lags []int

	rankX, rankY []int
}

// Len returns the number of pages K.
func (b *Batch) Len() int { return len(b.Ranks) }

// Page returns page k trimmed to its own N components. The returned matrices
// are copies. Page panics when k is out of range.
func (b *Batch) Page(k int) *Result {
	n := b.Ranks[k]
	res := &Result{
		A:     &mat.Dense{},
		B:     &mat.Dense{},
		R:     make([]float64, n),
		RankX: b.rankX[k],
		RankY: b.rankY[k],
	}
	if n == 0 {
		return res
	}
	ma, _, _ := b.A.Dims()
	mb, _, _ := b.B.Dims()
	res.A = mat.DenseCopyOf(b.A.Page(k).Slice(0, ma, 0, n))
	res.B = mat.DenseCopyOf(b.B.Page(k).Slice(0, mb, 0, n))
	for i := 0; i < n; i++ {
		res.R[i] = b.R.At(i, k)
	}

	return res
}

// Project returns X·W, the components of X under a transform returned by
// Solve or Whiten.
// Errors: ErrEmptyInput for nil operands, ErrRowMismatch when X has a
// different number of columns than W has rows.
func Project(x, w mat.Matrix) (*mat.Dense, error) {
	if err := linalg.ValidateNotNil(x); err != nil {
		return nil, ccaErrorf(opProject, ErrEmptyInput)
	}
	if err := linalg.ValidateNotNil(w); err != nil {
		return nil, ccaErrorf(opProject, ErrEmptyInput)
	}
	if wd, ok := w.(*mat.Dense); ok && wd.IsEmpty() {
		return nil, ccaErrorf(opProject, ErrEmptyInput)
	}
	_, xc := x.Dims()
	wr, _ := w.Dims()
	if xc != wr {
		return nil, ccaErrorf(opProject, ErrRowMismatch)
	}
	var out mat.Dense
	out.Mul(x, w)

	return &out, nil
}
