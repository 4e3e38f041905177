// SPDX-License-Identifier: MIT

package covariance

import (
	"slices"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/linalg"
)

// Lagged is the outcome of a lagged accumulation.
type Lagged struct {
	// C holds one (p+q)×(p+q) page per lag, in the order of Lags.
	C *linalg.Stack
	// M is the number of X columns; rows/cols [0, M) of every page belong to X.
	M int
	// Lags lists the lag of each page.
	Lags []int
	// Samples counts the paired rows accumulated into each page.
	Samples []int
	// Discarded counts the rows dropped from each page because the lag pushed
	// their partner outside the chunk.
	Discarded []int
}

// Accumulator sums lagged cross-products of [X|Y] over many chunks.
// It is not safe for concurrent use; run one per goroutine and Merge results.
type Accumulator struct {
	p, q      int
	lags      []int
	c         *linalg.Stack
	samples   []int
	discarded []int
	logger    zerolog.Logger
}

// NewAccumulator prepares an accumulator for X chunks with p columns and Y
// chunks with q columns. Empty lags means a single zero lag.
// Errors: ErrBadDims when p or q is not positive.
func NewAccumulator(p, q int, lags []int, opts ...Option) (*Accumulator, error) {
	if p <= 0 || q <= 0 {
		return nil, covErrorf(opNew, ErrBadDims)
	}
	if len(lags) == 0 {
		lags = []int{0}
	}
	c, err := linalg.NewStack(p+q, p+q, len(lags))
	if err != nil {
		return nil, covErrorf(opNew, err)
	}
	o := gatherOptions(opts...)

	return &Accumulator{
		p:         p,
		q:         q,
		lags:      slices.Clone(lags),
		c:         c,
		samples:   make([]int, len(lags)),
		discarded: make([]int, len(lags)),
		logger:    o.logger,
	}, nil
}

// Add accumulates one chunk. x and y hold samples in rows and must share
// their row count; column counts must match the accumulator.
//
// Errors: ErrNilInput, ErrRowMismatch, ErrColumnMismatch. A failed Add leaves
// the accumulator unchanged.
// Complexity: O(len(lags)·n·(p+q)²).
func (a *Accumulator) Add(x, y *mat.Dense) error {
	if x == nil || y == nil {
		return covErrorf(opAdd, ErrNilInput)
	}
	n, p := x.Dims()
	ny, q := y.Dims()
	if n != ny {
		return covErrorf(opAdd, ErrRowMismatch)
	}
	if p != a.p || q != a.q {
		return covErrorf(opAdd, ErrColumnMismatch)
	}

	for k, lag := range a.lags {
		shift := lag
		if shift < 0 {
			shift = -shift
		}
		cnt := n - shift
		if cnt <= 0 {
			a.discarded[k] += n
			continue
		}
		var xs, ys mat.Matrix
		if lag >= 0 {
			xs = x.Slice(0, cnt, 0, p)
			ys = y.Slice(lag, n, 0, q)
		} else {
			xs = x.Slice(shift, n, 0, p)
			ys = y.Slice(0, cnt, 0, q)
		}
		page := a.c.Page(k)
		page.Add(page, crossProduct(xs, ys))
		a.samples[k] += cnt
		a.discarded[k] += shift
	}
	a.logger.Debug().
		Int("rows", n).
		Ints("lags", a.lags).
		Ints("samples", a.samples).
		Msg("covariance: chunk accumulated")

	return nil
}

// Result returns a snapshot of the totals; further Add calls do not affect it.
func (a *Accumulator) Result() *Lagged {
	pages := make([]mat.Matrix, a.c.Len())
	for k := range pages {
		pages[k] = a.c.Page(k)
	}
	c, _ := linalg.StackOf(pages...) // shapes are uniform by construction

	return &Lagged{
		C:         c,
		M:         a.p,
		Lags:      slices.Clone(a.lags),
		Samples:   slices.Clone(a.samples),
		Discarded: slices.Clone(a.discarded),
	}
}

// Lags accumulates a single chunk: the accumulate(X, Y, lags) contract.
func Lags(x, y *mat.Dense, lags []int, opts ...Option) (*Lagged, error) {
	if x == nil || y == nil {
		return nil, covErrorf(opLags, ErrNilInput)
	}
	_, p := x.Dims()
	_, q := y.Dims()
	acc, err := NewAccumulator(p, q, lags, opts...)
	if err != nil {
		return nil, covErrorf(opLags, err)
	}
	if err = acc.Add(x, y); err != nil {
		return nil, covErrorf(opLags, err)
	}

	return acc.Result(), nil
}

// LagsTrials accumulates xs[i] against ys[i] for every trial (or file chunk).
// Lags never reach across trial boundaries.
// Errors: ErrNoTrials plus anything Add reports.
func LagsTrials(xs, ys []*mat.Dense, lags []int, opts ...Option) (*Lagged, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return nil, covErrorf(opTrials, ErrNoTrials)
	}
	if xs[0] == nil || ys[0] == nil {
		return nil, covErrorf(opTrials, ErrNilInput)
	}
	_, p := xs[0].Dims()
	_, q := ys[0].Dims()
	acc, err := NewAccumulator(p, q, lags, opts...)
	if err != nil {
		return nil, covErrorf(opTrials, err)
	}
	for i := range xs {
		if err = acc.Add(xs[i], ys[i]); err != nil {
			return nil, covErrorf(opTrials, err)
		}
	}

	return acc.Result(), nil
}

// Merge sums two totals computed with the same lags and split.
// Errors: ErrNilInput, ErrIncompatible.
func Merge(a, b *Lagged) (*Lagged, error) {
	if a == nil || b == nil {
		return nil, covErrorf(opMerge, ErrNilInput)
	}
	ar, ac, ak := a.C.Dims()
	br, bc, bk := b.C.Dims()
	if a.M != b.M || ar != br || ac != bc || ak != bk || !slices.Equal(a.Lags, b.Lags) {
		return nil, covErrorf(opMerge, ErrIncompatible)
	}
	out := &Lagged{
		M:         a.M,
		Lags:      slices.Clone(a.Lags),
		Samples:   make([]int, ak),
		Discarded: make([]int, ak),
	}
	pages := make([]mat.Matrix, ak)
	for k := 0; k < ak; k++ {
		var sum mat.Dense
		sum.Add(a.C.Page(k), b.C.Page(k))
		pages[k] = &sum
		out.Samples[k] = a.Samples[k] + b.Samples[k]
		out.Discarded[k] = a.Discarded[k] + b.Discarded[k]
	}
	c, err := linalg.StackOf(pages...)
	if err != nil {
		return nil, covErrorf(opMerge, err)
	}
	out.C = c

	return out, nil
}
