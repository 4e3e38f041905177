// SPDX-License-Identifier: MIT
// Package cca: batched solve over covariance pages.
//
// Purpose:
//   - Solve K independent pages concurrently and pack them into padded
//     outputs of a fixed component count Nmax = min(m, n−m).
//
// Notes:
//   - Pages write disjoint regions of the outputs, so no locking is needed.
//   - The first failing page fails the whole call; pages not yet started are
//     skipped.

package cca

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eegclean/linalg"
)

// SolveStack computes the CCA of every page of c independently.
//
// Errors:
//   - ErrEmptyInput for a nil stack, ErrNonSquare, ErrSplitRange,
//     ErrNonFinite for any page (checked before any page is solved).
//   - ErrNumerical tagged with the failing page index.
//
// Complexity: O(K·n³) total, spread over WithWorkers goroutines.
func SolveStack(c *linalg.Stack, m int, opts ...Option) (*Batch, error) {
	if c == nil || c.Len() == 0 {
		return nil, ccaErrorf(opSolveStack, ErrEmptyInput)
	}

	return solveChecked(opSolveStack, c, m, gatherOptions(opts...))
}

// SolveFlat reshapes a flat page-major buffer (see linalg.StackFromFlat) and
// solves it with SolveStack. A two-axis shape is a single page.
// Errors: ErrTooManyDims for more than three axes, ErrNonSquare when the
// first two axes differ, plus everything SolveStack reports.
func SolveFlat(shape []int, data []float64, m int, opts ...Option) (*Batch, error) {
	if len(shape) > 3 {
		return nil, ccaErrorf(opSolveFlat, ErrTooManyDims)
	}
	if len(shape) >= 2 && shape[0] != shape[1] {
		return nil, ccaErrorf(opSolveFlat, ErrNonSquare)
	}
	c, err := linalg.StackFromFlat(shape, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opSolveFlat, ErrInvalidInput, err)
	}

	return SolveStack(c, m, opts...)
}

func solvePages(c *linalg.Stack, m int, o Options) (*Batch, error) {
	n, _, k := c.Dims()
	nmax := min(m, n-m)

	a, err := linalg.NewStack(m, nmax, k)
	if err != nil {
		return nil, err
	}
	bs, err := linalg.NewStack(n-m, nmax, k)
	if err != nil {
		return nil, err
	}
	out := &Batch{
		A:     a,
		B:     bs,
		R:     mat.NewDense(nmax, k, nil),
		Ranks: make([]int, k),
		rankX: make([]int, k),
		rankY: make([]int, k),
	}

	o.logger.Debug().
		Int("pages", k).
		Int("workers", o.workers).
		Int("n_max", nmax).
		Msg("cca: solving pages")

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(o.workers)
	for p := 0; p < k; p++ {
		p := p
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			res, err := solvePage(c.Page(p), m, o)
			if err != nil {
				return fmt.Errorf("page %d: %w", p, err)
			}

			return out.store(p, res)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	o.logger.Debug().Ints("ranks", out.Ranks).Msg("cca: pages solved")

	return out, nil
}

// store writes one page result into the padded outputs.
func (b *Batch) store(p int, res *Result) error {
	if err := b.A.SetPage(p, res.A); err != nil {
		return err
	}
	if err := b.B.SetPage(p, res.B); err != nil {
		return err
	}
	for i, r := range res.R {
		b.R.Set(i, p, r)
	}
	b.Ranks[p] = res.N()
	b.rankX[p] = res.RankX
	b.rankY[p] = res.RankY

	return nil
}
