// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Stack models a 3D array of shape (r, c, K) as K independent r×c pages.
//     It is the container for batched covariance input (one page per lag or
//     per file) and for zero-padded batched CCA output.
//
// Notes:
//   - Pages are owned by the Stack; Page returns the stored matrix, not a copy.
//   - A 2D matrix is a Stack with K == 1.

package linalg

import "gonum.org/v1/gonum/mat"

// Stack is a sequence of equally shaped dense pages.
type Stack struct {
	r, c  int
	pages []*mat.Dense
}

// NewStack allocates K zero-filled r×c pages.
// Errors: ErrBadShape when r, c or k is not positive.
// Complexity: O(r·c·k).
func NewStack(r, c, k int) (*Stack, error) {
	if r <= 0 || c <= 0 || k <= 0 {
		return nil, linalgErrorf(opNewStack, ErrBadShape)
	}
	s := &Stack{r: r, c: c, pages: make([]*mat.Dense, k)}
	for i := range s.pages {
		s.pages[i] = mat.NewDense(r, c, nil)
	}

	return s, nil
}

// StackOf builds a Stack from copies of the given pages.
// Errors: ErrBadShape when no page is given, ErrNilMatrix for nil pages,
// ErrDimensionMismatch when page shapes differ.
func StackOf(pages ...mat.Matrix) (*Stack, error) {
	if len(pages) == 0 {
		return nil, linalgErrorf(opStackOf, ErrBadShape)
	}
	if err := ValidateNotNil(pages[0]); err != nil {
		return nil, linalgErrorf(opStackOf, err)
	}
	r, c := pages[0].Dims()
	s := &Stack{r: r, c: c, pages: make([]*mat.Dense, len(pages))}
	for i, p := range pages {
		if err := ValidateNotNil(p); err != nil {
			return nil, linalgErrorf(opStackOf, err)
		}
		if pr, pc := p.Dims(); pr != r || pc != c {
			return nil, linalgErrorf(opStackOf, ErrDimensionMismatch)
		}
		s.pages[i] = mat.DenseCopyOf(p)
	}

	return s, nil
}

// StackFromFlat interprets data as an array of the given shape.
// shape must have 2 or 3 axes: (r, c) or (r, c, K). Pages are laid out one
// after another and each page is row-major, i.e. element (i, j, k) lives at
// data[k·r·c + i·c + j].
//
// Errors:
//   - ErrTooManyDims when len(shape) > 3.
//   - ErrBadShape for fewer than 2 axes, non-positive extents or a length mismatch.
func StackFromFlat(shape []int, data []float64) (*Stack, error) {
	if len(shape) > 3 {
		return nil, linalgErrorf(opStackFlat, ErrTooManyDims)
	}
	if len(shape) < 2 {
		return nil, linalgErrorf(opStackFlat, ErrBadShape)
	}
	k := 1
	if len(shape) == 3 {
		k = shape[2]
	}
	r, c := shape[0], shape[1]
	if r <= 0 || c <= 0 || k <= 0 || len(data) != r*c*k {
		return nil, linalgErrorf(opStackFlat, ErrBadShape)
	}
	s := &Stack{r: r, c: c, pages: make([]*mat.Dense, k)}
	size := r * c
	for p := 0; p < k; p++ {
		buf := make([]float64, size)
		copy(buf, data[p*size:(p+1)*size])
		s.pages[p] = mat.NewDense(r, c, buf)
	}

	return s, nil
}

// Dims returns (rows, cols, pages).
func (s *Stack) Dims() (r, c, k int) { return s.r, s.c, len(s.pages) }

// Len returns the number of pages.
func (s *Stack) Len() int { return len(s.pages) }

// Page returns page k. It panics when k is out of range, like mat.Dense.At.
func (s *Stack) Page(k int) *mat.Dense { return s.pages[k] }

// SetPage copies src into the top-left corner of page k, leaving the rest of
// the page untouched. src may be smaller than the page; this is how padded
// batched output is written.
//
// Errors: ErrOutOfRange for a bad k, ErrDimensionMismatch when src does not fit.
func (s *Stack) SetPage(k int, src mat.Matrix) error {
	if k < 0 || k >= len(s.pages) {
		return linalgErrorf(opStackPage, ErrOutOfRange)
	}
	if isNil(src) {
		return linalgErrorf(opStackPage, ErrNilMatrix)
	}
	if d, ok := src.(*mat.Dense); ok && d.IsEmpty() {
		return nil
	}
	r, c := src.Dims()
	if r > s.r || c > s.c {
		return linalgErrorf(opStackPage, ErrDimensionMismatch)
	}
	s.pages[k].Slice(0, r, 0, c).(*mat.Dense).Copy(src)

	return nil
}
