// SPDX-License-Identifier: MIT

// Package cca computes canonical correlation analysis from covariance
// matrices, the building block of ASR-style artifact subspace calibration.
//
// 🚀 What it does
//
//	Given C = [X|Y]ᵀ[X|Y] and the number m of X columns, Solve returns
//	transforms A, B and scores R such that the columns of X·A and Y·B are
//	paired components with unit variance and maximal, descending
//	cross-correlation R.
//
// Algorithm (one page):
//  1. Sphere X: PCA of C[:m,:m], keep val/val[0] > threshold, deflate the
//     kept eigenvalues as λ^(1−1e-12), whitening Cxw = V·diag(1/√λ).
//  2. Sphere Y the same way on C[m:,m:].
//  3. Project C through blockdiag(Cxw, Cyw).
//  4. PCA of the projected matrix; keep the top N = min(rank X, rank Y)
//     vectors; A = Cxw·V[:rankX,:N]·√2, B = Cyw·V[rankX:,:N]·√2.
//  5. R = top N eigenvalues − 1.
//
// Entry points:
//   - Solve: one covariance matrix.
//   - SolveStack: a linalg.Stack of pages, solved independently (in parallel)
//     into zero-padded outputs sized for the largest possible rank.
//   - FromSignals: raw X, Y and lags; one page per lag.
//   - FromTrials: as FromSignals, accumulating over many chunks.
//   - Compute: one facade over all of the above for callers that carry
//     either signals or a covariance in a single request value.
//   - Whiten, SVDWhiten: standalone whitening helpers.
//
// Warnings:
//   - Means of X and Y are NOT removed; demean beforehand if needed.
//   - A and B are scaled so that (X·A)ᵀ(X·A) and (Y·B)ᵀ(Y·B) are identity
//     matrices. This differs from the usual canonical-variate scaling, so the
//     output is not interchangeable with generic CCA libraries.
//
// Errors are split into two categories matched with errors.Is:
// ErrInvalidInput (shape and argument problems, reported before any numerical
// work) and ErrNumerical (solver non-convergence).
package cca
