// SPDX-License-Identifier: MIT

// Package dss implements covariance-based Denoising Source Separation.
//
// DSS0 takes a baseline covariance c0 and a biased covariance c1 (for
// example the covariance of the trial average, or of band-passed data) and
// returns the linear transform whose components maximise the ratio of biased
// to baseline power. It shares the linalg.PCA primitive with package cca, so
// ordering and truncation rules are identical.
//
// Pipeline:
//  1. PCA of c0, truncated by WithThreshold and WithKeep.
//  2. Whiten: W = V0·diag(1/√λ0).
//  3. PCA of Wᵀ·c1·W, truncated the same way.
//  4. ToDSS = W·V2; FromDSS = pinv(ToDSS).
//  5. Columns of ToDSS are rescaled to unit baseline power.
//
// Means are not removed and the bias function is the caller's business:
// DSS0 only sees the two covariances.
package dss
