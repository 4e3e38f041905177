// Package eegclean is a toolkit for calibrating multichannel signal
// cleaning filters from covariance matrices.
//
// 🚀 What is eegclean?
//
//	A pure-Go library built on gonum that brings together:
//		• Canonical correlation analysis from covariance (ASR-style), single or batched
//		• Lagged cross-covariance accumulation over chunks and trials
//		• Denoising Source Separation (DSS) from a baseline/biased covariance pair
//		• Whitening helpers (eigen and SVD)
//
// ✨ Why choose eegclean?
//
//   - Works on covariances, so data can be streamed and summed chunk by chunk
//   - Deterministic ordering: one PCA primitive feeds every decomposition
//   - Pluggable eigen solver: gonum LAPACK by default, pure Jacobi for reproducibility
//   - Quiet by default, structured zerolog events on request
//
// Under the hood, everything is organized under four subpackages:
//
//	linalg/: PCA primitive, eigen solvers, 3D stacks, SVD helpers
//	covariance/: [X|Y]ᵀ[X|Y] and lagged cross-products with a chunk accumulator
//	cca/: Solve, SolveStack, FromSignals, Compute, Whiten, SVDWhiten
//	dss/: DSS0
//
// Runnable scenarios live in examples/.
//
// Caveats:
//
//	Means are never removed. CCA transforms are scaled to unit component
//	variance, not to the canonical-variate convention of generic CCA tools.
package eegclean
