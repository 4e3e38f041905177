// SPDX-License-Identifier: MIT

// Package linalg collects the dense linear-algebra building blocks shared by
// the covariance, cca and dss packages.
//
// The package provides:
//
//   - Symmetric eigen solvers behind a single Solver interface: LAPACK (gonum
//     mat.EigenSym, the default) and Jacobi (deterministic rotation sweeps).
//   - PCA, the one primitive that decomposes a symmetric matrix, sorts the
//     spectrum in descending order, reorders eigenvectors to match and
//     truncates by a relative-eigenvalue threshold.
//   - Stack, a K-page container of equally shaped matrices used for batched
//     (3D) covariance input and zero-padded batched output.
//   - Thin SVD and pseudo-inverse helpers, block-diagonal assembly and
//     symmetrization.
//
// All functions are pure: inputs are never mutated and results are freshly
// allocated. Failures are reported with the sentinels in errors.go, wrapped
// with an operation tag so callers can match them via errors.Is.
//
// Complexity: every decomposition is O(n³) for an n×n input.
package linalg
