// SPDX-License-Identifier: MIT

// Package covariance builds the cross-product matrices consumed by CCA.
//
// What & Why:
//
//	CCA only needs C = [X|Y]ᵀ[X|Y] and the column count of X. Building C
//	incrementally (chunk by chunk, trial by trial, file by file) lets callers
//	analyse recordings that never fit in memory as raw samples.
//
// Features:
//   - Cross: the zero-lag product [X|Y]ᵀ[X|Y] in one matrix multiply.
//   - Accumulator: lagged accumulation over any number of chunks; one page of
//     the resulting linalg.Stack per requested lag.
//   - Merge: combine totals accumulated separately (e.g. per worker or per file).
//
// Lag convention:
//
//	A positive lag L means Y is delayed relative to X: sample X[t] is paired
//	with Y[t+L]. A negative lag pairs X[t+|L|] with Y[t]. Rows without a
//	partner inside the chunk are discarded and counted.
//
// Warning: means are NOT removed. Demean beforehand if centred statistics
// are required.
package covariance
