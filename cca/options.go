// SPDX-License-Identifier: MIT
// Package cca: functional configuration.
// Defaults are declared once as constants; WithX constructors panic only on
// nonsensical values (programmer error); gatherOptions resolves setters in
// order, last writer wins.

package cca

import (
	"math"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/eegclean/linalg"
)

const (
	// DefaultThreshold discards block components with λ/λmax ≤ 1e-12.
	DefaultThreshold = 1e-12

	// DefaultFudge is added to eigenvalues in Whiten before the inverse square root.
	DefaultFudge = 1e-18

	// deflationExponent is applied to retained sphering eigenvalues (λ^(1−1e-12)).
	// Kept as the literal constant; provenance of the exact value is unverified.
	deflationExponent = 1 - 1e-12
)

const (
	panicThresholdInvalid = "cca: WithThreshold: threshold must be finite and non-negative"
	panicFudgeInvalid     = "cca: WithFudge: fudge must be finite and non-negative"
	panicSolverNil        = "cca: WithSolver: solver must not be nil"
	panicWorkersInvalid   = "cca: WithWorkers: workers must be >= 0"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; public entry
// points accept ...Option.
type Options struct {
	threshold float64
	fudge     float64
	solver    linalg.Solver
	workers   int
	logger    zerolog.Logger
}

// WithThreshold sets the relative-eigenvalue cutoff used when sphering blocks.
// Raising it never increases the retained rank.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithFudge sets the eigenvalue offset used by Whiten.
func WithFudge(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		panic(panicFudgeInvalid)
	}

	return func(o *Options) { o.fudge = f }
}

// WithSolver selects the symmetric eigen solver (default linalg.LAPACK).
func WithSolver(s linalg.Solver) Option {
	if s == nil {
		panic(panicSolverNil)
	}

	return func(o *Options) { o.solver = s }
}

// WithWorkers bounds the number of pages solved concurrently by SolveStack.
// 0 selects runtime.GOMAXPROCS(0); 1 solves pages one after another.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes Debug events (retained ranks, page dispatch) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		threshold: DefaultThreshold,
		fudge:     DefaultFudge,
		solver:    linalg.DefaultSolver(),
		logger:    zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
