// SPDX-License-Identifier: MIT

package dss

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/eegclean/linalg"
)

const (
	// DefaultThreshold ignores PCs with λ/λmax ≤ 1e-9.
	DefaultThreshold = 1e-9

	// DefaultKeep retains every component above the threshold.
	DefaultKeep = 0
)

const (
	panicThresholdInvalid = "dss: WithThreshold: threshold must be finite and non-negative"
	panicKeepNegative     = "dss: WithKeep: keep must be >= 0"
	panicSolverNil        = "dss: WithSolver: solver must not be nil"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration for DSS0.
type Options struct {
	threshold float64
	keep      int
	solver    linalg.Solver
	logger    zerolog.Logger
}

// WithThreshold sets the relative eigenvalue cutoff applied to both PCA stages.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithKeep caps the number of components retained at each PCA stage (0 → all).
func WithKeep(n int) Option {
	if n < 0 {
		panic(panicKeepNegative)
	}

	return func(o *Options) { o.keep = n }
}

// WithSolver selects the symmetric eigen solver.
func WithSolver(s linalg.Solver) Option {
	if s == nil {
		panic(panicSolverNil)
	}

	return func(o *Options) { o.solver = s }
}

// WithLogger routes the Debug "components retained" event to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		threshold: DefaultThreshold,
		keep:      DefaultKeep,
		solver:    linalg.DefaultSolver(),
		logger:    zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
