// SPDX-License-Identifier: MIT

package covariance

import "github.com/rs/zerolog"

// Option configures an Accumulator.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger routes Debug events (per-chunk sample and discard counts) to l.
// The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(user ...Option) options {
	o := options{logger: zerolog.Nop()}
	for _, set := range user {
		set(&o)
	}

	return o
}
