package searcher

import (
	"math"

	"github.com/rs/zerolog"
)

// Option configures a single search run.
type Option func(args *args)

type args struct {
	maxExpansions int     // 0 means unlimited
	costLimit     float64 // Root bound for RBFS
	logger        zerolog.Logger
}

func newArgs(options []Option) *args {
	a := &args{ // Default values
		costLimit: math.Inf(1),
		logger:    zerolog.Nop(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// WithMaxExpansions stops the search as a failure once n nodes have been expanded.
func WithMaxExpansions(n int) Option {
	return func(a *args) {
		if n > 0 {
			a.maxExpansions = n
		}
	}
}

// WithCostLimit sets the f-cost bound RBFS starts from at the root.
func WithCostLimit(limit float64) Option {
	return func(a *args) {
		if limit > 0 {
			a.costLimit = limit
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(a *args) {
		a.logger = logger
	}
}

func (a *args) limitReached(expanded int) bool {
	return a.maxExpansions > 0 && expanded >= a.maxExpansions
}
