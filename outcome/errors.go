// SPDX-License-Identifier: MIT
// Package: gencpnet/outcome
//
// errors.go — sentinel errors for outcome sampling.

package outcome

import "errors"

var (
	// ErrNeedRandSource indicates a nil *rand.Rand.
	ErrNeedRandSource = errors.New("outcome: rng is required")

	// ErrInvalidDomainSize indicates d < 2 where two distinct values are needed,
	// or d < 1 anywhere.
	ErrInvalidDomainSize = errors.New("outcome: invalid domain size")

	// ErrInvalidFeatures indicates a negative feature count, or zero features
	// where a pair of distinct outcomes is requested.
	ErrInvalidFeatures = errors.New("outcome: invalid feature count")

	// ErrInvalidHamming indicates a Hamming distance above the feature count,
	// or a subset size outside [0, n].
	ErrInvalidHamming = errors.New("outcome: invalid hamming distance")

	// ErrOutOfDomain indicates a feature value outside [1, d] or a projection
	// index outside the outcome.
	ErrOutOfDomain = errors.New("outcome: value out of domain")
)
