// SPDX-License-Identifier: MIT
// Package: gencpnet/permutation
//
// errors.go — sentinel errors for the permutation codec.
// Callers branch with errors.Is; context is attached with %w.

package permutation

import "errors"

var (
	// ErrDomainSize indicates a domain size outside [1, MaxDomainSize];
	// larger domains would overflow the uint64 factorial table.
	ErrDomainSize = errors.New("permutation: domain size out of range")

	// ErrRankOutOfRange indicates a rank outside the closed interval [1, d!].
	ErrRankOutOfRange = errors.New("permutation: rank out of range")

	// ErrNotPermutation indicates that a Ranking is not an ordering of 1..d
	// (a value is missing, repeated, or outside the domain).
	ErrNotPermutation = errors.New("permutation: not a permutation")
)
