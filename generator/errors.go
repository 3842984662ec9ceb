// SPDX-License-Identifier: MIT
// Package: gencpnet/generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with "%s: ...: %w" using the method tags below.
//   • Option constructors panic on meaningless values; Generate never panics.
//
// Priority when several validations fail in New:
//   ErrInvalidDomainSize → ErrInvalidIncompleteness → ErrNeedRandSource.

package generator

import (
	"errors"

	"github.com/katalvlaran/gencpnet/assignment"
)

// ErrInvalidDomainSize indicates d outside [2, permutation.MaxDomainSize].
var ErrInvalidDomainSize = errors.New("generator: invalid domain size")

// ErrInvalidIncompleteness indicates ε outside [0, 1) or NaN. ε = 1 would make
// every table with a parent degenerate and the sampler would never stop.
var ErrInvalidIncompleteness = errors.New("generator: incompleteness out of range")

// ErrNeedRandSource indicates that no RNG was configured (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("generator: rng is required")

// ErrNegativeArity indicates m < 0 in Generate.
var ErrNegativeArity = errors.New("generator: negative arity")

// ErrAttemptsExhausted indicates that WithMaxAttempts was reached before a
// non-degenerate table was drawn. It signals a configuration problem (ε too
// close to 1 for the arity), not a fault in the sampler.
var ErrAttemptsExhausted = errors.New("generator: attempts exhausted")

// ErrResourceExhausted is assignment.ErrResourceExhausted: d^m overflowed or
// exceeded the row budget. Generate returns it without retrying.
var ErrResourceExhausted = assignment.ErrResourceExhausted

// Method tags used as error prefixes.
const (
	methodNew      = "New"
	methodGenerate = "Generate"
)
