// SPDX-License-Identifier: MIT
// Package: gencpnet/cpt
//
// errors.go — sentinel errors for CPT validation.

package cpt

import "errors"

var (
	// ErrInvalidDomainSize indicates DomainSize outside [2, permutation.MaxDomainSize].
	ErrInvalidDomainSize = errors.New("cpt: invalid domain size")

	// ErrNegativeArity indicates Arity < 0.
	ErrNegativeArity = errors.New("cpt: negative arity")

	// ErrRowCountMismatch indicates len(Outputs) != DomainSize^Arity.
	ErrRowCountMismatch = errors.New("cpt: output count does not match d^m")

	// ErrOutputOutOfRange indicates an output that is neither NoRule nor a
	// rank in [1, DomainSize!].
	ErrOutputOutOfRange = errors.New("cpt: output out of range")
)
