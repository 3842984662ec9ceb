// SPDX-License-Identifier: MIT
// Package: gencpnet/degeneracy
//
// errors.go — sentinel errors for the degeneracy checker.

package degeneracy

import (
	"errors"

	"github.com/katalvlaran/gencpnet/assignment"
)

var (
	// ErrRowCountMismatch indicates that the output vector length differs
	// from d^m, or that a table passed via WithTable has another shape.
	ErrRowCountMismatch = errors.New("degeneracy: output count does not match d^m")

	// ErrResourceExhausted is assignment.ErrResourceExhausted, re-exported so
	// callers of this package can branch on it without importing assignment.
	ErrResourceExhausted = assignment.ErrResourceExhausted
)
