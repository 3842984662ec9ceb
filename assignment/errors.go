// SPDX-License-Identifier: MIT
// Package: gencpnet/assignment
//
// errors.go — sentinel errors for the assignment package.
// Callers MUST use errors.Is; context is attached with %w at the
// detection site.

package assignment

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

var (
	// ErrInvalidShape indicates d < 1, d above MaxDomainValue, or m < 0.
	ErrInvalidShape = errors.New("assignment: invalid shape")

	// ErrResourceExhausted indicates that d^m overflows int or exceeds the
	// configured row budget. It is fatal for the current generation attempt
	// and distinct from any logic error.
	ErrResourceExhausted = errors.New("assignment: resource exhausted")

	// ErrOutOfRange indicates that a row or column index is outside the table.
	ErrOutOfRange = errors.New("assignment: index out of range")
)

// exhaustedErrorf reports a row budget violation with the requested count.
// requested == 0 means d^m overflowed before it could be computed.
func exhaustedErrorf(method string, d, m, requested, limit int) error {
	if requested == 0 {
		return fmt.Errorf("%s: %d^%d rows overflow int: %w", method, d, m, ErrResourceExhausted)
	}
	return fmt.Errorf("%s: requested %s rows (limit %s): %w",
		method, humanize.Comma(int64(requested)), humanize.Comma(int64(limit)), ErrResourceExhausted)
}
