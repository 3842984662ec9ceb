// SPDX-License-Identifier: MIT
// Package: gencpnet/assignment
//
// enumerator.go — stateless mixed-radix (r, c) → value mapping.

package assignment

import (
	"fmt"
	"math"
)

const (
	methodRowCount = "RowCount"

	// MaxDomainValue bounds d so that every value fits the uint8 table cells.
	MaxDomainValue = math.MaxUint8
)

// RowCount returns N = d^m, the number of parent assignments.
//
// Errors:
//   - ErrInvalidShape when d < 1, d > MaxDomainValue or m < 0.
//   - ErrResourceExhausted when d^m does not fit in an int.
//
// Complexity: O(m).
func RowCount(d, m int) (int, error) {
	if err := validateShape(methodRowCount, d, m); err != nil {
		return 0, err
	}
	n := 1
	for i := 0; i < m; i++ {
		if n > math.MaxInt/d {
			return 0, exhaustedErrorf(methodRowCount, d, m, 0, 0)
		}
		n *= d
	}
	return n, nil
}

// Stride returns d^(m-c-1): the number of consecutive rows sharing the same
// value in column c. The caller guarantees 0 ≤ c < m and that d^m fits.
func Stride(d, m, c int) int {
	s := 1
	for i := c + 1; i < m; i++ {
		s *= d
	}
	return s
}

// Value returns the value of column c in row r: 1 + the base-d digit of r at
// position c counted from the most significant end.
//
// The mapping has no error conditions for 0 ≤ r < d^m and 0 ≤ c < m; other
// inputs yield meaningless but non-panicking results.
// Complexity: O(m) for the stride.
func Value(d, m, r, c int) int {
	return 1 + (r/Stride(d, m, c))%d
}

// validateShape enforces 1 ≤ d ≤ MaxDomainValue and m ≥ 0.
func validateShape(method string, d, m int) error {
	if d < 1 || d > MaxDomainValue {
		return fmt.Errorf("%s: d=%d not in [1,%d]: %w", method, d, MaxDomainValue, ErrInvalidShape)
	}
	if m < 0 {
		return fmt.Errorf("%s: m=%d < 0: %w", method, m, ErrInvalidShape)
	}
	return nil
}
