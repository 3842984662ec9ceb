// SPDX-License-Identifier: MIT
// Package: gencpnet/outcome
//
// outcome.go — the Outcome value.

package outcome

import (
	"fmt"
	"strconv"
	"strings"
)

// Outcome assigns a value in [1, d] to each feature, feature 0 first.
type Outcome []int

// String renders "(v0,v1,…)".
func (o Outcome) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(')')
	return b.String()
}

// Hamming counts the features on which o and other differ. Outcomes of
// different lengths also count each missing feature as a difference.
func (o Outcome) Hamming(other Outcome) int {
	short, long := o, other
	if len(short) > len(long) {
		short, long = long, short
	}
	diff := len(long) - len(short)
	for i, v := range short {
		if v != long[i] {
			diff++
		}
	}
	return diff
}

// Project returns the values of o at indices, in that order (a parent
// assignment for some variable).
func (o Outcome) Project(indices []int) (Outcome, error) {
	out := make(Outcome, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(o) {
			return nil, fmt.Errorf("Project: index %d not in [0,%d): %w", idx, len(o), ErrOutOfDomain)
		}
		out[i] = o[idx]
	}
	return out, nil
}

// RowIndex returns the CPT row of o read as a parent assignment over domain
// d: the mixed-radix number with o[0] most significant, i.e. the inverse of
// assignment.Value.
func (o Outcome) RowIndex(d int) (int, error) {
	if d < 1 {
		return 0, fmt.Errorf("RowIndex: d=%d: %w", d, ErrInvalidDomainSize)
	}
	r := 0
	for i, v := range o {
		if v < 1 || v > d {
			return 0, fmt.Errorf("RowIndex: feature %d value %d not in [1,%d]: %w", i, v, d, ErrOutOfDomain)
		}
		r = r*d + (v - 1)
	}
	return r, nil
}
