// SPDX-License-Identifier: MIT
// Package: gencpnet/cpt
//
// types.go — the Table value and its structural validation.

package cpt

import (
	"fmt"

	"github.com/katalvlaran/gencpnet/assignment"
	"github.com/katalvlaran/gencpnet/permutation"
)

// NoRule marks a parent assignment without a preference rule.
const NoRule uint64 = 0

// MinDomainSize is the smallest domain with more than one ordering.
const MinDomainSize = 2

const methodValidate = "Validate"

// Table is a conditional preference table.
type Table struct {
	// DomainSize is d, shared by the variable and all of its parents.
	DomainSize int
	// Arity is m, the number of parents.
	Arity int
	// Outputs has d^m entries in assignment row order; each is NoRule or a
	// permutation rank in [1, d!].
	Outputs []uint64
}

// Rows returns len(Outputs).
func (t *Table) Rows() int { return len(t.Outputs) }

// Rules counts outputs that carry a rule (are not NoRule).
func (t *Table) Rules() int {
	n := 0
	for _, v := range t.Outputs {
		if v != NoRule {
			n++
		}
	}
	return n
}

// Ranking decodes the output of row r. ok is false for NoRule.
func (t *Table) Ranking(r int) (p permutation.Ranking, ok bool, err error) {
	if r < 0 || r >= len(t.Outputs) {
		return nil, false, fmt.Errorf("Ranking: row %d not in [0,%d): %w", r, len(t.Outputs), ErrRowCountMismatch)
	}
	if t.Outputs[r] == NoRule {
		return nil, false, nil
	}
	p, err = permutation.RankToPermutation(t.Outputs[r], t.DomainSize)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// Validate checks the structural contract:
//   - MinDomainSize ≤ DomainSize ≤ permutation.MaxDomainSize
//   - Arity ≥ 0
//   - len(Outputs) == DomainSize^Arity
//   - every output is NoRule or in [1, DomainSize!]
//
// Complexity: O(N).
func (t *Table) Validate() error {
	if t.DomainSize < MinDomainSize || t.DomainSize > permutation.MaxDomainSize {
		return fmt.Errorf("%s: d=%d not in [%d,%d]: %w",
			methodValidate, t.DomainSize, MinDomainSize, permutation.MaxDomainSize, ErrInvalidDomainSize)
	}
	if t.Arity < 0 {
		return fmt.Errorf("%s: m=%d: %w", methodValidate, t.Arity, ErrNegativeArity)
	}
	n, err := assignment.RowCount(t.DomainSize, t.Arity)
	if err != nil {
		return fmt.Errorf("%s: %w", methodValidate, err)
	}
	if len(t.Outputs) != n {
		return fmt.Errorf("%s: len=%d want %d: %w", methodValidate, len(t.Outputs), n, ErrRowCountMismatch)
	}
	maxRank := permutation.MustFactorial(t.DomainSize)
	for r, v := range t.Outputs {
		if v > maxRank {
			return fmt.Errorf("%s: row %d output %d > %d: %w", methodValidate, r, v, maxRank, ErrOutputOutOfRange)
		}
	}
	return nil
}
