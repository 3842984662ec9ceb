// SPDX-License-Identifier: MIT
// Package: gencpnet/degeneracy
//
// degeneracy.go — per-column relevance test over the assignment table.
//
// Contract:
//   - Columns are examined in ascending order; IsDegenerate returns at the
//     first irrelevant one.
//   - Value pairs (a, b) are ordered, a ≠ b, a and b ascending from 1.
//   - Scratch buffers are allocated once per check and overwritten for every
//     (y, a, b); nothing is retained after the call returns.

package degeneracy

import (
	"fmt"

	"github.com/katalvlaran/gencpnet/assignment"
	"github.com/katalvlaran/gencpnet/cpt"
)

const (
	methodIsDegenerate   = "IsDegenerate"
	methodVacuousParents = "VacuousParents"
	methodCheck          = "Check"
)

// checker binds one output vector to its assignment table and scratch space.
type checker struct {
	d       int
	m       int
	tab     *assignment.Table
	outputs []uint64
	ua, ub  []uint64 // U_a and U_b, each N/d long
}

// IsDegenerate reports whether the table defined by outputs (length d^m, in
// assignment row order) fails to depend on at least one of its m parents.
//
// m == 0 is never degenerate. A constant output vector with m ≥ 1 always is.
//
// Errors:
//   - ErrRowCountMismatch when len(outputs) != d^m.
//   - ErrResourceExhausted when d^m overflows or exceeds the row budget.
//   - assignment.ErrInvalidShape when d < 1 or m < 0.
func IsDegenerate(d, m int, outputs []uint64, opts ...Option) (bool, error) {
	c, err := newChecker(methodIsDegenerate, d, m, outputs, newCheckConfig(opts...))
	if err != nil {
		return false, err
	}
	for y := 0; y < m; y++ {
		if c.columnIrrelevant(y) {
			return true, nil
		}
	}
	return false, nil
}

// VacuousParents returns, in ascending order, every column the table does not
// depend on. The result is empty (nil) iff IsDegenerate would return false.
// Errors are those of IsDegenerate.
func VacuousParents(d, m int, outputs []uint64, opts ...Option) ([]int, error) {
	c, err := newChecker(methodVacuousParents, d, m, outputs, newCheckConfig(opts...))
	if err != nil {
		return nil, err
	}
	var vacuous []int
	for y := 0; y < m; y++ {
		if c.columnIrrelevant(y) {
			vacuous = append(vacuous, y)
		}
	}
	return vacuous, nil
}

// Check is IsDegenerate applied to t.DomainSize, t.Arity and t.Outputs.
func Check(t *cpt.Table, opts ...Option) (bool, error) {
	if t == nil {
		return false, fmt.Errorf("%s: nil table: %w", methodCheck, ErrRowCountMismatch)
	}
	return IsDegenerate(t.DomainSize, t.Arity, t.Outputs, opts...)
}

// newChecker validates the row count, obtains the assignment table (reused or
// freshly built within the row budget) and allocates the two scratch buffers.
func newChecker(method string, d, m int, outputs []uint64, cfg checkConfig) (*checker, error) {
	n, err := assignment.RowCount(d, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if len(outputs) != n {
		return nil, fmt.Errorf("%s: len(outputs)=%d, d^m=%d: %w", method, len(outputs), n, ErrRowCountMismatch)
	}

	tab := cfg.table
	if tab == nil {
		if tab, err = assignment.NewTable(d, m, cfg.maxRows); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	} else if tab.DomainSize() != d || tab.Cols() != m {
		return nil, fmt.Errorf("%s: table is %d^%d, want %d^%d: %w",
			method, tab.DomainSize(), tab.Cols(), d, m, ErrRowCountMismatch)
	}

	c := &checker{d: d, m: m, tab: tab, outputs: outputs}
	if m > 0 {
		c.ua = make([]uint64, n/d)
		c.ub = make([]uint64, n/d)
	}
	return c, nil
}

// columnIrrelevant reports whether no ordered value pair (a, b) of column y
// changes the output with every other column held fixed. It returns false at
// the first difference found.
func (c *checker) columnIrrelevant(y int) bool {
	for a := 1; a <= c.d; a++ {
		for b := 1; b <= c.d; b++ {
			if a == b {
				continue
			}
			c.collect(y, uint8(a), uint8(b))
			for i := range c.ua {
				if c.ua[i] != c.ub[i] {
					return false
				}
			}
		}
	}
	return true
}

// collect fills U_a and U_b for column y in one walk over the rows.
func (c *checker) collect(y int, a, b uint8) {
	ia, ib := 0, 0
	for r, out := range c.outputs {
		switch c.tab.Row(r)[y] {
		case a:
			c.ua[ia] = out
			ia++
		case b:
			c.ub[ib] = out
			ib++
		}
	}
}
