// Package assignment enumerates the parent-value assignments of a
// conditional preference table.
//
// A variable with m parents over a homogeneous domain {1,…,d} has N = d^m
// parent assignments. Row r of the assignment matrix is the base-d
// decomposition of r, shifted to 1-based values, with column 0 the most
// significant digit:
//
//	d=2, m=2:   r   c0 c1
//	            0    1  1
//	            1    1  2
//	            2    2  1
//	            3    2  2
//
// Column c keeps the same value over runs of d^(m-c-1) consecutive rows.
// The degeneracy test relies on this layout: walking the rows in order and
// keeping those with column y = a (resp. b) pairs up rows that agree on every
// other column.
//
// Two interchangeable implementations are provided:
//
//   - Value(d, m, r, c): direct modular arithmetic, stateless per (r, c).
//   - NewTable(d, m, maxRows): materializes the N×m matrix in one contiguous
//     row-major buffer filled by an odometer counter.
//
// Tests cross-check both for every (r, c).
//
// Resource policy:
//
//	Row counts grow exponentially in m. RowCount reports overflow, and
//	NewTable refuses to allocate beyond a row budget (DefaultMaxRows unless
//	overridden); both surface ErrResourceExhausted with the requested row
//	count so the caller can tell it apart from a logic error.
package assignment
