// SPDX-License-Identifier: MIT

// Package assignment - Table storage (row-major) & accessors.
//
// Purpose:
//   - Own the N×m assignment matrix in a single contiguous buffer with the
//     index formula r*m + c.
//   - Safe public indexer (At) returns errors; Row returns a no-copy slice
//     for hot loops that already iterate within bounds.
//   - Fill deterministically with an odometer so that the layout matches
//     Value(d, m, r, c) cell for cell.
//
// Complexity quicksheet:
//   - NewTable: O(N*m) time and space; At/Row: O(1); String: O(N*m).

package assignment

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxRows is the row budget applied when NewTable receives maxRows ≤ 0.
// 2^24 rows keep the table and the degeneracy scratch buffers well under a
// gigabyte for any arity that fits.
const DefaultMaxRows = 1 << 24

// ---------- error context tags ----------

const (
	ctxNewTable = "NewTable"
	ctxAt       = "At"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
)

// Table is the materialized assignment matrix for arity m over domain d.
//   - n = d^m rows, m columns.
//   - data holds n*m cells in row-major order (offset = r*m + c).
//   - Cells are 1-based domain values (1..d).
type Table struct {
	d, m, n int
	data    []uint8
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Table)(nil)

// NewTable allocates and fills the assignment matrix for arity m over
// domain size d.
//
// Implementation:
//   - Stage 1: validate shape and compute N = d^m with overflow detection.
//   - Stage 2: enforce the row budget (maxRows ≤ 0 selects DefaultMaxRows).
//   - Stage 3: allocate one contiguous buffer and fill it with an odometer:
//     the least significant column (m-1) advances every row, carrying into
//     column m-2 when it wraps past d, and so on.
//
// Errors:
//   - ErrInvalidShape (d, m out of range).
//   - ErrResourceExhausted (overflow or budget exceeded), wrapped with the
//     requested row count.
//
// Determinism:
//   - Same (d, m) ⇒ identical layout.
//
// Complexity:
//   - Time O(N*m), Space O(N*m) bytes.
func NewTable(d, m, maxRows int) (*Table, error) {
	n, err := RowCount(d, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewTable, err)
	}
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	if n > maxRows {
		return nil, exhaustedErrorf(ctxNewTable, d, m, n, maxRows)
	}

	t := &Table{d: d, m: m, n: n, data: make([]uint8, n*m)}
	if m == 0 {
		return t, nil
	}

	// Odometer digits, all starting at the first domain value.
	digits := make([]uint8, m)
	for c := range digits {
		digits[c] = 1
	}
	top := uint8(d)
	for r := 0; r < n; r++ {
		copy(t.data[r*m:(r+1)*m], digits)
		// Advance: increment the fastest column, carry leftwards on wrap.
		for c := m - 1; c >= 0; c-- {
			if digits[c] < top {
				digits[c]++
				break
			}
			digits[c] = 1
		}
	}
	return t, nil
}

// Rows returns N = d^m.
func (t *Table) Rows() int { return t.n }

// Cols returns the arity m.
func (t *Table) Cols() int { return t.m }

// DomainSize returns d.
func (t *Table) DomainSize() int { return t.d }

// At returns the value of column c in row r.
// Errors: ErrOutOfRange wrapped with the coordinates.
func (t *Table) At(r, c int) (int, error) {
	if r < 0 || r >= t.n || c < 0 || c >= t.m {
		return 0, fmt.Errorf("Table.%s(%d,%d): %w", ctxAt, r, c, ErrOutOfRange)
	}
	return int(t.data[r*t.m+c]), nil
}

// Row returns row r as a slice aliasing the table buffer (no copy).
// Callers must not modify it. Panics if r is out of range, like slice
// indexing; use At for checked access.
func (t *Table) Row(r int) []uint8 {
	return t.data[r*t.m : (r+1)*t.m : (r+1)*t.m]
}

// String renders one bracketed line per row, e.g. "[1 2]\n".
// Intended for debugging small tables.
func (t *Table) String() string {
	var b strings.Builder
	for r := 0; r < t.n; r++ {
		b.WriteString(_fmtRowOpen)
		for c, v := range t.Row(r) {
			if c > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.Itoa(int(v)))
		}
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}
