// Package assignment_test contains unit tests for the mixed-radix
// enumerator and the materialized Table.
package assignment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gencpnet/assignment"
)

// TestRowCount covers small powers, m=0 and overflow.
func TestRowCount(t *testing.T) {
	t.Parallel()

	cases := []struct{ d, m, want int }{
		{2, 0, 1}, {2, 1, 2}, {2, 2, 4}, {3, 3, 27}, {5, 4, 625}, {1, 7, 1},
	}
	for _, tc := range cases {
		got, err := assignment.RowCount(tc.d, tc.m)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "d=%d m=%d", tc.d, tc.m)
	}

	_, err := assignment.RowCount(2, 64)
	require.ErrorIs(t, err, assignment.ErrResourceExhausted)

	_, err = assignment.RowCount(0, 2)
	require.ErrorIs(t, err, assignment.ErrInvalidShape)
	_, err = assignment.RowCount(2, -1)
	require.ErrorIs(t, err, assignment.ErrInvalidShape)
	_, err = assignment.RowCount(math.MaxUint8+1, 1)
	require.ErrorIs(t, err, assignment.ErrInvalidShape)
}

// TestNewTable_ConcreteLayout pins the d=2, m=2 layout from the package doc.
func TestNewTable_ConcreteLayout(t *testing.T) {
	t.Parallel()

	tab, err := assignment.NewTable(2, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 4, tab.Rows())
	require.Equal(t, 2, tab.Cols())
	require.Equal(t, 2, tab.DomainSize())

	want := [][]uint8{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	for r, row := range want {
		require.Equal(t, row, tab.Row(r), "row %d", r)
	}
	require.Equal(t, "[1 1]\n[1 2]\n[2 1]\n[2 2]\n", tab.String())
}

// TestNewTable_MatchesValue cross-checks the odometer fill against the
// direct arithmetic mapping for a range of shapes.
func TestNewTable_MatchesValue(t *testing.T) {
	t.Parallel()

	for d := 1; d <= 4; d++ {
		for m := 0; m <= 4; m++ {
			tab, err := assignment.NewTable(d, m, 0)
			require.NoError(t, err)
			for r := 0; r < tab.Rows(); r++ {
				for c := 0; c < m; c++ {
					got, err := tab.At(r, c)
					require.NoError(t, err)
					require.Equal(t, assignment.Value(d, m, r, c), got, "d=%d m=%d r=%d c=%d", d, m, r, c)
				}
			}
		}
	}
}

// TestNewTable_ColumnPeriod verifies the run-length invariant: column c is
// constant over runs of Stride(d,m,c) rows and each value appears N/d times.
func TestNewTable_ColumnPeriod(t *testing.T) {
	t.Parallel()

	const d, m = 3, 3
	tab, err := assignment.NewTable(d, m, 0)
	require.NoError(t, err)

	for c := 0; c < m; c++ {
		stride := assignment.Stride(d, m, c)
		counts := make(map[uint8]int)
		for r := 0; r < tab.Rows(); r++ {
			v := tab.Row(r)[c]
			counts[v]++
			if r%stride != 0 {
				require.Equal(t, tab.Row(r-1)[c], v, "column %d changed inside a run at row %d", c, r)
			}
		}
		for v := uint8(1); v <= d; v++ {
			require.Equal(t, tab.Rows()/d, counts[v], "column %d value %d", c, v)
		}
	}
}

// TestNewTable_ZeroArity checks the single-row, no-column table.
func TestNewTable_ZeroArity(t *testing.T) {
	t.Parallel()

	tab, err := assignment.NewTable(3, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, tab.Rows())
	require.Equal(t, 0, tab.Cols())
	require.Empty(t, tab.Row(0))

	_, err = tab.At(0, 0)
	require.ErrorIs(t, err, assignment.ErrOutOfRange)
}

// TestNewTable_Budget ensures the row budget yields ErrResourceExhausted
// with the requested row count in the message.
func TestNewTable_Budget(t *testing.T) {
	t.Parallel()

	_, err := assignment.NewTable(2, 10, 1000)
	require.ErrorIs(t, err, assignment.ErrResourceExhausted)
	require.Contains(t, err.Error(), "1,024")

	_, err = assignment.NewTable(10, 40, 0)
	require.ErrorIs(t, err, assignment.ErrResourceExhausted)

	tab, err := assignment.NewTable(2, 10, 1024)
	require.NoError(t, err)
	require.Equal(t, 1024, tab.Rows())
}

// TestAtOutOfRange checks every boundary of the checked indexer.
func TestAtOutOfRange(t *testing.T) {
	t.Parallel()

	tab, err := assignment.NewTable(2, 2, 0)
	require.NoError(t, err)

	for _, rc := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		_, err := tab.At(rc[0], rc[1])
		require.ErrorIs(t, err, assignment.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
	}
}
