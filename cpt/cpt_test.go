// Package cpt_test covers Table validation, rule counting and Format.
package cpt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gencpnet/assignment"
	"github.com/katalvlaran/gencpnet/cpt"
)

// TestValidate runs the structural contract table.
func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tab  cpt.Table
		want error
	}{
		{"root d=3", cpt.Table{DomainSize: 3, Arity: 0, Outputs: []uint64{6}}, nil},
		{"d=2 m=2 with no-rule", cpt.Table{DomainSize: 2, Arity: 2, Outputs: []uint64{1, 0, 2, 1}}, nil},
		{"d too small", cpt.Table{DomainSize: 1, Arity: 0, Outputs: []uint64{1}}, cpt.ErrInvalidDomainSize},
		{"d too large", cpt.Table{DomainSize: 21, Arity: 0, Outputs: []uint64{1}}, cpt.ErrInvalidDomainSize},
		{"negative arity", cpt.Table{DomainSize: 2, Arity: -1}, cpt.ErrNegativeArity},
		{"short outputs", cpt.Table{DomainSize: 2, Arity: 2, Outputs: []uint64{1, 2, 1}}, cpt.ErrRowCountMismatch},
		{"rank above d!", cpt.Table{DomainSize: 3, Arity: 1, Outputs: []uint64{1, 7, 2}}, cpt.ErrOutputOutOfRange},
		{"overflowing arity", cpt.Table{DomainSize: 2, Arity: 80}, assignment.ErrResourceExhausted},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.tab.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRulesAndRanking checks rule counting and per-row decoding.
func TestRulesAndRanking(t *testing.T) {
	t.Parallel()

	tab := cpt.Table{DomainSize: 3, Arity: 1, Outputs: []uint64{cpt.NoRule, 3, 6}}
	require.Equal(t, 3, tab.Rows())
	require.Equal(t, 2, tab.Rules())

	_, ok, err := tab.Ranking(0)
	require.NoError(t, err)
	require.False(t, ok)

	p, ok, err := tab.Ranking(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2>1>3", p.String())

	_, _, err = tab.Ranking(3)
	require.ErrorIs(t, err, cpt.ErrRowCountMismatch)
}

// TestFormat pins the diagnostic rendering.
func TestFormat(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[ 1>2 * 2>1 ]", cpt.Format([]uint64{1, cpt.NoRule, 2}, 2))
	require.Equal(t, "[ ]", cpt.Format(nil, 2))
	require.Equal(t, "[ ?9 ]", cpt.Format([]uint64{9}, 2))

	tab := &cpt.Table{DomainSize: 3, Arity: 0, Outputs: []uint64{4}}
	require.Equal(t, "[ 2>3>1 ]", tab.String())
}
