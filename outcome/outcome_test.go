// Package outcome_test covers the Outcome helpers and the samplers.
package outcome_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gencpnet/assignment"
	"github.com/katalvlaran/gencpnet/outcome"
)

// TestOutcomeHelpers checks String, Hamming and Project.
func TestOutcomeHelpers(t *testing.T) {
	t.Parallel()

	o := outcome.Outcome{1, 3, 2}
	assert.Equal(t, "(1,3,2)", o.String())
	assert.Equal(t, 0, o.Hamming(outcome.Outcome{1, 3, 2}))
	assert.Equal(t, 2, o.Hamming(outcome.Outcome{2, 3, 1}))
	assert.Equal(t, 2, o.Hamming(outcome.Outcome{1}))

	p, err := o.Project([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, outcome.Outcome{2, 1}, p)

	_, err = o.Project([]int{3})
	require.ErrorIs(t, err, outcome.ErrOutOfDomain)
}

// TestRowIndex inverts assignment.Value for every row of a small table.
func TestRowIndex(t *testing.T) {
	t.Parallel()

	const d, m = 3, 3
	tab, err := assignment.NewTable(d, m, 0)
	require.NoError(t, err)
	for r := 0; r < tab.Rows(); r++ {
		o := make(outcome.Outcome, m)
		for c, v := range tab.Row(r) {
			o[c] = int(v)
		}
		got, err := o.RowIndex(d)
		require.NoError(t, err)
		require.Equal(t, r, got)
	}

	got, err := outcome.Outcome{}.RowIndex(d)
	require.NoError(t, err)
	require.Equal(t, 0, got)

	_, err = outcome.Outcome{4}.RowIndex(d)
	require.ErrorIs(t, err, outcome.ErrOutOfDomain)
	_, err = outcome.Outcome{1}.RowIndex(0)
	require.ErrorIs(t, err, outcome.ErrInvalidDomainSize)
}

// TestKSubset: exact size, ascending, distinct, in range; every index is
// reachable.
func TestKSubset(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	hits := make([]int, 10)
	for i := 0; i < 500; i++ {
		s, err := outcome.KSubset(rng, 10, 4)
		require.NoError(t, err)
		require.Len(t, s, 4)
		require.True(t, sort.IntsAreSorted(s))
		for j, v := range s {
			require.True(t, v >= 0 && v < 10)
			if j > 0 {
				require.NotEqual(t, s[j-1], v)
			}
			hits[v]++
		}
	}
	for idx, h := range hits {
		assert.Positive(t, h, "index %d never selected", idx)
	}

	all, err := outcome.KSubset(rng, 5, 5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, all)

	none, err := outcome.KSubset(rng, 5, 0)
	require.NoError(t, err)
	require.Empty(t, none)

	_, err = outcome.KSubset(rng, 3, 4)
	require.ErrorIs(t, err, outcome.ErrInvalidHamming)
	_, err = outcome.KSubset(nil, 3, 1)
	require.ErrorIs(t, err, outcome.ErrNeedRandSource)
}

// TestRandom: values in range and argument validation.
func TestRandom(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	o, err := outcome.Random(rng, 6, 3)
	require.NoError(t, err)
	require.Len(t, o, 6)
	for _, v := range o {
		require.True(t, v >= 1 && v <= 3)
	}

	_, err = outcome.Random(rng, -1, 3)
	require.ErrorIs(t, err, outcome.ErrInvalidFeatures)
	_, err = outcome.Random(rng, 2, 0)
	require.ErrorIs(t, err, outcome.ErrInvalidDomainSize)
	_, err = outcome.Random(nil, 2, 2)
	require.ErrorIs(t, err, outcome.ErrNeedRandSource)
}

// TestRandomPair: exact Hamming distance when requested, distinct otherwise.
func TestRandomPair(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for h := 0; h <= 5; h++ {
		for i := 0; i < 50; i++ {
			a, b, err := outcome.RandomPair(rng, 5, 3, h)
			require.NoError(t, err)
			if h == 0 {
				require.Positive(t, a.Hamming(b))
				continue
			}
			require.Equal(t, h, a.Hamming(b))
		}
	}

	// Binary single feature: the only distinct pair.
	a, b, err := outcome.RandomPair(rng, 1, 2, 0)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 2}, []int{a[0], b[0]})

	_, _, err = outcome.RandomPair(rng, 3, 2, 4)
	require.ErrorIs(t, err, outcome.ErrInvalidHamming)
	_, _, err = outcome.RandomPair(rng, 0, 2, 0)
	require.ErrorIs(t, err, outcome.ErrInvalidFeatures)
	_, _, err = outcome.RandomPair(rng, 3, 1, 1)
	require.ErrorIs(t, err, outcome.ErrInvalidDomainSize)
}
