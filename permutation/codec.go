// SPDX-License-Identifier: MIT
// Package: gencpnet/permutation
//
// codec.go — rank ↔ ordering bijection over {1,…,d}.
//
// Contract:
//   - Ranks are 1-based: rank 1 is the identity ordering 1>2>…>d, rank d! is
//     the reversed ordering d>…>1.
//   - Orderings are enumerated in lexicographic order of their value
//     sequences, so the mapping is stable across releases.
//   - Decoding uses the factorial number system (Lehmer code): digit i of
//     (rank-1) in radix (d-1-i)! selects the i-th element among the values
//     not yet placed.

package permutation

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	methodRankToPermutation = "RankToPermutation"
	methodPermutationToRank = "PermutationToRank"

	// rankSeparator joins ranked values in String(), most preferred first.
	rankSeparator = ">"
)

// Ranking is a total preference order over 1..len(Ranking); element 0 is the
// most preferred value.
type Ranking []int

// String renders the ordering as "v0>v1>…". An empty Ranking renders "".
func (p Ranking) String() string {
	var sb strings.Builder
	for i, v := range p {
		if i > 0 {
			sb.WriteString(rankSeparator)
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// Prefers reports whether value a is ranked strictly above value b.
// Values absent from the ranking are never preferred.
func (p Ranking) Prefers(a, b int) bool {
	for _, v := range p {
		switch v {
		case a:
			return a != b
		case b:
			return false
		}
	}
	return false
}

// RankToPermutation decodes rank ∈ [1, d!] into its ordering of 1..d.
//
// Complexity: Time O(d²) (removal from the pool), Memory O(d).
func RankToPermutation(rank uint64, d int) (Ranking, error) {
	if d < 1 || d > MaxDomainSize {
		return nil, fmt.Errorf("%s: d=%d not in [1,%d]: %w", methodRankToPermutation, d, MaxDomainSize, ErrDomainSize)
	}
	if rank < 1 || rank > factorials[d] {
		return nil, fmt.Errorf("%s: rank=%d not in [1,%d]: %w", methodRankToPermutation, rank, factorials[d], ErrRankOutOfRange)
	}

	// Pool of unplaced values, kept sorted ascending.
	pool := make([]int, d)
	for i := range pool {
		pool[i] = i + 1
	}

	k := rank - 1
	out := make(Ranking, 0, d)
	for i := 0; i < d; i++ {
		f := factorials[d-1-i]
		idx := int(k / f)
		k %= f
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out, nil
}

// PermutationToRank returns the 1-based lexicographic rank of p, which must
// be an ordering of 1..len(p).
//
// Complexity: Time O(d²), Memory O(d).
func PermutationToRank(p Ranking) (uint64, error) {
	d := len(p)
	if d < 1 || d > MaxDomainSize {
		return 0, fmt.Errorf("%s: d=%d not in [1,%d]: %w", methodPermutationToRank, d, MaxDomainSize, ErrDomainSize)
	}

	seen := make([]bool, d+1)
	var rank uint64
	for i, v := range p {
		if v < 1 || v > d || seen[v] {
			return 0, fmt.Errorf("%s: value %d at position %d: %w", methodPermutationToRank, v, i, ErrNotPermutation)
		}
		// Lehmer digit: how many smaller values are still unplaced.
		smaller := 0
		for u := 1; u < v; u++ {
			if !seen[u] {
				smaller++
			}
		}
		seen[v] = true
		rank += uint64(smaller) * factorials[d-1-i]
	}
	return rank + 1, nil
}
