// Package permutation encodes total preference orderings over a homogeneous
// domain {1,…,d} as integer ranks and back.
//
// What:
//
//   - Factorial: precomputed lookup of d! for 0 ≤ d ≤ MaxDomainSize.
//   - RankToPermutation: decode a 1-based rank r ∈ [1, d!] into the r-th
//     ordering of 1..d in lexicographic order (factorial number system).
//   - PermutationToRank: the inverse mapping.
//   - Ranking: an ordering, most preferred value first, printed as "2>1>3".
//
// Why:
//
//   - A CPT row stores one uint64 instead of a d-length slice; the rank is
//     drawn uniformly from [1, d!] and decoded only for diagnostics.
//
// Complexity:
//
//   - Factorial:          Time O(1)
//   - RankToPermutation:  Time O(d²), Memory O(d)
//   - PermutationToRank:  Time O(d²), Memory O(d)
//
// Errors:
//
//   - ErrDomainSize      d outside [1, MaxDomainSize]
//   - ErrRankOutOfRange  rank outside [1, d!]
//   - ErrNotPermutation  input is not an ordering of 1..d
package permutation
