// Package outcome samples complete assignments (outcomes) over n features
// with homogeneous domains {1,…,d}, for dominance-testing experiments on
// generated CP-nets.
//
// What:
//
//   - Outcome: one value per feature; Hamming distance, projection onto a
//     parent set, and the CPT row index of that projection.
//   - KSubset: Knuth's selection sampling (TAOCP vol. 2, Algorithm 3.4.2S),
//     choosing k of n indices in ascending order with one draw per index
//     visited.
//   - Random / RandomPair: uniform outcomes and outcome pairs, optionally at
//     an exact Hamming distance.
//
// Complexity:
//
//   - KSubset:    Time O(n), Memory O(k)
//   - RandomPair: Time O(n) expected
package outcome
