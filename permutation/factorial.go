// SPDX-License-Identifier: MIT
// Package: gencpnet/permutation
//
// factorial.go — precomputed factorial table.

package permutation

import "fmt"

// MaxDomainSize is the largest domain whose factorial fits in a uint64 (20!).
const MaxDomainSize = 20

// factorials[i] == i! for 0 ≤ i ≤ MaxDomainSize.
var factorials = func() [MaxDomainSize + 1]uint64 {
	var t [MaxDomainSize + 1]uint64
	t[0] = 1
	for i := 1; i <= MaxDomainSize; i++ {
		t[i] = t[i-1] * uint64(i)
	}
	return t
}()

// Factorial returns d! from the precomputed table.
// Complexity: O(1).
func Factorial(d int) (uint64, error) {
	if d < 0 || d > MaxDomainSize {
		return 0, fmt.Errorf("Factorial: d=%d not in [0,%d]: %w", d, MaxDomainSize, ErrDomainSize)
	}
	return factorials[d], nil
}

// MustFactorial is Factorial for callers that already validated d.
// It panics on an out-of-range d.
func MustFactorial(d int) uint64 {
	f, err := Factorial(d)
	if err != nil {
		panic(err)
	}
	return f
}
