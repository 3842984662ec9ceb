// SPDX-License-Identifier: MIT
// Package: gencpnet/outcome
//
// sample.go — random outcomes, outcome pairs and k-subsets.
//
// Determinism:
//   - KSubset draws one Float64 per visited index, stopping once k are chosen.
//   - Random draws one Intn(d) per feature, feature 0 first.
//   - RandomPair draws the first outcome, then either whole second outcomes
//     until distinct (hamming ≤ 0) or a KSubset followed by per-feature
//     redraws until the value changes.

package outcome

import (
	"fmt"
	"math/rand"
)

// KSubset selects k distinct indices from [0, n) uniformly at random and
// returns them in ascending order (Knuth, Algorithm S).
func KSubset(rng *rand.Rand, n, k int) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("KSubset: %w", ErrNeedRandSource)
	}
	if n < 0 || k < 0 || k > n {
		return nil, fmt.Errorf("KSubset: k=%d n=%d: %w", k, n, ErrInvalidHamming)
	}
	out := make([]int, 0, k)
	for t := 0; t < n && len(out) < k; t++ {
		// Select index t with probability (k - selected) / (n - t).
		if float64(n-t)*rng.Float64() < float64(k-len(out)) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Random returns a uniformly random outcome over n features with domain d.
func Random(rng *rand.Rand, n, d int) (Outcome, error) {
	if rng == nil {
		return nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}
	if n < 0 {
		return nil, fmt.Errorf("Random: n=%d: %w", n, ErrInvalidFeatures)
	}
	if d < 1 {
		return nil, fmt.Errorf("Random: d=%d: %w", d, ErrInvalidDomainSize)
	}
	return random(rng, n, d), nil
}

// RandomPair returns two distinct outcomes over n features with domain d.
// hamming ≤ 0 samples the second outcome independently (rejecting equal
// outcomes); hamming in [1, n] makes them differ on exactly that many
// features, chosen uniformly.
func RandomPair(rng *rand.Rand, n, d, hamming int) (Outcome, Outcome, error) {
	if rng == nil {
		return nil, nil, fmt.Errorf("RandomPair: %w", ErrNeedRandSource)
	}
	if n < 1 {
		return nil, nil, fmt.Errorf("RandomPair: n=%d: %w", n, ErrInvalidFeatures)
	}
	if d < 2 {
		return nil, nil, fmt.Errorf("RandomPair: d=%d: %w", d, ErrInvalidDomainSize)
	}
	if hamming > n {
		return nil, nil, fmt.Errorf("RandomPair: hamming=%d > n=%d: %w", hamming, n, ErrInvalidHamming)
	}

	first := random(rng, n, d)
	if hamming <= 0 {
		for {
			second := random(rng, n, d)
			if first.Hamming(second) > 0 {
				return first, second, nil
			}
		}
	}

	changes, err := KSubset(rng, n, hamming)
	if err != nil {
		return nil, nil, fmt.Errorf("RandomPair: %w", err)
	}
	second := append(Outcome(nil), first...)
	for _, idx := range changes {
		v := second[idx]
		for v == second[idx] {
			v = 1 + rng.Intn(d)
		}
		second[idx] = v
	}
	return first, second, nil
}

// random draws n values in [1, d]; arguments are already validated.
func random(rng *rand.Rand, n, d int) Outcome {
	o := make(Outcome, n)
	for i := range o {
		o[i] = 1 + rng.Intn(d)
	}
	return o
}
