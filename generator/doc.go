// Package generator draws random conditional preference tables that are
// guaranteed to depend on every declared parent.
//
// The sampler is a rejection loop. Each attempt fills a fresh output vector
// of N = d^m rows; row r receives NoRule with probability ε (the
// incompleteness degree) and otherwise a uniformly random permutation rank in
// [1, d!]. The vector is handed to package degeneracy; a degenerate vector is
// discarded whole and the next attempt redraws every row.
//
// Determinism:
//
//	For each row in ascending order the generator consumes exactly one
//	rng.Float64() for the incompleteness decision and then, only when the
//	row receives a rule, one rng.Int63n(d!) for the rank. No other draws are
//	made, so a fixed seed reproduces the same sequence of attempts.
//
// Termination:
//
//	The expected number of attempts is small for realistic ε but grows
//	without bound as ε approaches 1 with m > 0. WithMaxAttempts caps the loop
//	and turns exhaustion into ErrAttemptsExhausted; the default (0) loops
//	until success.
//
// Concurrency:
//
//	A *Generator owns its *rand.Rand and is not safe for concurrent use.
//	Use one Generator per goroutine.
//
// Errors:
//
//   - ErrInvalidDomainSize      d outside [2, permutation.MaxDomainSize]
//   - ErrInvalidIncompleteness  ε outside [0, 1)
//   - ErrNeedRandSource         no WithSeed/WithRand option
//   - ErrNegativeArity          m < 0
//   - ErrAttemptsExhausted      attempt cap reached
//   - ErrResourceExhausted      d^m too large for the row budget
//
// Degenerate draws are never reported; they are internal control flow.
package generator
