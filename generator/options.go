// SPDX-License-Identifier: MIT
// Package: gencpnet/generator
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package generator

import (
	"log/slog"
	"math/rand"
)

// Option customizes a Generator before its first draw.
type Option func(*generatorConfig)

// WithRand provides an explicit RNG. Panics on nil.
// The Generator takes ownership: sharing r with other code changes the
// sequence of tables produced for a given seed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts caps the number of attempts per Generate call.
// 0 removes the cap. Panics if n < 0.
func WithMaxAttempts(n int) Option {
	if n < 0 {
		panic("generator: WithMaxAttempts(n<0)")
	}
	return func(c *generatorConfig) {
		c.maxAttempts = n
	}
}

// WithMaxRows sets the row budget for d^m. 0 restores the default.
// Panics if n < 0.
func WithMaxRows(n int) Option {
	if n < 0 {
		panic("generator: WithMaxRows(n<0)")
	}
	return func(c *generatorConfig) {
		c.maxRows = n
	}
}

// WithLogger routes rejection records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *generatorConfig) {
		c.logger = l
	}
}
