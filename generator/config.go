// SPDX-License-Identifier: MIT
// Package: gencpnet/generator
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng         = nil          (New fails with ErrNeedRandSource)
//   • maxAttempts = 0            (unbounded rejection loop)
//   • maxRows     = assignment.DefaultMaxRows
//   • logger      = discard

package generator

import (
	"io"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/gencpnet/assignment"
)

// generatorConfig aggregates all knobs; resolved once in New and never
// mutated afterwards.
type generatorConfig struct {
	// rng is the single random stream for decision and rank draws.
	rng *rand.Rand
	// maxAttempts caps the rejection loop; 0 means no cap.
	maxAttempts int
	// maxRows is the row budget for the assignment table.
	maxRows int
	// logger receives one Debug record per rejected attempt.
	logger *slog.Logger
}

// newGeneratorConfig applies options in order; later options override earlier.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		maxRows: assignment.DefaultMaxRows,
		logger:  slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
