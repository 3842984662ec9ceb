// SPDX-License-Identifier: MIT
// Package: gencpnet/generator
//
// generator.go — rejection sampler for non-degenerate CPTs.
//
// Contract:
//   - New validates (d, ε) and RNG presence; no later mutation.
//   - Generate(m) builds the assignment table once, then loops: draw all N
//     rows, test degeneracy, return or discard.
//   - Resource errors abort immediately; degenerate draws are retried.
//
// Complexity per attempt:
//   - Time: O(N) draws + O(m·d²·N) degeneracy test.
//   - Space: O(N) outputs + O(N/d) scratch; the O(N·m) table is shared by
//     all attempts of one call.

package generator

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/gencpnet/assignment"
	"github.com/katalvlaran/gencpnet/cpt"
	"github.com/katalvlaran/gencpnet/degeneracy"
	"github.com/katalvlaran/gencpnet/permutation"
)

// Generator samples CPTs for a fixed domain size and incompleteness degree.
type Generator struct {
	cfg     generatorConfig
	d       int
	eps     float64
	maxRank uint64 // d!
}

// Sample is the result of one Generate call.
type Sample struct {
	// Table is the accepted, non-degenerate CPT.
	Table *cpt.Table
	// Attempts counts draws including the accepted one (≥ 1).
	Attempts int
}

// New returns a Generator for domain size d and incompleteness degree eps.
//
// Errors (in priority order):
//   - ErrInvalidDomainSize when d ∉ [2, permutation.MaxDomainSize].
//   - ErrInvalidIncompleteness when eps ∉ [0, 1) or eps is NaN.
//   - ErrNeedRandSource when neither WithSeed nor WithRand was given.
func New(d int, eps float64, opts ...Option) (*Generator, error) {
	if d < cpt.MinDomainSize || d > permutation.MaxDomainSize {
		return nil, fmt.Errorf("%s: d=%d not in [%d,%d]: %w",
			methodNew, d, cpt.MinDomainSize, permutation.MaxDomainSize, ErrInvalidDomainSize)
	}
	if math.IsNaN(eps) || eps < 0 || eps >= 1 {
		return nil, fmt.Errorf("%s: eps=%g not in [0,1): %w", methodNew, eps, ErrInvalidIncompleteness)
	}

	cfg := newGeneratorConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNeedRandSource)
	}

	return &Generator{
		cfg:     cfg,
		d:       d,
		eps:     eps,
		maxRank: permutation.MustFactorial(d),
	}, nil
}

// DomainSize returns d.
func (g *Generator) DomainSize() int { return g.d }

// Incompleteness returns ε.
func (g *Generator) Incompleteness() float64 { return g.eps }

// Generate draws CPTs for arity m until one is non-degenerate.
//
// Errors:
//   - ErrNegativeArity when m < 0.
//   - ErrResourceExhausted when d^m overflows or exceeds the row budget.
//   - ErrAttemptsExhausted when WithMaxAttempts is set and reached.
func (g *Generator) Generate(m int) (Sample, error) {
	if m < 0 {
		return Sample{}, fmt.Errorf("%s: m=%d: %w", methodGenerate, m, ErrNegativeArity)
	}

	tab, err := assignment.NewTable(g.d, m, g.cfg.maxRows)
	if err != nil {
		return Sample{}, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	check := degeneracy.WithTable(tab)

	for attempt := 1; ; attempt++ {
		outputs := make([]uint64, tab.Rows())
		g.draw(outputs)

		deg, err := degeneracy.IsDegenerate(g.d, m, outputs, check)
		if err != nil {
			return Sample{}, fmt.Errorf("%s: %w", methodGenerate, err)
		}
		if !deg {
			return Sample{
				Table:    &cpt.Table{DomainSize: g.d, Arity: m, Outputs: outputs},
				Attempts: attempt,
			}, nil
		}

		g.cfg.logger.Debug("rejected degenerate table",
			slog.Int("arity", m),
			slog.Int("attempt", attempt),
			slog.Int("rows", len(outputs)),
		)

		if g.cfg.maxAttempts > 0 && attempt >= g.cfg.maxAttempts {
			return Sample{}, fmt.Errorf("%s: m=%d d=%d eps=%g after %d attempts: %w",
				methodGenerate, m, g.d, g.eps, attempt, ErrAttemptsExhausted)
		}
	}
}

// draw fills outputs in ascending row order: one Float64 decision per row,
// then one Int63n rank draw only for rows that receive a rule.
func (g *Generator) draw(outputs []uint64) {
	rng := g.cfg.rng
	span := int64(g.maxRank)
	for i := range outputs {
		if rng.Float64() < g.eps {
			outputs[i] = cpt.NoRule
			continue
		}
		outputs[i] = 1 + uint64(rng.Int63n(span))
	}
}
