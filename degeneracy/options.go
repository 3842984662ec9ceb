// SPDX-License-Identifier: MIT
// Package: gencpnet/degeneracy
//
// options.go — functional options for the checker.
// Option constructors panic on meaningless values; checks never panic.

package degeneracy

import "github.com/katalvlaran/gencpnet/assignment"

// Option customizes a single check.
type Option func(*checkConfig)

// checkConfig holds the resolved knobs of one check.
type checkConfig struct {
	// maxRows bounds the assignment table; ≤ 0 selects assignment.DefaultMaxRows.
	maxRows int
	// table, when non-nil, is reused instead of materializing a new one.
	table *assignment.Table
}

// newCheckConfig applies opts in order (last wins).
func newCheckConfig(opts ...Option) checkConfig {
	cfg := checkConfig{maxRows: assignment.DefaultMaxRows}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxRows sets the row budget for the assignment table.
// Panics if n < 0; n == 0 restores the default.
func WithMaxRows(n int) Option {
	if n < 0 {
		panic("degeneracy: WithMaxRows(n<0)")
	}
	return func(c *checkConfig) {
		c.maxRows = n
	}
}

// WithTable reuses a prebuilt assignment table, so repeated checks of the
// same (d, m) skip the O(N·m) fill. The table must match (d, m).
// Panics on nil.
func WithTable(t *assignment.Table) Option {
	if t == nil {
		panic("degeneracy: WithTable(nil)")
	}
	return func(c *checkConfig) {
		c.table = t
	}
}
