// SPDX-License-Identifier: MIT
// Package: gencpnet/cpt
//
// format.go — human-readable rendering for logs. Carries no decision logic.

package cpt

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/gencpnet/permutation"
)

// ---------- formatting literals ----------
const (
	_fmtOpen     = "[ "
	_fmtClose    = "]"
	_fmtNoRule   = "*"
	_fmtBadRank  = "?"
	_fmtEntrySep = " "
)

// Format renders outputs over a domain of size d as "[ e0 e1 … ]".
// Each entry is the decoded ordering ("2>1>3") or "*" for NoRule; a rank that
// cannot be decoded renders as "?<rank>".
//
// Complexity: O(N·d²).
func Format(outputs []uint64, d int) string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for _, v := range outputs {
		b.WriteString(formatEntry(v, d))
		b.WriteString(_fmtEntrySep)
	}
	b.WriteString(_fmtClose)
	return b.String()
}

// formatEntry renders a single output.
func formatEntry(v uint64, d int) string {
	if v == NoRule {
		return _fmtNoRule
	}
	p, err := permutation.RankToPermutation(v, d)
	if err != nil {
		return _fmtBadRank + strconv.FormatUint(v, 10)
	}
	return p.String()
}

// String implements fmt.Stringer via Format.
func (t *Table) String() string {
	return Format(t.Outputs, t.DomainSize)
}
