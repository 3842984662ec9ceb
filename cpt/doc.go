// Package cpt defines the conditional preference table (CPT) value shared by
// the generator and the degeneracy checker, and renders tables for logs.
//
// A Table for a variable with Arity parents over a homogeneous domain of
// DomainSize values carries one output per parent assignment, in the row
// order of package assignment (column 0 most significant). Each output is
// either a permutation rank in [1, DomainSize!] (see package permutation)
// or NoRule, meaning the variable's values are pairwise incomparable under
// that assignment.
//
// The assignment matrix is derived from (DomainSize, Arity) on demand and is
// never stored with the outputs.
//
// Diagnostics:
//
//	Format renders "[ 1>2 * 2>1 1>2 ]": each output decoded to its ordering
//	(most preferred first) or "*" for NoRule, each followed by a space.
package cpt
