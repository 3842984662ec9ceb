// Package gencpnet generates random conditional preference tables (CPTs) for
// CP-nets and decides whether a table is degenerate.
//
// What is a CPT here?
//
//	A variable with domain {1..d} and m parents gets one table row per parent
//	assignment (d^m rows, last parent varying fastest). Each row holds either
//	a strict ordering of the variable's values, encoded as its Lehmer rank in
//	[1, d!], or 0 when the row states no preference. A table is degenerate
//	when some parent never changes any row's ordering.
//
// Under the hood, everything is organized under a handful of subpackages:
//
//	permutation/ — factorials and rank ⇄ ordering codec ("2>1>3")
//	assignment/  — the d^m × m parent-assignment table, mixed-radix order
//	cpt/         — the Table type, validation and text rendering
//	degeneracy/  — IsDegenerate, VacuousParents and Check
//	generator/   — seeded rejection sampler producing non-degenerate tables
//	outcome/     — random outcomes and outcome pairs with a fixed Hamming distance
//	config/      — YAML run configuration
//	store/       — run archive in memory or SQLite
//	cmd/gencpt/  — command-line front end
//
// Quick example (d=2, one parent):
//
//	parent=1 → 1>2
//	parent=2 → 2>1      outputs [1 2]: not degenerate
//
//	parent=1 → 1>2
//	parent=2 → 1>2      outputs [1 1]: degenerate, parent 0 is vacuous
//
//	go get github.com/katalvlaran/gencpnet
package gencpnet
