// Package degeneracy decides whether a conditional preference table depends
// on every parent it declares.
//
// What:
//
//   - IsDegenerate: true iff some parent column is vacuous, i.e. changing that
//     parent's value never changes the table's output when all other parents
//     are held fixed. Stops at the first vacuous column.
//   - VacuousParents: lists every vacuous column (diagnostic, no early exit).
//   - Check: IsDegenerate over a *cpt.Table.
//
// Algorithm (per column y, ascending):
//
//  1. Assume y is irrelevant.
//  2. For every ordered pair of distinct values (a, b): walk the rows once in
//     increasing order, collecting outputs of rows with column y = a into U_a
//     and those with y = b into U_b. Both hold N/d entries, and U_a[i], U_b[i]
//     come from rows that agree on every other column (a property of the
//     assignment row order, see package assignment). The first i with
//     U_a[i] ≠ U_b[i] proves y relevant; the remaining pairs are skipped.
//  3. If no pair differed, y is irrelevant and the table is degenerate.
//
// NoRule compares like any other output: two NoRule rows are equal, and a
// NoRule row differs from a ranked row.
//
// Complexity:
//
//   - Time   O(m · d² · N)
//   - Memory O(N·m) bytes for the assignment table plus two scratch buffers of
//     N/d outputs, reused for every (y, a, b).
//
// Errors:
//
//   - ErrRowCountMismatch   len(outputs) != d^m, or a supplied table has the
//     wrong shape (logic error)
//   - ErrResourceExhausted  d^m overflows or exceeds the row budget (fatal for
//     the attempt; never reported as "degenerate")
package degeneracy
