// Package checkpoint implements the durable progress table deptally writes
// between runs.
//
// # Table
//
// A [Table] is an ordered mapping from package name to a three-state
// downloads cell: unresolved (never attempted), unavailable (the statistics
// API reported the package does not exist), or a resolved non-negative
// count. Insertion order is the popularity ranking produced by the
// dependents fetch and is preserved across every rewrite. Each name appears
// exactly once, and a cell that has been resolved or marked unavailable can
// never return to unresolved.
//
// # File format
//
// Tables serialize to a two-column UTF-8 CSV with the exact header
// "pkg_name,downloads". The downloads column is the empty string for
// unresolved, the literal "NA" for unavailable, or a decimal integer.
// [Load] rejects files with a wrong header or rows that don't have exactly
// two fields, wrapping [ErrMalformed].
//
// A fully-resolved table round-trips byte-identically through [Save] and
// [Load], which is what makes rerunning deptally on a finished checkpoint
// a no-op.
package checkpoint
