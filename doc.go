// Package elmat implements an elastic matrix: a dynamically resizable
// two-dimensional container with spreadsheet-like mutation of cells,
// rows and columns.
//
// What:
//
//   - Matrix[T] stores a dense, column-major grid of Cell[T] values,
//     where every cell exists but may be absent (Some / None).
//   - Rows and columns can be inserted, removed or replaced at arbitrary
//     positions; an inserted vector longer than the orthogonal dimension
//     stretches the matrix, padding existing vectors with absent cells.
//   - Views (Row, Column, AsRows, AsColumns) are independent copies;
//     mutating a returned slice never affects the matrix.
//   - Lookup (IndexOf, LastIndexOf, Contains), packing of trailing
//     all-absent rows/columns, swaps, reversals, transpose and quarter
//     turns, structural equality, and a configurable string rendering.
//
// Why:
//
//   - Spreadsheet-style editing: insert a row in the middle, drop a
//     column, replace a record, and keep the grid rectangular throughout.
//   - Staged data assembly: grow a table cell by cell, then Pack away the
//     scaffolding of absent rows and columns.
//   - Text layout: Format renders the grid row-major with per-column
//     alignment for logs and diagnostics.
//
// Invariants (hold after every exported operation):
//
//   - Rectangularity: all columns share one length.
//   - No half-empty state: Cols() == 0 if and only if Rows() == 0;
//     removing the last row or the last column collapses the matrix to
//     size (0,0).
//
// Complexity:
//
//   - At / Set / Unset / Swap:       O(1).
//   - Row insertion/removal:         O(C*R) worst case (per-column splice).
//   - Column insertion/removal:      O(C) splice of the column arena.
//   - Pack / Flip / Format / Equals: O(C*R).
//
// Concurrency:
//
//   - None. The structure is single-writer by contract and performs no
//     internal locking; callers sharing a Matrix across goroutines must
//     provide their own mutual exclusion.
//
// Errors:
//
//   - ErrOutOfRange: any negative or oversized index or coordinate, a
//     size with exactly one zero dimension, or a zero-length literal row.
//     Failed operations leave the matrix unchanged.
package elmat
