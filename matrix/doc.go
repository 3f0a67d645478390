// Package matrix offers a dense row-major float64 matrix and the row-reduction
// engine built on it.
//
// The matrix package provides:
//
//   - Dense, a flat row-major buffer with an "augmented" flag marking the last
//     column as a right-hand side.
//   - The elementary row operations (swap, scale, combine) on Dense, plus the
//     traced facade RowOps that reports each applied operation to a Tracer.
//   - Reducer: forward elimination to row-echelon form (Forward) and
//     back-substitution to reduced row-echelon form (Back).
//   - Add and Mul with strict shape and augmented-flag checks.
//   - Fixed-width rendering (Fprint/Format) and random integer filling.
//
// The engine is single-threaded and mutates the matrix it is given; Clone
// first when the original must be kept.
//
// See the examples in this package for usage patterns.
package matrix
