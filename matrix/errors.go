// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. No kernel panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(tag, ErrX) so the
// rendered message reads "Add: matrix: shape mismatch"; callers still match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> augmented operand -> shape -> index/columns -> NaN/Inf.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// The console treats it as recoverable and asks for the dimensions again.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfMemory is returned when rows*cols overflows or exceeds MaxElements.
	// It replaces proceeding with an unusable buffer.
	ErrOutOfMemory = errors.New("matrix: allocation too large")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) and row operations return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates incompatible operands: Add with different
	// rows/cols/augmented flag, or Mul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrAugmentedOperand signals a multiplication attempted on an augmented matrix.
	ErrAugmentedOperand = errors.New("matrix: augmented operand not allowed")

	// ErrBadColumns signals a pivot column sequence that is not strictly
	// increasing or references a column outside the matrix.
	ErrBadColumns = errors.New("matrix: invalid pivot columns")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (Set, row scaling factors, ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadBound is returned by RandomFill when the exclusive upper bound is <= 0.
	ErrBadBound = errors.New("matrix: random bound must be > 0")
)
