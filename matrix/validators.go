// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/flag/column checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Augmented → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil, including a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAddCompatible – Ensures a and b have equal rows, cols and augmented flag.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateAddCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateAddCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateAddCompatible", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() || a.Augmented() != b.Augmented() {
		return validatorErrorf("ValidateAddCompatible", ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible – Ensures neither operand is augmented and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrAugmentedOperand, ErrShapeMismatch (in that priority).
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Augmented() || b.Augmented() {
		return validatorErrorf("ValidateMulCompatible", ErrAugmentedOperand)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrShapeMismatch)
	}

	return nil
}

// ValidateColumns – Ensures cols is strictly increasing and every index is in [0, m.Cols()).
// An empty sequence is valid (nothing to process).
//
// Errors: ErrNilMatrix, ErrBadColumns.
// Complexity: O(len(cols)).
func ValidateColumns(m *Dense, cols []int) error {
	if m == nil {
		return validatorErrorf("ValidateColumns", ErrNilMatrix)
	}
	prev := -1
	for _, c := range cols {
		if c <= prev || c >= m.c {
			return validatorErrorf("ValidateColumns", fmt.Errorf("column %d: %w", c, ErrBadColumns))
		}
		prev = c
	}

	return nil
}
