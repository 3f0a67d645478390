// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense buffer, the row-reduction
// engine and the arithmetic kernels. Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Arithmetic and rendering accept this interface; the reduction engine
// works on *Dense directly because it mutates rows in place.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf for non-finite v.
	Set(i, j int, v float64) error

	// Augmented reports whether the last column is a right-hand-side column.
	// The flag affects display, Add compatibility and Mul eligibility only.
	Augmented() bool

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Form selects how far Reduce takes a matrix.
type Form int

const (
	// FormREF stops after forward elimination (row-echelon form).
	FormREF Form = iota
	// FormRREF additionally clears entries above every pivot.
	FormRREF
)

// String returns the conventional abbreviation of the form.
func (f Form) String() string {
	if f == FormRREF {
		return "RREF"
	}

	return "REF"
}

// PivotState is the bookkeeping of one forward-elimination run.
//   - Count is the number of pivot rows placed so far; it never decreases.
//   - Columns[k] is the pivot column of row k, for k < Count.
type PivotState struct {
	Count   int
	Columns []int
}
