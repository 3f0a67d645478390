// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set and row operations return errors instead of panicking.
//   - Carry the augmented flag next to the buffer so display and arithmetic can honor it.
//   - Enforce a numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot loops: operate on the flat data slice directly.
//   - The engine (impl_echelon.go) mutates the buffer in place; Clone first if the input must survive.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); row operations: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// MaxElements bounds rows*cols for a single Dense allocation (128M cells, 1 GiB).
// Larger requests fail with ErrOutOfMemory rather than crashing the runtime.
const MaxElements = 1 << 27

// ---------- error context tags ----------

const (
	ctxAt      = "At"          // method tag used in error wrappers
	ctxSet     = "Set"         // method tag used in error wrappers
	ctxSwap    = "SwapRows"    // method tag used in error wrappers
	ctxScale   = "ScaleRow"    // method tag used in error wrappers
	ctxCombine = "CombineRows" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtAugSep   = " | "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/ctxSwap/...)
//   - row, col: coordinates (for row operations: the two row indices)
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - augmented marks the last column as a right-hand-side column.
type Dense struct {
	r, c      int       // row and column counts
	data      []float64 // contiguous row-major storage (len == r*c)
	augmented bool      // display/eligibility flag only
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// checkShape validates a requested shape before any allocation happens.
// ErrInvalidDimensions for non-positive sizes; ErrOutOfMemory when rows*cols
// overflows int or exceeds MaxElements.
func checkShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if rows > MaxElements/cols {
		return ErrOutOfMemory
	}

	return nil
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and the allocation bound.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - The result is not augmented; see NewAugmented.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//   - ErrOutOfMemory (rows*cols beyond MaxElements).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	// make() zero-fills the buffer deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewAugmented creates an r×c zero matrix whose last column is displayed as
// a right-hand side and excluded from pivoting by ValueColumns.
func NewAugmented(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.augmented = true

	return m, nil
}

// NewDenseFrom builds an r×c matrix from a row-major slice.
// The slice is copied; len(vals) must equal rows*cols (else ErrShapeMismatch)
// and every value must be finite (else ErrNaNInf).
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, vals []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) != rows*cols {
		return nil, ErrShapeMismatch
	}
	for idx, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, denseErrorf(ctxSet, idx/cols, idx%cols, ErrNaNInf)
		}
	}
	copy(m.data, vals)

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Augmented reports whether the last column is a right-hand-side column.
func (m *Dense) Augmented() bool { return m.augmented }

// SetAugmented switches the augmented flag; the data is untouched.
func (m *Dense) SetAugmented(on bool) { m.augmented = on }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange wrapped with Dense.At(row,col) context.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange for bad indices, ErrNaNInf for non-finite v.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix, augmented flag included.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, augmented: m.augmented}
}

// checkRow validates a row index for the row operations below.
func (m *Dense) checkRow(method string, r1, r2 int) error {
	if r1 < 0 || r1 >= m.r || r2 < 0 || r2 >= m.r {
		return denseErrorf(method, r1, r2, ErrOutOfRange)
	}

	return nil
}

// SwapRows exchanges all entries of rows r1 and r2 in place.
// r1 == r2 is a legal no-op.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) SwapRows(r1, r2 int) error {
	if err := m.checkRow(ctxSwap, r1, r2); err != nil {
		return err
	}
	if r1 == r2 {
		return nil
	}
	a, b := r1*m.c, r2*m.c
	for j := 0; j < m.c; j++ {
		m.data[a+j], m.data[b+j] = m.data[b+j], m.data[a+j]
	}

	return nil
}

// ScaleRow multiplies every entry of row r by k in place.
// k == 0 is accepted (destructive but legal); non-finite k is ErrNaNInf.
// Complexity: O(c).
func (m *Dense) ScaleRow(r int, k float64) error {
	if err := m.checkRow(ctxScale, r, r); err != nil {
		return err
	}
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return denseErrorf(ctxScale, r, r, ErrNaNInf)
	}
	base := r * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] *= k
	}

	return nil
}

// CombineRows performs row_dst += k * row_src element-wise, in place.
// Each column reads the source entry from the current buffer, so dst == src
// yields row*(1+k).
// Errors: ErrOutOfRange, ErrNaNInf (non-finite k).
// Complexity: O(c).
func (m *Dense) CombineRows(dst, src int, k float64) error {
	if err := m.checkRow(ctxCombine, dst, src); err != nil {
		return err
	}
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return denseErrorf(ctxCombine, dst, src, ErrNaNInf)
	}
	d, s := dst*m.c, src*m.c
	for j := 0; j < m.c; j++ {
		m.data[d+j] += k * m.data[s+j]
	}

	return nil
}

// positiveZero maps -0 to 0 so rendered matrices never show "-0".
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}

// String implements fmt.Stringer for debugging: one bracketed row per line,
// values in %g, and a bar before the last column when augmented.
// Use Format for the fixed-width console rendering.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				if m.augmented && j == m.c-1 {
					sb.WriteString(_fmtAugSep)
				} else {
					sb.WriteString(_fmtSep)
				}
			}
			sb.WriteString(fmt.Sprintf("%g", positiveZero(m.data[i*m.c+j])))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
