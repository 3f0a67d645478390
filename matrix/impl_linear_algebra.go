// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels of the tool: element-wise
// addition and matrix multiplication. Both perform strict fail-fast
// validation and return no partial result on error.
//
// Purpose:
//   - Define operation tags and shared constants for determinism and error reporting.
//   - Implement Add/Mul over the Matrix interface with a *Dense fast-path.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd     = "Add"
	opMul     = "Mul"
	opRowOps  = "RowOps"
	opForward = "Forward"
	opBack    = "Back"
	opReduce  = "Reduce"
	opFill    = "RandomFill"
	opFormat  = "Format"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: ValidateAddCompatible(a, b): same rows, cols and augmented flag.
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Returns:
//   - *Dense with the operands' shape and augmented flag; operands are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (also for differing augmented flags).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateAddCompatible(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res.augmented = a.Augmented()

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			res.data[i*cols+j] = av + bv
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b): neither augmented, a.Cols == b.Rows.
//   - Stage 2: for each output cell (i,j), sum a[i][z]*b[z][j] for z = 0..n-1
//     left to right. The *Dense fast-path indexes the flat buffers directly.
//
// Returns:
//   - *Dense of shape a.Rows() × b.Cols(), not augmented.
//
// Errors:
//   - ErrNilMatrix, ErrAugmentedOperand, ErrShapeMismatch.
//
// Determinism:
//   - The summation order per cell is fixed (z ascending), so results are
//     bitwise reproducible and match the naive formula.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, z int
		sum     float64
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + z; db.data layout: z*bCols + j
			for i = 0; i < aRows; i++ {
				rowA := i * aCols
				for j = 0; j < bCols; j++ {
					sum = ZeroSum
					for z = 0; z < aCols; z++ {
						sum += da.data[rowA+z] * db.data[z*bCols+j]
					}
					res.data[i*bCols+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-z).
	var av, bv float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for z = 0; z < aCols; z++ {
				if av, err = a.At(i, z); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(z, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}
