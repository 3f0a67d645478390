// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)
}

func TestValidateAddCompatible(t *testing.T) {
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateAddCompatible(a, MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateAddCompatible(a, MustDense(t, 3, 2)), matrix.ErrShapeMismatch)
	require.ErrorIs(t, matrix.ValidateAddCompatible(nil, a), matrix.ErrNilMatrix)
}

// TestValidateMulCompatible_Priority pins nil → augmented → shape.
func TestValidateMulCompatible_Priority(t *testing.T) {
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateMulCompatible(a, MustDense(t, 3, 4)))

	aug, err := matrix.NewAugmented(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateMulCompatible(aug, a), matrix.ErrAugmentedOperand)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, aug), matrix.ErrAugmentedOperand)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, aug), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrShapeMismatch)
}

func TestValidateColumns(t *testing.T) {
	m := MustDense(t, 2, 4)
	require.NoError(t, matrix.ValidateColumns(m, nil))
	require.NoError(t, matrix.ValidateColumns(m, []int{0, 2, 3}))

	for _, cols := range [][]int{{1, 1}, {2, 1}, {-1, 0}, {4}} {
		require.ErrorIsf(t, matrix.ValidateColumns(m, cols), matrix.ErrBadColumns, "columns %v", cols)
	}
	require.ErrorIs(t, matrix.ValidateColumns(nil, []int{0}), matrix.ErrNilMatrix)
}
