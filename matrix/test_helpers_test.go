// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and the reduction engine.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths of Add/Mul/Fprint.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Prefer for small exact-equality tests.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// NewFilledAugmented is NewFilledDense with the augmented flag set.
func NewFilledAugmented(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m := NewFilledDense(t, r, c, vals)
	m.SetAugmented(true)

	return m
}

// RandIntDense RETURNS an r×c Dense with integer entries in [-k, k], by seed.
// Integer data keeps rank decisions away from the pivot tolerance.
func RandIntDense(t *testing.T, r, c, k int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = float64(rng.Intn(2*k+1) - k)
	}

	return NewFilledDense(t, r, c, vals)
}

// smallValues are picked by RandSmallDense: zeros, entries under the default
// pivot tolerance and a few ordinary magnitudes, all exact binary fractions.
var smallValues = []float64{0, 0, 1.0 / 128, -1.0 / 256, 1.0 / 16, -0.5, 1, -2, 3, 8}

// RandSmallDense RETURNS an r×c Dense drawn from smallValues, by seed.
func RandSmallDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = smallValues[rng.Intn(len(smallValues))]
	}

	return NewFilledDense(t, r, c, vals)
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts m equals want cell by cell, bitwise.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// CompareClose asserts m equals want cell by cell within atol.
func CompareClose(t *testing.T, want [][]float64, m matrix.Matrix, atol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], MustAt(t, m, i, j), atol, "cell (%d,%d)", i, j)
		}
	}
}

// RequireREF asserts the row-echelon invariants of st on m: pivot k sits in
// row k at st.Columns[k] with value exactly 1, and every entry below it is 0.
func RequireREF(t *testing.T, m *matrix.Dense, st matrix.PivotState) {
	t.Helper()
	require.Len(t, st.Columns, st.Count)
	for k, c := range st.Columns {
		require.Equalf(t, 1.0, MustAt(t, m, k, c), "pivot %d at column %d", k, c)
		for i := k + 1; i < m.Rows(); i++ {
			require.Equalf(t, 0.0, MustAt(t, m, i, c), "below pivot %d: row %d", k, i)
		}
		if k > 0 {
			require.Greater(t, c, st.Columns[k-1], "pivots must move right")
		}
	}
}

// RequireRREF additionally asserts zeros above every pivot.
func RequireRREF(t *testing.T, m *matrix.Dense, st matrix.PivotState) {
	t.Helper()
	RequireREF(t, m, st)
	for k, c := range st.Columns {
		for i := 0; i < k; i++ {
			require.Equalf(t, 0.0, MustAt(t, m, i, c), "above pivot %d: row %d", k, i)
		}
	}
}
