// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/matrix"
)

// TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultPivotEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultExactPivot, o.Exact())

	r := matrix.NewReducer()
	require.Equal(t, o.Epsilon(), r.Options().Epsilon())
	require.False(t, r.Options().Exact())
}

// TestWithEpsilon_Panics pins the stable panic message on invalid tolerances.
func TestWithEpsilon_Panics(t *testing.T) {
	for _, eps := range []float64{0, -0.1, 1, 2, math.NaN(), math.Inf(1)} {
		require.PanicsWithValuef(t, matrix.PanicEpsilonInvalid_TestOnly, func() {
			matrix.WithEpsilon(eps)
		}, "eps=%v", eps)
	}
}

// TestOptions_LastWriterWins checks the ordering semantics of option setters.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithExactPivot(), matrix.WithEpsilon(0.2))
	assert.False(t, o.Exact())
	assert.Equal(t, 0.2, o.Epsilon())

	o = matrix.NewMatrixOptions(matrix.WithEpsilon(0.2), matrix.WithExactPivot())
	assert.True(t, o.Exact())
}

// TestIsPivot covers both pivot policies at their boundaries.
func TestIsPivot(t *testing.T) {
	assert.True(t, matrix.IsPivot_TestOnly(0.01))
	assert.True(t, matrix.IsPivot_TestOnly(-0.01))
	assert.False(t, matrix.IsPivot_TestOnly(0.0099))
	assert.False(t, matrix.IsPivot_TestOnly(0))

	assert.True(t, matrix.IsPivot_TestOnly(1e-300, matrix.WithExactPivot()))
	assert.False(t, matrix.IsPivot_TestOnly(0, matrix.WithExactPivot()))
	assert.False(t, matrix.IsPivot_TestOnly(math.Copysign(0, -1), matrix.WithExactPivot()))

	assert.True(t, matrix.IsPivot_TestOnly(0.002, matrix.WithEpsilon(0.001)))
}

// TestWithTracerNil keeps a nil tracer harmless.
func TestWithTracerNil(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{2, 0, 0, 2})
	_, err := matrix.NewReducer(matrix.WithTracer(nil)).Reduce(m, matrix.FormRREF)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, m)
}
