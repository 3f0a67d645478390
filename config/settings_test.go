// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/matrix"
)

func TestDefaults(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "INFO", s.LogLevel)
	assert.Equal(t, matrix.DefaultPivotEpsilon, s.PivotEpsilon)
	assert.False(t, s.ExactPivot)
	assert.True(t, s.Trace)
	assert.True(t, s.AugmentedReduce)
	assert.False(t, s.RandomFill)
	assert.Equal(t, DefaultPrompt, s.Prompt)
	require.NoError(t, s.Resolve())
}

func TestParseSettings(t *testing.T) {
	s, err := ParseSettings(`
[echelon]
logLevel = "debug"
randomFill = true
seed = 42
pivotEpsilon = 0.001
exactPivot = true
trace = false
`)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.RandomFill)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, 0.001, s.PivotEpsilon)
	assert.True(t, s.ExactPivot)
	assert.False(t, s.Trace)

	// Untouched keys keep their defaults.
	assert.True(t, s.AugmentedReduce)
	assert.Equal(t, DefaultPrompt, s.Prompt)
}

func TestParseSettingsEmpty(t *testing.T) {
	s, err := ParseSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), *s)
}

func TestParseSettingsInvalidEpsilon(t *testing.T) {
	for _, doc := range []string{
		"[echelon]\npivotEpsilon = 0.0",
		"[echelon]\npivotEpsilon = 1.5",
		"[echelon]\npivotEpsilon = -0.1",
	} {
		_, err := ParseSettings(doc)
		require.Error(t, err, doc)
		assert.Contains(t, err.Error(), "pivotEpsilon")
	}
}

func TestParseSettingsBadTOML(t *testing.T) {
	_, err := ParseSettings("[echelon\nseed = ")
	require.Error(t, err)

	_, err = ParseSettings("[echelon]\nseed = \"many\"")
	require.Error(t, err)
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "echelon.conf")
	require.NoError(t, os.WriteFile(path, []byte("[echelon]\nseed = 7\n"), 0o600))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.Seed)

	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.conf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read settings")
}

func TestReducerOptions(t *testing.T) {
	s := DefaultSettings()
	s.PivotEpsilon = 0.05
	o := matrix.NewMatrixOptions(s.ReducerOptions(nil)...)
	assert.Equal(t, 0.05, o.Epsilon())
	assert.False(t, o.Exact())

	s.ExactPivot = true
	o = matrix.NewMatrixOptions(s.ReducerOptions(nil)...)
	assert.True(t, o.Exact())
}

func TestReducerOptionsTracer(t *testing.T) {
	rec := &matrix.Recorder{}
	m, err := matrix.NewDenseFrom(1, 1, []float64{2})
	require.NoError(t, err)

	s := DefaultSettings()
	_, err = matrix.NewReducer(s.ReducerOptions(rec)...).Reduce(m, matrix.FormREF)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1 -> r1 * 0.50"}, rec.Lines())

	// Trace off: the tracer is not installed.
	rec.Ops = nil
	s.Trace = false
	m, err = matrix.NewDenseFrom(1, 1, []float64{2})
	require.NoError(t, err)
	_, err = matrix.NewReducer(s.ReducerOptions(rec)...).Reduce(m, matrix.FormREF)
	require.NoError(t, err)
	assert.Empty(t, rec.Ops)
}

func TestIntSource(t *testing.T) {
	s := DefaultSettings()
	assert.IsType(t, matrix.CryptoSource{}, s.IntSource())

	s.Seed = 3
	assert.IsType(t, &matrix.SeededSource{}, s.IntSource())
}
