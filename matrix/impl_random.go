// SPDX-License-Identifier: MIT

package matrix

import (
	"math/rand"

	"github.com/jmcvetta/randutil"
)

// IntSource draws uniform integers in [0, n) for n > 0.
type IntSource interface {
	Intn(n int) (int, error)
}

// SeededSource is a reproducible IntSource backed by math/rand.
// Not safe for concurrent use.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a SeededSource; equal seeds yield equal sequences.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a draw in [0, n).
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrBadBound
	}

	return s.rng.Intn(n), nil
}

// CryptoSource draws from crypto/rand through randutil. Used when the user
// configured no seed.
type CryptoSource struct{}

// Intn returns a draw in [0, n).
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrBadBound
	}

	return randutil.IntRange(0, n)
}

// RandomFill overwrites every cell of m with an integer drawn from src in
// [0, upTo), row by row.
// Errors: ErrNilMatrix, ErrBadBound, or the source's own error.
// Complexity: O(r*c) draws.
func RandomFill(m *Dense, upTo int, src IntSource) error {
	if m == nil || src == nil {
		return matrixErrorf(opFill, ErrNilMatrix)
	}
	if upTo <= 0 {
		return matrixErrorf(opFill, ErrBadBound)
	}
	for idx := range m.data {
		v, err := src.Intn(upTo)
		if err != nil {
			return matrixErrorf(opFill, err)
		}
		m.data[idx] = float64(v)
	}

	return nil
}
