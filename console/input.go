// SPDX-License-Identifier: MIT

package console

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/echelon/matrix"
)

// User-facing input messages.
const (
	promptDims   = "Enter row and column: "
	promptValues = "Enter values:\n"
	promptBound  = "Enter upper bound for random values: "

	msgBadNumber = "Not a number: %q\n"
	msgBadDims   = "Row and column must be positive integers.\n"
	msgTooLarge  = "Matrix is too large.\n"
	msgBadValue  = "Invalid value %q, enter it again: "
	msgBadBound  = "Upper bound must be a positive integer.\n"
)

// tokens splits the input into whitespace-separated words, so values may be
// spread over lines freely.
type tokens struct {
	sc *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

// next returns the next word, io.EOF at the end of input, or the read error.
func (t *tokens) next() (string, error) {
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	return "", io.EOF
}

// readInt reads words until one parses as an int. Malformed words are reported
// and skipped.
func (s *Session) readInt() (int, error) {
	for {
		tok, err := s.in.next()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(s.out, msgBadNumber, tok)
	}
}

// readDimensions asks for "rows cols" until both are usable for allocation.
// Non-positive or oversized dimensions are reported and asked again.
func (s *Session) readDimensions(augmented bool) (*matrix.Dense, error) {
	for {
		s.promptf(promptDims)
		rows, err := s.readInt()
		if err != nil {
			return nil, err
		}
		cols, err := s.readInt()
		if err != nil {
			return nil, err
		}
		var m *matrix.Dense
		if augmented {
			m, err = matrix.NewAugmented(rows, cols)
		} else {
			m, err = matrix.NewDense(rows, cols)
		}
		switch {
		case err == nil:
			return m, nil
		case errors.Is(err, matrix.ErrInvalidDimensions):
			fmt.Fprint(s.out, msgBadDims)
		case errors.Is(err, matrix.ErrOutOfMemory):
			fmt.Fprint(s.out, msgTooLarge)
		default:
			return nil, errors.WithStack(err)
		}
		s.log.WithFields(log.Fields{"rows": rows, "cols": cols}).WithError(err).Debug("dimensions rejected")
	}
}

// readValues fills m row-major from the input. A word that is not a finite
// number is reported and the same cell is asked again.
func (s *Session) readValues(m *matrix.Dense) error {
	s.promptf(promptValues)
	rows, cols := m.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			for {
				tok, err := s.in.next()
				if err != nil {
					return err
				}
				v, err := strconv.ParseFloat(tok, 64)
				if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
					if err = m.Set(i, j, v); err != nil {
						return errors.WithStack(err)
					}
					break
				}
				fmt.Fprintf(s.out, msgBadValue, tok)
			}
		}
	}
	s.promptf("\n")

	return nil
}

// readBound asks for a positive random-fill bound.
func (s *Session) readBound() (int, error) {
	for {
		s.promptf(promptBound)
		n, err := s.readInt()
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return n, nil
		}
		fmt.Fprint(s.out, msgBadBound)
	}
}

// createMatrix reads dimensions and then either values or a random bound,
// depending on the session's random-fill toggle.
func (s *Session) createMatrix(augmented bool) (*matrix.Dense, error) {
	m, err := s.readDimensions(augmented)
	if err != nil {
		return nil, err
	}
	if !s.random {
		if err = s.readValues(m); err != nil {
			return nil, err
		}
		return m, nil
	}
	upTo, err := s.readBound()
	if err != nil {
		return nil, err
	}
	if err = matrix.RandomFill(m, upTo, s.src); err != nil {
		return nil, errors.Wrap(err, "random fill")
	}
	s.print(m)

	return m, nil
}
