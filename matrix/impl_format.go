// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CellFormat is the fixed-width layout of one rendered value.
const CellFormat = "%8.2f"

// Fprint renders m to w: one line per row, every value as CellFormat, a " | "
// before the last column of an augmented matrix, and an empty line after the
// last row. Negative zero is printed as zero.
//
//	    1.00    2.00 |     3.00
//	    0.00    1.00 |    -1.00
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFormat, err)
	}
	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if m.Augmented() && j == cols-1 {
				bw.WriteString(_fmtAugSep)
			}
			v, err := m.At(i, j)
			if err != nil {
				return matrixErrorf(opFormat, err)
			}
			fmt.Fprintf(bw, CellFormat, positiveZero(v))
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// Format returns the Fprint rendering of m as a string.
func Format(m Matrix) (string, error) {
	var sb strings.Builder
	if err := Fprint(&sb, m); err != nil {
		return "", err
	}

	return sb.String(), nil
}
