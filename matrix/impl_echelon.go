// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row-reduction engine: forward elimination to row-echelon form (REF) and
//     back-substitution to reduced row-echelon form (RREF).
//
// Algorithm (Forward), per pivot column c, with row = number of pivots placed:
//  1. search rows row..r-1 for the first entry qualifying as a pivot
//     (|x| >= eps, or x != 0 under WithExactPivot);
//  2. none found: the column is skipped;
//  3. swap the found row up to `row` when needed;
//  4. scale the pivot row so the pivot is 1 (skipped if it already is);
//  5. clear every non-zero entry below the pivot with a row combination;
//  6. row++.
//
// Algorithm (Back), rows from the bottom up:
//  1. the pivot column of a row is the first listed column holding exactly 1;
//     a row without one is left alone;
//  2. every non-zero entry above that pivot is cleared with a row combination.
//
// Reduce skips the search of step 1: it already knows the pivot column of
// every pivot row from Forward. Under the tolerant policy a skipped column can
// grow to exactly 1 and would shadow the real pivot.
//
// Determinism:
//   - First-match pivot selection, fixed loop orders; the same input and
//     options always yield the same operations in the same order.
//
// Complexity:
//   - Forward: O(r*c) per column, O(r²*c) overall. Back: O(r²*c).

package matrix

// Reducer runs row reductions under one resolved option set.
// A Reducer holds no per-run state and may be reused across matrices.
type Reducer struct {
	opts Options
}

// NewReducer resolves opts over the defaults (tolerant pivoting, eps 0.01, no tracing).
func NewReducer(opts ...Option) *Reducer {
	return &Reducer{opts: gatherOptions(opts...)}
}

// Options returns the effective configuration.
func (r *Reducer) Options() Options { return r.opts }

// ValueColumns returns the columns that take part in pivoting: every column
// of a plain matrix, every column but the last of an augmented one.
func ValueColumns(m *Dense) []int {
	n := m.c
	if m.augmented {
		n--
	}
	cols := make([]int, n)
	for j := range cols {
		cols[j] = j
	}

	return cols
}

// Forward reduces m in place to row-echelon form over the given pivot columns.
// Implementation:
//   - Stage 1: ValidateColumns (strictly increasing, in range).
//   - Stage 2: eliminate column by column, accumulating the PivotState.
//
// Behavior highlights:
//   - Every placed pivot holds exactly 1 and every entry below it exactly 0.
//   - Columns without a qualifying entry are skipped; rank deficiency is not an error.
//
// Returns:
//   - PivotState with the number of pivots and their columns.
//
// Errors:
//   - ErrNilMatrix, ErrBadColumns; ErrNaNInf if a pivot is so small that its
//     reciprocal overflows (only reachable under WithExactPivot).
func (r *Reducer) Forward(m *Dense, columns []int) (PivotState, error) {
	if err := ValidateColumns(m, columns); err != nil {
		return PivotState{}, matrixErrorf(opForward, err)
	}
	ro := newRowOps(m, r.opts)
	st := PivotState{Columns: make([]int, 0, len(columns))}
	for _, c := range columns {
		placed, err := r.eliminateColumn(ro, c, st.Count)
		if err != nil {
			return st, matrixErrorf(opForward, err)
		}
		if placed {
			st.Columns = append(st.Columns, c)
			st.Count++
		}
	}

	return st, nil
}

// findPivot returns the first row in [from, rows) whose entry in column c
// qualifies as a pivot, or -1.
func (r *Reducer) findPivot(m *Dense, c, from int) int {
	for i := from; i < m.r; i++ {
		if r.opts.isPivot(m.data[i*m.c+c]) {
			return i
		}
	}

	return -1
}

// eliminateColumn places the pivot of column c in row `row` and clears below it.
// It reports whether a pivot was placed.
func (r *Reducer) eliminateColumn(ro *RowOps, c, row int) (bool, error) {
	m := ro.m
	p := r.findPivot(m, c, row)
	if p < 0 {
		return false, nil
	}
	if p != row {
		if err := ro.Swap(row, p); err != nil {
			return false, err
		}
	}
	if m.data[row*m.c+c] != 1 {
		if err := ro.normalize(row, c); err != nil {
			return false, err
		}
	}
	for i := row + 1; i < m.r; i++ {
		if m.data[i*m.c+c] != 0 {
			if err := ro.eliminate(i, row, c); err != nil {
				return false, err
			}
		}
	}

	return true, nil
}

// Back turns a row-echelon matrix into reduced row-echelon form in place.
// Precondition (not checked): m is in REF over columns with pivots equal to 1,
// as left by Forward.
// Implementation:
//   - Stage 1: ValidateColumns.
//   - Stage 2: walk rows bottom-up; locate each row's pivot among columns and
//     clear the entries above it.
//
// Behavior highlights:
//   - Rows without a pivot are no-ops.
//   - Idempotent: on an RREF matrix no operation is performed.
//
// Errors:
//   - ErrNilMatrix, ErrBadColumns.
func (r *Reducer) Back(m *Dense, columns []int) error {
	if err := ValidateColumns(m, columns); err != nil {
		return matrixErrorf(opBack, err)
	}
	ro := newRowOps(m, r.opts)
	for i := m.r - 1; i > 0; i-- {
		pc := leadingOne(m, i, columns)
		if pc < 0 {
			continue
		}
		if err := clearAbove(ro, i, pc); err != nil {
			return matrixErrorf(opBack, err)
		}
	}

	return nil
}

// backWithPivots is Back with known pivots: row k holds its pivot at
// st.Columns[k]. Rows from st.Count onward have no pivot and are skipped.
func (r *Reducer) backWithPivots(m *Dense, st PivotState) error {
	ro := newRowOps(m, r.opts)
	for k := st.Count - 1; k > 0; k-- {
		if err := clearAbove(ro, k, st.Columns[k]); err != nil {
			return matrixErrorf(opBack, err)
		}
	}

	return nil
}

// clearAbove eliminates every non-zero entry of column c above row i, bottom up.
func clearAbove(ro *RowOps, i, c int) error {
	m := ro.m
	for ii := i - 1; ii >= 0; ii-- {
		if m.data[ii*m.c+c] != 0 {
			if err := ro.eliminate(ii, i, c); err != nil {
				return err
			}
		}
	}

	return nil
}

// leadingOne returns the first column of cols where row i holds exactly 1, or -1.
func leadingOne(m *Dense, i int, cols []int) int {
	base := i * m.c
	for _, j := range cols {
		if m.data[base+j] == 1 {
			return j
		}
	}

	return -1
}

// Reduce runs Forward over ValueColumns(m) and, for FormRREF, back-substitution
// on the pivots Forward placed. m is modified in place.
func (r *Reducer) Reduce(m *Dense, form Form) (PivotState, error) {
	if m == nil {
		return PivotState{}, matrixErrorf(opReduce, ErrNilMatrix)
	}
	cols := ValueColumns(m)
	st, err := r.Forward(m, cols)
	if err != nil {
		return st, matrixErrorf(opReduce, err)
	}
	if form == FormRREF {
		if err = r.backWithPivots(m, st); err != nil {
			return st, matrixErrorf(opReduce, err)
		}
	}

	return st, nil
}
