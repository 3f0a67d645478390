// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Expose the three elementary row operations as a traced facade (RowOps).
//   - Keep the mutations themselves on *Dense (SwapRows/ScaleRow/CombineRows);
//     RowOps only adds reporting, so the math stays free of side effects.
//
// Determinism:
//   - Each operation is reported exactly once, after it was applied and only
//     if it succeeded.

package matrix

// RowOps applies elementary row operations to one matrix and reports each of
// them to the configured Tracer.
type RowOps struct {
	m      *Dense
	tracer Tracer
}

// NewRowOps binds a RowOps to m. Only WithTracer is meaningful here; other
// options are accepted and ignored so callers can share one option slice.
// Errors: ErrNilMatrix.
func NewRowOps(m *Dense, opts ...Option) (*RowOps, error) {
	if m == nil {
		return nil, matrixErrorf(opRowOps, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	return &RowOps{m: m, tracer: o.tracer}, nil
}

// newRowOps is the engine-internal constructor; o is already finalized.
func newRowOps(m *Dense, o Options) *RowOps {
	return &RowOps{m: m, tracer: o.tracer}
}

// Matrix returns the matrix the operations act on.
func (ro *RowOps) Matrix() *Dense { return ro.m }

// Swap exchanges rows r1 and r2 and reports "r{r1+1} <-> r{r2+1}".
// r1 == r2 changes nothing but is still reported.
func (ro *RowOps) Swap(r1, r2 int) error {
	if err := ro.m.SwapRows(r1, r2); err != nil {
		return err
	}
	ro.tracer.Trace(Operation{Kind: OpSwap, Dst: r1, Src: r2}, ro.m)

	return nil
}

// Scale multiplies row r by k and reports "r{r+1} -> r{r+1} * {k}".
func (ro *RowOps) Scale(r int, k float64) error {
	if err := ro.m.ScaleRow(r, k); err != nil {
		return err
	}
	ro.tracer.Trace(Operation{Kind: OpScale, Dst: r, Src: r, Factor: k}, ro.m)

	return nil
}

// Combine adds k times row src to row dst and reports
// "r{dst+1} -> r{dst+1} + r{src+1} * {k}".
func (ro *RowOps) Combine(dst, src int, k float64) error {
	if err := ro.m.CombineRows(dst, src, k); err != nil {
		return err
	}
	ro.tracer.Trace(Operation{Kind: OpCombine, Dst: dst, Src: src, Factor: k}, ro.m)

	return nil
}

// normalize scales row r by 1/m[r][c] and stores exactly 1 at (r,c).
// x*(1/x) can land one ulp off 1; the stored 1 keeps the pivot invariant.
func (ro *RowOps) normalize(r, c int) error {
	m := ro.m
	k := 1 / m.data[r*m.c+c]
	if err := m.ScaleRow(r, k); err != nil {
		return err
	}
	m.data[r*m.c+c] = 1
	ro.tracer.Trace(Operation{Kind: OpScale, Dst: r, Src: r, Factor: k}, m)

	return nil
}

// eliminate adds -m[dst][c] times row src to row dst and stores exactly 0
// at (dst,c). Row src must hold 1 at column c.
func (ro *RowOps) eliminate(dst, src, c int) error {
	m := ro.m
	k := -m.data[dst*m.c+c]
	if err := m.CombineRows(dst, src, k); err != nil {
		return err
	}
	m.data[dst*m.c+c] = 0
	ro.tracer.Trace(Operation{Kind: OpCombine, Dst: dst, Src: src, Factor: k}, m)

	return nil
}
