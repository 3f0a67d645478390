// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// OpKind enumerates the three elementary row operations.
type OpKind int

const (
	OpSwap    OpKind = iota // r_a <-> r_b
	OpScale                 // r_a -> r_a * k
	OpCombine               // r_a -> r_a + r_b * k
)

// Operation describes one elementary row operation with 0-based rows.
// Src is unused by OpScale; Factor is unused by OpSwap.
type Operation struct {
	Kind   OpKind
	Dst    int
	Src    int
	Factor float64
}

// String renders the operation with 1-based row numbers and a two-decimal factor,
// e.g. "r1 <-> r3", "r2 -> r2 * 0.50", "r3 -> r3 + r1 * -2.00".
func (op Operation) String() string {
	switch op.Kind {
	case OpSwap:
		return fmt.Sprintf("r%d <-> r%d", op.Dst+1, op.Src+1)
	case OpScale:
		return fmt.Sprintf("r%d -> r%d * %.2f", op.Dst+1, op.Dst+1, op.Factor)
	case OpCombine:
		return fmt.Sprintf("r%d -> r%d + r%d * %.2f", op.Dst+1, op.Dst+1, op.Src+1, op.Factor)
	}

	return fmt.Sprintf("op(%d)", int(op.Kind))
}

// Tracer observes elementary operations after they were applied to m.
// Implementations must not mutate m.
type Tracer interface {
	Trace(op Operation, m *Dense)
}

// TracerFunc adapts a plain function to Tracer.
type TracerFunc func(op Operation, m *Dense)

// Trace calls f(op, m).
func (f TracerFunc) Trace(op Operation, m *Dense) { f(op, m) }

// NopTracer discards every operation.
type NopTracer struct{}

// Trace does nothing.
func (NopTracer) Trace(Operation, *Dense) {}

// Recorder keeps every traced operation in order. Useful to assert a full
// elimination trace or to replay it.
type Recorder struct {
	Ops []Operation
}

// Trace appends op.
func (r *Recorder) Trace(op Operation, _ *Dense) { r.Ops = append(r.Ops, op) }

// Lines returns the String form of every recorded operation.
func (r *Recorder) Lines() []string {
	out := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		out[i] = op.String()
	}

	return out
}
