// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the row-reduction engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Pivot policy: the tolerant search (|x| >= eps) is the default. The exact
//     search (x != 0) is kept selectable for reproducing legacy traces.
//   - Only the pivot SEARCH is tolerant. The "pivot already 1" check, the
//     "entry already 0" check during elimination and the pivot detection in
//     back-substitution compare exactly; the engine stores exact 1/0 in the
//     cells it normalizes so those comparisons stay meaningful.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotEpsilon is the smallest magnitude accepted as a pivot.
	DefaultPivotEpsilon = 0.01

	// DefaultExactPivot selects the legacy x != 0 pivot test when true.
	DefaultExactPivot = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite and in (0, 1)"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps    float64 // pivot tolerance, in (0,1); DefaultPivotEpsilon
	exact  bool    // DefaultExactPivot
	tracer Tracer  // nil-safe; NopTracer after finalizeOptions
}

// WithEpsilon sets the pivot tolerance used by the tolerant pivot search.
// Implementation:
//   - Stage 1: validate eps is finite and 0 < eps < 1.
//   - Stage 2: return a setter that writes eps and turns the tolerant search on.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - eps < 1 so an entry equal to 1 always qualifies as a pivot. An entry of
//     a skipped column may still reach exactly 1 later; Reduce therefore
//     back-substitutes on the pivot columns recorded by Forward.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 || eps >= 1 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.exact = false
	}
}

// WithExactPivot selects the legacy pivot search: the first entry that is
// not exactly zero becomes the pivot.
func WithExactPivot() Option {
	return func(o *Options) { o.exact = true }
}

// WithTracer routes the description of every elementary row operation to t.
// A nil t disables tracing.
func WithTracer(t Tracer) Option {
	return func(o *Options) { o.tracer = t }
}

// NewMatrixOptions resolves opts over the defaults. Exposed for callers that
// want to inspect the effective policy.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective pivot tolerance (ignored when Exact is true).
func (o Options) Epsilon() float64 { return o.eps }

// Exact reports whether the exact x != 0 pivot search is active.
func (o Options) Exact() bool { return o.exact }

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived invariants. Last writer wins.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:   DefaultPivotEpsilon,
		exact: DefaultExactPivot,
	}
	for _, set := range user {
		set(&o)
	}
	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
func finalizeOptions(o *Options) {
	if o.tracer == nil {
		o.tracer = NopTracer{}
	}
}

// isPivot reports whether v qualifies as a pivot under the policy.
func (o Options) isPivot(v float64) bool {
	if o.exact {
		return v != 0
	}

	return math.Abs(v) >= o.eps
}
