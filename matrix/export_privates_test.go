// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose unexported helpers to matrix_test ONLY; this file is compiled
//     with the package's tests and never into production builds.

var (
	// ExportedCheckShape exposes the allocation guard.
	ExportedCheckShape = checkShape
	// ExportedLeadingOne exposes the pivot detection of back-substitution.
	ExportedLeadingOne = leadingOne
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
)

// IsPivot_TestOnly reports whether v qualifies as a pivot under opts.
func IsPivot_TestOnly(v float64, opts ...Option) bool {
	return gatherOptions(opts...).isPivot(v)
}
