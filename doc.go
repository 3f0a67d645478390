// Package echelon is an interactive dense-matrix calculator: it adds and
// multiplies matrices and reduces them to row-echelon (REF) or reduced
// row-echelon form (RREF), printing every elementary row operation on the way.
//
// The work is organized under three packages and one command:
//
//	matrix/      - Dense storage, Add/Mul, row operations, the REF/RREF engine, rendering
//	config/      - TOML settings (log level, pivot policy, random fill, tracing)
//	console/     - the command loop: menu, input parsing, output
//	cmd/echelon/ - the executable wiring flags, settings, logging and the terminal
//
// Quick example of a traced reduction of x + y = 3, x - y = 1:
//
//	r2 -> r2 + r1 * -1.00
//	r2 -> r2 * -0.50
//	r1 -> r1 + r2 * -1.00
//
//	    1.00    0.00 |     2.00
//	    0.00    1.00 |     1.00
//
//	go install github.com/katalvlaran/echelon/cmd/echelon@latest
package echelon
