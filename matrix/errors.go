// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns these sentinels (wrapped with call-site
// context) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// All domain sentinels wrap ErrMatrix, which makes
// errors.Is(err, ErrMatrix) true for any failure raised by this package.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> index -> dimension mismatch -> numeric policy.

// ErrMatrix is the root of the taxonomy. It is never returned bare.
var ErrMatrix = errors.New("matrix")

var (
	// ErrInvalidDimensions is returned by constructors when a requested shape
	// has a zero or negative extent (0×0 through New is the degenerate matrix,
	// not an error).
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrMatrix)

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// AddAssign/SubAssign need identical shapes, MulAssign needs a.Cols == b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrMatrix)

	// ErrOutOfRange indicates that a row or column index is outside [0, extent),
	// or that any element of a degenerate 0×0 matrix was accessed.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrMatrix)

	// ErrNaNInf signals a NaN or ±Inf value was written into a matrix created
	// with WithFiniteOnly.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrMatrix)

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrMatrix)
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange

// matrixErrorf wraps an underlying error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// handleErrorf wraps an error with a uniform Matrix context and callsite indices.
func handleErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
