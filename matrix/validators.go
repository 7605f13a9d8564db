// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape, nil and index checks.
//  - Keep handle methods minimal by delegating guards here.
//  - Return plain sentinel errors (or validator-tagged wraps) so call sites
//    can wrap uniformly with their own context.
//
// Note:
//  - All checks are pure and allocate nothing on the success path.
//  - A nil *Matrix behaves like the degenerate 0×0 matrix for shape queries;
//    only operand validators reject it with ErrNilMatrix.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape ensures both extents of a storage-backed shape are positive
// and that rows*cols fits in an int.
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return ErrInvalidDimensions
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// hasSameDimensions reports whether a and b have identical shapes.
// Two degenerate matrices match; a degenerate matrix never matches a bound one.
func hasSameDimensions(a, b *Matrix) bool {
	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Used by AddAssign/SubAssign.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil, both bound, and
// a.Cols() == b.Rows(). A degenerate operand never multiplies.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if !a.bound() || !b.bound() {
		return validatorErrorf("ValidateMulCompatible: degenerate", ErrDimensionMismatch)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
