// SPDX-License-Identifier: MIT
// Package matrix - public binary operators.
//
// Purpose:
//   - Provide value-returning a+b, a−b, a×b on top of the compound operators.
//   - Each operator copies the left operand (O(1), shared storage) and applies
//     the compound operator to the copy, so neither operand is ever mutated.
//
// Determinism & Policy:
//   - Loop orders and numeric policy are those of the compound operators.
//   - The result inherits the left operand's numeric policy.

package matrix

// Add returns a + b. Shapes must be identical.
// Complexity: O(rc).
func Add(a, b *Matrix) (*Matrix, error) { return binary(a, b, (*Matrix).AddAssign, opAdd) }

// Sub returns a − b. Shapes must be identical.
// Complexity: O(rc).
func Sub(a, b *Matrix) (*Matrix, error) { return binary(a, b, (*Matrix).SubAssign, opSub) }

// Mul returns the matrix product a × b. Requires a.Cols() == b.Rows().
// Complexity: O(r*n*c).
func Mul(a, b *Matrix) (*Matrix, error) { return binary(a, b, (*Matrix).MulAssign, opMul) }

// binary copies a, applies op(copy, b) and returns the copy.
// On failure the copy is released, so a's share count is unchanged.
func binary(a, b *Matrix, op func(*Matrix, *Matrix) error, opTag string) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := a.Copy()
	if err := op(res, b); err != nil {
		res.Release()
		return nil, matrixErrorf(opTag, err)
	}

	return res, nil
}
