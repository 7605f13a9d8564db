// SPDX-License-Identifier: MIT

// Package matrix - compound arithmetic and equality on *Matrix.
//
// Purpose:
//   - AddAssign/SubAssign: elementwise in place, after detach.
//   - MulAssign: standard product computed into fresh storage, then rebound.
//   - Equal: identity fast path, then shape, then bitwise element compare.
//
// Contracts:
//   - Validation (nil, shape, numeric policy) runs before any mutation, so a
//     failing call leaves both operands untouched.
//   - The right operand is never written, even when it shares storage with
//     the receiver or is the receiver itself.
//
// Determinism:
//   - Fixed loop orders (flat 0..n-1 for elementwise; i→k→j for the product).

package matrix

import (
	"fmt"
	"math"
)

// Operation tags used in error wrapping (stable, grep-friendly).
const (
	opAddAssign = "AddAssign"
	opSubAssign = "SubAssign"
	opMulAssign = "MulAssign"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
)

// AddAssign adds o to m elementwise (m += o).
//
// Errors:
//   - ErrNilMatrix if o is nil.
//   - ErrDimensionMismatch unless the shapes are identical. Two degenerate
//     matrices match (the result is degenerate); degenerate never matches bound.
//   - ErrNaNInf if a sum is not finite under m's WithFiniteOnly policy.
//
// Complexity: Time O(r*c), plus O(r*c) to detach shared storage.
func (m *Matrix) AddAssign(o *Matrix) error { return m.addSub(o, +1, opAddAssign) }

// SubAssign subtracts o from m elementwise (m -= o). Same contract as AddAssign.
func (m *Matrix) SubAssign(o *Matrix) error { return m.addSub(o, -1, opSubAssign) }

// addSub computes m = m + sign*o for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateSameShape(m, o).
//   - Stage 2: under finite-only policy, dry-run the results before touching m.
//   - Stage 3: detach m, then one flat loop over the row-major buffers.
func (m *Matrix) addSub(o *Matrix, sign float64, opTag string) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opTag, err)
	}
	if !m.bound() {
		return nil // 0×0 op 0×0
	}

	src := o.blk.data
	if m.blk.finiteOnly {
		cur := m.blk.data
		for i := range cur {
			if isNonFinite(cur[i] + sign*src[i]) {
				return matrixErrorf(opTag, fmt.Errorf("element %d: %w", i, ErrNaNInf))
			}
		}
	}

	// src may be the block m is about to leave; it keeps its other shares.
	m.detach()
	dst := m.blk.data
	for i := range dst {
		dst[i] += sign * src[i]
	}

	return nil
}

// MulAssign replaces m with the matrix product m × o.
//
// The product is accumulated into a newly allocated block and m is then
// rebound to it, so m.MulAssign(m) and operands sharing storage are safe.
// The shape of m changes to m.Rows() × o.Cols().
//
// Errors:
//   - ErrNilMatrix if o is nil.
//   - ErrDimensionMismatch unless m.Cols() == o.Rows(), and whenever either
//     operand is degenerate (0×0 times 0×0 included).
//   - ErrNaNInf for a non-finite product cell under m's WithFiniteOnly policy.
//
// Complexity: Time O(r*n*c), Space O(r*c) for the result.
func (m *Matrix) MulAssign(o *Matrix) error {
	if err := ValidateMulCompatible(m, o); err != nil {
		return matrixErrorf(opMulAssign, err)
	}

	res := mulBlocks(m.blk, o.blk)
	if res.finiteOnly {
		for i, v := range res.data {
			if isNonFinite(v) {
				return matrixErrorf(opMulAssign, fmt.Errorf("element (%d,%d): %w", i/res.cols, i%res.cols, ErrNaNInf))
			}
		}
	}

	out := &Matrix{blk: res}
	m.Assign(out)
	out.Release()

	return nil
}

// mulBlocks returns a × b in a new block carrying a's numeric policy.
// Row-major i→k→j accumulation; for each (i,j) the k terms are summed in
// ascending k, the same order as a textbook dot product.
func mulBlocks(a, b *block) *block {
	res := newBlock(a.rows, b.cols, a.finiteOnly)

	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 float64
	)
	for i = 0; i < a.rows; i++ {
		rowOffsetA = i * a.cols
		rowOffsetR = i * b.cols
		for k = 0; k < a.cols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * b.cols
			for j = 0; j < b.cols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res
}

// Equal reports whether m and o have the same shape and identical elements.
//
// Behavior highlights:
//   - Handles sharing one block are equal without looking at the data.
//   - Two degenerate matrices are equal; nil counts as degenerate.
//   - Elements are compared bit for bit, so a shared NaN equals itself and
//     +0 differs from -0.
//
// Complexity: O(1) for shared storage or differing shapes, else O(r*c).
func (m *Matrix) Equal(o *Matrix) bool {
	if !hasSameDimensions(m, o) {
		return false
	}
	if !m.bound() {
		return true
	}
	if m.blk == o.blk {
		return true
	}
	a, b := m.blk.data, o.blk.data
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}

	return true
}
