// SPDX-License-Identifier: MIT

// Package matrix - shared storage block.
//
// Purpose:
//   - Own the only heap buffer in the package: a row-major []float64 of
//     length rows*cols plus the number of handles currently bound to it.
//   - Keep the block unaware of its handles (no back-references).
//
// Invariants:
//   - rows > 0 and cols > 0 for every block that exists.
//   - len(data) == rows*cols.
//   - refs == number of live *Matrix handles bound to the block; the buffer
//     is dropped when refs reaches zero.
//
// The counter is a plain int. A block shared by several handles must not be
// touched from more than one goroutine at a time.

package matrix

import "math"

// block is the unit of sharing between Matrix handles.
type block struct {
	rows, cols int       // extents, both > 0
	data       []float64 // row-major storage (offset = i*cols + j)
	refs       int       // number of bound handles (>= 1 while reachable)
	finiteOnly bool      // numeric policy, inherited by clones
}

// newBlock allocates a zero-filled rows×cols block with refs == 1.
// Callers validate the shape first.
func newBlock(rows, cols int, finiteOnly bool) *block {
	return &block{
		rows:       rows,
		cols:       cols,
		data:       make([]float64, rows*cols),
		refs:       1,
		finiteOnly: finiteOnly,
	}
}

// clone returns a private copy of b with refs == 1. b is not modified.
// Complexity: O(rows*cols).
func (b *block) clone() *block {
	nb := newBlock(b.rows, b.cols, b.finiteOnly)
	copy(nb.data, b.data)

	return nb
}

// offset returns the row-major index of (row, col) or ErrOutOfRange.
func (b *block) offset(row, col int) (int, error) {
	if row < 0 || row >= b.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= b.cols {
		return 0, ErrOutOfRange
	}

	return row*b.cols + col, nil
}

// retain registers one more handle on b.
func (b *block) retain() { b.refs++ }

// release unregisters one handle. When the last handle goes away the buffer
// is dropped so the memory is reclaimable even if a stray pointer survives.
func (b *block) release() {
	b.refs--
	if b.refs == 0 {
		b.data = nil
	}
}

// shared reports whether more than one handle is bound to b.
func (b *block) shared() bool { return b.refs > 1 }

// checkValue enforces the block's numeric policy for a value about to be stored.
func (b *block) checkValue(v float64) error {
	if b.finiteOnly && isNonFinite(v) {
		return ErrNaNInf
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
