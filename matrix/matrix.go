// SPDX-License-Identifier: MIT

// Package matrix - copy-on-write handle over shared row-major storage.
//
// Purpose:
//   - Give *Matrix value semantics (Copy, Assign) while sharing one storage
//     block between handles until the first write.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Run every mutation through detach so a write is never observed by
//     another handle bound to the same block.
//
// Lifecycle:
//   - New/NewFilled/NewFromSlice/FromRows allocate a block (refs == 1).
//   - Copy shares the block (refs++); Assign is copy-and-swap; Release is the
//     destructor (refs--, handle becomes 0×0).
//   - A handle dropped without Release keeps its share counted; the only cost
//     is one extra clone on the next write through a sibling handle.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; Copy/Assign/Release: O(1); At: O(1);
//     Set: O(1), or O(r*c) when it has to detach.

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxNewFilled  = "NewFilled"
	ctxNewFromSl  = "NewFromSlice"
	ctxFromRows   = "FromRows"
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxRef        = "Ref"
	ctxRefSet     = "Ref.Set"
	ctxReadText   = "ReadText"
	ctxParse      = "Parse"
	ctxFromGonum  = "FromGonum"
	ctxWriteFile  = "WriteFile"
	ctxReadFile   = "ReadFile"
	ctxReadFileIn = "ReadFileInto"
)

// Matrix is a value-semantics handle to a two-dimensional float64 array.
//
// The zero value is the degenerate 0×0 matrix: it has no storage, reports
// Rows()==Cols()==0, and any element access fails with ErrOutOfRange.
// Copying the struct itself (m2 := *m) bypasses the share count; use Copy.
type Matrix struct {
	blk *block // nil for the degenerate matrix
}

// New creates a rows×cols matrix filled with 0.
//
// New(0, 0) returns the degenerate matrix and no error; this is the only
// legal zero-extent request. Exactly one zero extent, or any negative extent,
// fails with ErrInvalidDimensions.
//
// Complexity: Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows == 0 && cols == 0 {
		return &Matrix{}, nil
	}
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	o := gatherOptions(opts...)

	return &Matrix{blk: newBlock(rows, cols, o.finiteOnly)}, nil
}

// NewFilled creates a rows×cols matrix with every element equal to v.
// Unlike New, a 0×0 request is an error here.
//
// Errors:
//   - ErrInvalidDimensions for any non-positive extent.
//   - ErrNaNInf when v is not finite under WithFiniteOnly.
func NewFilled(rows, cols int, v float64, opts ...Option) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNewFilled, err)
	}
	o := gatherOptions(opts...)
	b := newBlock(rows, cols, o.finiteOnly)
	if err := b.checkValue(v); err != nil {
		return nil, matrixErrorf(ctxNewFilled, err)
	}
	for i := range b.data {
		b.data[i] = v
	}

	return &Matrix{blk: b}, nil
}

// NewFromSlice creates a rows×cols matrix from the first rows*cols values of
// src, read in row-major order. src is copied; later changes to it are not
// observed by the matrix.
//
// Errors:
//   - ErrInvalidDimensions for any non-positive extent.
//   - ErrDimensionMismatch when len(src) < rows*cols.
//   - ErrNaNInf for a non-finite source value under WithFiniteOnly.
func NewFromSlice(rows, cols int, src []float64, opts ...Option) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNewFromSl, err)
	}
	if len(src) < rows*cols {
		return nil, matrixErrorf(ctxNewFromSl, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	b := newBlock(rows, cols, o.finiteOnly)
	for i := range b.data {
		if err := b.checkValue(src[i]); err != nil {
			return nil, matrixErrorf(ctxNewFromSl, err)
		}
	}
	copy(b.data, src)

	return &Matrix{blk: b}, nil
}

// FromRows builds a matrix from a slice of rows.
// An empty input yields the degenerate matrix; ragged rows fail with
// ErrDimensionMismatch and an empty first row with ErrInvalidDimensions.
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	r, c := len(rows), len(rows[0])
	if err := validateShape(r, c); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	flat := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		flat = append(flat, row...)
	}

	m, err := NewFromSlice(r, c, flat, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	return m, nil
}

// bound reports whether m holds a storage block.
func (m *Matrix) bound() bool { return m != nil && m.blk != nil }

// Rows returns the row count, 0 for the degenerate matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	if !m.bound() {
		return 0
	}

	return m.blk.rows
}

// Cols returns the column count, 0 for the degenerate matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	if !m.bound() {
		return 0
	}

	return m.blk.cols
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsEmpty reports whether m is the degenerate 0×0 matrix.
func (m *Matrix) IsEmpty() bool { return !m.bound() }

// Shared reports whether m's storage is currently shared with another handle,
// i.e. whether the next write will clone it.
func (m *Matrix) Shared() bool { return m.bound() && m.blk.shared() }

// Copy returns a new handle sharing m's storage. No elements are copied until
// one of the handles is written to.
// Complexity: O(1).
func (m *Matrix) Copy() *Matrix {
	if !m.bound() {
		return &Matrix{}
	}
	m.blk.retain()

	return &Matrix{blk: m.blk}
}

// Assign makes m a copy of src (sharing src's storage) and releases m's
// previous storage. It is copy-and-swap: a temporary share of src is built
// first, swapped in, and the temporary then releases the old block. m = m
// and chains like a.Assign(b); b.Assign(a) are safe. A nil src is treated as
// the degenerate matrix. A nil m has nowhere to bind and is left alone.
// Complexity: O(1).
func (m *Matrix) Assign(src *Matrix) {
	if m == nil {
		return
	}
	tmp := src.Copy()
	m.swap(tmp)
	tmp.Release()
}

// swap exchanges the storage of m and other.
func (m *Matrix) swap(other *Matrix) { m.blk, other.blk = other.blk, m.blk }

// Release gives up m's share of its storage and leaves m degenerate.
// The storage is dropped when its last handle is released. Releasing a
// degenerate or nil matrix is a no-op.
func (m *Matrix) Release() {
	if !m.bound() {
		return
	}
	m.blk.release()
	m.blk = nil
}

// detach gives m private storage if its block is shared.
// The old block loses one share but stays alive for its other handles.
// No-op when m is degenerate or already the sole owner.
// Complexity: O(r*c) when cloning, O(1) otherwise.
func (m *Matrix) detach() {
	if !m.bound() || !m.blk.shared() {
		return
	}
	nb := m.blk.clone()
	m.blk.release()
	m.blk = nb
}

// indexOf bounds-checks (row, col) against m and returns the row-major offset.
// Any index on a degenerate matrix is out of range.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if !m.bound() {
		return 0, ErrOutOfRange
	}

	return m.blk.offset(row, col)
}

// At returns the value at (row, col) or ErrOutOfRange.
// Reads never detach.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, handleErrorf(ctxAt, row, col, err)
	}

	return m.blk.data[off], nil
}

// Set stores v at (row, col).
// Indices and the numeric policy are validated before detach, so a failed
// Set neither writes nor clones.
//
// Errors:
//   - ErrOutOfRange for bad indices or a degenerate matrix.
//   - ErrNaNInf for a non-finite v under WithFiniteOnly.
func (m *Matrix) Set(row, col int, v float64) error {
	return m.write(ctxSet, row, col, v)
}

// write is the single detach-then-write path shared by Set and Ref.Set.
func (m *Matrix) write(method string, row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return handleErrorf(method, row, col, err)
	}
	if err = m.blk.checkValue(v); err != nil {
		return handleErrorf(method, row, col, err)
	}
	m.detach()
	m.blk.data[off] = v

	return nil
}

// Do visits each element in row-major order and calls f(i, j, v).
// Read-only: stops early when f returns false and never detaches.
// Complexity: O(r*c).
func (m *Matrix) Do(f func(i, j int, v float64) bool) {
	if !m.bound() {
		return
	}
	var i, j, base int
	for i = 0; i < m.blk.rows; i++ {
		base = i * m.blk.cols
		for j = 0; j < m.blk.cols; j++ {
			if !f(i, j, m.blk.data[base+j]) {
				return
			}
		}
	}
}

// RawCopy returns a row-major copy of the elements (nil for degenerate).
func (m *Matrix) RawCopy() []float64 {
	if !m.bound() {
		return nil
	}
	out := make([]float64, len(m.blk.data))
	copy(out, m.blk.data)

	return out
}
