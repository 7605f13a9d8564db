// SPDX-License-Identifier: MIT

package matrix

// Ref addresses one element of a Matrix for both reading and writing.
//
// A Ref is obtained from (*Matrix).Ref, which validates the indices up front.
// It holds the handle and the coordinates and owns no storage:
//   - Get reads through the handle without detaching.
//   - Set writes through the handle's detach-then-write path.
//
// A Ref observes later Assign/Release calls on its handle; if the handle's
// shape shrinks below the coordinates, Get and Set report ErrOutOfRange.
type Ref struct {
	m        *Matrix
	row, col int
}

// Ref returns an element reference for (row, col).
// Errors: ErrOutOfRange immediately if the indices are invalid or m is degenerate.
func (m *Matrix) Ref(row, col int) (Ref, error) {
	if _, err := m.indexOf(row, col); err != nil {
		return Ref{}, handleErrorf(ctxRef, row, col, err)
	}

	return Ref{m: m, row: row, col: col}, nil
}

// Row returns the referenced row index.
func (r Ref) Row() int { return r.row }

// Col returns the referenced column index.
func (r Ref) Col() int { return r.col }

// Get returns the referenced value. It never clones shared storage.
func (r Ref) Get() (float64, error) {
	return r.m.At(r.row, r.col)
}

// Set stores v at the referenced position, detaching shared storage first.
func (r Ref) Set(v float64) error {
	return r.m.write(ctxRefSet, r.row, r.col, v)
}
