// SPDX-License-Identifier: MIT

// Package matrix - interoperability with gonum.org/v1/gonum/mat.
//
// Snapshot is a read-only mat.Matrix that holds one share of a handle's
// storage. Because every write through the handle detaches first, the
// snapshot keeps seeing the values it was taken from without any copy at
// snapshot time.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// Snapshot is a read-only, copy-free view of a Matrix implementing mat.Matrix.
type Snapshot struct {
	src *Matrix
}

// Compile-time assertion for mat.Matrix conformance.
var _ mat.Matrix = (*Snapshot)(nil)

// Snapshot returns a mat.Matrix view sharing m's current storage.
// Call Release when done so m can write without cloning.
// Complexity: O(1).
func (m *Matrix) Snapshot() *Snapshot {
	return &Snapshot{src: m.Copy()}
}

// Dims returns the dimensions of the snapshot.
func (s *Snapshot) Dims() (r, c int) { return s.src.Shape() }

// At returns element (i, j). Like gonum's own types it panics on an index
// outside the matrix (mat.ErrRowAccess / mat.ErrColAccess).
func (s *Snapshot) At(i, j int) float64 {
	r, c := s.src.Shape()
	if i < 0 || i >= r {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= c {
		panic(mat.ErrColAccess)
	}

	return s.src.blk.data[i*c+j]
}

// T returns the transpose as an implicit mat.Transpose view.
func (s *Snapshot) T() mat.Matrix { return mat.Transpose{Matrix: s} }

// Release drops the snapshot's share of the storage. The snapshot reads as
// 0×0 afterwards.
func (s *Snapshot) Release() { s.src.Release() }

// ToDense returns an independent *mat.Dense copy of m. The degenerate matrix
// maps to an empty mat.Dense (its zero value).
// Complexity: O(r*c).
func (m *Matrix) ToDense() *mat.Dense {
	if !m.bound() {
		return &mat.Dense{}
	}

	return mat.NewDense(m.blk.rows, m.blk.cols, m.RawCopy())
}

// FromGonum copies any mat.Matrix into a new *Matrix.
// A 0×0 source (for example an empty mat.Dense) yields the degenerate matrix.
//
// Errors:
//   - ErrNilMatrix for a nil source.
//   - ErrNaNInf under WithFiniteOnly.
func FromGonum(a mat.Matrix, opts ...Option) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	if d, ok := a.(*mat.Dense); ok && d.IsEmpty() {
		return &Matrix{}, nil
	}
	r, c := a.Dims()
	if r == 0 && c == 0 {
		return &Matrix{}, nil
	}
	if err := validateShape(r, c); err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}

	flat := make([]float64, r*c)
	// Dense fast path: copy row slices out of the raw strided buffer.
	if d, ok := a.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i := 0; i < r; i++ {
			copy(flat[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
	} else {
		var i, j int
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				flat[i*c+j] = a.At(i, j)
			}
		}
	}

	m, err := NewFromSlice(r, c, flat, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}

	return m, nil
}
