// Package cowmat is a copy-on-write matrix library.
//
// What is in here?
//
//	matrix/            - the *Matrix handle, element references, operators,
//	                     text dump/load and gonum interop
//	cmd/cowmat-demo/   - a small program that prints a matrix and triggers
//	                     every error kind the package reports
//
// Copies of a matrix are cheap: they share storage and only the first write
// through any handle pays for a private copy.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b := a.Copy()        // shares a's storage
//	_ = b.Set(0, 0, 10)  // b detaches; a still reads 1
//	p, _ := matrix.Mul(a, b)
//
//	go get github.com/katalvlaran/cowmat/matrix
package cowmat
