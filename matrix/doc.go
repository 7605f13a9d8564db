// Package matrix provides a copy-on-write float64 matrix with value semantics.
//
// A *Matrix is a handle onto a shared, reference-counted row-major block:
//
//   - Copy and Assign share the block and only bump its share count.
//   - Reads (At, Ref.Get, Equal, String, Snapshot) never copy.
//   - Every write (Set, Ref.Set, AddAssign, SubAssign, ReadText) first
//     detaches: if the block is shared it is cloned, then written.
//   - MulAssign computes into fresh storage and rebinds, so a.MulAssign(a) is safe.
//   - Release is the destructor; the zero Matrix is the degenerate 0×0 matrix.
//
// Add, Sub and Mul return new handles and never mutate their operands.
// Failures are reported with the sentinels in errors.go (ErrInvalidDimensions,
// ErrDimensionMismatch, ErrOutOfRange), all matching ErrMatrix via errors.Is.
//
// Handles that share a block must not be used from several goroutines at once.
//
// See the examples in this package for usage patterns.
package matrix
