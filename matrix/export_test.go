// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the external matrix_test package.
// Exposes share counts and storage identity without widening the API.

// RefCount returns the share count of m's block, 0 for a degenerate matrix.
func RefCount(m *Matrix) int {
	if !m.bound() {
		return 0
	}

	return m.blk.refs
}

// Storage returns m's block pointer as an opaque value for identity checks.
func Storage(m *Matrix) any { return m.blk }

// SameStorage reports whether a and b are bound to one block.
func SameStorage(a, b *Matrix) bool { return a.bound() && b.bound() && a.blk == b.blk }

// ExportedDetach exposes (*Matrix).detach.
var ExportedDetach = (*Matrix).detach
