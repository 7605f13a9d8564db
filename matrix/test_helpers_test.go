// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities.
//   • Keep all data finite and well-formed unless a test says otherwise.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cowmat/matrix"
	"github.com/stretchr/testify/require"
)

// MustNew allocates an r×c zero matrix or fails the test.
func MustNew(t testing.TB, r, c int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(r, c)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a matrix from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t testing.TB, m *matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// RequireRows asserts that m has exactly the given contents.
func RequireRows(t testing.TB, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	if len(want) == 0 {
		require.Equal(t, 0, m.Cols(), "cols")
		return
	}
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	var i, j int
	for i = 0; i < len(want); i++ {
		for j = 0; j < len(want[i]); j++ {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "element [%d,%d]", i, j)
		}
	}
}

// RandFilled returns an r×c matrix with values in [-1, 1) from a fixed seed.
func RandFilled(t testing.TB, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewFromSlice(r, c, vals)
	if err != nil {
		t.Fatalf("NewFromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

func nan() float64 { return math.NaN() }
