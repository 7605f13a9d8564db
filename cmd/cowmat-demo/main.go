// Package main demonstrates the copy-on-write matrix and each error it reports.
//
// Scenario:
//
//	Build a 2×2 matrix through element references, print it, share it with a
//	copy and write through the copy, then trigger each failure kind:
//	out-of-bounds access, zero-extent construction, mismatched addition and
//	incompatible multiplication.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/cowmat/matrix"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("demo failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	m1, err := matrix.New(2, 2)
	if err != nil {
		return err
	}
	for i, v := range []float64{1, 2, 3, 4} {
		r, err := m1.Ref(i/2, i%2)
		if err != nil {
			return err
		}
		if err = r.Set(v); err != nil {
			return err
		}
	}
	fmt.Println("Matrix m1:")
	fmt.Printf("%s\n\n", m1)

	shared := m1.Copy()
	fmt.Printf("Copy shares storage: %t\n", m1.Shared())
	if err = shared.Set(0, 0, 10); err != nil {
		return err
	}
	fmt.Printf("After writing the copy, m1 still shared: %t\n", m1.Shared())
	fmt.Printf("m1:\n%s\ncopy:\n%s\n\n", m1, shared)

	fmt.Println("Test 1: Attempting out-of-bounds access...")
	if _, err = m1.Ref(5, 5); err != nil {
		report(err, matrix.ErrOutOfRange, "index out of bounds")
	}

	fmt.Println("Test 2: Attempting to create a matrix with zero dimensions...")
	if _, err = matrix.NewFilled(0, 5, 1.0); err != nil {
		report(err, matrix.ErrInvalidDimensions, "invalid dimensions")
	}

	fmt.Println("Test 3: Attempting to add matrices of different dimensions...")
	m3, err := matrix.NewFilled(2, 2, 1.0)
	if err != nil {
		return err
	}
	m4, err := matrix.NewFilled(3, 3, 2.0)
	if err != nil {
		return err
	}
	if _, err = matrix.Add(m3, m4); err != nil {
		report(err, matrix.ErrDimensionMismatch, "dimension mismatch")
	}

	fmt.Println("Test 4: Attempting to multiply matrices with incompatible dimensions...")
	m5, err := matrix.NewFilled(2, 3, 1.0)
	if err != nil {
		return err
	}
	m6, err := matrix.NewFilled(2, 2, 2.0)
	if err != nil {
		return err
	}
	if _, err = matrix.Mul(m5, m6); err != nil {
		report(err, matrix.ErrDimensionMismatch, "dimension mismatch")
	}

	return nil
}

// report prints err, naming the kind when it matches target.
func report(err, target error, kind string) {
	if errors.Is(err, target) {
		fmt.Printf("Caught %s: %v\n\n", kind, err)
		return
	}
	fmt.Printf("Unexpected error: %v\n\n", err)
}
