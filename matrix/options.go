// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
//
// Notes:
//   - The numeric policy is stored on the storage block, so every handle that
//     shares the block sees the same policy, and blocks cloned by detach or
//     produced by Add/Sub/Mul inherit it from their left operand.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFiniteOnly toggles rejection of NaN/±Inf on every write path.
	// Off by default: a plain matrix stores any float64, fill values included.
	DefaultFiniteOnly = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	finiteOnly bool // DefaultFiniteOnly
}

// WithFiniteOnly enables strict finite-value validation.
//
// Behavior highlights:
//   - NewFilled/NewFromSlice reject non-finite sources with ErrNaNInf.
//   - Set, Ref.Set, ReadText and the compound operators reject results that
//     are NaN or ±Inf; the matrix is left unchanged in that case.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithFiniteOnly() Option {
	return func(o *Options) { o.finiteOnly = true }
}

// WithAnyFloat disables NaN/Inf validation (default).
func WithAnyFloat() Option {
	return func(o *Options) { o.finiteOnly = false }
}

// FiniteOnly reports whether the finite-value policy is enabled.
func (o Options) FiniteOnly() bool { return o.finiteOnly }

// NewMatrixOptions resolves the given setters on top of the defaults.
// Exposed for callers that want to inspect the effective policy.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry used by constructors.
func gatherOptions(user ...Option) Options {
	o := Options{
		finiteOnly: DefaultFiniteOnly,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
