// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and comparisons.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Determinant cache policy: a Matrix caches its determinant after
//     CompDeterm. By default any mutating access (Set, ElemMut, scalar
//     mutators) drops the cache, so Inverse reports ErrUnknownDeterminant
//     instead of using a stale value. WithStaleDeterminant keeps the cache
//     across mutations; keeping it valid is then the caller's job.
//   - Transpose never drops the cache: det(Aᵀ) = det(A).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllClose.
	DefaultEpsilon = 1e-9

	// DefaultTrackDeterminant drops the cached determinant on mutation.
	DefaultTrackDeterminant = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps         float64 // >= 0; DefaultEpsilon
	trackDeterm bool    // DefaultTrackDeterminant
}

// WithEpsilon sets the absolute tolerance used by AllClose.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithStaleDeterminant keeps a cached determinant across mutating accesses.
// Use it when a matrix is mutated in ways known to preserve the determinant
// (or when the stale value is never consumed) to avoid recomputation.
func WithStaleDeterminant() Option {
	return func(o *Options) { o.trackDeterm = false }
}

// WithTrackedDeterminant drops the cached determinant on every mutating
// access. This is the default.
func WithTrackedDeterminant() Option {
	return func(o *Options) { o.trackDeterm = true }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:         DefaultEpsilon,
		trackDeterm: DefaultTrackDeterminant,
	}
}

// gatherOptions applies opts over the defaults in order; later setters win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
