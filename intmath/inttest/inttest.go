// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package inttest provides deterministic inputs and reference results for
// testing the [intmath] package.
package inttest

import (
	"math"
	"math/rand/v2"
	"reflect"

	"github.com/ava-labs/intarith/intmath"
)

// TypeName returns the name of T, for labelling test failures.
func TypeName[T intmath.Integer]() string {
	return reflect.TypeFor[T]().String()
}

// Uniform returns a generator of values uniformly distributed across the full
// range of T. Generators with equal seeds return equal sequences.
func Uniform[T intmath.Integer](seed uint64) func() T {
	rng := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // Reproducibility is valuable for tests
	return func() T {
		// Truncation of a uniform uint64 is uniform over the narrower type.
		return T(rng.Uint64())
	}
}

// Gaussian returns a generator of normally distributed values with mean 0 and
// standard deviation of a quarter of [intmath.MaxOf]. Values are rounded to
// the nearest integer and clamped to the range of T. Unsigned types receive
// the absolute value.
func Gaussian[T intmath.Integer](seed uint64) func() T {
	rng := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // Reproducibility is valuable for tests
	var (
		max    = float64(intmath.MaxOf[T]())
		min    = float64(intmath.MinOf[T]())
		stddev = max / 4
		signed = intmath.Signed[T]()
	)
	return func() T {
		x := math.Round(rng.NormFloat64() * stddev)
		if !signed {
			x = math.Abs(x)
		}
		// Float conversions of the limits may round up to a power of two that T
		// can't hold, hence >= rather than >.
		switch {
		case x >= max:
			return intmath.MaxOf[T]()
		case x <= min:
			return intmath.MinOf[T]()
		case signed:
			return T(int64(x))
		default:
			return T(uint64(x))
		}
	}
}

// Boundaries returns the values of T most likely to expose off-by-one errors
// in overflow checks: the limits, their halves, small magnitudes, and the
// neighbours of each. Neighbours beyond the limits wrap around.
func Boundaries[T intmath.Integer]() []T {
	max, min := intmath.MaxOf[T](), intmath.MinOf[T]()
	one := T(1)

	var out []T
	seen := make(map[T]bool)
	for _, v := range []T{0, one, one + one, max, min, max / 2, min / 2, ^T(0)} {
		for _, w := range []T{v - one, v, v + one} {
			if !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	return out
}
