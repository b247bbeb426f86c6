// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package intmath_test

import (
	"testing"

	"github.com/ava-labs/intarith/intmath"
	"github.com/ava-labs/intarith/intmath/inttest"
)

func TestMean(t *testing.T) {
	t.Run("int8", testMean[int8])
	t.Run("uint8", testMean[uint8])
	t.Run("int16", testMean[int16])
	t.Run("uint16", testMean[uint16])
	t.Run("int32", testMean[int32])
	t.Run("uint32", testMean[uint32])
	t.Run("int64", testMean[int64])
	t.Run("uint64", testMean[uint64])
}

func testMean[T intmath.Integer](t *testing.T) {
	maxT, minT := intmath.MaxOf[T](), intmath.MinOf[T]()

	tests := []struct {
		a, b, want T
	}{
		{a: 0, b: 0, want: 0},
		{a: 1, b: 0, want: 0},
		{a: 1, b: 1, want: 1},
		{a: 0, b: maxT, want: maxT / 2},
		{a: 1, b: maxT, want: maxT/2 + 1},
		{a: maxT, b: maxT, want: maxT},
		{a: 0, b: minT, want: minT / 2},
		{a: 1, b: minT, want: minT / 2},
		{a: minT, b: minT, want: minT},
		{a: minT, b: maxT, want: minT/2 + maxT/2}, // -1 when signed
	}

	for _, tt := range tests {
		if got := intmath.Mean(tt.a, tt.b); got != tt.want {
			t.Errorf("Mean[%T](%[1]d, %d) got %d; want %d", tt.a, tt.b, got, tt.want)
		}
		if got := intmath.Mean(tt.b, tt.a); got != tt.want {
			t.Errorf("Mean[%T](%[1]d, %d) got %d; want %d", tt.b, tt.a, got, tt.want)
		}
	}

	check := func(a, b T) {
		t.Helper()
		got := intmath.Mean(a, b)
		if lo, hi := min(a, b), max(a, b); got < lo || got > hi {
			t.Errorf("Mean[%T](%[1]d, %d) = %d; not in [%d, %d]", a, b, got, lo, hi)
		}
		if rev := intmath.Mean(b, a); rev != got {
			t.Errorf("Mean[%T](%[1]d, %d) = %d; reversed operands = %d", a, b, got, rev)
		}
	}

	bounds := inttest.Boundaries[T]()
	for _, a := range bounds {
		for _, b := range bounds {
			check(a, b)
		}
	}

	uniform := inttest.Uniform[T](123)
	gaussian := inttest.Gaussian[T](321)
	for range 10_000 {
		check(uniform(), uniform())
		check(gaussian(), gaussian())
	}
}

func TestMeanFloorsNegatives(t *testing.T) {
	tests := []struct {
		a, b, want int8
	}{
		{a: -1, b: -1, want: -1},
		{a: -1, b: 0, want: -1},
		{a: -3, b: 0, want: -2},
		{a: -3, b: -1, want: -2},
		{a: 127, b: 127, want: 127},
		{a: -128, b: -127, want: -128},
		{a: -128, b: 127, want: -1},
	}

	for _, tt := range tests {
		if got := intmath.Mean(tt.a, tt.b); got != tt.want {
			t.Errorf("Mean[%T](%[1]d, %d) got %d; want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
