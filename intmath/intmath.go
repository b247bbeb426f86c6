// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides exact, overflow-aware arithmetic over fixed-width
// integers.
//
// All functions are pure and safe for concurrent use. Width and signedness are
// carried by the type parameter; limits are derived from it rather than passed
// in.
package intmath

import (
	"errors"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of types accepted by the package.
type Integer interface {
	constraints.Integer
}

// Unsigned is the subset of [Integer] without a sign bit.
type Unsigned interface {
	constraints.Unsigned
}

// Signed reports whether T is a signed type.
func Signed[T Integer]() bool {
	var zero T
	return ^zero < 0
}

// Bits returns the width of T.
func Bits[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Digits returns the number of value bits of T, i.e. [Bits] less the sign bit
// for signed types.
func Digits[T Integer]() int {
	if Signed[T]() {
		return Bits[T]() - 1
	}
	return Bits[T]()
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Integer]() T {
	return T(uint64(1)<<(Digits[T]()-1)<<1 - 1)
}

// MinOf returns the smallest value representable by T.
func MinOf[T Integer]() T {
	if Signed[T]() {
		return -MaxOf[T]() - 1
	}
	return 0
}

// BoundedSubtract returns `max(a-b,floor)` without overflow. If `a-b` is too
// large for T then it saturates at [MaxOf].
func BoundedSubtract[T Integer](a, b, floor T) T {
	diff, overflow := SubOverflow(a, b)
	if overflow {
		// Only possible with `a` and `b` on either side of zero; the sign of `b`
		// tells us which side of the range the true difference fell off.
		if b > 0 {
			return floor
		}
		return MaxOf[T]()
	}
	if diff < floor {
		return floor
	}
	return diff
}

// ErrOverflow is returned if a return value would have overflowed its type.
var ErrOverflow = errors.New("overflow")

// MulDiv returns the quotient and remainder of `(a*b)/den` without overflow in
// the event that `a*b` exceeds T. However, if the quotient were to overflow
// then [ErrOverflow] is returned.
func MulDiv[T Unsigned](a, b, den T) (quo, rem T, err error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if uint64(den) <= hi {
		return 0, 0, ErrOverflow
	}
	q, r := bits.Div64(hi, lo, uint64(den))
	if q > uint64(MaxOf[T]()) {
		return 0, 0, ErrOverflow
	}
	return T(q), T(r), nil
}

// CeilDiv returns `ceil(num/den)`, i.e. the rounded-up quotient. It panics if
// `den` is zero.
func CeilDiv[T Unsigned](num, den T) T {
	quo := num / den
	if num%den != 0 {
		quo++
	}
	return quo
}
