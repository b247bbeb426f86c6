// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package intmath

import (
	"fmt"
	"math/bits"
)

// A Strategy selects how [Ops] detects overflow. Both strategies return
// identical results for all inputs.
type Strategy uint8

const (
	// Intrinsic widens operands to 64 bits and uses the carry, borrow and
	// high-word outputs of the [bits] intrinsics.
	Intrinsic Strategy = iota
	// Manual compares operands against the limits of the type before
	// performing the operation, never needing a wider type.
	Manual
)

func (s Strategy) String() string {
	switch s {
	case Intrinsic:
		return "intrinsic"
	case Manual:
		return "manual"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// Ops provides checked arithmetic with a call-time choice of [Strategy]. The
// zero value uses [Intrinsic].
type Ops[T Integer] struct {
	Strategy Strategy
}

// Add is equivalent to [AddWith] with the configured [Strategy].
func (o Ops[T]) Add(a, b T) (T, bool) { return AddWith(o.Strategy, a, b) }

// Sub is equivalent to [SubWith] with the configured [Strategy].
func (o Ops[T]) Sub(a, b T) (T, bool) { return SubWith(o.Strategy, a, b) }

// Mul is equivalent to [MulWith] with the configured [Strategy].
func (o Ops[T]) Mul(a, b T) (T, bool) { return MulWith(o.Strategy, a, b) }

// AddOverflow returns `a+b` and whether the exact sum lies outside the range
// of T. The returned value is always the wrapped sum.
func AddOverflow[T Integer](a, b T) (T, bool) {
	return addIntrinsic(a, b)
}

// SubOverflow returns `a-b` and whether the exact difference lies outside the
// range of T. The returned value is always the wrapped difference.
func SubOverflow[T Integer](a, b T) (T, bool) {
	return subIntrinsic(a, b)
}

// MulOverflow returns `a*b` and whether the exact product lies outside the
// range of T. The returned value is always the wrapped product.
func MulOverflow[T Integer](a, b T) (T, bool) {
	return mulIntrinsic(a, b)
}

// AddWith is equivalent to [AddOverflow] but with an explicit [Strategy].
func AddWith[T Integer](s Strategy, a, b T) (T, bool) {
	if s == Manual {
		return addManual(a, b)
	}
	return addIntrinsic(a, b)
}

// SubWith is equivalent to [SubOverflow] but with an explicit [Strategy].
func SubWith[T Integer](s Strategy, a, b T) (T, bool) {
	if s == Manual {
		return subManual(a, b)
	}
	return subIntrinsic(a, b)
}

// MulWith is equivalent to [MulOverflow] but with an explicit [Strategy].
func MulWith[T Integer](s Strategy, a, b T) (T, bool) {
	if s == Manual {
		return mulManual(a, b)
	}
	return mulIntrinsic(a, b)
}

func addManual[T Integer](a, b T) (T, bool) {
	max, min := MaxOf[T](), MinOf[T]()
	if !Signed[T]() {
		return a + b, a > max-b
	}
	overflow := (b > 0 && a > max-b) || (b < 0 && a < min-b)
	return a + b, overflow
}

func subManual[T Integer](a, b T) (T, bool) {
	max, min := MaxOf[T](), MinOf[T]()
	if !Signed[T]() {
		return a - b, a < b
	}
	overflow := (b < 0 && a > max+b) || (b > 0 && a < min+b)
	return a - b, overflow
}

func mulManual[T Integer](a, b T) (T, bool) {
	return a * b, mulOverflows(a, b)
}

func mulOverflows[T Integer](a, b T) bool {
	if a == 0 || b == 0 {
		return false
	}
	max, min := MaxOf[T](), MinOf[T]()
	if !Signed[T]() {
		return a > max/b
	}

	// -min isn't representable so `max/-1` and `min/-1` are not usable bounds.
	minusOne := ^T(0)
	switch {
	case a == minusOne:
		return b == min
	case b == minusOne:
		return a == min
	}

	switch {
	case a > 0 && b > 0:
		return a > max/b
	case a < 0 && b < 0:
		// Quotients of negatives truncate towards zero, i.e. they round up.
		return a < max/b
	case a > 0: // b < 0
		return b < min/a
	default: // a < 0 < b
		return a < min/b
	}
}

// The intrinsic implementations below widen to 64 bits so a single code path
// serves every width; narrower types additionally check that the wide result
// fits in T.

func addIntrinsic[T Integer](a, b T) (T, bool) {
	if !Signed[T]() {
		sum, carry := bits.Add64(uint64(a), uint64(b), 0)
		return T(sum), carry != 0 || sum > uint64(MaxOf[T]())
	}
	x, y := int64(a), int64(b)
	sum := int64(uint64(x) + uint64(y))
	// Same-signed operands with a differently signed sum wrapped around int64.
	wrapped := (x^sum)&(y^sum) < 0
	return T(sum), wrapped || !fits[T](sum)
}

func subIntrinsic[T Integer](a, b T) (T, bool) {
	if !Signed[T]() {
		diff, borrow := bits.Sub64(uint64(a), uint64(b), 0)
		return T(diff), borrow != 0
	}
	x, y := int64(a), int64(b)
	diff := int64(uint64(x) - uint64(y))
	// Differently signed operands with a result not matching the minuend's sign.
	wrapped := (x^y)&(x^diff) < 0
	return T(diff), wrapped || !fits[T](diff)
}

func mulIntrinsic[T Integer](a, b T) (T, bool) {
	if !Signed[T]() {
		hi, lo := bits.Mul64(uint64(a), uint64(b))
		return T(lo), hi != 0 || lo > uint64(MaxOf[T]())
	}

	x, y := int64(a), int64(b)
	neg := (x < 0) != (y < 0)
	hi, mag := bits.Mul64(abs64(x), abs64(y))

	prod, limit := mag, uint64(MaxOf[T]())
	if neg {
		prod = -mag
		limit++ // |min| == max+1
	}
	return T(prod), hi != 0 || mag > limit
}

// abs64 returns |x| as an unsigned integer, which is well defined even for
// [math.MinInt64].
func abs64(x int64) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}

func fits[T Integer](x int64) bool {
	return x >= int64(MinOf[T]()) && x <= int64(MaxOf[T]())
}
