// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package inttest

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ava-labs/intarith/intmath"
)

// An Op is a binary operator supported by [Exact].
type Op uint8

// Operators supported by [Exact].
const (
	Add Op = iota
	Sub
	Mul
)

func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Exact computes `a op b` in 256-bit two's complement, wide enough that no
// operation on 64-bit inputs can overflow, and reports whether the exact result
// is outside the range of T. The returned value is the result truncated to T.
func Exact[T intmath.Integer](op Op, a, b T) (T, bool) {
	x, y := ToInt256(a), ToInt256(b)

	var z uint256.Int
	switch op {
	case Add:
		z.Add(x, y)
	case Sub:
		z.Sub(x, y)
	case Mul:
		z.Mul(x, y)
	default:
		panic(fmt.Sprintf("unsupported %v", op))
	}

	lo, hi := ToInt256(intmath.MinOf[T]()), ToInt256(intmath.MaxOf[T]())
	return T(z.Uint64()), z.Slt(lo) || z.Sgt(hi)
}

// ToInt256 sign-extends (or zero-extends for unsigned T) `v` to 256 bits.
func ToInt256[T intmath.Integer](v T) *uint256.Int {
	if v < 0 {
		// |v| is representable as uint64 even for the minimum of int64.
		return new(uint256.Int).Neg(uint256.NewInt(-uint64(int64(v))))
	}
	return uint256.NewInt(uint64(v))
}
