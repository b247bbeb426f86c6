// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package intmath

// Mean returns `floor((a+b)/2)` without ever computing `a+b`, so it is correct
// even when the sum would overflow T.
func Mean[T Integer](a, b T) T {
	// Halving each operand drops the low bit of both; it only contributes to the
	// sum when both are odd. Shifts floor negative values whereas division would
	// truncate them towards zero.
	return a>>1 + b>>1 + a&b&1
}
