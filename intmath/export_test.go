// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package intmath

// SqrtSteps returns [Sqrt] of a non-negative value along with the number of
// binary-search iterations it took.
func SqrtSteps[T Integer](v T) (T, int) {
	return sqrt(v)
}

// ApproxMaxRoot exposes the initial upper search bound of [Sqrt].
func ApproxMaxRoot[T Integer]() T {
	return approxMaxRoot[T]()
}
