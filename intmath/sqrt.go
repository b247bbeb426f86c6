// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package intmath

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned when an argument lies outside the domain of the
	// function, e.g. a negative value passed to [TrySqrt].
	ErrDomain = errors.New("argument outside function domain")
	// ErrInvalidOperation accompanies [ErrDomain] when the operation has no
	// meaningful result at all.
	ErrInvalidOperation = errors.New("invalid operation")
)

// A DomainError reports an argument outside the domain of Op. It matches both
// [ErrDomain] and [ErrInvalidOperation] under [errors.Is].
type DomainError struct {
	Op  string
	Arg int64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s(%d): %v", e.Op, e.Arg, ErrDomain)
}

// Unwrap returns the sentinel errors matched by e.
func (e *DomainError) Unwrap() []error {
	return []error{ErrDomain, ErrInvalidOperation}
}

// Sqrt returns the largest `r` such that `r*r <= v`. If `v` is negative, the
// sentinel value -1 is returned; use [TrySqrt] to also receive an error.
func Sqrt[T Integer](v T) T {
	r, _ := TrySqrt(v)
	return r
}

// TrySqrt is equivalent to [Sqrt] except that it also returns a [*DomainError]
// if `v` is negative.
func TrySqrt[T Integer](v T) (T, error) {
	if v < 0 {
		return ^T(0), &DomainError{Op: "sqrt", Arg: int64(v)}
	}
	r, _ := sqrt(v)
	return r, nil
}

// approxMaxRoot returns a cheap upper bound on `Sqrt(MaxOf[T]())`. It is
// exact plus one for unsigned types and loose for signed ones. The shift is by
// half the value digits, not the full width, so the bound stays at or above
// the true root for signed types: 16 for int8, where the full width gives 8.
func approxMaxRoot[T Integer]() T {
	return MaxOf[T]()>>(Digits[T]()/2) + 1
}

// sqrt implements [Sqrt] for non-negative `v`, additionally returning the
// number of binary-search iterations performed.
func sqrt[T Integer](v T) (root T, steps int) {
	switch {
	case v == 0:
		return 0, 0
	case v < 4:
		return 1, 0
	}

	// invariant: left*left <= v && (left == right || v < right*right)
	left, right := T(2), min(v/2, approxMaxRoot[T]())
	for right-left >= 2 {
		steps++
		// Both bounds are at most v/2 so their sum can't overflow.
		mid := (left + right) / 2
		sq, overflow := MulOverflow(mid, mid)
		switch {
		case overflow || sq > v:
			right = mid
		case sq < v:
			left = mid
		default:
			return mid, steps
		}
	}
	return left, steps
}
