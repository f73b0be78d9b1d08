// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import "fmt"

// ErrorCode identifies a kind of error returned by this package.
type ErrorCode int

const (
	// ErrNotBigInt indicates an operation received a nil *Int where a
	// valid operand was required. Go's static typing already rejects
	// anything that isn't a *Int at compile time; this is the one
	// argument-validity failure the type system can't catch on its own.
	ErrNotBigInt ErrorCode = iota

	// ErrNoInverse indicates ModInverse was asked for an inverse that
	// does not exist, either because gcd(this, n) != 1 or because both
	// operands are even.
	ErrNoInverse

	// ErrInvalidBase backstops the base constructors' "silently returns
	// zero on unknown base" contract: NewIntFromString still returns
	// Zero(), but also reports this error for callers who want to
	// detect the mistake instead of proceeding with the zero value.
	ErrInvalidBase

	// ErrNegativeModPow indicates ModPow or ModInverse received a
	// negative operand, which neither function supports.
	ErrNegativeModPow

	// ErrDivideByZero indicates DivMod was asked to divide by zero.
	ErrDivideByZero
)

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrNotBigInt:
		return "ErrNotBigInt"
	case ErrNoInverse:
		return "ErrNoInverse"
	case ErrInvalidBase:
		return "ErrInvalidBase"
	case ErrNegativeModPow:
		return "ErrNegativeModPow"
	case ErrDivideByZero:
		return "ErrDivideByZero"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Error identifies an error produced by this package. It satisfies the
// standard error interface and carries a machine-checkable ErrorCode
// alongside a human-readable description.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error returns the error as a human-readable string.
func (e Error) Error() string {
	return e.Description
}

// newError creates an Error given a code and description.
func newError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
