package arith

import "errors"

var (
	// ErrNoInverse is returned when the operands of a modular inverse are not coprime.
	ErrNoInverse = errors.New("arith: modular inverse does not exist")

	// ErrDomain is returned when an operand lies outside the range an operation accepts.
	ErrDomain = errors.New("arith: operand out of range")

	// ErrNonCoprime is returned when an operation needs an element coprime to its modulus.
	ErrNonCoprime = errors.New("arith: operand not coprime to modulus")
)
