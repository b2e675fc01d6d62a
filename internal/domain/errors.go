package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for out-of-range numeric input or missing arguments.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO is returned when a file cannot be opened, read or written.
	ErrIO = errors.New("i/o error")

	// ErrMalformedInput is returned when a ciphertext file is not a whole
	// number of stored integers.
	ErrMalformedInput = errors.New("bad input file")

	// ErrNoInverse is returned when the operands of a modular inverse are not coprime.
	ErrNoInverse = errors.New("no modular inverse exists")

	// ErrExponentNotFound is returned when no public exponent could be selected
	// within the retry bound.
	ErrExponentNotFound = errors.New("no suitable exponent found")

	// ErrInvalidKey is returned for key records that cannot drive the cipher.
	ErrInvalidKey = fmt.Errorf("%w: invalid key", ErrInvalidArgument)

	// ErrMessageOutOfRange is returned when a plaintext byte is not below the modulus.
	ErrMessageOutOfRange = fmt.Errorf("%w: message byte not below modulus", ErrInvalidArgument)
)
