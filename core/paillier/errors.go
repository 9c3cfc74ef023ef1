package paillier

import "errors"

var (
	// ErrKeyMismatch is returned when a ciphertext was produced under a different public key.
	ErrKeyMismatch = errors.New("paillier: ciphertext belongs to a different key")

	// ErrInvalidPublicKey is returned for a modulus that cannot be a product of two odd primes.
	ErrInvalidPublicKey = errors.New("paillier: invalid public key modulus")

	// ErrNilCiphertext is returned when an operator receives a nil ciphertext.
	ErrNilCiphertext = errors.New("paillier: nil ciphertext")
)
