package paillier

import (
	"context"
	"io"
	"math/big"

	"github.com/mr-shifu/paillier-lib/core/prime"
	"github.com/pkg/errors"
)

// GenerateKey returns a key pair whose modulus is the product of two independent bits-bit primes.
//
// p ≠ q is not checked; for realistic bit lengths a collision is negligible.
func GenerateKey(rand io.Reader, bits int) (*KeyPair, error) {
	return GenerateKeyContext(context.Background(), rand, bits)
}

// GenerateKeyContext is GenerateKey bounded by ctx.
func GenerateKeyContext(ctx context.Context, rand io.Reader, bits int) (*KeyPair, error) {
	p, err := prime.GenerateContext(ctx, rand, bits)
	if err != nil {
		return nil, errors.WithMessage(err, "paillier: failed to generate p")
	}
	q, err := prime.GenerateContext(ctx, rand, bits)
	if err != nil {
		return nil, errors.WithMessage(err, "paillier: failed to generate q")
	}

	n := new(big.Int).Mul(p, q)
	pk, err := NewPublicKey(n)
	if err != nil {
		return nil, err
	}
	sk, err := NewSecretKey(p, q, n)
	if err != nil {
		return nil, err
	}
	return &KeyPair{public: pk, secret: sk}, nil
}
