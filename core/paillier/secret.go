package paillier

import (
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/paillier-lib/core/math/arith"
	"github.com/pkg/errors"
)

// SecretKey is a Paillier private key.
type SecretKey struct {
	// lambda = lcm(p-1, q-1)
	lambda *saferith.Nat
	// mu = λ⁻¹ (mod n)
	mu *saferith.Nat
}

// NewSecretKey derives λ and μ from the primes p, q and n = p⋅q.
//
// arith.ErrNoInverse is returned when gcd(λ, n) ≠ 1.
func NewSecretKey(p, q, n *big.Int) (*SecretKey, error) {
	one := big.NewInt(1)
	lambda, err := arith.LCM(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
	if err != nil {
		return nil, errors.WithMessage(err, "paillier: failed to compute λ")
	}
	mu, err := arith.ModInverse(lambda, n)
	if err != nil {
		return nil, errors.WithMessage(err, "paillier: failed to compute μ")
	}
	return newSecretKey(lambda, mu), nil
}

func newSecretKey(lambda, mu *big.Int) *SecretKey {
	return &SecretKey{
		lambda: new(saferith.Nat).SetBig(lambda, lambda.BitLen()),
		mu:     new(saferith.Nat).SetBig(mu, mu.BitLen()),
	}
}

// Lambda returns a copy of λ.
func (sk *SecretKey) Lambda() *big.Int {
	return sk.lambda.Big()
}

// Mu returns a copy of μ.
func (sk *SecretKey) Mu() *big.Int {
	return sk.mu.Big()
}

// Dec returns the plaintext of ct, which must have been produced under pk.
// A ciphertext sharing a factor with n is rejected with arith.ErrNonCoprime.
//
// m = L(c^λ mod n²)⋅μ (mod n), where L(x) = (x - 1) / n
func (sk *SecretKey) Dec(pk *PublicKey, ct *Ciphertext) (*big.Int, error) {
	if err := pk.check(ct); err != nil {
		return nil, err
	}
	c := pk.value(ct)
	// every encryption is a unit mod n²
	if c.IsUnit(pk.nSquared.Modulus) != 1 {
		return nil, errors.WithMessage(arith.ErrNonCoprime, "paillier: ciphertext is not a unit mod n²")
	}

	// x = c^λ (mod n²)
	x := pk.nSquared.Exp(c, sk.lambda).Big()
	// L(x) = ⌊(x - 1) / n⌋
	l := x.Sub(x, big.NewInt(1))
	l.Div(l, pk.nBig)
	// m = L(x)⋅μ (mod n)
	m := l.Mul(l, sk.mu.Big())
	return m.Mod(m, pk.nBig), nil
}

// KeyPair holds a public key and the secret key derived from the same primes.
type KeyPair struct {
	public *PublicKey
	secret *SecretKey
}

// NewKeyPair builds the key pair for the primes p and q.
func NewKeyPair(p, q *big.Int) (*KeyPair, error) {
	one := big.NewInt(1)
	if p.Cmp(one) <= 0 || q.Cmp(one) <= 0 {
		return nil, errors.WithMessage(arith.ErrDomain, "paillier: primes must be greater than one")
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

// PublicKey returns the public half of the pair.
func (kp *KeyPair) PublicKey() *PublicKey {
	return kp.public
}

// SecretKey returns the secret half of the pair.
func (kp *KeyPair) SecretKey() *SecretKey {
	return kp.secret
}

// Dec decrypts ct with the secret half of the pair.
func (kp *KeyPair) Dec(ct *Ciphertext) (*big.Int, error) {
	return kp.secret.Dec(kp.public, ct)
}
