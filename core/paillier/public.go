package paillier

import (
	"bytes"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/paillier-lib/core/hash"
	"github.com/mr-shifu/paillier-lib/core/math/arith"
	"github.com/mr-shifu/paillier-lib/core/math/sample"
	"github.com/mr-shifu/paillier-lib/lib/params"
	"github.com/pkg/errors"
)

// PublicKey is a Paillier public key.
//
// The generator is fixed to g = n + 1, which is valid because the two primes behind n
// have equal bit length.
type PublicKey struct {
	// n = p⋅q
	n *arith.Modulus
	// nSquared = n²
	nSquared *arith.Modulus
	// g = n + 1
	g *saferith.Nat

	nBig *big.Int
	id   []byte
}

// NewPublicKey returns the public key with modulus n.
func NewPublicKey(n *big.Int) (*PublicKey, error) {
	if n == nil || n.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrInvalidPublicKey
	}
	nBig := new(big.Int).Set(n)
	nMod, err := arith.ModulusFromBig(nBig)
	if err != nil {
		return nil, err
	}
	nSquared, err := arith.ModulusFromBig(new(big.Int).Mul(nBig, nBig))
	if err != nil {
		return nil, err
	}
	g := new(big.Int).Add(nBig, big.NewInt(1))

	pk := &PublicKey{
		n:        nMod,
		nSquared: nSquared,
		g:        new(saferith.Nat).SetBig(g, nSquared.BitLen()),
		nBig:     nBig,
	}
	pk.id = hash.New(pk).Sum()[:params.KeyIDBytes]
	return pk, nil
}

// N returns a copy of the modulus n.
func (pk *PublicKey) N() *big.Int {
	return new(big.Int).Set(pk.nBig)
}

// NSquared returns a copy of n².
func (pk *PublicKey) NSquared() *big.Int {
	return pk.nSquared.Big()
}

// G returns a copy of the generator n + 1.
func (pk *PublicKey) G() *big.Int {
	return pk.g.Big()
}

// Modulus returns the modulus n.
func (pk *PublicKey) Modulus() *arith.Modulus {
	return pk.n
}

// KeyID identifies the key; every ciphertext produced under pk carries it.
func (pk *PublicKey) KeyID() []byte {
	return bytes.Clone(pk.id)
}

// Equal returns true if pk = other.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk == nil || other == nil {
		return pk == other
	}
	return pk.nBig.Cmp(other.nBig) == 0
}

// Validate checks that n is odd and greater than one.
func (pk *PublicKey) Validate() error {
	if pk.nBig.Cmp(big.NewInt(1)) <= 0 || pk.nBig.Bit(0) != 1 {
		return ErrInvalidPublicKey
	}
	return nil
}

// Enc returns the encryption of m ∈ [0, n) under pk, together with the nonce used.
//
// ct = gᵐ⋅rⁿ (mod n²)
func (pk *PublicKey) Enc(rand io.Reader, m *big.Int) (*Ciphertext, *big.Int, error) {
	if !pk.n.Contains(m) {
		return nil, nil, errors.WithMessage(arith.ErrDomain, "paillier: plaintext must lie in [0, n)")
	}
	nonce, err := sample.UnitModN(rand, pk.n.Modulus)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "paillier: failed to sample nonce")
	}
	return pk.encWithNonce(m, nonce.Big()), nonce.Big(), nil
}

// EncWithNonce returns the encryption of m under pk with the caller's nonce r ∈ [1, n), gcd(r, n) = 1.
//
// ct = gᵐ⋅rⁿ (mod n²)
func (pk *PublicKey) EncWithNonce(m, nonce *big.Int) (*Ciphertext, error) {
	if !pk.n.Contains(m) {
		return nil, errors.WithMessage(arith.ErrDomain, "paillier: plaintext must lie in [0, n)")
	}
	if !pk.n.Contains(nonce) || nonce.Sign() == 0 {
		return nil, errors.WithMessage(arith.ErrDomain, "paillier: nonce must lie in [1, n)")
	}
	if !arith.Coprime(nonce, pk.nBig) {
		return nil, arith.ErrNonCoprime
	}
	return pk.encWithNonce(m, nonce), nil
}

func (pk *PublicKey) encWithNonce(m, nonce *big.Int) *Ciphertext {
	mNat := new(saferith.Nat).SetBig(m, pk.n.BitLen())
	nNat := new(saferith.Nat).SetBig(pk.nBig, pk.n.BitLen())

	// a = gᵐ (mod n²)
	a := pk.nSquared.Exp(pk.g, mNat)
	// b = rⁿ (mod n²)
	b := pk.nSquared.Exp(pk.nSquared.Reduce(nonce), nNat)

	c := a.ModMul(a, b, pk.nSquared.Modulus)
	return &Ciphertext{c: c, keyID: pk.id}
}

// Add returns the homomorphic sum a ⊕ b, an encryption of a + b (mod n).
//
// ct = a⋅b (mod n²)
func (pk *PublicKey) Add(a, b *Ciphertext) (*Ciphertext, error) {
	if err := pk.check(a, b); err != nil {
		return nil, err
	}
	c := new(saferith.Nat).ModMul(pk.value(a), pk.value(b), pk.nSquared.Modulus)
	return &Ciphertext{c: c, keyID: pk.id}, nil
}

// AddConstant returns an encryption of a + k (mod n) for any integer k.
//
// ct = a⋅gᵏ (mod n²)
func (pk *PublicKey) AddConstant(a *Ciphertext, k *big.Int) (*Ciphertext, error) {
	if err := pk.check(a); err != nil {
		return nil, err
	}
	// g = n + 1 is a unit mod n², so negative k is always defined
	gk, err := pk.nSquared.ExpBig(pk.g.Big(), k)
	if err != nil {
		return nil, err
	}
	c := gk.ModMul(gk, pk.value(a), pk.nSquared.Modulus)
	return &Ciphertext{c: c, keyID: pk.id}, nil
}

// MulConstant returns k ⊙ a, an encryption of a⋅k (mod n).
// A negative k requires a to be invertible mod n², otherwise arith.ErrNonCoprime is returned.
//
// ct = aᵏ (mod n²)
func (pk *PublicKey) MulConstant(a *Ciphertext, k *big.Int) (*Ciphertext, error) {
	if err := pk.check(a); err != nil {
		return nil, err
	}
	c, err := pk.nSquared.ExpBig(a.c.Big(), k)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{c: c, keyID: pk.id}, nil
}

// Randomize returns a fresh encryption of the same plaintext as a, multiplying by rⁿ
// for a newly sampled nonce r.
func (pk *PublicKey) Randomize(rand io.Reader, a *Ciphertext) (*Ciphertext, error) {
	if err := pk.check(a); err != nil {
		return nil, err
	}
	nonce, err := sample.UnitModN(rand, pk.n.Modulus)
	if err != nil {
		return nil, errors.WithMessage(err, "paillier: failed to sample nonce")
	}
	nNat := new(saferith.Nat).SetBig(pk.nBig, pk.n.BitLen())
	rn := pk.nSquared.Exp(pk.nSquared.Reduce(nonce.Big()), nNat)
	c := rn.ModMul(rn, pk.value(a), pk.nSquared.Modulus)
	return &Ciphertext{c: c, keyID: pk.id}, nil
}

// ValidateCiphertexts returns true if every ciphertext was produced under pk and lies in [0, n²).
func (pk *PublicKey) ValidateCiphertexts(cts ...*Ciphertext) bool {
	return pk.check(cts...) == nil
}

func (pk *PublicKey) check(cts ...*Ciphertext) error {
	for _, ct := range cts {
		if ct == nil || ct.c == nil {
			return ErrNilCiphertext
		}
		if !bytes.Equal(ct.keyID, pk.id) {
			return ErrKeyMismatch
		}
		if !pk.nSquared.Contains(ct.c.Big()) {
			return errors.WithMessage(arith.ErrDomain, "paillier: ciphertext must lie in [0, n²)")
		}
	}
	return nil
}

// value returns the ciphertext as a Nat sized for n².
func (pk *PublicKey) value(ct *Ciphertext) *saferith.Nat {
	return pk.nSquared.Reduce(ct.c.Big())
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (pk *PublicKey) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(pk.nBig.Bytes())
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (*PublicKey) Domain() string {
	return "Paillier PublicKey"
}
