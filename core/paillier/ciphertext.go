package paillier

import (
	"bytes"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/paillier-lib/core/math/arith"
	"github.com/pkg/errors"
)

// Ciphertext is a Paillier ciphertext c ∈ [0, n²) tagged with the identifier of the
// public key that produced it.
type Ciphertext struct {
	c     *saferith.Nat
	keyID []byte
}

// NewCiphertext tags the raw integer c as a ciphertext under pk.
func NewCiphertext(pk *PublicKey, c *big.Int) (*Ciphertext, error) {
	if c == nil {
		return nil, ErrNilCiphertext
	}
	if !pk.nSquared.Contains(c) {
		return nil, errors.WithMessage(arith.ErrDomain, "paillier: ciphertext must lie in [0, n²)")
	}
	return &Ciphertext{
		c:     new(saferith.Nat).SetBig(c, pk.nSquared.BitLen()),
		keyID: pk.id,
	}, nil
}

// Big returns a copy of the ciphertext value.
func (ct *Ciphertext) Big() *big.Int {
	return ct.c.Big()
}

// KeyID returns the identifier of the key that produced ct.
func (ct *Ciphertext) KeyID() []byte {
	return bytes.Clone(ct.keyID)
}

// Equal check whether ct ≡ other (mod n²) under the same key.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return bytes.Equal(ct.keyID, other.keyID) && ct.c.Big().Cmp(other.c.Big()) == 0
}

// Clone returns a deep copy of ct.
func (ct *Ciphertext) Clone() *Ciphertext {
	return &Ciphertext{
		c:     new(saferith.Nat).SetNat(ct.c),
		keyID: bytes.Clone(ct.keyID),
	}
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (ct *Ciphertext) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(ct.c.Bytes())
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (*Ciphertext) Domain() string {
	return "Paillier Ciphertext"
}
