package paillier

import (
	"io"
	"math/big"
)

// The scalar functions operate on untagged integers for callers that apply the
// scheme element-wise. Inputs are tagged under pk before use, so range checks still apply.

// EncryptScalar returns the encryption of m under pk as a plain integer.
func EncryptScalar(rand io.Reader, pk *PublicKey, m *big.Int) (*big.Int, error) {
	ct, _, err := pk.Enc(rand, m)
	if err != nil {
		return nil, err
	}
	return ct.Big(), nil
}

// DecryptScalar returns the plaintext of the integer ciphertext c.
func DecryptScalar(pk *PublicKey, sk *SecretKey, c *big.Int) (*big.Int, error) {
	ct, err := NewCiphertext(pk, c)
	if err != nil {
		return nil, err
	}
	return sk.Dec(pk, ct)
}

// AddScalar returns the homomorphic sum of the integer ciphertexts a and b.
func AddScalar(pk *PublicKey, a, b *big.Int) (*big.Int, error) {
	cta, err := NewCiphertext(pk, a)
	if err != nil {
		return nil, err
	}
	ctb, err := NewCiphertext(pk, b)
	if err != nil {
		return nil, err
	}
	sum, err := pk.Add(cta, ctb)
	if err != nil {
		return nil, err
	}
	return sum.Big(), nil
}

// AddConstantScalar returns an integer ciphertext of a + k for the integer ciphertext c of a.
func AddConstantScalar(pk *PublicKey, c, k *big.Int) (*big.Int, error) {
	ct, err := NewCiphertext(pk, c)
	if err != nil {
		return nil, err
	}
	out, err := pk.AddConstant(ct, k)
	if err != nil {
		return nil, err
	}
	return out.Big(), nil
}

// MulConstantScalar returns an integer ciphertext of a⋅k for the integer ciphertext c of a.
func MulConstantScalar(pk *PublicKey, c, k *big.Int) (*big.Int, error) {
	ct, err := NewCiphertext(pk, c)
	if err != nil {
		return nil, err
	}
	out, err := pk.MulConstant(ct, k)
	if err != nil {
		return nil, err
	}
	return out.Big(), nil
}
