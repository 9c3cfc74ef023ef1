package paillierkey

import (
	"encoding/hex"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/mr-shifu/paillier-lib/core/paillier"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

var (
	ErrInvalidKey    = errors.New("paillierkey: secret key does not match public key")
	ErrPublicKeyOnly = errors.New("paillierkey: key has no secret part")
	ErrEmptyKeyData  = errors.New("paillierkey: empty key data")
)

// PaillierKey is a public key, optionally paired with its secret key.
type PaillierKey struct {
	secretKey *paillier.SecretKey
	publicKey *paillier.PublicKey
}

type rawKey struct {
	Public []byte
	Secret []byte `cbor:",omitempty"`
}

// NewPaillierKey wraps pk and sk. sk may be nil for a public-only key.
func NewPaillierKey(pk *paillier.PublicKey, sk *paillier.SecretKey) *PaillierKey {
	return &PaillierKey{secretKey: sk, publicKey: pk}
}

// Bytes returns the CBOR encoding of the public key and, for private keys, the secret key.
func (k *PaillierKey) Bytes() ([]byte, error) {
	pb, err := k.publicKey.MarshalBinary()
	if err != nil {
		return nil, err
	}
	raw := rawKey{Public: pb}
	if k.secretKey != nil {
		if raw.Secret, err = k.secretKey.MarshalBinary(); err != nil {
			return nil, err
		}
	}
	return cbor.Marshal(raw)
}

// SKI returns the subject key identifier, the SHA3-256 digest of n.
func (k *PaillierKey) SKI() []byte {
	digest := sha3.Sum256(k.publicKey.N().Bytes())
	return digest[:]
}

func (k *PaillierKey) SKIString() string {
	return hex.EncodeToString(k.SKI())
}

// Private returns true if the key contains a secret key.
func (k *PaillierKey) Private() bool {
	return k.secretKey != nil
}

// PublicKey returns the public part of the key.
func (k *PaillierKey) PublicKey() *PaillierKey {
	return &PaillierKey{publicKey: k.publicKey}
}

func (k *PaillierKey) Public() *paillier.PublicKey {
	return k.publicKey
}

func (k *PaillierKey) Secret() *paillier.SecretKey {
	return k.secretKey
}

// Decrypt returns the plaintext of ct. Public-only keys return ErrPublicKeyOnly.
func (k *PaillierKey) Decrypt(ct *paillier.Ciphertext) (*big.Int, error) {
	if k.secretKey == nil {
		return nil, ErrPublicKeyOnly
	}
	return k.secretKey.Dec(k.publicKey, ct)
}

// fromBytes decodes a key produced by Bytes and checks that λ⋅μ ≡ 1 (mod n).
func fromBytes(data []byte) (*PaillierKey, error) {
	if len(data) == 0 {
		return nil, ErrEmptyKeyData
	}
	var raw rawKey
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, errors.WithMessage(err, "paillierkey: failed to decode key")
	}

	pk := new(paillier.PublicKey)
	if err := pk.UnmarshalBinary(raw.Public); err != nil {
		return nil, errors.WithMessage(err, "paillierkey: failed to decode public key")
	}
	if len(raw.Secret) == 0 {
		return NewPaillierKey(pk, nil), nil
	}

	sk := new(paillier.SecretKey)
	if err := sk.UnmarshalBinary(raw.Secret); err != nil {
		return nil, errors.WithMessage(err, "paillierkey: failed to decode secret key")
	}
	check := new(big.Int).Mul(sk.Lambda(), sk.Mu())
	if check.Mod(check, pk.N()).Cmp(big.NewInt(1)) != 0 {
		return nil, ErrInvalidKey
	}
	return NewPaillierKey(pk, sk), nil
}
