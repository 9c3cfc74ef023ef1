package paillier

import (
	"errors"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"
)

var ErrEmptyEncodedData = errors.New("paillier: encoded key has empty data")

type rawPublicKey struct {
	N []byte
}

type rawSecretKey struct {
	Lambda []byte
	Mu     []byte
}

type rawCiphertext struct {
	KeyID []byte
	C     []byte
}

// MarshalBinary encodes the modulus n. Nothing secret is written.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(rawPublicKey{N: pk.nBig.Bytes()})
}

func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	var raw rawPublicKey
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.N) == 0 {
		return ErrEmptyEncodedData
	}
	decoded, err := NewPublicKey(new(big.Int).SetBytes(raw.N))
	if err != nil {
		return err
	}
	*pk = *decoded
	return nil
}

// MarshalBinary encodes λ and μ only; the public key is encoded separately.
func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(rawSecretKey{
		Lambda: sk.lambda.Big().Bytes(),
		Mu:     sk.mu.Big().Bytes(),
	})
}

func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	var raw rawSecretKey
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Lambda) == 0 || len(raw.Mu) == 0 {
		return ErrEmptyEncodedData
	}
	*sk = *newSecretKey(new(big.Int).SetBytes(raw.Lambda), new(big.Int).SetBytes(raw.Mu))
	return nil
}

// MarshalBinary encodes the ciphertext value and the identifier of its key.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(rawCiphertext{
		KeyID: ct.keyID,
		C:     ct.c.Big().Bytes(),
	})
}

func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	var raw rawCiphertext
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.KeyID) == 0 {
		return ErrEmptyEncodedData
	}
	ct.keyID = raw.KeyID
	ct.c = new(saferith.Nat).SetBytes(raw.C)
	return nil
}
