package paillierkey

import (
	"context"
	"io"
	"math/big"

	"github.com/google/uuid"
	"github.com/mr-shifu/paillier-lib/core/math/sample"
	"github.com/mr-shifu/paillier-lib/core/paillier"
	"github.com/mr-shifu/paillier-lib/lib/logging"
	"github.com/mr-shifu/paillier-lib/lib/params"
	"github.com/mr-shifu/paillier-lib/pkg/common/keystore"
	"github.com/pkg/errors"
)

// KeyManager generates Paillier keys, keeps them in a keystore under a label and runs
// the scheme's operations with them.
type KeyManager struct {
	ks   keystore.Keystore
	rand io.Reader
	log  *logging.Logger
}

// NewKeyManager returns a manager storing keys in ks. A nil rand uses crypto/rand and a
// nil log discards everything. rand is serialized, so the manager is safe for concurrent use.
func NewKeyManager(ks keystore.Keystore, rand io.Reader, log *logging.Logger) *KeyManager {
	if log == nil {
		log = logging.Discard()
	}
	return &KeyManager{ks: ks, rand: sample.Locked(rand), log: log.With("paillierkey")}
}

// GenerateKey creates a key pair with primes of bits bits and stores it under label.
// An empty label is replaced by a random UUID; bits ≤ 0 selects params.DefaultBits.
func (mgr *KeyManager) GenerateKey(label string, bits int) (*PaillierKey, string, error) {
	return mgr.GenerateKeyContext(context.Background(), label, bits)
}

// GenerateKeyContext is GenerateKey bounded by ctx.
func (mgr *KeyManager) GenerateKeyContext(ctx context.Context, label string, bits int) (*PaillierKey, string, error) {
	if label == "" {
		label = uuid.New().String()
	}
	if bits <= 0 {
		bits = params.DefaultBits
	}

	kp, err := paillier.GenerateKeyContext(ctx, mgr.rand, bits)
	if err != nil {
		mgr.log.Err(err)
		return nil, "", err
	}
	key := NewPaillierKey(kp.PublicKey(), kp.SecretKey())
	if err := mgr.store(label, key); err != nil {
		return nil, "", err
	}
	mgr.log.Info("generated %d-bit key %s under label %s", bits, key.SKIString(), label)
	return key, label, nil
}

// ImportKey decodes a key produced by PaillierKey.Bytes and stores it under label.
func (mgr *KeyManager) ImportKey(label string, data []byte) (*PaillierKey, error) {
	key, err := fromBytes(data)
	if err != nil {
		mgr.log.Err(err)
		return nil, err
	}
	if err := mgr.store(label, key); err != nil {
		return nil, err
	}
	mgr.log.Info("imported key %s under label %s", key.SKIString(), label)
	return key, nil
}

// GetKey returns the key stored under label.
func (mgr *KeyManager) GetKey(label string) (*PaillierKey, error) {
	data, err := mgr.ks.KeyAccessor(label).Get()
	if err != nil {
		return nil, err
	}
	return fromBytes(data)
}

// DeleteKey removes the key stored under label.
func (mgr *KeyManager) DeleteKey(label string) error {
	if err := mgr.ks.KeyAccessor(label).Delete(); err != nil {
		return err
	}
	mgr.log.Debug("deleted label %s", label)
	return nil
}

// Labels returns every label that refers to a stored key.
func (mgr *KeyManager) Labels() []string {
	return mgr.ks.Labels()
}

// Encrypt encrypts m under the public part of the key stored under label.
func (mgr *KeyManager) Encrypt(label string, m *big.Int) (*paillier.Ciphertext, error) {
	key, err := mgr.GetKey(label)
	if err != nil {
		return nil, err
	}
	ct, _, err := key.Public().Enc(mgr.rand, m)
	return ct, err
}

// Decrypt decrypts ct with the key stored under label, which must be private.
func (mgr *KeyManager) Decrypt(label string, ct *paillier.Ciphertext) (*big.Int, error) {
	key, err := mgr.GetKey(label)
	if err != nil {
		return nil, err
	}
	return key.Decrypt(ct)
}

// Add returns the homomorphic sum of a and b under the key stored under label.
func (mgr *KeyManager) Add(label string, a, b *paillier.Ciphertext) (*paillier.Ciphertext, error) {
	key, err := mgr.GetKey(label)
	if err != nil {
		return nil, err
	}
	return key.Public().Add(a, b)
}

// AddConstant returns an encryption of a + k under the key stored under label.
func (mgr *KeyManager) AddConstant(label string, a *paillier.Ciphertext, k *big.Int) (*paillier.Ciphertext, error) {
	key, err := mgr.GetKey(label)
	if err != nil {
		return nil, err
	}
	return key.Public().AddConstant(a, k)
}

// MulConstant returns an encryption of a⋅k under the key stored under label.
func (mgr *KeyManager) MulConstant(label string, a *paillier.Ciphertext, k *big.Int) (*paillier.Ciphertext, error) {
	key, err := mgr.GetKey(label)
	if err != nil {
		return nil, err
	}
	return key.Public().MulConstant(a, k)
}

func (mgr *KeyManager) store(label string, key *PaillierKey) error {
	data, err := key.Bytes()
	if err != nil {
		return errors.WithMessage(err, "paillierkey: failed to encode key")
	}
	// public and private encodings of the same key are held apart
	id := key.SKIString()
	if !key.Private() {
		id += ".pub"
	}
	if err := mgr.ks.KeyAccessor(label).Import(id, data); err != nil {
		mgr.log.Error("failed to store key %s under label %s: %v", id, label, err)
		return err
	}
	return nil
}
