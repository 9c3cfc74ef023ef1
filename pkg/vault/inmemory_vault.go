package vault

import (
	"bytes"
	"errors"
	"sync"

	"github.com/mr-shifu/paillier-lib/pkg/common/vault"
)

var (
	ErrKeyNotFound = errors.New("vault: key not found")
	ErrEmptySKI    = errors.New("vault: empty key identifier")
)

var _ vault.Vault = (*InMemoryVault)(nil)

// InMemoryVault keeps encoded keys in process memory. Keys are copied on the way in and
// on the way out so callers cannot alias the stored bytes.
type InMemoryVault struct {
	lock sync.RWMutex
	keys map[string][]byte
}

func NewInMemoryVault() *InMemoryVault {
	return &InMemoryVault{
		keys: make(map[string][]byte),
	}
}

func (store *InMemoryVault) Import(ski string, key []byte) error {
	if ski == "" {
		return ErrEmptySKI
	}
	store.lock.Lock()
	defer store.lock.Unlock()

	store.keys[ski] = bytes.Clone(key)
	return nil
}

func (store *InMemoryVault) Get(ski string) ([]byte, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	key, ok := store.keys[ski]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return bytes.Clone(key), nil
}

func (store *InMemoryVault) Delete(ski string) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	if _, ok := store.keys[ski]; !ok {
		return ErrKeyNotFound
	}
	delete(store.keys, ski)
	return nil
}
