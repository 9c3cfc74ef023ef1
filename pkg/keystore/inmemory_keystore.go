package keystore

import (
	"errors"
	"sort"
	"sync"

	"github.com/mr-shifu/paillier-lib/pkg/common/keystore"
	"github.com/mr-shifu/paillier-lib/pkg/common/vault"
)

var (
	ErrKeyNotFound = errors.New("keystore: key not found")
	ErrEmptyLabel  = errors.New("keystore: empty label")
	ErrLabelInUse  = errors.New("keystore: label already bound to another key")
)

var _ keystore.Keystore = (*InMemoryKeystore)(nil)

type InMemoryKeystore struct {
	lock sync.RWMutex
	v    vault.Vault

	// labels maps a label to the SKI of the key it refers to.
	labels map[string]string
}

func NewInMemoryKeystore(v vault.Vault) *InMemoryKeystore {
	return &InMemoryKeystore{
		v:      v,
		labels: make(map[string]string),
	}
}

func (ks *InMemoryKeystore) Import(label, ski string, key []byte) error {
	if label == "" {
		return ErrEmptyLabel
	}
	ks.lock.Lock()
	defer ks.lock.Unlock()

	if bound, ok := ks.labels[label]; ok && bound != ski {
		return ErrLabelInUse
	}

	// store key to vault
	if err := ks.v.Import(ski, key); err != nil {
		return err
	}
	ks.labels[label] = ski
	return nil
}

func (ks *InMemoryKeystore) Get(label string) (string, []byte, error) {
	ks.lock.RLock()
	defer ks.lock.RUnlock()

	ski, ok := ks.labels[label]
	if !ok {
		return "", nil, ErrKeyNotFound
	}
	key, err := ks.v.Get(ski)
	if err != nil {
		return "", nil, err
	}
	return ski, key, nil
}

func (ks *InMemoryKeystore) Delete(label string) error {
	ks.lock.Lock()
	defer ks.lock.Unlock()

	ski, ok := ks.labels[label]
	if !ok {
		return ErrKeyNotFound
	}
	delete(ks.labels, label)

	// the same key may be bound to other labels
	for _, other := range ks.labels {
		if other == ski {
			return nil
		}
	}
	return ks.v.Delete(ski)
}

func (ks *InMemoryKeystore) Labels() []string {
	ks.lock.RLock()
	defer ks.lock.RUnlock()

	labels := make([]string, 0, len(ks.labels))
	for label := range ks.labels {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func (ks *InMemoryKeystore) KeyAccessor(label string) keystore.KeyAccessor {
	return NewInMemoryKeyAccessor(label, ks)
}
