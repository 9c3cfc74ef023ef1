package keystore

type InMemoryKeyAccessor struct {
	label string
	ks    *InMemoryKeystore
}

func NewInMemoryKeyAccessor(label string, ks *InMemoryKeystore) *InMemoryKeyAccessor {
	return &InMemoryKeyAccessor{label: label, ks: ks}
}

func (ka *InMemoryKeyAccessor) Import(ski string, key []byte) error {
	return ka.ks.Import(ka.label, ski, key)
}

func (ka *InMemoryKeyAccessor) Get() ([]byte, error) {
	_, key, err := ka.ks.Get(ka.label)
	return key, err
}

func (ka *InMemoryKeyAccessor) Delete() error {
	return ka.ks.Delete(ka.label)
}
