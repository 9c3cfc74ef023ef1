package keystore

// Keystore maps human readable labels to keys held in a vault.
type Keystore interface {
	// Import stores key under ski and binds label to it.
	Import(label, ski string, key []byte) error

	// Get returns the SKI and the encoded key bound to label.
	Get(label string) (string, []byte, error)

	// Delete removes label and the key it refers to.
	Delete(label string) error

	// Labels returns every bound label.
	Labels() []string

	KeyAccessor(label string) KeyAccessor
}

// KeyAccessor is a Keystore view restricted to a single label.
type KeyAccessor interface {
	Import(ski string, key []byte) error
	Get() ([]byte, error)
	Delete() error
}
