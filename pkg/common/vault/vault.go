package vault

// Vault stores encoded keys by their subject key identifier.
type Vault interface {
	Import(ski string, key []byte) error
	Get(ski string) ([]byte, error)
	Delete(ski string) error
}
