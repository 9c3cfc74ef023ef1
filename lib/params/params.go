package params

const (
	// DefaultBits is the bit length of each Paillier prime when none is requested.
	DefaultBits = 128

	// MinPrimeBits is the smallest bit length for which a candidate with both the top
	// and the bottom bit set is greater than one.
	MinPrimeBits = 2

	// MinRounds is the lower bound on witnesses tested by the primality oracle.
	MinRounds = 128

	// LegacyRounds reproduces a primality oracle that stops after its first witness.
	LegacyRounds = 1

	// KeyIDBytes is the length of a public key identifier.
	KeyIDBytes = 32

	// DefaultWorkers bounds element-wise fan-out when no worker count is configured.
	DefaultWorkers = 8
)
