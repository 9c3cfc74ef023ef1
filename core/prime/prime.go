package prime

import (
	"context"
	"io"
	"math/big"

	"github.com/mr-shifu/paillier-lib/core/math/arith"
	"github.com/mr-shifu/paillier-lib/core/math/sample"
	"github.com/mr-shifu/paillier-lib/lib/params"
	"github.com/pkg/errors"
)

var ErrBitLength = errors.New("prime: bit length must be at least 2")

// Rounds returns the number of witnesses tested for n: max(128, log₂(n)).
func Rounds(n *big.Int) int {
	if bits := n.BitLen(); bits > params.MinRounds {
		return bits
	}
	return params.MinRounds
}

// IsProbablyPrime reports whether n passes Rounds(n) rounds of the witness test.
//
// Each round draws a ∈ [1, n-1] and passes when 1 occurs among the intermediate
// results of the square-and-multiply evaluation of aⁿ⁻¹ (mod n). Every prime passes every
// round; n is declared probably prime only if all rounds pass.
func IsProbablyPrime(rand io.Reader, n *big.Int) (bool, error) {
	return IsProbablyPrimeRounds(rand, n, Rounds(n))
}

// IsProbablyPrimeRounds is IsProbablyPrime with an explicit number of rounds.
// params.LegacyRounds stops after the first witness.
func IsProbablyPrimeRounds(rand io.Reader, n *big.Int, rounds int) (bool, error) {
	if n.Cmp(big.NewInt(2)) < 0 {
		return false, nil
	}
	if rounds < 1 {
		rounds = 1
	}

	one := big.NewInt(1)
	exponent := new(big.Int).Sub(n, one)
	for i := 0; i < rounds; i++ {
		a, err := sample.IntervalOpen(rand, n)
		if err != nil {
			return false, errors.WithMessage(err, "prime: failed to sample witness")
		}
		trace, err := arith.NewTrace(a, exponent, n)
		if err != nil {
			return false, err
		}
		if !trace.Contains(one) {
			return false, nil
		}
	}
	return true, nil
}

// Generate returns a probable prime of exactly bits bits.
func Generate(rand io.Reader, bits int) (*big.Int, error) {
	return GenerateContext(context.Background(), rand, bits)
}

// GenerateContext is Generate bounded by ctx. Candidates are drawn until one is accepted
// or ctx is done.
func GenerateContext(ctx context.Context, rand io.Reader, bits int) (*big.Int, error) {
	if bits < params.MinPrimeBits {
		return nil, ErrBitLength
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate, err := sample.Candidate(rand, bits)
		if err != nil {
			return nil, errors.WithMessage(err, "prime: failed to sample candidate")
		}
		ok, err := IsProbablyPrime(rand, candidate)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}
}
