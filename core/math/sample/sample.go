package sample

import (
	cryptorand "crypto/rand"
	"errors"
	"io"
	"math/big"
	"sync"

	"github.com/cronokirby/saferith"
	pkgerrors "github.com/pkg/errors"
)

var (
	ErrIntervalTooSmall = errors.New("sample: interval [1, n-1] is empty")
	ErrBitLength        = errors.New("sample: bit length too small")
)

func reader(rand io.Reader) io.Reader {
	if rand == nil {
		return cryptorand.Reader
	}
	return rand
}

// IntervalOpen returns a uniform integer in [1, n-1]. n must be at least 2.
func IntervalOpen(rand io.Reader, n *big.Int) (*big.Int, error) {
	if n.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrIntervalTooSmall
	}
	bound := new(big.Int).Sub(n, big.NewInt(1))
	r, err := cryptorand.Int(reader(rand), bound)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "sample: failed to read randomness")
	}
	return r.Add(r, big.NewInt(1)), nil
}

// UnitModN returns a uniform r ∈ [1, n-1] with gcd(r, n) = 1, resampling until one is found.
func UnitModN(rand io.Reader, n *saferith.Modulus) (*saferith.Nat, error) {
	nBig := n.Big()
	for {
		r, err := IntervalOpen(rand, nBig)
		if err != nil {
			return nil, err
		}
		nat := new(saferith.Nat).SetBig(r, n.BitLen())
		if nat.IsUnit(n) == 1 {
			return nat, nil
		}
	}
}

// Candidate returns a uniform bits-bit integer whose top and bottom bits are set,
// so that it is odd and has exactly the requested bit length.
func Candidate(rand io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrBitLength
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(reader(rand), buf); err != nil {
		return nil, pkgerrors.WithMessage(err, "sample: failed to read randomness")
	}
	// clear the excess high bits of the leading byte
	if excess := len(buf)*8 - bits; excess > 0 {
		buf[0] &= byte(0xff) >> excess
	}

	c := new(big.Int).SetBytes(buf)
	c.SetBit(c, bits-1, 1)
	c.SetBit(c, 0, 1)
	return c, nil
}

type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

// Locked returns a reader that serializes reads from r, so one source can be shared
// by concurrent callers. A nil r stays nil and falls back to crypto/rand.
func Locked(r io.Reader) io.Reader {
	if r == nil {
		return nil
	}
	if _, ok := r.(*lockedReader); ok {
		return r
	}
	return &lockedReader{r: r}
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}
