package arith

import (
	"math/big"

	"github.com/pkg/errors"
)

// Trace walks the left-to-right square-and-multiply computation of baseᵉˣᵖᵒⁿᵉⁿᵗ (mod modulus),
// exposing the accumulated result after every bit of the exponent.
//
// A Trace is consumed once: after Next returns false it stays exhausted.
// A modulus of one yields the single value 0.
type Trace struct {
	base     *big.Int
	exponent *big.Int
	modulus  *big.Int

	// bit is the index of the next exponent bit to process.
	bit   int
	value *big.Int
	unit  bool
}

// NewTrace prepares a trace of baseᵉˣᵖᵒⁿᵉⁿᵗ (mod modulus).
// The modulus must be positive and the exponent non-negative.
func NewTrace(base, exponent, modulus *big.Int) (*Trace, error) {
	if modulus.Sign() <= 0 {
		return nil, errors.WithMessage(ErrDomain, "arith: trace modulus must be positive")
	}
	if exponent.Sign() < 0 {
		return nil, errors.WithMessage(ErrDomain, "arith: trace exponent must be non-negative")
	}

	t := &Trace{
		modulus:  new(big.Int).Set(modulus),
		exponent: new(big.Int).Set(exponent),
		bit:      exponent.BitLen() - 1,
	}
	if modulus.Cmp(big.NewInt(1)) == 0 {
		t.unit = true
		return t, nil
	}
	t.base = new(big.Int).Mod(base, modulus)
	return t, nil
}

// Next advances the trace by one exponent bit. It returns false once every bit was processed.
func (t *Trace) Next() bool {
	if t.unit {
		t.unit = false
		t.bit = -1
		t.value = new(big.Int)
		return true
	}
	if t.bit < 0 {
		return false
	}

	if t.value == nil {
		t.value = big.NewInt(1)
	}
	// res = res² (mod m)
	t.value.Mul(t.value, t.value)
	t.value.Mod(t.value, t.modulus)
	// res = res⋅base (mod m) when the bit is set
	if t.exponent.Bit(t.bit) == 1 {
		t.value.Mul(t.value, t.base)
		t.value.Mod(t.value, t.modulus)
	}
	t.bit--

	return true
}

// Value returns a copy of the result after the last processed bit, or nil before the first call to Next.
func (t *Trace) Value() *big.Int {
	if t.value == nil {
		return nil
	}
	return new(big.Int).Set(t.value)
}

// Contains advances the trace until v is produced and reports whether it was.
func (t *Trace) Contains(v *big.Int) bool {
	for t.Next() {
		if t.value.Cmp(v) == 0 {
			return true
		}
	}
	return false
}

// Final exhausts the trace and returns the last value, which is baseᵉˣᵖᵒⁿᵉⁿᵗ (mod modulus).
// A zero exponent produces no values and Final returns nil.
func (t *Trace) Final() *big.Int {
	for t.Next() {
	}
	return t.Value()
}

// ExpTrace evaluates baseᵉˣᵖᵒⁿᵉⁿᵗ (mod modulus) eagerly and reports whether 1 appeared
// among the intermediate results.
func ExpTrace(base, exponent, modulus *big.Int) (final *big.Int, sawOne bool, err error) {
	t, err := NewTrace(base, exponent, modulus)
	if err != nil {
		return nil, false, err
	}
	one := big.NewInt(1)
	for t.Next() {
		if t.value.Cmp(one) == 0 {
			sawOne = true
		}
	}
	final = t.Value()
	if final == nil {
		// x⁰ = 1 (mod m) for every m > 1
		final = big.NewInt(1)
	}
	return final, sawOne, nil
}
