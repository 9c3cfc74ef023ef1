package arith

import (
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"
)

// Modulus wraps a saferith.Modulus with the exponentiations used by the Paillier engine.
type Modulus struct {
	*saferith.Modulus
}

// ModulusFromBig creates a Modulus from a positive integer.
func ModulusFromBig(n *big.Int) (*Modulus, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, errors.WithMessage(ErrDomain, "arith: modulus must be positive")
	}
	nat := new(saferith.Nat).SetBig(n, n.BitLen())
	return &Modulus{Modulus: saferith.ModulusFromNat(nat)}, nil
}

// Exp returns xᵉ (mod n).
func (n *Modulus) Exp(x, e *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Exp(x, e, n.Modulus)
}

// ExpI returns xᵉ (mod n) for a signed exponent.
// A negative exponent requires x to be a unit, otherwise ErrNonCoprime is returned.
func (n *Modulus) ExpI(x *saferith.Nat, e *saferith.Int) (*saferith.Nat, error) {
	if e.IsNegative() == 1 && x.IsUnit(n.Modulus) != 1 {
		return nil, ErrNonCoprime
	}
	return new(saferith.Nat).ExpI(x, e, n.Modulus), nil
}

// ExpBig returns xᵉ (mod n) for arbitrary signed big integers x and e.
func (n *Modulus) ExpBig(x, e *big.Int) (*saferith.Nat, error) {
	if x == nil || e == nil {
		return nil, errors.WithMessage(ErrDomain, "arith: nil operand")
	}
	base := n.Reduce(x)
	exp := new(saferith.Int).SetBig(e, e.BitLen())
	return n.ExpI(base, exp)
}

// Reduce returns x (mod n) as a Nat sized for n, for any sign of x.
func (n *Modulus) Reduce(x *big.Int) *saferith.Nat {
	r := new(big.Int).Mod(x, n.Big())
	return new(saferith.Nat).SetBig(r, n.BitLen())
}

// Contains reports whether 0 ≤ x < n. A nil x is never contained.
func (n *Modulus) Contains(x *big.Int) bool {
	return x != nil && x.Sign() >= 0 && x.Cmp(n.Big()) < 0
}

// Equal reports whether both moduli hold the same value.
func (n *Modulus) Equal(other *Modulus) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Big().Cmp(other.Big()) == 0
}

func (n *Modulus) MarshalBinary() ([]byte, error) {
	return n.Modulus.MarshalBinary()
}

func (n *Modulus) UnmarshalBinary(data []byte) error {
	m := new(saferith.Modulus)
	if err := m.UnmarshalBinary(data); err != nil {
		return errors.WithMessage(err, "arith: failed to decode modulus")
	}
	n.Modulus = m
	return nil
}
