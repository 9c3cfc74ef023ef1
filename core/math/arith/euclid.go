package arith

import (
	"math/big"

	"github.com/pkg/errors"
)

// XGCD returns g = gcd(a, b) together with Bézout coefficients x and y such that
//
//	a⋅x + b⋅y = g
//
// The coefficients are those of the recursive definition
// xgcd(0, b) = (b, 0, 1), xgcd(a, b) = (g, x' - ⌊b/a⌋⋅y', y') where (g, y', x') = xgcd(b mod a, a),
// computed here without recursion. g is non-negative whenever a and b are.
func XGCD(a, b *big.Int) (g, x, y *big.Int) {
	// rᵢ = sᵢ⋅b + tᵢ⋅a
	oldR, r := new(big.Int).Set(b), new(big.Int).Set(a)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q, rem := new(big.Int).DivMod(oldR, r, new(big.Int))
		oldR, r = r, rem
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}

	return oldR, oldT, oldS
}

// LCM returns the least common multiple a⋅b / gcd(a, b) of |a| and |b|.
// Both operands must be non-zero.
func LCM(a, b *big.Int) (*big.Int, error) {
	if a.Sign() == 0 || b.Sign() == 0 {
		return nil, errors.WithMessage(ErrDomain, "arith: lcm of zero")
	}
	absA := new(big.Int).Abs(a)
	absB := new(big.Int).Abs(b)
	g, _, _ := XGCD(absA, absB)

	l := new(big.Int).Mul(absA, absB)
	return l.Quo(l, g), nil
}

// ModInverse returns x ∈ [0, m) such that a⋅x ≡ 1 (mod m).
//
// ErrNoInverse is returned when gcd(a, m) ≠ 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, errors.WithMessage(ErrDomain, "arith: modulus must be positive")
	}
	reduced := new(big.Int).Mod(a, m)
	g, x, _ := XGCD(reduced, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNoInverse
	}
	return x.Mod(x, m), nil
}

// Coprime reports whether gcd(a, b) = 1.
func Coprime(a, b *big.Int) bool {
	g, _, _ := XGCD(new(big.Int).Abs(a), new(big.Int).Abs(b))
	return g.Cmp(big.NewInt(1)) == 0
}
