package arith

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXGCD_Bezout(t *testing.T) {
	for a := int64(0); a < 60; a++ {
		for b := int64(0); b < 60; b++ {
			if a == 0 && b == 0 {
				continue
			}
			A, B := big.NewInt(a), big.NewInt(b)
			g, x, y := XGCD(A, B)

			expected := new(big.Int).GCD(nil, nil, A, B)
			assert.Equal(t, 0, g.Cmp(expected), "gcd(%d, %d)", a, b)

			lhs := new(big.Int).Add(new(big.Int).Mul(A, x), new(big.Int).Mul(B, y))
			assert.Equal(t, 0, lhs.Cmp(g), "%d⋅%s + %d⋅%s != %s", a, x, b, y, g)
		}
	}
}

func TestXGCD_BaseCase(t *testing.T) {
	g, x, y := XGCD(big.NewInt(0), big.NewInt(17))
	assert.Equal(t, int64(17), g.Int64())
	assert.Equal(t, int64(0), x.Int64())
	assert.Equal(t, int64(1), y.Int64())
}

func TestXGCD_RecursiveCoefficients(t *testing.T) {
	// xgcd(3, 7) = (1, -2, 1) under the recursive definition
	g, x, y := XGCD(big.NewInt(3), big.NewInt(7))
	assert.Equal(t, int64(1), g.Int64())
	assert.Equal(t, int64(-2), x.Int64())
	assert.Equal(t, int64(1), y.Int64())
}

func TestXGCD_Large(t *testing.T) {
	source := mrand.New(mrand.NewSource(7))
	for i := 0; i < 20; i++ {
		a := new(big.Int).Rand(source, new(big.Int).Lsh(big.NewInt(1), 1024))
		b := new(big.Int).Rand(source, new(big.Int).Lsh(big.NewInt(1), 1024))
		g, x, y := XGCD(a, b)

		lhs := new(big.Int).Add(new(big.Int).Mul(a, x), new(big.Int).Mul(b, y))
		require.Equal(t, 0, lhs.Cmp(g))
		require.Equal(t, 0, g.Cmp(new(big.Int).GCD(nil, nil, a, b)))
	}
}

func TestLCM(t *testing.T) {
	l, err := LCM(big.NewInt(210), big.NewInt(198))
	require.NoError(t, err)
	assert.Equal(t, int64(6930), l.Int64())

	l, err = LCM(big.NewInt(4), big.NewInt(6))
	require.NoError(t, err)
	assert.Equal(t, int64(12), l.Int64())

	_, err = LCM(big.NewInt(0), big.NewInt(6))
	assert.ErrorIs(t, err, ErrDomain)
}

func TestModInverse(t *testing.T) {
	m := big.NewInt(41989)
	for a := int64(1); a < 500; a++ {
		A := big.NewInt(a)
		inv, err := ModInverse(A, m)
		if new(big.Int).GCD(nil, nil, A, m).Cmp(big.NewInt(1)) != 0 {
			assert.ErrorIs(t, err, ErrNoInverse, "a = %d", a)
			continue
		}
		require.NoError(t, err)
		prod := new(big.Int).Mul(A, inv)
		assert.Equal(t, int64(1), prod.Mod(prod, m).Int64(), "a = %d", a)
		assert.True(t, inv.Sign() >= 0 && inv.Cmp(m) < 0)
	}
}

func TestModInverse_NoInverse(t *testing.T) {
	_, err := ModInverse(big.NewInt(12), big.NewInt(4))
	assert.ErrorIs(t, err, ErrNoInverse)

	_, err = ModInverse(big.NewInt(211), big.NewInt(211*199))
	assert.ErrorIs(t, err, ErrNoInverse)

	_, err = ModInverse(big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, ErrDomain)
}

func TestModInverse_NegativeOperand(t *testing.T) {
	inv, err := ModInverse(big.NewInt(-3), big.NewInt(7))
	require.NoError(t, err)
	// -3 ≡ 4 (mod 7) and 4⋅2 = 8 ≡ 1
	assert.Equal(t, int64(2), inv.Int64())
}

func TestTrace(t *testing.T) {
	base := big.NewInt(7)
	exponent := big.NewInt(0b101101)
	modulus := big.NewInt(1000003)

	trace, err := NewTrace(base, exponent, modulus)
	require.NoError(t, err)
	assert.Nil(t, trace.Value())

	var values []*big.Int
	for trace.Next() {
		values = append(values, trace.Value())
	}
	require.Len(t, values, exponent.BitLen())

	// every value is the power of the exponent prefix processed so far
	for i, v := range values {
		prefix := new(big.Int).Rsh(exponent, uint(exponent.BitLen()-1-i))
		expected := new(big.Int).Exp(base, prefix, modulus)
		assert.Equal(t, 0, v.Cmp(expected), "step %d", i)
	}

	// exhausted traces stay exhausted
	assert.False(t, trace.Next())
}

func TestTrace_ModulusOne(t *testing.T) {
	trace, err := NewTrace(big.NewInt(5), big.NewInt(1234), big.NewInt(1))
	require.NoError(t, err)

	require.True(t, trace.Next())
	assert.Equal(t, int64(0), trace.Value().Int64())
	assert.False(t, trace.Next())
}

func TestTrace_ZeroExponent(t *testing.T) {
	trace, err := NewTrace(big.NewInt(5), big.NewInt(0), big.NewInt(11))
	require.NoError(t, err)
	assert.False(t, trace.Next())
	assert.Nil(t, trace.Final())
}

func TestTrace_InvalidInput(t *testing.T) {
	_, err := NewTrace(big.NewInt(5), big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, ErrDomain)

	_, err = NewTrace(big.NewInt(5), big.NewInt(-3), big.NewInt(7))
	assert.ErrorIs(t, err, ErrDomain)
}

func TestTrace_FinalAndContains(t *testing.T) {
	n := big.NewInt(561)
	exponent := big.NewInt(560)

	trace, err := NewTrace(big.NewInt(2), exponent, n)
	require.NoError(t, err)
	assert.Equal(t, 0, trace.Final().Cmp(new(big.Int).Exp(big.NewInt(2), exponent, n)))

	trace, err = NewTrace(big.NewInt(2), exponent, n)
	require.NoError(t, err)
	assert.True(t, trace.Contains(big.NewInt(1)))

	// 3 divides 561, so no power of 3 is 1 (mod 561)
	trace, err = NewTrace(big.NewInt(3), exponent, n)
	require.NoError(t, err)
	assert.False(t, trace.Contains(big.NewInt(1)))
}

func TestExpTrace(t *testing.T) {
	final, sawOne, err := ExpTrace(big.NewInt(4), big.NewInt(12), big.NewInt(13))
	require.NoError(t, err)
	assert.Equal(t, int64(1), final.Int64())
	assert.True(t, sawOne)

	final, sawOne, err = ExpTrace(big.NewInt(2), big.NewInt(10), big.NewInt(1000))
	require.NoError(t, err)
	assert.Equal(t, int64(24), final.Int64())
	assert.False(t, sawOne)
}

func TestModulus_ExpI(t *testing.T) {
	m, err := ModulusFromBig(big.NewInt(41989 * 41989))
	require.NoError(t, err)

	x := big.NewInt(41990)
	pos, err := m.ExpBig(x, big.NewInt(5))
	require.NoError(t, err)
	neg, err := m.ExpBig(x, big.NewInt(-5))
	require.NoError(t, err)

	prod := new(saferith.Nat).ModMul(pos, neg, m.Modulus)
	assert.Equal(t, int64(1), prod.Big().Int64())

	// 41989 shares every factor with the modulus
	_, err = m.ExpBig(big.NewInt(41989), big.NewInt(-1))
	assert.ErrorIs(t, err, ErrNonCoprime)
}

func TestModulus_Binary(t *testing.T) {
	m, err := ModulusFromBig(big.NewInt(1000003))
	require.NoError(t, err)

	data, err := m.MarshalBinary()
	require.NoError(t, err)

	decoded := new(Modulus)
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.True(t, m.Equal(decoded))

	_, err = ModulusFromBig(big.NewInt(0))
	assert.ErrorIs(t, err, ErrDomain)
}

func TestModulus_NilOperands(t *testing.T) {
	m, err := ModulusFromBig(big.NewInt(1000003))
	require.NoError(t, err)

	assert.False(t, m.Contains(nil))
	assert.False(t, m.Contains(big.NewInt(-1)))
	assert.True(t, m.Contains(big.NewInt(0)))

	_, err = m.ExpBig(nil, big.NewInt(2))
	assert.ErrorIs(t, err, ErrDomain)
	_, err = m.ExpBig(big.NewInt(2), nil)
	assert.ErrorIs(t, err, ErrDomain)
}
