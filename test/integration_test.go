package test

import (
	"testing"

	"github.com/Davincible/galois/pkg/gf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldUnderTest pairs a field with the element set on which its
// table-backed operations are defined. For the fixed-generator prime field
// that set is the subgroup enumerated by the generator; for the other two
// it is the whole field.
type fieldUnderTest struct {
	name     string
	field    gf.Arith
	elements []uint16
}

func allFields(t *testing.T) []fieldUnderTest {
	t.Helper()

	var fields []fieldUnderTest

	pf := gf.NewPrimeField(13)
	fields = append(fields, fieldUnderTest{
		name:     "prime GF(13)",
		field:    pf,
		elements: generatorCycle(pf),
	})

	cf, err := gf.NewCheckedPrimeField(23)
	require.NoError(t, err)
	fields = append(fields, fieldUnderTest{
		name:     "checked GF(23)",
		field:    cf,
		elements: fullRange(23),
	})

	fields = append(fields, fieldUnderTest{
		name:     "binary GF(256)",
		field:    gf.NewBinaryField().Arith(),
		elements: fullRange(256),
	})

	return fields
}

func fullRange(order uint16) []uint16 {
	elems := make([]uint16, 0, order)
	for x := uint16(1); x < order; x++ {
		elems = append(elems, x)
	}
	return elems
}

func generatorCycle(f gf.Arith) []uint16 {
	seen := make(map[uint16]bool)
	var cycle []uint16
	x := uint16(1)
	for !seen[x] {
		seen[x] = true
		cycle = append(cycle, x)
		x = f.SlowMul(x, f.Generator()%f.Order())
	}
	return cycle
}

// TestFieldLaws exercises the shared algebraic laws once against every
// field representation through the common arithmetic interface.
func TestFieldLaws(t *testing.T) {
	for _, tc := range allFields(t) {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.field
			order := f.Order()

			for _, x := range tc.elements {
				// Identities.
				assert.Equal(t, x, f.Add(x, 0))
				assert.Equal(t, x, f.Mul(x, 1))
				assert.Equal(t, uint16(0), f.Add(x, f.Sub(0, x)))

				// Multiplicative inverse.
				assert.Equal(t, uint16(1), f.Mul(x, f.Inv(x)), "inv(%d)", x)

				// Power consistency.
				assert.Equal(t, f.Mul(x, x), f.Pow(x, 2), "pow(%d, 2)", x)
				assert.Equal(t, uint16(1), f.Pow(x, 0), "pow(%d, 0)", x)

				for _, y := range tc.elements {
					// Closure and fast/slow agreement.
					prod := f.Mul(x, y)
					require.Less(t, prod, order)
					require.Equal(t, f.SlowMul(x, y), prod, "mul(%d, %d)", x, y)

					// Division round trip, regardless of which division
					// algorithm the representation uses.
					require.Equal(t, x, f.Mul(f.Div(x, y), y), "div(%d, %d)", x, y)
				}

				// Zero-division convention.
				assert.Equal(t, uint16(0), f.Div(x, 0))
				assert.Equal(t, uint16(0), f.Div(0, x))
			}
		})
	}
}

// TestPrimeFieldDivisionAgreesWithCheckedField cross-checks the O(divisor)
// lifting division of the fixed-generator field against the log-based
// division of the validated field over the same characteristic.
func TestPrimeFieldDivisionAgreesWithCheckedField(t *testing.T) {
	const p = 13

	pf := gf.NewPrimeField(p)
	cf, err := gf.NewCheckedPrimeField(p)
	require.NoError(t, err)

	for x := uint16(0); x < p; x++ {
		for y := uint16(0); y < p; y++ {
			require.Equal(t, cf.Div(x, y), pf.Div(x, y), "div(%d, %d)", x, y)
		}
	}
}

// TestDeterminism verifies that identical construction parameters yield
// identical behavior, with no hidden randomness in table building.
func TestDeterminism(t *testing.T) {
	a := gf.NewBinaryField()
	b := gf.NewBinaryField()
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			require.Equal(t, a.Mul(byte(x), byte(y)), b.Mul(byte(x), byte(y)))
		}
	}

	ca, err := gf.NewCheckedPrimeField(23)
	require.NoError(t, err)
	cb, err := gf.NewCheckedPrimeField(23)
	require.NoError(t, err)
	for x := uint16(0); x < 23; x++ {
		for y := uint16(0); y < 23; y++ {
			require.Equal(t, ca.Mul(x, y), cb.Mul(x, y))
			require.Equal(t, ca.Div(x, y), cb.Div(x, y))
		}
	}
}

// TestConcurrentReads exercises read-only use of one field instance from
// multiple goroutines; tables are immutable after construction so no
// synchronization is required.
func TestConcurrentReads(t *testing.T) {
	f := gf.NewBinaryField()

	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for x := 1; x < 256; x++ {
				for y := 1; y < 256; y++ {
					if f.Mul(byte(x), byte(y)) != f.SlowMul(byte(x), byte(y)) {
						t.Errorf("mul(%#02x, %#02x) mismatch", x, y)
						return
					}
				}
			}
		}()
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
