package gf

// primeFieldGenerator is the fixed multiplicative generator assumed by
// PrimeField. It is never validated against the characteristic; 16 is a
// quadratic residue modulo every odd prime, so its powers enumerate a
// subgroup of the nonzero elements rather than all of them. Table-backed
// operations (Mul, Pow, Inv) are therefore only defined for elements of
// that subgroup, while Add, Sub, Div and SlowMul work on the whole field.
// CheckedPrimeField derives a generator instead of assuming one.
const primeFieldGenerator = 16

// PrimeField implements arithmetic over GF(p) for a caller-supplied prime
// characteristic, assuming (without verifying) the fixed generator above.
// The caller is responsible for the primality of p.
type PrimeField struct {
	order uint16
	exp   []uint16 // antilog table, doubled length for branchless lookup
	log   []uint16 // discrete log table; log[0] is never queried
}

// NewPrimeField builds the lookup tables for GF(p). Primality of p is the
// caller's responsibility and is not validated.
func NewPrimeField(p uint16) *PrimeField {
	f := &PrimeField{
		order: p,
		exp:   make([]uint16, int(p)<<1),
		log:   make([]uint16, p),
	}

	x := uint16(1)
	for i := uint16(0); i < p; i++ {
		f.exp[i] = x
		f.log[x] = i
		x = f.SlowMul(x, primeFieldGenerator)
	}
	// Extend the antilog table so that index sums up to 2(p-2) resolve
	// without a modulo reduction. The power sequence has period dividing
	// p-1 (Fermat), so exp[i] = exp[i-(p-1)] continues it exactly.
	for i := int(p); i < int(p)<<1; i++ {
		f.exp[i] = f.exp[i-int(p)+1]
	}

	return f
}

// Order returns the field characteristic p.
func (f *PrimeField) Order() uint16 {
	return f.order
}

// Generator returns the fixed generator value.
func (f *PrimeField) Generator() uint16 {
	return primeFieldGenerator
}

// Add returns (x + y) mod p.
func (f *PrimeField) Add(x, y uint16) uint16 {
	f.check(x, y)
	return uint16((uint32(x) + uint32(y)) % uint32(f.order))
}

// Sub returns (x - y) mod p. The borrow case goes through a signed
// intermediate; naive unsigned subtraction would wrap incorrectly.
func (f *PrimeField) Sub(x, y uint16) uint16 {
	f.check(x, y)
	if x >= y {
		return (x - y) % f.order
	}
	return uint16(int32(f.order) + (int32(x)-int32(y))%int32(f.order))
}

// Mul returns x * y via the lookup tables. Zero operands short-circuit,
// since zero has no logarithm.
func (f *PrimeField) Mul(x, y uint16) uint16 {
	f.check(x, y)
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// Div returns dividend / divisor, or 0 when either operand is zero.
//
// Unlike the other field types, division here does not use the discrete-log
// identity: the fixed generator is not guaranteed to cover the full
// multiplicative group, so the log tables cannot be trusted for arbitrary
// operands. Instead it lifts the dividend by multiples of p until the
// divisor divides it exactly, which is O(divisor) but correct for every
// element of the field.
func (f *PrimeField) Div(dividend, divisor uint16) uint16 {
	f.check(dividend, divisor)
	if divisor == 0 {
		return 0
	}
	if dividend == 0 {
		return 0
	}

	if dividend%divisor == 0 {
		return (dividend / divisor) % f.order
	}

	a := uint64(dividend)
	for i := uint16(1); i < divisor; i++ {
		a += uint64(f.order)
		if a%uint64(divisor) == 0 {
			return uint16((a / uint64(divisor)) % uint64(f.order))
		}
	}
	return 0
}

// Pow returns x raised to exponent.
func (f *PrimeField) Pow(x, exponent uint16) uint16 {
	f.check(x)
	if x == 0 {
		return 0
	}
	return f.exp[(uint32(exponent)*uint32(f.log[x]))%uint32(f.order-1)]
}

// Inv returns the multiplicative inverse of x, or 0 for x == 0.
func (f *PrimeField) Inv(x uint16) uint16 {
	f.check(x)
	if x == 0 {
		return 0
	}
	return f.exp[(f.order-1)-f.log[x]]
}

// SlowMul returns (x * y) mod p by direct integer multiplication. It is
// the table-construction primitive and doubles as a reference for testing
// the table-backed fast path.
func (f *PrimeField) SlowMul(x, y uint16) uint16 {
	if x == 0 || y == 0 {
		return 0
	}
	return uint16(uint32(x) * uint32(y) % uint32(f.order))
}

func (f *PrimeField) check(elems ...uint16) {
	for _, e := range elems {
		if e >= f.order {
			rangePanic()
		}
	}
}
