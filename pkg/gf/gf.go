// Package gf implements finite-field (Galois field) arithmetic over three
// field representations: GF(p) with a fixed multiplicative generator,
// GF(p) with validated characteristic and derived generator, and the
// binary extension field GF(2^8) used by byte-oriented error-correcting
// codes.
//
// Each field type precomputes discrete-logarithm and antilogarithm lookup
// tables at construction time and is immutable afterwards, so a single
// instance is safe for concurrent read-only use.
package gf

// Arith is the operation surface shared by all field implementations,
// expressed over uint16 elements. PrimeField and CheckedPrimeField satisfy
// it directly; BinaryField exposes a widening adapter via its Arith method.
type Arith interface {
	// Order returns the number of elements in the field.
	Order() uint16

	// Generator returns the multiplicative generator used to build the
	// lookup tables.
	Generator() uint16

	// Add returns x + y in the field.
	Add(x, y uint16) uint16

	// Sub returns x - y in the field.
	Sub(x, y uint16) uint16

	// Mul returns x * y in the field using the lookup tables.
	Mul(x, y uint16) uint16

	// Div returns dividend / divisor in the field. Division by zero and a
	// zero dividend both return 0.
	Div(dividend, divisor uint16) uint16

	// Pow returns x raised to exponent in the field.
	Pow(x, exponent uint16) uint16

	// Inv returns the multiplicative inverse of x, or 0 for x == 0.
	Inv(x uint16) uint16

	// SlowMul returns x * y computed without the lookup tables. It is the
	// reference multiplication used for table construction.
	SlowMul(x, y uint16) uint16
}

// rangePanic reports an operand outside [0, order). Operations panic on
// out-of-range elements instead of reading past the table bounds.
func rangePanic() {
	panic("gf: element out of field range")
}
