package gf

// Reduction polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D), as used by
// Reed-Solomon style codes such as the ones in QR symbols. Note this is
// not the Rijndael/AES polynomial (0x11B); products differ between the
// two fields.
const binaryReductionPoly = 0x11D

const (
	binaryFieldOrder     = 256
	binaryFieldGenerator = 2
)

// BinaryField implements arithmetic over the 256-element binary extension
// field GF(2^8) with the fixed reduction polynomial above. Elements are
// bytes; the field has no construction parameters.
type BinaryField struct {
	exp [512]byte // doubled antilog table for branchless lookup
	log [256]byte // log[0] is never queried
}

// NewBinaryField builds the GF(2^8) lookup tables using the carry-less
// reference multiplication.
func NewBinaryField() *BinaryField {
	f := new(BinaryField)

	x := byte(1)
	for i := 0; i < binaryFieldOrder; i++ {
		f.exp[i] = x
		f.log[x] = byte(i)
		x = f.SlowMul(x, binaryFieldGenerator)
	}
	// The multiplicative group has order 255, so the power sequence
	// repeats with exp[i] = exp[i-255] for the doubled half.
	for i := binaryFieldOrder; i < len(f.exp); i++ {
		f.exp[i] = f.exp[i-255]
	}

	return f
}

// Order returns the number of field elements, 256.
func (f *BinaryField) Order() int {
	return binaryFieldOrder
}

// Generator returns the multiplicative generator, 2.
func (f *BinaryField) Generator() byte {
	return binaryFieldGenerator
}

// Add returns x + y. Addition in characteristic-2 fields is bitwise XOR.
func (f *BinaryField) Add(x, y byte) byte {
	return x ^ y
}

// Sub returns x - y, which coincides with addition in GF(2^8).
func (f *BinaryField) Sub(x, y byte) byte {
	return x ^ y
}

// Mul returns x * y via the lookup tables.
func (f *BinaryField) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// Div returns dividend / divisor using the discrete-log identity.
// Division by zero and a zero dividend both return 0.
func (f *BinaryField) Div(dividend, divisor byte) byte {
	if divisor == 0 {
		return 0
	}
	if dividend == 0 {
		return 0
	}
	return f.exp[(int(f.log[dividend])+255-int(f.log[divisor]))%255]
}

// Pow returns x raised to exponent.
func (f *BinaryField) Pow(x byte, exponent uint16) byte {
	if x == 0 {
		return 0
	}
	return f.exp[(int(exponent)*int(f.log[x]))%255]
}

// Inv returns the multiplicative inverse of x, or 0 for x == 0.
func (f *BinaryField) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-int(f.log[x])]
}

// SlowMul returns x * y computed with the Russian Peasant carry-less
// multiplication: shifted copies of x are XORed into the accumulator for
// each set bit of y, folding overflow back into the field through the
// reduction polynomial. This is the table-construction primitive and the
// trusted reference for the table-backed fast path.
func (f *BinaryField) SlowMul(x, y byte) byte {
	var ret byte
	xw := uint16(x)
	for y > 0 {
		if y&1 == 1 {
			ret ^= byte(xw)
		}
		y >>= 1
		xw <<= 1
		if xw&0x100 != 0 {
			xw ^= binaryReductionPoly
		}
	}
	return ret
}

// Arith returns a uint16-widening view of the field satisfying the shared
// Arith interface. Operands above 255 are out of field range and panic.
func (f *BinaryField) Arith() Arith {
	return binaryArith{f}
}

type binaryArith struct {
	f *BinaryField
}

func (a binaryArith) elem(x uint16) byte {
	if x > 255 {
		rangePanic()
	}
	return byte(x)
}

func (a binaryArith) Order() uint16     { return binaryFieldOrder }
func (a binaryArith) Generator() uint16 { return binaryFieldGenerator }

func (a binaryArith) Add(x, y uint16) uint16 {
	return uint16(a.f.Add(a.elem(x), a.elem(y)))
}

func (a binaryArith) Sub(x, y uint16) uint16 {
	return uint16(a.f.Sub(a.elem(x), a.elem(y)))
}

func (a binaryArith) Mul(x, y uint16) uint16 {
	return uint16(a.f.Mul(a.elem(x), a.elem(y)))
}

func (a binaryArith) Div(dividend, divisor uint16) uint16 {
	return uint16(a.f.Div(a.elem(dividend), a.elem(divisor)))
}

func (a binaryArith) Pow(x, exponent uint16) uint16 {
	return uint16(a.f.Pow(a.elem(x), exponent))
}

func (a binaryArith) Inv(x uint16) uint16 {
	return uint16(a.f.Inv(a.elem(x)))
}

func (a binaryArith) SlowMul(x, y uint16) uint16 {
	return uint16(a.f.SlowMul(a.elem(x), a.elem(y)))
}
