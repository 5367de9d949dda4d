// Package reedsolomon implements Reed-Solomon error correction encoding
// over GF(256).
package reedsolomon

// Field represents GF(2^8) under a particular primitive polynomial, with
// precomputed exponent and logarithm tables.
type Field struct {
	exp, log  []int
	size      int
	primitive int
	base      int // first consecutive root exponent of generator polynomials
}

// DataMatrixField is GF(256) modulo x^8 + x^5 + x^3 + x^2 + 1, with
// generator polynomial roots starting at alpha^1, as used by Data Matrix
// ECC 200.
var DataMatrixField = NewField(0x012D, 256, 1)

// NewField builds a field of the given size from a primitive polynomial
// (expressed with its coefficients as bits) and a generator root base.
func NewField(primitive, size, base int) *Field {
	f := &Field{
		exp:       make([]int, size),
		log:       make([]int, size),
		size:      size,
		primitive: primitive,
		base:      base,
	}
	x := 1
	for i := 0; i < size; i++ {
		f.exp[i] = x
		x *= 2
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		f.log[f.exp[i]] = i
	}
	// log[0] stays 0 but is never used
	return f
}

// Size returns the number of field elements.
func (f *Field) Size() int {
	return f.size
}

// Exp returns the antilog of a.
func (f *Field) Exp(a int) int {
	return f.exp[a]
}

// Log returns the log of a, which must be nonzero.
func (f *Field) Log(a int) int {
	return f.log[a]
}

// Multiply returns the product of a and b.
func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(f.log[a]+f.log[b])%(f.size-1)]
}

// Inverse returns the multiplicative inverse of a, which must be nonzero.
func (f *Field) Inverse(a int) int {
	return f.exp[f.size-1-f.log[a]]
}

// addOrSubtract is addition in GF(2^n), which is also subtraction.
func addOrSubtract(a, b int) int {
	return a ^ b
}
