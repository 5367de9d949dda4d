package reedsolomon

import "sync"

// Encoder computes Reed-Solomon parity codewords over a field. Generator
// polynomials are built lazily per degree and cached, so one Encoder can be
// shared across goroutines.
type Encoder struct {
	field *Field

	mu         sync.Mutex
	generators map[int][]int // degree -> monic generator coefficients, highest first
}

// NewEncoder returns an encoder for the given field.
func NewEncoder(field *Field) *Encoder {
	return &Encoder{field: field, generators: make(map[int][]int)}
}

// generator returns the degree-d generator polynomial, the product of
// (x - alpha^(base+i)) for i in [0, d).
func (e *Encoder) generator(d int) []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if g, ok := e.generators[d]; ok {
		return g
	}
	g := []int{1}
	for i := 0; i < d; i++ {
		root := e.field.Exp(i + e.field.base)
		next := make([]int, len(g)+1)
		for j, c := range g {
			next[j] = addOrSubtract(next[j], c)
			next[j+1] = addOrSubtract(next[j+1], e.field.Multiply(c, root))
		}
		g = next
	}
	e.generators[d] = g
	return g
}

// Encode returns numEC parity codewords for the data block, highest degree
// coefficient first, computed as the remainder of data*x^numEC divided by
// the generator polynomial.
func (e *Encoder) Encode(data []byte, numEC int) []byte {
	gen := e.generator(numEC)
	remainder := make([]int, numEC)
	for _, b := range data {
		factor := addOrSubtract(int(b), remainder[0])
		copy(remainder, remainder[1:])
		remainder[numEC-1] = 0
		if factor != 0 {
			for j := 0; j < numEC; j++ {
				remainder[j] = addOrSubtract(remainder[j], e.field.Multiply(factor, gen[j+1]))
			}
		}
	}
	out := make([]byte, numEC)
	for i, c := range remainder {
		out[i] = byte(c)
	}
	return out
}
