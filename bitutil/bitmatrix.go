// Package bitutil provides bit-level containers for barcode matrices.
package bitutil

import "strings"

// BitMatrix represents a 2D matrix of bits. A set bit is a dark module.
// The ordering of bits is row-major, packed into 32-bit words.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	bits    []uint32
}

// NewBitMatrixWithSize creates an empty matrix of the given dimensions.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		bits:    make([]uint32, rowSize*height),
	}
}

// Get returns the bit at (x, y), where x is the column and y the row.
func (b *BitMatrix) Get(x, y int) bool {
	offset := y*b.rowSize + x/32
	return (b.bits[offset]>>(uint(x)&0x1f))&1 != 0
}

// Set sets the bit at (x, y).
func (b *BitMatrix) Set(x, y int) {
	offset := y*b.rowSize + x/32
	b.bits[offset] |= 1 << (uint(x) & 0x1f)
}

// Width returns the width of the matrix.
func (b *BitMatrix) Width() int {
	return b.width
}

// Height returns the height of the matrix.
func (b *BitMatrix) Height() int {
	return b.height
}

// String renders the matrix with "X " for set bits and "  " for unset.
func (b *BitMatrix) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width*2 + 1))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Get(x, y) {
				sb.WriteString("X ")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
