package datamatrix

// Shape constrains the symbol shapes considered during automatic size
// selection.
type Shape int

const (
	// ShapeAuto allows both square and rectangular symbols.
	ShapeAuto Shape = iota
	// ShapeSquare restricts selection to square symbols.
	ShapeSquare
	// ShapeRectangle restricts selection to rectangular symbols.
	ShapeRectangle
)

// StructuredAppend identifies one symbol of a message distributed across up
// to 16 symbols.
type StructuredAppend struct {
	Position int // 1-based position of this symbol, 1..16
	Total    int // total number of symbols, 1..16
	FileID   int // file identification, 1..64516, shared by all symbols
}

// Options configures symbol generation. The zero value selects plain
// encoding with automatic size selection.
type Options struct {
	// GS1 marks the input as GS1 formatted data. The '[' byte is treated
	// as the FNC1 application identifier separator and never encoded
	// literally.
	GS1 bool

	// ReaderInit encodes a reader programming symbol. Incompatible with
	// GS1 and with structured append.
	ReaderInit bool

	// ECI emits an Extended Channel Interpretation escape with the given
	// value (1..999999) before the data. Zero means no ECI; the Code Page
	// 437 interpretation, nominally ECI 0, is requested as its equivalent
	// ECI 2. The byte payload is expected to already be in the claimed
	// interpretation; EncodeString transcodes to it.
	ECI int

	// StructuredAppend, when non-nil, prefixes the symbol with the
	// structured append sequence and file identification codewords.
	StructuredAppend *StructuredAppend

	// Size requests a specific symbol size, 1..30: 1-24 are the square
	// sizes from 10x10 to 144x144, 25-30 the rectangular sizes from 8x18
	// to 16x48. Zero selects the smallest size that fits.
	Size int

	// Shape constrains automatic size selection. Ignored when Size is
	// set.
	Shape Shape
}
