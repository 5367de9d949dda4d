package datamatrix

import "github.com/woo-j/OkapiBarcode-sub001/encoder"

// Errors returned by Encode and EncodeString. All of them are detected
// before or during codeword generation; a symbol is either produced in full
// or not at all.
var (
	// ErrInvalidInput is returned for inputs the symbology cannot
	// represent, such as empty data or conflicting options (GS1 together
	// with reader programming).
	ErrInvalidInput = encoder.ErrInvalidInput

	// ErrDataTooLong is returned when no symbol size satisfying the shape
	// constraint can hold the encoded data.
	ErrDataTooLong = encoder.ErrDataTooLong

	// ErrSizeTooSmall is returned when an explicitly requested symbol size
	// is too small for the encoded data.
	ErrSizeTooSmall = encoder.ErrSizeTooSmall

	// ErrStructuredAppend is returned when a structured append parameter
	// is outside its permitted range.
	ErrStructuredAppend = encoder.ErrStructuredAppend
)
