package datamatrix

import (
	"fmt"

	"github.com/woo-j/OkapiBarcode-sub001/bitutil"
	"github.com/woo-j/OkapiBarcode-sub001/charset"
	"github.com/woo-j/OkapiBarcode-sub001/encoder"
)

// Symbol is a fully assembled Data Matrix symbol.
type Symbol struct {
	// Codewords is the complete codeword stream: data codewords followed
	// by the interleaved error correction codewords.
	Codewords []byte

	// Matrix holds the symbol modules including finder and timing
	// patterns. A set bit is a dark module.
	Matrix *bitutil.BitMatrix

	// Width and Height are the symbol dimensions in modules.
	Width, Height int
}

// Rows returns the module grid as one boolean slice per row, top to bottom.
// True is a dark module.
func (s *Symbol) Rows() [][]bool {
	rows := make([][]bool, s.Height)
	for y := range rows {
		row := make([]bool, s.Width)
		for x := range row {
			row[x] = s.Matrix.Get(x, y)
		}
		rows[y] = row
	}
	return rows
}

// Encode encodes data into a Data Matrix ECC 200 symbol. When opts.ECI is
// set, data must already be encoded in the claimed interpretation. A nil
// opts encodes with defaults.
func Encode(data []byte, opts *Options) (*Symbol, error) {
	if opts == nil {
		opts = &Options{}
	}
	req := &encoder.Request{
		Data:       data,
		GS1:        opts.GS1,
		ReaderInit: opts.ReaderInit,
		ECI:        opts.ECI,
		Size:       opts.Size,
		Shape:      encoder.SymbolShapeHint(opts.Shape),
	}
	if sa := opts.StructuredAppend; sa != nil {
		req.StructuredAppendPosition = sa.Position
		req.StructuredAppendTotal = sa.Total
		req.StructuredAppendFileID = sa.FileID
	}
	res, err := encoder.Encode(req)
	if err != nil {
		return nil, err
	}
	return &Symbol{
		Codewords: res.Codewords,
		Matrix:    res.Matrix,
		Width:     res.Info.MatrixWidth,
		Height:    res.Info.MatrixHeight,
	}, nil
}

// EncodeString encodes a string into a Data Matrix ECC 200 symbol. With
// opts.ECI set the string is transcoded from UTF-8 into the requested
// interpretation; otherwise it is converted to ISO 8859-1, the symbology's
// default interpretation.
func EncodeString(s string, opts *Options) (*Symbol, error) {
	if opts == nil {
		opts = &Options{}
	}
	eci := opts.ECI
	if eci == 0 {
		eci = charset.Latin1
	}
	data, err := charset.Transcode(s, eci)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return Encode(data, opts)
}
