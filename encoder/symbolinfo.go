// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// SymbolShapeHint controls whether the encoder prefers square or rectangular symbols.
type SymbolShapeHint int

const (
	// ShapeHintForceNone allows either square or rectangular symbols.
	ShapeHintForceNone SymbolShapeHint = iota
	// ShapeHintForceSquare forces the encoder to choose a square symbol.
	ShapeHintForceSquare
	// ShapeHintForceRectangle forces the encoder to choose a rectangular symbol.
	ShapeHintForceRectangle
)

// SymbolInfo describes a single Data Matrix ECC 200 symbol size.
type SymbolInfo struct {
	Version               int // symbol number: 1-24 square, 25-30 rectangular
	Rectangular           bool
	DataCapacity          int // number of data codewords across all interleaved blocks
	ErrorCodewords        int // total number of error correction codewords
	MatrixWidth           int // symbol width in modules, including finder patterns
	MatrixHeight          int // symbol height in modules, including finder patterns
	DataRegionSizeRows    int // data rows per data region, excluding the region border
	DataRegionSizeColumns int // data columns per data region
	RSBlockData           int // data codewords per RS block (larger block where unequal)
	RSBlockError          int // error correction codewords per RS block
}

// InterleavedBlockCount returns the number of interleaved RS blocks. The +2
// rounding admits the 144x144 symbol, whose last two blocks carry one data
// codeword less than the others.
func (si *SymbolInfo) InterleavedBlockCount() int {
	return (si.DataCapacity + 2) / si.RSBlockData
}

// TotalCodewords returns data plus error correction codewords.
func (si *SymbolInfo) TotalCodewords() int {
	return si.DataCapacity + si.ErrorCodewords
}

// MappingMatrixRows returns the number of rows in the mapping matrix
// (symbol rows minus the 2 finder/timing rows of each data region).
func (si *SymbolInfo) MappingMatrixRows() int {
	return si.MatrixHeight - (si.MatrixHeight/(si.DataRegionSizeRows+2))*2
}

// MappingMatrixColumns returns the number of columns in the mapping matrix.
func (si *SymbolInfo) MappingMatrixColumns() int {
	return si.MatrixWidth - (si.MatrixWidth/(si.DataRegionSizeColumns+2))*2
}

// symbols is the full list of ECC 200 symbol sizes, ordered by data
// capacity so that automatic selection finds the smallest fitting symbol
// first. Derived from ISO/IEC 16022 Table 7. Rectangular sizes are
// interleaved at their capacity rank.
var symbols = []SymbolInfo{
	// {Version, Rectangular, DataCapacity, ErrorCodewords, MatrixWidth, MatrixHeight,
	//  DataRegionSizeRows, DataRegionSizeColumns, RSBlockData, RSBlockError}
	{1, false, 3, 5, 10, 10, 8, 8, 3, 5},
	{2, false, 5, 7, 12, 12, 10, 10, 5, 7},
	{25, true, 5, 7, 18, 8, 6, 16, 5, 7},
	{3, false, 8, 10, 14, 14, 12, 12, 8, 10},
	{26, true, 10, 11, 32, 8, 6, 14, 10, 11},
	{4, false, 12, 12, 16, 16, 14, 14, 12, 12},
	{27, true, 16, 14, 26, 12, 10, 24, 16, 14},
	{5, false, 18, 14, 18, 18, 16, 16, 18, 14},
	{6, false, 22, 18, 20, 20, 18, 18, 22, 18},
	{28, true, 22, 18, 36, 12, 10, 16, 22, 18},
	{7, false, 30, 20, 22, 22, 20, 20, 30, 20},
	{29, true, 32, 24, 36, 16, 14, 16, 32, 24},
	{8, false, 36, 24, 24, 24, 22, 22, 36, 24},
	{9, false, 44, 28, 26, 26, 24, 24, 44, 28},
	{30, true, 49, 28, 48, 16, 14, 22, 49, 28},
	{10, false, 62, 36, 32, 32, 14, 14, 62, 36},
	{11, false, 86, 42, 36, 36, 16, 16, 86, 42},
	{12, false, 114, 48, 40, 40, 18, 18, 114, 48},
	{13, false, 144, 56, 44, 44, 20, 20, 144, 56},
	{14, false, 174, 68, 48, 48, 22, 22, 174, 68},
	{15, false, 204, 84, 52, 52, 24, 24, 102, 42},
	{16, false, 280, 112, 64, 64, 14, 14, 140, 56},
	{17, false, 368, 144, 72, 72, 16, 16, 92, 36},
	{18, false, 456, 192, 80, 80, 18, 18, 114, 48},
	{19, false, 576, 224, 88, 88, 20, 20, 144, 56},
	{20, false, 696, 272, 96, 96, 22, 22, 174, 68},
	{21, false, 816, 336, 104, 104, 24, 24, 136, 56},
	{22, false, 1050, 408, 120, 120, 18, 18, 175, 68},
	{23, false, 1304, 496, 132, 132, 20, 20, 163, 62},
	{24, false, 1558, 620, 144, 144, 22, 22, 156, 62},
}

// Symbols returns all symbol sizes in automatic selection order.
func Symbols() []SymbolInfo {
	out := make([]SymbolInfo, len(symbols))
	copy(out, symbols)
	return out
}

// LookupVersion returns the SymbolInfo for a symbol number (1-30).
func LookupVersion(version int) *SymbolInfo {
	for i := range symbols {
		if symbols[i].Version == version {
			return &symbols[i]
		}
	}
	return nil
}

// candidates returns the symbol sizes to try, smallest first, honoring an
// explicit version request or a shape constraint.
func candidates(version int, shape SymbolShapeHint) []*SymbolInfo {
	if version != 0 {
		if si := LookupVersion(version); si != nil {
			return []*SymbolInfo{si}
		}
		return nil
	}
	var out []*SymbolInfo
	for i := range symbols {
		si := &symbols[i]
		if shape == ShapeHintForceSquare && si.Rectangular {
			continue
		}
		if shape == ShapeHintForceRectangle && !si.Rectangular {
			continue
		}
		out = append(out, si)
	}
	return out
}
