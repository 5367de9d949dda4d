// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package encoder implements Data Matrix ECC 200 symbol construction: high
// level encodation, Reed-Solomon error correction, module placement and
// final matrix assembly.
package encoder

import (
	"errors"
	"fmt"

	"github.com/woo-j/OkapiBarcode-sub001/bitutil"
)

var (
	// ErrInvalidInput marks inputs the symbology cannot represent.
	ErrInvalidInput = errors.New("datamatrix: invalid input")

	// ErrDataTooLong is returned when no permitted symbol size can hold
	// the encoded data.
	ErrDataTooLong = errors.New("datamatrix: data too long")

	// ErrSizeTooSmall is returned when a requested symbol size cannot
	// hold the encoded data.
	ErrSizeTooSmall = errors.New("datamatrix: data too long for requested size")

	// ErrStructuredAppend marks structured append parameters outside
	// their permitted ranges.
	ErrStructuredAppend = errors.New("datamatrix: invalid structured append parameters")
)

// Request carries one encode call's input and options.
type Request struct {
	Data       []byte
	GS1        bool
	ReaderInit bool
	ECI        int // 0 means none; request ECI 2 for the equivalent Code Page 437

	StructuredAppendPosition int
	StructuredAppendTotal    int // 0 means no structured append
	StructuredAppendFileID   int

	Size  int // requested symbol version 1-30, 0 for automatic
	Shape SymbolShapeHint
}

// Result is a fully constructed symbol.
type Result struct {
	// Codewords is the final stream: data, pad and error correction.
	Codewords []byte
	Info      *SymbolInfo
	Matrix    *bitutil.BitMatrix
}

// Encode builds a complete ECC 200 symbol from a request.
func Encode(req *Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	h := encodeStream(req)
	si, data, err := fitSymbol(h, req)
	if err != nil {
		return nil, err
	}

	codewords := appendErrorCorrection(padStream(data, si.DataCapacity), si)
	return &Result{
		Codewords: codewords,
		Info:      si,
		Matrix:    assemble(codewords, si),
	}, nil
}

func validate(req *Request) error {
	if len(req.Data) == 0 {
		return fmt.Errorf("%w: no data", ErrInvalidInput)
	}
	if req.ReaderInit && req.GS1 {
		return fmt.Errorf("%w: reader programming is incompatible with GS1", ErrInvalidInput)
	}
	if req.ReaderInit && req.StructuredAppendTotal > 0 {
		return fmt.Errorf("%w: reader programming is incompatible with structured append", ErrInvalidInput)
	}
	if req.ECI < 0 || req.ECI > 999999 {
		return fmt.Errorf("%w: ECI value %d out of range", ErrInvalidInput, req.ECI)
	}
	if req.Size < 0 || req.Size > 30 {
		return fmt.Errorf("%w: symbol size %d out of range", ErrInvalidInput, req.Size)
	}
	if req.StructuredAppendTotal > 0 {
		if req.StructuredAppendTotal > 16 {
			return fmt.Errorf("%w: %d symbols", ErrStructuredAppend, req.StructuredAppendTotal)
		}
		if req.StructuredAppendPosition < 1 || req.StructuredAppendPosition > req.StructuredAppendTotal {
			return fmt.Errorf("%w: position %d of %d", ErrStructuredAppend,
				req.StructuredAppendPosition, req.StructuredAppendTotal)
		}
		if req.StructuredAppendFileID < 1 || req.StructuredAppendFileID > 64516 {
			return fmt.Errorf("%w: file id %d", ErrStructuredAppend, req.StructuredAppendFileID)
		}
	}
	return nil
}

// fitSymbol selects the smallest candidate symbol whose data capacity holds
// the encoded stream plus the scheme completion that capacity allows, and
// returns the completed stream.
func fitSymbol(h *highLevel, req *Request) (*SymbolInfo, []byte, error) {
	for _, si := range candidates(req.Size, req.Shape) {
		if si.DataCapacity < len(h.codewords) {
			continue
		}
		tail := h.remainder(si.DataCapacity - len(h.codewords))
		if len(h.codewords)+len(tail) <= si.DataCapacity {
			return si, append(h.codewords[:len(h.codewords):len(h.codewords)], tail...), nil
		}
	}
	if req.Size != 0 {
		return nil, nil, fmt.Errorf("%w: %d data codewords", ErrSizeTooSmall, len(h.codewords))
	}
	return nil, nil, fmt.Errorf("%w: %d data codewords", ErrDataTooLong, len(h.codewords))
}

// assemble renders the codeword stream into the full symbol matrix,
// surrounding each data region with its finder and timing patterns.
func assemble(codewords []byte, si *SymbolInfo) *bitutil.BitMatrix {
	placement := NewPlacementMap(si.MappingMatrixColumns(), si.MappingMatrixRows())

	drRows := si.DataRegionSizeRows
	drCols := si.DataRegionSizeColumns
	matrix := bitutil.NewBitMatrixWithSize(si.MatrixWidth, si.MatrixHeight)

	for row := 0; row < si.MappingMatrixRows(); row++ {
		vRegion := row / drRows
		symbolY := vRegion*(drRows+2) + 1 + row%drRows
		for col := 0; col < si.MappingMatrixColumns(); col++ {
			hRegion := col / drCols
			symbolX := hRegion*(drCols+2) + 1 + col%drCols
			if placement.Bit(codewords, col, row) {
				matrix.Set(symbolX, symbolY)
			}
		}
	}

	// Finder and timing patterns around every data region: solid left
	// column and bottom row, alternating top row and right column.
	regionsDown := si.MatrixHeight / (drRows + 2)
	regionsAcross := si.MatrixWidth / (drCols + 2)
	for vRegion := 0; vRegion < regionsDown; vRegion++ {
		top := vRegion * (drRows + 2)
		for hRegion := 0; hRegion < regionsAcross; hRegion++ {
			left := hRegion * (drCols + 2)
			for y := 0; y < drRows+2; y++ {
				matrix.Set(left, top+y)
				if y%2 == 1 {
					matrix.Set(left+drCols+1, top+y)
				}
			}
			for x := 0; x < drCols+2; x++ {
				matrix.Set(left+x, top+drRows+1)
				if x%2 == 0 {
					matrix.Set(left+x, top)
				}
			}
		}
	}
	return matrix
}
