package encoder

import "testing"

func TestSymbolInfoTable(t *testing.T) {
	seen := make(map[int]bool)
	prev := 0
	for _, si := range Symbols() {
		if seen[si.Version] {
			t.Errorf("version %d appears twice", si.Version)
		}
		seen[si.Version] = true

		if si.DataCapacity < prev {
			t.Errorf("version %d: capacity %d out of selection order", si.Version, si.DataCapacity)
		}
		prev = si.DataCapacity

		if si.Rectangular != (si.Version >= 25) {
			t.Errorf("version %d: rectangular flag %v", si.Version, si.Rectangular)
		}

		// Data regions tile the symbol exactly.
		regionsAcross := si.MatrixWidth / (si.DataRegionSizeColumns + 2)
		regionsDown := si.MatrixHeight / (si.DataRegionSizeRows + 2)
		if regionsAcross*(si.DataRegionSizeColumns+2) != si.MatrixWidth ||
			regionsDown*(si.DataRegionSizeRows+2) != si.MatrixHeight {
			t.Errorf("version %d: data regions do not tile %dx%d",
				si.Version, si.MatrixWidth, si.MatrixHeight)
		}

		// The mapping matrix holds all codeword bits, modulo the 2x2
		// corner surplus.
		area := si.MappingMatrixRows() * si.MappingMatrixColumns()
		if gap := area - si.TotalCodewords()*8; gap != 0 && gap != 4 {
			t.Errorf("version %d: mapping area %d vs %d codeword bits",
				si.Version, area, si.TotalCodewords()*8)
		}

		// RS block arithmetic covers all codewords.
		blocks := si.InterleavedBlockCount()
		dataTotal := 0
		for b := 0; b < blocks; b++ {
			dataTotal += (si.DataCapacity - b + blocks - 1) / blocks
		}
		if dataTotal != si.DataCapacity {
			t.Errorf("version %d: blocks carry %d data codewords, want %d",
				si.Version, dataTotal, si.DataCapacity)
		}
		if blocks*si.RSBlockError != si.ErrorCodewords {
			t.Errorf("version %d: %d blocks x %d ec codewords, want %d",
				si.Version, blocks, si.RSBlockError, si.ErrorCodewords)
		}
	}
	if len(seen) != 30 {
		t.Errorf("got %d symbol sizes, want 30", len(seen))
	}
}

func TestLookupVersion(t *testing.T) {
	if si := LookupVersion(1); si == nil || si.MatrixWidth != 10 || si.MatrixHeight != 10 {
		t.Errorf("version 1: got %+v", si)
	}
	if si := LookupVersion(30); si == nil || si.MatrixWidth != 48 || si.MatrixHeight != 16 {
		t.Errorf("version 30: got %+v", si)
	}
	if si := LookupVersion(31); si != nil {
		t.Errorf("version 31: got %+v, want nil", si)
	}
}

func TestCandidatesShape(t *testing.T) {
	for _, si := range candidates(0, ShapeHintForceSquare) {
		if si.Rectangular {
			t.Errorf("square candidates include version %d", si.Version)
		}
	}
	rect := candidates(0, ShapeHintForceRectangle)
	if len(rect) != 6 {
		t.Errorf("got %d rectangular candidates, want 6", len(rect))
	}
	if got := candidates(13, ShapeHintForceRectangle); len(got) != 1 || got[0].Version != 13 {
		t.Errorf("explicit version: got %+v", got)
	}
}
