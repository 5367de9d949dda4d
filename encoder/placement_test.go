package encoder

import "testing"

// TestPlacementCoversEverySize checks that for every symbol size each
// codeword bit lands on exactly one cell, every cell is used, and the
// fixed corner filler appears exactly when the cell count leaves a 2x2
// gap.
func TestPlacementCoversEverySize(t *testing.T) {
	for _, si := range Symbols() {
		rows := si.MappingMatrixRows()
		cols := si.MappingMatrixColumns()
		p := NewPlacementMap(cols, rows)

		total := si.TotalCodewords()
		seen := make(map[uint16]int)
		fixed, unused := 0, 0
		for _, v := range p.cells {
			switch {
			case v == 0:
				unused++
			case v == 1:
				fixed++
			default:
				seen[v]++
			}
		}
		if len(seen) != total*8 {
			t.Errorf("version %d: %d distinct bits placed, want %d",
				si.Version, len(seen), total*8)
		}
		for v, n := range seen {
			if n != 1 {
				t.Errorf("version %d: bit %d placed %d times", si.Version, v, n)
			}
			if pos := int(v >> 3); pos < 1 || pos > total {
				t.Errorf("version %d: codeword index %d out of range", si.Version, pos)
			}
		}
		// The cell count exceeds the bit count by 0 or 4; a surplus is a
		// 2x2 corner block of which two cells carry the fixed pattern.
		switch gap := rows*cols - total*8; gap {
		case 0:
			if fixed != 0 || unused != 0 {
				t.Errorf("version %d: %d fixed and %d unused cells in an exact fit",
					si.Version, fixed, unused)
			}
		case 4:
			if fixed != 2 || unused != 2 {
				t.Errorf("version %d: got %d fixed and %d unused cells, want 2 and 2",
					si.Version, fixed, unused)
			}
		default:
			t.Errorf("version %d: cell surplus %d, want 0 or 4", si.Version, gap)
		}
	}
}

func TestPlacementCornerFiller(t *testing.T) {
	// The 12x12 symbol has a 10x10 mapping matrix holding 12 codewords,
	// leaving a 2x2 fixed-on block in the lower right corner.
	si := LookupVersion(2)
	p := NewPlacementMap(si.MappingMatrixColumns(), si.MappingMatrixRows())
	codewords := make([]byte, si.TotalCodewords())
	if !p.Bit(codewords, 9, 9) || !p.Bit(codewords, 8, 8) {
		t.Error("corner filler modules are not dark")
	}
	if p.Bit(codewords, 8, 9) || p.Bit(codewords, 9, 8) {
		t.Error("corner data modules are dark for an all-zero stream")
	}
}

// TestPlacementFirstCodeword pins the sweep anchor: the diagonal walk
// starts at row 4, column 0, so the least significant bit of the first
// codeword occupies that cell.
func TestPlacementFirstCodeword(t *testing.T) {
	si := LookupVersion(1)
	p := NewPlacementMap(si.MappingMatrixColumns(), si.MappingMatrixRows())

	codewords := make([]byte, si.TotalCodewords())
	codewords[0] = 0x01
	if !p.Bit(codewords, 0, 4) {
		t.Error("LSB of codeword 1 is not at (0, 4)")
	}
	codewords[0] = 0xFE
	if p.Bit(codewords, 0, 4) {
		t.Error("(0, 4) set by bits other than the LSB of codeword 1")
	}
}
