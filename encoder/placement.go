// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// PlacementMap assigns every cell of the mapping matrix to one bit of one
// codeword, per the placement algorithm of ISO/IEC 16022 Annex F. The map
// depends only on the matrix dimensions and is shared by all symbols of
// the same size.
type PlacementMap struct {
	rows, cols int
	// cells holds (position+1)<<3 | bit per cell, where bit 0 is the most
	// significant bit of the codeword. 0 means unassigned, 1 means
	// fixed-on filler.
	cells []uint16
}

// NewPlacementMap builds the placement map for a mapping matrix of the
// given dimensions.
func NewPlacementMap(cols, rows int) *PlacementMap {
	p := &PlacementMap{rows: rows, cols: cols, cells: make([]uint16, rows*cols)}
	p.place()
	return p
}

// Bit reports whether the module at (col, row) is dark for the given
// codeword stream.
func (p *PlacementMap) Bit(codewords []byte, col, row int) bool {
	v := p.cells[row*p.cols+col]
	if v <= 1 {
		return v == 1
	}
	bit := v & 7
	return codewords[v>>3-1]&(1<<(7-bit)) != 0
}

func (p *PlacementMap) set(col, row, position, bit int) {
	p.cells[row*p.cols+col] = uint16(position+1)<<3 | uint16(bit)
}

func (p *PlacementMap) hasBit(col, row int) bool {
	return p.cells[row*p.cols+col] != 0
}

func (p *PlacementMap) place() {
	position := 0
	row := 4
	col := 0

	for {
		// Repeatedly first check for one of the special corner cases.
		if row == p.rows && col == 0 {
			p.corner1(position)
			position++
		}
		if row == p.rows-2 && col == 0 && p.cols%4 != 0 {
			p.corner2(position)
			position++
		}
		if row == p.rows-2 && col == 0 && p.cols%8 == 4 {
			p.corner3(position)
			position++
		}
		if row == p.rows+4 && col == 2 && p.cols%8 == 0 {
			p.corner4(position)
			position++
		}

		// Sweep upward diagonally, inserting successive characters.
		for {
			if row < p.rows && col >= 0 && !p.hasBit(col, row) {
				p.utah(row, col, position)
				position++
			}
			row -= 2
			col += 2
			if row < 0 || col >= p.cols {
				break
			}
		}
		row++
		col += 3

		// Sweep downward diagonally, inserting successive characters.
		for {
			if row >= 0 && col < p.cols && !p.hasBit(col, row) {
				p.utah(row, col, position)
				position++
			}
			row += 2
			col -= 2
			if row >= p.rows || col < 0 {
				break
			}
		}
		row += 3
		col++

		if row >= p.rows && col >= p.cols {
			break
		}
	}

	// Lastly, if the lower right-hand corner is untouched, fill in fixed
	// pattern.
	if !p.hasBit(p.cols-1, p.rows-1) {
		p.cells[(p.rows-1)*p.cols+p.cols-1] = 1
		p.cells[(p.rows-2)*p.cols+p.cols-2] = 1
	}
}

// module places one bit of a codeword, wrapping coordinates that fall
// outside the matrix.
func (p *PlacementMap) module(row, col, position, bit int) {
	if row < 0 {
		row += p.rows
		col += 4 - (p.rows+4)%8
	}
	if col < 0 {
		col += p.cols
		row += 4 - (p.cols+4)%8
	}
	if row >= p.rows {
		row -= p.rows
	}
	if col >= p.cols {
		col -= p.cols
	}
	p.set(col, row, position, bit)
}

// utah places the 8 bits of a utah-shaped symbol character.
func (p *PlacementMap) utah(row, col, position int) {
	p.module(row-2, col-2, position, 0)
	p.module(row-2, col-1, position, 1)
	p.module(row-1, col-2, position, 2)
	p.module(row-1, col-1, position, 3)
	p.module(row-1, col, position, 4)
	p.module(row, col-2, position, 5)
	p.module(row, col-1, position, 6)
	p.module(row, col, position, 7)
}

func (p *PlacementMap) corner1(position int) {
	p.module(p.rows-1, 0, position, 0)
	p.module(p.rows-1, 1, position, 1)
	p.module(p.rows-1, 2, position, 2)
	p.module(0, p.cols-2, position, 3)
	p.module(0, p.cols-1, position, 4)
	p.module(1, p.cols-1, position, 5)
	p.module(2, p.cols-1, position, 6)
	p.module(3, p.cols-1, position, 7)
}

func (p *PlacementMap) corner2(position int) {
	p.module(p.rows-3, 0, position, 0)
	p.module(p.rows-2, 0, position, 1)
	p.module(p.rows-1, 0, position, 2)
	p.module(0, p.cols-4, position, 3)
	p.module(0, p.cols-3, position, 4)
	p.module(0, p.cols-2, position, 5)
	p.module(0, p.cols-1, position, 6)
	p.module(1, p.cols-1, position, 7)
}

func (p *PlacementMap) corner3(position int) {
	p.module(p.rows-3, 0, position, 0)
	p.module(p.rows-2, 0, position, 1)
	p.module(p.rows-1, 0, position, 2)
	p.module(0, p.cols-2, position, 3)
	p.module(0, p.cols-1, position, 4)
	p.module(1, p.cols-1, position, 5)
	p.module(2, p.cols-1, position, 6)
	p.module(3, p.cols-1, position, 7)
}

func (p *PlacementMap) corner4(position int) {
	p.module(p.rows-1, 0, position, 0)
	p.module(p.rows-1, p.cols-1, position, 1)
	p.module(0, p.cols-3, position, 2)
	p.module(0, p.cols-2, position, 3)
	p.module(0, p.cols-1, position, 4)
	p.module(1, p.cols-3, position, 5)
	p.module(1, p.cols-2, position, 6)
	p.module(1, p.cols-1, position, 7)
}
