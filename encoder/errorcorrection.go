// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"github.com/woo-j/OkapiBarcode-sub001/reedsolomon"
)

var rsEncoder = reedsolomon.NewEncoder(reedsolomon.DataMatrixField)

// appendErrorCorrection appends the interleaved Reed-Solomon error
// correction codewords to a padded data stream. Data codewords are
// distributed round-robin across the symbol's blocks; each block's parity
// is computed independently and interleaved the same way.
func appendErrorCorrection(data []byte, si *SymbolInfo) []byte {
	blocks := si.InterleavedBlockCount()
	out := make([]byte, si.TotalCodewords())
	copy(out, data)

	for b := 0; b < blocks; b++ {
		var block []byte
		for i := b; i < si.DataCapacity; i += blocks {
			block = append(block, data[i])
		}
		ecc := rsEncoder.Encode(block, si.RSBlockError)
		for j, cw := range ecc {
			pos := si.DataCapacity + b + j*blocks
			if si.MatrixWidth == 144 {
				// The 144x144 symbol interleaves its parity with a
				// fixed skew: the first 8 blocks shift forward, the
				// last 2 back.
				if b < 8 {
					pos += 2
				} else {
					pos -= 8
				}
			}
			out[pos] = cw
		}
	}
	return out
}
