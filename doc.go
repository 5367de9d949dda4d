// Package datamatrix encodes Data Matrix ECC 200 two-dimensional barcode
// symbols as defined in ISO/IEC 16022.
//
// The encoder compacts arbitrary byte payloads using the six ECC 200
// encodation schemes (ASCII, C40, Text, X12, EDIFACT and Base 256), choosing
// between them with the standard's look-ahead heuristic, appends Reed-Solomon
// error correction codewords, and places every codeword bit into the module
// grid of the smallest symbol size that fits.
//
// Encoding is a pure computation: every call builds its own state, so a
// single Options value may be shared by concurrent goroutines.
package datamatrix
