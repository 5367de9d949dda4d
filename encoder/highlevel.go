// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"math"
	"slices"
)

// mode identifies one of the six ECC 200 encodation schemes.
type mode int

const (
	modeASCII mode = iota
	modeC40
	modeText
	modeX12
	modeEDIFACT
	modeBase256
)

// Special codeword values.
const (
	padCodeword       = 129 // also terminates the data stream
	latchC40          = 230
	latchBase256      = 231
	fnc1Codeword      = 232
	structAppendStart = 233
	readerProgramming = 234
	upperShift        = 235 // shifts to the upper 128 characters in ASCII mode
	macro05           = 236
	macro06           = 237
	latchX12          = 238
	latchText         = 239
	latchEDIFACT      = 240
	eciCodeword       = 241
	unlatchASCII      = 254 // unlatch from C40/Text/X12 back to ASCII
)

// edifactUnlatch is the 6-bit in-stream value that returns EDIFACT encoding
// to ASCII at the next codeword boundary.
const edifactUnlatch = 31

// Macro 05/06 envelopes: a 7 byte header and a 2 byte trailer replaced by a
// single codeword.
const (
	macroHeader05 = "[)>\x1e05\x1d"
	macroHeader06 = "[)>\x1e06\x1d"
	macroTrailer  = "\x1e\x04"
)

// highLevel is the per-call state of the compaction state machine. Every
// encode builds a fresh value, keeping configured encoders safe for
// concurrent use.
type highLevel struct {
	input []byte
	gs1   bool

	sp        int  // index of the next input byte
	mode      mode // current encodation scheme
	codewords []byte
	buf       [8]int // pending C40/Text/X12 units or EDIFACT 6-bit values
	bufLen    int
	b256Start int // codeword index of the current Base 256 run, -1 outside a run
}

func (h *highLevel) emit(cw byte) {
	h.codewords = append(h.codewords, cw)
}

func (h *highLevel) pushUnit(v int) {
	h.buf[h.bufLen] = v
	h.bufLen++
}

// encodeStream runs prefix emission and the compaction state machine over
// the whole input. The returned state still carries any pending partial
// group; its completion depends on the room left in the selected symbol and
// is done by remainder.
func encodeStream(req *Request) *highLevel {
	h := &highLevel{input: req.Data, gs1: req.GS1, b256Start: -1}

	if req.StructuredAppendTotal > 0 {
		h.emit(structAppendStart)
		h.emit(byte((req.StructuredAppendPosition-1)<<4 | (16 - req.StructuredAppendTotal)))
		h.emit(byte(1 + (req.StructuredAppendFileID-1)/254))
		h.emit(byte(1 + (req.StructuredAppendFileID-1)%254))
	}
	if req.GS1 {
		h.emit(fnc1Codeword)
	}
	if req.ReaderInit {
		h.emit(readerProgramming)
	}
	if req.ECI > 0 {
		h.emitECI(req.ECI)
	}
	h.stripMacro()

	for h.sp < len(h.input) {
		switch h.mode {
		case modeASCII:
			h.asciiStep()
		case modeC40, modeText:
			h.c40TextStep()
		case modeX12:
			h.x12Step()
		case modeEDIFACT:
			h.edifactStep()
		case modeBase256:
			h.base256Step()
		}
	}
	if h.mode == modeBase256 {
		h.endBase256Run()
	}
	return h
}

// emitECI encodes an ECI escape. The value determines the 1, 2 or 3
// codeword form.
func (h *highLevel) emitECI(eci int) {
	h.emit(eciCodeword)
	switch {
	case eci <= 126:
		h.emit(byte(eci + 1))
	case eci <= 16382:
		h.emit(byte((eci-127)/254 + 128))
		h.emit(byte((eci-127)%254 + 1))
	default:
		h.emit(byte((eci-16383)/64516 + 192))
		h.emit(byte((eci-16383)/254%254 + 1))
		h.emit(byte((eci-16383)%254 + 1))
	}
}

// stripMacro replaces an industry macro envelope around the whole input
// with its single-codeword shorthand.
func (h *highLevel) stripMacro() {
	n := len(h.input)
	if n < 9 || string(h.input[n-2:]) != macroTrailer {
		return
	}
	switch string(h.input[:7]) {
	case macroHeader05:
		h.emit(macro05)
	case macroHeader06:
		h.emit(macro06)
	default:
		return
	}
	h.input = h.input[7 : n-2]
}

// twoDigits reports whether a two-digit pair starts at position sp.
func (h *highLevel) twoDigits(sp int) bool {
	return sp+1 < len(h.input) &&
		h.input[sp] >= '0' && h.input[sp] <= '9' &&
		h.input[sp+1] >= '0' && h.input[sp+1] <= '9'
}

func (h *highLevel) asciiStep() {
	if h.twoDigits(h.sp) {
		d := (h.input[h.sp]-'0')*10 + (h.input[h.sp+1] - '0')
		h.emit(d + 130)
		h.sp += 2
		return
	}
	if next := h.lookAheadTest(h.sp, modeASCII); next != modeASCII {
		switch next {
		case modeC40:
			h.emit(latchC40)
		case modeText:
			h.emit(latchText)
		case modeX12:
			h.emit(latchX12)
		case modeEDIFACT:
			h.emit(latchEDIFACT)
		case modeBase256:
			h.emit(latchBase256)
			h.b256Start = len(h.codewords)
		}
		h.mode = next
		return
	}
	c := h.input[h.sp]
	switch {
	case h.gs1 && c == '[':
		h.emit(fnc1Codeword)
	case c > 127:
		h.emit(upperShift)
		h.emit(c - 128 + 1)
	default:
		h.emit(c + 1)
	}
	h.sp++
}

func (h *highLevel) c40TextStep() {
	if h.bufLen == 0 {
		if next := h.lookAheadTest(h.sp, h.mode); next != h.mode {
			h.emit(unlatchASCII)
			h.mode = modeASCII
			return
		}
	}
	c := h.input[h.sp]
	var set, value int
	switch {
	case h.gs1 && c == '[':
		set, value = 2, 27 // FNC1
	case c > 127:
		h.pushUnit(1)  // shift 2
		h.pushUnit(30) // upper shift
		set, value = charValue(h.mode, c-128)
	default:
		set, value = charValue(h.mode, c)
	}
	if set != 0 {
		h.pushUnit(set - 1)
	}
	h.pushUnit(value)
	h.sp++
	for h.bufLen >= 3 {
		h.flushTriple()
	}
}

// flushTriple packs the first three pending units into two codewords.
func (h *highLevel) flushTriple() {
	iv := 1600*h.buf[0] + 40*h.buf[1] + h.buf[2] + 1
	h.emit(byte(iv / 256))
	h.emit(byte(iv % 256))
	copy(h.buf[:], h.buf[3:h.bufLen])
	h.bufLen -= 3
}

// charValue maps a byte (0..127) to its C40 or Text set and value. Set 0 is
// the basic set; sets 1-3 require a preceding shift unit.
func charValue(m mode, c byte) (set, value int) {
	if m == modeText {
		return textValue(c)
	}
	return c40Value(c)
}

func c40Value(c byte) (set, value int) {
	switch {
	case c == ' ':
		return 0, 3
	case c >= '0' && c <= '9':
		return 0, int(c-'0') + 4
	case c >= 'A' && c <= 'Z':
		return 0, int(c-'A') + 14
	case c < 32:
		return 1, int(c)
	case c <= '/':
		return 2, int(c - '!')
	case c <= '@':
		return 2, int(c-':') + 15
	case c <= '_':
		return 2, int(c-'[') + 22
	default:
		return 3, int(c - 96)
	}
}

func textValue(c byte) (set, value int) {
	switch {
	case c == ' ':
		return 0, 3
	case c >= '0' && c <= '9':
		return 0, int(c-'0') + 4
	case c >= 'a' && c <= 'z':
		return 0, int(c-'a') + 14
	case c < 32:
		return 1, int(c)
	case c <= '/':
		return 2, int(c - '!')
	case c <= '@':
		return 2, int(c-':') + 15
	case c >= '[' && c <= '_':
		return 2, int(c-'[') + 22
	case c == '`':
		return 3, 0
	case c <= 'Z':
		return 3, int(c-'A') + 1
	default:
		return 3, int(c-123) + 27
	}
}

// x12Value maps a byte to its X12 value. ok is false for bytes outside the
// X12 set.
func x12Value(c byte) (value int, ok bool) {
	switch {
	case c == 13:
		return 0, true
	case c == '*':
		return 1, true
	case c == '>':
		return 2, true
	case c == ' ':
		return 3, true
	case c >= '0' && c <= '9':
		return int(c - 44), true
	case c >= 'A' && c <= 'Z':
		return int(c - 51), true
	default:
		return 0, false
	}
}

func isX12(c byte) bool {
	_, ok := x12Value(c)
	return ok
}

func (h *highLevel) x12Step() {
	if h.bufLen == 0 {
		if next := h.lookAheadTest(h.sp, modeX12); next != modeX12 {
			h.emit(unlatchASCII)
			h.mode = modeASCII
			return
		}
	}
	v, ok := x12Value(h.input[h.sp])
	if !ok {
		// Mispredicted run: leave without consuming.
		h.emit(unlatchASCII)
		h.mode = modeASCII
		return
	}
	h.pushUnit(v)
	h.sp++
	for h.bufLen >= 3 {
		h.flushTriple()
	}
}

func (h *highLevel) edifactStep() {
	// The estimator runs with three buffered values so that the unlatch
	// value completes the group.
	if h.bufLen == 3 {
		if next := h.lookAheadTest(h.sp, modeEDIFACT); next != modeEDIFACT {
			h.exitEdifact()
			return
		}
	}
	c := h.input[h.sp]
	if c < 32 || c > 94 {
		// Mispredicted run: leave without consuming.
		h.exitEdifact()
		return
	}
	h.pushUnit(int(c & 0x3F))
	h.sp++
	if h.bufLen == 4 {
		h.flushEdifactGroup()
	}
}

// flushEdifactGroup packs four pending 6-bit values into three codewords.
func (h *highLevel) flushEdifactGroup() {
	h.emit(byte(h.buf[0]<<2 | h.buf[1]>>4))
	h.emit(byte(h.buf[1]&0x0F<<4 | h.buf[2]>>2))
	h.emit(byte(h.buf[2]&0x03<<6 | h.buf[3]))
	h.bufLen = 0
}

// exitEdifact appends the unlatch value to the pending group, emits the
// bytes that carry used bits, and returns to ASCII.
func (h *highLevel) exitEdifact() {
	h.codewords = append(h.codewords, packEdifactTail(h.buf[:h.bufLen])...)
	h.bufLen = 0
	h.mode = modeASCII
}

// packEdifactTail packs 0-3 pending values followed by the unlatch value
// into the minimum number of codewords.
func packEdifactTail(units []int) []byte {
	switch len(units) {
	case 0:
		return []byte{edifactUnlatch << 2}
	case 1:
		return []byte{
			byte(units[0]<<2 | edifactUnlatch>>4),
			byte(edifactUnlatch & 0x0F << 4),
		}
	case 2:
		return []byte{
			byte(units[0]<<2 | units[1]>>4),
			byte(units[1]&0x0F<<4 | edifactUnlatch>>2),
			byte(edifactUnlatch & 0x03 << 6),
		}
	default:
		return []byte{
			byte(units[0]<<2 | units[1]>>4),
			byte(units[1]&0x0F<<4 | units[2]>>2),
			byte(units[2]&0x03<<6 | edifactUnlatch),
		}
	}
}

func (h *highLevel) base256Step() {
	if next := h.lookAheadTest(h.sp, modeBase256); next != modeBase256 {
		h.endBase256Run()
		h.mode = modeASCII
		return
	}
	c := h.input[h.sp]
	if h.gs1 && c == '[' {
		c = 29 // GS separator; Base 256 has no FNC1
	}
	h.emit(c)
	h.sp++
}

// endBase256Run inserts the length field in front of the run and applies
// the 255-state randomising algorithm to the whole field. Positions are
// final at this point: later codewords are only ever appended.
func (h *highLevel) endBase256Run() {
	n := len(h.codewords) - h.b256Start
	var prefix []byte
	if n <= 249 {
		prefix = []byte{byte(n)}
	} else {
		prefix = []byte{byte(249 + n/250), byte(n % 250)}
	}
	h.codewords = slices.Insert(h.codewords, h.b256Start, prefix...)
	for i := h.b256Start; i < h.b256Start+len(prefix)+n; i++ {
		h.codewords[i] = randomize255(h.codewords[i], i+1)
	}
	h.b256Start = -1
}

// randomize255 applies the 255-state randomising algorithm to a Base 256
// codeword at the given 1-based stream position.
func randomize255(cw byte, position int) byte {
	prn := (149*position)%255 + 1
	return byte((int(cw) + prn) % 256)
}

// randomize253 applies the 253-state randomising algorithm to a pad
// codeword at the given 1-based stream position.
func randomize253(cw byte, position int) byte {
	prn := (149*position)%253 + 1
	tmp := int(cw) + prn
	if tmp > 254 {
		tmp -= 254
	}
	return byte(tmp)
}

// remainder completes a stream that ended inside a non-ASCII scheme, given
// the number of unused codeword positions in a candidate symbol. Unlatches
// are omitted where the standard permits.
func (h *highLevel) remainder(symbolsLeft int) []byte {
	var tail []byte
	switch h.mode {
	case modeC40, modeText:
		switch h.bufLen {
		case 0:
			if symbolsLeft > 0 {
				tail = append(tail, unlatchASCII)
			}
		case 1:
			// Drop the pending unit and re-encode the final character
			// in ASCII.
			if symbolsLeft > 1 {
				tail = append(tail, unlatchASCII)
			}
			tail = append(tail, h.lastASCII()...)
		case 2:
			// Pad with a shift 1 value and flush as a full group.
			iv := 1600*h.buf[0] + 40*h.buf[1] + 1
			tail = append(tail, byte(iv/256), byte(iv%256))
			if symbolsLeft > 2 {
				tail = append(tail, unlatchASCII)
			}
		}
	case modeX12:
		// X12 cannot pad: value 0 is CR. Pending characters are
		// re-encoded in ASCII.
		if symbolsLeft == 1 && h.bufLen == 1 {
			tail = append(tail, h.lastASCII()...)
			break
		}
		if symbolsLeft > 0 {
			tail = append(tail, unlatchASCII)
		}
		if h.bufLen == 2 {
			tail = append(tail, h.input[len(h.input)-2]+1)
		}
		if h.bufLen >= 1 {
			tail = append(tail, h.lastASCII()...)
		}
	case modeEDIFACT:
		if symbolsLeft <= 2 && h.bufLen <= 2 {
			// Unlatch not required: the symbol ends here.
			if h.bufLen == 2 {
				tail = append(tail, h.input[len(h.input)-2]+1)
			}
			if h.bufLen >= 1 {
				tail = append(tail, h.lastASCII()...)
			}
			break
		}
		tail = append(tail, packEdifactTail(h.buf[:h.bufLen])...)
	}
	return tail
}

// lastASCII returns the ASCII encodation of the final input character.
func (h *highLevel) lastASCII() []byte {
	c := h.input[len(h.input)-1]
	if h.gs1 && c == '[' {
		return []byte{fnc1Codeword}
	}
	if c > 127 {
		return []byte{upperShift, c - 127}
	}
	return []byte{c + 1}
}

// padStream fills the stream up to the symbol's data capacity. The first
// pad codeword is literal; the rest are randomised.
func padStream(codewords []byte, capacity int) []byte {
	out := make([]byte, capacity)
	copy(out, codewords)
	for i := len(codewords); i < capacity; i++ {
		if i == len(codewords) {
			out[i] = padCodeword
		} else {
			out[i] = randomize253(padCodeword, i+1)
		}
	}
	return out
}

// stiction is the smallest cost difference the look-ahead acts on, keeping
// accumulated thirds and quarters from flapping on float noise.
const stiction = 1.0 / 24.0

// lookAheadTest scores each encodation scheme over the upcoming input and
// returns the scheme to use next, per the look-ahead procedure of ISO/IEC
// 16022 Annex P. Costs are seeded with the latch overhead of entering each
// scheme, accumulate per-character fractional codeword counts, and a scheme
// is chosen once it beats every rival by a full codeword. The EDIFACT
// penalties are deliberately higher than the Annex P values; they steer
// away from runs that would need escapes.
func (h *highLevel) lookAheadTest(position int, current mode) mode {
	var ascii, c40, text, x12, edf, b256 float64

	if current != modeASCII {
		ascii = 1
	}
	if current != modeC40 {
		c40 = 1
	}
	if current != modeText {
		text = 1
	}
	if current != modeX12 {
		x12 = 1
	}
	if current != modeEDIFACT {
		edf = 1
	}
	if current != modeBase256 {
		b256 = 1.25 // latch plus the eventual length field
	}

	for sp := position; sp < len(h.input); sp++ {
		c := h.input[sp]
		extended := c > 127

		if c >= '0' && c <= '9' {
			ascii += 0.5
		} else if extended {
			ascii = math.Ceil(ascii) + 2
		} else {
			ascii = math.Ceil(ascii) + 1
		}

		if c == ' ' || (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') {
			c40 += 2.0 / 3.0
		} else if extended {
			c40 += 8.0 / 3.0
		} else {
			c40 += 4.0 / 3.0
		}

		if c == ' ' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') {
			text += 2.0 / 3.0
		} else if extended {
			text += 8.0 / 3.0
		} else {
			text += 4.0 / 3.0
		}

		if isX12(c) {
			x12 += 2.0 / 3.0
		} else if extended {
			x12 += 13.0 / 3.0
		} else {
			x12 += 10.0 / 3.0
		}

		if c >= ' ' && c <= '^' {
			edf += 0.75
		} else {
			edf += 13 // raised from the Annex P value
		}
		if h.gs1 && c == '[' {
			edf += 13 // raised from the Annex P value
		}

		if h.gs1 && c == '[' {
			b256 += 4
		} else {
			b256++
		}

		if sp-position >= 3 {
			if m, ok := pickDominant(ascii, c40, text, x12, edf, b256); ok {
				if m == modeC40 {
					return h.breakC40X12Tie(c40, x12, sp)
				}
				return m
			}
		}
	}

	// End of data: round every cost up to whole codewords and take the
	// cheapest, preferring ASCII on ties and Base 256 only when strictly
	// better.
	ascii = math.Ceil(ascii)
	c40 = math.Ceil(c40)
	text = math.Ceil(text)
	x12 = math.Ceil(x12)
	edf = math.Ceil(edf)
	b256 = math.Ceil(b256)

	best, bestCount := modeC40, c40
	if x12 < bestCount {
		best, bestCount = modeX12, x12
	}
	if text < bestCount {
		best, bestCount = modeText, text
	}
	if edf < bestCount {
		best, bestCount = modeEDIFACT, edf
	}
	if b256 < bestCount {
		best, bestCount = modeBase256, b256
	}
	if ascii <= bestCount {
		best = modeASCII
	}
	return best
}

// pickDominant applies the mid-stream selection step: a scheme wins only
// when its cost plus the one-codeword switch penalty undercuts every rival.
// A C40 result still needs the C40/X12 tie-break.
func pickDominant(ascii, c40, text, x12, edf, b256 float64) (mode, bool) {
	if ascii+1 <= c40+stiction && ascii+1 <= text+stiction &&
		ascii+1 <= x12+stiction && ascii+1 <= edf+stiction && ascii+1 <= b256+stiction {
		return modeASCII, true
	}
	if b256+1 <= ascii+stiction ||
		(b256+1 < c40+stiction && b256+1 < text+stiction &&
			b256+1 < x12+stiction && b256+1 < edf+stiction) {
		return modeBase256, true
	}
	if edf+1 < ascii+stiction && edf+1 < c40+stiction &&
		edf+1 < text+stiction && edf+1 < x12+stiction && edf+1 < b256+stiction {
		return modeEDIFACT, true
	}
	if text+1 < ascii+stiction && text+1 < c40+stiction &&
		text+1 < x12+stiction && text+1 < edf+stiction && text+1 < b256+stiction {
		return modeText, true
	}
	if x12+1 < ascii+stiction && x12+1 < c40+stiction &&
		x12+1 < text+stiction && x12+1 < edf+stiction && x12+1 < b256+stiction {
		return modeX12, true
	}
	if c40+1 < ascii+stiction && c40+1 < text+stiction &&
		c40+1 < edf+stiction && c40+1 < b256+stiction && c40 <= x12 {
		return modeC40, true
	}
	return 0, false
}

// breakC40X12Tie resolves an exact C40/X12 cost tie by scanning ahead: X12
// wins if one of its terminator characters (CR, * or >) appears before the
// first character X12 cannot encode.
func (h *highLevel) breakC40X12Tie(c40, x12 float64, sp int) mode {
	if c40 < x12 {
		return modeC40
	}
	for sp2 := sp + 1; sp2 < len(h.input); sp2++ {
		c := h.input[sp2]
		if c == 13 || c == '*' || c == '>' {
			return modeX12
		}
		if !isX12(c) {
			break
		}
	}
	return modeC40
}
