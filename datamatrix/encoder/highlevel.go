// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import "bytes"

var (
	macro05Header = []byte{'[', ')', '>', 0x1E, '0', '5', 0x1D}
	macro06Header = []byte{'[', ')', '>', 0x1E, '0', '6', 0x1D}
	macroTrailer  = []byte{0x1E, 0x04}
)

// randomize253 is the per-position byte permutation applied to every
// padding codeword after the first.
func randomize253(ch byte, pos int) byte {
	t := int(ch) + ((149 * pos) % 253) + 1
	if t <= 254 {
		return byte(t)
	}
	return byte(t - 254)
}

// Encode performs the Annex P high-level encoding of msg into a sequence of
// Data Matrix codewords, selecting the smallest symbol (subject to shape and
// min/max dimension constraints) that holds the result.
func Encode(msg string, shape SymbolShapeHint, minW, minH, maxW, maxH int) ([]byte, error) {
	octets, err := transcodeISO8859_1(msg)
	if err != nil {
		return nil, err
	}

	ctx := newEncoderContext(octets)
	ctx.setSymbolShape(shape)
	ctx.setSizeConstraints(minW, minH, maxW, maxH)

	switch {
	case isMacro(octets, macro05Header):
		ctx.addCodeword(codewordMacro05)
		ctx.setSkipAtEnd(len(macroTrailer))
		ctx.setCurrentPos(len(macro05Header))
	case isMacro(octets, macro06Header):
		ctx.addCodeword(codewordMacro06)
		ctx.setSkipAtEnd(len(macroTrailer))
		ctx.setCurrentPos(len(macro06Header))
	}

	mode := modeAscii
	for ctx.hasMoreCharacters() {
		var err error
		switch mode {
		case modeAscii:
			err = encodeASCII(ctx)
		case modeC40:
			err = encodeC40(ctx)
		case modeText:
			err = encodeText(ctx)
		case modeX12:
			err = encodeX12(ctx)
		case modeEdifact:
			err = encodeEdifact(ctx)
		case modeBase256:
			err = encodeBase256(ctx)
		}
		if err != nil {
			return nil, err
		}
		if ctx.newEncoding != modeNone {
			mode = ctx.newEncoding
			ctx.clearNewEncoding()
		}
	}

	return finalizeCodewords(ctx, mode)
}

// isMacro reports whether octets begins with header and ends with the macro
// trailer. The two checks are independent, so a message exactly as long as
// header+trailer combined (no payload octets) still counts.
func isMacro(octets, header []byte) bool {
	return len(octets) > len(header) &&
		len(octets) > len(macroTrailer) &&
		bytes.HasPrefix(octets, header) &&
		bytes.HasSuffix(octets, macroTrailer)
}

// finalizeCodewords implements Annex P §4.1 step 4: lock the final symbol,
// unlatch back to Ascii if the active mode requires it, then pad.
func finalizeCodewords(ctx *encoderContext, mode Mode) ([]byte, error) {
	length := ctx.codewordCount()
	if err := ctx.updateSymbolInfo(length); err != nil {
		return nil, err
	}
	capacity := ctx.symbolInfo.DataCapacity

	if length < capacity && mode != modeAscii && mode != modeBase256 {
		ctx.addCodeword(codewordUnlatch)
	}
	if ctx.codewordCount() < capacity {
		ctx.addCodeword(codewordPad)
	}
	for ctx.codewordCount() < capacity {
		ctx.addCodeword(randomize253(codewordPad, ctx.codewordCount()+1))
	}
	return ctx.codewords, nil
}
