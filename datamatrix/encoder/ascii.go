// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// determineConsecutiveDigitCount returns the number of consecutive decimal
// digits starting at the context's current position.
func determineConsecutiveDigitCount(ctx *encoderContext) int {
	limit := len(ctx.msg) - ctx.skipAtEnd
	count := 0
	for pos := ctx.pos; pos < limit && isDigit(ctx.msg[pos]); pos++ {
		count++
	}
	return count
}

// encodeASCII runs the Ascii compactor (Annex P, §4.3) until the message is
// exhausted or the look-ahead arbiter requests a mode switch.
func encodeASCII(ctx *encoderContext) error {
	for ctx.hasMoreCharacters() {
		n := determineConsecutiveDigitCount(ctx)
		if n >= 2 {
			d1, d2 := ctx.msg[ctx.pos], ctx.msg[ctx.pos+1]
			ctx.addCodeword(byte((int(d1-'0'))*10+int(d2-'0')+130))
			ctx.setCurrentPos(ctx.currentPos() + 2)
			continue
		}

		newMode := lookAhead(ctx.effectiveMessage(), ctx.currentPos(), modeAscii)
		if newMode != modeAscii {
			ctx.addCodeword(latchCodewordFor(newMode))
			ctx.setNewEncoding(newMode)
			return nil
		}

		c := ctx.currentChar()
		ctx.setCurrentPos(ctx.currentPos() + 1)
		if isExtendedASCII(c) {
			ctx.addCodeword(codewordUpperShift)
			ctx.addCodeword(c - 128 + 1)
		} else {
			ctx.addCodeword(c + 1)
		}
	}
	return nil
}
