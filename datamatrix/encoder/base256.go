// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "fmt"

// randomize255 is the per-position byte permutation applied to every
// Base-256 buffer byte before it becomes a codeword.
func randomize255(ch byte, pos int) byte {
	t := int(ch) + ((149 * pos) % 255) + 1
	if t <= 255 {
		return byte(t)
	}
	return byte(t - 256)
}

// encodeBase256 runs the Base-256 compactor (Annex P §4.8). The buffer's
// first byte is a length placeholder; it's only filled in (as one or two
// bytes, growing the buffer by one byte in the two-byte case) once the
// run's extent is known to matter, i.e. when more characters remain or
// the symbol needs padding. When the run instead ends exactly at the
// symbol's capacity, the placeholder codeword is still emitted, just left
// at its initial zero value.
func encodeBase256(ctx *encoderContext) error {
	buffer := []byte{0}
	for ctx.hasMoreCharacters() {
		c := ctx.currentChar()
		ctx.setCurrentPos(ctx.currentPos() + 1)
		buffer = append(buffer, c)

		newMode := lookAhead(ctx.effectiveMessage(), ctx.currentPos(), modeBase256)
		if newMode != modeBase256 {
			ctx.setNewEncoding(newMode)
			break
		}
	}

	dataCount := len(buffer) - 1
	if err := ctx.updateSymbolInfo(ctx.codewordCount() + dataCount + 1); err != nil {
		return err
	}
	mustPad := ctx.symbolInfo.DataCapacity-(ctx.codewordCount()+dataCount+1) > 0

	out := buffer
	if ctx.hasMoreCharacters() || mustPad {
		switch {
		case dataCount <= 249:
			out[0] = byte(dataCount)
		case dataCount <= 1555:
			out = make([]byte, 0, len(buffer)+1)
			out = append(out, byte(dataCount/250+249), byte(dataCount%250))
			out = append(out, buffer[1:]...)
		default:
			return fmt.Errorf("datamatrix/encoder: base256 run of %d octets: %w", dataCount, ErrMessageTooLong)
		}
	}

	for _, b := range out {
		ctx.addCodeword(randomize255(b, ctx.codewordCount()+1))
	}
	return nil
}
