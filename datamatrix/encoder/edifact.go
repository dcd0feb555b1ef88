// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

func edifactCharValue(c byte) (int, error) {
	switch {
	case c >= 0x20 && c <= 0x3F:
		return int(c), nil
	case c >= 0x40 && c <= 0x5E:
		return int(c) - 64, nil
	}
	return 0, ErrIllegalCharacter
}

// edifactPack packs 1..4 six-bit EDIFACT values (zero-padded to four) into
// the codewords they occupy: 1 codeword for a single value, 2 for two, 3
// for three or four.
func edifactPack(vals []int) ([]byte, error) {
	for _, v := range vals {
		if v < 0 || v > 63 {
			return nil, ErrIllegalCharacter
		}
	}
	padded := make([]int, 4)
	copy(padded, vals)
	v := (padded[0] << 18) | (padded[1] << 12) | (padded[2] << 6) | padded[3]
	cws := []byte{byte((v >> 16) & 0xFF), byte((v >> 8) & 0xFF), byte(v & 0xFF)}

	switch len(vals) {
	case 1:
		return cws[:1], nil
	case 2:
		return cws[:2], nil
	default: // 3 or 4
		return cws[:3], nil
	}
}

func flushEdifactQuad(ctx *encoderContext, vals []int) error {
	cws, err := edifactPack(vals)
	if err != nil {
		return err
	}
	for _, cw := range cws {
		ctx.addCodeword(cw)
	}
	return nil
}

// encodeEdifact runs the EDIFACT compactor (Annex P §4.7), packing groups
// of four characters into three codewords as they complete.
func encodeEdifact(ctx *encoderContext) error {
	var buffer []int
	for ctx.hasMoreCharacters() {
		c := ctx.currentChar()
		ctx.setCurrentPos(ctx.currentPos() + 1)

		v, err := edifactCharValue(c)
		if err != nil {
			return err
		}
		buffer = append(buffer, v)

		if len(buffer) == 4 {
			if err := flushEdifactQuad(ctx, buffer); err != nil {
				return err
			}
			buffer = buffer[:0]
			if ctx.hasMoreCharacters() {
				newMode := lookAhead(ctx.effectiveMessage(), ctx.currentPos(), modeEdifact)
				if newMode != modeEdifact {
					break
				}
			}
		}
	}
	return edifactEOD(ctx, &buffer)
}

// edifactEOD implements the EDIFACT end-of-data epilogue (Annex P §4.7).
// EDIFACT always hands control back to Ascii, even when the arbiter would
// otherwise have picked a different mode, and even when computing the EOD
// codewords themselves fails.
func edifactEOD(ctx *encoderContext, buffer *[]int) error {
	defer ctx.setNewEncoding(modeAscii)

	b := append(append([]int{}, *buffer...), 31) // push the unlatch value
	*buffer = nil
	count := len(b)

	if count == 1 {
		if err := ctx.updateSymbolInfo(ctx.codewordCount()); err != nil {
			return err
		}
		available := ctx.symbolInfo.DataCapacity - ctx.codewordCount()
		if !ctx.hasMoreCharacters() && available <= 2 {
			return nil // a trailing unlatch-only buffer can be dropped outright
		}
	}

	encoded, err := edifactPack(b)
	if err != nil {
		return err
	}

	restChars := count - 1
	restInAscii := !ctx.hasMoreCharacters() && restChars <= 2

	// Falling back to Ascii only pays off if there's genuinely little room
	// left; re-check against the capacity the rewound characters would need.
	if restChars <= 2 {
		if err := ctx.updateSymbolInfo(ctx.codewordCount() + restChars); err != nil {
			return err
		}
		available := ctx.symbolInfo.DataCapacity - ctx.codewordCount()
		if available >= 3 {
			restInAscii = false
			if err := ctx.updateSymbolInfo(ctx.codewordCount() + len(encoded)); err != nil {
				return err
			}
		}
	}

	if restInAscii {
		ctx.resetSymbolInfo()
		ctx.setCurrentPos(ctx.currentPos() - restChars)
		return nil
	}

	for _, cw := range encoded {
		ctx.addCodeword(cw)
	}
	return nil
}
