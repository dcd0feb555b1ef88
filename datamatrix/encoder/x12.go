// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

func x12CharValue(c byte) (int, error) {
	switch {
	case c == 13:
		return 0, nil
	case c == '*':
		return 1, nil
	case c == '>':
		return 2, nil
	case c == ' ':
		return 3, nil
	case c >= '0' && c <= '9':
		return int(c-'0') + 4, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 14, nil
	}
	return 0, ErrIllegalCharacter
}

// encodeX12 runs the X12 compactor (Annex P §4.6). Unlike C40/Text, X12
// flushes each completed triple immediately rather than deferring to
// end-of-data.
func encodeX12(ctx *encoderContext) error {
	var buffer []int
	for ctx.hasMoreCharacters() {
		c := ctx.currentChar()
		ctx.setCurrentPos(ctx.currentPos() + 1)

		v, err := x12CharValue(c)
		if err != nil {
			return err
		}
		buffer = append(buffer, v)

		if len(buffer)%3 == 0 {
			flushTriples(ctx, &buffer)
			if ctx.hasMoreCharacters() {
				newMode := lookAhead(ctx.effectiveMessage(), ctx.currentPos(), modeX12)
				if newMode != modeX12 {
					ctx.setNewEncoding(newMode)
					break
				}
			}
		}
	}
	return x12EOD(ctx, &buffer)
}

// x12EOD implements the X12 end-of-data epilogue: unflushed values are
// abandoned by rewinding the cursor, and an explicit unlatch is emitted
// unless the symbol ends exactly on the X12/Ascii boundary.
func x12EOD(ctx *encoderContext, buffer *[]int) error {
	ctx.setCurrentPos(ctx.currentPos() - len(*buffer))
	*buffer = nil

	remaining := ctx.remainingCharacters()
	if err := ctx.updateSymbolInfo(ctx.codewordCount()); err != nil {
		return err
	}
	available := ctx.symbolInfo.DataCapacity - ctx.codewordCount()

	if remaining > 1 || available > 1 || remaining != available {
		ctx.addCodeword(codewordUnlatch)
	}
	if ctx.newEncoding == modeNone {
		ctx.setNewEncoding(modeAscii)
	}
	return nil
}
