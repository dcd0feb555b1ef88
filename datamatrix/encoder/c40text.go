// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "fmt"

// charValueFunc maps one octet to the sequence of C40/Text values (0..39,
// possibly preceded by a shift-set prefix) needed to represent it.
type charValueFunc func(byte) ([]int, error)

// c40CharValues implements the C40 value table from Annex P §4.4.
func c40CharValues(b byte) ([]int, error) {
	if b >= 0x80 {
		rest, err := c40CharValues(b - 0x80)
		if err != nil {
			return nil, err
		}
		return append([]int{1, 0x1E}, rest...), nil
	}
	switch {
	case b == ' ':
		return []int{3}, nil
	case b >= '0' && b <= '9':
		return []int{int(b-'0') + 4}, nil
	case b >= 'A' && b <= 'Z':
		return []int{int(b-'A') + 14}, nil
	case b <= 0x1F:
		return []int{0, int(b)}, nil
	case b >= '!' && b <= '/':
		return []int{1, int(b - '!')}, nil
	case b >= ':' && b <= '@':
		return []int{1, int(b-':') + 15}, nil
	case b >= '[' && b <= '_':
		return []int{1, int(b-'[') + 22}, nil
	case b >= 0x60 && b <= 0x7F:
		return []int{2, int(b - 0x60)}, nil
	}
	return nil, ErrIllegalCharacter
}

// textCharValues implements the Text value table from Annex P §4.4.
func textCharValues(b byte) ([]int, error) {
	if b >= 0x80 {
		rest, err := textCharValues(b - 0x80)
		if err != nil {
			return nil, err
		}
		return append([]int{1, 0x1E}, rest...), nil
	}
	switch {
	case b == ' ':
		return []int{3}, nil
	case b >= '0' && b <= '9':
		return []int{int(b-'0') + 4}, nil
	case b >= 'a' && b <= 'z':
		return []int{int(b-'a') + 14}, nil
	case b <= 0x1F:
		return []int{0, int(b)}, nil
	case b >= '!' && b <= '/':
		return []int{1, int(b - '!')}, nil
	case b >= ':' && b <= '@':
		return []int{1, int(b-':') + 15}, nil
	case b >= '[' && b <= '_':
		return []int{1, int(b-'[') + 22}, nil
	case b == '`':
		return []int{2, 0}, nil
	case b >= 'A' && b <= 'Z':
		return []int{2, int(b-'A') + 1}, nil
	case b >= '{' && b <= 0x7F:
		return []int{2, int(b-'{') + 27}, nil
	}
	return nil, ErrIllegalCharacter
}

func encodeC40(ctx *encoderContext) error { return encodeC40Text(ctx, modeC40, c40CharValues) }
func encodeText(ctx *encoderContext) error { return encodeC40Text(ctx, modeText, textCharValues) }

// flushTriples converts every complete group of three buffered C40/Text
// values into two codewords, leaving any incomplete trailing group in place.
func flushTriples(ctx *encoderContext, buffer *[]int) {
	b := *buffer
	i := 0
	for i+3 <= len(b) {
		v := b[i]*1600 + b[i+1]*40 + b[i+2] + 1
		ctx.addCodeword(byte(v / 256))
		ctx.addCodeword(byte(v % 256))
		i += 3
	}
	*buffer = b[i:]
}

// encodeC40Text is the shared skeleton behind both the C40 and Text
// compactors (Annex P §4.4-4.5). It buffers values locally and only commits
// them to the context's codewords once a full run ends, either by a mode
// switch at a triple boundary or by reaching end-of-data.
func encodeC40Text(ctx *encoderContext, mode Mode, charValues charValueFunc) error {
	var buffer []int
	lastCharSize := 0
	available := 0

	for ctx.hasMoreCharacters() {
		c := ctx.currentChar()
		ctx.setCurrentPos(ctx.currentPos() + 1)

		vals, err := charValues(c)
		if err != nil {
			return err
		}
		buffer = append(buffer, vals...)
		lastCharSize = len(vals)

		unwritten := (len(buffer) / 3) * 2
		if err := ctx.updateSymbolInfo(ctx.codewordCount() + unwritten); err != nil {
			return err
		}
		available = ctx.symbolInfo.DataCapacity - (ctx.codewordCount() + unwritten)

		if !ctx.hasMoreCharacters() {
			break
		}
		if len(buffer)%3 == 0 {
			newMode := lookAhead(ctx.effectiveMessage(), ctx.currentPos(), mode)
			if newMode != mode {
				ctx.setNewEncoding(newMode)
				flushTriples(ctx, &buffer)
				return nil
			}
		}
	}

	return c40TextEOD(ctx, mode, &buffer, lastCharSize, available, charValues)
}

// backtrackOneCharacter undoes the most recently buffered character: its
// values are dropped from buffer and the cursor is moved back to point at
// it again. lastCharSize is set to the number of values of the character
// just backtracked over (the one now at the cursor), or 0 once buffer is
// empty.
func backtrackOneCharacter(ctx *encoderContext, buffer *[]int, lastCharSize *int, charValues charValueFunc) error {
	*buffer = (*buffer)[:len(*buffer)-*lastCharSize]
	ctx.setCurrentPos(ctx.currentPos() - 1)

	if len(*buffer) > 0 {
		prev, err := charValues(ctx.currentChar())
		if err != nil {
			return err
		}
		*lastCharSize = len(prev)
	} else {
		*lastCharSize = 0
	}
	ctx.resetSymbolInfo()
	return nil
}

// recomputeAvailable re-derives the capacity headroom after a backtrack has
// changed the size of the pending buffer.
func recomputeAvailable(ctx *encoderContext, buffer []int) (int, error) {
	unwritten := (len(buffer) / 3) * 2
	if err := ctx.updateSymbolInfo(ctx.codewordCount() + unwritten); err != nil {
		return 0, err
	}
	return ctx.symbolInfo.DataCapacity - (ctx.codewordCount() + unwritten), nil
}

// c40TextEOD implements Annex P §4.5: tail-adjustment followed by the
// end-of-data epilogue shared by C40 and Text.
func c40TextEOD(ctx *encoderContext, mode Mode, buffer *[]int, lastCharSize, available int, charValues charValueFunc) error {
	if len(*buffer)%3 == 2 && available != 2 {
		if err := backtrackOneCharacter(ctx, buffer, &lastCharSize, charValues); err != nil {
			return err
		}
	}

	for len(*buffer)%3 == 1 && ((lastCharSize <= 3 && available != 1) || lastCharSize > 3) {
		if err := backtrackOneCharacter(ctx, buffer, &lastCharSize, charValues); err != nil {
			return err
		}
	}

	var err error
	available, err = recomputeAvailable(ctx, *buffer)
	if err != nil {
		return err
	}

	rest := len(*buffer) % 3
	switch rest {
	case 2:
		*buffer = append(*buffer, 0) // Shift-1 sentinel
		flushTriples(ctx, buffer)
		if ctx.hasMoreCharacters() {
			ctx.addCodeword(codewordUnlatch)
		}
	case 1:
		if available != 1 {
			return fmt.Errorf("datamatrix/encoder: c40/text eod rest=1 available=%d: %w", available, ErrInternalInvariant)
		}
		flushTriples(ctx, buffer)
		if ctx.hasMoreCharacters() {
			ctx.addCodeword(codewordUnlatch)
		}
		ctx.setCurrentPos(ctx.currentPos() - 1)
	case 0:
		flushTriples(ctx, buffer)
		if available > 0 || ctx.hasMoreCharacters() {
			ctx.addCodeword(codewordUnlatch)
		}
	default:
		return fmt.Errorf("datamatrix/encoder: c40/text eod rest=%d: %w", rest, ErrInternalInvariant)
	}

	ctx.setNewEncoding(modeAscii)
	return nil
}
