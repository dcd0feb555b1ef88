// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// Mode identifies one of the six Annex P compaction modes.
type Mode int

const (
	modeAscii Mode = iota
	modeC40
	modeText
	modeX12
	modeEdifact
	modeBase256
)

// modeNone marks the absence of a pending mode switch.
const modeNone Mode = -1

// Special codeword values.
const (
	codewordPad        = 129
	codewordUpperShift = 235
	codewordMacro05    = 236
	codewordMacro06    = 237
	codewordUnlatch    = 254 // unlatches C40/Text/X12 back to Ascii
)

// Latch codewords, indexed by the mode they switch into.
const (
	latchToC40     = 230
	latchToBase256 = 231
	latchToX12     = 238
	latchToText    = 239
	latchToEdifact = 240
)

func latchCodewordFor(m Mode) byte {
	switch m {
	case modeC40:
		return latchToC40
	case modeText:
		return latchToText
	case modeX12:
		return latchToX12
	case modeEdifact:
		return latchToEdifact
	case modeBase256:
		return latchToBase256
	}
	return 0
}

// encoderContext is the shared mutable state of one encoding run. It is
// threaded through the compactors by exclusive ownership and never shared
// across goroutines.
type encoderContext struct {
	msg []byte // ISO-8859-1 octets, including the skipped macro trailer if any
	pos int    // cursor into msg

	codewords []byte

	shape                  SymbolShapeHint
	minW, minH, maxW, maxH int
	symbolInfo             *SymbolInfo

	skipAtEnd int // trailing octets the compactors must pretend don't exist

	newEncoding Mode // pending mode switch requested by the active compactor
}

func newEncoderContext(msg []byte) *encoderContext {
	return &encoderContext{msg: msg, newEncoding: modeNone}
}

func (c *encoderContext) setSymbolShape(shape SymbolShapeHint) { c.shape = shape }

func (c *encoderContext) setSizeConstraints(minW, minH, maxW, maxH int) {
	c.minW, c.minH, c.maxW, c.maxH = minW, minH, maxW, maxH
}

func (c *encoderContext) setSkipAtEnd(n int) { c.skipAtEnd = n }

// hasMoreCharacters reports whether the cursor has not yet reached the
// skip-protected end of the message.
func (c *encoderContext) hasMoreCharacters() bool {
	return c.pos < len(c.msg)-c.skipAtEnd
}

// remainingCharacters returns the number of characters not yet consumed,
// excluding the skipped trailer.
func (c *encoderContext) remainingCharacters() int {
	return len(c.msg) - c.skipAtEnd - c.pos
}

// effectiveMessage returns the message with the skip-protected trailer
// removed, the view the look-ahead arbiter is allowed to see.
func (c *encoderContext) effectiveMessage() []byte {
	return c.msg[:len(c.msg)-c.skipAtEnd]
}

func (c *encoderContext) currentChar() byte { return c.msg[c.pos] }
func (c *encoderContext) currentPos() int   { return c.pos }
func (c *encoderContext) setCurrentPos(pos int) { c.pos = pos }

func (c *encoderContext) addCodeword(b byte) { c.codewords = append(c.codewords, b) }
func (c *encoderContext) codewordCount() int { return len(c.codewords) }

func (c *encoderContext) setNewEncoding(m Mode) { c.newEncoding = m }
func (c *encoderContext) clearNewEncoding()     { c.newEncoding = modeNone }

// resetSymbolInfo forces the next updateSymbolInfo call to re-query the
// catalog instead of trusting a cached SymbolInfo. Compactor backtracking
// shrinks the eventual codeword count, so a previously selected symbol may
// no longer be the smallest one that fits.
func (c *encoderContext) resetSymbolInfo() { c.symbolInfo = nil }

// updateSymbolInfo ensures symbolInfo can hold at least length codewords,
// re-querying the catalog only when the cached entry no longer suffices.
func (c *encoderContext) updateSymbolInfo(length int) error {
	if c.symbolInfo != nil && c.symbolInfo.DataCapacity >= length {
		return nil
	}
	si, err := Lookup(length, c.shape, c.minW, c.minH, c.maxW, c.maxH)
	if err != nil {
		return err
	}
	c.symbolInfo = si
	return nil
}
