// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookAheadIsPure(t *testing.T) {
	msg := []byte("HELLO WORLD 123 X12>TEST")
	for start := 0; start < len(msg); start += 3 {
		want := lookAhead(msg, start, modeAscii)
		for i := 0; i < 5; i++ {
			assert.Equal(t, want, lookAhead(msg, start, modeAscii))
		}
	}
}

func TestLookAheadShortUppercaseRunPrefersAscii(t *testing.T) {
	assert.Equal(t, modeAscii, lookAhead([]byte("A"), 0, modeAscii))
}

func TestLookAheadSixUppercaseLettersLatchesC40(t *testing.T) {
	assert.Equal(t, modeC40, lookAhead([]byte("ABCDEF"), 0, modeAscii))
}

func TestLookAheadExtendedAsciiStaysAscii(t *testing.T) {
	assert.Equal(t, modeAscii, lookAhead([]byte{0xE9}, 0, modeAscii))
}

func TestLookAheadLowercaseRunPrefersText(t *testing.T) {
	got := lookAhead([]byte("hello there friend"), 0, modeAscii)
	assert.Equal(t, modeText, got)
}

func TestLookAheadX12TermSeparatorBreaksTie(t *testing.T) {
	// C40 and X12 cost the same over the letters, but the '>' separator is
	// native to X12 and needs a shift pair in C40, so two characters later
	// X12 is the unique minimum and wins.
	got := lookAhead([]byte("ABCD>REST"), 0, modeAscii)
	assert.Equal(t, modeX12, got)
}

func TestLookAheadLongDigitRunPrefersAscii(t *testing.T) {
	got := lookAhead([]byte("1234567890123456"), 0, modeAscii)
	assert.Equal(t, modeAscii, got)
}

func TestLookAheadExtendedAsciiRunPrefersBase256(t *testing.T) {
	// Extended-ASCII octets cost Ascii an extra upper-shift codeword each,
	// while Base-256 pays a flat per-octet rate; a long run favors Base-256.
	msg := []byte{0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87}
	got := lookAhead(msg, 0, modeAscii)
	assert.Equal(t, modeBase256, got)
}

func TestIsUniqueMin(t *testing.T) {
	mins := [6]int{5, 3, 7, 3, 8, 9}
	assert.False(t, isUniqueMin(mins, modeC40))  // tied with modeX12
	assert.False(t, isUniqueMin(mins, modeX12))  // tied with modeC40
	assert.False(t, isUniqueMin(mins, modeAscii))
}

func TestChooseTerminationModePrefersAsciiOnTie(t *testing.T) {
	mins := [6]int{2, 2, 5, 6, 7, 8}
	assert.Equal(t, modeAscii, chooseTerminationMode(mins))
}

func TestCharacterClassPredicates(t *testing.T) {
	assert.True(t, isDigit('5'))
	assert.False(t, isDigit('x'))
	assert.True(t, isExtendedASCII(0x80))
	assert.False(t, isExtendedASCII(0x7F))
	assert.True(t, isNativeC40('Q'))
	assert.False(t, isNativeC40('q'))
	assert.True(t, isNativeText('q'))
	assert.False(t, isNativeText('Q'))
	assert.True(t, isX12TermSep('>'))
	assert.True(t, isX12TermSep('*'))
	assert.True(t, isX12TermSep(13))
	assert.True(t, isNativeX12('>'))
	assert.True(t, isNativeEdifact('A'))
	assert.False(t, isNativeEdifact(0x7F))
	assert.False(t, isSpecialB256('A'))
}
