// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeScenarios(t *testing.T) {
	cases := map[string]struct {
		msg      string
		wantHead []byte
		wantLen  int // total codeword count (smallest fitting symbol's capacity)
	}{
		"empty message pads from scratch": {
			msg:      "",
			wantHead: []byte{129, 175, 70},
			wantLen:  3,
		},
		"digit pairs compact two-for-one": {
			msg:      "123456",
			wantHead: []byte{142, 164, 186},
			wantLen:  3, // three digit-pair codewords exactly fill the smallest symbol
		},
		"single ascii letter": {
			msg:      "A",
			wantHead: []byte{66},
			wantLen:  3,
		},
		"run of uppercase letters latches to C40": {
			msg:      "ABCDEF",
			wantHead: []byte{230, 89, 233, 109, 36},
			wantLen:  5,
		},
		"eight letters force a C40 tail backtrack": {
			// "ABCDEFGH" latches to C40, buffers all eight single-value
			// letters, then hits rest=2 with available=0: one backtrack
			// lands on rest=1 with the same available, forcing a second
			// backtrack down to the clean "ABC","DEF" triples, an unlatch,
			// and the pushed-back "GH" re-encoded in Ascii.
			msg:      "ABCDEFGH",
			wantHead: []byte{230, 89, 233, 109, 36, codewordUnlatch, 'G' + 1, 'H' + 1},
			wantLen:  8,
		},
		"extended ascii uses upper shift": {
			msg:      "é",
			wantHead: []byte{235, 106},
			wantLen:  3,
		},
		"macro 05 wraps a digit-pair payload": {
			msg:      "[)>\x1E05\x1D42\x1E\x04",
			wantHead: []byte{236, 172},
			wantLen:  3,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Encode(tc.msg, ShapeHintForceNone, 0, 0, 0, 0)
			require.NoError(t, err)
			require.Len(t, got, tc.wantLen)
			assert.Equal(t, tc.wantHead, got[:len(tc.wantHead)])
			for _, b := range got {
				assert.True(t, b <= 255)
			}
		})
	}
}

func TestEncodeMacro06(t *testing.T) {
	got, err := Encode("[)>\x1E06\x1D42\x1E\x04", ShapeHintForceNone, 0, 0, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, byte(codewordMacro06), got[0])
	assert.Equal(t, byte(172), got[1])
}

func TestIsMacroAcceptsHeaderAndTrailerWithNoPayload(t *testing.T) {
	// Header and trailer with zero payload octets between them: the two
	// length checks are independent, so this must still count as a macro.
	msg := append(append([]byte{}, macro05Header...), macroTrailer...)
	assert.True(t, isMacro(msg, macro05Header))
}

func TestEncodeRespectsShapeAndSizeConstraints(t *testing.T) {
	got, err := Encode("HELLO WORLD", ShapeHintForceRectangle, 0, 0, 0, 0)
	require.NoError(t, err)
	// The message should fit some rectangular symbol; confirm the codeword
	// count matches a rectangular symbol's capacity, not a square one.
	found := false
	for i := range symbols {
		if symbols[i].Rectangular && symbols[i].DataCapacity == len(got) {
			found = true
			break
		}
	}
	assert.True(t, found, "expected codeword count %d to match a rectangular symbol", len(got))
}

func TestEncodeNoFittingSymbol(t *testing.T) {
	// Asking for a tiny max width forces failure for a message that needs
	// more capacity than any symbol at that width offers.
	long := make([]byte, 400)
	for i := range long {
		long[i] = 'A'
	}
	_, err := Encode(string(long), ShapeHintForceNone, 0, 0, 10, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoFittingSymbol)
}

func TestEncodeIllegalCharacter(t *testing.T) {
	_, err := Encode("héllo中", ShapeHintForceNone, 0, 0, 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalCharacter)
}

func TestEncodeOutputAlwaysFillsSelectedSymbol(t *testing.T) {
	msgs := []string{"", "A", "12", "ABCDEFGHIJ", "hello there", "EDIFACT:STUFF;", "a1B2c3"}
	for _, msg := range msgs {
		got, err := Encode(msg, ShapeHintForceNone, 0, 0, 0, 0)
		require.NoError(t, err)
		si, err := Lookup(len(got), ShapeHintForceNone, 0, 0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, si.DataCapacity, len(got))
	}
}
