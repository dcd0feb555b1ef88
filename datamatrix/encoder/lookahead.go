// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "math"

func isDigit(c byte) bool         { return c >= '0' && c <= '9' }
func isExtendedASCII(c byte) bool { return c >= 128 }
func isNativeC40(c byte) bool     { return c == ' ' || isDigit(c) || (c >= 'A' && c <= 'Z') }
func isNativeText(c byte) bool    { return c == ' ' || isDigit(c) || (c >= 'a' && c <= 'z') }
func isX12TermSep(c byte) bool    { return c == 13 || c == '*' || c == '>' }
func isNativeX12(c byte) bool     { return isX12TermSep(c) || c == ' ' || isDigit(c) || (c >= 'A' && c <= 'Z') }
func isNativeEdifact(c byte) bool { return c >= 0x20 && c <= 0x5E }

// isSpecialB256 is the reserved Base-256 predicate. The reference algorithm
// marks it "not implemented yet" and always evaluates to false; lookAhead
// preserves that behavior rather than guessing at an intended meaning.
func isSpecialB256(byte) bool { return false }

func ceilCount(v float64) int { return int(math.Ceil(v)) }

// lookAhead implements the Annex P look-ahead arbiter (steps J through R).
// It is a pure function of its arguments: the same (msg, start, currentMode)
// always yields the same Mode.
func lookAhead(msg []byte, start int, currentMode Mode) Mode {
	counts := [6]float64{0.5, 1, 1, 1, 1, 1.25}
	if currentMode != modeAscii {
		for i := range counts {
			counts[i] *= 2
		}
	}
	counts[currentMode] = 0

	processed := 0
	for {
		pos := start + processed
		if pos >= len(msg) {
			mins := ceilAll(counts)
			return chooseTerminationMode(mins)
		}
		c := msg[pos]
		processed++

		switch {
		case isDigit(c):
			counts[modeAscii] += 0.5
		case isExtendedASCII(c):
			counts[modeAscii] = math.Ceil(counts[modeAscii]) + 2
		default:
			counts[modeAscii] = math.Ceil(counts[modeAscii]) + 1
		}

		switch {
		case isNativeC40(c):
			counts[modeC40] += 2.0 / 3.0
		case isExtendedASCII(c):
			counts[modeC40] += 8.0 / 3.0
		default:
			counts[modeC40] += 4.0 / 3.0
		}

		switch {
		case isNativeText(c):
			counts[modeText] += 2.0 / 3.0
		case isExtendedASCII(c):
			counts[modeText] += 8.0 / 3.0
		default:
			counts[modeText] += 4.0 / 3.0
		}

		switch {
		case isNativeX12(c):
			counts[modeX12] += 2.0 / 3.0
		case isExtendedASCII(c):
			counts[modeX12] += 13.0 / 3.0
		default:
			counts[modeX12] += 10.0 / 3.0
		}

		switch {
		case isNativeEdifact(c):
			counts[modeEdifact] += 3.0 / 4.0
		case isExtendedASCII(c):
			counts[modeEdifact] += 17.0 / 4.0
		default:
			counts[modeEdifact] += 13.0 / 4.0
		}

		counts[modeBase256]++ // isSpecialB256 never changes this increment

		if processed >= 4 {
			mins := ceilAll(counts)
			if m, ok := chooseContinuationMode(mins, msg, start+processed+1); ok {
				return m
			}
		}
	}
}

func ceilAll(counts [6]float64) [6]int {
	var mins [6]int
	for i, v := range counts {
		mins[i] = ceilCount(v)
	}
	return mins
}

func isUniqueMin(mins [6]int, mode Mode) bool {
	for m, v := range mins {
		if Mode(m) != mode && v <= mins[mode] {
			return false
		}
	}
	return true
}

// chooseTerminationMode implements step K: the message has been exhausted.
func chooseTerminationMode(mins [6]int) Mode {
	minVal := mins[0]
	for _, v := range mins {
		if v < minVal {
			minVal = v
		}
	}
	if mins[modeAscii] == minVal {
		return modeAscii
	}
	if isUniqueMin(mins, modeBase256) {
		return modeBase256
	}
	if isUniqueMin(mins, modeEdifact) {
		return modeEdifact
	}
	if isUniqueMin(mins, modeText) {
		return modeText
	}
	if isUniqueMin(mins, modeX12) {
		return modeX12
	}
	return modeC40
}

// chooseContinuationMode implements step R, evaluated after every four
// characters processed. It returns ok=false when no rule fires yet, meaning
// the arbiter should keep scanning. scanFrom is the message offset one
// character past the characters processed so far, used for the C40/X12
// tie-break's forward scan.
func chooseContinuationMode(mins [6]int, msg []byte, scanFrom int) (Mode, bool) {
	ascii, c40, text, x12, edifact, base256 := mins[modeAscii], mins[modeC40], mins[modeText], mins[modeX12], mins[modeEdifact], mins[modeBase256]

	if ascii < base256 && ascii < edifact && ascii < text && ascii < x12 && ascii < c40 {
		return modeAscii, true
	}
	minVal := ascii
	for _, v := range mins {
		if v < minVal {
			minVal = v
		}
	}
	if base256 < ascii || (c40 != minVal && text != minVal && x12 != minVal && edifact != minVal) {
		return modeBase256, true
	}
	if isUniqueMin(mins, modeEdifact) {
		return modeEdifact, true
	}
	if isUniqueMin(mins, modeText) {
		return modeText, true
	}
	if isUniqueMin(mins, modeX12) {
		return modeX12, true
	}
	if c40+1 < ascii && c40+1 < base256 && c40+1 < edifact && c40+1 < text {
		if c40 < x12 {
			return modeC40, true
		}
		if c40 == x12 {
			for p := scanFrom; p < len(msg); p++ {
				if isX12TermSep(msg[p]) {
					return modeX12, true
				}
				if !isNativeX12(msg[p]) {
					break
				}
			}
			return modeC40, true
		}
	}
	return 0, false
}
