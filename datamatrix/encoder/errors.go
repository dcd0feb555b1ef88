// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "errors"

// Sentinel errors returned by the high-level encoder and its collaborators.
var (
	// ErrIllegalCharacter is returned when a character has no representation
	// in the active compaction mode (or, earlier, no ISO-8859-1 representation
	// at all).
	ErrIllegalCharacter = errors.New("datamatrix/encoder: illegal character")

	// ErrMessageTooLong is returned when a single Base-256 run exceeds 1555
	// octets, the largest run length encodeBase256 writes into its two-byte
	// length field.
	ErrMessageTooLong = errors.New("datamatrix/encoder: message too long for base 256 encoding")

	// ErrNoFittingSymbol is returned when the symbol-info catalog has no
	// entry satisfying the requested shape and size constraints.
	ErrNoFittingSymbol = errors.New("datamatrix/encoder: no symbol fits the requested constraints")

	// ErrInternalInvariant is returned when a code path the algorithm
	// considers unreachable is reached. Seeing this indicates a bug in the
	// encoder, not bad input.
	ErrInternalInvariant = errors.New("datamatrix/encoder: internal invariant violated")
)
