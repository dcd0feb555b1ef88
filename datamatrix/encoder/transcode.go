// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// transcodeISO8859_1 converts msg to its ISO-8859-1 octet representation.
// Data Matrix's high-level encoding is defined entirely in terms of octets;
// this is the only place a Go string's runes are turned into the bytes the
// rest of the package operates on.
func transcodeISO8859_1(msg string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().String(msg)
	if err != nil {
		return nil, fmt.Errorf("datamatrix/encoder: %w: %v", ErrIllegalCharacter, err)
	}
	return []byte(out), nil
}
