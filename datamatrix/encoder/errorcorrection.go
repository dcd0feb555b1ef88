// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/ericlevine/dmencoder/reedsolomon"
)

// EncodeECC200 generates Reed-Solomon ECC-200 error correction codewords and
// returns the full codeword sequence (data + EC).
//
// Symbols with more than one RS block split their data codewords across the
// blocks round-robin, error-correct each block independently, and then
// interleave the resulting parity codewords back together.
func EncodeECC200(codewords []byte, symbolInfo *SymbolInfo) ([]byte, error) {
	if len(codewords) != symbolInfo.DataCapacity {
		return nil, fmt.Errorf("datamatrix/encoder: expected %d data codewords, got %d",
			symbolInfo.DataCapacity, len(codewords))
	}

	blockCount := symbolInfo.InterleavedBlockCount()
	ecPerBlock := symbolInfo.RSBlockError

	result := make([]byte, symbolInfo.DataCapacity+blockCount*ecPerBlock)
	copy(result, codewords)

	if blockCount == 1 {
		copy(result[symbolInfo.DataCapacity:], reedsolomon.Encode(codewords, ecPerBlock))
		return result, nil
	}

	blocks := splitIntoBlocks(codewords, symbolInfo, blockCount)
	parity := make([][]byte, blockCount)
	for i, block := range blocks {
		parity[i] = reedsolomon.Encode(block, ecPerBlock)
	}
	interleaveParity(result[symbolInfo.DataCapacity:], parity)

	return result, nil
}

// splitIntoBlocks de-interleaves data codewords into their RS blocks.
// Codeword i belongs to block i%blockCount, at position i/blockCount
// within that block.
func splitIntoBlocks(data []byte, symbolInfo *SymbolInfo, blockCount int) [][]byte {
	block1Count := symbolInfo.dataCodewordsPerBlock1Count()
	block1Len := symbolInfo.RSBlockData
	block2Len := symbolInfo.RSBlockData2
	if block2Len == 0 {
		block2Len = block1Len
	}

	blocks := make([][]byte, blockCount)
	for i := range blocks {
		n := block1Len
		if i >= block1Count {
			n = block2Len
		}
		blocks[i] = make([]byte, n)
	}

	for i, b := range data {
		block := blocks[i%blockCount]
		if pos := i / blockCount; pos < len(block) {
			block[pos] = b
		}
	}
	return blocks
}

// interleaveParity writes each block's parity codewords into dst in
// codeword-major, block-minor order: dst[0] is block 0's first parity
// codeword, dst[1] is block 1's first, and so on, matching how the data
// codewords themselves were interleaved across blocks.
func interleaveParity(dst []byte, parity [][]byte) {
	i := 0
	for cw := range parity[0] {
		for _, block := range parity {
			dst[i] = block[cw]
			i++
		}
	}
}
