// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupSmallestFit(t *testing.T) {
	si, err := Lookup(4, ShapeHintForceNone, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, si.DataCapacity)
}

func TestLookupShapeHintExcludesRectangular(t *testing.T) {
	si, err := Lookup(4, ShapeHintForceSquare, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.False(t, si.Rectangular)
}

func TestLookupShapeHintExcludesSquare(t *testing.T) {
	si, err := Lookup(4, ShapeHintForceRectangle, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.True(t, si.Rectangular)
}

func TestLookupRespectsMinMaxDimensions(t *testing.T) {
	si, err := Lookup(4, ShapeHintForceNone, 14, 14, 20, 20)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, si.MatrixWidth, 14)
	assert.LessOrEqual(t, si.MatrixWidth, 20)
	assert.GreaterOrEqual(t, si.MatrixHeight, 14)
	assert.LessOrEqual(t, si.MatrixHeight, 20)
}

func TestLookupNoFittingSymbol(t *testing.T) {
	_, err := Lookup(4, ShapeHintForceNone, 200, 200, 220, 220)
	assert.ErrorIs(t, err, ErrNoFittingSymbol)
}

func TestLookupBySizeUnknownSize(t *testing.T) {
	_, err := LookupBySize(7, 7)
	assert.ErrorIs(t, err, ErrNoFittingSymbol)
}

func TestInterleavedBlockCountForTwoSizedBlocks(t *testing.T) {
	si, err := LookupBySize(144, 144)
	require.NoError(t, err)
	assert.Equal(t, 10, si.InterleavedBlockCount()) // 8 blocks of 156 + 2 of 155
}
