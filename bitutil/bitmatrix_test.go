package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrixWithSize(10, 10)
	bm.Set(3, 5)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
}

func TestBitMatrixUnset(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 4)
	bm.Set(2, 3)
	bm.Unset(2, 3)
	if bm.Get(2, 3) {
		t.Error("bit should be unset")
	}
}

func TestBitMatrixClear(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 4)
	bm.Set(0, 0)
	bm.Set(3, 3)
	bm.Clear()
	if bm.Get(0, 0) || bm.Get(3, 3) {
		t.Error("all bits should be unset after Clear")
	}
}

func TestBitMatrixClone(t *testing.T) {
	bm := NewBitMatrixWithSize(8, 8)
	bm.Set(1, 1)
	clone := bm.Clone()
	clone.Set(2, 2)
	if bm.Get(2, 2) {
		t.Error("modifying clone should not affect original")
	}
}

func TestBitMatrixEquals(t *testing.T) {
	a := NewBitMatrixWithSize(4, 4)
	b := NewBitMatrixWithSize(4, 4)
	a.Set(1, 2)
	b.Set(1, 2)
	if !a.Equals(b) {
		t.Error("equal matrices should be equal")
	}
	b.Set(3, 3)
	if a.Equals(b) {
		t.Error("different matrices should not be equal")
	}
}

func TestBitMatrixStringWithChars(t *testing.T) {
	bm := NewBitMatrixWithSize(2, 2)
	bm.Set(0, 0)
	got := bm.StringWithChars("#", ".")
	want := "#.\n..\n"
	if got != want {
		t.Errorf("StringWithChars = %q, want %q", got, want)
	}
}
