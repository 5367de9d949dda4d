package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	m := NewBitMatrixWithSize(33, 5)
	if m.Width() != 33 || m.Height() != 5 {
		t.Fatalf("got %dx%d, want 33x5", m.Width(), m.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 33; x++ {
			if m.Get(x, y) {
				t.Fatalf("fresh matrix has bit set at (%d, %d)", x, y)
			}
		}
	}
	m.Set(0, 0)
	m.Set(32, 4)
	m.Set(31, 2)
	for y := 0; y < 5; y++ {
		for x := 0; x < 33; x++ {
			want := (x == 0 && y == 0) || (x == 32 && y == 4) || (x == 31 && y == 2)
			if got := m.Get(x, y); got != want {
				t.Errorf("(%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBitMatrixString(t *testing.T) {
	m := NewBitMatrixWithSize(2, 2)
	m.Set(0, 0)
	m.Set(1, 1)
	want := "X   \n  X \n"
	if got := m.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
