package datamatrix

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

func TestEncodeSelectsSmallestSymbol(t *testing.T) {
	tests := []struct {
		name          string
		data          string
		opts          *Options
		width, height int
	}{
		{"numeric", "123456", nil, 10, 10},
		{"numeric larger", "123456789012", nil, 14, 14},
		{"alpha rectangle", "AAAAAAAAAAAA", nil, 32, 8},
		{"alpha square", "AAAAAAAAAAAA", &Options{Shape: ShapeSquare}, 16, 16},
		{"text", "Hello, World!", nil, 18, 18},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sym, err := Encode([]byte(tc.data), tc.opts)
			if err != nil {
				t.Fatal(err)
			}
			if sym.Width != tc.width || sym.Height != tc.height {
				t.Errorf("got %dx%d, want %dx%d", sym.Width, sym.Height, tc.width, tc.height)
			}
		})
	}
}

func TestEncodeCodewordStream(t *testing.T) {
	sym, err := Encode([]byte("123456"), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{142, 164, 186, 114, 25, 5, 88, 102}
	if !bytes.Equal(sym.Codewords, want) {
		t.Errorf("got % d, want % d", sym.Codewords, want)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		opts *Options
		want error
	}{
		{"empty", "", nil, ErrInvalidInput},
		{"gs1 reader init", "A", &Options{GS1: true, ReaderInit: true}, ErrInvalidInput},
		{"size too small", "123456789012", &Options{Size: 1}, ErrSizeTooSmall},
		{"append position", "A", &Options{
			StructuredAppend: &StructuredAppend{Position: 5, Total: 4, FileID: 1},
		}, ErrStructuredAppend},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Encode([]byte(tc.data), tc.opts); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestEncodeRows(t *testing.T) {
	sym, err := Encode([]byte("123456"), nil)
	if err != nil {
		t.Fatal(err)
	}
	rows := sym.Rows()
	if len(rows) != sym.Height || len(rows[0]) != sym.Width {
		t.Fatalf("got %dx%d rows, want %dx%d", len(rows[0]), len(rows), sym.Width, sym.Height)
	}
	for y, row := range rows {
		for x, dark := range row {
			if dark != sym.Matrix.Get(x, y) {
				t.Fatalf("rows disagree with matrix at (%d, %d)", x, y)
			}
		}
	}
	// The bottom row of the finder pattern is solid.
	for x, dark := range rows[sym.Height-1] {
		if !dark {
			t.Errorf("bottom finder row unset at x=%d", x)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	data := []byte("Deterministic output, always.")
	first, err := Encode(data, nil)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sym, err := Encode(data, nil)
			if err != nil {
				t.Error(err)
				return
			}
			if !bytes.Equal(sym.Codewords, first.Codewords) {
				t.Error("codeword streams differ between runs")
			}
		}()
	}
	wg.Wait()
}

func TestEncodeStringECI(t *testing.T) {
	sym, err := EncodeString("café", &Options{ECI: 26})
	if err != nil {
		t.Fatal(err)
	}
	// ECI escape, then the UTF-8 bytes in ASCII encodation.
	want := []byte{241, 27, 'c' + 1, 'a' + 1, 'f' + 1, 235, 0xC3 - 128 + 1, 235, 0xA9 - 128 + 1}
	if !bytes.Equal(sym.Codewords[:len(want)], want) {
		t.Errorf("got % d, want % d", sym.Codewords[:len(want)], want)
	}
}

func TestEncodeStringDefaultLatin1(t *testing.T) {
	sym, err := EncodeString("é", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{235, 0xE9 - 128 + 1}
	if !bytes.Equal(sym.Codewords[:2], want) {
		t.Errorf("got % d, want % d", sym.Codewords[:2], want)
	}

	if _, err := EncodeString("日本語", nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestEncodeGS1(t *testing.T) {
	sym, err := Encode([]byte("1234[56"), &Options{GS1: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{232, 142, 164, 232, 186}
	if !bytes.Equal(sym.Codewords[:5], want) {
		t.Errorf("got % d, want % d", sym.Codewords[:5], want)
	}
}

func TestEncodeStructuredAppend(t *testing.T) {
	sym, err := Encode([]byte("part two"), &Options{
		StructuredAppend: &StructuredAppend{Position: 2, Total: 3, FileID: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{233, 29, 1, 1}
	if !bytes.Equal(sym.Codewords[:4], want) {
		t.Errorf("got % d, want % d", sym.Codewords[:4], want)
	}
}

func TestEncodeReaderInit(t *testing.T) {
	sym, err := Encode([]byte("SETUP"), &Options{ReaderInit: true})
	if err != nil {
		t.Fatal(err)
	}
	if sym.Codewords[0] != 234 {
		t.Errorf("got leading codeword %d, want 234", sym.Codewords[0])
	}
}

func TestEncodeLargeInput(t *testing.T) {
	data := bytes.Repeat([]byte{0x80, 0x13, 0xFE}, 500)
	sym, err := Encode(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sym.Width != 144 || sym.Height != 144 {
		t.Errorf("got %dx%d, want 144x144", sym.Width, sym.Height)
	}

	if _, err := Encode(bytes.Repeat(data, 2), nil); !errors.Is(err, ErrDataTooLong) {
		t.Errorf("got %v, want ErrDataTooLong", err)
	}
}
