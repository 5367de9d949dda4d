package charset

import (
	"bytes"
	"errors"
	"testing"
)

func TestTranscode(t *testing.T) {
	tests := []struct {
		name string
		s    string
		eci  int
		want []byte
	}{
		{"latin1", "café", Latin1, []byte{'c', 'a', 'f', 0xE9}},
		{"latin1 ascii", "plain", Latin1, []byte("plain")},
		{"utf8", "café", UTF8, []byte("caf\xc3\xa9")},
		{"binary", "\x00\xff", Binary, []byte("\x00\xff")},
		{"ascii", "plain", ASCII, []byte("plain")},
		{"utf16be", "AB", UTF16BE, []byte{0, 'A', 0, 'B'}},
		{"shift jis", "ア", 20, []byte{0x83, 0x41}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Transcode(tc.s, tc.eci)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("got % x, want % x", got, tc.want)
			}
		})
	}
}

func TestTranscodeErrors(t *testing.T) {
	if _, err := Transcode("日本語", Latin1); err == nil {
		t.Error("latin1 transcoding of CJK text succeeded")
	}
	if _, err := Transcode("café", ASCII); err == nil {
		t.Error("ASCII transcoding of accented text succeeded")
	}
	if _, err := Transcode("x", 14); !errors.Is(err, ErrUnsupported) {
		t.Errorf("ECI 14: got %v, want ErrUnsupported", err)
	}
	if _, err := Transcode("x", 31); !errors.Is(err, ErrUnsupported) {
		t.Errorf("ECI 31: got %v, want ErrUnsupported", err)
	}
}

func TestEncodingAssignments(t *testing.T) {
	// Every value from 0 to 30 except the two unassigned ones resolves.
	for eci := 0; eci <= 30; eci++ {
		_, err := Encoding(eci)
		if eci == 14 || eci == 19 {
			if !errors.Is(err, ErrUnsupported) {
				t.Errorf("ECI %d: got %v, want ErrUnsupported", eci, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ECI %d: %v", eci, err)
		}
	}
}

func TestEncodingAliases(t *testing.T) {
	// The default interpretations 0 and 1 resolve to the same encodings
	// as their explicit counterparts 2 and 3, so callers can always use
	// the explicit value.
	for _, pair := range [][2]int{{0, CP437}, {1, Latin1}} {
		a, err := Encoding(pair[0])
		if err != nil {
			t.Fatal(err)
		}
		b, err := Encoding(pair[1])
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Errorf("ECI %d and %d resolve to different encodings", pair[0], pair[1])
		}
	}
}
