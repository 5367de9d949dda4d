// Package charset maps Extended Channel Interpretation (ECI) values to
// character encodings and transcodes strings into them.
package charset

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// ECI values with assigned character sets, per AIM ECI.
const (
	CP437   = 2 // also the historical default interpretation, value 0
	Latin1  = 3 // ISO 8859-1, the default interpretation of Data Matrix
	UTF16BE = 25
	UTF8    = 26
	ASCII   = 27
	Binary  = 899 // 8-bit binary data, no character set
)

// ErrUnsupported is returned for ECI values with no assigned or supported
// character set.
var ErrUnsupported = errors.New("charset: unsupported ECI value")

// Encoding returns the character encoding assigned to an ECI value, or nil
// for values that are supported but need no conversion table (UTF-8, ASCII
// and binary).
func Encoding(eci int) (encoding.Encoding, error) {
	switch eci {
	case 0, 2:
		return charmap.CodePage437, nil
	case 1, 3:
		return charmap.ISO8859_1, nil
	case 4:
		return charmap.ISO8859_2, nil
	case 5:
		return charmap.ISO8859_3, nil
	case 6:
		return charmap.ISO8859_4, nil
	case 7:
		return charmap.ISO8859_5, nil
	case 8:
		return charmap.ISO8859_6, nil
	case 9:
		return charmap.ISO8859_7, nil
	case 10:
		return charmap.ISO8859_8, nil
	case 11:
		return charmap.ISO8859_9, nil
	case 12:
		return charmap.ISO8859_10, nil
	case 13:
		return charmap.Windows874, nil
	case 15:
		return charmap.ISO8859_13, nil
	case 16:
		return charmap.ISO8859_14, nil
	case 17:
		return charmap.ISO8859_15, nil
	case 18:
		return charmap.ISO8859_16, nil
	case 20:
		return japanese.ShiftJIS, nil
	case 21:
		return charmap.Windows1250, nil
	case 22:
		return charmap.Windows1251, nil
	case 23:
		return charmap.Windows1252, nil
	case 24:
		return charmap.Windows1256, nil
	case 25:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case 26, 899:
		return nil, nil
	case 27:
		return nil, nil
	case 28:
		return traditionalchinese.Big5, nil
	case 29:
		return simplifiedchinese.GB18030, nil
	case 30:
		return korean.EUCKR, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupported, eci)
	}
}

// Transcode converts a UTF-8 string into the byte encoding assigned to an
// ECI value. Characters the target encoding cannot represent produce an
// error.
func Transcode(s string, eci int) ([]byte, error) {
	enc, err := Encoding(eci)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		if eci == ASCII {
			for i := 0; i < len(s); i++ {
				if s[i] > 127 {
					return nil, fmt.Errorf("charset: byte 0x%02x is not ASCII", s[i])
				}
			}
		}
		return []byte(s), nil
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("charset: transcoding to ECI %d: %w", eci, err)
	}
	return out, nil
}
