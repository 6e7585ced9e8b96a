package gradcheck

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/traditionalchinese"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeHTML converts raw document bytes to a string.
//
// Valid UTF-8 is used as is. Otherwise the charset declared by a BOM, the
// content type or a meta tag is used when it is certain, and Big5 when not.
func DecodeHTML(raw []byte, contentType string) (string, error) {
	if utf8.Valid(raw) {
		return string(bytes.TrimPrefix(raw, utf8BOM)), nil
	}

	enc, name, certain := charset.DetermineEncoding(raw, contentType)
	if !certain && name == "windows-1252" {
		enc, name = traditionalchinese.Big5, "big5"
	}

	out, err := decodeWith(enc, raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s document: %w", name, err)
	}
	return out, nil
}

func decodeWith(enc encoding.Encoding, raw []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
