package binstr

import "fmt"

// Decode converts a legacy binary string to raw bytes. Each character's code
// point is taken directly as one byte value; this is not base64, and the
// string must never pass through a text decoder, which would corrupt values
// above 127. Characters above U+00FF are not representable as a byte and
// produce an error.
func Decode(s string) ([]byte, error) {
	data := make([]byte, 0, len(s))
	for i, r := range s {
		if r > 0xFF {
			return nil, fmt.Errorf("invalid character %q at offset %d: code point above 255", r, i)
		}
		data = append(data, byte(r))
	}

	return data, nil
}

// Encode is the exact inverse of Decode: every byte becomes the character
// with the same code point.
func Encode(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}

	return string(runes)
}
