package token

import "bytes"

var (
	base2Open  = []byte("2#{")
	base16Open = []byte("16#{")
	hexOpen    = []byte("#{")
	base64Open = []byte("64#{")
)

func binary(d []byte) int {
	switch {
	case bytes.HasPrefix(d, base2Open):
		return binaryBody(d, len(base2Open), base2Chunk)
	case bytes.HasPrefix(d, base16Open):
		return binaryBody(d, len(base16Open), base16Chunk)
	case bytes.HasPrefix(d, hexOpen):
		return binaryBody(d, len(hexOpen), base16Chunk)
	case bytes.HasPrefix(d, base64Open):
		return base64Body(d, len(base64Open))
	}
	return 0
}

// binaryBody scans chunks separated by whitespace and comments up to
// the closing brace.
func binaryBody(d []byte, i int, chunk func([]byte) int) int {
	for {
		i += spacesAndComments(d[i:])
		if i >= len(d) {
			return 0
		}
		if d[i] == '}' {
			return i + 1
		}
		n := chunk(d[i:])
		if n == 0 {
			return 0
		}
		i += n
	}
}

func base16Chunk(d []byte) int {
	if len(d) >= 2 && hexDigit(d[0]) && hexDigit(d[1]) {
		return 2
	}
	return 0
}

// base2Chunk scans 8 bits, which may be separated by whitespace.
func base2Chunk(d []byte) int {
	i := 0
	for bit := 0; bit < 8; bit++ {
		if bit > 0 {
			i += spaces(d[i:])
		}
		if i >= len(d) || (d[i] != '0' && d[i] != '1') {
			return 0
		}
		i++
	}
	return i
}

func base64Char(c byte) bool {
	return asciiLetter(c) || asciiDigit(c) || c == '+' || c == '/'
}

func base64Body(d []byte, i int) int {
	pad := 0
	for {
		i += spacesAndComments(d[i:])
		if i >= len(d) {
			return 0
		}
		c := d[i]
		switch {
		case c == '}':
			return i + 1
		case c == '=' && pad < 2:
			pad++
		case pad == 0 && base64Char(c):
		default:
			return 0
		}
		i++
	}
}
