package token

import "bytes"

// groupedDigits scans \d+('\d+)*.
func groupedDigits(d []byte) int {
	n := asciiDigits(d)
	if n == 0 {
		return 0
	}
	for n < len(d) && d[n] == '\'' {
		m := asciiDigits(d[n+1:])
		if m == 0 {
			break
		}
		n += 1 + m
	}
	return n
}

func integer(d []byte) int {
	i := sign(d)
	n := groupedDigits(d[i:])
	if n == 0 {
		return 0
	}
	return i + n
}

func number(d []byte) int {
	i := sign(d)
	if n := special(d[i:]); n > 0 {
		i += n
		return i + percent(d[i:])
	}
	n := groupedDigits(d[i:])
	if n == 0 {
		return 0
	}
	i += n
	i += fract(d[i:])
	i += exp(d[i:])
	return i + percent(d[i:])
}

var (
	specialInf = []byte("1.#inf")
	specialNaN = []byte("1.#nan")
)

func special(d []byte) int {
	if len(d) < len(specialInf) {
		return 0
	}
	p := d[:len(specialInf)]
	if bytes.EqualFold(p, specialInf) || bytes.EqualFold(p, specialNaN) {
		return len(p)
	}
	return 0
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := groupedDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

// exp requires at least one digit after the marker.
func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1 + sign(d[1:])
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func percent(d []byte) int {
	if len(d) > 0 && d[0] == '%' {
		return 1
	}
	return 0
}

func pair(d []byte) int {
	i := integer(d)
	if i == 0 || i >= len(d) || (d[i] != 'x' && d[i] != 'X') {
		return 0
	}
	j := integer(d[i+1:])
	if j == 0 {
		return 0
	}
	return i + 1 + j
}

// tupleByte scans up to 3 digits whose value stays within a byte.
func tupleByte(d []byte) int {
	v, i := 0, 0
	for i < len(d) && i < 3 && asciiDigit(d[i]) {
		nv := v*10 + int(d[i]-'0')
		if nv > 255 {
			break
		}
		v = nv
		i++
	}
	return i
}

func tuple(d []byte) int {
	i := tupleByte(d)
	if i == 0 {
		return 0
	}
	parts := 1
	for parts < 12 && i+1 < len(d) && d[i] == '.' {
		n := tupleByte(d[i+1:])
		if n == 0 {
			break
		}
		i += 1 + n
		parts++
	}
	if parts < 3 {
		return 0
	}
	return i
}

func money(d []byte) int {
	i := sign(d)
	if i+3 < len(d) && asciiLetter(d[i]) && asciiLetter(d[i+1]) && asciiLetter(d[i+2]) && d[i+3] == '$' {
		i += 3
	}
	if i >= len(d) || d[i] != '$' {
		return 0
	}
	i++
	n := groupedDigits(d[i:])
	if n == 0 {
		return 0
	}
	i += n
	return i + fract(d[i:])
}

// fraction9 scans a '.' followed by at most 9 digits.
func fraction9(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return 1 + min(n, 9)
}

// clock scans h:m, h:m.frac or h:m:s with an optional fraction.
func clock(d []byte) int {
	h := asciiDigits(d)
	if h == 0 || h >= len(d) || d[h] != ':' {
		return 0
	}
	m := asciiDigits(d[h+1:])
	if m == 0 {
		return 0
	}
	i := h + 1 + m
	if f := fraction9(d[i:]); f > 0 {
		return i + f
	}
	if i < len(d) && d[i] == ':' {
		if s := asciiDigits(d[i+1:]); s > 0 {
			i += 1 + s
			i += fraction9(d[i:])
		}
	}
	return i
}

// point scans a parenthesized list of 2 or 3 numbers.
func point(d []byte) int {
	if len(d) == 0 || d[0] != '(' {
		return 0
	}
	i := 1
	for k := 0; k < 3; k++ {
		i += spaces(d[i:])
		n := number(d[i:])
		if n == 0 {
			return 0
		}
		i += n
		i += spaces(d[i:])
		if i >= len(d) {
			return 0
		}
		switch {
		case d[i] == ')' && k > 0:
			return i + 1
		case d[i] == ',' && k < 2:
			i++
		default:
			return 0
		}
	}
	return 0
}
