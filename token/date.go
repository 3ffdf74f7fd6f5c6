package token

import "bytes"

var monthNames = [][]byte{
	[]byte("january"), []byte("february"), []byte("march"), []byte("april"),
	[]byte("may"), []byte("june"), []byte("july"), []byte("august"),
	[]byte("september"), []byte("october"), []byte("november"), []byte("december"),
	[]byte("sept"),
}

// monthName matches the longest full or 3 letter month name, ignoring case.
func monthName(d []byte) int {
	best := 0
	for _, m := range monthNames {
		for _, n := range []int{len(m), 3} {
			if n <= best || n > len(d) {
				continue
			}
			if bytes.EqualFold(d[:n], m[:n]) {
				best = n
			}
		}
	}
	return best
}

func month(d []byte) int {
	if n := asciiDigits(d); n > 0 {
		if n > 2 {
			return 0
		}
		return n
	}
	return monthName(d)
}

// monthSep scans a month followed by sep.
func monthSep(d []byte, sep byte) int {
	m := month(d)
	if m == 0 || m >= len(d) || d[m] != sep {
		return 0
	}
	return m + 1
}

func ymd(d []byte, sep byte) int {
	y := asciiDigits(d)
	if y < 3 || y > 4 || y >= len(d) || d[y] != sep {
		return 0
	}
	i := y + 1
	m := monthSep(d[i:], sep)
	if m == 0 {
		return 0
	}
	i += m
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return i + min(n, 2)
}

func dmy(d []byte, sep byte) int {
	n := asciiDigits(d)
	if n == 0 || n > 2 || n >= len(d) || d[n] != sep {
		return 0
	}
	i := n + 1
	m := monthSep(d[i:], sep)
	if m == 0 {
		return 0
	}
	i += m
	y := asciiDigits(d[i:])
	if y == 0 {
		return 0
	}
	return i + min(y, 4)
}

// yearDay scans ISO week dates (2020-W05, 2020-W05-3) and ordinal dates
// (2020-123).
func yearDay(d []byte) int {
	y := asciiDigits(d)
	if y < 3 || y > 4 || y+1 >= len(d) || d[y] != '-' {
		return 0
	}
	i := y + 1
	if d[i] == 'W' {
		if asciiDigits(d[i+1:]) < 2 {
			return 0
		}
		i += 3
		if i+1 < len(d) && d[i] == '-' && d[i+1] >= '1' && d[i+1] <= '9' {
			i += 2
		}
		return i
	}
	if asciiDigits(d[i:]) < 3 {
		return 0
	}
	return i + 3
}

func timezone(d []byte) int {
	if len(d) == 0 {
		return 0
	}
	if d[0] == 'Z' {
		return 1
	}
	if d[0] != '+' && d[0] != '-' {
		return 0
	}
	n := asciiDigits(d[1:])
	switch {
	case n == 0:
		return 0
	case n >= 4:
		return 5
	}
	i := 1 + min(n, 2)
	if i < len(d) && d[i] == ':' && asciiDigits(d[i+1:]) >= 2 {
		i += 3
	}
	return i
}

// dateTime scans the optional time part following a date.
func dateTime(d []byte) int {
	if len(d) == 0 || (d[0] != 'T' && d[0] != '/') {
		return 0
	}
	c := clock(d[1:])
	if c == 0 {
		return 0
	}
	i := 1 + c
	return i + timezone(d[i:])
}

// compactDate scans yyyymmddThhmmss with an optional fraction and zone,
// or yyyymmddThhmmZ.
func compactDate(d []byte) int {
	if len(d) < 9 || asciiDigits(d[:8]) != 8 || d[8] != 'T' {
		return 0
	}
	i := 9
	n := asciiDigits(d[i:])
	switch {
	case n >= 6:
		i += 6
		i += fraction9(d[i:])
		return i + timezone(d[i:])
	case n == 4 && i+4 < len(d) && d[i+4] == 'Z':
		return i + 5
	}
	return 0
}

var dateForms = []func([]byte) int{
	func(d []byte) int { return ymd(d, '-') },
	func(d []byte) int { return ymd(d, '/') },
	func(d []byte) int { return dmy(d, '-') },
	func(d []byte) int { return dmy(d, '/') },
	yearDay,
}

func date(d []byte) int {
	best := compactDate(d)
	for _, form := range dateForms {
		n := form(d)
		if n == 0 {
			continue
		}
		n += dateTime(d[n:])
		best = max(best, n)
	}
	return best
}
