package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stop sets for the marked literal families
const (
	wordStops       = "/\\,[](){}\"#%$@:;"
	refStops        = "[](){}@#$;,'\"=<>^"
	issueStops      = "[](){}@;\"<>:"
	refinementStops = "/\\,[](){}\"#%$@:;<>"
	emailStops      = "[](){}@;:<\""
	fileStops       = "[](){}@:;\""
	urlStops        = "[](){}\";"
	tagFirstStops   = "[](){};\"<>="
)

// runExcept returns the length of the longest prefix of d free of
// whitespace, invalid utf8 and runes in stop.
func runExcept(d []byte, stop string) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if (r == utf8.RuneError && sz <= 1) || unicode.IsSpace(r) || strings.ContainsRune(stop, r) {
			break
		}
		i += sz
	}
	return i
}

func spaces(d []byte) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += sz
	}
	return i
}

// spacesAndComments skips whitespace and ';' line comments.
func spacesAndComments(d []byte) int {
	i := 0
	for i < len(d) {
		if d[i] == ';' {
			for i < len(d) && d[i] != '\n' {
				i++
			}
			continue
		}
		n := spaces(d[i:])
		if n == 0 {
			break
		}
		i += n
	}
	return i
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func asciiLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func hexDigit(c byte) bool {
	return asciiDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexDigits(d []byte) int {
	i := 0
	for i < len(d) && hexDigit(d[i]) {
		i++
	}
	return i
}

func sign(d []byte) int {
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		return 1
	}
	return 0
}
