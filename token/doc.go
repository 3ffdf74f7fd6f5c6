// Package token scans Red source text into classified tokens.
//
// A [Scanner] classifies the token starting at a given offset by running
// every scanner of a fixed priority table and keeping the longest match.
// Constructs whose recognition needs unbounded or context sensitive
// lookahead (infix operators, hex literals, raw and multiline strings)
// are delegated to a [Classifier].
//
// [Tokenize] produces the flat token stream of a whole buffer.
package token
