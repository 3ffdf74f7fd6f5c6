package token

import (
	"fmt"
	"os"
)

func PrintTokens(src []byte, toks []Token, msg string) {
	fmt.Fprintf(os.Stderr, "%s tokens:\n", msg)
	doc := NewPosDoc(src)
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(os.Stderr, "\t%s `%s` %s\n", t.Type, t.Bytes(src), doc.Pos(t.Start))
	}
}
