package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/redlex/ir"
)

func MustString(t *ir.Tree, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
