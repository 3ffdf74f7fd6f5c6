package token

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrUnterminated = errors.New("unterminated")
	ErrDocBalance   = errors.New("imbalanced document")
)

// ImbalancedErr reports a closer with no matching opener, or an
// opener left open at the end of the buffer.
type ImbalancedErr struct {
	Open, Close *Token
	Doc         *PosDoc
}

func (i *ImbalancedErr) Unwrap() error {
	if i.Close == nil {
		return ErrUnterminated
	}
	return ErrDocBalance
}

func (i *ImbalancedErr) Error() string {
	if i.Open == nil {
		return ErrDocBalance.Error() + ": " + UnexpectedErr(i.Close.Type.String(), i.Doc.Pos(i.Close.Start)).Error()
	}
	return fmt.Sprintf("%s: unmatched %s at %s", ErrUnterminated, i.Open.Type, i.Doc.Pos(i.Open.Start))
}
