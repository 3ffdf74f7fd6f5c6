package classify

import "errors"

var ErrConfig = errors.New("invalid classifier config")
