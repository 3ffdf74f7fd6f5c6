package ir

import (
	"errors"
)

var (
	ErrPath       = errors.New("bad path")
	ErrNoSuchNode = errors.New("no such node")
)
