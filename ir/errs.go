package ir

import "errors"

var ErrType = errors.New("wrong node type")
