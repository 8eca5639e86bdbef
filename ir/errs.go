package ir

import "errors"

var (
	ErrPath = errors.New("path error")
	ErrType = errors.New("unsupported value type")
)
