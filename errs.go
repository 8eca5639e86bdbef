package confconv

import "errors"

var (
	ErrEmptyInput  = errors.New("no input to convert")
	ErrEmptyOutput = errors.New("nothing converted yet")
	ErrUnsupported = errors.New("unsupported")
)
