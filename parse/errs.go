package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/confconv/format"
)

var (
	ErrParse = errors.New("parse error")
)

// SyntaxError reports malformed JSON or YAML input. Line and Column are
// 1-based and zero when unknown.
type SyntaxError struct {
	Format format.Format
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s syntax error at line %d, column %d: %s", e.Format, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s syntax error: %s", e.Format, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrParse
}

// lineCol converts a byte offset in d into a 1-based line and column.
func lineCol(d []byte, offset int64) (int, int) {
	if offset > int64(len(d)) {
		offset = int64(len(d))
	}
	line, col := 1, 1
	for _, c := range d[:offset] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
