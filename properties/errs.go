package properties

import (
	"errors"
	"fmt"
)

var (
	ErrConflict       = errors.New("structural conflict")
	ErrNotFlattenable = errors.New("only objects and arrays can be flattened")
)

// ConflictError reports a key whose path disagrees with the structure
// built by earlier lines, such as a name segment below an existing array.
type ConflictError struct {
	Line int
	Key  string
	Msg  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("line %d: key %q: %s", e.Line, e.Key, e.Msg)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
