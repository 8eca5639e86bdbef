package ir

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var indexRE = regexp.MustCompile(`\[(\d+)\]`)

// SplitPath splits a dotted path such as "list[0].name" into its
// segments ["list", "0", "name"]. Bracketed indexes are rewritten as
// dotted segments before splitting.
func SplitPath(path string) []string {
	return strings.Split(indexRE.ReplaceAllString(path, ".$1"), ".")
}

// IsIndex reports whether a path segment is all digits.
func IsIndex(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}

// Path returns the location of y in its tree as a dotted path with
// bracketed array indexes. The root has the empty path.
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	prefix := y.Parent.Path()
	switch y.Parent.Type {
	case ObjectType:
		if prefix == "" {
			return y.ParentField
		}
		return prefix + "." + y.ParentField
	case ArrayType:
		return prefix + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// GetPath returns the node at path below y, or nil if nothing is there.
// An empty path or "$" denotes y itself.
func (y *Node) GetPath(path string) (*Node, error) {
	path = strings.TrimPrefix(path, "$")
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return y, nil
	}
	cur := y
	for _, seg := range SplitPath(path) {
		switch cur.Type {
		case ObjectType:
			cur = Get(cur, seg)
		case ArrayType:
			if !IsIndex(seg) {
				return nil, fmt.Errorf("%w: %q is not an index into array at %q", ErrPath, seg, cur.Path())
			}
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrPath, err)
			}
			if i >= len(cur.Values) {
				return nil, nil
			}
			cur = cur.Values[i]
		default:
			return nil, fmt.Errorf("%w: cannot descend into %s at %q", ErrPath, cur.Type, cur.Path())
		}
		if cur == nil {
			return nil, nil
		}
	}
	return cur, nil
}
