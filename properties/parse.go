package properties

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/confconv/debug"
	"github.com/signadot/confconv/ir"
)

// maxIndex bounds the array indexes a key may name, since arrays are
// padded with nulls up to the index.
const maxIndex = 1 << 20

var numberRE = regexp.MustCompile(`^[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?$`)

// Result is the outcome of parsing properties text.
type Result struct {
	Node *ir.Node
	// Skipped holds the 1-based numbers of lines that were neither blank,
	// comments nor key=value pairs.
	Skipped []int
}

// Parse parses properties text into an object node.
func Parse(d []byte) (*ir.Node, error) {
	res, err := ParseResult(d)
	if err != nil {
		return nil, err
	}
	return res.Node, nil
}

// ParseResult parses properties text, also reporting the lines it skipped.
func ParseResult(d []byte) (*Result, error) {
	res := &Result{Node: ir.Object()}
	for i, line := range strings.Split(string(d), "\n") {
		lineNo := i + 1
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		parts := splitLine(line)
		if len(parts) != 2 {
			if debug.Parse() {
				debug.Logf("skipping line %d: %q\n", lineNo, line)
			}
			res.Skipped = append(res.Skipped, lineNo)
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := Coerce(Unescape(strings.TrimSpace(parts[1])))
		if err := insert(res.Node, lineNo, key, val); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Coerce turns a raw property value into a number, a boolean or a string.
func Coerce(v string) *ir.Node {
	if numberRE.MatchString(v) {
		return ir.FromNumber(strings.TrimPrefix(v, "+"))
	}
	switch v {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	return ir.FromString(v)
}

func insert(root *ir.Node, lineNo int, key string, val *ir.Node) error {
	segs := ir.SplitPath(key)
	conflict := func(format string, args ...any) error {
		return &ConflictError{Line: lineNo, Key: key, Msg: fmt.Sprintf(format, args...)}
	}
	cur := root
	last := len(segs) - 1
	for i, seg := range segs[:last] {
		existing, err := lookup(cur, seg)
		if err != nil {
			return conflict("%v", err)
		}
		wantArray := ir.IsIndex(segs[i+1])
		if existing == nil || existing.Type == ir.NullType {
			child := ir.Object()
			if wantArray {
				child = ir.Array()
			}
			if err := store(cur, seg, child); err != nil {
				return conflict("%v", err)
			}
			cur = child
			continue
		}
		switch existing.Type {
		case ir.ObjectType:
			if wantArray {
				return conflict("index %s under object %q", segs[i+1], existing.Path())
			}
		case ir.ArrayType:
			if !wantArray {
				return conflict("field %q under array %q", segs[i+1], existing.Path())
			}
		default:
			return conflict("%q already holds a %s", existing.Path(), existing.Type)
		}
		cur = existing
	}

	seg := segs[last]
	existing, err := lookup(cur, seg)
	if err != nil {
		return conflict("%v", err)
	}
	switch {
	case existing == nil, existing.Type == ir.NullType:
		err = store(cur, seg, val)
	case existing.Type == ir.ArrayType:
		existing.Append(val)
	default:
		err = store(cur, seg, ir.FromSlice([]*ir.Node{existing, val}))
	}
	if err != nil {
		return conflict("%v", err)
	}
	return nil
}

func lookup(cur *ir.Node, seg string) (*ir.Node, error) {
	if cur.Type == ir.ObjectType {
		return ir.Get(cur, seg), nil
	}
	i, err := index(seg)
	if err != nil {
		return nil, err
	}
	if i >= len(cur.Values) {
		return nil, nil
	}
	return cur.Values[i], nil
}

func store(cur *ir.Node, seg string, v *ir.Node) error {
	if cur.Type == ir.ObjectType {
		cur.Set(seg, v)
		return nil
	}
	i, err := index(seg)
	if err != nil {
		return err
	}
	for len(cur.Values) < i {
		cur.Append(ir.Null())
	}
	if i == len(cur.Values) {
		cur.Append(v)
		return nil
	}
	cur.Replace(i, v)
	return nil
}

func index(seg string) (int, error) {
	if !ir.IsIndex(seg) {
		return 0, fmt.Errorf("%q is not an array index", seg)
	}
	i, err := strconv.Atoi(seg)
	if err != nil || i > maxIndex {
		return 0, fmt.Errorf("index %s out of range", seg)
	}
	return i, nil
}
