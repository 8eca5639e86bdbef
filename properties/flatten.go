package properties

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/confconv/ir"
)

// Entry is one flattened key=value pair. Value is not escaped.
type Entry struct {
	Key   string
	Value string
}

func (e Entry) String() string {
	return e.Key + "=" + Escape(e.Value)
}

// Flatten returns the leaves of node as entries in traversal order.
// The elements of a top level array are keyed by their bare index.
func Flatten(node *ir.Node) ([]Entry, error) {
	if node.Type.IsLeaf() {
		return nil, ErrNotFlattenable
	}
	var res []Entry
	if node.Type == ir.ArrayType {
		for i, v := range node.Values {
			res = flatten(v, strconv.Itoa(i), res)
		}
		return res, nil
	}
	return flatten(node, "", res), nil
}

func flatten(node *ir.Node, key string, res []Entry) []Entry {
	switch node.Type {
	case ir.ObjectType:
		for i, f := range node.Fields {
			k := f.String
			if key != "" {
				k = key + "." + k
			}
			res = flatten(node.Values[i], k, res)
		}
		return res
	case ir.ArrayType:
		for i, v := range node.Values {
			res = flatten(v, key+"["+strconv.Itoa(i)+"]", res)
		}
		return res
	default:
		return append(res, Entry{Key: key, Value: ScalarString(node)})
	}
}

// ScalarString renders a leaf node as unescaped property text.
func ScalarString(node *ir.Node) string {
	switch node.Type {
	case ir.StringType:
		return node.String
	case ir.BoolType:
		return strconv.FormatBool(node.Bool)
	case ir.NumberType:
		if node.Float64 != nil {
			switch f := *node.Float64; {
			case math.IsNaN(f):
				return "NaN"
			case math.IsInf(f, 1):
				return "Infinity"
			case math.IsInf(f, -1):
				return "-Infinity"
			}
		}
		return node.NumberString()
	default:
		return "null"
	}
}

// Marshal renders node as properties text, one key=value line per leaf.
// There is no trailing newline.
func Marshal(node *ir.Node) (string, error) {
	entries, err := Flatten(node)
	if err != nil {
		return "", err
	}
	lines := make([]string, len(entries))
	for i := range entries {
		lines[i] = entries[i].String()
	}
	return strings.Join(lines, "\n"), nil
}

// Encode writes node as properties text to w, followed by a newline
// when anything was written.
func Encode(node *ir.Node, w io.Writer) error {
	s, err := Marshal(node)
	if err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}
