package encode

import (
	"io"
	"strconv"

	"github.com/signadot/confconv/ir"
)

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType:
	default:
		return writeString(w, jsonScalar(node, es))
	}
	if len(node.Values) == 0 {
		return writeString(w, es.color(node.Type, SepColor, emptyContainer(node)))
	}
	lb, rb := "[", "]"
	if node.Type == ir.ObjectType {
		lb, rb = "{", "}"
	}
	if err := writeString(w, es.color(node.Type, SepColor, lb)); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, es.color(node.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if node.Type == ir.ObjectType {
			sep := ":"
			if es.indent > 0 {
				sep = ": "
			}
			key := es.color(ir.ObjectType, FieldColor, quoteString(node.Fields[i].String))
			if err := writeString(w, key+es.color(ir.ObjectType, SepColor, sep)); err != nil {
				return err
			}
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(node.Type, SepColor, rb))
}

func jsonScalar(node *ir.Node, es *EncState) string {
	var s string
	switch node.Type {
	case ir.NullType:
		s = "null"
	case ir.BoolType:
		s = strconv.FormatBool(node.Bool)
	case ir.NumberType:
		s = node.NumberString()
		if s == "null" {
			return es.color(ir.NullType, ValueColor, s)
		}
	case ir.StringType:
		s = quoteString(node.String)
	}
	return es.color(node.Type, ValueColor, s)
}
