package encode

import (
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/confconv/ir"
)

var plainKeyRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_./-]*$`)

// keys which a YAML reader would resolve to something other than a string
var reservedKeys = map[string]bool{
	"true": true, "false": true, "null": true,
	"yes": true, "no": true, "on": true, "off": true,
	"y": true, "n": true,
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	if !isBlock(node) {
		return writeString(w, yamlInline(node, es)+"\n")
	}
	return yamlBlock(node, w, es)
}

func isBlock(node *ir.Node) bool {
	return (node.Type == ir.ObjectType || node.Type == ir.ArrayType) && len(node.Values) > 0
}

func yamlBlock(node *ir.Node, w io.Writer, es *EncState) error {
	ind := indentString(es)
	for i, v := range node.Values {
		var head string
		if node.Type == ir.ObjectType {
			head = es.color(ir.ObjectType, FieldColor, yamlKey(node.Fields[i].String)) +
				es.color(ir.ObjectType, SepColor, ":")
		} else {
			head = es.color(ir.ArrayType, SepColor, "-")
		}
		if !isBlock(v) {
			if err := writeString(w, ind+head+" "+yamlInline(v, es)+"\n"); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, ind+head+"\n"); err != nil {
			return err
		}
		es.depth++
		err := yamlBlock(v, w, es)
		es.depth--
		if err != nil {
			return err
		}
	}
	return nil
}

func yamlInline(node *ir.Node, es *EncState) string {
	var s string
	switch node.Type {
	case ir.NullType:
		s = "null"
	case ir.BoolType:
		s = strconv.FormatBool(node.Bool)
	case ir.NumberType:
		s = yamlNumber(node)
	case ir.StringType:
		s = quoteString(node.String)
	default:
		return es.color(node.Type, SepColor, emptyContainer(node))
	}
	return es.color(node.Type, ValueColor, s)
}

func yamlNumber(node *ir.Node) string {
	if node.Float64 != nil {
		f := *node.Float64
		switch {
		case math.IsNaN(f):
			return ".nan"
		case math.IsInf(f, 1):
			return ".inf"
		case math.IsInf(f, -1):
			return "-.inf"
		}
	}
	return yamlExponent(node.NumberString())
}

// yamlExponent gives an exponent literal such as 1e+30 a mantissa dot.
// YAML 1.2 reads exponent forms without one as strings.
func yamlExponent(s string) string {
	i := strings.IndexAny(s, "eE")
	if i < 0 || strings.Contains(s[:i], ".") {
		return s
	}
	return s[:i] + ".0" + s[i:]
}

func yamlKey(k string) string {
	if plainKeyRE.MatchString(k) && !reservedKeys[strings.ToLower(k)] {
		return k
	}
	return quoteString(k)
}
