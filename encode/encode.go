package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/properties"
)

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the configured format. The output ends with
// a newline unless it is empty.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 0 {
		return fmt.Errorf("%w: negative indent %d", ErrEncoding, es.indent)
	}
	if node == nil {
		node = ir.Null()
	}
	switch es.format {
	case format.PropertiesFormat:
		if err := properties.Encode(node, w); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return nil
	case format.YAMLFormat:
		if es.indent == 0 {
			es.indent = 1
		}
		return encodeYAML(node, w, es)
	case format.JSONFormat:
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	default:
		return fmt.Errorf("%w: unknown format %d", ErrEncoding, es.format)
	}
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+indentString(es))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func indentString(es *EncState) string {
	return strings.Repeat(" ", es.indent*es.depth)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// quoteString renders s as a JSON string literal. YAML double quoted
// scalars accept the same escapes.
func quoteString(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// strings always encode
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func emptyContainer(node *ir.Node) string {
	if node.Type == ir.ObjectType {
		return "{}"
	}
	return "[]"
}
