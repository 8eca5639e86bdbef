package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/properties"

	"go.lsp.dev/protocol"
)

const maxHoverValue = 50

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	text := hoverText(doc, int(params.Position.Line))
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// hoverText describes the entry on line of a properties document, and
// otherwise the whole document.
func hoverText(doc *document, line int) string {
	if doc.format == format.PropertiesFormat {
		lines := strings.Split(doc.text, "\n")
		if line >= 0 && line < len(lines) {
			if key, _, ok := properties.KeyValue(lines[line]); ok {
				node, err := doc.node.GetPath(key)
				if err == nil && node != nil {
					return describe(key, node)
				}
			}
		}
	}
	return describe("", doc.node)
}

func describe(path string, node *ir.Node) string {
	var parts []string
	if path != "" {
		parts = append(parts, fmt.Sprintf("**Key:** `%s`", path))
	}
	parts = append(parts, fmt.Sprintf("**Type:** %s", typeInfo(node)))
	if v := valueInfo(node); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	return strings.Join(parts, "\n\n")
}

func typeInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return "boolean"
	case ir.NumberType:
		if node.Int64 != nil {
			return "integer"
		}
		return "float"
	case ir.StringType:
		return "string"
	case ir.ArrayType:
		return "array"
	case ir.ObjectType:
		return "object"
	default:
		return "unknown"
	}
}

func valueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", len(node.Values))
	case ir.ObjectType:
		return fmt.Sprintf("object with %d keys", len(node.Fields))
	case ir.StringType:
		if node.String == "" {
			return ""
		}
		val := node.String
		if len(val) > maxHoverValue {
			val = val[:maxHoverValue] + "..."
		}
		return fmt.Sprintf("`%s`", val)
	default:
		return fmt.Sprintf("`%s`", properties.ScalarString(node))
	}
}
