package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/signadot/confconv"
	"github.com/signadot/confconv/encode"
	"github.com/signadot/confconv/format"

	"go.lsp.dev/protocol"
)

// Formatting re-serializes a document in its own format. Documents with
// whole-line comments, ignored lines or invalid UTF-8 are left alone since
// those would be lost.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	if len(doc.skipped) > 0 || len(doc.badUTF8) > 0 || hasComments(doc) {
		return nil, nil
	}
	out, err := formatDoc(doc, int(params.Options.TabSize))
	if err != nil {
		return nil, err
	}
	if out == doc.text {
		return nil, nil
	}
	return []protocol.TextEdit{{Range: fullRange(doc.text), NewText: out}}, nil
}

func formatDoc(doc *document, tabSize int) (string, error) {
	if tabSize <= 0 {
		tabSize = confconv.DefaultSpaces
	}
	buf := bytes.NewBuffer(nil)
	err := encode.Encode(doc.node, buf, encode.EncodeFormat(doc.format), encode.Indent(tabSize))
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func hasComments(doc *document) bool {
	if doc.format == format.JSONFormat {
		return false
	}
	for _, line := range strings.Split(doc.text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return true
		}
		if doc.format == format.PropertiesFormat && strings.HasPrefix(line, "!") {
			return true
		}
	}
	return false
}
