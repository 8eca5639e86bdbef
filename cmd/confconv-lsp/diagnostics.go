package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/confconv/parse"
	"github.com/signadot/confconv/properties"

	"go.lsp.dev/protocol"
)

func (s *Server) publish(ctx context.Context, uri protocol.DocumentURI, diags []protocol.Diagnostic) error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

// diagnostics reports parse errors and conflicts as errors, and skipped
// properties lines and lines with invalid UTF-8 as warnings.
func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.formatErr != nil {
		res = append(res, protocol.Diagnostic{
			Range:    lineRange(doc.text, 0),
			Severity: protocol.DiagnosticSeverityWarning,
			Source:   lsName,
			Message:  doc.formatErr.Error(),
		})
		return res
	}
	if doc.err != nil {
		res = append(res, errorDiagnostic(doc))
	}
	for _, n := range doc.skipped {
		res = append(res, protocol.Diagnostic{
			Range:    lineRange(doc.text, n-1),
			Severity: protocol.DiagnosticSeverityWarning,
			Source:   lsName,
			Message:  "line ignored: not a single key=value pair",
		})
	}
	for _, n := range doc.badUTF8 {
		res = append(res, protocol.Diagnostic{
			Range:    lineRange(doc.text, n-1),
			Severity: protocol.DiagnosticSeverityWarning,
			Source:   lsName,
			Message:  "invalid UTF-8: converted output replaces it with U+FFFD",
		})
	}
	return res
}

func errorDiagnostic(doc *document) protocol.Diagnostic {
	res := protocol.Diagnostic{
		Range:    lineRange(doc.text, 0),
		Severity: protocol.DiagnosticSeverityError,
		Source:   lsName,
		Message:  doc.err.Error(),
	}
	var synErr *parse.SyntaxError
	var cErr *properties.ConflictError
	switch {
	case errors.As(doc.err, &synErr):
		res.Message = synErr.Msg
		if synErr.Line > 0 {
			res.Range = lineRange(doc.text, synErr.Line-1)
			res.Range.Start.Character = uint32(max(synErr.Column-1, 0))
			res.Range.End.Character = max(res.Range.End.Character, res.Range.Start.Character)
		}
	case errors.As(doc.err, &cErr):
		res.Message = fmt.Sprintf("key %q: %s", cErr.Key, cErr.Msg)
		res.Range = lineRange(doc.text, cErr.Line-1)
	}
	return res
}

// lineRange covers line i (0-based) of text, or the start of the last
// line when i is past the end.
func lineRange(text string, i int) protocol.Range {
	lines := strings.Split(text, "\n")
	if i < 0 {
		i = 0
	}
	if i >= len(lines) {
		i = len(lines) - 1
	}
	line := strings.TrimSuffix(lines[i], "\r")
	return protocol.Range{
		Start: protocol.Position{Line: uint32(i)},
		End:   protocol.Position{Line: uint32(i), Character: uint32(len(line))},
	}
}

// fullRange covers all of text.
func fullRange(text string) protocol.Range {
	lines := strings.Split(text, "\n")
	last := len(lines) - 1
	return protocol.Range{
		End: protocol.Position{Line: uint32(last), Character: uint32(len(lines[last]))},
	}
}
