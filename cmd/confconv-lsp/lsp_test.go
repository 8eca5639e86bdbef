package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		uri      protocol.DocumentURI
		text     string
		severity []protocol.DiagnosticSeverity
		lines    []uint32
		msg      string
	}{
		{
			name: "valid yaml",
			uri:  "file:///c/app.yaml",
			text: "a:\n  b: 1\n",
		},
		{
			name:     "skipped lines",
			uri:      "file:///c/app.properties",
			text:     "a=1\nbogus\nb=2=3\nc=4",
			severity: []protocol.DiagnosticSeverity{protocol.DiagnosticSeverityWarning, protocol.DiagnosticSeverityWarning},
			lines:    []uint32{1, 2},
			msg:      "not a single key=value pair",
		},
		{
			name:     "conflict",
			uri:      "file:///c/app.properties",
			text:     "a=1\na.b=2",
			severity: []protocol.DiagnosticSeverity{protocol.DiagnosticSeverityError},
			lines:    []uint32{1},
			msg:      `key "a.b"`,
		},
		{
			name:     "json syntax",
			uri:      "file:///c/app.json",
			text:     "{\n  \"a\": 1,\n  \"b\" 2\n}",
			severity: []protocol.DiagnosticSeverity{protocol.DiagnosticSeverityError},
			lines:    []uint32{2},
		},
		{
			name:     "invalid utf-8",
			uri:      "file:///c/app.properties",
			text:     "a=ok\nb=caf\xe9\nc=1",
			severity: []protocol.DiagnosticSeverity{protocol.DiagnosticSeverityWarning},
			lines:    []uint32{1},
			msg:      "invalid UTF-8",
		},
		{
			name:     "unknown suffix",
			uri:      "file:///c/app.txt",
			text:     "a=1",
			severity: []protocol.DiagnosticSeverity{protocol.DiagnosticSeverityWarning},
			lines:    []uint32{0},
			msg:      "bad format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := diagnostics(analyze(tt.uri, tt.text))
			var sev []protocol.DiagnosticSeverity
			var lines []uint32
			for _, d := range diags {
				sev = append(sev, d.Severity)
				lines = append(lines, d.Range.Start.Line)
				if d.Range.End.Character < d.Range.Start.Character {
					t.Errorf("bad range %+v", d.Range)
				}
				if !strings.Contains(d.Message, tt.msg) {
					t.Errorf("message %q does not contain %q", d.Message, tt.msg)
				}
			}
			if diff := cmp.Diff(tt.severity, sev); diff != "" {
				t.Errorf("severity (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.lines, lines); diff != "" {
				t.Errorf("lines (-want +got):\n%s", diff)
			}
		})
	}
}

func open(t *testing.T, s *Server, uri protocol.DocumentURI, text string) {
	t.Helper()
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: text},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func hover(t *testing.T, s *Server, uri protocol.DocumentURI, line uint32) string {
	t.Helper()
	h, err := s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: line},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h == nil {
		return ""
	}
	return h.Contents.Value
}

func TestHover(t *testing.T) {
	s := newServer()
	props := protocol.DocumentURI("file:///c/app.properties")
	open(t, s, props, "server.port=8080\n# note\nserver.hosts=a\nserver.hosts=b\nname=this is a long value which goes on and on for quite a while")

	tests := []struct {
		line uint32
		want []string
	}{
		{0, []string{"**Key:** `server.port`", "**Type:** integer", "**Value:** `8080`"}},
		{1, []string{"**Type:** object", "object with 2 keys"}},
		{2, []string{"`server.hosts`", "array with 2 elements"}},
		{4, []string{"**Type:** string", "...`"}},
		{9, []string{"object with 2 keys"}},
	}
	for _, tt := range tests {
		got := hover(t, s, props, tt.line)
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("line %d: %q does not contain %q", tt.line, got, w)
			}
		}
	}

	yml := protocol.DocumentURI("file:///c/app.yml")
	open(t, s, yml, "- 1\n- 2\n")
	if got := hover(t, s, yml, 0); !strings.Contains(got, "array with 2 elements") {
		t.Errorf("yaml summary: %q", got)
	}

	bad := protocol.DocumentURI("file:///c/bad.json")
	open(t, s, bad, "{")
	if got := hover(t, s, bad, 0); got != "" {
		t.Errorf("expected no hover, got %q", got)
	}
}

func formatEdits(t *testing.T, s *Server, uri protocol.DocumentURI, tabSize uint32) []protocol.TextEdit {
	t.Helper()
	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		Options:      protocol.FormattingOptions{TabSize: tabSize},
	})
	if err != nil {
		t.Fatal(err)
	}
	return edits
}

func TestFormatting(t *testing.T) {
	s := newServer()
	j := protocol.DocumentURI("file:///c/app.json")
	open(t, s, j, `{"a":1,"b":[true]}`)
	want := []protocol.TextEdit{{
		Range:   protocol.Range{End: protocol.Position{Line: 0, Character: 18}},
		NewText: "{\n    \"a\": 1,\n    \"b\": [\n        true\n    ]\n}\n",
	}}
	if diff := cmp.Diff(want, formatEdits(t, s, j, 4)); diff != "" {
		t.Errorf("json (-want +got):\n%s", diff)
	}

	p := protocol.DocumentURI("file:///c/app.properties")
	open(t, s, p, "a = 1\nb=x\n")
	edits := formatEdits(t, s, p, 0)
	if len(edits) != 1 || edits[0].NewText != "a=1\nb=x\n" {
		t.Errorf("properties: %+v", edits)
	}
	open(t, s, p, "a=1\nb=x\n")
	if edits := formatEdits(t, s, p, 0); len(edits) != 0 {
		t.Errorf("expected formatted document to be unchanged, got %+v", edits)
	}
	open(t, s, p, "# keep me\na = 1\n")
	if edits := formatEdits(t, s, p, 0); len(edits) != 0 {
		t.Errorf("expected comments to block formatting, got %+v", edits)
	}
	open(t, s, p, "a = caf\xe9\n")
	if edits := formatEdits(t, s, p, 0); len(edits) != 0 {
		t.Errorf("expected invalid UTF-8 to block formatting, got %+v", edits)
	}

	if err := s.DidClose(context.Background(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: j},
	}); err != nil {
		t.Fatal(err)
	}
	if edits := formatEdits(t, s, j, 2); edits != nil {
		t.Errorf("closed document formatted: %+v", edits)
	}
}

func TestDidChange(t *testing.T) {
	s := newServer()
	uri := protocol.DocumentURI("file:///c/app.yaml")
	open(t, s, uri, "a: [")
	if s.docs.get(string(uri)).err == nil {
		t.Fatal("expected parse error")
	}
	err := s.DidChange(context.Background(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "a: 1\n"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc := s.docs.get(string(uri))
	if doc.err != nil || doc.node == nil {
		t.Errorf("document not updated: %v", doc.err)
	}
}
