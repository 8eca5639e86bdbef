package main

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/signadot/confconv/debug"
	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/parse"
	"github.com/signadot/confconv/properties"

	"go.lsp.dev/protocol"
)

// document is an open text document and the result of parsing it.
type document struct {
	uri    protocol.DocumentURI
	text   string
	format format.Format
	// formatErr is set when the uri names no known format.
	formatErr error

	node    *ir.Node
	skipped []int
	err     error
	// badUTF8 holds the 1-based numbers of lines with invalid UTF-8.
	badUTF8 []int
}

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func (s *documentStore) get(uri string) *document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

func (s *documentStore) put(doc *document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[string(doc.uri)] = doc
}

func (s *documentStore) remove(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// analyze parses text in the format named by the suffix of uri.
func analyze(uri protocol.DocumentURI, text string) *document {
	doc := &document{uri: uri, text: text}
	for i, line := range strings.Split(text, "\n") {
		if !utf8.ValidString(line) {
			doc.badUTF8 = append(doc.badUTF8, i+1)
		}
	}
	doc.format, doc.formatErr = format.FromPath(string(uri))
	if doc.formatErr != nil {
		return doc
	}
	if doc.format == format.PropertiesFormat {
		res, err := properties.ParseResult([]byte(text))
		if err != nil {
			doc.err = err
			return doc
		}
		doc.node, doc.skipped = res.Node, res.Skipped
		return doc
	}
	doc.node, doc.err = parse.Parse([]byte(text), parse.ParseFormat(doc.format))
	return doc
}

func (s *Server) update(ctx context.Context, uri protocol.DocumentURI, text string) error {
	doc := analyze(uri, text)
	if debug.LSP() {
		debug.Logf("%s: format %s, error %v, skipped %v", uri, doc.format, doc.err, doc.skipped)
	}
	s.docs.put(doc)
	return s.publish(ctx, uri, diagnostics(doc))
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	return s.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// DidChange expects full document sync: the last change holds the whole
// text.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	n := len(params.ContentChanges)
	if n == 0 {
		return nil
	}
	return s.update(ctx, params.TextDocument.URI, params.ContentChanges[n-1].Text)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return s.publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
}
