// Package parse parses JSON, YAML and properties text into ir.Node trees.
//
// The input format is chosen with a ParseOption and is never guessed from
// the content:
//
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// JSON is decoded token by token so that object keys keep their order and
// numbers keep their exact literal. YAML is decoded with goccy/go-yaml into
// ordered maps; anchors, aliases and merge keys are resolved by the decoder.
// Properties text is handled by package properties.
//
// Malformed JSON and YAML produce a *SyntaxError, which matches ErrParse
// with errors.Is and carries the line and column when they are known.
package parse
