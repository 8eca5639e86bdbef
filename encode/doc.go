// Package encode renders value trees as YAML, JSON or properties text.
//
// # Usage
//
//	node, _ := parse.Parse(data, parse.ParseProperties())
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
//	// JSON with 4 space indentation
//	err = encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat), encode.Indent(4))
//
//	// Colored YAML for a terminal
//	err = encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat), encode.EncodeColors(encode.NewColors()))
//
// YAML output is block style with every string double quoted. JSON output
// is compact when the indentation is 0. Properties output is produced by
// the properties package.
//
// YAML and JSON output is UTF-8. Invalid UTF-8 bytes in strings, such as
// Latin-1 text read from a properties file, are written as U+FFFD.
//
// # Related Packages
//
//   - github.com/signadot/confconv/ir - value tree
//   - github.com/signadot/confconv/parse - parse text to a value tree
//   - github.com/signadot/confconv/properties - properties flattening
package encode
