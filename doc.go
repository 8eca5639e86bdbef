// Package confconv converts configuration text between Java-style
// properties, YAML and JSON.
//
// A Converter holds the input text and its format. Convert parses the
// input into an ordered value tree ([ir.Node]) and the To methods render
// that tree in any of the three formats:
//
//	c := confconv.New()
//	if err := c.FromProperties("server.port = 8080").Convert(); err != nil {
//		return err
//	}
//	y, err := c.ToYAML() // "server:\n  port: 8080\n"
//
// Properties keys are dotted paths. A "[N]" suffix or an all digit
// segment addresses an array element, and a key given more than once
// collects its values into an array.
//
// # Related Packages
//
//   - github.com/signadot/confconv/ir - the value tree
//   - github.com/signadot/confconv/parse - parsing with explicit formats
//   - github.com/signadot/confconv/encode - encoding with colors and indentation
//   - github.com/signadot/confconv/properties - the properties format
package confconv
