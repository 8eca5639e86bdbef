package parse

import (
	"fmt"

	"github.com/signadot/confconv/debug"
	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
	"github.com/signadot/confconv/properties"
)

// Parse parses d in the format given by opts, properties by default.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	f := FormatFromOpts(opts...)
	if debug.Parse() {
		debug.Logf("parsing %d bytes of %s\n", len(d), f)
	}
	switch f {
	case format.JSONFormat:
		return parseJSON(d)
	case format.YAMLFormat:
		return parseYAML(d)
	case format.PropertiesFormat:
		return properties.Parse(d)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
}
