package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/confconv/format"
	"github.com/signadot/confconv/ir"
)

// MustString renders node as YAML unless opts say otherwise, and panics
// on error.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	opts = append([]EncodeOption{EncodeFormat(format.YAMLFormat)}, opts...)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
